// Command moblint validates every mob document under the given content
// roots and reports diagnostics and registry build failures.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/openwave/mobcore/content"
	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/registry"
	"github.com/openwave/mobcore/validate"
)

func main() {
	var (
		assetsRoot   string
		extendedRoot string
		strict       bool
	)

	pflag.StringVar(&assetsRoot, "assets", "./assets/mobs", "Base mob document root")
	pflag.StringVar(&extendedRoot, "extended", "", "Extended mob document root (optional)")
	pflag.BoolVar(&strict, "strict", false, "Exit non-zero on any error-severity diagnostic or build failure")
	pflag.Parse()

	mgr := content.NewManager(assetsRoot, extendedRoot)
	docs, err := mgr.LoadDocuments()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading documents: %v\n", err)
		os.Exit(1)
	}

	total := validate.Result{}
	for _, group := range []struct {
		docs    map[string]document.Table
		isPatch bool
	}{
		{docs.Base, false},
		{docs.Extended, false},
		{docs.Patches, true},
	} {
		paths := make([]string, 0, len(group.docs))
		for path := range group.docs {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			res := validate.Mob(group.docs[path], group.isPatch)
			for _, d := range res.Diagnostics {
				fmt.Printf("%s: %s\n", path, d)
			}
			total.Merge(res)
		}
	}

	reg := registry.Build(docs.Base, docs.Extended, docs.Patches)
	failures := reg.Failures()
	if len(failures) > 0 {
		msgs := make([]string, len(failures))
		for i, f := range failures {
			msgs[i] = f.Error()
		}
		sort.Strings(msgs)
		fmt.Printf("%d mob(s) failed to build:\n  %s\n", len(failures), strings.Join(msgs, "\n  "))
	}

	fmt.Printf("%d mob(s) built, %d error(s), %d warning(s)\n",
		reg.Len(), countErrors(total), countWarnings(total))

	if strict && (total.HasErrors() || len(failures) > 0) {
		os.Exit(1)
	}
}

func countErrors(r validate.Result) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == validate.SeverityError {
			n++
		}
	}
	return n
}

func countWarnings(r validate.Result) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == validate.SeverityWarning {
			n++
		}
	}
	return n
}
