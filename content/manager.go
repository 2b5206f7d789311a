// Package content discovers mob documents on disk and maintains the
// current registry generation for consumers.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/openwave/mobcore/document"
	"github.com/openwave/mobcore/logger"
	"github.com/openwave/mobcore/registry"
)

// Documents holds the parsed mob documents of one discovery pass,
// keyed by slash-separated path relative to the discovery root.
type Documents struct {
	Base     map[string]document.Table
	Extended map[string]document.Table
	Patches  map[string]document.Table
}

// Manager discovers and parses mob documents under an assets root and
// an optional extended root.
type Manager struct {
	assetsRoot   string
	extendedRoot string
}

// NewManager creates a manager over the given roots. extendedRoot may
// be empty when no extension content exists.
func NewManager(assetsRoot, extendedRoot string) *Manager {
	return &Manager{
		assetsRoot:   assetsRoot,
		extendedRoot: extendedRoot,
	}
}

// LoadDocuments walks both roots and parses every mob document found.
// A missing root is not an error, and a document that fails to parse
// is logged and skipped so one broken file never blocks a reload.
func (m *Manager) LoadDocuments() (*Documents, error) {
	docs := &Documents{
		Base:     make(map[string]document.Table),
		Extended: make(map[string]document.Table),
		Patches:  make(map[string]document.Table),
	}

	if err := m.loadRoot(m.assetsRoot, docs.Base, docs.Patches); err != nil {
		return nil, err
	}
	if m.extendedRoot != "" {
		if err := m.loadRoot(m.extendedRoot, docs.Extended, docs.Patches); err != nil {
			return nil, err
		}
	}

	logger.Log.Debugf("loaded %d base, %d extended, %d patch document(s)",
		len(docs.Base), len(docs.Extended), len(docs.Patches))
	return docs, nil
}

// loadRoot walks one root and fills base and patch maps. Hidden files
// and directories are skipped.
func (m *Manager) loadRoot(root string, base, patches map[string]document.Table) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		logger.Log.Infof("content root %q does not exist, no documents discovered", root)
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		var kind document.Kind
		switch {
		case strings.HasSuffix(d.Name(), registry.PatchExtension):
			kind = document.KindPatch
		case strings.HasSuffix(d.Name(), registry.BaseExtension):
			kind = document.KindBase
		default:
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Log.Warnf("failed to read %s: %v, skipping", path, err)
			return nil
		}
		tbl, err := document.Parse(data)
		if err != nil {
			logger.Log.Warnf("failed to parse %s %s: %v, skipping", kind, path, err)
			return nil
		}

		doc := document.Document{Path: filepath.ToSlash(rel), Kind: kind, Table: tbl}
		if doc.Kind == document.KindPatch {
			patches[doc.Path] = doc.Table
		} else {
			base[doc.Path] = doc.Table
		}
		return nil
	})
}
