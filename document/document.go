// Package document handles the raw, untyped form of mob files: parsing
// TOML bytes into generic tables, deep-merging patch tables over base
// tables, and strictly decoding merged tables into typed values.
package document

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Kind distinguishes complete base documents from sparse patch documents.
// The distinction is made once at load time instead of re-sniffing file
// extensions at every call site.
type Kind int

const (
	// KindBase is a complete mob definition (.mob).
	KindBase Kind = iota
	// KindPatch is a partial override merged over a base (.mobpatch).
	KindPatch
)

func (k Kind) String() string {
	if k == KindPatch {
		return "patch"
	}
	return "base"
}

// Table is the parsed form of one document: a tree of nested tables,
// arrays, and scalars.
type Table = map[string]any

// Document is one parsed source file together with its origin.
type Document struct {
	// Path is the source path the document was loaded from, used to
	// derive the registry key.
	Path  string
	Kind  Kind
	Table Table
}

// Parse decodes TOML bytes into a generic table.
func Parse(data []byte) (Table, error) {
	var tbl Table
	if err := toml.Unmarshal(data, &tbl); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return tbl, nil
}
