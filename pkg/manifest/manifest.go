// Package manifest reads edge-list files for the p3loops CLI.
//
// A manifest is a TOML document naming a sequence of directed boundary
// edges, each endpoint in the compact "side@position" spelling:
//
//	name = "example loop"
//
//	[[edge]]
//	start = "south@10"
//	end   = "east@30"
//
//	[[edge]]
//	start = "north@30"
//	end   = "west@10"
//
// The name is optional and the edge list may be empty (every predicate
// accepts an empty sequence). Edge order is preserved: it is the order the
// path predicates see.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jacksonloper/p3loops/pkg/errors"
	"github.com/jacksonloper/p3loops/pkg/square"
)

// Document is a parsed edge-list manifest.
type Document struct {
	Name  string        // Optional display name from the manifest
	Edges []square.Edge // Edges in file order
}

// Supports reports whether the given filename looks like an edge-list
// manifest (a .toml extension, any case).
func Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

// Load reads and parses the manifest at path. Returns an error with code
// ErrCodeFileNotFound when the file cannot be read, or ErrCodeInvalidManifest
// when the TOML or an endpoint is malformed; endpoint errors carry the
// offending edge's 1-based index.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read manifest %s", path)
	}

	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot decode manifest %s", path)
	}

	doc := &Document{Name: file.Name}
	for i, entry := range file.Edges {
		if entry.Start == "" || entry.End == "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"edge %d: both start and end are required", i+1)
		}
		start, err := square.ParseEndpoint(entry.Start)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "edge %d: bad start", i+1)
		}
		end, err := square.ParseEndpoint(entry.End)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "edge %d: bad end", i+1)
		}
		doc.Edges = append(doc.Edges, square.NewEdge(start, end))
	}
	return doc, nil
}

// manifestFile mirrors the on-disk TOML structure.
type manifestFile struct {
	Name  string      `toml:"name"`
	Edges []edgeEntry `toml:"edge"`
}

type edgeEntry struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}
