// Package outline defines the input content structure for mindmap rendering.
//
// This package defines the canonical wire format for Mindweave's input data:
// a title plus an ordered list of branches, each with optional sub-branches.
// The same types are used for JSON files on disk, the drafting agent's output
// contract, and board publishing (via bson tags).
//
// # Format
//
// The input file is a JSON object:
//
//	{
//	  "title": "Growth",
//	  "branches": [
//	    {
//	      "label": "Clients",
//	      "color": "#00d4ff",
//	      "subbranches": [
//	        {"label": "Retention", "notes": ["churn under 5%"]}
//	      ]
//	    }
//	  ]
//	}
//
// A missing "title" or "branches" field is a fatal validation error
// (MALFORMED_STRUCTURE). An empty branches array is valid and produces a
// root-only mindmap.
package outline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yanderlabs/mindweave/pkg/errors"
)

// Structure is the external input for one mindmap: a central title and its
// main branches. A Structure is immutable once read; the layout engine
// operates on a node tree derived from it, never on the Structure itself.
type Structure struct {
	Title    string   `json:"title" bson:"title"`
	Branches []Branch `json:"branches" bson:"branches"`
}

// Branch is one main topic attached to the central title.
// Color is an optional CSS color; when empty, the renderer assigns one from
// the theme palette by ordinal index.
type Branch struct {
	Label       string `json:"label" bson:"label"`
	Color       string `json:"color,omitempty" bson:"color,omitempty"`
	Subbranches []Leaf `json:"subbranches,omitempty" bson:"subbranches,omitempty"`
}

// Leaf is a sub-topic under a branch. Notes are carried through for board
// publishing but are never laid out or drawn.
type Leaf struct {
	Label string   `json:"label" bson:"label"`
	Notes []string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// wire mirrors Structure with pointer fields so that absent keys can be
// distinguished from empty values during validation.
type wire struct {
	Title    *string   `json:"title"`
	Branches *[]Branch `json:"branches"`
}

// Read decodes and validates a structure from r.
//
// Read returns a MALFORMED_STRUCTURE error if the JSON is invalid, if the
// "title" field is absent or empty, or if the "branches" field is absent.
// Branch colors are validated as CSS color values.
func Read(r io.Reader) (*Structure, error) {
	var w wire
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedStructure, err, "decode outline")
	}

	if w.Title == nil || *w.Title == "" {
		return nil, errors.New(errors.ErrCodeMalformedStructure, "outline missing required field: title")
	}
	if w.Branches == nil {
		return nil, errors.New(errors.ErrCodeMalformedStructure, "outline missing required field: branches")
	}

	s := &Structure{Title: *w.Title, Branches: *w.Branches}
	for i, b := range s.Branches {
		if err := errors.ValidateColor(b.Color); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedStructure, err, "branch %d (%s)", i, b.Label)
		}
	}
	return s, nil
}

// Load reads a structure from the JSON file at path.
// The error wraps the underlying cause with the file path for context.
func Load(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal serializes the structure as indented JSON suitable for files on disk.
func Marshal(s *Structure) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Save writes the structure as indented JSON to path.
func Save(s *Structure, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return nil
}

// LeafCount returns the total number of sub-branches across all branches.
func (s *Structure) LeafCount() int {
	n := 0
	for _, b := range s.Branches {
		n += len(b.Subbranches)
	}
	return n
}
