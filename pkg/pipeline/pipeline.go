// Package pipeline provides the core mindmap pipeline for Mindweave.
//
// This package implements the complete build → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: derive the node tree from an outline, apply caps, estimate footprints
//  2. Layout: position the tree on the canvas and relax overlaps
//  3. Render: generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Theme:   "midnight",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, structure, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/mindmap"
	"github.com/yanderlabs/mindweave/pkg/render/radial"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1920.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 1080.0

	// DefaultScale is the default raster scale factor (2x resolution).
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// View constants for the two tree renderings.
const (
	// ViewRadial is the styled radial document, the default.
	ViewRadial = "radial"
	// ViewGraph is the conventional top-down Graphviz diagram.
	ViewGraph = "graph"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewRadial: true,
	ViewGraph:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the mindmap pipeline.
// This struct supports JSON serialization for config files and server requests.
type Options struct {
	// Build options
	MaxBranches    int `json:"max_branches,omitempty"`
	MaxSubbranches int `json:"max_subbranches,omitempty"`

	// Layout options
	View   string         `json:"view,omitempty"`
	Width  float64        `json:"width,omitempty"`
	Height float64        `json:"height,omitempty"`
	Layout mindmap.Config `json:"layout,omitempty"`

	// Render options
	Theme   string   `json:"theme,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the positioned node tree.
	Root *mindmap.Node

	// Links is the derived connector list.
	Links []mindmap.Link

	// Theme is the resolved theme the run rendered with.
	Theme radial.Theme

	// Artifacts contains rendered outputs keyed by format, in the order the
	// formats were produced (vector formats before raster conversions).
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount        int
	LinkCount        int
	LayoutPasses     int
	ResidualOverlaps int
	BuildTime        time.Duration
	LayoutTime       time.Duration
	RenderTime       time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidView,
			"invalid view: %q (must be one of: radial, graph)", view)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as
// calling it once. An unknown theme name is not an error: it falls back to the
// default theme at render time.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.View == "" {
		o.View = ViewRadial
	}
	if err := ValidateView(o.View); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.MaxBranches == 0 {
		o.MaxBranches = mindmap.DefaultMaxBranches
	}
	if o.MaxSubbranches == 0 {
		o.MaxSubbranches = mindmap.DefaultMaxSubbranches
	}
	if o.Layout == (mindmap.Config{}) {
		o.Layout = mindmap.DefaultConfig()
	}

	o.validated = true
	return nil
}

// WantsRaster reports whether any requested format needs the external
// rasterization backend.
func (o *Options) WantsRaster() bool {
	for _, f := range o.Formats {
		if f == FormatPNG || f == FormatPDF {
			return true
		}
	}
	return false
}

// IsRadial returns true if this run renders the radial document view.
func (o *Options) IsRadial() bool {
	return o.View == "" || o.View == ViewRadial
}
