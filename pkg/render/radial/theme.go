// Package radial renders laid-out mindmap trees as styled SVG documents.
//
// Themes are a closed set of data records: every rendering parameter
// (colors, gradients, stroke widths, dash patterns, size profile, fonts) is
// carried on the [Theme] value, and the rendering code is uniform over it.
// There is no per-theme branching inside the renderer.
package radial

import (
	"sort"

	"github.com/yanderlabs/mindweave/pkg/mindmap"
)

// Theme is one immutable visual variant. Select one with [ByName] and pass
// it explicitly into [Render]; themes are never mutated at runtime.
type Theme struct {
	Name string

	// Canvas
	Background string
	Grid       bool
	GridColor  string

	// Node fills
	RootGradient [2]string // gradient stops; both equal for flat themes
	LeafFill     string
	Palette      []string // branch color cycle by ordinal index
	Flat         bool     // flat fills instead of gradients, shadow and glow

	// Strokes and connectors
	NodeStroke    string
	TextColor     string
	BranchLinkW   float64
	LeafLinkW     float64
	BranchOpacity float64
	LeafOpacity   float64
	LeafDash      string // SVG dash array for leaf connectors; empty for solid

	// Corner radii per tier
	RootRadius   float64
	BranchRadius float64
	LeafRadius   float64

	// Typography
	FontFamily string
	RootFont   float64
	BranchFont float64
	LeafFont   float64

	// Layout-facing parameters
	Profile    mindmap.SizeProfile // one estimator for build and render
	WrapBudget int                 // max characters per root label line
}

// DefaultTheme is the theme used when an unknown name is requested.
const DefaultTheme = "elevated"

var themes = map[string]Theme{
	"elevated": {
		Name:         "elevated",
		Background:   "#1a1a2e",
		Grid:         true,
		GridColor:    "#2e2e4a",
		RootGradient: [2]string{"#667eea", "#764ba2"},
		LeafFill:     "#2d2d44",
		Palette:      []string{"#00d4ff", "#ff6b6b", "#ffd93d", "#6bcb77", "#b980f0", "#ff9f45", "#4d96ff"},
		NodeStroke:   "#ffffff",
		TextColor:    "#ffffff",
		BranchLinkW:  3, LeafLinkW: 2,
		BranchOpacity: 0.6, LeafOpacity: 0.4,
		LeafDash:   "5,5",
		RootRadius: 10, BranchRadius: 8, LeafRadius: 6,
		FontFamily: "Arial, sans-serif",
		RootFont:   28, BranchFont: 18, LeafFont: 14,
		Profile:    mindmap.DefaultProfile(),
		WrapBudget: 24,
	},
	"midnight": {
		Name:         "midnight",
		Background:   "#0b1020",
		RootGradient: [2]string{"#1f6feb", "#1f6feb"},
		LeafFill:     "#161b2e",
		Palette:      []string{"#58a6ff", "#f778ba", "#d29922", "#3fb950", "#bc8cff", "#f0883e"},
		NodeStroke:   "#c9d1d9",
		TextColor:    "#e6edf3",
		BranchLinkW:  3, LeafLinkW: 2,
		BranchOpacity: 0.7, LeafOpacity: 0.5,
		Flat:       true,
		RootRadius: 10, BranchRadius: 8, LeafRadius: 6,
		FontFamily: "Arial, sans-serif",
		RootFont:   28, BranchFont: 18, LeafFont: 14,
		Profile:    mindmap.DefaultProfile(),
		WrapBudget: 24,
	},
	"clean": {
		Name:         "clean",
		Background:   "#fafafa",
		RootGradient: [2]string{"#2d3748", "#2d3748"},
		LeafFill:     "#ffffff",
		Palette:      []string{"#3182ce", "#e53e3e", "#d69e2e", "#38a169", "#805ad5", "#dd6b20"},
		NodeStroke:   "#2d3748",
		TextColor:    "#1a202c",
		BranchLinkW:  2, LeafLinkW: 1.5,
		BranchOpacity: 0.8, LeafOpacity: 0.6,
		Flat:       true,
		LeafDash:   "4,4",
		RootRadius: 8, BranchRadius: 6, LeafRadius: 5,
		FontFamily: "Helvetica, Arial, sans-serif",
		RootFont:   24, BranchFont: 16, LeafFont: 12,
		Profile:    mindmap.CompactProfile(),
		WrapBudget: 28,
	},
	"sunrise": {
		Name:         "sunrise",
		Background:   "#fff7ed",
		Grid:         true,
		GridColor:    "#fde4c8",
		RootGradient: [2]string{"#f97316", "#db2777"},
		LeafFill:     "#fffbf5",
		Palette:      []string{"#ea580c", "#db2777", "#ca8a04", "#16a34a", "#9333ea", "#0891b2"},
		NodeStroke:   "#7c2d12",
		TextColor:    "#431407",
		BranchLinkW:  3, LeafLinkW: 2,
		BranchOpacity: 0.55, LeafOpacity: 0.4,
		LeafDash:   "5,5",
		RootRadius: 12, BranchRadius: 9, LeafRadius: 7,
		FontFamily: "Georgia, serif",
		RootFont:   26, BranchFont: 17, LeafFont: 13,
		Profile:    mindmap.DefaultProfile(),
		WrapBudget: 22,
	},
}

// ByName returns the theme with the given name, falling back to the default
// theme for unknown names. An unknown theme is not an error.
func ByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// Known reports whether name is a registered theme.
func Known(name string) bool {
	_, ok := themes[name]
	return ok
}

// Names returns all theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TextFill returns the label color for a node kind. Roots and branches are
// always drawn with white text on their colored fills; leaves use the
// theme's text color so light themes stay legible.
func (t Theme) TextFill(kind mindmap.Kind) string {
	if kind == mindmap.KindLeaf {
		return t.TextColor
	}
	return "#ffffff"
}
