package radial

import (
	"strings"
	"testing"

	"github.com/yanderlabs/mindweave/pkg/mindmap"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

func renderGrowth(t *testing.T, theme Theme) string {
	t.Helper()
	s := &outline.Structure{
		Title: "Growth",
		Branches: []outline.Branch{
			{Label: "Clients", Subbranches: []outline.Leaf{{Label: "Retention"}}},
			{Label: "Team"},
			{Label: "Ops"},
		},
	}
	cfg := mindmap.DefaultBuildConfig()
	cfg.Profile = theme.Profile
	cfg.Palette = theme.Palette

	root, err := mindmap.Build(s, cfg)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	mindmap.Layout(root, 1920, 1080, mindmap.DefaultConfig())
	return string(Render(root, mindmap.Links(root), theme, 1920, 1080))
}

func TestRenderDocumentShape(t *testing.T) {
	svg := renderGrowth(t, ByName("elevated"))

	contains := []string{
		`viewBox="0 0 1920 1080"`,
		`width="1920" height="1080"`,
		`fill="#1a1a2e"`,
		`url(#root-grad)`,
		`url(#dot-grid)`,
		`filter="url(#glow)"`,
		`stop-color="#667eea"`,
		`stop-color="#764ba2"`,
		">Growth<",
		">Clients<",
		">Retention<",
		`stroke-dasharray="5,5"`,
		"</svg>",
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("rendered SVG missing %q", want)
		}
	}

	// 5 nodes and 4 connector paths.
	if got := strings.Count(svg, "<rect"); got != 7 { // background + grid + 5 node shapes
		t.Errorf("rect count = %d, want 7", got)
	}
	if got := strings.Count(svg, "<path"); got != 4 {
		t.Errorf("path count = %d, want 4", got)
	}
}

func TestRenderRootCentered(t *testing.T) {
	svg := renderGrowth(t, ByName("elevated"))

	// Root is 300x80 at the default profile: x = 960-150, y = 540-40.
	if !strings.Contains(svg, `<rect x="810.0" y="500.0" width="300.0" height="80.0"`) {
		t.Error("root shape not centered at (960, 540)")
	}
}

func TestRenderFlatThemeOmitsFilters(t *testing.T) {
	svg := renderGrowth(t, ByName("midnight"))

	for _, unwanted := range []string{"soft-shadow", "glow", "dot-grid"} {
		if strings.Contains(svg, unwanted) {
			t.Errorf("flat theme should not emit %q", unwanted)
		}
	}
	if !strings.Contains(svg, `fill="#1f6feb"`) {
		t.Error("flat theme should use a solid root fill")
	}
}

func TestRenderRootOnly(t *testing.T) {
	root, err := mindmap.Build(&outline.Structure{Title: "Solo", Branches: []outline.Branch{}}, mindmap.DefaultBuildConfig())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	mindmap.Layout(root, 800, 600, mindmap.DefaultConfig())

	svg := string(Render(root, mindmap.Links(root), ByName("elevated"), 800, 600))

	if got := strings.Count(svg, "<rect"); got != 3 { // background + grid + root
		t.Errorf("rect count = %d, want 3", got)
	}
	if strings.Contains(svg, "<path") {
		t.Error("root-only document must have zero connectors")
	}
	if !strings.Contains(svg, ">Solo<") {
		t.Error("root label missing")
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	root := &mindmap.Node{Label: "A & B <Co>", Kind: mindmap.KindRoot, X: 400, Y: 300, Width: 300, Height: 80}
	svg := string(Render(root, nil, ByName("clean"), 800, 600))

	if !strings.Contains(svg, "A &amp; B &lt;Co&gt;") {
		t.Error("label not XML-escaped")
	}
	if strings.Contains(svg, "<Co>") {
		t.Error("raw markup leaked into the document")
	}
}

func TestWrapLabel(t *testing.T) {
	tests := []struct {
		label  string
		budget int
		want   []string
	}{
		{"Short", 24, []string{"Short"}},
		{"Scaling Your Agency Without Burning Out", 24, []string{"Scaling Your Agency", "Without Burning Out"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"Supercalifragilistic", 10, []string{"Supercalifragilistic"}},
		{"", 10, []string{""}},
	}

	for _, tt := range tests {
		got := wrapLabel(tt.label, tt.budget)
		if len(got) != len(tt.want) {
			t.Errorf("wrapLabel(%q, %d) = %v, want %v", tt.label, tt.budget, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("wrapLabel(%q, %d)[%d] = %q, want %q", tt.label, tt.budget, i, got[i], tt.want[i])
			}
		}
	}
}

func TestThemeFallback(t *testing.T) {
	unknown := ByName("does-not-exist")
	if unknown.Name != DefaultTheme {
		t.Errorf("fallback theme = %q, want %q", unknown.Name, DefaultTheme)
	}
	if !Known("clean") || Known("does-not-exist") {
		t.Error("Known() misreports the theme set")
	}
	names := Names()
	if len(names) != 4 {
		t.Errorf("Names() = %v, want 4 themes", names)
	}
}
