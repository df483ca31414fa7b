package dot

import (
	"strings"
	"testing"

	"github.com/yanderlabs/mindweave/pkg/mindmap"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

func TestToDOT(t *testing.T) {
	s := &outline.Structure{
		Title: "Growth",
		Branches: []outline.Branch{
			{Label: "Clients", Color: "#00d4ff", Subbranches: []outline.Leaf{{Label: "Retention"}}},
			{Label: "Team"},
		},
	}
	root, err := mindmap.Build(s, mindmap.DefaultBuildConfig())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	got := ToDOT(root)

	contains := []string{
		"digraph mindmap {",
		`root [label="Growth", peripheries=2`,
		`b0 [label="Clients", fillcolor="#00d4ff"`,
		`b0_l0 [label="Retention"`,
		"root -> b0",
		"root -> b1",
		`b0 -> b0_l0 [color="#00d4ff", style=dashed];`,
		"}",
	}
	for _, want := range contains {
		if !strings.Contains(got, want) {
			t.Errorf("DOT output missing %q:\n%s", want, got)
		}
	}
}

func TestToDOTRootOnly(t *testing.T) {
	root := &mindmap.Node{Label: "Solo", Kind: mindmap.KindRoot}
	got := ToDOT(root)

	if strings.Contains(got, "->") {
		t.Error("root-only tree must have no edges")
	}
	if !strings.Contains(got, `root [label="Solo"`) {
		t.Errorf("missing root node:\n%s", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg">`)
	got := string(normalizeViewBox(in))

	if !strings.Contains(got, `viewBox="0 0 134.00 116.00"`) {
		t.Errorf("viewBox not normalized: %s", got)
	}
	if !strings.Contains(got, `width="134" height="116"`) {
		t.Errorf("pixel dimensions missing: %s", got)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`)
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Error("documents without a viewBox must pass through unchanged")
	}
}
