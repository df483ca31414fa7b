package mindmap

import (
	"fmt"
	"testing"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

func TestBuildTruncatesBranches(t *testing.T) {
	s := structureWithBranches(10)
	cfg := DefaultBuildConfig()
	cfg.MaxBranches = 6

	root := buildTree(t, s, cfg)

	if len(root.Children) != 6 {
		t.Fatalf("branches = %d, want 6", len(root.Children))
	}
	for i, b := range root.Children {
		want := fmt.Sprintf("Branch %d", i)
		if b.Label != want {
			t.Errorf("branch %d label = %q, want %q (input order preserved)", i, b.Label, want)
		}
	}
}

func TestBuildTruncatesLeaves(t *testing.T) {
	s := &outline.Structure{
		Title: "Topic",
		Branches: []outline.Branch{{
			Label: "Busy",
			Subbranches: []outline.Leaf{
				{Label: "one"}, {Label: "two"}, {Label: "three"}, {Label: "four"}, {Label: "five"},
			},
		}},
	}
	cfg := DefaultBuildConfig()
	cfg.MaxSubbranches = 3

	root := buildTree(t, s, cfg)

	leaves := root.Children[0].Children
	if len(leaves) != 3 {
		t.Fatalf("leaves = %d, want 3", len(leaves))
	}
	if leaves[0].Label != "one" || leaves[2].Label != "three" {
		t.Error("leaf truncation did not preserve input order")
	}
}

func TestBuildAssignsColors(t *testing.T) {
	s := &outline.Structure{
		Title: "Topic",
		Branches: []outline.Branch{
			{Label: "Explicit", Color: "#123456", Subbranches: []outline.Leaf{{Label: "sub"}}},
			{Label: "Palette"},
		},
	}
	cfg := DefaultBuildConfig()
	cfg.Palette = []string{"#aaaaaa", "#bbbbbb"}

	root := buildTree(t, s, cfg)

	if got := root.Children[0].Color; got != "#123456" {
		t.Errorf("explicit color = %q, want #123456", got)
	}
	if got := root.Children[0].Children[0].Color; got != "#123456" {
		t.Errorf("leaf color = %q, want inherited #123456", got)
	}
	if got := root.Children[1].Color; got != "#bbbbbb" {
		t.Errorf("palette color = %q, want #bbbbbb (ordinal index 1)", got)
	}
}

func TestBuildAssignsFootprints(t *testing.T) {
	root := buildTree(t, structureWithBranches(1), DefaultBuildConfig())

	if root.Width <= 0 || root.Height <= 0 {
		t.Errorf("root footprint = %vx%v, want positive", root.Width, root.Height)
	}
	b := root.Children[0]
	if b.Width <= 0 || b.Height <= 0 {
		t.Errorf("branch footprint = %vx%v, want positive", b.Width, b.Height)
	}
	if b.X != 0 || b.Y != 0 {
		t.Error("Build must not assign positions; that is Layout's job")
	}
}

func TestBuildRejectsMissingTitle(t *testing.T) {
	_, err := Build(&outline.Structure{Branches: []outline.Branch{}}, DefaultBuildConfig())
	if err == nil {
		t.Fatal("expected error for missing title")
	}
	if !errors.Is(err, errors.ErrCodeMalformedStructure) {
		t.Errorf("error code = %v, want MALFORMED_STRUCTURE", errors.GetCode(err))
	}

	if _, err := Build(nil, DefaultBuildConfig()); err == nil {
		t.Fatal("expected error for nil structure")
	}
}

func TestEstimateFloors(t *testing.T) {
	p := DefaultProfile()

	w, h := p.Estimate("", KindRoot)
	if w != 300 || h != 80 {
		t.Errorf("empty root label = %vx%v, want 300x80 (floor)", w, h)
	}

	w, _ = p.Estimate("A very long central topic title indeed", KindRoot)
	want := float64(len("A very long central topic title indeed"))*12 + 20
	if w != want {
		t.Errorf("long root label width = %v, want %v", w, want)
	}

	for _, kind := range []Kind{KindRoot, KindBranch, KindLeaf} {
		w, h := p.Estimate("", kind)
		if w <= 0 || h <= 0 {
			t.Errorf("%s: footprint %vx%v, want positive", kind, w, h)
		}
	}
}

func TestCompactProfileSmaller(t *testing.T) {
	label := "Some branch label"
	dw, _ := DefaultProfile().Estimate(label, KindBranch)
	cw, ch := CompactProfile().Estimate(label, KindBranch)

	if cw >= dw {
		t.Errorf("compact width %v should be below default %v", cw, dw)
	}
	if ch >= DefaultProfile().Branch.Height {
		t.Errorf("compact height %v should be below default %v", ch, DefaultProfile().Branch.Height)
	}
}
