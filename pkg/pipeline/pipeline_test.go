package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

func testStructure() *outline.Structure {
	return &outline.Structure{
		Title: "Growth Strategy",
		Branches: []outline.Branch{
			{Label: "Clients", Subbranches: []outline.Leaf{{Label: "Retention"}, {Label: "Referrals"}}},
			{Label: "Team"},
			{Label: "Product"},
		},
	}
}

func TestExecuteRadial(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), testStructure(), Options{
		Formats: []string{"svg", "json", "dot"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Root.X != DefaultWidth/2 || result.Root.Y != DefaultHeight/2 {
		t.Errorf("root at (%v, %v), want canvas center", result.Root.X, result.Root.Y)
	}
	if result.Stats.NodeCount != 6 {
		t.Errorf("NodeCount = %d, want 6", result.Stats.NodeCount)
	}
	if result.Stats.LinkCount != 5 {
		t.Errorf("LinkCount = %d, want 5", result.Stats.LinkCount)
	}
	if result.Stats.LayoutPasses == 0 {
		t.Error("LayoutPasses must be at least 1")
	}

	svg := string(result.Artifacts["svg"])
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "Growth Strategy") {
		t.Error("svg artifact missing document or title")
	}

	if !strings.Contains(string(result.Artifacts["dot"]), "digraph mindmap") {
		t.Error("dot artifact missing digraph")
	}

	var doc struct {
		Theme  string  `json:"theme"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Root   struct {
			Label string `json:"label"`
		} `json:"root"`
	}
	if err := json.Unmarshal(result.Artifacts["json"], &doc); err != nil {
		t.Fatalf("json artifact invalid: %v", err)
	}
	if doc.Root.Label != "Growth Strategy" || doc.Width != DefaultWidth {
		t.Errorf("json artifact = %+v", doc)
	}
	if doc.Theme != "elevated" {
		t.Errorf("theme = %q, want default", doc.Theme)
	}
}

func TestExecuteUnknownThemeFallsBack(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), testStructure(), Options{
		Theme: "does-not-exist",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Theme.Name != "elevated" {
		t.Errorf("Theme = %q, want default fallback", result.Theme.Name)
	}
}

func TestExecuteRejectsInvalidStructure(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), &outline.Structure{}, Options{})
	if !errors.Is(err, errors.ErrCodeMalformedStructure) {
		t.Fatalf("err = %v, want MALFORMED_STRUCTURE", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad view", Options{View: "treemap"}, errors.ErrCodeInvalidView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults failed: %v", err)
	}

	if opts.Width != 1920 || opts.Height != 1080 {
		t.Errorf("canvas = %vx%v, want 1920x1080", opts.Width, opts.Height)
	}
	if opts.Scale != 2.0 {
		t.Errorf("Scale = %v, want 2.0", opts.Scale)
	}
	if opts.View != ViewRadial {
		t.Errorf("View = %q, want radial", opts.View)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Layout.MaxIterations != 50 {
		t.Errorf("Layout.MaxIterations = %d, want default 50", opts.Layout.MaxIterations)
	}
}

func TestWantsRaster(t *testing.T) {
	if (&Options{Formats: []string{"svg", "json"}}).WantsRaster() {
		t.Error("vector-only formats must not want raster")
	}
	if !(&Options{Formats: []string{"svg", "png"}}).WantsRaster() {
		t.Error("png must want raster")
	}
	if !(&Options{Formats: []string{"pdf"}}).WantsRaster() {
		t.Error("pdf must want raster")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Growth Strategy", "growth_strategy"},
		{"Q3: Plan & Review!", "q3_plan_review"},
		{"  spaced   out  ", "spaced_out"},
		{"already-safe_name", "already-safe_name"},
		{"###", ""},
		{strings.Repeat("a", 100), strings.Repeat("a", 80)},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseNamePrecedence(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	if got := BaseName("My Name", "Title", "in.json", now); got != "my_name" {
		t.Errorf("explicit name: got %q", got)
	}
	if got := BaseName("", "Growth Strategy", "in.json", now); got != "growth_strategy" {
		t.Errorf("title: got %q", got)
	}
	if got := BaseName("", "", "/data/outlines/q3-plan.json", now); got != "q3-plan_20260314_092653" {
		t.Errorf("filename fallback: got %q", got)
	}
	if got := BaseName("", "###", "", now); got != "mindmap_20260314_092653" {
		t.Errorf("last-resort fallback: got %q", got)
	}
}
