package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yanderlabs/mindweave/pkg/mindmap"
	"github.com/yanderlabs/mindweave/pkg/observability"
	"github.com/yanderlabs/mindweave/pkg/outline"
	"github.com/yanderlabs/mindweave/pkg/render/radial"
)

// Runner encapsulates pipeline execution. It is stateless except for the
// logger - it doesn't store pipeline results. Multiple goroutines can safely
// use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete build → layout → render pipeline.
//
// On a render failure the returned Result still carries the positioned tree
// and every artifact produced before the failing format, so callers can keep
// finished vector outputs when only rasterization broke.
func (r *Runner) Execute(ctx context.Context, s *outline.Structure, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	theme := radial.ByName(opts.Theme)
	result := &Result{
		Theme:     theme,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, s.Title)
	root, err := r.Build(s, theme, opts)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, s.Title, 0, result.Stats.BuildTime, err)
		return nil, err
	}
	result.Root = root
	result.Stats.NodeCount = mindmap.Count(root)
	observability.Pipeline().OnBuildComplete(ctx, s.Title, result.Stats.NodeCount, result.Stats.BuildTime, nil)

	r.Logger.Info("built hierarchy",
		"title", s.Title,
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.View, result.Stats.NodeCount)
	layoutStats := mindmap.Layout(root, opts.Width, opts.Height, opts.Layout)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LayoutPasses = layoutStats.Passes
	result.Stats.ResidualOverlaps = layoutStats.ResidualOverlaps
	result.Links = mindmap.Links(root)
	result.Stats.LinkCount = len(result.Links)
	observability.Pipeline().OnLayoutComplete(ctx, opts.View, layoutStats.Passes, result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layout",
		"passes", layoutStats.Passes,
		"residual_overlaps", layoutStats.ResidualOverlaps,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	err = r.renderInto(ctx, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return result, err
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build derives the node tree from a structure. The theme supplies the size
// profile and the branch palette, so the footprints the layout packs are the
// same ones the renderer will draw.
func (r *Runner) Build(s *outline.Structure, theme radial.Theme, opts Options) (*mindmap.Node, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return mindmap.Build(s, mindmap.BuildConfig{
		MaxBranches:    opts.MaxBranches,
		MaxSubbranches: opts.MaxSubbranches,
		Profile:        theme.Profile,
		Palette:        theme.Palette,
	})
}
