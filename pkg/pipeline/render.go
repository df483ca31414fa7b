package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/mindmap"
	"github.com/yanderlabs/mindweave/pkg/observability"
	"github.com/yanderlabs/mindweave/pkg/render"
	"github.com/yanderlabs/mindweave/pkg/render/dot"
	"github.com/yanderlabs/mindweave/pkg/render/radial"
)

// geometryDoc is the shape of the "json" artifact: the positioned tree plus
// the canvas it was laid out for, for downstream tooling.
type geometryDoc struct {
	Theme  string        `json:"theme"`
	View   string        `json:"view"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Root   *mindmap.Node `json:"root"`
}

// renderInto fills result.Artifacts for every requested format.
//
// Vector formats (svg, json, dot) always render before raster conversions
// (png, pdf), so a raster backend failure never costs a finished vector
// artifact. The first failing format aborts the stage; artifacts rendered
// before it stay in the result.
func (r *Runner) renderInto(ctx context.Context, result *Result, opts Options) error {
	svg, dotText, err := r.renderVector(ctx, result, opts)
	if err != nil {
		return err
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			result.Artifacts[FormatSVG] = svg
		case FormatDOT:
			result.Artifacts[FormatDOT] = []byte(dotText)
		case FormatJSON:
			doc := geometryDoc{
				Theme:  result.Theme.Name,
				View:   opts.View,
				Width:  opts.Width,
				Height: opts.Height,
				Root:   result.Root,
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "marshal geometry")
			}
			result.Artifacts[FormatJSON] = append(data, '\n')
		}
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatPNG:
			data, err := r.rasterize(ctx, FormatPNG, svg, opts.Scale)
			if err != nil {
				return err
			}
			result.Artifacts[FormatPNG] = data
		case FormatPDF:
			data, err := r.rasterize(ctx, FormatPDF, svg, 0)
			if err != nil {
				return err
			}
			result.Artifacts[FormatPDF] = data
		}
	}

	return nil
}

// renderVector produces the SVG document (and DOT text when requested) for
// the selected view. The graph view delegates the whole drawing to Graphviz;
// the radial view uses the in-process document renderer.
func (r *Runner) renderVector(ctx context.Context, result *Result, opts Options) (svg []byte, dotText string, err error) {
	if opts.IsRadial() {
		svg = radial.Render(result.Root, result.Links, result.Theme, opts.Width, opts.Height)
		if wantsFormat(opts.Formats, FormatDOT) {
			dotText = dot.ToDOT(result.Root)
		}
		return svg, dotText, nil
	}

	dotText = dot.ToDOT(result.Root)
	if wantsFormat(opts.Formats, FormatSVG) || opts.WantsRaster() {
		svg, err = dot.RenderSVG(ctx, dotText)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeRenderBackend, err, "graph view")
		}
	}
	return svg, dotText, nil
}

// rasterize converts the SVG to one raster format via the external backend,
// reporting the stage to the observability hooks.
func (r *Runner) rasterize(ctx context.Context, format string, svg []byte, scale float64) ([]byte, error) {
	observability.Pipeline().OnRasterizeStart(ctx, format)
	start := time.Now()

	var data []byte
	var err error
	switch format {
	case FormatPNG:
		data, err = render.ToPNG(ctx, svg, scale)
	case FormatPDF:
		data, err = render.ToPDF(ctx, svg)
	}

	observability.Pipeline().OnRasterizeComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func wantsFormat(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
