package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
	"github.com/yanderlabs/mindweave/pkg/pipeline"
)

// writeOrder lists the formats in the order artifacts hit the disk: vector
// documents first, raster conversions last, so a raster backend failure never
// costs a finished vector file.
var writeOrder = []string{
	pipeline.FormatSVG,
	pipeline.FormatDOT,
	pipeline.FormatJSON,
	pipeline.FormatPNG,
	pipeline.FormatPDF,
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output directory
	name   string // explicit output base name
	theme  string
	view   string
	width  float64
	height float64
	scale  float64
	maxB   int // max branches
	maxS   int // max sub-branches per branch
}

// renderCommand creates the render command for generating mindmap images.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		output: c.Config.Output,
		theme:  c.Config.Theme,
		width:  c.Config.Width,
		height: c.Config.Height,
	}
	if opts.output == "" {
		opts.output = "."
	}

	cmd := &cobra.Command{
		Use:   "render [outline.json]",
		Short: "Render an outline as a mindmap",
		Long: `Render a content outline as a mindmap image.

The outline is a JSON file with a title and a list of branches, each with
optional sub-branches. Pass "-" to read the outline from stdin, or run
without arguments to pick an outline file interactively.

Formats: svg (vector, default), png and pdf (via librsvg), json (positioned
geometry), dot (Graphviz source). Vector outputs are always written before
raster conversions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			formats := parseFormats(formatsStr)
			if formatsStr == "" && len(c.Config.Formats) > 0 {
				formats = c.Config.Formats
			}
			popts := pipeline.Options{
				Theme:          opts.theme,
				View:           opts.view,
				Width:          opts.width,
				Height:         opts.height,
				Scale:          opts.scale,
				MaxBranches:    opts.maxB,
				MaxSubbranches: opts.maxS,
				Formats:        formats,
				Logger:         c.Logger,
			}
			return c.runRender(cmd.Context(), input, popts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory (created if absent)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "output base name (default: derived from outline title)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", opts.theme, "visual theme (see 'mindweave themes')")
	cmd.Flags().StringVar(&opts.view, "view", "", "view: radial (default), graph")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster scale factor (default 2.0)")
	cmd.Flags().IntVar(&opts.maxB, "max-branches", 0, "max branches taken from the outline (default 7)")
	cmd.Flags().IntVar(&opts.maxS, "max-subbranches", 0, "max sub-branches per branch (default 3)")

	return cmd
}

// runRender loads the outline, executes the pipeline, and writes artifacts.
func (c *CLI) runRender(ctx context.Context, input string, popts pipeline.Options, opts renderOpts) error {
	s, input, err := c.loadOutline(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %q...", s.Title))
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, s, popts)
	if err != nil && result == nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	base := pipeline.BaseName(opts.name, s.Title, input, time.Now())
	written, werr := writeArtifacts(result.Artifacts, opts.output, base)
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.LinkCount, result.Stats.ResidualOverlaps)

	// A raster failure after finished vector writes reports only the raster
	// stage; the vector files above stay on disk.
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	if werr != nil {
		return werr
	}

	prog.done(fmt.Sprintf("rendered %q", s.Title))
	printSuccess("Rendered %q", s.Title)
	return nil
}

// loadOutline reads the outline from a file, stdin ("-"), or the interactive
// picker when no input was given.
func (c *CLI) loadOutline(input string) (*outline.Structure, string, error) {
	switch input {
	case "-":
		s, err := outline.Read(os.Stdin)
		return s, "stdin", err
	case "":
		picked, err := pickOutline(".")
		if err != nil {
			return nil, "", err
		}
		s, err := outline.Load(picked)
		return s, picked, err
	default:
		s, err := outline.Load(input)
		return s, input, err
	}
}

// writeArtifacts writes each rendered artifact to dir as base.format, in
// vector-first order. It returns the paths written so far and the first
// write error.
func writeArtifacts(artifacts map[string][]byte, dir, base string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "create output directory %s", dir)
	}

	var written []string
	for _, format := range writeOrder {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, base+"."+format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
		}
		written = append(written, path)
	}
	return written, nil
}
