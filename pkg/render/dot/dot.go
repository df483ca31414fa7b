// Package dot renders the mindmap tree as a Graphviz diagram.
//
// This is the alternate "graph" view: a conventional top-down tree instead
// of the radial document. Graphviz computes its own layout here, so this
// view ignores the radial engine's positions and only consumes the tree
// topology and resolved colors.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/yanderlabs/mindweave/pkg/mindmap"
	"github.com/yanderlabs/mindweave/pkg/render"
)

// ToDOT converts a mindmap tree to Graphviz DOT format.
//
// The root is drawn as a doubly-outlined box, branches as filled boxes in
// their resolved colors, and leaves as lighter boxes connected with dashed
// edges. Node identifiers are positional (b0, b1-l2, ...) so duplicate
// labels cannot collide.
func ToDOT(root *mindmap.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph mindmap {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Arial\", margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  root [label=%q, peripheries=2, fontsize=20];\n", root.Label)

	for i, branch := range root.Children {
		id := fmt.Sprintf("b%d", i)
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q, fontcolor=white, fontsize=16];\n",
			id, branch.Label, branch.Color)
		for j, leaf := range branch.Children {
			leafID := fmt.Sprintf("%s_l%d", id, j)
			fmt.Fprintf(&buf, "  %s [label=%q, color=%q, fontsize=12];\n", leafID, leaf.Label, branch.Color)
		}
	}

	buf.WriteString("\n")
	for i, branch := range root.Children {
		id := fmt.Sprintf("b%d", i)
		fmt.Fprintf(&buf, "  root -> %s [color=%q];\n", id, branch.Color)
		for j := range branch.Children {
			fmt.Fprintf(&buf, "  %s -> %s_l%d [color=%q, style=dashed];\n", id, id, j, branch.Color)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's opening svg tag so the document uses
// a zero-origin viewBox with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
