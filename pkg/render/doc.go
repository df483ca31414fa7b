// Package render provides mindmap rendering and format conversion.
//
// # Overview
//
// This package contains the rendering surface that transforms laid-out
// mindmap trees into visual outputs:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Radial mindmap documents (in [radial] subpackage)
//   - Graphviz tree diagrams (in [dot] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The subprocess call is
// context-aware and bounded by [DefaultTimeout]; a missing backend or an
// expired deadline is reported as a structured error, never retried.
//
//	svg := radial.Render(root, links, theme, 1920, 1080)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Radial Documents
//
// The [radial] subpackage renders the positioned node tree as a styled SVG
// document: themed background, curved connectors, rounded node shapes, and
// a word-wrapped central title. This is Mindweave's signature output.
//
// # Tree Diagrams
//
// The [dot] subpackage renders the outline tree as a conventional directed
// diagram via Graphviz, for readers who prefer a top-down view.
//
// [radial]: github.com/yanderlabs/mindweave/pkg/render/radial
// [dot]: github.com/yanderlabs/mindweave/pkg/render/dot
package render
