// Package pkg provides the core libraries for Mindweave mindmap rendering.
//
// # Overview
//
// Mindweave turns a content outline — a central title with branches and
// sub-branches — into a styled radial mindmap. The pkg directory is
// organized into these areas:
//
//  1. [outline] - Input format (parse, validate, save outline JSON)
//  2. [mindmap] - Domain logic (tree build, footprint estimation, layout)
//  3. [render] - Output formats (radial SVG, Graphviz DOT, PDF/PNG conversion)
//  4. [pipeline] - Orchestration (build → layout → render)
//  5. [draft] - Outline drafting through an OpenAI-compatible completion API
//  6. [board] - Page composition and publishing to the team board (MongoDB)
//
// # Architecture
//
// The typical data flow through Mindweave:
//
//	Outline JSON (title + branches)
//	         ↓
//	    [mindmap] package (build node tree, cap branches, estimate footprints)
//	         ↓
//	    [mindmap] layout (radial placement + overlap relaxation)
//	         ↓
//	    [render] package (radial SVG, DOT, geometry JSON)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Load an outline and render it:
//
//	import (
//	    "context"
//	    "github.com/yanderlabs/mindweave/pkg/outline"
//	    "github.com/yanderlabs/mindweave/pkg/pipeline"
//	)
//
//	s, _ := outline.Load("growth.json")
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(context.Background(), s, pipeline.Options{
//	    Theme:   "midnight",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// [outline] - The canonical input format: a title plus ordered branches,
// each with optional sub-branches, colors, and notes. Shared by files on
// disk, the drafting agent's output contract, and board publishing.
//
// [mindmap] - Tree building with branch caps, theme-driven footprint
// estimation, radial layout with collision relaxation, and connector
// geometry.
//
// [render/radial] - The styled radial SVG document, including the built-in
// themes. [render/dot] converts the positioned tree to Graphviz DOT and
// renders the conventional graph view. [render] itself converts SVG to PNG
// and PDF through rsvg-convert.
//
// [pipeline] - The complete build → layout → render pipeline used by CLI
// and server. Ensures consistent behavior across all entry points.
//
// [draft] - Drafting outlines from a topic through any OpenAI-compatible
// chat completion endpoint.
//
// [board] - Composing outline pages (headings, bullets, note paragraphs)
// and storing them on the shared MongoDB board.
//
// [cache] - Artifact caching for the preview server, with file, Redis, and
// null backends keyed by outline content hash.
//
// [httputil] - Retry with exponential backoff for transient HTTP failures.
//
// [errors] - Structured error codes shared across all packages.
//
// [observability] - Pluggable hooks for pipeline stages, cache access, and
// outbound HTTP.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/mindmap/...   # Specific package
//
// [outline]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/outline
// [mindmap]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/mindmap
// [render]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/render
// [render/radial]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/render/radial
// [render/dot]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/pipeline
// [draft]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/draft
// [board]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/board
// [cache]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/errors
// [observability]: https://pkg.go.dev/github.com/yanderlabs/mindweave/pkg/observability
package pkg
