package radial

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/yanderlabs/mindweave/pkg/mindmap"
)

// Render draws a laid-out tree and its links as a standalone SVG document of
// exactly width x height.
//
// The z-order is fixed: background, optional dot grid, connectors, leaf
// shapes and labels, branch shapes and labels, and the root on top with its
// word-wrapped multi-line label. The output is resolution independent;
// rasterization is a separate concern (see the render package).
func Render(root *mindmap.Node, links []mindmap.Link, theme Theme, width, height float64) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	renderDefs(&buf, theme)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n", width, height, theme.Background)
	if theme.Grid {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="url(#dot-grid)"/>`+"\n", width, height)
	}

	for _, l := range links {
		renderLink(&buf, l, theme)
	}

	// Leaves first, then branches, so inner tiers draw over outer ones.
	forKind(root, mindmap.KindLeaf, func(n *mindmap.Node) { renderLeaf(&buf, n, theme) })
	forKind(root, mindmap.KindBranch, func(n *mindmap.Node) { renderBranch(&buf, n, theme) })
	renderRoot(&buf, root, theme)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, theme Theme) {
	buf.WriteString("  <defs>\n")

	fmt.Fprintf(buf, `    <linearGradient id="root-grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" stop-color="%s"/>
      <stop offset="100%%" stop-color="%s"/>
    </linearGradient>
`, theme.RootGradient[0], theme.RootGradient[1])

	if !theme.Flat {
		buf.WriteString(`    <filter id="soft-shadow" x="-20%" y="-20%" width="140%" height="140%">
      <feDropShadow dx="0" dy="4" stdDeviation="6" flood-opacity="0.35"/>
    </filter>
    <filter id="glow" x="-40%" y="-40%" width="180%" height="180%">
      <feGaussianBlur stdDeviation="5" result="blur"/>
      <feMerge>
        <feMergeNode in="blur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
`)
	}

	if theme.Grid {
		fmt.Fprintf(buf, `    <pattern id="dot-grid" width="40" height="40" patternUnits="userSpaceOnUse">
      <circle cx="2" cy="2" r="1.5" fill="%s"/>
    </pattern>
`, theme.GridColor)
	}

	buf.WriteString("  </defs>\n")
}

func renderLink(buf *bytes.Buffer, l mindmap.Link, theme Theme) {
	path := mindmap.Curve(l.Source, l.Target, l.Kind)

	width, opacity := theme.BranchLinkW, theme.BranchOpacity
	dash := ""
	if l.Kind == mindmap.LinkLeaf {
		width, opacity = theme.LeafLinkW, theme.LeafOpacity
		if theme.LeafDash != "" {
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, theme.LeafDash)
		}
	}

	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f" opacity="%.2f"%s/>`+"\n",
		path.SVG(), l.Color, width, opacity, dash)
}

func renderLeaf(buf *bytes.Buffer, n *mindmap.Node, theme Theme) {
	renderRect(buf, n, theme.LeafFill, n.Color, 2, theme.LeafRadius, "")
	renderLabel(buf, n.X, n.Y, n.Label, theme.LeafFont, theme.TextFill(mindmap.KindLeaf), theme, false)
}

func renderBranch(buf *bytes.Buffer, n *mindmap.Node, theme Theme) {
	filter := ""
	if !theme.Flat {
		filter = "soft-shadow"
	}
	renderRect(buf, n, n.Color, theme.NodeStroke, 2, theme.BranchRadius, filter)
	renderLabel(buf, n.X, n.Y, n.Label, theme.BranchFont, theme.TextFill(mindmap.KindBranch), theme, true)
}

func renderRoot(buf *bytes.Buffer, n *mindmap.Node, theme Theme) {
	fill := "url(#root-grad)"
	filter := ""
	if theme.Flat {
		fill = theme.RootGradient[0]
	} else {
		filter = "glow"
	}

	renderRect(buf, n, fill, theme.NodeStroke, 3, theme.RootRadius, filter)

	lines := wrapLabel(n.Label, theme.WrapBudget)
	lineHeight := theme.RootFont * 1.2
	for i, line := range lines {
		y := n.Y + (float64(i)-float64(len(lines)-1)/2)*lineHeight + theme.RootFont*0.3
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0fpx" font-weight="bold" font-family="%s" fill="%s">%s</text>`+"\n",
			n.X, y, theme.RootFont, theme.FontFamily, theme.TextFill(mindmap.KindRoot), escapeXML(line))
	}
}

func renderRect(buf *bytes.Buffer, n *mindmap.Node, fill, stroke string, strokeWidth, radius float64, filter string) {
	attr := ""
	if filter != "" {
		attr = fmt.Sprintf(` filter="url(#%s)"`, filter)
	}
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" ry="%.0f" fill="%s" stroke="%s" stroke-width="%.0f"%s/>`+"\n",
		n.X-n.Width/2, n.Y-n.Height/2, n.Width, n.Height, radius, radius, fill, stroke, strokeWidth, attr)
}

func renderLabel(buf *bytes.Buffer, x, y float64, label string, size float64, fill string, theme Theme, bold bool) {
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0fpx"%s font-family="%s" fill="%s">%s</text>`+"\n",
		x, y+size*0.3, size, weight, theme.FontFamily, fill, escapeXML(label))
}

// wrapLabel greedily packs words into lines of at most budget characters.
// A single word longer than the budget gets its own line rather than being
// broken mid-word.
func wrapLabel(label string, budget int) []string {
	if budget <= 0 || len(label) <= budget {
		return []string{label}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(label) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= budget:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{label}
	}
	return lines
}

func forKind(root *mindmap.Node, kind mindmap.Kind, fn func(*mindmap.Node)) {
	mindmap.Walk(root, func(n *mindmap.Node) {
		if n.Kind == kind {
			fn(n)
		}
	})
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
