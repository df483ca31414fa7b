package mindmap

import (
	"math"
	"strings"
	"testing"
)

func TestCurveControlPointOffset(t *testing.T) {
	src := &Node{X: 0, Y: 0}
	dst := &Node{X: 100, Y: 0}

	p := Curve(src, dst, LinkBranch)

	if p.CY == 0 {
		t.Error("control point is collinear with a horizontal segment; want a perpendicular bow")
	}
	if p.CX != 50 {
		t.Errorf("CX = %v, want midpoint 50 (dy is zero)", p.CX)
	}
	// dx=100, dy=0: cy = my + dx*0.3*0.3 = 9.
	if math.Abs(p.CY-9) > tolerance {
		t.Errorf("CY = %v, want 9", p.CY)
	}
}

func TestCurveLeafBowsMore(t *testing.T) {
	src := &Node{X: 0, Y: 0}
	dst := &Node{X: 100, Y: 0}

	branch := Curve(src, dst, LinkBranch)
	leaf := Curve(src, dst, LinkLeaf)

	if math.Abs(leaf.CY) <= math.Abs(branch.CY) {
		t.Errorf("leaf bow %v should exceed branch bow %v", leaf.CY, branch.CY)
	}
}

func TestCurveEndpoints(t *testing.T) {
	src := &Node{X: 12.5, Y: -3}
	dst := &Node{X: -40, Y: 77}

	p := Curve(src, dst, LinkLeaf)

	if p.X1 != src.X || p.Y1 != src.Y || p.X2 != dst.X || p.Y2 != dst.Y {
		t.Errorf("endpoints moved: %+v", p)
	}
}

func TestPathSVG(t *testing.T) {
	p := Path{X1: 0, Y1: 0, CX: 50, CY: 9, X2: 100, Y2: 0}
	got := p.SVG()

	if !strings.HasPrefix(got, "M 0.0,0.0 Q 50.0,9.0") {
		t.Errorf("SVG() = %q", got)
	}
	if !strings.HasSuffix(got, "100.0,0.0") {
		t.Errorf("SVG() = %q", got)
	}
}
