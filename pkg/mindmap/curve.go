package mindmap

import "fmt"

// Curvature factors per link kind. Leaf connectors bow slightly more than
// branch connectors so the outer tier reads as organic rather than spoked.
const (
	branchCurvature = 0.3
	leafCurvature   = 0.4
)

// Path is a quadratic Bézier curve through one control point.
type Path struct {
	X1, Y1 float64 // source center
	CX, CY float64 // control point
	X2, Y2 float64 // target center
}

// Curve computes the connector path between two node centers.
//
// The control point is the segment midpoint offset along the perpendicular
// (-dy, dx), scaled by the kind's curvature. The result is purely geometric:
// no randomness, no state.
func Curve(source, target *Node, kind LinkKind) Path {
	c := branchCurvature
	if kind == LinkLeaf {
		c = leafCurvature
	}

	dx := target.X - source.X
	dy := target.Y - source.Y
	mx := (source.X + target.X) / 2
	my := (source.Y + target.Y) / 2

	return Path{
		X1: source.X, Y1: source.Y,
		CX: mx - dy*c*0.3, CY: my + dx*c*0.3,
		X2: target.X, Y2: target.Y,
	}
}

// SVG returns the path in SVG path-data syntax ("M x,y Q cx,cy x,y").
func (p Path) SVG() string {
	return fmt.Sprintf("M %.1f,%.1f Q %.1f,%.1f %.1f,%.1f", p.X1, p.Y1, p.CX, p.CY, p.X2, p.Y2)
}
