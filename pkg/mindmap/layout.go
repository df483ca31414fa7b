package mindmap

import "math"

// Config carries the radial layout parameters. All values are immutable for
// the duration of one Layout call.
type Config struct {
	// BranchRadiusFactor sets the branch ring radius as a fraction of
	// min(canvasWidth, canvasHeight).
	BranchRadiusFactor float64

	// LeafRadius is the distance from a branch to its leaf column base,
	// measured along the branch's outward angle.
	LeafRadius float64

	// LeafSpacing is the perpendicular spacing between stacked leaves.
	LeafSpacing float64

	// Padding is the clearance enforced around every footprint during
	// collision checks, applied to each side of the bounding box.
	Padding float64

	// PushForce is the displacement applied to resolve one overlapping
	// pair in one relaxation pass.
	PushForce float64

	// MaxIterations caps the number of relaxation passes. Layout is
	// best-effort: dense inputs may keep residual overlap at the cap.
	MaxIterations int

	// Margin is the minimum distance between any footprint edge and the
	// canvas border.
	Margin float64
}

// DefaultConfig returns the layout parameters tuned for a 1920x1080 canvas.
func DefaultConfig() Config {
	return Config{
		BranchRadiusFactor: 0.35,
		LeafRadius:         250,
		LeafSpacing:        80,
		Padding:            20,
		PushForce:          24,
		MaxIterations:      50,
		Margin:             100,
	}
}

// Stats reports what the relaxation loop did. ResidualOverlaps is nonzero
// when MaxIterations ran out before the tree was overlap-free; that is an
// accepted outcome, not an error.
type Stats struct {
	Passes           int
	ResidualOverlaps int
}

// Layout assigns positions to every node of the tree, in place.
//
// The root is pinned at canvas center and never moves. Branches are placed
// at equal angular increments around the root, starting at the top; each
// branch's leaves are stacked on a perpendicular column outward from it.
// Pairwise overlaps among non-root nodes are then relaxed for up to
// cfg.MaxIterations passes, and finally every non-root footprint is clamped
// inside the canvas margins.
//
// Layout never fails: it terminates within cfg.MaxIterations regardless of
// input density and is fully deterministic for identical trees and config.
func Layout(root *Node, canvasWidth, canvasHeight float64, cfg Config) Stats {
	root.X = canvasWidth / 2
	root.Y = canvasHeight / 2

	placeBranches(root, canvasWidth, canvasHeight, cfg)

	movable := collectMovable(root)
	stats := relax(movable, cfg)
	clampToBounds(movable, canvasWidth, canvasHeight, cfg.Margin)
	return stats
}

// placeBranches distributes the branches on a ring around the root and
// stacks each branch's leaves on a column perpendicular to its outward angle.
func placeBranches(root *Node, canvasWidth, canvasHeight float64, cfg Config) {
	n := len(root.Children)
	if n == 0 {
		return
	}

	radius := cfg.BranchRadiusFactor * math.Min(canvasWidth, canvasHeight)
	step := 2 * math.Pi / float64(n)

	for i, branch := range root.Children {
		angle := float64(i)*step - math.Pi/2
		branch.Angle = angle
		branch.X = root.X + radius*math.Cos(angle)
		branch.Y = root.Y + radius*math.Sin(angle)

		placeLeaves(branch, cfg)
	}
}

// placeLeaves stacks a branch's leaves outward from it: the column base sits
// at LeafRadius along the branch's outward angle, and leaves spread along
// the perpendicular axis, centered on the base.
func placeLeaves(branch *Node, cfg Config) {
	m := len(branch.Children)
	if m == 0 {
		return
	}

	baseX := branch.X + cfg.LeafRadius*math.Cos(branch.Angle)
	baseY := branch.Y + cfg.LeafRadius*math.Sin(branch.Angle)

	// Perpendicular to the outward direction.
	perpX := -math.Sin(branch.Angle)
	perpY := math.Cos(branch.Angle)

	for j, leaf := range branch.Children {
		offset := (float64(j) - float64(m-1)/2) * cfg.LeafSpacing
		leaf.Angle = branch.Angle
		leaf.X = baseX + perpX*offset
		leaf.Y = baseY + perpY*offset
	}
}

// collectMovable returns every non-root node in tree order. The root is
// excluded: it is the fixed anchor for the whole layout.
func collectMovable(root *Node) []*Node {
	var nodes []*Node
	for _, branch := range root.Children {
		nodes = append(nodes, branch)
		nodes = append(nodes, branch.Children...)
	}
	return nodes
}

// relax runs up to cfg.MaxIterations passes over all unordered pairs,
// pushing overlapping nodes apart. It stops early on the first clean pass.
func relax(nodes []*Node, cfg Config) Stats {
	var stats Stats

	for pass := 0; pass < cfg.MaxIterations; pass++ {
		overlaps := 0
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				if !overlapping(nodes[i], nodes[j], cfg.Padding) {
					continue
				}
				overlaps++
				push(nodes[i], nodes[j], cfg.PushForce)
			}
		}

		stats.Passes = pass + 1
		stats.ResidualOverlaps = overlaps
		if overlaps == 0 {
			break
		}
	}

	return stats
}

// overlapping reports whether the axis-aligned bounding boxes of a and b,
// each padded on every side, intersect.
func overlapping(a, b *Node, padding float64) bool {
	return math.Abs(a.X-b.X) < (a.Width+b.Width)/2+2*padding &&
		math.Abs(a.Y-b.Y) < (a.Height+b.Height)/2+2*padding
}

// push moves one or both nodes apart along the center-to-center axis.
// When exactly one of the pair is a leaf, only the leaf moves: branches are
// structurally anchored relative to the root, leaves are the flexible
// element. Same-kind pairs split the force and move apart symmetrically.
func push(a, b *Node, force float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		// Coincident centers: separate along x, deterministically.
		dx, dist = 1, 1
	}
	ux := dx / dist
	uy := dy / dist

	switch {
	case a.Kind == KindLeaf && b.Kind != KindLeaf:
		a.X -= ux * force
		a.Y -= uy * force
	case b.Kind == KindLeaf && a.Kind != KindLeaf:
		b.X += ux * force
		b.Y += uy * force
	default:
		a.X -= ux * force / 2
		a.Y -= uy * force / 2
		b.X += ux * force / 2
		b.Y += uy * force / 2
	}
}

// clampToBounds keeps every footprint fully inside
// [margin, dimension-margin] on both axes. Near crowded edges this can
// reintroduce minor overlap; accepted in exchange for guaranteed bounds.
func clampToBounds(nodes []*Node, canvasWidth, canvasHeight, margin float64) {
	for _, n := range nodes {
		n.X = clamp(n.X, margin+n.Width/2, canvasWidth-margin-n.Width/2)
		n.Y = clamp(n.Y, margin+n.Height/2, canvasHeight-margin-n.Height/2)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// Footprint wider than the canvas allows; center it.
		return (lo + hi) / 2
	}
	return math.Min(math.Max(v, lo), hi)
}
