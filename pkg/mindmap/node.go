// Package mindmap computes spatial layouts for three-level mindmap trees.
//
// # Overview
//
// The package transforms an [outline.Structure] (title, branches, sub-branches)
// into a positioned node tree ready for rendering:
//
//  1. Build: derive the node tree, apply branch/leaf caps, estimate footprints
//  2. Layout: place the root at canvas center, distribute branches on a ring,
//     stack leaves outward, then relax pairwise overlaps and clamp to bounds
//  3. Curve: compute a quadratic Bézier control point per link
//
// The layout engine owns and mutates the tree for the duration of one call;
// nothing in this package keeps state across calls, so concurrent layouts of
// separate trees need no coordination.
//
// # Usage
//
//	root, err := mindmap.Build(structure, mindmap.DefaultBuildConfig())
//	if err != nil {
//	    return err
//	}
//	stats := mindmap.Layout(root, 1920, 1080, mindmap.DefaultConfig())
//	links := mindmap.Links(root)
//
// [outline.Structure]: github.com/yanderlabs/mindweave/pkg/outline
package mindmap

// Kind distinguishes the three node levels of a mindmap tree.
type Kind int

const (
	// KindRoot is the single central node carrying the title.
	KindRoot Kind = iota
	// KindBranch is a first-level child of the root: one main topic.
	KindBranch
	// KindLeaf is a second-level child of a branch: one sub-topic.
	KindLeaf
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindBranch:
		return "branch"
	case KindLeaf:
		return "leaf"
	}
	return "unknown"
}

// Node is one positioned element of the mindmap tree.
//
// X and Y are center coordinates; Width and Height are the footprint used for
// collision checks and for drawing the rounded rectangle. Angle is the
// outward direction from the node's parent in radians (unset for the root).
// Color is the resolved fill color: branches carry their own or a palette
// color, leaves inherit their parent branch's color.
type Node struct {
	Label    string   `json:"label" bson:"label"`
	Kind     Kind     `json:"-" bson:"-"`
	X        float64  `json:"x" bson:"x"`
	Y        float64  `json:"y" bson:"y"`
	Width    float64  `json:"width" bson:"width"`
	Height   float64  `json:"height" bson:"height"`
	Angle    float64  `json:"angle,omitempty" bson:"angle,omitempty"`
	Color    string   `json:"color,omitempty" bson:"color,omitempty"`
	Notes    []string `json:"notes,omitempty" bson:"notes,omitempty"`
	Children []*Node  `json:"children,omitempty" bson:"children,omitempty"`
}

// LinkKind distinguishes root→branch connectors from branch→leaf connectors.
type LinkKind string

const (
	// LinkBranch connects the root to a branch.
	LinkBranch LinkKind = "branch"
	// LinkLeaf connects a branch to one of its leaves.
	LinkLeaf LinkKind = "leaf"
)

// Link is one connector between a parent and child node. Links are derived
// from the finished tree once per render and are not persisted independently.
type Link struct {
	Source *Node
	Target *Node
	Kind   LinkKind
	Color  string
}

// Links derives the link list from a laid-out tree: one link per branch
// (root→branch) and one per leaf (branch→leaf), in tree order. Link colors
// are the owning branch's resolved color.
func Links(root *Node) []Link {
	var links []Link
	for _, branch := range root.Children {
		links = append(links, Link{Source: root, Target: branch, Kind: LinkBranch, Color: branch.Color})
		for _, leaf := range branch.Children {
			links = append(links, Link{Source: branch, Target: leaf, Kind: LinkLeaf, Color: branch.Color})
		}
	}
	return links
}

// Walk visits root and every descendant in depth-first tree order.
func Walk(root *Node, fn func(*Node)) {
	fn(root)
	for _, c := range root.Children {
		Walk(c, fn)
	}
}

// Count returns the total number of nodes in the tree, root included.
func Count(root *Node) int {
	n := 0
	Walk(root, func(*Node) { n++ })
	return n
}
