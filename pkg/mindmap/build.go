package mindmap

import (
	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

// Default caps for tree construction. Seven branches matches the upper bound
// the drafting prompt asks for; three leaves per branch keeps the radial
// layout readable at 1920x1080.
const (
	DefaultMaxBranches    = 7
	DefaultMaxSubbranches = 3
)

// BuildConfig controls hierarchy construction.
type BuildConfig struct {
	// MaxBranches caps how many branches are taken from the structure,
	// in input order. Extras are dropped silently.
	MaxBranches int

	// MaxSubbranches caps how many leaves are taken per branch.
	MaxSubbranches int

	// Profile supplies the footprint constants for each node kind.
	Profile SizeProfile

	// Palette assigns colors to branches without an explicit color,
	// cycled by ordinal index. Leaves inherit their branch's color.
	Palette []string
}

// DefaultBuildConfig returns the standard caps with the default size profile
// and palette.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		MaxBranches:    DefaultMaxBranches,
		MaxSubbranches: DefaultMaxSubbranches,
		Profile:        DefaultProfile(),
		Palette:        DefaultPalette(),
	}
}

// DefaultPalette is the branch color cycle used when neither the structure
// nor the theme supplies colors.
func DefaultPalette() []string {
	return []string{"#00d4ff", "#ff6b6b", "#ffd93d", "#6bcb77", "#b980f0", "#ff9f45", "#4d96ff"}
}

// Build derives the three-level node tree from a structure.
//
// Branches beyond cfg.MaxBranches and leaves beyond cfg.MaxSubbranches are
// dropped silently, preserving input order. Every node gets its footprint
// from cfg.Profile and its resolved color; positions stay zero until
// [Layout] runs.
//
// Build fails only when the structure is nil or has an empty title
// (MALFORMED_STRUCTURE). A structure with zero branches yields a root-only
// tree. Build cannot tell an absent branches field from an empty one; it
// expects structures validated by [outline.Read], which rejects absence.
func Build(s *outline.Structure, cfg BuildConfig) (*Node, error) {
	if s == nil || s.Title == "" {
		return nil, errors.New(errors.ErrCodeMalformedStructure, "structure missing title")
	}
	if cfg.MaxBranches <= 0 {
		cfg.MaxBranches = DefaultMaxBranches
	}
	if cfg.MaxSubbranches <= 0 {
		cfg.MaxSubbranches = DefaultMaxSubbranches
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette()
	}

	root := &Node{Label: s.Title, Kind: KindRoot}
	root.Width, root.Height = cfg.Profile.Estimate(s.Title, KindRoot)

	branches := s.Branches
	if len(branches) > cfg.MaxBranches {
		branches = branches[:cfg.MaxBranches]
	}

	for i, b := range branches {
		color := b.Color
		if color == "" {
			color = cfg.Palette[i%len(cfg.Palette)]
		}

		branch := &Node{Label: b.Label, Kind: KindBranch, Color: color}
		branch.Width, branch.Height = cfg.Profile.Estimate(b.Label, KindBranch)

		leaves := b.Subbranches
		if len(leaves) > cfg.MaxSubbranches {
			leaves = leaves[:cfg.MaxSubbranches]
		}
		for _, l := range leaves {
			leaf := &Node{Label: l.Label, Kind: KindLeaf, Color: color, Notes: l.Notes}
			leaf.Width, leaf.Height = cfg.Profile.Estimate(l.Label, KindLeaf)
			branch.Children = append(branch.Children, leaf)
		}

		root.Children = append(root.Children, branch)
	}

	return root, nil
}
