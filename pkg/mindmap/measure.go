package mindmap

// KindSize holds the footprint constants for one node kind.
// Width is max(Floor, len(label)*PerChar + Offset); Height is fixed.
type KindSize struct {
	Floor   float64 `json:"floor"`
	PerChar float64 `json:"per_char"`
	Offset  float64 `json:"offset"`
	Height  float64 `json:"height"`
}

// SizeProfile maps each node kind to its footprint constants. Profiles are
// immutable values carried on the theme; one profile serves both the builder
// and the renderer so footprints never drift between the two.
type SizeProfile struct {
	Root   KindSize `json:"root"`
	Branch KindSize `json:"branch"`
	Leaf   KindSize `json:"leaf"`
}

// DefaultProfile is the sizing used by the regular themes.
func DefaultProfile() SizeProfile {
	return SizeProfile{
		Root:   KindSize{Floor: 300, PerChar: 12, Offset: 20, Height: 80},
		Branch: KindSize{Floor: 180, PerChar: 10, Offset: 16, Height: 60},
		Leaf:   KindSize{Floor: 140, PerChar: 9, Offset: 12, Height: 45},
	}
}

// CompactProfile is the tighter sizing used by the clean/light themes.
func CompactProfile() SizeProfile {
	return SizeProfile{
		Root:   KindSize{Floor: 240, PerChar: 10, Offset: 16, Height: 64},
		Branch: KindSize{Floor: 150, PerChar: 8, Offset: 12, Height: 48},
		Leaf:   KindSize{Floor: 110, PerChar: 7, Offset: 10, Height: 36},
	}
}

// Estimate returns the width and height footprint for a label of the given
// kind. The result is deterministic in the label length and always positive:
// the per-kind floor guards against empty labels.
func (p SizeProfile) Estimate(label string, kind Kind) (width, height float64) {
	s := p.forKind(kind)
	width = float64(len(label))*s.PerChar + s.Offset
	if width < s.Floor {
		width = s.Floor
	}
	return width, s.Height
}

func (p SizeProfile) forKind(kind Kind) KindSize {
	switch kind {
	case KindRoot:
		return p.Root
	case KindBranch:
		return p.Branch
	default:
		return p.Leaf
	}
}
