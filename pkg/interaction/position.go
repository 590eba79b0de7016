package interaction

import "fmt"

// PositionKind tags the four shapes a Position can take.
type PositionKind int

const (
	PosEpsilon PositionKind = iota
	PosLeft
	PosRight
	PosBoth
)

// Position is a path into a term: Epsilon(optional sub-index), Left(p),
// Right(p), or Both(p,q) for the two sides of a Sync match. The sub-index
// on Epsilon names one leaf within a multi-target action (one target of an
// Emission, one recipient of a Reception); -1 means "the whole action".
type Position struct {
	Kind     PositionKind
	SubIndex int // only meaningful when Kind == PosEpsilon; -1 if absent

	Sub      *Position // Left/Right
	SubLeft  *Position // Both
	SubRight *Position // Both
}

// Epsilon builds a leaf position, optionally naming one sub-index.
func Epsilon(subIndex int) Position {
	return Position{Kind: PosEpsilon, SubIndex: subIndex}
}

// EpsilonWhole builds a leaf position addressing the whole action.
func EpsilonWhole() Position { return Epsilon(-1) }

// Left prefixes p with a Left step.
func Left(p Position) Position {
	q := p
	return Position{Kind: PosLeft, Sub: &q}
}

// Right prefixes p with a Right step.
func Right(p Position) Position {
	q := p
	return Position{Kind: PosRight, Sub: &q}
}

// BothPos pairs two positions, one from each side of a Sync match.
func BothPos(l, r Position) Position {
	ql, qr := l, r
	return Position{Kind: PosBoth, SubLeft: &ql, SubRight: &qr}
}

func (p Position) String() string {
	switch p.Kind {
	case PosEpsilon:
		if p.SubIndex < 0 {
			return "."
		}
		return fmt.Sprintf(".%d", p.SubIndex)
	case PosLeft:
		return "L" + p.Sub.String()
	case PosRight:
		return "R" + p.Sub.String()
	case PosBoth:
		return fmt.Sprintf("Both(%s,%s)", p.SubLeft.String(), p.SubRight.String())
	default:
		return "?"
	}
}

// Equal performs a structural comparison of two positions.
func (p Position) Equal(other Position) bool {
	if p.Kind != other.Kind {
		return false
	}
	switch p.Kind {
	case PosEpsilon:
		return p.SubIndex == other.SubIndex
	case PosLeft, PosRight:
		return p.Sub.Equal(*other.Sub)
	case PosBoth:
		return p.SubLeft.Equal(*other.SubLeft) && p.SubRight.Equal(*other.SubRight)
	default:
		return false
	}
}
