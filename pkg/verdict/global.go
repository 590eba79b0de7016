package verdict

// Global is the conformance lattice: Fail < Inconc < WeakPass < Pass. A
// process run's global verdict is the supremum of every local
// verdict folded in along the way.
type Global int

const (
	Fail Global = iota
	Inconc
	WeakPass
	Pass
)

func (g Global) String() string {
	switch g {
	case Fail:
		return "Fail"
	case Inconc:
		return "Inconc"
	case WeakPass:
		return "WeakPass"
	case Pass:
		return "Pass"
	default:
		return "?"
	}
}

// Join returns the least upper bound of two global verdicts under the
// Fail < Inconc < WeakPass < Pass lattice: folding a new local verdict in
// can only ever move the aggregate up or leave it where it is, it can never
// move it back down (a later Pass leaf does not erase an earlier Fail).
//
// This is deliberately NOT max(g, other): Fail is absorbing from above in
// the sense that once any leaf reaches Fail, the global verdict is pinned
// to Fail regardless of what else is folded in afterwards.
func (g Global) Join(other Global) Global {
	if g == Fail || other == Fail {
		return Fail
	}
	if g > other {
		return g
	}
	return other
}

// FromLocal maps a leaf's local verdict onto the global lattice, per
// conformance duality. Cov/MultiPref/Slice conclude a
// conformant branch (Pass under Accept semantics, the caller decides via
// Kind whether WeakPass is the ceiling for Prefix-mode goals).
func FromLocal(l Local) Global {
	switch l.Kind {
	case LocalCov:
		return Pass
	case LocalMultiPref, LocalSlice:
		return WeakPass
	case LocalTooShort:
		return WeakPass
	case LocalOut, LocalOutSim:
		return Fail
	case LocalInconc:
		return Inconc
	default:
		return Inconc
	}
}

// IsGoalReached reports whether g already satisfies the goal predicate for
// the given AnalysisGoal, enabling the driver to exit early once Pass is
// reached under Accept, or WeakPass under Prefix if configured as goal.
func IsGoalReached(g Global, goal Global) bool {
	return g >= goal
}

// FilterEliminationKind names which driver filter eliminated a node: filter
// eliminations are not errors, they are annotations that can taint a
// global verdict with InconcLocal(FilteredNodes).
type FilterEliminationKind int

const (
	FilterNone FilterEliminationKind = iota
	FilterMaxLoopInstanciation
	FilterMaxProcessDepth
	FilterMaxNodeNumber
)

func (f FilterEliminationKind) String() string {
	switch f {
	case FilterMaxLoopInstanciation:
		return "MaxLoopInstanciation"
	case FilterMaxProcessDepth:
		return "MaxProcessDepth"
	case FilterMaxNodeNumber:
		return "MaxNodeNumber"
	default:
		return "None"
	}
}
