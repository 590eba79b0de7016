package trace

// TraceAnalysisFlags is the per-canal bookkeeping an analysis run threads
// through a path: discarded on backtrack, never shared across
// branches.
type TraceAnalysisFlags struct {
	Consumed               int
	SimulatedBefore        int
	SimulatedAfter         int
	NoLongerObserved       bool
	DirtyForLocalAnalysis  bool
}

// MultiTraceAnalysisFlags is the aggregate over a MultiTrace: a remaining
// simulation budget plus one TraceAnalysisFlags per canal.
type MultiTraceAnalysisFlags struct {
	RemLoopInSim int
	RemActInSim  int
	Canals       []TraceAnalysisFlags

	// HiddenUnderColocalizations is set once a canal along this path was
	// eliminated under the Hide analysis discipline while more than one
	// canal was in play: the resulting verdict is coarsened regardless of
	// what the rest of the path would otherwise conclude.
	HiddenUnderColocalizations bool
}

// NewMultiTraceAnalysisFlags builds the initial flags for canalCount canals
// with the given simulation budgets.
func NewMultiTraceAnalysisFlags(canalCount, remLoopInSim, remActInSim int) MultiTraceAnalysisFlags {
	return MultiTraceAnalysisFlags{
		RemLoopInSim: remLoopInSim,
		RemActInSim:  remActInSim,
		Canals:       make([]TraceAnalysisFlags, canalCount),
	}
}

// Clone returns a deep, independent copy -- every analysis step produces a
// fresh flags value rather than mutating the parent's, matching the
// immutable-interaction discipline ("Flags evolve along a single
// analysis path and are discarded on backtrack").
func (f MultiTraceAnalysisFlags) Clone() MultiTraceAnalysisFlags {
	out := MultiTraceAnalysisFlags{
		RemLoopInSim:               f.RemLoopInSim,
		RemActInSim:                f.RemActInSim,
		Canals:                     make([]TraceAnalysisFlags, len(f.Canals)),
		HiddenUnderColocalizations: f.HiddenUnderColocalizations,
	}
	copy(out.Canals, f.Canals)
	return out
}

// AllNoLongerObserved reports whether every canal has been marked
// no-longer-observed.
func (f MultiTraceAnalysisFlags) AllNoLongerObserved() bool {
	for _, c := range f.Canals {
		if !c.NoLongerObserved {
			return false
		}
	}
	return true
}

// IsIncludedForMemoization reports whether this flags value is subsumed by
// other for the same interaction: same-or-greater remaining simulation
// budget and same-or-lesser consumption on every canal lets the process
// driver skip exploring a node it has already covered via a
// more-permissive path.
func (f MultiTraceAnalysisFlags) IsIncludedForMemoization(other MultiTraceAnalysisFlags) bool {
	if f.RemLoopInSim > other.RemLoopInSim || f.RemActInSim > other.RemActInSim {
		return false
	}
	if f.HiddenUnderColocalizations && !other.HiddenUnderColocalizations {
		return false
	}
	if len(f.Canals) != len(other.Canals) {
		return false
	}
	for i := range f.Canals {
		a, b := f.Canals[i], other.Canals[i]
		if a.Consumed > b.Consumed {
			return false
		}
		if a.SimulatedBefore > b.SimulatedBefore || a.SimulatedAfter > b.SimulatedAfter {
			return false
		}
	}
	return true
}
