// Package trace implements the data types for traces, multi-traces, and
// partitions of lifelines into observation localities.
package trace

import (
	"fmt"
	"sort"

	"github.com/gitrdm/hibouengine/pkg/interaction"
)

// MultiAction is a non-empty set of TraceAction observed simultaneously at
// one locality: kept sorted for canonical comparison.
type MultiAction []interaction.TraceAction

// NewMultiAction builds a sorted MultiAction. Returns an error if acts is
// empty, since a Trace element is always a non-empty set.
func NewMultiAction(acts []interaction.TraceAction) (MultiAction, error) {
	if len(acts) == 0 {
		return nil, fmt.Errorf("trace: multi-action requires at least one TraceAction")
	}
	return MultiAction(interaction.SortTraceActions(acts)), nil
}

// Equal compares two multi-actions as sets.
func (m MultiAction) Equal(other MultiAction) bool {
	return interaction.EqualTraceActionSets(m, other)
}

// Lifelines returns the distinct lifeline ids touched by m.
func (m MultiAction) Lifelines() map[int]struct{} {
	out := make(map[int]struct{}, len(m))
	for _, a := range m {
		out[a.Lifeline] = struct{}{}
	}
	return out
}

// Trace is a finite ordered sequence of multi-actions.
type Trace struct {
	Elements []MultiAction
}

// NewTrace builds a Trace from already-validated multi-actions.
func NewTrace(elements ...MultiAction) Trace {
	return Trace{Elements: elements}
}

// Empty reports whether the trace has no remaining elements.
func (t Trace) Empty() bool { return len(t.Elements) == 0 }

// Len returns the number of multi-actions remaining in the trace.
func (t Trace) Len() int { return len(t.Elements) }

// Head returns the trace's first multi-action.
func (t Trace) Head() (MultiAction, bool) {
	if t.Empty() {
		return nil, false
	}
	return t.Elements[0], true
}

// Tail returns the trace with its first multi-action removed.
func (t Trace) Tail() Trace {
	if t.Empty() {
		return t
	}
	return Trace{Elements: t.Elements[1:]}
}

// Equal compares two traces element by element.
func (t Trace) Equal(other Trace) bool {
	if len(t.Elements) != len(other.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// CoLocalizations is a partition of {0..lifelineCount-1} into disjoint
// observation localities; element i is the set of lifeline ids observed by
// canal i.
type CoLocalizations struct {
	Canals []map[int]struct{}
}

// Count returns the number of canals.
func (c CoLocalizations) Count() int { return len(c.Canals) }

// Trivial builds the CoLocalizations with a single canal observing every
// lifeline 0..lifelineCount-1.
func Trivial(lifelineCount int) CoLocalizations {
	canal := make(map[int]struct{}, lifelineCount)
	for i := 0; i < lifelineCount; i++ {
		canal[i] = struct{}{}
	}
	return CoLocalizations{Canals: []map[int]struct{}{canal}}
}

// Discrete builds the CoLocalizations with one canal per lifeline.
func Discrete(lifelineCount int) CoLocalizations {
	canals := make([]map[int]struct{}, lifelineCount)
	for i := 0; i < lifelineCount; i++ {
		canals[i] = map[int]struct{}{i: {}}
	}
	return CoLocalizations{Canals: canals}
}

// CanalOf returns the index of the canal observing lifeline, or -1 if no
// canal covers it (a malformed, non-total partition).
func (c CoLocalizations) CanalOf(lifeline int) int {
	for idx, canal := range c.Canals {
		if _, ok := canal[lifeline]; ok {
			return idx
		}
	}
	return -1
}

// SortedCanalIDs returns canal indices in ascending order, a convenience for
// deterministic iteration.
func (c CoLocalizations) SortedCanalIDs() []int {
	ids := make([]int, len(c.Canals))
	for i := range c.Canals {
		ids[i] = i
	}
	sort.Ints(ids)
	return ids
}

// MultiTrace is a vector of traces, one per canal, with length equal to
// CoLocalizations.Count().
type MultiTrace struct {
	Canals []Trace
}

// NewMultiTrace pairs canals positionally with a CoLocalizations; the
// caller is responsible for len(canals) == coloc.Count().
func NewMultiTrace(canals ...Trace) MultiTrace {
	return MultiTrace{Canals: canals}
}

// AllEmpty reports whether every canal's trace has been fully consumed.
func (mt MultiTrace) AllEmpty() bool {
	for _, c := range mt.Canals {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Equal compares two multi-traces canal by canal.
func (mt MultiTrace) Equal(other MultiTrace) bool {
	if len(mt.Canals) != len(other.Canals) {
		return false
	}
	for i := range mt.Canals {
		if !mt.Canals[i].Equal(other.Canals[i]) {
			return false
		}
	}
	return true
}
