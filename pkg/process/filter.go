package process

import "github.com/gitrdm/hibouengine/pkg/verdict"

// Criterion is the set of counters a filter checks a node against when the
// driver pops it from the queue, before the node is expanded.
type Criterion struct {
	LoopInstanciationCount int
	ProcessDepth           int
}

// FilterSet is the driver's filter pipeline: MaxLoopInstanciation(k),
// MaxProcessDepth(d), MaxNodeNumber(n). A zero value for a bound disables
// that filter. First match wins, checked in the order listed.
type FilterSet struct {
	MaxLoopInstanciation int
	MaxProcessDepth      int
	MaxNodeNumber        int
}

// Check evaluates the filter pipeline against a candidate's criterion and
// the driver's running node count, returning the first filter that would
// eliminate it.
func (f FilterSet) Check(c Criterion, nodeCountSoFar int) (verdict.FilterEliminationKind, bool) {
	if f.MaxLoopInstanciation > 0 && c.LoopInstanciationCount > f.MaxLoopInstanciation {
		return verdict.FilterMaxLoopInstanciation, true
	}
	if f.MaxProcessDepth > 0 && c.ProcessDepth > f.MaxProcessDepth {
		return verdict.FilterMaxProcessDepth, true
	}
	if f.MaxNodeNumber > 0 && nodeCountSoFar >= f.MaxNodeNumber {
		return verdict.FilterMaxNodeNumber, true
	}
	return verdict.FilterNone, false
}
