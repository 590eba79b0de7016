package process

import "github.com/gitrdm/hibouengine/pkg/verdict"

// Handler supplies a process configuration's domain-specific behavior to
// the generic Driver: N is the node type, S is the step type.
type Handler[N any, S any] interface {
	// CollectNextSteps enumerates the steps applicable at node.
	CollectNextSteps(node N) []S
	// ProcessNewStep builds the child node that results from firing step
	// out of parent.
	ProcessNewStep(parent N, step S) N
	// Priority ranks step for the priority-first queue strategy; ignored
	// under breadth-first/depth-first.
	Priority(step S) int32
	// LoopInstanciationCount reports how many times node's path has
	// unrolled a loop, for the MaxLoopInstanciation filter.
	LoopInstanciationCount(node N) int
	// LocalVerdictWhenNoChild is consulted when CollectNextSteps returns no
	// step: a leaf of the process tree.
	LocalVerdictWhenNoChild(node N) verdict.Local
	// StaticLocalVerdict is a fast path: if it returns ok, its verdict is
	// folded in immediately without expanding node's children.
	StaticLocalVerdict(node N) (verdict.Local, bool)
	// PursueAfterStaticVerdict reports whether node should still be
	// expanded after StaticLocalVerdict fired.
	PursueAfterStaticVerdict(v verdict.Local) bool
	// Subsumes reports whether seen already covers every outcome candidate
	// could produce, letting the driver skip candidate via the
	// memoization table.
	Subsumes(seen, candidate N) bool
	// Key returns the memoization-table bucket for node: candidates with
	// different keys are never compared via Subsumes.
	Key(node N) string
}
