package process

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/verdict"
)

// countdownHandler drives an int node down to zero, one step at a time,
// reaching Cov() once it hits zero. loopCount is optional and lets a test
// stand in a synthetic loop-instanciation count per node.
type countdownHandler struct {
	loopCount func(int) int
}

func (h countdownHandler) CollectNextSteps(node int) []int {
	if node <= 0 {
		return nil
	}
	return []int{1}
}

func (h countdownHandler) ProcessNewStep(parent int, step int) int { return parent - step }
func (h countdownHandler) Priority(step int) int32                { return int32(step) }
func (h countdownHandler) LoopInstanciationCount(node int) int {
	if h.loopCount != nil {
		return h.loopCount(node)
	}
	return 0
}
func (h countdownHandler) LocalVerdictWhenNoChild(node int) verdict.Local {
	if node == 0 {
		return verdict.Cov()
	}
	return verdict.Out(false)
}
func (h countdownHandler) StaticLocalVerdict(node int) (verdict.Local, bool) {
	return verdict.Local{}, false
}
func (h countdownHandler) PursueAfterStaticVerdict(v verdict.Local) bool { return true }
func (h countdownHandler) Subsumes(seen, candidate int) bool            { return seen == candidate }
func (h countdownHandler) Key(node int) string                         { return fmt.Sprint(node) }

func TestDriverRunReachesGoalAndCountsNodes(t *testing.T) {
	d := NewDriver[int, int](countdownHandler{}, BreadthFirst(), FilterSet{}, verdict.Pass, zerolog.Nop())
	nodeCount, global := d.Run(2)

	if global != verdict.Pass {
		t.Errorf("global verdict = %v, want Pass", global)
	}
	if nodeCount != 3 {
		t.Errorf("nodeCount = %d, want 3 (root, 1, 0)", nodeCount)
	}
}

func TestDriverRunMaxLoopInstanciationFiltersDeepNode(t *testing.T) {
	h := countdownHandler{loopCount: func(n int) int { return 2 - n }}
	d := NewDriver[int, int](h, BreadthFirst(), FilterSet{MaxLoopInstanciation: 1}, verdict.Pass, zerolog.Nop())
	nodeCount, global := d.Run(2)

	if global != verdict.Inconc {
		t.Errorf("global verdict = %v, want Inconc (leaf node 0 has loop count 2, past the bound of 1)", global)
	}
	if nodeCount != 3 {
		t.Errorf("nodeCount = %d, want 3 (root, 1, 0)", nodeCount)
	}
}

func TestDriverRunFilterEliminationFoldsInconc(t *testing.T) {
	d := NewDriver[int, int](countdownHandler{}, BreadthFirst(), FilterSet{MaxNodeNumber: 1}, verdict.Pass, zerolog.Nop())
	_, global := d.Run(2)
	if global != verdict.Inconc {
		t.Errorf("global verdict = %v, want Inconc (root node itself eliminated by MaxNodeNumber)", global)
	}
}

func TestDriverRunMemoizesIdenticalNodes(t *testing.T) {
	// A diamond: 2 -> 1 (via step 1) reached by two different paths should
	// only be expanded once thanks to Subsumes/Key memoization. Simulate
	// this with a handler that offers two steps of the same size from the
	// root.
	h := diamondHandler{}
	d := NewDriver[int, int](h, BreadthFirst(), FilterSet{}, verdict.Pass, zerolog.Nop())
	nodeCount, global := d.Run(2)

	if global != verdict.Pass {
		t.Errorf("global verdict = %v, want Pass", global)
	}
	// root(2) -> two children both equal to 1 -> memoized to one expansion
	// of 1 -> one child 0. Every popped node is counted, including the second
	// occurrence of 1, which is subsumed and not expanded: 2, 1, 1, 0 == 4.
	if nodeCount != 4 {
		t.Errorf("nodeCount = %d, want 4 (root, two siblings at 1, one leaf at 0)", nodeCount)
	}
}

type diamondHandler struct{}

func (diamondHandler) CollectNextSteps(node int) []int {
	switch node {
	case 2:
		return []int{1, 1}
	case 1:
		return []int{1}
	default:
		return nil
	}
}
func (diamondHandler) ProcessNewStep(parent int, step int) int { return parent - step }
func (diamondHandler) Priority(step int) int32                 { return 0 }
func (diamondHandler) LoopInstanciationCount(node int) int      { return 0 }
func (diamondHandler) LocalVerdictWhenNoChild(node int) verdict.Local {
	if node == 0 {
		return verdict.Cov()
	}
	return verdict.Out(false)
}
func (diamondHandler) StaticLocalVerdict(node int) (verdict.Local, bool) {
	return verdict.Local{}, false
}
func (diamondHandler) PursueAfterStaticVerdict(v verdict.Local) bool { return true }
func (diamondHandler) Subsumes(seen, candidate int) bool             { return seen == candidate }
func (diamondHandler) Key(node int) string                          { return fmt.Sprint(node) }
