package analysis

import (
	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/trace"
)

// collectEliminations finds every canal whose observed trace is already
// empty and is not yet marked no_longer_observed: the
// EliminateNoLongerObserved step, always tried before any Execute step.
//
// Under Accept/Prefix/Simulate a canal is only eligible once the term can no
// longer involve its lifelines on its own; under Hide it is eligible as soon
// as its trace is exhausted, since ProcessNewStep then forces the term to
// drop those lifelines via interaction.Hide rather than waiting for them to
// fall away naturally.
func collectEliminations(node Node, coloc trace.CoLocalizations, params Params) []int {
	var ids []int
	for canalID, canalTrace := range node.MultiTrace.Canals {
		if !canalTrace.Empty() {
			continue
		}
		if node.Flags.Canals[canalID].NoLongerObserved {
			continue
		}
		if params.Kind != Hide && interaction.InvolvesAnyOf(node.Term, coloc.Canals[canalID]) {
			continue
		}
		ids = append(ids, canalID)
	}
	return ids
}

// canalChoice decides how touchedActions (the slice of f.Actions whose
// lifeline falls in this canal) is absorbed by canalID's remaining trace,
// per per-canal legality rule. ok is false if no legal option
// exists under params.
func canalChoice(params Params, node Node, canalID int, touchedActions []interaction.TraceAction) (ConsumeKind, bool) {
	head, hasHead := node.MultiTrace.Canals[canalID].Head()
	sorted := interaction.SortTraceActions(touchedActions)
	if hasHead && trace.MultiAction(sorted).Equal(head) {
		return ConsumeMatch, true
	}
	if params.Kind != Simulate {
		return 0, false
	}
	if node.Flags.RemActInSim <= 0 {
		return 0, false
	}
	if !hasHead {
		return ConsumeSimulateAfter, true
	}
	if params.SimulateBefore && node.Flags.Canals[canalID].Consumed == 0 {
		return ConsumeSimulateBefore, true
	}
	return 0, false
}

// legalExecuteStep evaluates one frontier element against every canal it
// touches, returning the full per-canal choice map if legal.
func legalExecuteStep(params Params, node Node, coloc trace.CoLocalizations, f interaction.FrontierElement) (map[int]ConsumeKind, bool) {
	byCanal := make(map[int][]interaction.TraceAction)
	for _, a := range f.Actions {
		canalID := coloc.CanalOf(a.Lifeline)
		if canalID < 0 {
			return nil, false
		}
		byCanal[canalID] = append(byCanal[canalID], a)
	}
	choices := make(map[int]ConsumeKind, len(byCanal))
	simulatedCount := 0
	for canalID, acts := range byCanal {
		choice, ok := canalChoice(params, node, canalID, acts)
		if !ok {
			return nil, false
		}
		choices[canalID] = choice
		if choice != ConsumeMatch {
			simulatedCount += len(acts)
		}
	}
	if simulatedCount > node.Flags.RemActInSim {
		return nil, false
	}
	return choices, true
}

// PriorityWeights biases the queue toward emissions, receptions,
// multi-rendezvous, low loop depth, and low simulation count.
type PriorityWeights struct {
	Emission         int32
	Reception        int32
	MultiRendezvous  int32
	LoopDepthPenalty int32
	SimulationPenalty int32
}

// DefaultPriorityWeights mirrors explore.DefaultPriorityWeights, with an
// added penalty for steps that lean on the simulation budget.
func DefaultPriorityWeights() PriorityWeights {
	return PriorityWeights{Emission: 2, Reception: 1, MultiRendezvous: 3, LoopDepthPenalty: 1, SimulationPenalty: 2}
}

func (w PriorityWeights) score(f interaction.FrontierElement, choices map[int]ConsumeKind) int32 {
	var score int32
	for _, a := range f.Actions {
		if a.Kind == interaction.ActEmission {
			score += w.Emission
		} else {
			score += w.Reception
		}
	}
	if len(f.Actions) > 1 {
		score += w.MultiRendezvous
	}
	score -= int32(f.MaxLoopDepth) * w.LoopDepthPenalty
	for _, c := range choices {
		if c != ConsumeMatch {
			score -= w.SimulationPenalty
		}
	}
	return score
}
