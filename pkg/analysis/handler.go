package analysis

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/process"
	"github.com/gitrdm/hibouengine/pkg/trace"
	"github.com/gitrdm/hibouengine/pkg/verdict"
)

// Handler drives one analysis run through process.Driver[Node, Step]: the
// canals and discipline are fixed for the run, everything that mutates
// lives on Node.
type Handler struct {
	Coloc   trace.CoLocalizations
	Params  Params
	Weights PriorityWeights
	Logger  zerolog.Logger
}

// NewHandler builds a Handler with default priority weights.
func NewHandler(coloc trace.CoLocalizations, params Params, logger zerolog.Logger) *Handler {
	return &Handler{Coloc: coloc, Params: params, Weights: DefaultPriorityWeights(), Logger: logger}
}

// CollectNextSteps implements process.Handler: eliminations are always
// tried before any execution step.
func (h *Handler) CollectNextSteps(node Node) []Step {
	if elim := collectEliminations(node, h.Coloc, h.Params); len(elim) > 0 {
		return []Step{{Kind: StepEliminate, EliminatedCanals: elim}}
	}

	var steps []Step
	for _, f := range interaction.Frontier(node.Term) {
		choices, ok := legalExecuteStep(h.Params, node, h.Coloc, f)
		if !ok {
			continue
		}
		steps = append(steps, Step{
			Kind:         StepExecute,
			Frontier:     f,
			CanalChoice:  choices,
			PriorityBias: h.Weights.score(f, choices),
		})
	}
	return steps
}

// ProcessNewStep implements process.Handler: builds the child node per
// flag-update rules.
func (h *Handler) ProcessNewStep(parent Node, step Step) Node {
	if step.Kind == StepEliminate {
		flags := parent.Flags.Clone()
		term := parent.Term
		for _, canalID := range step.EliminatedCanals {
			flags.Canals[canalID].NoLongerObserved = true
			if h.Params.Kind == Hide {
				term = interaction.Hide(term, h.Coloc.Canals[canalID])
				if h.Coloc.Count() > 1 {
					flags.HiddenUnderColocalizations = true
				}
			}
		}
		return Node{Term: term, MultiTrace: parent.MultiTrace, Flags: flags, AnalysisLoopDepth: parent.AnalysisLoopDepth}
	}

	term := interaction.Execute(parent.Term, step.Frontier.Position)
	flags := parent.Flags.Clone()
	canals := append([]trace.Trace(nil), parent.MultiTrace.Canals...)

	simulating := false
	for canalID, choice := range step.CanalChoice {
		switch choice {
		case ConsumeMatch:
			flags.Canals[canalID].Consumed++
			canals[canalID] = canals[canalID].Tail()
		case ConsumeSimulateBefore:
			flags.Canals[canalID].SimulatedBefore++
			flags.RemActInSim--
			simulating = true
		case ConsumeSimulateAfter:
			flags.Canals[canalID].SimulatedAfter++
			flags.RemActInSim--
			simulating = true
		}
	}

	depth := parent.AnalysisLoopDepth
	if step.Frontier.MaxLoopDepth > depth {
		depth = step.Frontier.MaxLoopDepth
	}
	if simulating && depth > parent.AnalysisLoopDepth {
		flags.RemLoopInSim--
	}

	return Node{
		Term:              term,
		MultiTrace:        trace.MultiTrace{Canals: canals},
		Flags:             flags,
		AnalysisLoopDepth: depth,
	}
}

// Priority implements process.Handler.
func (h *Handler) Priority(step Step) int32 {
	if step.Kind == StepEliminate {
		return 1 << 30
	}
	return step.PriorityBias
}

// LoopInstanciationCount implements process.Handler.
func (h *Handler) LoopInstanciationCount(node Node) int { return node.AnalysisLoopDepth }

// leafVerdict computes the local-verdict-at-leaves table for a
// node that has no further legal step.
func leafVerdict(node Node) verdict.Local {
	if node.Flags.HiddenUnderColocalizations {
		return verdict.InconcLocal(verdict.InconcLifelineRemovalWithCoLocalizations)
	}
	if node.MultiTrace.AllEmpty() {
		if interaction.ExpressEmpty(node.Term) {
			return verdict.Cov()
		}
		anySimAfter, anySim := false, false
		for _, c := range node.Flags.Canals {
			if c.SimulatedAfter > 0 {
				anySimAfter = true
			}
			if c.SimulatedBefore > 0 || c.SimulatedAfter > 0 {
				anySim = true
			}
		}
		switch {
		case anySimAfter:
			return verdict.MultiPref()
		case anySim:
			return verdict.Slice()
		default:
			return verdict.TooShort()
		}
	}
	if node.Flags.RemActInSim <= 0 {
		return verdict.OutSim(false)
	}
	return verdict.Out(false)
}

// LocalVerdictWhenNoChild implements process.Handler.
func (h *Handler) LocalVerdictWhenNoChild(node Node) verdict.Local { return leafVerdict(node) }

// StaticLocalVerdict implements process.Handler's fast path: once every
// canal's trace is consumed, the node is a leaf regardless of whatever the
// underlying interaction could still do, so no children are ever expanded
// past this point.
func (h *Handler) StaticLocalVerdict(node Node) (verdict.Local, bool) {
	if node.MultiTrace.AllEmpty() {
		return leafVerdict(node), true
	}
	if h.Params.UseLocalAnalysis && h.localAnalysisFails(node) {
		pruned := node.Flags.RemActInSim <= 0
		if pruned {
			return verdict.OutSim(true), true
		}
		return verdict.Out(true), true
	}
	return verdict.Local{}, false
}

// PursueAfterStaticVerdict implements process.Handler: every
// StaticLocalVerdict this handler returns is already terminal.
func (h *Handler) PursueAfterStaticVerdict(verdict.Local) bool { return false }

// localAnalysisFails is the local-analysis speed-up: for each
// canal not yet fully consumed, recursively analyze the sub-problem where
// every other canal's lifelines are hidden, in Prefix mode restricted to
// that one canal. If any canal's isolated view cannot even weakly pass,
// neither can the full multi-trace, so this node can be pruned outright.
func (h *Handler) localAnalysisFails(node Node) bool {
	for canalID, canal := range h.Coloc.Canals {
		if node.Flags.Canals[canalID].NoLongerObserved {
			continue
		}
		if node.MultiTrace.Canals[canalID].Empty() {
			continue
		}
		hidden := otherLifelines(h.Coloc, canalID)
		subTerm := interaction.Hide(node.Term, hidden)
		subHandler := &Handler{
			Coloc:   trace.CoLocalizations{Canals: []map[int]struct{}{canal}},
			Params:  Params{Kind: Prefix, UseLocalAnalysis: false},
			Weights: h.Weights,
			Logger:  h.Logger,
		}
		subRoot := Node{
			Term:       subTerm,
			MultiTrace: trace.MultiTrace{Canals: []trace.Trace{node.MultiTrace.Canals[canalID]}},
			Flags:      trace.NewMultiTraceAnalysisFlags(1, node.Flags.RemLoopInSim, node.Flags.RemActInSim),
		}
		driver := process.NewDriver[Node, Step](subHandler, process.PriorityFirst(), process.FilterSet{}, verdict.WeakPass, h.Logger)
		_, global := driver.Run(subRoot)
		if global == verdict.Fail {
			return true
		}
	}
	return false
}

func otherLifelines(coloc trace.CoLocalizations, keepCanal int) map[int]struct{} {
	out := make(map[int]struct{})
	for idx, canal := range coloc.Canals {
		if idx == keepCanal {
			continue
		}
		for l := range canal {
			out[l] = struct{}{}
		}
	}
	return out
}

// Subsumes implements process.Handler: candidate is redundant once its
// flags are covered by an already-seen node at the same term with the same
// remaining multi-trace content.
func (h *Handler) Subsumes(seen, candidate Node) bool {
	if !seen.MultiTrace.Equal(candidate.MultiTrace) {
		return false
	}
	return candidate.Flags.IsIncludedForMemoization(seen.Flags)
}

// Key implements process.Handler: the bucket is the interaction term
// together with the analysis loop depth, since Subsumes compares the
// remaining multi-trace and the flags.
func (h *Handler) Key(node Node) string {
	return fmt.Sprintf("%s|%d", node.Term.Key(), node.AnalysisLoopDepth)
}
