package analysis

import (
	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/trace"
)

// Node is the state the driver walks: (interaction, remaining multi-trace,
// flags, analysis_loop_depth). The co-localizations are fixed for the whole
// run and live on the Handler; the multi-trace shrinks as canals consume
// actions, so every Node carries its own remaining copy.
type Node struct {
	Term              *interaction.Interaction
	MultiTrace        trace.MultiTrace
	Flags             trace.MultiTraceAnalysisFlags
	AnalysisLoopDepth int
}

// ConsumeKind names how a touched canal absorbed one contribution of an
// executed action.
type ConsumeKind int

const (
	ConsumeMatch ConsumeKind = iota
	ConsumeSimulateBefore
	ConsumeSimulateAfter
)

// StepKind distinguishes the two kinds of step this analysis can emit.
type StepKind int

const (
	StepEliminate StepKind = iota
	StepExecute
)

// Step is one move of the analysis state machine.
type Step struct {
	Kind StepKind

	// StepEliminate.
	EliminatedCanals []int

	// StepExecute.
	Frontier     interaction.FrontierElement
	CanalChoice  map[int]ConsumeKind
	PriorityBias int32
}
