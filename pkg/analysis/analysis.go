package analysis

import (
	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/process"
	"github.com/gitrdm/hibouengine/pkg/trace"
	"github.com/gitrdm/hibouengine/pkg/verdict"
)

// Options configures a single top-level Analyze call.
type Options struct {
	Params  Params
	Weights PriorityWeights // zero value means DefaultPriorityWeights
	Filters process.FilterSet
	Queue   process.QueueStrategy // defaults to PriorityFirst
	Goal    verdict.Global        // defaults to Pass
	Logger  zerolog.Logger
}

// Report is the outcome of one analysis run.
type Report struct {
	NodeCount int
	Global    verdict.Global
}

// Analyze runs the multi-trace conformance analysis of a term against a
// multi-trace under a co-localization partition, folding every
// leaf's local verdict into one global verdict.
func Analyze(term *interaction.Interaction, mt trace.MultiTrace, coloc trace.CoLocalizations, opts Options) Report {
	queue := opts.Queue
	if queue == nil {
		queue = process.PriorityFirst()
	}
	goal := opts.Goal
	if goal == verdict.Fail {
		goal = verdict.Pass
	}

	remLoopInSim, remActInSim := 0, 0
	if opts.Params.Kind == Simulate {
		remLoopInSim, remActInSim = defaultSimulationBudget()
	}

	root := Node{
		Term:       term,
		MultiTrace: mt,
		Flags:      trace.NewMultiTraceAnalysisFlags(coloc.Count(), remLoopInSim, remActInSim),
	}

	handler := NewHandler(coloc, opts.Params, opts.Logger)
	if opts.Weights != (PriorityWeights{}) {
		handler.Weights = opts.Weights
	}
	driver := process.NewDriver[Node, Step](handler, queue, opts.Filters, goal, opts.Logger)
	nodeCount, global := driver.Run(root)
	return Report{NodeCount: nodeCount, Global: global}
}

// defaultSimulationBudget returns the simulation budget every Simulate run
// starts with; Options has no field to change it. It is generous enough to
// cover a handful of simulated actions and loop entries without being
// unbounded.
func defaultSimulationBudget() (loops, actions int) { return 4, 8 }
