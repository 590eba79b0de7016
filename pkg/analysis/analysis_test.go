package analysis

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/trace"
	"github.com/gitrdm/hibouengine/pkg/verdict"
)

func TestAnalyzeSingleReceptionMatchingTraceReachesCov(t *testing.T) {
	term := interaction.NewReception(interaction.ReceptionAction{Message: 5, Recipients: []int{0}})
	mt := trace.NewMultiTrace(trace.NewTrace(mustMultiAction(t, act(0, interaction.ActReception, 5))))
	coloc := trace.Trivial(1)

	report := Analyze(term, mt, coloc, Options{Params: Params{Kind: Accept}, Logger: zerolog.Nop()})

	if report.Global != verdict.Pass {
		t.Errorf("Global = %v, want Pass", report.Global)
	}
	if report.NodeCount != 2 {
		t.Errorf("NodeCount = %d, want 2 (root, then the executed leaf)", report.NodeCount)
	}
}

func TestAnalyzeMismatchedTraceFails(t *testing.T) {
	term := interaction.NewReception(interaction.ReceptionAction{Message: 5, Recipients: []int{0}})
	mt := trace.NewMultiTrace(trace.NewTrace(mustMultiAction(t, act(0, interaction.ActReception, 6))))
	coloc := trace.Trivial(1)

	report := Analyze(term, mt, coloc, Options{Params: Params{Kind: Accept}, Logger: zerolog.Nop()})

	if report.Global != verdict.Fail {
		t.Errorf("Global = %v, want Fail (the trace's only action never matches the term's frontier)", report.Global)
	}
	if report.NodeCount != 1 {
		t.Errorf("NodeCount = %d, want 1 (root is a dead end, no legal step)", report.NodeCount)
	}
}

func TestAnalyzeDefaultsGoalToPassAndQueueToPriorityFirst(t *testing.T) {
	term := interaction.Empty
	mt := trace.NewMultiTrace(trace.NewTrace())
	coloc := trace.Trivial(1)

	report := Analyze(term, mt, coloc, Options{Params: Params{Kind: Accept}, Logger: zerolog.Nop()})
	if report.Global != verdict.Pass {
		t.Errorf("Global = %v, want Pass for an already-empty term against an already-empty trace", report.Global)
	}
}

func TestDefaultSimulationBudgetIsGenerousButBounded(t *testing.T) {
	loops, actions := defaultSimulationBudget()
	if loops <= 0 || actions <= 0 {
		t.Error("defaultSimulationBudget() returned a non-positive budget")
	}
}
