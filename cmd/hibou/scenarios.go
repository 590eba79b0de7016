package main

import (
	"fmt"

	"github.com/gitrdm/hibouengine/pkg/context"
	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/trace"
)

// Scenario bundles a signature, an interaction term, and (where
// applicable) a multi-trace and co-localization partition to run it
// against. No surface-syntax parser exists for the term/trace grammars, so
// the CLI ships a handful of named scenarios built directly with the
// library's constructors, matching how cmd/example demonstrated the
// miniKanren primitives.
type Scenario struct {
	Name  string
	Ctx   *context.GeneralContext
	Term  *interaction.Interaction
	Trace trace.MultiTrace
	Coloc trace.CoLocalizations
}

func mustMultiAction(acts ...interaction.TraceAction) trace.MultiAction {
	ma, err := trace.NewMultiAction(acts)
	if err != nil {
		panic(err)
	}
	return ma
}

// BuildScenario resolves name to one of the fixed demo scenarios.
func BuildScenario(name string) (Scenario, error) {
	switch name {
	case "s1":
		return scenarioS1(), nil
	case "s2":
		return scenarioS2(), nil
	case "s3":
		return scenarioS3(), nil
	case "s4":
		return scenarioS4(), nil
	case "s5":
		return scenarioS5(), nil
	case "s6":
		return scenarioS6(), nil
	default:
		return Scenario{}, fmt.Errorf("unknown scenario %q (want one of s1..s6)", name)
	}
}

// scenarioS1: a -- m -> b, accepted in full by [a,b] a!m.b?m.
func scenarioS1() Scenario {
	ctx := context.New()
	a, b := ctx.AddLifeline("a"), ctx.AddLifeline("b")
	m := ctx.AddMessage("m")

	term := interaction.NewEmission(interaction.EmissionAction{
		Origin: a, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(b)},
	})
	tr := trace.NewTrace(
		mustMultiAction(interaction.TraceAction{Lifeline: a, Kind: interaction.ActEmission, Message: m}),
		mustMultiAction(interaction.TraceAction{Lifeline: b, Kind: interaction.ActReception, Message: m}),
	)
	return Scenario{Name: "s1", Ctx: ctx, Term: term, Trace: trace.NewMultiTrace(tr), Coloc: trace.Trivial(ctx.LifelineCount())}
}

// scenarioS2: loopW(a -- m -> b), traced through two full iterations.
func scenarioS2() Scenario {
	base := scenarioS1()
	term := interaction.NewLoop(interaction.WeakSeqLoop, base.Term)
	tr := trace.NewTrace(
		mustMultiAction(interaction.TraceAction{Lifeline: 0, Kind: interaction.ActEmission, Message: 0}),
		mustMultiAction(interaction.TraceAction{Lifeline: 1, Kind: interaction.ActReception, Message: 0}),
		mustMultiAction(interaction.TraceAction{Lifeline: 0, Kind: interaction.ActEmission, Message: 0}),
		mustMultiAction(interaction.TraceAction{Lifeline: 1, Kind: interaction.ActReception, Message: 0}),
	)
	return Scenario{Name: "s2", Ctx: base.Ctx, Term: term, Trace: trace.NewMultiTrace(tr), Coloc: base.Coloc}
}

// scenarioS3: alt(a -- m -> b, b -- m -> a), run against the empty trace.
func scenarioS3() Scenario {
	ctx := context.New()
	a, b := ctx.AddLifeline("a"), ctx.AddLifeline("b")
	m := ctx.AddMessage("m")

	left := interaction.NewEmission(interaction.EmissionAction{
		Origin: a, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(b)},
	})
	right := interaction.NewEmission(interaction.EmissionAction{
		Origin: b, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(a)},
	})
	term := interaction.NewAlt(left, right)
	return Scenario{Name: "s3", Ctx: ctx, Term: term, Trace: trace.NewMultiTrace(trace.NewTrace()), Coloc: trace.Trivial(ctx.LifelineCount())}
}

// scenarioS4: par(a -- m -> b, c -- m -> a); {a,b} and {a,c} share lifeline
// a, so ParToSeq must refuse to fire during canonicalization.
func scenarioS4() Scenario {
	ctx := context.New()
	a, b, c := ctx.AddLifeline("a"), ctx.AddLifeline("b"), ctx.AddLifeline("c")
	m := ctx.AddMessage("m")

	left := interaction.NewEmission(interaction.EmissionAction{
		Origin: a, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(b)},
	})
	right := interaction.NewEmission(interaction.EmissionAction{
		Origin: c, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(a)},
	})
	term := interaction.NewPar(left, right)
	return Scenario{Name: "s4", Ctx: ctx, Term: term, Trace: trace.NewMultiTrace(trace.NewTrace()), Coloc: trace.Trivial(ctx.LifelineCount())}
}

// scenarioS5: alt(strict(x, p), strict(x, q)) with a shared prefix x,
// exercising the factorize-prefix-strict transformation.
func scenarioS5() Scenario {
	ctx := context.New()
	a, b, c, d := ctx.AddLifeline("a"), ctx.AddLifeline("b"), ctx.AddLifeline("c"), ctx.AddLifeline("d")
	m := ctx.AddMessage("m")

	x := interaction.NewEmission(interaction.EmissionAction{
		Origin: a, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(b)},
	})
	p := interaction.NewEmission(interaction.EmissionAction{
		Origin: c, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(d)},
	})
	q := interaction.NewEmission(interaction.EmissionAction{
		Origin: d, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(c)},
	})
	term := interaction.NewAlt(interaction.NewStrict(x, p), interaction.NewStrict(x, q))
	return Scenario{Name: "s5", Ctx: ctx, Term: term, Trace: trace.NewMultiTrace(trace.NewTrace()), Coloc: trace.Trivial(ctx.LifelineCount())}
}

// scenarioS6: seq(a -- m -> b, c -- n -> d), four distinct lifelines;
// executing the second action alone should simplify the remainder back to
// a -- m -> b.
func scenarioS6() Scenario {
	ctx := context.New()
	a, b, c, d := ctx.AddLifeline("a"), ctx.AddLifeline("b"), ctx.AddLifeline("c"), ctx.AddLifeline("d")
	m, n := ctx.AddMessage("m"), ctx.AddMessage("n")

	left := interaction.NewEmission(interaction.EmissionAction{
		Origin: a, Message: m, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(b)},
	})
	right := interaction.NewEmission(interaction.EmissionAction{
		Origin: c, Message: n, Targets: []interaction.EmissionTargetRef{interaction.Lifeline(d)},
	})
	term := interaction.NewSeq(left, right)
	return Scenario{Name: "s6", Ctx: ctx, Term: term, Trace: trace.NewMultiTrace(trace.NewTrace()), Coloc: trace.Trivial(ctx.LifelineCount())}
}
