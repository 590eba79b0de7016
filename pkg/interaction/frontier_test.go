package interaction

import "testing"

func actSet(acts ...TraceAction) []TraceAction { return SortTraceActions(acts) }

func TestFrontierOfEmptyIsEmpty(t *testing.T) {
	if got := Frontier(Empty); len(got) != 0 {
		t.Errorf("Frontier(Empty) = %v, want none", got)
	}
}

func TestFrontierOfEmissionCoversEveryTargetLifeline(t *testing.T) {
	e := emit(0, 0, Lifeline(1), Lifeline(2))
	fr := Frontier(e)
	if len(fr) != 1 {
		t.Fatalf("Frontier() has %d elements, want 1", len(fr))
	}
	want := actSet(
		TraceAction{Lifeline: 0, Kind: ActEmission, Message: 0},
		TraceAction{Lifeline: 1, Kind: ActReception, Message: 0},
		TraceAction{Lifeline: 2, Kind: ActReception, Message: 0},
	)
	if !EqualTraceActionSets(fr[0].Actions, want) {
		t.Errorf("Actions = %v, want %v", fr[0].Actions, want)
	}
	if !fr[0].Position.Equal(EpsilonWhole()) {
		t.Errorf("Position = %v, want whole-leaf position", fr[0].Position)
	}
}

func TestFrontierStrictOnlyExposesRightWhenLeftExpressesEmpty(t *testing.T) {
	l := emit(0, 0, Lifeline(1))
	r := emit(2, 1, Lifeline(3))
	strict := NewStrict(l, r)
	fr := Frontier(strict)
	if len(fr) != 1 {
		t.Fatalf("Frontier(Strict) has %d elements, want 1 (right side blocked)", len(fr))
	}

	loopLeft := NewLoop(WeakSeqLoop, l) // expresses empty
	strictLoop := NewStrict(loopLeft, r)
	fr2 := Frontier(strictLoop)
	if len(fr2) != 2 {
		t.Fatalf("Frontier(Strict) with empty-expressing left has %d elements, want 2", len(fr2))
	}
}

func TestFrontierSeqExposesRightOnlyWhenLeftAvoidsItsLifelines(t *testing.T) {
	l := emit(0, 0, Lifeline(1))
	rDisjoint := emit(2, 1, Lifeline(3))
	seqDisjoint := NewSeq(l, rDisjoint)
	if got := len(Frontier(seqDisjoint)); got != 2 {
		t.Errorf("Frontier(disjoint Seq) has %d elements, want 2", got)
	}

	rShared := emit(1, 1, Lifeline(0)) // shares lifeline 1 with l's target
	seqShared := NewSeq(l, rShared)
	if got := len(Frontier(seqShared)); got != 1 {
		t.Errorf("Frontier(lifeline-sharing Seq) has %d elements, want 1", got)
	}
}

func TestFrontierParExposesBothSidesUnconditionally(t *testing.T) {
	l := emit(0, 0, Lifeline(1))
	r := emit(1, 1, Lifeline(0)) // shares lifelines, but Par never blocks on that
	par := NewPar(l, r)
	if got := len(Frontier(par)); got != 2 {
		t.Errorf("Frontier(Par) has %d elements, want 2", got)
	}
}

func TestFrontierAltExposesBothBranches(t *testing.T) {
	l := emit(0, 0, Lifeline(1))
	r := emit(2, 1, Lifeline(3))
	alt := NewAlt(l, r)
	if got := len(Frontier(alt)); got != 2 {
		t.Errorf("Frontier(Alt) has %d elements, want 2", got)
	}
}

func TestFrontierLoopTracksDepth(t *testing.T) {
	body := emit(0, 0, Lifeline(1))
	loop := NewLoop(WeakSeqLoop, body)
	fr := Frontier(loop)
	if len(fr) != 1 {
		t.Fatalf("Frontier(Loop) has %d elements, want 1", len(fr))
	}
	if fr[0].MaxLoopDepth != 1 {
		t.Errorf("MaxLoopDepth = %d, want 1", fr[0].MaxLoopDepth)
	}
	if !fr[0].Position.Equal(Left(EpsilonWhole())) {
		t.Errorf("Position = %v, want L.", fr[0].Position)
	}
}

func TestFrontierSyncOnlyMatchesDeclaredActionSet(t *testing.T) {
	l := emit(0, 0, Lifeline(1))
	r := emit(0, 0, Lifeline(1))
	acts := []TraceAction{
		{Lifeline: 0, Kind: ActEmission, Message: 0},
		{Lifeline: 1, Kind: ActReception, Message: 0},
	}
	sync, err := NewSync(acts, l, r)
	if err != nil {
		t.Fatalf("NewSync returned error: %v", err)
	}
	fr := Frontier(sync)
	if len(fr) != 1 {
		t.Fatalf("Frontier(Sync) has %d elements, want 1, got %v", len(fr), fr)
	}
	if fr[0].Position.Kind != PosBoth {
		t.Errorf("Position.Kind = %v, want PosBoth", fr[0].Position.Kind)
	}
}

func TestFrontierSyncEmptyWhenNoMatchOnOneSide(t *testing.T) {
	l := emit(0, 0, Lifeline(1))
	r := emit(9, 9, Lifeline(8))
	acts := []TraceAction{
		{Lifeline: 0, Kind: ActEmission, Message: 0},
		{Lifeline: 1, Kind: ActReception, Message: 0},
	}
	sync, err := NewSync(acts, l, r)
	if err != nil {
		t.Fatalf("NewSync returned error: %v", err)
	}
	if got := len(Frontier(sync)); got != 0 {
		t.Errorf("Frontier(Sync) has %d elements, want 0 when the right side can never match", got)
	}
}
