package interaction

import "testing"

func TestPruneNoOpWhenSetEmpty(t *testing.T) {
	term := emit(0, 0, Lifeline(1))
	if got := Prune(term, nil); !got.Equal(term) {
		t.Error("Prune with an empty lifeline set changed the term")
	}
}

func TestPruneAltKeepsOnlyAvoidingBranch(t *testing.T) {
	touches1 := emit(0, 0, Lifeline(1))
	avoids1 := emit(0, 0, Lifeline(2))
	alt := NewAlt(touches1, avoids1)

	got := Prune(alt, map[int]struct{}{1: {}})
	if !got.Equal(avoids1) {
		t.Errorf("Prune(Alt) = %v, want the avoiding branch alone", got)
	}
}

func TestPruneAltKeepsBothWhenBothAvoid(t *testing.T) {
	a := emit(0, 0, Lifeline(2))
	b := emit(0, 0, Lifeline(3))
	alt := NewAlt(a, b)
	got := Prune(alt, map[int]struct{}{1: {}})
	if got.Kind != KindAlt {
		t.Errorf("Prune(Alt) = %v, want Alt preserved when both branches avoid the set", got)
	}
}

func TestPruneAltCollapsesToEmptyWhenNeitherAvoids(t *testing.T) {
	a := emit(0, 0, Lifeline(1))
	b := emit(1, 0, Lifeline(0))
	alt := NewAlt(a, b)
	got := Prune(alt, map[int]struct{}{0: {}, 1: {}})
	if !got.IsEmpty() {
		t.Errorf("Prune(Alt) = %v, want Empty when neither branch avoids the set", got)
	}
}

func TestPruneLoopRemovesWholeLoopWhenBodyInvolvesSet(t *testing.T) {
	loop := NewLoop(WeakSeqLoop, emit(0, 0, Lifeline(1)))
	got := Prune(loop, map[int]struct{}{1: {}})
	if !got.IsEmpty() {
		t.Errorf("Prune(Loop) = %v, want Empty", got)
	}
}

func TestPruneLoopUnchangedWhenBodyAvoidsSet(t *testing.T) {
	loop := NewLoop(WeakSeqLoop, emit(0, 0, Lifeline(1)))
	got := Prune(loop, map[int]struct{}{9: {}})
	if got.Kind != KindLoop {
		t.Errorf("Prune(Loop) = %v, want Loop preserved", got)
	}
}

func TestPruneRecursesOnOtherOperators(t *testing.T) {
	touches1 := emit(0, 0, Lifeline(1))
	avoids1 := emit(2, 0, Lifeline(3))
	alt := NewAlt(touches1, avoids1)
	seq := NewSeq(alt, avoids1)

	got := Prune(seq, map[int]struct{}{1: {}})
	if got.Kind != KindSeq {
		t.Fatalf("Prune(Seq) changed top Kind to %v", got.Kind)
	}
	if !got.Left.Equal(avoids1) {
		t.Errorf("Prune did not recurse into Seq's left child correctly: %v", got.Left)
	}
}
