package trace

import (
	"testing"

	"github.com/gitrdm/hibouengine/pkg/interaction"
)

func act(lifeline int, kind interaction.ActionKind, message int) interaction.TraceAction {
	return interaction.TraceAction{Lifeline: lifeline, Kind: kind, Message: message}
}

func TestNewMultiActionRejectsEmpty(t *testing.T) {
	_, err := NewMultiAction(nil)
	if err == nil {
		t.Fatal("NewMultiAction(nil) returned a nil error")
	}
}

func TestNewMultiActionSortsItsElements(t *testing.T) {
	ma, err := NewMultiAction([]interaction.TraceAction{
		act(1, interaction.ActEmission, 0),
		act(0, interaction.ActReception, 0),
	})
	if err != nil {
		t.Fatalf("NewMultiAction returned error: %v", err)
	}
	if ma[0].Lifeline != 0 {
		t.Errorf("MultiAction not sorted: %v", ma)
	}
}

func TestMultiActionEqualAndLifelines(t *testing.T) {
	a, _ := NewMultiAction([]interaction.TraceAction{act(0, interaction.ActEmission, 1)})
	b, _ := NewMultiAction([]interaction.TraceAction{act(0, interaction.ActEmission, 1)})
	c, _ := NewMultiAction([]interaction.TraceAction{act(1, interaction.ActEmission, 1)})

	if !a.Equal(b) {
		t.Error("identical multi-actions compared unequal")
	}
	if a.Equal(c) {
		t.Error("different multi-actions compared equal")
	}
	if _, ok := a.Lifelines()[0]; !ok {
		t.Errorf("Lifelines() missing lifeline 0: %v", a.Lifelines())
	}
}

func TestTraceHeadTailAndEmpty(t *testing.T) {
	ma1, _ := NewMultiAction([]interaction.TraceAction{act(0, interaction.ActEmission, 0)})
	ma2, _ := NewMultiAction([]interaction.TraceAction{act(1, interaction.ActReception, 0)})
	tr := NewTrace(ma1, ma2)

	if tr.Empty() {
		t.Fatal("Empty() true for a two-element trace")
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
	head, ok := tr.Head()
	if !ok || !head.Equal(ma1) {
		t.Errorf("Head() = %v,%v, want ma1,true", head, ok)
	}
	rest := tr.Tail()
	if rest.Len() != 1 {
		t.Errorf("Tail().Len() = %d, want 1", rest.Len())
	}

	empty := NewTrace()
	if !empty.Empty() {
		t.Error("Empty() false for a zero-element trace")
	}
	if _, ok := empty.Head(); ok {
		t.Error("Head() reported ok=true on an empty trace")
	}
	if empty.Tail().Len() != 0 {
		t.Error("Tail() of an empty trace is not empty")
	}
}

func TestTraceEqual(t *testing.T) {
	ma1, _ := NewMultiAction([]interaction.TraceAction{act(0, interaction.ActEmission, 0)})
	ma2, _ := NewMultiAction([]interaction.TraceAction{act(1, interaction.ActReception, 0)})
	a := NewTrace(ma1, ma2)
	b := NewTrace(ma1, ma2)
	c := NewTrace(ma1)

	if !a.Equal(b) {
		t.Error("identical traces compared unequal")
	}
	if a.Equal(c) {
		t.Error("traces of different length compared equal")
	}
}

func TestTrivialCoLocalizationsSingleCanal(t *testing.T) {
	coloc := Trivial(3)
	if coloc.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", coloc.Count())
	}
	for l := 0; l < 3; l++ {
		if coloc.CanalOf(l) != 0 {
			t.Errorf("CanalOf(%d) = %d, want 0", l, coloc.CanalOf(l))
		}
	}
}

func TestDiscreteCoLocalizationsOnePerLifeline(t *testing.T) {
	coloc := Discrete(3)
	if coloc.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", coloc.Count())
	}
	seen := make(map[int]bool)
	for l := 0; l < 3; l++ {
		c := coloc.CanalOf(l)
		if c < 0 {
			t.Fatalf("CanalOf(%d) = -1, want a valid canal", l)
		}
		if seen[c] {
			t.Errorf("canal %d observes more than one lifeline", c)
		}
		seen[c] = true
	}
}

func TestCanalOfUnknownLifelineReturnsMinusOne(t *testing.T) {
	coloc := Discrete(2)
	if got := coloc.CanalOf(99); got != -1 {
		t.Errorf("CanalOf(99) = %d, want -1", got)
	}
}

func TestSortedCanalIDsIsAscending(t *testing.T) {
	coloc := Discrete(4)
	ids := coloc.SortedCanalIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("SortedCanalIDs() not ascending: %v", ids)
		}
	}
}

func TestMultiTraceAllEmptyAndEqual(t *testing.T) {
	ma, _ := NewMultiAction([]interaction.TraceAction{act(0, interaction.ActEmission, 0)})
	mtEmpty := NewMultiTrace(NewTrace(), NewTrace())
	if !mtEmpty.AllEmpty() {
		t.Error("AllEmpty() false when every canal trace is empty")
	}

	mtNonEmpty := NewMultiTrace(NewTrace(ma), NewTrace())
	if mtNonEmpty.AllEmpty() {
		t.Error("AllEmpty() true when one canal still has elements")
	}

	a := NewMultiTrace(NewTrace(ma), NewTrace())
	b := NewMultiTrace(NewTrace(ma), NewTrace())
	if !a.Equal(b) {
		t.Error("identical multi-traces compared unequal")
	}
	if a.Equal(mtEmpty) {
		t.Error("different multi-traces compared equal")
	}
}
