package interaction

import "testing"

func TestFragsOpFlattensChain(t *testing.T) {
	a := emit(0, 0, Lifeline(1))
	b := emit(1, 1, Lifeline(0))
	c := emit(2, 2, Lifeline(3))
	chain := NewSeq(a, NewSeq(b, c))

	frags := FragsOp(FragSeq, nil, nil, chain)
	if len(frags) != 3 {
		t.Fatalf("FragsOp returned %d fragments, want 3", len(frags))
	}
	if !frags[0].Equal(a) || !frags[1].Equal(b) || !frags[2].Equal(c) {
		t.Errorf("FragsOp order = %v, want [a, b, c]", frags)
	}
}

func TestFragsOpStopsAtDifferentOperator(t *testing.T) {
	a := emit(0, 0, Lifeline(1))
	b := emit(1, 1, Lifeline(0))
	par := NewPar(a, b)
	frags := FragsOp(FragSeq, nil, nil, par)
	if len(frags) != 1 || !frags[0].Equal(par) {
		t.Errorf("FragsOp(Seq) over a Par node = %v, want [par] unchanged", frags)
	}
}

func TestFoldOpRoundTripsWithFragsOp(t *testing.T) {
	a := emit(0, 0, Lifeline(1))
	b := emit(1, 1, Lifeline(0))
	c := emit(2, 2, Lifeline(3))
	chain := NewSeq(a, NewSeq(b, c))

	frags := FragsOp(FragSeq, nil, nil, chain)
	rebuilt := FoldOp(FragSeq, nil, nil, frags)
	if !rebuilt.Equal(chain) {
		t.Errorf("FoldOp(FragsOp(chain)) = %v, want original chain back", rebuilt)
	}
}

func TestFoldOpEmptyAndSingleton(t *testing.T) {
	if got := FoldOp(FragSeq, nil, nil, nil); !got.IsEmpty() {
		t.Errorf("FoldOp(nil) = %v, want Empty", got)
	}
	a := emit(0, 0, Lifeline(1))
	if got := FoldOp(FragSeq, nil, nil, []*Interaction{a}); !got.Equal(a) {
		t.Errorf("FoldOp(singleton) = %v, want the element itself", got)
	}
}

func TestFragsOpOfDerivesParametersFromSample(t *testing.T) {
	cr, _ := NewCoReg([]int{1, 2}, Empty, Empty)
	op, param, _, ok := FragsOpOf(cr)
	if !ok || op != FragCoReg || len(param) != 2 {
		t.Errorf("FragsOpOf(CoReg) = %v,%v,%v, want FragCoReg,[1,2],true", op, param, ok)
	}

	_, _, _, ok = FragsOpOf(emit(0, 0, Lifeline(1)))
	if ok {
		t.Error("FragsOpOf(leaf) reported ok=true, want false")
	}
}
