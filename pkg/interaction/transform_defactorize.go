package interaction

// DeFactorizeL distributes an Alt appearing as the left operand of an
// associative operator outward: op(Alt(a,b), x) -> Alt(op(a,x), op(b,x)).
// Used in canonicalization's phase 1 to expose factors that phase 2's
// FactorizePrefix laws can then pull back out in a sorted, deduplicated
// form.
func DeFactorizeL(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindStrict && i.Kind != KindSeq && i.Kind != KindPar {
		return nil, false
	}
	if i.Left.Kind != KindAlt {
		return nil, false
	}
	a, b, x := i.Left.Left, i.Left.Right, i.Right
	return NewAlt(buildSameOp(i.Kind, a, x), buildSameOp(i.Kind, b, x)), true
}

// DeFactorizeR is DeFactorizeL's mirror: op(x, Alt(a,b)) -> Alt(op(x,a),
// op(x,b)).
func DeFactorizeR(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindStrict && i.Kind != KindSeq && i.Kind != KindPar {
		return nil, false
	}
	if i.Right.Kind != KindAlt {
		return nil, false
	}
	x, a, b := i.Left, i.Right.Left, i.Right.Right
	return NewAlt(buildSameOp(i.Kind, x, a), buildSameOp(i.Kind, x, b)), true
}
