package interaction

// FactorizePrefixStrict factors a common Strict-prefix out of an Alt:
// Alt(Strict(x,a), Strict(x,b)) -> Strict(x, Alt(a,b)).
func FactorizePrefixStrict(i *Interaction) (*Interaction, bool) {
	return factorizePrefix(i, KindStrict)
}

// FactorizePrefixSeq is FactorizePrefixStrict's Seq counterpart.
func FactorizePrefixSeq(i *Interaction) (*Interaction, bool) {
	return factorizePrefix(i, KindSeq)
}

// FactorizePrefixPar is FactorizePrefixStrict's Par counterpart; since Par
// is commutative the match need not be positional -- either operand of
// each side may supply the shared factor.
func FactorizePrefixPar(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindAlt {
		return nil, false
	}
	if i.Left.Kind != KindPar || i.Right.Kind != KindPar {
		return nil, false
	}
	candidates := [][2]*Interaction{
		{i.Left.Left, i.Left.Right},
		{i.Left.Right, i.Left.Left},
	}
	for _, lc := range candidates {
		factor, restL := lc[0], lc[1]
		var restR *Interaction
		switch {
		case factor.Equal(i.Right.Left):
			restR = i.Right.Right
		case factor.Equal(i.Right.Right):
			restR = i.Right.Left
		default:
			continue
		}
		return NewPar(factor, NewAlt(restL, restR)), true
	}
	return nil, false
}

func factorizePrefix(i *Interaction, op Kind) (*Interaction, bool) {
	if i.Kind != KindAlt {
		return nil, false
	}
	if i.Left.Kind != op || i.Right.Kind != op {
		return nil, false
	}
	if !i.Left.Left.Equal(i.Right.Left) {
		return nil, false
	}
	factor := i.Left.Left
	rest := NewAlt(i.Left.Right, i.Right.Right)
	switch op {
	case KindStrict:
		return NewStrict(factor, rest), true
	case KindSeq:
		return NewSeq(factor, rest), true
	default:
		return nil, false
	}
}
