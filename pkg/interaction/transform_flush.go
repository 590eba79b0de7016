package interaction

// FlushRight right-rotates same-operator associativity: op(op(a,b), c) ->
// op(a, op(b,c)). It fires only when the rewritten term compares strictly
// smaller under Compare, which is what makes repeated application
// terminate.
func FlushRight(i *Interaction) (*Interaction, bool) {
	if !i.IsBinary() || i.Kind == KindAnd {
		return nil, false
	}
	if i.Left.Kind != i.Kind {
		return nil, false
	}
	if i.Kind == KindCoReg && compareIntSlice(i.Left.CoRegSet, i.CoRegSet) != 0 {
		return nil, false
	}
	if i.Kind == KindSync && compareTraceActionSlice(i.Left.SyncActions, i.SyncActions) != 0 {
		return nil, false
	}
	a, b := i.Left.Left, i.Left.Right
	var inner, outer *Interaction
	switch i.Kind {
	case KindCoReg:
		var err error
		inner, err = NewCoReg(i.CoRegSet, b, i.Right)
		if err != nil {
			return nil, false
		}
		outer, err = NewCoReg(i.CoRegSet, a, inner)
		if err != nil {
			return nil, false
		}
	case KindSync:
		var err error
		inner, err = NewSync(i.SyncActions, b, i.Right)
		if err != nil {
			return nil, false
		}
		outer, err = NewSync(i.SyncActions, a, inner)
		if err != nil {
			return nil, false
		}
	default:
		inner = buildSameOp(i.Kind, b, i.Right)
		outer = buildSameOp(i.Kind, a, inner)
	}
	if Compare(outer, i) < 0 {
		return outer, true
	}
	return nil, false
}

func buildSameOp(kind Kind, l, r *Interaction) *Interaction {
	switch kind {
	case KindStrict:
		return NewStrict(l, r)
	case KindSeq:
		return NewSeq(l, r)
	case KindPar:
		return NewPar(l, r)
	case KindAlt:
		return NewAlt(l, r)
	default:
		return NewSeq(l, r)
	}
}
