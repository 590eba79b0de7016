package interaction

// FragOp names the associative operators that support fragment
// extraction/folding.
type FragOp int

const (
	FragStrict FragOp = iota
	FragSeq
	FragPar
	FragAlt
	FragCoReg
	FragSync
)

// FragsOp returns the ordered list of maximal sub-terms of i whose top
// symbol is not op (matching the cr/acts parameter for CoReg/Sync). A term
// whose top symbol is a different op entirely is a single-element result.
func FragsOp(op FragOp, param []int, syncParam []TraceAction, i *Interaction) []*Interaction {
	var out []*Interaction
	collectFrags(op, param, syncParam, i, &out)
	return out
}

func collectFrags(op FragOp, param []int, syncParam []TraceAction, i *Interaction, out *[]*Interaction) {
	if sameOpNode(op, param, syncParam, i) {
		collectFrags(op, param, syncParam, i.Left, out)
		collectFrags(op, param, syncParam, i.Right, out)
		return
	}
	*out = append(*out, i)
}

func sameOpNode(op FragOp, param []int, syncParam []TraceAction, i *Interaction) bool {
	switch op {
	case FragStrict:
		return i.Kind == KindStrict
	case FragSeq:
		return i.Kind == KindSeq
	case FragPar:
		return i.Kind == KindPar
	case FragAlt:
		return i.Kind == KindAlt
	case FragCoReg:
		return i.Kind == KindCoReg && compareIntSlice(i.CoRegSet, param) == 0
	case FragSync:
		return i.Kind == KindSync && compareTraceActionSlice(i.SyncActions, syncParam) == 0
	default:
		return false
	}
}

// FoldOp rebuilds a right-leaning tree from frags under op: an empty list
// folds to Empty, a singleton folds to that element, otherwise
// op(head, fold_op(tail)).
func FoldOp(op FragOp, param []int, syncParam []TraceAction, frags []*Interaction) *Interaction {
	if len(frags) == 0 {
		return Empty
	}
	if len(frags) == 1 {
		return frags[0]
	}
	rest := FoldOp(op, param, syncParam, frags[1:])
	return buildOpNode(op, param, syncParam, frags[0], rest)
}

func buildOpNode(op FragOp, param []int, syncParam []TraceAction, l, r *Interaction) *Interaction {
	switch op {
	case FragStrict:
		return NewStrict(l, r)
	case FragSeq:
		return NewSeq(l, r)
	case FragPar:
		return NewPar(l, r)
	case FragAlt:
		return NewAlt(l, r)
	case FragCoReg:
		out, err := NewCoReg(param, l, r)
		if err != nil {
			return NewSeq(l, r)
		}
		return out
	case FragSync:
		out, err := NewSync(syncParam, l, r)
		if err != nil {
			return NewSeq(l, r)
		}
		return out
	default:
		return NewSeq(l, r)
	}
}

// FragsOpOf is a convenience wrapper that derives op/param/syncParam from an
// existing node of that kind, for callers that already hold a sample node
// (used by FlushRight/InvertAlt/InvertPar to re-flatten a chain).
func FragsOpOf(sample *Interaction) (op FragOp, param []int, syncParam []TraceAction, ok bool) {
	switch sample.Kind {
	case KindStrict:
		return FragStrict, nil, nil, true
	case KindSeq:
		return FragSeq, nil, nil, true
	case KindPar:
		return FragPar, nil, nil, true
	case KindAlt:
		return FragAlt, nil, nil, true
	case KindCoReg:
		return FragCoReg, sample.CoRegSet, nil, true
	case KindSync:
		return FragSync, nil, sample.SyncActions, true
	default:
		return 0, nil, nil, false
	}
}
