package interaction

// TransformKind names one rewrite rule of the transformation library
//. The order of the constants is the order the rules are
// registered in Registry, used when a canonicalization phase needs a
// deterministic rule-trial order.
type TransformKind int

const (
	TkSimpl TransformKind = iota
	TkFlushRight
	TkInvertAlt
	TkInvertPar
	TkTriInvertRF
	TkDeduplicate
	TkLoopSimpl
	TkLoopUnNest
	TkFactorizePrefixStrict
	TkFactorizePrefixSeq
	TkFactorizePrefixPar
	TkDeFactorizeL
	TkDeFactorizeR
	TkStrictToSeq
	TkParToSeq
	TkSortEmissionTargets
	TkMergeAction
	TkMergeShiftRight1
	TkMergeShiftRight2
	TkMergeShiftLeft1
	TkMergeShiftLeft2
	TkMergeSkip
	TkMergeSkipInvert
)

func (k TransformKind) String() string {
	switch k {
	case TkSimpl:
		return "Simpl"
	case TkFlushRight:
		return "FlushRight"
	case TkInvertAlt:
		return "InvertAlt"
	case TkInvertPar:
		return "InvertPar"
	case TkTriInvertRF:
		return "TriInvertRF"
	case TkDeduplicate:
		return "Deduplicate"
	case TkLoopSimpl:
		return "LoopSimpl"
	case TkLoopUnNest:
		return "LoopUnNest"
	case TkFactorizePrefixStrict:
		return "FactorizePrefixStrict"
	case TkFactorizePrefixSeq:
		return "FactorizePrefixSeq"
	case TkFactorizePrefixPar:
		return "FactorizePrefixPar"
	case TkDeFactorizeL:
		return "DeFactorizeL"
	case TkDeFactorizeR:
		return "DeFactorizeR"
	case TkStrictToSeq:
		return "StrictToSeq"
	case TkParToSeq:
		return "ParToSeq"
	case TkSortEmissionTargets:
		return "SortEmissionTargets"
	case TkMergeAction:
		return "MergeAction"
	case TkMergeShiftRight1:
		return "MergeShiftRight1"
	case TkMergeShiftRight2:
		return "MergeShiftRight2"
	case TkMergeShiftLeft1:
		return "MergeShiftLeft1"
	case TkMergeShiftLeft2:
		return "MergeShiftLeft2"
	case TkMergeSkip:
		return "MergeSkip"
	case TkMergeSkipInvert:
		return "MergeSkipInvert"
	default:
		return "?"
	}
}

// TransformFunc applies one rewrite law at the root of i only (the driver
// here is responsible for walking every position and retrying there).
// It returns the rewritten term and true if the law fired, or (nil, false)
// if it does not apply at this root.
type TransformFunc func(i *Interaction) (*Interaction, bool)

// Registry is the ordered table of (kind, function) pairs the driver
// trials at each position: a table of function pointers rather than a
// type switch, so adding a rewrite law never touches driver code.
var Registry = []struct {
	Kind TransformKind
	Func TransformFunc
}{
	{TkSimpl, Simpl},
	{TkFlushRight, FlushRight},
	{TkInvertAlt, InvertAlt},
	{TkInvertPar, InvertPar},
	{TkTriInvertRF, TriInvertRF},
	{TkDeduplicate, Deduplicate},
	{TkLoopSimpl, LoopSimpl},
	{TkLoopUnNest, LoopUnNest},
	{TkFactorizePrefixStrict, FactorizePrefixStrict},
	{TkFactorizePrefixSeq, FactorizePrefixSeq},
	{TkFactorizePrefixPar, FactorizePrefixPar},
	{TkDeFactorizeL, DeFactorizeL},
	{TkDeFactorizeR, DeFactorizeR},
	{TkStrictToSeq, StrictToSeq},
	{TkParToSeq, ParToSeq},
	{TkSortEmissionTargets, SortEmissionTargets},
	{TkMergeAction, MergeAction},
	{TkMergeShiftRight1, MergeShiftRight1},
	{TkMergeShiftRight2, MergeShiftRight2},
	{TkMergeShiftLeft1, MergeShiftLeft1},
	{TkMergeShiftLeft2, MergeShiftLeft2},
	{TkMergeSkip, MergeSkip},
	{TkMergeSkipInvert, MergeSkipInvert},
}

// Lookup returns the function registered for kind.
func Lookup(kind TransformKind) (TransformFunc, bool) {
	for _, e := range Registry {
		if e.Kind == kind {
			return e.Func, true
		}
	}
	return nil, false
}

// ApplyAt walks every position of i top-down, trying every kind in kinds at
// each one, and returns the first (kind, position, result) triple found.
// canon.Canonize drives this to a fixed point phase by phase.
func ApplyAt(i *Interaction, kinds []TransformKind) (TransformKind, Position, *Interaction, bool) {
	return applyAtRec(i, kinds, Position{Kind: PosEpsilon, SubIndex: -1}, true)
}

func applyAtRec(i *Interaction, kinds []TransformKind, pos Position, isRoot bool) (TransformKind, Position, *Interaction, bool) {
	for _, k := range kinds {
		fn, ok := Lookup(k)
		if !ok {
			continue
		}
		if result, fired := fn(i); fired {
			return k, pos, result, true
		}
	}
	if i.Kind == KindLoop {
		if k, p, r, ok := applyAtRec(i.LoopBody, kinds, Left(pos), false); ok {
			return k, p, r, true
		}
		return 0, Position{}, nil, false
	}
	if !i.IsBinary() {
		return 0, Position{}, nil, false
	}
	if k, p, r, ok := applyAtRec(i.Left, kinds, Left(pos), false); ok {
		return k, p, r, true
	}
	if k, p, r, ok := applyAtRec(i.Right, kinds, Right(pos), false); ok {
		return k, p, r, true
	}
	_ = isRoot
	return 0, Position{}, nil, false
}

// Candidate is one applicable (kind, position) rewrite found by ApplyAllAt.
type Candidate struct {
	Kind     TransformKind
	Position Position
	Result   *Interaction
}

// ApplyAllAt walks every position of i top-down, collecting every (kind,
// position) pair where a rule in kinds fires, used by canonicalization's
// get_all mode to branch the search instead of taking only the
// first match.
func ApplyAllAt(i *Interaction, kinds []TransformKind) []Candidate {
	var out []Candidate
	applyAllAtRec(i, kinds, Position{Kind: PosEpsilon, SubIndex: -1}, &out)
	return out
}

func applyAllAtRec(i *Interaction, kinds []TransformKind, pos Position, out *[]Candidate) {
	for _, k := range kinds {
		fn, ok := Lookup(k)
		if !ok {
			continue
		}
		if result, fired := fn(i); fired {
			*out = append(*out, Candidate{Kind: k, Position: pos, Result: result})
		}
	}
	if i.Kind == KindLoop {
		applyAllAtRec(i.LoopBody, kinds, Left(pos), out)
		return
	}
	if !i.IsBinary() {
		return
	}
	applyAllAtRec(i.Left, kinds, Left(pos), out)
	applyAllAtRec(i.Right, kinds, Right(pos), out)
}

// ReplaceAt rebuilds i with the sub-term at pos replaced by replacement,
// used by the canonicalization driver to apply a Transform step recorded at
// a given position.
func ReplaceAt(i *Interaction, pos Position, replacement *Interaction) *Interaction {
	switch pos.Kind {
	case PosEpsilon:
		return replacement
	case PosLeft:
		if i.Kind == KindLoop {
			return NewLoop(i.LoopKind, ReplaceAt(i.LoopBody, *pos.Sub, replacement))
		}
		return rebuildBinarySimplified(i, ReplaceAt(i.Left, *pos.Sub, replacement), i.Right)
	case PosRight:
		return rebuildBinarySimplified(i, i.Left, ReplaceAt(i.Right, *pos.Sub, replacement))
	default:
		return i
	}
}
