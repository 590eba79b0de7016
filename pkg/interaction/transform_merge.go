package interaction

// The Merge family eliminates And nodes, the auxiliary operator used to
// express that a gate fuses an emission leaving through it with a
// reception entering from it. And never appears in a canonical form;
// canonicalization's later phases assume every And introduced by
// DeFactorize during gate composition has already been merged away.
//
// MergeAction is the base case: once the And's two children are exactly a
// gate-targeting Emission and a same-gate Reception, the gate disappears
// and the pair becomes one direct Emission from the original sender to the
// union of the emission's remaining lifeline targets and the reception's
// recipients. MergeShiftRight{1,2}/MergeShiftLeft{1,2} distribute And
// through Strict/Seq so the gate-matched pair can become adjacent;
// MergeSkip/MergeSkipInvert discharge an And once one side has already
// been fully consumed to Empty.

// MergeAction fuses a gate-matched Emission/Reception pair held together by
// And into one direct Emission.
func MergeAction(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindAnd {
		return nil, false
	}
	em, rc, ok := gateMatchedPair(i.Left, i.Right)
	if !ok {
		em, rc, ok = gateMatchedPair(i.Right, i.Left)
	}
	if !ok {
		return nil, false
	}
	var remaining []EmissionTargetRef
	for _, t := range em.Targets {
		if t.Kind == TargetGate && rc.OriginGate != nil && t.ID == *rc.OriginGate {
			continue
		}
		remaining = append(remaining, t)
	}
	for _, recipient := range rc.Recipients {
		remaining = append(remaining, Lifeline(recipient))
	}
	if len(remaining) == 0 {
		return Empty, true
	}
	return NewEmission(EmissionAction{Origin: em.Origin, Message: em.Message, Sync: em.Sync, Targets: SortTargets(remaining)}), true
}

func gateMatchedPair(a, b *Interaction) (EmissionAction, ReceptionAction, bool) {
	if a.Kind != KindEmission || b.Kind != KindReception {
		return EmissionAction{}, ReceptionAction{}, false
	}
	if b.Reception.OriginGate == nil || a.Emission.Message != b.Reception.Message {
		return EmissionAction{}, ReceptionAction{}, false
	}
	for _, t := range a.Emission.Targets {
		if t.Kind == TargetGate && t.ID == *b.Reception.OriginGate {
			return *a.Emission, *b.Reception, true
		}
	}
	return EmissionAction{}, ReceptionAction{}, false
}

// MergeShiftRight1 distributes And over a Strict composite on its left:
// And(Strict(a,b), c) -> Strict(a, And(b,c)).
func MergeShiftRight1(i *Interaction) (*Interaction, bool) {
	return mergeShift(i, KindStrict, true)
}

// MergeShiftRight2 is MergeShiftRight1's Seq counterpart.
func MergeShiftRight2(i *Interaction) (*Interaction, bool) {
	return mergeShift(i, KindSeq, true)
}

// MergeShiftLeft1 distributes And over a Strict composite on its right:
// And(c, Strict(a,b)) -> Strict(And(c,a), b).
func MergeShiftLeft1(i *Interaction) (*Interaction, bool) {
	return mergeShift(i, KindStrict, false)
}

// MergeShiftLeft2 is MergeShiftLeft1's Seq counterpart.
func MergeShiftLeft2(i *Interaction) (*Interaction, bool) {
	return mergeShift(i, KindSeq, false)
}

func mergeShift(i *Interaction, op Kind, compositeOnLeft bool) (*Interaction, bool) {
	if i.Kind != KindAnd {
		return nil, false
	}
	if compositeOnLeft {
		if i.Left.Kind != op {
			return nil, false
		}
		a, b, c := i.Left.Left, i.Left.Right, i.Right
		return buildSameOp(op, a, NewAnd(b, c)), true
	}
	if i.Right.Kind != op {
		return nil, false
	}
	c, a, b := i.Left, i.Right.Left, i.Right.Right
	return buildSameOp(op, NewAnd(c, a), b), true
}

// MergeSkip discharges And(Empty, y) to y.
func MergeSkip(i *Interaction) (*Interaction, bool) {
	if i.Kind == KindAnd && i.Left.IsEmpty() {
		return i.Right, true
	}
	return nil, false
}

// MergeSkipInvert discharges And(x, Empty) to x.
func MergeSkipInvert(i *Interaction) (*Interaction, bool) {
	if i.Kind == KindAnd && i.Right.IsEmpty() {
		return i.Left, true
	}
	return nil, false
}
