package interaction

// Execute returns the interaction obtained by consuming the leaf named by
// pos, and the loop-kind-derived simplification sweep afterward. Panics if
// pos does not address an existing leaf of i: the caller
// is expected to only ever execute a position it obtained from Frontier.
func Execute(i *Interaction, pos Position) *Interaction {
	return simplify(executeAt(i, pos, 0))
}

func executeAt(i *Interaction, pos Position, loopDepth int) *Interaction {
	switch pos.Kind {
	case PosEpsilon:
		return executeLeaf(i, pos.SubIndex)
	case PosLeft:
		switch i.Kind {
		case KindStrict, KindSeq, KindCoReg, KindPar, KindAnd:
			return rebuildExecuted(i, executeAt(i.Left, *pos.Sub, loopDepth), i.Right, false)
		case KindAlt:
			return executeAt(i.Left, *pos.Sub, loopDepth)
		case KindLoop:
			return unrollLoop(i, *pos.Sub, loopDepth)
		default:
			panic("interaction: Execute: Left position on a non-binary node")
		}
	case PosRight:
		switch i.Kind {
		case KindStrict, KindPar, KindAnd:
			return rebuildExecuted(i, i.Left, executeAt(i.Right, *pos.Sub, loopDepth), false)
		case KindSeq, KindCoReg:
			return rebuildExecuted(i, i.Left, executeAt(i.Right, *pos.Sub, loopDepth), true)
		case KindAlt:
			return executeAt(i.Right, *pos.Sub, loopDepth)
		default:
			panic("interaction: Execute: Right position on an unsupported node")
		}
	case PosBoth:
		if i.Kind != KindSync {
			panic("interaction: Execute: Both position on a non-Sync node")
		}
		l := executeAt(i.Left, *pos.SubLeft, loopDepth)
		r := executeAt(i.Right, *pos.SubRight, loopDepth)
		if l.IsEmpty() && r.IsEmpty() {
			return Empty
		}
		if l.IsEmpty() {
			return r
		}
		if r.IsEmpty() {
			return l
		}
		return NewSeq(l, r)
	default:
		panic("interaction: Execute: unknown position kind")
	}
}

func rebuildExecuted(i *Interaction, l, r *Interaction, rightExecuted bool) *Interaction {
	if rightExecuted {
		l = Prune(l, executedLifelinesDiff(i.Right, r))
	}
	switch i.Kind {
	case KindStrict:
		return NewStrict(l, r)
	case KindSeq:
		return NewSeq(l, r)
	case KindCoReg:
		if len(i.CoRegSet) == 0 {
			return NewSeq(l, r)
		}
		out, err := NewCoReg(i.CoRegSet, l, r)
		if err != nil {
			return NewSeq(l, r)
		}
		return out
	case KindPar:
		return NewPar(l, r)
	case KindAnd:
		return NewAnd(l, r)
	default:
		return NewSeq(l, r)
	}
}

// executedLifelinesDiff returns the lifelines that were touched by the
// action just consumed out of before to reach after: those are the
// lifelines that now must be pruned from a sibling that has already passed
// its sequencing point relative to them.
func executedLifelinesDiff(before, after *Interaction) map[int]struct{} {
	beforeSet := InvolvedLifelines(before)
	afterSet := InvolvedLifelines(after)
	out := make(map[int]struct{})
	for l := range beforeSet {
		if _, stillThere := afterSet[l]; !stillThere {
			out[l] = struct{}{}
		}
	}
	return out
}

func executeLeaf(i *Interaction, subIndex int) *Interaction {
	switch i.Kind {
	case KindEmission:
		if subIndex < 0 || len(i.Emission.Targets) <= 1 {
			return Empty
		}
		remaining := make([]EmissionTargetRef, 0, len(i.Emission.Targets)-1)
		for k, t := range i.Emission.Targets {
			if k != subIndex {
				remaining = append(remaining, t)
			}
		}
		return NewEmission(EmissionAction{Origin: i.Emission.Origin, Message: i.Emission.Message, Sync: i.Emission.Sync, Targets: remaining})
	case KindReception:
		if subIndex < 0 || len(i.Reception.Recipients) <= 1 {
			return Empty
		}
		remaining := make([]int, 0, len(i.Reception.Recipients)-1)
		for k, r := range i.Reception.Recipients {
			if k != subIndex {
				remaining = append(remaining, r)
			}
		}
		return NewReception(ReceptionAction{OriginGate: i.Reception.OriginGate, Message: i.Reception.Message, Sync: i.Reception.Sync, Recipients: remaining})
	default:
		panic("interaction: Execute: Epsilon position on a non-leaf node")
	}
}

// unrollLoop implements the Loop unrolling rule: one iteration
// is peeled off and combined with the remaining loop via the operator
// determined by kind, then the position is executed inside that peeled
// copy. HeadFirstWeakSeq uses Strict on the very first iteration (loopDepth
// == 0 on entry) and Seq on every subsequent one, per the Open-Question
// decision recorded in DESIGN.md.
func unrollLoop(i *Interaction, pos Position, loopDepth int) *Interaction {
	peeled := executeAt(i.LoopBody, pos, loopDepth+1)
	rest := NewLoop(i.LoopKind, i.LoopBody)
	switch i.LoopKind {
	case StrictSeqLoop:
		return NewStrict(peeled, rest)
	case HeadFirstWeakSeqLoop:
		if loopDepth == 0 {
			return NewStrict(peeled, rest)
		}
		return NewSeq(peeled, rest)
	case WeakSeqLoop:
		return NewSeq(peeled, rest)
	case InterleavingLoop:
		return NewPar(peeled, rest)
	default:
		return NewSeq(peeled, rest)
	}
}

// simplify removes Empty operands from associative operators after an
// execution step, recursively (post-execution sweep).
func simplify(i *Interaction) *Interaction {
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return i
	case KindLoop:
		body := simplify(i.LoopBody)
		if body.IsEmpty() {
			return Empty
		}
		return NewLoop(i.LoopKind, body)
	case KindStrict, KindSeq, KindPar, KindCoReg:
		l, r := simplify(i.Left), simplify(i.Right)
		if l.IsEmpty() {
			return r
		}
		if r.IsEmpty() {
			return l
		}
		return rebuildBinarySimplified(i, l, r)
	case KindAlt, KindSync, KindAnd:
		l, r := simplify(i.Left), simplify(i.Right)
		return rebuildBinarySimplified(i, l, r)
	default:
		return i
	}
}

func rebuildBinarySimplified(i *Interaction, l, r *Interaction) *Interaction {
	switch i.Kind {
	case KindStrict:
		return NewStrict(l, r)
	case KindSeq:
		return NewSeq(l, r)
	case KindPar:
		return NewPar(l, r)
	case KindAlt:
		return NewAlt(l, r)
	case KindAnd:
		return NewAnd(l, r)
	case KindCoReg:
		if len(i.CoRegSet) == 0 {
			return NewSeq(l, r)
		}
		out, err := NewCoReg(i.CoRegSet, l, r)
		if err != nil {
			return NewSeq(l, r)
		}
		return out
	case KindSync:
		out, err := NewSync(i.SyncActions, l, r)
		if err != nil {
			return NewSeq(l, r)
		}
		return out
	default:
		return NewSeq(l, r)
	}
}
