package interaction

// Prune removes the branches of every Alt that involve any lifeline in L,
// keeping only the side that avoids L. For Loop(k, body), if
// body involves L the whole loop is removed (becomes Empty) since a loop
// that might fire an action on a lifeline that has already passed its
// sequencing point can no longer be allowed to iterate; otherwise the loop
// is kept unchanged. Leaves and other operators recurse on both children.
func Prune(i *Interaction, L map[int]struct{}) *Interaction {
	if len(L) == 0 {
		return i
	}
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return i
	case KindAlt:
		leftOK := AvoidsAllOf(i.Left, L)
		rightOK := AvoidsAllOf(i.Right, L)
		switch {
		case leftOK && rightOK:
			return NewAlt(Prune(i.Left, L), Prune(i.Right, L))
		case leftOK:
			return Prune(i.Left, L)
		case rightOK:
			return Prune(i.Right, L)
		default:
			return Empty
		}
	case KindLoop:
		if InvolvesAnyOf(i.LoopBody, L) {
			return Empty
		}
		return i
	default:
		return rebuildBinarySimplified(i, Prune(i.Left, L), Prune(i.Right, L))
	}
}
