package interaction

// StrictToSeq replaces Strict(l,r) by Seq(l,r) when the last actions of l
// and the first actions of r never share a lifeline: under that condition
// strict and weak sequencing are observably equivalent, and Seq is the
// weaker (more general) form canonicalization prefers.
func StrictToSeq(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindStrict {
		return nil, false
	}
	last := lastTouchedLifelines(i.Left)
	first := firstTouchedLifelines(i.Right)
	if sharesLifeline(last, first) {
		return nil, false
	}
	return NewSeq(i.Left, i.Right), true
}

// ParToSeq replaces Par(l,r) by Seq(l,r) when l and r share no lifeline at
// all: with no shared lifeline, interleaving and weak sequencing produce
// the same set of traces, and Seq is preferred as the weaker form
//.
func ParToSeq(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindPar {
		return nil, false
	}
	lSet := InvolvedLifelines(i.Left)
	if InvolvesAnyOf(i.Right, lSet) {
		return nil, false
	}
	return NewSeq(i.Left, i.Right), true
}

func sharesLifeline(a, b map[int]struct{}) bool {
	for l := range a {
		if _, ok := b[l]; ok {
			return true
		}
	}
	return false
}

func lastTouchedLifelines(i *Interaction) map[int]struct{} {
	out := make(map[int]struct{})
	for _, e := range Frontier(Reverse(i)) {
		for _, a := range e.Actions {
			out[a.Lifeline] = struct{}{}
		}
	}
	return out
}

func firstTouchedLifelines(i *Interaction) map[int]struct{} {
	out := make(map[int]struct{})
	for _, e := range Frontier(i) {
		for _, a := range e.Actions {
			out[a.Lifeline] = struct{}{}
		}
	}
	return out
}
