package interaction

// LoopSimpl rewrites Loop(k, Empty) to Empty: a loop around the empty
// interaction can only ever produce the empty trace, same as not looping at
// all.
func LoopSimpl(i *Interaction) (*Interaction, bool) {
	if i.Kind == KindLoop && i.LoopBody.IsEmpty() {
		return Empty, true
	}
	return nil, false
}

// LoopUnNest rewrites Loop(k1, Loop(k2, body)) to Loop(min(k1,k2), body):
// nesting two loops around the same body is equivalent to one loop under
// the weaker (numerically smaller) of the two disciplines.
func LoopUnNest(i *Interaction) (*Interaction, bool) {
	if i.Kind != KindLoop || i.LoopBody.Kind != KindLoop {
		return nil, false
	}
	k1, k2 := i.LoopKind, i.LoopBody.LoopKind
	k := k1
	if k2 < k1 {
		k = k2
	}
	return NewLoop(k, i.LoopBody.LoopBody), true
}
