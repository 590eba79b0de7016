package interaction

// ExpressEmpty reports whether i accepts the empty trace.
func ExpressEmpty(i *Interaction) bool {
	switch i.Kind {
	case KindEmpty:
		return true
	case KindEmission, KindReception:
		return false
	case KindStrict, KindSeq, KindCoReg, KindPar, KindSync, KindAnd:
		return ExpressEmpty(i.Left) && ExpressEmpty(i.Right)
	case KindAlt:
		return ExpressEmpty(i.Left) || ExpressEmpty(i.Right)
	case KindLoop:
		return true
	default:
		return false
	}
}

// InvolvedLifelines returns the set (as a map used as a set) of lifeline
// ids mentioned anywhere in i: the union over children, and at leaves the
// origin together with the targets/recipients.
func InvolvedLifelines(i *Interaction) map[int]struct{} {
	out := make(map[int]struct{})
	collectInvolvedLifelines(i, out)
	return out
}

func collectInvolvedLifelines(i *Interaction, out map[int]struct{}) {
	switch i.Kind {
	case KindEmpty:
		return
	case KindEmission:
		out[i.Emission.Origin] = struct{}{}
		for _, id := range i.Emission.TargetLifelines() {
			out[id] = struct{}{}
		}
	case KindReception:
		for _, id := range i.Reception.Recipients {
			out[id] = struct{}{}
		}
	case KindLoop:
		collectInvolvedLifelines(i.LoopBody, out)
	default:
		collectInvolvedLifelines(i.Left, out)
		collectInvolvedLifelines(i.Right, out)
	}
}

// InvolvesAnyOf reports whether i mentions any lifeline in lifelines,
// short-circuiting as soon as one is found.
func InvolvesAnyOf(i *Interaction, lifelines map[int]struct{}) bool {
	switch i.Kind {
	case KindEmpty:
		return false
	case KindEmission:
		if _, ok := lifelines[i.Emission.Origin]; ok {
			return true
		}
		for _, id := range i.Emission.TargetLifelines() {
			if _, ok := lifelines[id]; ok {
				return true
			}
		}
		return false
	case KindReception:
		for _, id := range i.Reception.Recipients {
			if _, ok := lifelines[id]; ok {
				return true
			}
		}
		return false
	case KindLoop:
		return InvolvesAnyOf(i.LoopBody, lifelines)
	default:
		return InvolvesAnyOf(i.Left, lifelines) || InvolvesAnyOf(i.Right, lifelines)
	}
}

// AvoidsAllOf is the dual of InvolvesAnyOf: for Alt it is the disjunction
// (either side avoiding L is enough -- Prune, in prune.go, uses this looser
// reading to decide which branch to keep), for every other binary operator
// it is the conjunction of both children, and for Loop it is always true
// (a loop that might not execute at all cannot be said to definitely avoid
// anything it could touch, but treating it as always avoiding keeps a
// Seq/CoReg to its right from being blocked on loop actions it may never
// see -- the loop's own frontier already handles the rest).
func AvoidsAllOf(i *Interaction, lifelines map[int]struct{}) bool {
	switch i.Kind {
	case KindEmpty:
		return true
	case KindEmission, KindReception:
		return !InvolvesAnyOf(i, lifelines)
	case KindAlt:
		return AvoidsAllOf(i.Left, lifelines) || AvoidsAllOf(i.Right, lifelines)
	case KindLoop:
		return true
	default:
		return AvoidsAllOf(i.Left, lifelines) && AvoidsAllOf(i.Right, lifelines)
	}
}

// HasGates reports whether i mentions any gate, directly or in a
// descendant: required before running analyses (Hide, local analysis) that
// assume a gate-free term.
func HasGates(i *Interaction) bool {
	switch i.Kind {
	case KindEmpty:
		return false
	case KindEmission:
		for _, t := range i.Emission.Targets {
			if t.Kind == TargetGate {
				return true
			}
		}
		return false
	case KindReception:
		return i.Reception.HasGate()
	case KindLoop:
		return HasGates(i.LoopBody)
	default:
		return HasGates(i.Left) || HasGates(i.Right)
	}
}

// HasCoregions reports whether i contains a CoReg node anywhere.
func HasCoregions(i *Interaction) bool {
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return false
	case KindCoReg:
		return true
	case KindLoop:
		return HasCoregions(i.LoopBody)
	default:
		return HasCoregions(i.Left) || HasCoregions(i.Right)
	}
}

// HasAnds reports whether i still contains an And node, which must be
// false for any term that has completed canonicalization.
func HasAnds(i *Interaction) bool {
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return false
	case KindAnd:
		return true
	case KindLoop:
		return HasAnds(i.LoopBody)
	default:
		return HasAnds(i.Left) || HasAnds(i.Right)
	}
}

// Reverse swaps Left/Right on the ordered binary operators (Strict, Seq,
// CoReg), is the identity on commutative ones (Par, Alt, Sync, And), and
// recurses under Loop.
func Reverse(i *Interaction) *Interaction {
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return i
	case KindStrict:
		return NewStrict(i.Right, i.Left)
	case KindSeq:
		return NewSeq(i.Right, i.Left)
	case KindCoReg:
		out, _ := NewCoReg(i.CoRegSet, i.Right, i.Left)
		return out
	case KindPar, KindAlt, KindSync, KindAnd:
		return i
	case KindLoop:
		return NewLoop(i.LoopKind, Reverse(i.LoopBody))
	default:
		return i
	}
}

// TotalLoopCount counts every Loop node in i.
func TotalLoopCount(i *Interaction) int {
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return 0
	case KindLoop:
		return 1 + TotalLoopCount(i.LoopBody)
	default:
		return TotalLoopCount(i.Left) + TotalLoopCount(i.Right)
	}
}

// Metrics is the integer size aggregate of a term: total node count and
// total loop count.
type Metrics struct {
	NodeCount int
	LoopCount int
}

// ComputeMetrics walks i once, computing both aggregates together.
func ComputeMetrics(i *Interaction) Metrics {
	var m Metrics
	computeMetrics(i, &m)
	return m
}

func computeMetrics(i *Interaction, m *Metrics) {
	m.NodeCount++
	switch i.Kind {
	case KindEmpty, KindEmission, KindReception:
		return
	case KindLoop:
		m.LoopCount++
		computeMetrics(i.LoopBody, m)
	default:
		computeMetrics(i.Left, m)
		computeMetrics(i.Right, m)
	}
}

// Hide produces a term obtained by eliminating every action mention of a
// lifeline in hidden. An Emission whose origin is hidden
// degenerates to a Reception over its non-hidden lifeline targets (or
// Empty if none remain); a Reception whose recipients all vanish
// degenerates to Empty. Operator nodes whose children both collapse to
// Empty collapse to Empty.
func Hide(i *Interaction, hidden map[int]struct{}) *Interaction {
	switch i.Kind {
	case KindEmpty:
		return Empty
	case KindEmission:
		return hideEmission(*i.Emission, hidden)
	case KindReception:
		return hideReception(*i.Reception, hidden)
	case KindLoop:
		body := Hide(i.LoopBody, hidden)
		if body.IsEmpty() {
			return Empty
		}
		return NewLoop(i.LoopKind, body)
	case KindCoReg:
		l, r := Hide(i.Left, hidden), Hide(i.Right, hidden)
		if l.IsEmpty() && r.IsEmpty() {
			return Empty
		}
		remaining := filterHidden(i.CoRegSet, hidden)
		if len(remaining) == 0 {
			return collapseOrSeq(l, r)
		}
		out, err := NewCoReg(remaining, l, r)
		if err != nil {
			return collapseOrSeq(l, r)
		}
		return out
	case KindSync:
		l, r := Hide(i.Left, hidden), Hide(i.Right, hidden)
		if l.IsEmpty() && r.IsEmpty() {
			return Empty
		}
		return collapseOrSeq(l, r)
	default:
		l, r := Hide(i.Left, hidden), Hide(i.Right, hidden)
		if l.IsEmpty() && r.IsEmpty() {
			return Empty
		}
		return rebuildBinary(i.Kind, l, r)
	}
}

func filterHidden(set []int, hidden map[int]struct{}) []int {
	var out []int
	for _, id := range set {
		if _, ok := hidden[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func collapseOrSeq(l, r *Interaction) *Interaction {
	if l.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return l
	}
	return NewSeq(l, r)
}

func rebuildBinary(kind Kind, l, r *Interaction) *Interaction {
	switch kind {
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
	default:
		return NewSeq(l, r)
	}
}

func hideEmission(e EmissionAction, hidden map[int]struct{}) *Interaction {
	if _, ok := hidden[e.Origin]; ok {
		var recipients []int
		for _, t := range e.Targets {
			if t.Kind != TargetLifeline {
				continue
			}
			if _, h := hidden[t.ID]; h {
				continue
			}
			recipients = append(recipients, t.ID)
		}
		if len(recipients) == 0 {
			return Empty
		}
		return NewReception(ReceptionAction{Message: e.Message, Sync: e.Sync, Recipients: recipients})
	}
	var remaining []EmissionTargetRef
	for _, t := range e.Targets {
		if t.Kind == TargetLifeline {
			if _, h := hidden[t.ID]; h {
				continue
			}
		}
		remaining = append(remaining, t)
	}
	if len(remaining) == 0 {
		return Empty
	}
	return NewEmission(EmissionAction{Origin: e.Origin, Message: e.Message, Sync: e.Sync, Targets: remaining})
}

func hideReception(r ReceptionAction, hidden map[int]struct{}) *Interaction {
	var remaining []int
	for _, id := range r.Recipients {
		if _, h := hidden[id]; h {
			continue
		}
		remaining = append(remaining, id)
	}
	if len(remaining) == 0 {
		return Empty
	}
	return NewReception(ReceptionAction{OriginGate: r.OriginGate, Message: r.Message, Sync: r.Sync, Recipients: remaining})
}
