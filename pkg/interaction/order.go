package interaction

// Compare implements the total order on terms: first by variant
// tag (Kind), then by the fields listed for each variant. It underlies
// InvertAlt/InvertPar, Deduplicate, FlushRight's termination check, and the
// memoization key ordering used by the process driver.
//
// Compare returns -1, 0 or 1 the way sort.Slice comparators expect, so that
// rewrite rules can test "is the result strictly smaller" (FlushRight) or
// "is this list already sorted" (InvertAlt/InvertPar) directly.
func Compare(a, b *Interaction) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind))
	}
	switch a.Kind {
	case KindEmpty:
		return 0
	case KindEmission:
		return compareEmission(*a.Emission, *b.Emission)
	case KindReception:
		return compareReception(*a.Reception, *b.Reception)
	case KindLoop:
		if a.LoopKind != b.LoopKind {
			return cmpInt(int(a.LoopKind), int(b.LoopKind))
		}
		return Compare(a.LoopBody, b.LoopBody)
	case KindCoReg:
		if c := compareIntSlice(a.CoRegSet, b.CoRegSet); c != 0 {
			return c
		}
		return compareChildren(a, b)
	case KindSync:
		if c := compareTraceActionSlice(a.SyncActions, b.SyncActions); c != 0 {
			return c
		}
		return compareChildren(a, b)
	default:
		return compareChildren(a, b)
	}
}

// Less reports whether a strictly precedes b in the total order.
func Less(a, b *Interaction) bool { return Compare(a, b) < 0 }

// EqualOrder reports whether a and b compare equal under the total order
// (equivalent to Interaction.Equal but phrased for sort-based callers).
func EqualOrder(a, b *Interaction) bool { return Compare(a, b) == 0 }

// IsSorted reports whether terms is non-decreasing under Compare, the
// precondition InvertAlt/InvertPar rewrite away.
func IsSorted(terms []*Interaction) bool {
	for i := 1; i < len(terms); i++ {
		if Compare(terms[i-1], terms[i]) > 0 {
			return false
		}
	}
	return true
}

// SortTerms returns a stably-sorted copy of terms under Compare.
func SortTerms(terms []*Interaction) []*Interaction {
	out := append([]*Interaction(nil), terms...)
	insertionSortStable(out)
	return out
}

func insertionSortStable(xs []*Interaction) {
	for i := 1; i < len(xs); i++ {
		j := i
		for j > 0 && Compare(xs[j-1], xs[j]) > 0 {
			xs[j-1], xs[j] = xs[j], xs[j-1]
			j--
		}
	}
}

func compareChildren(a, b *Interaction) int {
	if c := Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return Compare(a.Right, b.Right)
}

func compareEmission(a, b EmissionAction) int {
	if c := cmpInt(a.Origin, b.Origin); c != 0 {
		return c
	}
	if c := cmpInt(a.Message, b.Message); c != 0 {
		return c
	}
	if c := cmpInt(int(a.Sync), int(b.Sync)); c != 0 {
		return c
	}
	return compareTargets(a.Targets, b.Targets)
}

func compareReception(a, b ReceptionAction) int {
	ag, bg := -1, -1
	if a.OriginGate != nil {
		ag = *a.OriginGate
	}
	if b.OriginGate != nil {
		bg = *b.OriginGate
	}
	if c := cmpInt(ag, bg); c != 0 {
		return c
	}
	if c := cmpInt(a.Message, b.Message); c != 0 {
		return c
	}
	if c := cmpInt(int(a.Sync), int(b.Sync)); c != 0 {
		return c
	}
	return compareIntSlice(a.Recipients, b.Recipients)
}

func compareTargets(a, b []EmissionTargetRef) int {
	n := minInt(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i].Kind != b[i].Kind {
			return cmpInt(int(a[i].Kind), int(b[i].Kind))
		}
		if a[i].ID != b[i].ID {
			return cmpInt(a[i].ID, b[i].ID)
		}
	}
	return cmpInt(len(a), len(b))
}

func compareIntSlice(a, b []int) int {
	n := minInt(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return cmpInt(a[i], b[i])
		}
	}
	return cmpInt(len(a), len(b))
}

func compareTraceActionSlice(a, b []TraceAction) int {
	n := minInt(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i].Less(b[i]) {
			return -1
		}
		if b[i].Less(a[i]) {
			return 1
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
