package verdict

// InconcReason names why a leaf of the multi-trace analysis could not
// reach a conclusive local verdict.
type InconcReason int

const (
	// InconcNone is the zero value: no inconclusiveness has been recorded.
	InconcNone InconcReason = iota
	// InconcLackObs marks a lack of observation attributable to
	// co-localization coarseness: some lifeline's behaviour could not be
	// distinguished from another's because they share one observer.
	InconcLackObs
	// InconcLifelineRemovalWithCoLocalizations is set when AnalysisKindHide
	// is used together with a non-trivial (non-singleton) CoLocalizations
	// partition: hiding lifelines changes what a shared observer could have
	// seen, which coarsens the verdict.
	InconcLifelineRemovalWithCoLocalizations
	// InconcFilteredNodes is set when any process-driver filter eliminated
	// a node that lay on the analysis path, tainting the verdict because
	// the full state space was not explored.
	InconcFilteredNodes
)

// String renders the reason the way log lines and CLI output name it.
func (r InconcReason) String() string {
	switch r {
	case InconcLackObs:
		return "LackObs"
	case InconcLifelineRemovalWithCoLocalizations:
		return "UsingLifelineRemovalWithCoLocalizations"
	case InconcFilteredNodes:
		return "FilteredNodes"
	default:
		return "None"
	}
}

// LocalKind enumerates the shape of a local verdict, independent of any
// pruned/simulated qualifier carried alongside it.
type LocalKind int

const (
	// LocalCov: all canals empty and the interaction expresses empty.
	LocalCov LocalKind = iota
	// LocalTooShort: all canals empty, interaction does not express empty.
	LocalTooShort
	// LocalMultiPref: canals empty with positive simulated_after.
	LocalMultiPref
	// LocalSlice: nontrivial simulation on all sides.
	LocalSlice
	// LocalOut: no frontier step consumed the required next action, or the
	// node was pruned by local analysis (Pruned=true distinguishes the two).
	LocalOut
	// LocalOutSim: LocalOut due to exhausted simulation budget, or pruned
	// by local analysis while simulating (Pruned=true distinguishes).
	LocalOutSim
	// LocalInconc: lack of observation attributable to co-localization
	// coarseness, or to filtered nodes on the path (see Reason).
	LocalInconc
)

func (k LocalKind) String() string {
	switch k {
	case LocalCov:
		return "Cov"
	case LocalTooShort:
		return "TooShort"
	case LocalMultiPref:
		return "MultiPref"
	case LocalSlice:
		return "Slice"
	case LocalOut:
		return "Out"
	case LocalOutSim:
		return "OutSim"
	case LocalInconc:
		return "Inconc"
	default:
		return "?"
	}
}

// Local is the per-leaf local verdict emitted by the multi-trace analysis
// (local-verdict table).
type Local struct {
	Kind   LocalKind
	Pruned bool         // true when Out/OutSim came from local-analysis pruning
	Reason InconcReason // meaningful only when Kind == LocalInconc
}

// Cov, TooShort, MultiPref and Slice take no qualifiers.
func Cov() Local       { return Local{Kind: LocalCov} }
func TooShort() Local  { return Local{Kind: LocalTooShort} }
func MultiPref() Local { return Local{Kind: LocalMultiPref} }
func Slice() Local     { return Local{Kind: LocalSlice} }

// Out builds a LocalOut verdict; pruned distinguishes "pruned by local
// analysis" (true) from "no frontier step consumed the required action"
// (false), matching Out(false)/Out(true) pair.
func Out(pruned bool) Local { return Local{Kind: LocalOut, Pruned: pruned} }

// OutSim builds a LocalOutSim verdict; pruned distinguishes "pruned by
// local analysis while simulating" from "exhausted simulation budget".
func OutSim(pruned bool) Local { return Local{Kind: LocalOutSim, Pruned: pruned} }

// InconcLocal builds a LocalInconc verdict carrying its reason. Named
// distinctly from the Global Inconc constant, which lives in this same
// package.
func InconcLocal(reason InconcReason) Local { return Local{Kind: LocalInconc, Reason: reason} }

// String renders a local verdict as its kind name plus qualifier in
// parentheses when one is carried.
func (l Local) String() string {
	switch l.Kind {
	case LocalOut, LocalOutSim:
		if l.Pruned {
			return l.Kind.String() + "(true)"
		}
		return l.Kind.String() + "(false)"
	case LocalInconc:
		return l.Kind.String() + "(" + l.Reason.String() + ")"
	default:
		return l.Kind.String()
	}
}
