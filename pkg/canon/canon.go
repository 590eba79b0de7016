package canon

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/process"
	"github.com/gitrdm/hibouengine/pkg/verdict"
)

// Node pairs a term with the index of the phase currently driving its
// rewriting.
type Node struct {
	Term       *interaction.Interaction
	PhaseIndex int
}

// StepKind distinguishes a Transform step from a phase-advance step.
type StepKind int

const (
	StepTransform StepKind = iota
	StepGoToNextPhase
)

// Step is one move the canonicalizer records: either a Transform(kind,
// position, result) or GoToNextPhase, emitted when no transformation in
// the current phase's set applies anywhere in the term.
type Step struct {
	Kind      StepKind
	Transform interaction.TransformKind
	Position  interaction.Position
	Result    *interaction.Interaction
}

// CanonizeReport is the outcome of a canonicalization run. In first-match
// mode (the default) Canonical holds the single reached normal form; in
// get_all mode All holds every distinct normal form reachable by some
// order of rule application, and Canonical is All's first element.
type CanonizeReport struct {
	Canonical *interaction.Interaction
	All       []*interaction.Interaction
	Steps     []Step
	NodeCount int
}

// Mode selects how a Handler branches at each phase: FirstMatch commits to
// the first applicable rewrite found (a single linear path), GetAll
// branches on every applicable (kind, position) pair.
type Mode int

const (
	FirstMatch Mode = iota
	GetAll
)

// Handler drives phased canonicalization through process.Driver[Node,
// Step]: phases and mode are fixed for the run, reached normal forms
// accumulate on the handler as the driver folds in its leaves.
type Handler struct {
	Phases     []Phase
	Mode       Mode
	TrackSteps bool
	Logger     zerolog.Logger

	leaves   []*interaction.Interaction
	leafSeen map[string]bool
	steps    []Step
}

// NewHandler builds a Handler for phases under mode.
func NewHandler(phases []Phase, mode Mode, logger zerolog.Logger) *Handler {
	return &Handler{Phases: phases, Mode: mode, Logger: logger, leafSeen: make(map[string]bool)}
}

// CollectNextSteps implements process.Handler: a node past the last phase
// has no further step (a leaf); otherwise it either fires a rewrite (one
// under FirstMatch, every applicable one under GetAll) or, once none apply
// anywhere in the term, advances to the next phase.
func (h *Handler) CollectNextSteps(node Node) []Step {
	if node.PhaseIndex >= len(h.Phases) {
		return nil
	}
	kinds := h.Phases[node.PhaseIndex].Kinds

	if h.Mode == GetAll {
		candidates := interaction.ApplyAllAt(node.Term, kinds)
		if len(candidates) == 0 {
			return []Step{{Kind: StepGoToNextPhase}}
		}
		steps := make([]Step, len(candidates))
		for i, c := range candidates {
			steps[i] = Step{Kind: StepTransform, Transform: c.Kind, Position: c.Position, Result: c.Result}
		}
		return steps
	}

	kind, pos, result, ok := interaction.ApplyAt(node.Term, kinds)
	if !ok {
		return []Step{{Kind: StepGoToNextPhase}}
	}
	return []Step{{Kind: StepTransform, Transform: kind, Position: pos, Result: result}}
}

// ProcessNewStep implements process.Handler: a Transform step substitutes
// its result at its position, a GoToNextPhase step advances the phase
// index and leaves the term untouched.
func (h *Handler) ProcessNewStep(parent Node, step Step) Node {
	var child Node
	if step.Kind == StepGoToNextPhase {
		child = Node{Term: parent.Term, PhaseIndex: parent.PhaseIndex + 1}
	} else {
		child = Node{Term: interaction.ReplaceAt(parent.Term, step.Position, step.Result), PhaseIndex: parent.PhaseIndex}
	}
	if h.TrackSteps {
		recorded := step
		if step.Kind == StepTransform {
			recorded.Result = child.Term
		}
		h.steps = append(h.steps, recorded)
	}
	return child
}

// Priority implements process.Handler: every step advances the rewrite in
// the same way regardless of order, so priority carries no information
// here; the queue strategy alone decides traversal order.
func (h *Handler) Priority(Step) int32 { return 0 }

// LoopInstanciationCount implements process.Handler. Canonicalization
// rewrites a static term rather than unrolling loops at runtime, so the
// MaxLoopInstanciation filter never applies here.
func (h *Handler) LoopInstanciationCount(Node) int { return 0 }

// LocalVerdictWhenNoChild implements process.Handler: a node past the last
// phase is a reached normal form. Distinct branches that converge on the
// same term are merged here, the same memoization discipline the process
// driver uses mid-search for nodes it revisits.
func (h *Handler) LocalVerdictWhenNoChild(node Node) verdict.Local {
	key := node.Term.Key()
	if !h.leafSeen[key] {
		h.leafSeen[key] = true
		h.leaves = append(h.leaves, node.Term)
	}
	return verdict.Cov()
}

// StaticLocalVerdict implements process.Handler: canonicalization has no
// fast path short of reaching the last phase, which CollectNextSteps
// already reports as childless.
func (h *Handler) StaticLocalVerdict(Node) (verdict.Local, bool) { return verdict.Local{}, false }

// PursueAfterStaticVerdict implements process.Handler; never consulted
// since StaticLocalVerdict never fires.
func (h *Handler) PursueAfterStaticVerdict(verdict.Local) bool { return false }

// Subsumes implements process.Handler: Key already encodes the full node
// state (term and phase index), so two nodes sharing a bucket have an
// identical future and candidate is always subsumed.
func (h *Handler) Subsumes(Node, Node) bool { return true }

// Key implements process.Handler: term plus phase index, since the same
// term reached under two different phases can still diverge.
func (h *Handler) Key(node Node) string {
	return fmt.Sprintf("%s|%d", node.Term.Key(), node.PhaseIndex)
}

// neverReached sits past the top of the verdict lattice: Canonize and
// CanonizeAll explore their process tree to exhaustion rather than
// stopping once some goal is folded in, which the driver is otherwise
// built to do.
const neverReached verdict.Global = verdict.Pass + 1

// Canonize drives i through phases to a fixed point, taking the first
// applicable transformation at each step (default mode). The process
// terminates because every rewrite in the library is size- or
// sort-reducing under the term order.
func Canonize(i *interaction.Interaction, phases []Phase, logger zerolog.Logger) CanonizeReport {
	h := NewHandler(phases, FirstMatch, logger)
	h.TrackSteps = true
	driver := process.NewDriver[Node, Step](h, process.BreadthFirst(), process.FilterSet{}, neverReached, logger)
	nodeCount, _ := driver.Run(Node{Term: i, PhaseIndex: 0})

	canonical := i
	if len(h.leaves) > 0 {
		canonical = h.leaves[0]
	}
	return CanonizeReport{Canonical: canonical, All: h.leaves, Steps: h.steps, NodeCount: nodeCount}
}

// CanonizeAll drives i through phases in get_all mode: at every node, every
// applicable (kind, position) pair branches the search; a node with no
// applicable transformation in its phase advances to the next phase, and
// the run that exhausts the last phase contributes one normal form to All.
// Distinct branches that converge on the same term (by Key) are merged, the
// same memoization discipline the process driver uses for its own runs.
func CanonizeAll(i *interaction.Interaction, phases []Phase, logger zerolog.Logger) CanonizeReport {
	h := NewHandler(phases, GetAll, logger)
	driver := process.NewDriver[Node, Step](h, process.DepthFirst(), process.FilterSet{}, neverReached, logger)
	nodeCount, _ := driver.Run(Node{Term: i, PhaseIndex: 0})

	var canonical *interaction.Interaction
	if len(h.leaves) > 0 {
		canonical = h.leaves[0]
	}
	return CanonizeReport{Canonical: canonical, All: h.leaves, NodeCount: nodeCount}
}
