package explore

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/interaction"
	"github.com/gitrdm/hibouengine/pkg/process"
	"github.com/gitrdm/hibouengine/pkg/verdict"
)

// PriorityWeights configures the order in which a node's own frontier
// elements are turned into transitions: higher values go first, favoring
// emissions, receptions, multi-rendezvous, and low loop depth as
// configured.
type PriorityWeights struct {
	Emission         int32
	Reception        int32
	MultiRendezvous  int32
	LoopDepthPenalty int32
}

// DefaultPriorityWeights favors emissions slightly over receptions, gives a
// bonus to multi-lifeline rendezvous, and penalizes deeper loop unrolling.
func DefaultPriorityWeights() PriorityWeights {
	return PriorityWeights{Emission: 2, Reception: 1, MultiRendezvous: 3, LoopDepthPenalty: 1}
}

func (w PriorityWeights) score(f interaction.FrontierElement) int32 {
	var score int32
	for _, a := range f.Actions {
		if a.Kind == interaction.ActEmission {
			score += w.Emission
		} else {
			score += w.Reception
		}
	}
	if len(f.Actions) > 1 {
		score += w.MultiRendezvous
	}
	score -= int32(f.MaxLoopDepth) * w.LoopDepthPenalty
	return score
}

// Config bounds and steers an exploration run. MaxLoopInstanciation,
// MaxProcessDepth and MaxNodeNumber feed the shared process-driver filter
// pipeline directly; zero disables the corresponding bound.
type Config struct {
	MaxLoopInstanciation int
	MaxProcessDepth      int
	MaxNodeNumber        int
	Priorities           PriorityWeights
}

// Node is the state the driver walks: the interaction still to explore from,
// the NFA state already allocated for it, and the deepest loop unrolling any
// step on its path so far has required.
type Node struct {
	Term      *interaction.Interaction
	State     int
	LoopDepth int
}

// Step is one frontier element fired out of a node.
type Step struct {
	Frontier interaction.FrontierElement
}

// Handler drives one exploration run through process.Driver[Node, Step],
// building NFA as a side effect of every step it processes: states are
// interactions under memoization, letters are dense-indexed action sets,
// transitions are recorded as steps fire.
type Handler struct {
	NFA     *NFA
	Weights PriorityWeights
	Logger  zerolog.Logger

	seen map[string]int
}

// NewHandler builds a Handler with a fresh, empty automaton.
func NewHandler(weights PriorityWeights, logger zerolog.Logger) *Handler {
	return &Handler{NFA: NewNFA(), Weights: weights, Logger: logger, seen: make(map[string]int)}
}

// CollectNextSteps implements process.Handler: every frontier element is a
// candidate step, ordered by priority for the queue strategy.
func (h *Handler) CollectNextSteps(node Node) []Step {
	frontier := interaction.Frontier(node.Term)
	sort.SliceStable(frontier, func(a, b int) bool {
		return h.Weights.score(frontier[a]) > h.Weights.score(frontier[b])
	})
	steps := make([]Step, len(frontier))
	for i, f := range frontier {
		steps[i] = Step{Frontier: f}
	}
	return steps
}

// ProcessNewStep implements process.Handler: executes the frontier element,
// allocates a fresh NFA state the first time the resulting term is seen
// (reusing the existing one on a revisit), and records the transition.
func (h *Handler) ProcessNewStep(parent Node, step Step) Node {
	child := interaction.Execute(parent.Term, step.Frontier.Position)
	letter := h.NFA.LetterFor(step.Frontier.Actions)

	key := child.Key()
	state, known := h.seen[key]
	if !known {
		state = h.NFA.NewState()
		h.seen[key] = state
	}
	h.NFA.AddTransition(parent.State, letter, state, interaction.ExpressEmpty(child))

	depth := parent.LoopDepth
	if step.Frontier.MaxLoopDepth > depth {
		depth = step.Frontier.MaxLoopDepth
	}
	return Node{Term: child, State: state, LoopDepth: depth}
}

// Priority implements process.Handler.
func (h *Handler) Priority(step Step) int32 { return h.Weights.score(step.Frontier) }

// LoopInstanciationCount implements process.Handler, feeding the shared
// MaxLoopInstanciation filter.
func (h *Handler) LoopInstanciationCount(node Node) int { return node.LoopDepth }

// LocalVerdictWhenNoChild implements process.Handler: a node with an empty
// frontier is a dead end for exploration purposes; the verdict itself
// carries no meaning here, only the driver's bookkeeping does.
func (h *Handler) LocalVerdictWhenNoChild(Node) verdict.Local { return verdict.Cov() }

// StaticLocalVerdict implements process.Handler: exploration has no fast
// path of its own.
func (h *Handler) StaticLocalVerdict(Node) (verdict.Local, bool) { return verdict.Local{}, false }

// PursueAfterStaticVerdict implements process.Handler; never consulted
// since StaticLocalVerdict never fires.
func (h *Handler) PursueAfterStaticVerdict(verdict.Local) bool { return false }

// Subsumes implements process.Handler: Key is the term alone, so two nodes
// sharing a bucket have an identical frontier and future regardless of the
// loop depth or NFA state each arrived with.
func (h *Handler) Subsumes(Node, Node) bool { return true }

// Key implements process.Handler: the interaction term, matching the
// memoization discipline every revisit of the same term in the original
// hand-rolled worklist relied on.
func (h *Handler) Key(node Node) string { return node.Term.Key() }

// neverReached sits past the top of the verdict lattice: Explore walks its
// process tree to exhaustion (bounded only by cfg's filters) rather than
// stopping once some goal is folded in.
const neverReached verdict.Global = verdict.Pass + 1

// Explore drives root through every reachable execution up to cfg's
// bounds, producing the automaton those executions trace out. Memoization
// collapses revisits of the same interaction into the same state, so the
// result is finite whenever a loop-instantiation bound makes unfolding
// finite.
func Explore(root *interaction.Interaction, cfg Config, logger zerolog.Logger) *NFA {
	h := NewHandler(cfg.Priorities, logger)
	initialState := h.NFA.NewState()
	h.seen[root.Key()] = initialState
	if interaction.ExpressEmpty(root) {
		h.NFA.Final[initialState] = true
	}

	filters := process.FilterSet{
		MaxLoopInstanciation: cfg.MaxLoopInstanciation,
		MaxProcessDepth:      cfg.MaxProcessDepth,
		MaxNodeNumber:        cfg.MaxNodeNumber,
	}
	driver := process.NewDriver[Node, Step](h, process.BreadthFirst(), filters, neverReached, logger)
	driver.Run(Node{Term: root, State: initialState})
	return h.NFA
}
