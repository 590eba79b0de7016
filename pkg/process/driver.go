package process

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gitrdm/hibouengine/pkg/verdict"
)

// Driver is the generic best-first process enumerator, parameterized by a
// Handler over node type N and step type S.
type Driver[N any, S any] struct {
	Handler Handler[N, S]
	Queue   QueueStrategy
	Filters FilterSet
	Goal    verdict.Global
	Logger  zerolog.Logger

	runID string
}

// NewDriver builds a Driver with a fresh run-correlation id, attached to
// every log line the run emits so parallel runs in the same process can be
// told apart (the ambient logging stack).
func NewDriver[N any, S any](handler Handler[N, S], queue QueueStrategy, filters FilterSet, goal verdict.Global, logger zerolog.Logger) *Driver[N, S] {
	return &Driver[N, S]{
		Handler: handler,
		Queue:   queue,
		Filters: filters,
		Goal:    goal,
		Logger:  logger,
		runID:   uuid.NewString(),
	}
}

type queueEntry[N any] struct {
	node  N
	depth int
}

// Run drives the process from root until the queue drains, the goal
// verdict is reached, or every path has been eliminated by a filter. It
// returns the total node count explored and the folded global verdict.
func (d *Driver[N, S]) Run(root N) (int, verdict.Global) {
	log := d.Logger.With().Str("run_id", d.runID).Logger()
	nodeCount := 0
	var global verdict.Global
	firstLeaf := true
	seen := make(map[string][]N)

	q := newQueue(d.Queue)
	q.push(queueEntry[N]{node: root, depth: 0}, 0)

	fold := func(local verdict.Local) {
		g := verdict.FromLocal(local)
		if firstLeaf {
			global = g
			firstLeaf = false
			return
		}
		global = global.Join(g)
	}

	for !q.empty() {
		raw, _ := q.pop()
		qe := raw.(queueEntry[N])
		nodeCount++

		crit := Criterion{
			LoopInstanciationCount: d.Handler.LoopInstanciationCount(qe.node),
			ProcessDepth:           qe.depth,
		}
		if kind, eliminated := d.Filters.Check(crit, nodeCount); eliminated {
			log.Debug().Str("filter", kind.String()).Int("node", nodeCount).Msg("node eliminated by filter")
			fold(verdict.InconcLocal(verdict.InconcFilteredNodes))
			continue
		}

		key := d.Handler.Key(qe.node)
		subsumed := false
		for _, prior := range seen[key] {
			if d.Handler.Subsumes(prior, qe.node) {
				subsumed = true
				break
			}
		}
		if subsumed {
			log.Debug().Int("node", nodeCount).Msg("node subsumed by memoized sibling")
			continue
		}
		seen[key] = append(seen[key], qe.node)

		if lv, ok := d.Handler.StaticLocalVerdict(qe.node); ok {
			fold(lv)
			if !d.Handler.PursueAfterStaticVerdict(lv) {
				if verdict.IsGoalReached(global, d.Goal) {
					return nodeCount, global
				}
				continue
			}
		}

		steps := d.Handler.CollectNextSteps(qe.node)
		if len(steps) == 0 {
			fold(d.Handler.LocalVerdictWhenNoChild(qe.node))
			if verdict.IsGoalReached(global, d.Goal) {
				return nodeCount, global
			}
			continue
		}

		for _, st := range steps {
			child := d.Handler.ProcessNewStep(qe.node, st)
			q.push(queueEntry[N]{node: child, depth: qe.depth + 1}, d.Handler.Priority(st))
		}

		if verdict.IsGoalReached(global, d.Goal) {
			return nodeCount, global
		}
	}

	if firstLeaf {
		return nodeCount, verdict.Inconc
	}
	return nodeCount, global
}
