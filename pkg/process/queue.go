// Package process implements the generic best-first process driver: a
// node/step enumerator parameterized by a Handler, shared by
// canonicalization, exploration and multi-trace analysis.
package process

import "container/heap"

// QueueStrategy names the order in which a driver pops pending items.
type QueueStrategy interface {
	// Name returns a descriptive name for this strategy.
	Name() string
	// Description returns detailed information about the strategy's behavior.
	Description() string
}

type breadthFirst struct{}

func (breadthFirst) Name() string        { return "breadth-first" }
func (breadthFirst) Description() string { return "pops pending items in FIFO order" }

// BreadthFirst pops pending items in the order they were pushed.
func BreadthFirst() QueueStrategy { return breadthFirst{} }

type depthFirst struct{}

func (depthFirst) Name() string        { return "depth-first" }
func (depthFirst) Description() string { return "pops the most recently pushed item first" }

// DepthFirst pops the most recently pushed item first.
func DepthFirst() QueueStrategy { return depthFirst{} }

type priorityFirst struct{}

func (priorityFirst) Name() string { return "priority-first" }
func (priorityFirst) Description() string {
	return "pops the highest-priority item first, ties broken by FIFO insertion order"
}

// PriorityFirst pops the highest-priority pending item first; ties are
// broken by FIFO insertion order.
func PriorityFirst() QueueStrategy { return priorityFirst{} }

// item is one pending entry in the queue, generic over the caller's item
// payload type via an interface{} box -- the driver only ever needs to
// move items around, never to inspect their contents itself.
type item struct {
	payload  interface{}
	priority int32
	seq      int
}

// pqueue is a container/heap-backed max-priority queue with FIFO tie
// breaking, also usable in FIFO or LIFO mode by ignoring priority.
type pqueue struct {
	strategy QueueStrategy
	items    []*item
	nextSeq  int
}

func newQueue(strategy QueueStrategy) *pqueue {
	q := &pqueue{strategy: strategy}
	if strategy.Name() == "priority-first" {
		heap.Init(q)
	}
	return q
}

func (q *pqueue) push(payload interface{}, priority int32) {
	it := &item{payload: payload, priority: priority, seq: q.nextSeq}
	q.nextSeq++
	switch q.strategy.Name() {
	case "priority-first":
		heap.Push(q, it)
	default:
		q.items = append(q.items, it)
	}
}

func (q *pqueue) pop() (interface{}, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	switch q.strategy.Name() {
	case "priority-first":
		it := heap.Pop(q).(*item)
		return it.payload, true
	case "depth-first":
		last := q.items[len(q.items)-1]
		q.items = q.items[:len(q.items)-1]
		return last.payload, true
	default: // breadth-first
		first := q.items[0]
		q.items = q.items[1:]
		return first.payload, true
	}
}

func (q *pqueue) empty() bool { return len(q.items) == 0 }

// heap.Interface implementation (only meaningful in priority-first mode).
func (q *pqueue) Len() int { return len(q.items) }
func (q *pqueue) Less(i, j int) bool {
	if q.items[i].priority != q.items[j].priority {
		return q.items[i].priority > q.items[j].priority
	}
	return q.items[i].seq < q.items[j].seq
}
func (q *pqueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *pqueue) Push(x interface{}) {
	q.items = append(q.items, x.(*item))
}
func (q *pqueue) Pop() interface{} {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}
