// Package context implements the General Context: the registry mapping
// symbolic lifeline, message and gate names to dense, stable integer
// identifiers assigned in declaration order.
//
// A GeneralContext is built once while a signature is being declared and is
// read-only for the remainder of the program's lifetime; every other
// component in this engine (the term algebra, the trace model, the process
// driver) addresses lifelines/messages/gates exclusively by the integer ids
// handed out here.
package context

import (
	"fmt"
	"sync"
)

// registry is a thread-safe, insertion-ordered name<->id bijection: a
// mutex-guarded map plus a parallel slice for the reverse lookup.
type registry struct {
	mu        sync.RWMutex
	nameToID  map[string]int
	idToName  []string
	entityTag string
}

func newRegistry(entityTag string) *registry {
	return &registry{
		nameToID:  make(map[string]int),
		entityTag: entityTag,
	}
}

// add assigns the next dense id to name, or returns the existing id if name
// was already declared. It never reassigns an id once given.
func (r *registry) add(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.nameToID[name]; ok {
		return id
	}
	id := len(r.idToName)
	r.nameToID[name] = id
	r.idToName = append(r.idToName, name)
	return id
}

func (r *registry) getID(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.nameToID[name]
	return id, ok
}

func (r *registry) getName(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= len(r.idToName) {
		return "", false
	}
	return r.idToName[id], true
}

func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.idToName)
}

func (r *registry) mustGetName(id int) string {
	name, ok := r.getName(id)
	if !ok {
		panic(fmt.Sprintf("context: %s id %d has no registered name", r.entityTag, id))
	}
	return name
}

// GeneralContext owns the three independent name<->id bijections for
// lifelines, messages and gates declared by a signature.
type GeneralContext struct {
	lifelines *registry
	messages  *registry
	gates     *registry
}

// New returns an empty GeneralContext, ready to have lifelines, messages and
// gates declared into it in signature order.
func New() *GeneralContext {
	return &GeneralContext{
		lifelines: newRegistry("lifeline"),
		messages:  newRegistry("message"),
		gates:     newRegistry("gate"),
	}
}

// AddLifeline declares name as a lifeline, assigning it the next available
// id if it has not been seen before. Re-declaring the same name is
// idempotent and returns the id assigned the first time.
func (c *GeneralContext) AddLifeline(name string) int { return c.lifelines.add(name) }

// AddMessage declares name as a message.
func (c *GeneralContext) AddMessage(name string) int { return c.messages.add(name) }

// AddGate declares name as a gate.
func (c *GeneralContext) AddGate(name string) int { return c.gates.add(name) }

// LifelineID resolves a declared lifeline name to its id.
func (c *GeneralContext) LifelineID(name string) (int, bool) { return c.lifelines.getID(name) }

// MessageID resolves a declared message name to its id.
func (c *GeneralContext) MessageID(name string) (int, bool) { return c.messages.getID(name) }

// GateID resolves a declared gate name to its id.
func (c *GeneralContext) GateID(name string) (int, bool) { return c.gates.getID(name) }

// LifelineName resolves a lifeline id back to its declared name.
func (c *GeneralContext) LifelineName(id int) (string, bool) { return c.lifelines.getName(id) }

// MessageName resolves a message id back to its declared name.
func (c *GeneralContext) MessageName(id int) (string, bool) { return c.messages.getName(id) }

// GateName resolves a gate id back to its declared name.
func (c *GeneralContext) GateName(id int) (string, bool) { return c.gates.getName(id) }

// MustLifelineName is LifelineName without the ok result, for call sites
// (string rendering, logging) that only ever see ids that came out of this
// same context and treat an unknown id as an implementation bug.
func (c *GeneralContext) MustLifelineName(id int) string { return c.lifelines.mustGetName(id) }

// MustMessageName is MessageName without the ok result.
func (c *GeneralContext) MustMessageName(id int) string { return c.messages.mustGetName(id) }

// MustGateName is GateName without the ok result.
func (c *GeneralContext) MustGateName(id int) string { return c.gates.mustGetName(id) }

// LifelineCount returns the number of declared lifelines.
func (c *GeneralContext) LifelineCount() int { return c.lifelines.count() }

// MessageCount returns the number of declared messages.
func (c *GeneralContext) MessageCount() int { return c.messages.count() }

// GateCount returns the number of declared gates.
func (c *GeneralContext) GateCount() int { return c.gates.count() }

// AllLifelineIDs returns every declared lifeline id, in declaration order.
func (c *GeneralContext) AllLifelineIDs() []int { return idRange(c.lifelines.count()) }

func idRange(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
