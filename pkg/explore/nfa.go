// Package explore builds an NFA-under-construction from an interaction's
// reachable executions.
package explore

import "github.com/gitrdm/hibouengine/pkg/interaction"

// Transition is one NFA edge: from a state, on a letter (a dense index into
// the automaton's alphabet of action sets), to a state.
type Transition struct {
	From   int
	Letter int
	To     int
}

// NFA is the automaton built up during exploration: states are dense
// integers, the alphabet is the set of distinct TraceAction sets
// encountered, and Final marks accepting states.
type NFA struct {
	Alphabet    []interaction.TraceActionSet
	letterIndex map[string]int
	Transitions []Transition
	Final       map[int]bool
	StateCount  int
}

// NewNFA builds an empty automaton.
func NewNFA() *NFA {
	return &NFA{letterIndex: make(map[string]int), Final: make(map[int]bool)}
}

// NewState allocates and returns a fresh state index.
func (n *NFA) NewState() int {
	s := n.StateCount
	n.StateCount++
	return s
}

// LetterFor returns the dense letter index for actions, inserting a new
// alphabet entry if this action set has not been seen before.
func (n *NFA) LetterFor(actions []interaction.TraceAction) int {
	set := interaction.TraceActionSet(interaction.SortTraceActions(actions))
	key := set.Key()
	if idx, ok := n.letterIndex[key]; ok {
		return idx
	}
	idx := len(n.Alphabet)
	n.Alphabet = append(n.Alphabet, set)
	n.letterIndex[key] = idx
	return idx
}

// AddTransition records an edge and marks to final iff markFinal is true.
func (n *NFA) AddTransition(from, letter, to int, markFinal bool) {
	n.Transitions = append(n.Transitions, Transition{From: from, Letter: letter, To: to})
	if markFinal {
		n.Final[to] = true
	}
}
