package internal

import (
	"reflect"
	"slices"
)

// Dependency is anything a computation can read and depend on.
type Dependency interface {
	// Height is the node's depth in the dependency graph, 0 for plain values.
	Height() int

	RegisterDependent(c *Computed)
	UnregisterDependent(c *Computed)
}

type EqualFunc func(a, b any) bool

// Listener is a change callback. Its pointer is its identity.
type Listener struct {
	fn func()
}

func NewListener(fn func()) *Listener {
	return &Listener{fn: fn}
}

func (l *Listener) Notify() {
	if l.fn != nil {
		l.fn()
	}
}

// Node is a readable and writable reactive value cell.
type Node struct {
	rt *Runtime

	value any
	equal EqualFunc

	// notified after every propagation that changed the value
	subscribers []*Listener

	// recomputed in height order when the value changes
	dependents []*Computed
}

func (r *Runtime) NewNode(initial any, equal EqualFunc) *Node {
	if equal == nil {
		equal = isEqual
	}

	return &Node{
		rt:    r,
		value: initial,
		equal: equal,
	}
}

// Read the value, tracking the node if within a computation.
func (n *Node) Read() any {
	n.rt.tracker.Track(n)

	return n.value
}

// Value returns the value without tracking.
func (n *Node) Value() any {
	return n.value
}

func (n *Node) Write(v any) {
	if n.equal(n.value, v) {
		return
	}

	n.value = v
	n.rt.markChanged(n)
}

func (n *Node) Height() int {
	return 0
}

func (n *Node) Subscribe(l *Listener) {
	if !slices.Contains(n.subscribers, l) {
		n.subscribers = append(n.subscribers, l)
	}
}

func (n *Node) Unsubscribe(l *Listener) {
	if i := slices.Index(n.subscribers, l); i != -1 {
		n.subscribers = slices.Delete(n.subscribers, i, i+1)
	}
}

func (n *Node) HasSubscriber(l *Listener) bool {
	return slices.Contains(n.subscribers, l)
}

func (n *Node) SubscriberCount() int {
	return len(n.subscribers)
}

func (n *Node) RegisterDependent(c *Computed) {
	if !slices.Contains(n.dependents, c) {
		n.dependents = append(n.dependents, c)
	}
}

func (n *Node) UnregisterDependent(c *Computed) {
	if i := slices.Index(n.dependents, c); i != -1 {
		n.dependents = slices.Delete(n.dependents, i, i+1)
	}
}

func (n *Node) HasDependent(c *Computed) bool {
	return slices.Contains(n.dependents, c)
}

func (n *Node) DependentCount() int {
	return len(n.dependents)
}

// Dependents returns a snapshot of the registered dependents.
func (n *Node) Dependents() []*Computed {
	return slices.Clone(n.dependents)
}

// notify calls every subscriber, skipping the ones removed by an earlier callback.
func (n *Node) notify() {
	// clonning to avoid mutation during iteration
	for _, l := range slices.Clone(n.subscribers) {
		if n.HasSubscriber(l) {
			l.Notify()
		}
	}
}

func isEqual(a, b any) bool {
	// comparing two uncomparable values of the same type panics
	if t := reflect.TypeOf(a); t != nil && t == reflect.TypeOf(b) && !t.Comparable() {
		return false
	}

	return a == b
}
