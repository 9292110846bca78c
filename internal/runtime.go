package internal

import (
	"slices"

	"github.com/jonboulle/clockwork"
)

type Runtime struct {
	heap    *PriorityHeap
	tracker *Tracker
	batcher *Batcher
	loop    *Loop

	// incremented on every node write
	// used for staleness detection
	clock int

	// nodes written since the last propagation
	pending  []*Node
	flushing bool
}

func NewRuntime() *Runtime {
	r := &Runtime{
		heap:    NewHeap(),
		tracker: NewTracker(),
		loop:    NewLoop(clockwork.NewRealClock()),
	}
	r.batcher = NewBatcher(r.Flush)

	return r
}

func (r *Runtime) Loop() *Loop {
	return r.loop
}

func (r *Runtime) Time() int {
	return r.clock
}

func (r *Runtime) Track(dep Dependency) {
	r.tracker.Track(dep)
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

func (r *Runtime) markChanged(n *Node) {
	r.clock++
	r.pending = append(r.pending, n)

	if r.batcher.IsBatching() || r.flushing {
		return
	}

	r.Flush()
}

// Flush propagates every pending write: dirty computeds are recomputed in
// height order, then subscribers of each changed node are notified.
// Writes made while notifying are propagated in a following round.
func (r *Runtime) Flush() {
	if r.flushing {
		return
	}
	r.flushing = true

	defer func() {
		r.flushing = false

		if p := recover(); p != nil {
			r.pending = nil
			r.heap.Clear()
			panic(p)
		}
	}()

	for len(r.pending) > 0 {
		changed := r.pending
		r.pending = nil

		for _, n := range changed {
			r.heap.InsertAll(slices.Values(n.Dependents()))
		}

		r.heap.Drain(func(c *Computed) {
			if c.recompute() {
				changed = append(changed, c.Node)
				r.heap.InsertAll(slices.Values(c.Dependents()))
			}
		})

		notified := make([]*Node, 0, len(changed))
		for _, n := range changed {
			if slices.Contains(notified, n) {
				continue
			}
			notified = append(notified, n)

			n.notify()
		}
	}
}
