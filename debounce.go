package dependable

import (
	"time"

	"github.com/AnatoleLucet/dependable/internal"
)

type debounced[T any] struct {
	rt     *internal.Runtime
	source Subscribable[T]
	delay  time.Duration

	// the last published value
	cell *internal.Node

	// subscribed to source while active
	handler *Listener

	// the pending publish, nil if none
	timer *internal.Timer

	// number of distinct observers: listeners (registered or awaiting
	// registration) and dependents
	refs int

	// listeners whose registration on cell is posted to the next loop turn
	pending map[*Listener]*internal.Timer
}

// Debounce creates a computed mirroring source, whose updates are delayed
// until source hasn't changed for the given delay.
//
// The debounced value only follows source while it is observed. When its
// first observer arrives it catches up with source immediately, without
// waiting for the delay. When its last observer leaves, the pending update
// is dropped.
func Debounce[T any](source Subscribable[T], delay time.Duration) Subscribable[T] {
	rt := internal.GetRuntime()

	d := &debounced[T]{
		rt:      rt,
		source:  source,
		delay:   max(delay, 0),
		pending: make(map[*Listener]*internal.Timer),
	}
	d.cell = rt.NewNode(d.read(), nil)
	d.handler = NewListener(d.update)

	return d
}

func (d *debounced[T]) Read() T {
	d.rt.Track(d)

	return as[T](d.cell.Value())
}

func (d *debounced[T]) Kind() Kind { return KindComputed }

func (d *debounced[T]) Height() int { return 0 }

// Subscribe notifies l of publishes made after the current loop turn, so the
// catch up made when activating is not seen as an update.
func (d *debounced[T]) Subscribe(l *Listener) {
	if _, ok := d.pending[l]; ok || d.cell.HasSubscriber(l) {
		return
	}

	d.acquire()

	d.pending[l] = d.rt.Loop().Post(func() {
		delete(d.pending, l)
		d.cell.Subscribe(l)
	})
}

func (d *debounced[T]) Unsubscribe(l *Listener) {
	if task, ok := d.pending[l]; ok {
		task.Stop()
		delete(d.pending, l)
	} else if d.cell.HasSubscriber(l) {
		d.cell.Unsubscribe(l)
	} else {
		return
	}

	d.release()
}

func (d *debounced[T]) RegisterDependent(dep *Dependent) {
	if d.cell.HasDependent(dep) {
		return
	}

	d.acquire()
	d.cell.RegisterDependent(dep)
}

func (d *debounced[T]) UnregisterDependent(dep *Dependent) {
	if !d.cell.HasDependent(dep) {
		return
	}

	d.cell.UnregisterDependent(dep)
	d.release()
}

func (d *debounced[T]) acquire() {
	// activate first so a panicking read leaves the count untouched
	if d.refs == 0 {
		d.activate()
	}
	d.refs++
}

func (d *debounced[T]) release() {
	d.refs--
	if d.refs == 0 {
		d.deactivate()
	}
}

// activate catches up with source before subscribing to it.
func (d *debounced[T]) activate() {
	d.cell.Write(d.read())

	// subscribing may activate a lazy source that catches up in turn, leaving
	// the value just read stale
	stamp := d.rt.Time()
	d.source.Subscribe(d.handler)
	if d.rt.Time() != stamp {
		d.cell.Write(d.read())
	}

	internal.Logger().Debug("debounce activated", "kind", d.source.Kind(), "delay", d.delay)
}

func (d *debounced[T]) deactivate() {
	d.cancel()
	d.source.Unsubscribe(d.handler)

	internal.Logger().Debug("debounce deactivated", "kind", d.source.Kind())
}

// update rearms the timer on every source change.
func (d *debounced[T]) update() {
	d.cancel()
	d.timer = d.rt.Loop().AfterFunc(d.delay, d.publish)
}

func (d *debounced[T]) publish() {
	d.timer = nil
	d.cell.Write(d.read())

	internal.Logger().Debug("debounce published")
}

func (d *debounced[T]) cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *debounced[T]) read() T {
	var value T
	d.rt.Untrack(func() { value = d.source.Read() })
	return value
}
