// Package dependable provides reactive values: observables holding state,
// computeds deriving from them, and Debounce which delays a value's updates.
//
// Everything reactive is single-threaded. Each goroutine gets its own runtime,
// with an event loop that runs deferred work (like debounce timers) when the
// goroutine calls Tick or Run.
package dependable

import (
	"context"

	"github.com/AnatoleLucet/dependable/internal"
	"github.com/jonboulle/clockwork"
)

//go:generate mockgen -source=dependable.go -destination=mock_subscribable_test.go -package=dependable Subscribable

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Kind int

const (
	KindObservable Kind = iota
	KindComputed
)

func (k Kind) String() string {
	switch k {
	case KindObservable:
		return "observable"
	case KindComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// Listener is a subscription callback, compared by pointer.
type Listener = internal.Listener

// NewListener wraps fn so it can be subscribed and later unsubscribed.
func NewListener(fn func()) *Listener {
	return internal.NewListener(fn)
}

// Dependent is a computed registered under a value it reads.
type Dependent = internal.Computed

// Subscribable is a reactive value that can be read and observed.
type Subscribable[T any] interface {
	// Read the current value, tracking the dependency if within a computed.
	Read() T

	// Subscribe calls the listener whenever the value changes.
	// Subscribing the same listener twice has no effect.
	Subscribe(l *Listener)

	// Unsubscribe stops notifying the listener. Unknown listeners are ignored.
	Unsubscribe(l *Listener)

	// RegisterDependent links a computed that must be recomputed when the value changes.
	RegisterDependent(d *Dependent)

	// UnregisterDependent removes a computed registered with RegisterDependent.
	UnregisterDependent(d *Dependent)

	Kind() Kind
}

// Option configures observables and computeds.
type Option[T any] func(*options[T])

type options[T any] struct {
	equal func(a, b T) bool
}

// WithEqual sets how a new value is compared with the previous one.
// Equal values don't notify. The default compares with ==.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.equal = equal
	}
}

func equalFunc[T any](opts []Option[T]) internal.EqualFunc {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	if o.equal == nil {
		return nil
	}

	return func(a, b any) bool {
		return o.equal(as[T](a), as[T](b))
	}
}

// Batch runs fn and propagates all the writes it made at once, when the outermost batch returns.
func Batch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// Loop is the event loop running deferred work of a runtime.
type Loop = internal.Loop

// Timer is a task queued on a Loop. Stopping it before it runs cancels it.
type Timer = internal.Timer

// CurrentLoop returns the event loop of the current goroutine's runtime.
// Its Post method can be used from other goroutines to hand work back.
func CurrentLoop() *Loop {
	return internal.GetRuntime().Loop()
}

// Post queues fn for the next turn of the current event loop.
func Post(fn func()) *Timer {
	return CurrentLoop().Post(fn)
}

// Tick runs the tasks of the current event loop that are due when it is
// called and returns how many ran.
func Tick() int {
	return CurrentLoop().Tick()
}

// Run drives the current event loop until ctx is done.
func Run(ctx context.Context) error {
	return CurrentLoop().Run(ctx)
}

// UseClock replaces the clock of the current event loop, mostly for tests
// with a fake clock.
func UseClock(clock clockwork.Clock) {
	CurrentLoop().SetClock(clock)
}

// ReleaseRuntime drops the current goroutine's runtime.
func ReleaseRuntime() {
	internal.ReleaseRuntime()
}
