package dependable

import "github.com/AnatoleLucet/dependable/internal"

// Observable is a writable reactive value.
type Observable[T any] struct {
	node *internal.Node
}

// NewObservable creates an observable holding initial.
func NewObservable[T any](initial T, opts ...Option[T]) *Observable[T] {
	return &Observable[T]{
		internal.GetRuntime().NewNode(initial, equalFunc(opts)),
	}
}

func (o *Observable[T]) Read() T {
	return as[T](o.node.Read())
}

// Write a new value, recomputing dependents and notifying subscribers if it changed.
func (o *Observable[T]) Write(v T) {
	o.node.Write(v)
}

// Update writes the result of fn applied to the current value.
func (o *Observable[T]) Update(fn func(T) T) {
	o.Write(fn(as[T](o.node.Value())))
}

func (o *Observable[T]) Subscribe(l *Listener)   { o.node.Subscribe(l) }
func (o *Observable[T]) Unsubscribe(l *Listener) { o.node.Unsubscribe(l) }

func (o *Observable[T]) RegisterDependent(d *Dependent)   { o.node.RegisterDependent(d) }
func (o *Observable[T]) UnregisterDependent(d *Dependent) { o.node.UnregisterDependent(d) }

func (o *Observable[T]) Kind() Kind { return KindObservable }

func (o *Observable[T]) SubscriberCount() int { return o.node.SubscriberCount() }
func (o *Observable[T]) DependentCount() int  { return o.node.DependentCount() }
