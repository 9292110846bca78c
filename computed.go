package dependable

import "github.com/AnatoleLucet/dependable/internal"

// Computed is a value derived from other reactive values.
//
// A computed only links itself to what it reads while it is observed (it has
// subscribers or dependents). Unobserved, every Read evaluates fn again.
type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a computed from fn. Every reactive value read by fn becomes a dependency.
func NewComputed[T any](fn func() T, opts ...Option[T]) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return fn()
		}, equalFunc(opts)),
	}
}

func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

func (c *Computed[T]) Subscribe(l *Listener)   { c.computed.Subscribe(l) }
func (c *Computed[T]) Unsubscribe(l *Listener) { c.computed.Unsubscribe(l) }

func (c *Computed[T]) RegisterDependent(d *Dependent)   { c.computed.RegisterDependent(d) }
func (c *Computed[T]) UnregisterDependent(d *Dependent) { c.computed.UnregisterDependent(d) }

func (c *Computed[T]) Kind() Kind { return KindComputed }

// IsActive reports whether the computed is observed and linked to its dependencies.
func (c *Computed[T]) IsActive() bool { return c.computed.IsActive() }

func (c *Computed[T]) SubscriberCount() int { return c.computed.SubscriberCount() }
func (c *Computed[T]) DependentCount() int  { return c.computed.DependentCount() }
