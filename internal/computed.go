package internal

import "slices"

// Computed is a derived value. It only holds links to its dependencies while
// something observes it; otherwise every read evaluates it afresh.
type Computed struct {
	*Node

	compute func() any

	// the current height of the node in the dependency graph
	height int

	active bool
	deps   []Dependency
}

func (r *Runtime) NewComputed(compute func() any, equal EqualFunc) *Computed {
	return &Computed{
		Node:    r.NewNode(nil, equal),
		compute: compute,
	}
}

func (c *Computed) Height() int {
	return c.height
}

func (c *Computed) IsActive() bool {
	return c.active
}

// Deps returns the dependencies linked during the last evaluation of an active computed.
func (c *Computed) Deps() []Dependency {
	return slices.Clone(c.deps)
}

func (c *Computed) Read() any {
	c.rt.tracker.Track(c)

	if c.active {
		return c.value
	}

	value, _ := c.evaluate()
	return value
}

func (c *Computed) Value() any {
	if c.active {
		return c.value
	}

	var value any
	c.rt.Untrack(func() { value = c.Read() })
	return value
}

func (c *Computed) Subscribe(l *Listener) {
	if c.HasSubscriber(l) {
		return
	}

	if !c.active {
		c.activate()
	}
	c.Node.Subscribe(l)
}

func (c *Computed) Unsubscribe(l *Listener) {
	c.Node.Unsubscribe(l)
	c.updateActivation()
}

func (c *Computed) RegisterDependent(dep *Computed) {
	if c.HasDependent(dep) {
		return
	}

	if !c.active {
		c.activate()
	}
	c.Node.RegisterDependent(dep)
}

func (c *Computed) UnregisterDependent(dep *Computed) {
	c.Node.UnregisterDependent(dep)
	c.updateActivation()
}

func (c *Computed) updateActivation() {
	if c.active && c.SubscriberCount() == 0 && c.DependentCount() == 0 {
		c.deactivate()
	}
}

func (c *Computed) evaluate() (any, []Dependency) {
	var value any
	deps := c.rt.tracker.Collect(func() {
		value = c.compute()
	})

	return value, deps
}

func (c *Computed) activate() {
	// linking may activate a dependency that publishes a fresher value than
	// the one just read, in which case the evaluation is stale
	for {
		stamp := c.rt.Time()

		value, deps := c.evaluate()
		c.value = value
		c.link(deps)

		if c.rt.Time() == stamp {
			break
		}
	}

	c.active = true
}

func (c *Computed) deactivate() {
	c.active = false
	c.rt.heap.Remove(c)

	deps := c.deps
	c.deps = nil
	for _, dep := range deps {
		dep.UnregisterDependent(c)
	}
}

// recompute evaluates an active computed again and reports whether its value changed.
func (c *Computed) recompute() bool {
	if !c.active {
		return false
	}

	old := c.value

	value, deps := c.evaluate()
	c.value = value
	c.link(deps)

	return !c.equal(old, value)
}

// link registers on new dependencies and unregisters from dropped ones.
func (c *Computed) link(deps []Dependency) {
	for _, dep := range c.deps {
		if !slices.Contains(deps, dep) {
			dep.UnregisterDependent(c)
		}
	}

	prev := c.deps
	c.deps = deps

	for _, dep := range deps {
		if !slices.Contains(prev, dep) {
			dep.RegisterDependent(c)
		}
	}

	c.height = 0
	for _, dep := range deps {
		if h := dep.Height(); h >= c.height {
			c.height = h + 1
		}
	}
}
