package internal

// Batcher defers propagation while batches run, and flushes once when the
// outermost batch returns.
type Batcher struct {
	depth int
	flush func()
}

func NewBatcher(flush func()) *Batcher {
	return &Batcher{flush: flush}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

// Run calls fn as a batch. When fn panics nothing is flushed: its writes stay
// pending until the next propagation.
func (b *Batcher) Run(fn func()) {
	b.depth++

	completed := false
	defer func() {
		b.depth--
		if b.depth == 0 && completed {
			b.flush()
		}
	}()

	fn()
	completed = true
}

// NewBatch runs fn and propagates its writes once, when the outermost batch returns.
func (r *Runtime) NewBatch(fn func()) {
	r.batcher.Run(fn)
}
