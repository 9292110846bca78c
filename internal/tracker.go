package internal

import "slices"

type Tracker struct {
	tracking bool

	// dependencies read by the computation currently being evaluated
	frame *trackFrame
}

type trackFrame struct {
	deps []Dependency
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

// Collect runs fn and returns every dependency it read, in read order.
func (t *Tracker) Collect(fn func()) []Dependency {
	prevFrame := t.frame
	prevTracking := t.tracking

	frame := &trackFrame{}
	t.frame = frame
	t.tracking = true

	defer func() {
		t.frame = prevFrame
		t.tracking = prevTracking
	}()

	fn()

	return frame.deps
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

func (t *Tracker) Track(dep Dependency) {
	if !t.ShouldTrack() {
		return
	}

	if !slices.Contains(t.frame.deps, dep) {
		t.frame.deps = append(t.frame.deps, dep)
	}
}

func (t *Tracker) ShouldTrack() bool {
	return t.frame != nil && t.tracking
}
