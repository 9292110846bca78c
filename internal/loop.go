package internal

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Loop is a single-threaded task queue. Tasks are posted from anywhere but
// only run on the goroutine calling Tick or Run, one after another.
type Loop struct {
	mu sync.Mutex

	clock clockwork.Clock

	// sorted by deadline, then by insertion
	tasks []*Timer
	seq   uint64

	// signaled when a task is queued, to wake up Run
	wake chan struct{}
}

// Timer is a task queued on a Loop.
type Timer struct {
	loop *Loop
	fn   func()

	deadline time.Time
	seq      uint64
}

func NewLoop(clock clockwork.Clock) *Loop {
	return &Loop{
		clock: clock,
		wake:  make(chan struct{}, 1),
	}
}

func (l *Loop) Clock() clockwork.Clock {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.clock
}

// SetClock replaces the clock used for deadlines. Queued tasks keep theirs.
func (l *Loop) SetClock(clock clockwork.Clock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clock = clock
}

// Post queues fn for the next turn of the loop.
func (l *Loop) Post(fn func()) *Timer {
	return l.AfterFunc(0, fn)
}

// AfterFunc queues fn to run once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	t := &Timer{
		loop:     l,
		fn:       fn,
		deadline: l.clock.Now().Add(max(d, 0)),
		seq:      l.seq,
	}

	i, _ := slices.BinarySearchFunc(l.tasks, t, compareTimers)
	l.tasks = slices.Insert(l.tasks, i, t)

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return t
}

// Stop removes the task from the queue. It reports false if the task
// already ran or was already stopped.
func (t *Timer) Stop() bool {
	l := t.loop

	l.mu.Lock()
	defer l.mu.Unlock()

	i, found := slices.BinarySearchFunc(l.tasks, t, compareTimers)
	if !found {
		return false
	}

	l.tasks = slices.Delete(l.tasks, i, i+1)
	return true
}

func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.tasks)
}

// Tick runs the tasks that are due when it is called and returns how many
// ran. Tasks queued while ticking wait for the next turn. A panicking task
// propagates to the caller.
func (l *Loop) Tick() int {
	l.mu.Lock()
	now, last := l.clock.Now(), l.seq
	l.mu.Unlock()

	ran := 0

	for {
		t := l.pop(now, last)
		if t == nil {
			return ran
		}

		ran++
		t.fn()
	}
}

// Run ticks the loop until ctx is done, sleeping until the next deadline or
// until a task is posted.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.Tick()

		var timer clockwork.Timer
		var timeout <-chan time.Time
		if wait, ok := l.untilNext(); ok {
			if wait <= 0 {
				continue
			}

			timer = l.Clock().NewTimer(wait)
			timeout = timer.Chan()
		}

		select {
		case <-ctx.Done():
		case <-l.wake:
		case <-timeout:
		}

		if timer != nil {
			timer.Stop()
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// pop removes the first task due at now and queued up to last.
func (l *Loop) pop(now time.Time, last uint64) *Timer {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.tasks, func(t *Timer) bool { return t.seq <= last })
	if i < 0 || l.tasks[i].deadline.After(now) {
		return nil
	}

	t := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)

	return t
}

func (l *Loop) untilNext() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.tasks) == 0 {
		return 0, false
	}

	return l.tasks[0].deadline.Sub(l.clock.Now()), true
}

func compareTimers(a, b *Timer) int {
	if c := a.deadline.Compare(b.deadline); c != 0 {
		return c
	}

	return cmp.Compare(a.seq, b.seq)
}
