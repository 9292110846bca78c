package dependable

import (
	"testing"
	"time"

	"github.com/AnatoleLucet/dependable/internal/logtest"
	"github.com/jonboulle/clockwork"
)

type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

// useFakeClock gives the test a fresh runtime driven by a fake clock.
func useFakeClock(t *testing.T) fakeClock {
	t.Helper()

	ReleaseRuntime()
	t.Cleanup(ReleaseRuntime)

	logtest.Use(t)

	clock := clockwork.NewFakeClock()
	UseClock(clock)

	return clock
}

// advance moves the clock forward and runs what became due.
func advance(clock fakeClock, d time.Duration) {
	clock.Advance(d)
	Tick()
}
