//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// one runtime per goroutine, reactive nodes are not shared across goroutines
var runtimes sync.Map // map[int64]*Runtime

func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r, _ := runtimes.LoadOrStore(gid, NewRuntime())
	return r.(*Runtime)
}

// ReleaseRuntime forgets the current goroutine's runtime. Nodes created before
// keep working with it, nodes created after get a fresh one.
func ReleaseRuntime() {
	runtimes.Delete(goid.Get())
}
