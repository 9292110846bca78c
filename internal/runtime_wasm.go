//go:build wasm

package internal

import "sync"

// wasm runs everything on a single thread, one runtime is enough
var (
	mu            sync.Mutex
	globalRuntime *Runtime
)

func GetRuntime() *Runtime {
	mu.Lock()
	defer mu.Unlock()

	if globalRuntime == nil {
		globalRuntime = NewRuntime()
	}

	return globalRuntime
}

func ReleaseRuntime() {
	mu.Lock()
	defer mu.Unlock()

	globalRuntime = nil
}
