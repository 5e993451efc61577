package module

import (
	"sort"
	"sync"
)

// simple global registry for cross wiring ports during bootstrap in main
// safe for tests and single process composition
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set for a module name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// Names lists the registered module names in sorted order
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	mu.RUnlock()
	sort.Strings(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
