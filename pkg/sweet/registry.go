package sweet

import "sync"

// Process-wide model registry. Registration is the "installation" step that
// makes a configured model visible to tooling (schema dumps, deploys).
var (
	registryMu sync.Mutex
	registry   []Target
)

// Register records a configured target in the model registry. Registering
// the same target twice is a no-op.
func Register(t Target) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, r := range registry {
		if r == t {
			return
		}
	}
	registry = append(registry, t)
}

// Models returns the registered targets in registration order.
func Models() []Target {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Target, len(registry))
	copy(out, registry)
	return out
}
