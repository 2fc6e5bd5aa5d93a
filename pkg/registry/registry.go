// Package registry routes definition records to the factory that handles
// their declaration type.
//
// Type packages register a factory constructor from init(); the registry
// learns which keywords a constructor serves by asking a fresh factory for
// its Types(). A Session then instantiates one factory per type per document.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/leapstack-labs/workspace/pkg/core"
)

// Constructor returns a new, unused factory.
type Constructor func() core.Factory

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register adds a factory constructor for every keyword its factories handle.
// Called by type packages in their init() functions.
func Register(newFactory Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	keywords := newFactory().Types()
	for _, keyword := range keywords {
		if _, exists := registry[keyword]; exists {
			panic(fmt.Sprintf("factory for type '%s' already registered", keyword))
		}
	}
	for _, keyword := range keywords {
		registry[keyword] = newFactory
	}
}

// Get retrieves the factory constructor for a keyword.
func Get(keyword string) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[keyword]
	return c, ok
}

// ListTypes returns all registered keywords (sorted).
func ListTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a keyword has a factory.
func IsRegistered(keyword string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[keyword]
	return ok
}

// unregister removes a keyword. Used for testing.
func unregister(keyword string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, keyword)
}
