package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Schema)
	registryMu sync.RWMutex
)

// Register adds a schema to the registry.
// Panics if the key is already registered or the schema is malformed.
func Register(s Schema) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[s.Info.Key]; exists {
		panic(fmt.Sprintf("schema already registered: %s", s.Info.Key))
	}

	if err := ValidateSchema(s); err != nil {
		panic(fmt.Sprintf("invalid schema %s: %v", s.Info.Key, err))
	}

	registry[s.Info.Key] = s
}

// Get returns a schema by key.
// Returns false if not found.
func Get(key string) (Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[key]
	return s, ok
}

// Lookup returns a schema by key, or an error naming the available keys.
func Lookup(key string) (Schema, error) {
	if s, ok := Get(key); ok {
		return s, nil
	}
	return Schema{}, fmt.Errorf("unknown schema %q (available: %v)", key, Keys())
}

// All returns all registered schemas sorted by key.
func All() []Schema {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Schema, 0, len(registry))
	for _, s := range registry {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// Keys returns the registered schema keys, sorted.
func Keys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
