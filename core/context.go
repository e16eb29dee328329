package core

import "sync"

// ContextMap is a concurrency-safe string map that enriches log
// entries with ambient key-value pairs, the moral equivalent of a
// mapped diagnostic context. The logging facade snapshots it once per
// entry, so renderers never observe a map that is still being written
// to.
type ContextMap struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewContextMap creates an empty ContextMap
func NewContextMap() *ContextMap {
	return &ContextMap{values: make(map[string]string)}
}

// Set stores value under key, replacing any previous value
func (m *ContextMap) Set(key, value string) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}

// Get returns the value stored under key
func (m *ContextMap) Get(key string) (string, bool) {
	m.mu.RLock()
	v, ok := m.values[key]
	m.mu.RUnlock()
	return v, ok
}

// Delete removes key from the map
func (m *ContextMap) Delete(key string) {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
}

// Clear removes all keys
func (m *ContextMap) Clear() {
	m.mu.Lock()
	m.values = make(map[string]string)
	m.mu.Unlock()
}

// Snapshot returns a copy of the current contents, or nil when the map
// is empty. The copy stays valid across later writes to the map.
func (m *ContextMap) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.values) == 0 {
		return nil
	}
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
