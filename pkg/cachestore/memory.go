package cachestore

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore implements Store with in-process maps. It honors TTLs lazily on
// read, which is enough for tests and single-process tools; production
// deployments should use RedisStore so that horizontally scaled instances
// share one view of session state.
type MemoryStore struct {
	mu        sync.RWMutex
	values    map[string]string
	sets      map[string]map[string]struct{}
	hashes    map[string]map[string]string
	deadlines map[string]time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:    make(map[string]string),
		sets:      make(map[string]map[string]struct{}),
		hashes:    make(map[string]map[string]string),
		deadlines: make(map[string]time.Time),
	}
}

// expired reports whether key has a lapsed deadline. Caller must hold mu.
func (m *MemoryStore) expired(key string) bool {
	deadline, ok := m.deadlines[key]
	return ok && time.Now().After(deadline)
}

// purge drops key from every namespace. Caller must hold mu for writing.
func (m *MemoryStore) purge(key string) {
	delete(m.values, key)
	delete(m.sets, key)
	delete(m.hashes, key)
	delete(m.deadlines, key)
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
		return "", false, nil
	}
	val, ok := m.values[key]
	return val, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	if ttl > 0 {
		m.deadlines[key] = time.Now().Add(ttl)
	} else {
		delete(m.deadlines, key)
	}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		m.purge(key)
	}
	return nil
}

func (m *MemoryStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
		return nil
	}

	_, hasValue := m.values[key]
	_, hasSet := m.sets[key]
	_, hasHash := m.hashes[key]
	if hasValue || hasSet || hasHash {
		m.deadlines[key] = time.Now().Add(ttl)
	}
	return nil
}

func (m *MemoryStore) SetAdd(ctx context.Context, key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
	}
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]struct{})
		m.sets[key] = set
	}
	set[member] = struct{}{}
	return nil
}

func (m *MemoryStore) SetRemove(ctx context.Context, key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
		return nil
	}
	if set, ok := m.sets[key]; ok {
		delete(set, member)
		if len(set) == 0 {
			delete(m.sets, key)
		}
	}
	return nil
}

func (m *MemoryStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
		return nil, nil
	}
	set, ok := m.sets[key]
	if !ok {
		return nil, nil
	}
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	return members, nil
}

func (m *MemoryStore) HashSet(ctx context.Context, key, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
	}
	hash, ok := m.hashes[key]
	if !ok {
		hash = make(map[string]string)
		m.hashes[key] = hash
	}
	hash[field] = value
	return nil
}

func (m *MemoryStore) HashGet(ctx context.Context, key, field string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
		return "", false, nil
	}
	hash, ok := m.hashes[key]
	if !ok {
		return "", false, nil
	}
	val, ok := hash[field]
	return val, ok, nil
}

func (m *MemoryStore) HashDelete(ctx context.Context, key, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		m.purge(key)
		return nil
	}
	if hash, ok := m.hashes[key]; ok {
		delete(hash, field)
		if len(hash) == 0 {
			delete(m.hashes, key)
		}
	}
	return nil
}

// Snapshot returns a copy of the plain key-value namespace. Intended for tests
// that need to assert on store contents without reaching into internals.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.values)
}
