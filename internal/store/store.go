package store

import (
	"sync"

	"query-cache-service/internal/store/policy"
)

// DefaultCapacity is the entry limit used when no capacity option is given.
const DefaultCapacity = 5

// Stats is a point-in-time snapshot of the cache accounting.
type Stats struct {
	Hits   uint64   `json:"hits"`
	Misses uint64   `json:"misses"`
	Size   int      `json:"size"`
	Keys   []string `json:"keys"`
}

// Store is a bounded in-memory cache for query results. One mutex guards the
// map, the counters and the policy's internal order together, so Admit,
// Update and Evict are atomic with respect to Get and Put.
type Store struct {
	mu       sync.Mutex
	capacity int
	items    map[string]string
	policy   policy.EvictionPolicy
	hits     uint64
	misses   uint64
	onEvict  func(key string)
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity sets the maximum number of entries.
func WithCapacity(n int) Option {
	return func(s *Store) {
		s.capacity = n
	}
}

// WithPolicy sets the eviction policy.
func WithPolicy(p policy.EvictionPolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// WithEvictionHook registers a callback invoked with every evicted key.
func WithEvictionHook(fn func(key string)) Option {
	return func(s *Store) {
		s.onEvict = fn
	}
}

// New creates a new Store. Without options it holds DefaultCapacity entries
// under the LIRS policy.
func New(opts ...Option) *Store {
	s := &Store{
		capacity: DefaultCapacity,
		items:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.policy == nil {
		s.policy = policy.NewLIRS()
	}
	return s
}

// Get returns the cached result for key. A present key counts as a hit and
// is reported to the policy before the value is returned; an absent key
// counts as a miss.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.items[key]
	if !found {
		s.misses++
		return "", false
	}

	s.hits++
	s.policy.Update(key)
	return value, true
}

// Put caches a result for a new key, evicting one entry first when the store
// is full. A key that is already cached keeps its original value; only its
// position is refreshed.
func (s *Store) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.items[key]; found {
		s.policy.Update(key)
		return
	}

	if len(s.items) >= s.capacity {
		s.evict()
	}
	s.items[key] = value
	s.policy.Admit(key)
}

// evict removes the victim chosen by the policy. A policy tracking no keys
// while the store still holds entries falls back to dropping an arbitrary
// entry; an empty store leaves nothing to do.
func (s *Store) evict() {
	victim, ok := s.policy.Evict()
	if !ok {
		for k := range s.items {
			victim = k
			ok = true
			break
		}
	}
	if !ok {
		return
	}
	delete(s.items, victim)
	if s.onEvict != nil {
		s.onEvict(victim)
	}
}

// Stats reports the counters and the set of cached keys. Key order is
// unspecified.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return Stats{
		Hits:   s.hits,
		Misses: s.misses,
		Size:   len(s.items),
		Keys:   keys,
	}
}

// Len returns the current number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
