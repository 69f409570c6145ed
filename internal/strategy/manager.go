package strategy

import (
	"log/slog"
	"strings"
	"sync"

	"query-cache-service/internal/observability"
	"query-cache-service/internal/store"
	"query-cache-service/internal/store/policy"
)

// Name identifies a caching strategy.
type Name string

const (
	LIRS    Name = "lirs"
	TinyFLU Name = "tinyflu"
	S3FIFO  Name = "s3fifo"
)

// Default is the strategy installed at startup and selected on invalid input.
const Default = LIRS

// Parse normalizes a raw strategy name. The comparison ignores surrounding
// whitespace and letter case, and "s3-fifo" is accepted as an alias for
// "s3fifo". Unrecognized input yields the default strategy and ok=false.
func Parse(raw string) (Name, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lirs":
		return LIRS, true
	case "tinyflu":
		return TinyFLU, true
	case "s3fifo", "s3-fifo":
		return S3FIFO, true
	default:
		return Default, false
	}
}

func newPolicy(name Name) policy.EvictionPolicy {
	switch name {
	case TinyFLU:
		return policy.NewTinyFLU()
	case S3FIFO:
		return policy.NewS3FIFO()
	default:
		return policy.NewLIRS()
	}
}

// Manager owns the active (store, policy) pair and swaps it on demand. All
// cache access goes through the manager, so swaps serialize against in-flight
// Get and Put calls. No entries or counters survive a swap.
type Manager struct {
	mu       sync.Mutex
	capacity int
	logger   *slog.Logger
	active   Name
	store    *store.Store
}

// NewManager creates a Manager holding a fresh store under the default
// strategy.
func NewManager(capacity int, logger *slog.Logger) *Manager {
	m := &Manager{
		capacity: capacity,
		logger:   logger,
	}
	m.install(Default)
	return m
}

// install replaces the active (store, policy) pair. Callers hold m.mu except
// during construction.
func (m *Manager) install(name Name) {
	m.active = name
	m.store = store.New(
		store.WithCapacity(m.capacity),
		store.WithPolicy(newPolicy(name)),
		store.WithEvictionHook(func(key string) {
			observability.CacheEvictionsTotal.Inc()
			m.logger.Info("evicted", "strategy", string(name), "key", key)
		}),
	)
}

// Set selects the strategy for raw, discarding the current store and policy
// state. It returns the name actually installed, which is the default when
// raw is not recognized.
func (m *Manager) Set(raw string) Name {
	name, ok := Parse(raw)
	if !ok {
		m.logger.Warn("invalid caching strategy selected, falling back",
			"input", raw, "default", string(Default))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.install(name)
	m.logger.Info("caching strategy set", "strategy", string(name))
	return name
}

// Active returns the name of the installed strategy.
func (m *Manager) Active() Name {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Get looks up a cached result in the active store.
func (m *Manager) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Get(key)
}

// Put caches a computed result in the active store.
func (m *Manager) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Put(key, value)
}

// Stats reports the active store's counters and cached keys.
func (m *Manager) Stats() store.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Stats()
}
