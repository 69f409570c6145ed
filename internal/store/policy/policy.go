package policy

// EvictionPolicy defines the interface for cache replacement algorithms.
// Implementations allow the store to decouple capacity management from storage logic.
type EvictionPolicy interface {
	// Admit is called exactly once when a new key is inserted into the store.
	Admit(key string)

	// Update is called when a cached key is hit. Policies use it to reorder
	// the key or promote it between their internal segments.
	Update(key string)

	// Evict removes the next victim from the policy's bookkeeping and
	// returns its key. The second return value is false when the policy
	// tracks no keys.
	Evict() (string, bool)
}
