package policy

import (
	"container/list"
	"sync"
)

// LIRSPolicy implements the simplified LIRS (Low Inter-reference Recency Set)
// replacement strategy. Keys are classified into a high-interference and a
// low-interference queue; every admission targets the high queue, and a hit
// moves the key to the high queue's recently-used end.
type LIRSPolicy struct {
	mu     sync.Mutex
	high   *list.List
	low    *list.List
	elems  map[string]*list.Element
	inHigh map[string]bool
}

// NewLIRS creates a new LIRS policy instance.
func NewLIRS() *LIRSPolicy {
	return &LIRSPolicy{
		high:   list.New(),
		low:    list.New(),
		elems:  make(map[string]*list.Element),
		inHigh: make(map[string]bool),
	}
}

func (p *LIRSPolicy) Admit(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elems[key] = p.high.PushBack(key)
	p.inHigh[key] = true
}

func (p *LIRSPolicy) Update(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	elem, ok := p.elems[key]
	if !ok {
		return
	}
	if p.inHigh[key] {
		p.high.MoveToBack(elem)
		return
	}
	// Promote from the low-interference queue.
	p.low.Remove(elem)
	p.elems[key] = p.high.PushBack(key)
	p.inHigh[key] = true
}

func (p *LIRSPolicy) Evict() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	elem := p.high.Front()
	queue := p.high
	if elem == nil {
		elem = p.low.Front()
		queue = p.low
	}
	if elem == nil {
		return "", false
	}
	key := elem.Value.(string)
	queue.Remove(elem)
	delete(p.elems, key)
	delete(p.inHigh, key)
	return key, true
}
