package policy

import (
	"container/list"
	"sync"
)

// TinyFLUPolicy keeps a single recency-ordered queue: a hit moves the key to
// the tail and eviction takes the head. Despite the name, no frequency
// accounting takes place.
type TinyFLUPolicy struct {
	mu    sync.Mutex
	queue *list.List
	elems map[string]*list.Element
}

// NewTinyFLU creates a new TinyFLU policy instance.
func NewTinyFLU() *TinyFLUPolicy {
	return &TinyFLUPolicy{
		queue: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (p *TinyFLUPolicy) Admit(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elems[key] = p.queue.PushBack(key)
}

func (p *TinyFLUPolicy) Update(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if elem, ok := p.elems[key]; ok {
		p.queue.MoveToBack(elem)
	}
}

func (p *TinyFLUPolicy) Evict() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	elem := p.queue.Front() // The oldest element
	if elem == nil {
		return "", false
	}
	key := elem.Value.(string)
	p.queue.Remove(elem)
	delete(p.elems, key)
	return key, true
}
