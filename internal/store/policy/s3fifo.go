package policy

import (
	"container/list"
	"sync"
)

type segment int

const (
	shortTerm segment = iota
	mediumTerm
	longTerm
)

// S3FIFOPolicy tracks keys across short-, medium- and long-term queues. New
// keys enter the short-term queue, each hit promotes the key one queue
// further, and a hit in the long-term queue refreshes its position there.
// Victims are drawn from the shortest-lived non-empty queue.
type S3FIFOPolicy struct {
	mu     sync.Mutex
	queues [3]*list.List
	elems  map[string]*list.Element
	segs   map[string]segment
}

// NewS3FIFO creates a new S3-FIFO policy instance.
func NewS3FIFO() *S3FIFOPolicy {
	p := &S3FIFOPolicy{
		elems: make(map[string]*list.Element),
		segs:  make(map[string]segment),
	}
	for i := range p.queues {
		p.queues[i] = list.New()
	}
	return p
}

func (p *S3FIFOPolicy) Admit(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elems[key] = p.queues[shortTerm].PushBack(key)
	p.segs[key] = shortTerm
}

func (p *S3FIFOPolicy) Update(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	elem, ok := p.elems[key]
	if !ok {
		return
	}
	seg := p.segs[key]
	next := seg
	if seg < longTerm {
		next = seg + 1
	}
	p.queues[seg].Remove(elem)
	p.elems[key] = p.queues[next].PushBack(key)
	p.segs[key] = next
}

func (p *S3FIFOPolicy) Evict() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, q := range p.queues {
		elem := q.Front()
		if elem == nil {
			continue
		}
		key := elem.Value.(string)
		q.Remove(elem)
		delete(p.elems, key)
		delete(p.segs, key)
		return key, true
	}
	return "", false
}
