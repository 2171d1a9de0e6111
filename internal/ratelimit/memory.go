package ratelimit

import (
	"container/list"
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultMaxClients = 10000
	clientIdleTTL     = 10 * time.Minute
)

type client struct {
	key      string
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key in process memory. At most
// maxClients buckets are held; when full, the least recently seen key is dropped.
type MemoryLimiter struct {
	mu         sync.Mutex
	policy     Policy
	clients    map[string]*list.Element
	order      *list.List // front is most recently seen
	maxClients int
	now        func() time.Time
}

func NewMemoryLimiter(p Policy) *MemoryLimiter {
	return &MemoryLimiter{
		policy:     p,
		clients:    make(map[string]*list.Element),
		order:      list.New(),
		maxClients: DefaultMaxClients,
		now:        time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	el, ok := m.clients[key]
	if ok {
		m.order.MoveToFront(el)
	} else {
		for m.order.Len() > 0 && len(m.clients) >= m.maxClients {
			m.remove(m.order.Back())
		}
		el = m.order.PushFront(&client{
			key:     key,
			limiter: rate.NewLimiter(rate.Limit(m.policy.RPS), m.policy.Burst),
		})
		m.clients[key] = el
	}

	cl := el.Value.(*client)
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1), nil
}

// Sweep drops every bucket idle for longer than the idle TTL and reports how
// many were removed.
func (m *MemoryLimiter) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for el := m.order.Back(); el != nil; {
		if now.Sub(el.Value.(*client).lastSeen) <= clientIdleTTL {
			break
		}
		prev := el.Prev()
		m.remove(el)
		removed++
		el = prev
	}
	return removed
}

// Len reports the number of tracked keys.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

func (m *MemoryLimiter) remove(el *list.Element) {
	if el == nil {
		return
	}
	m.order.Remove(el)
	delete(m.clients, el.Value.(*client).key)
}
