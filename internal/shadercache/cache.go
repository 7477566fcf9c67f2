package shadercache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount must be a power of two.
	shardCount = 8
	shardMask  = shardCount - 1

	// DefaultCapacity is used when New is given a non-positive capacity.
	DefaultCapacity = 128
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a sharded LRU cache from string keys to V.
type Cache[V any] struct {
	shards   [shardCount]shard[V]
	perShard int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[V any] struct {
	mu      sync.Mutex
	entries map[string]*node[V]
	lru     recency[V]
}

// New returns a cache holding roughly capacity entries, rounded up to a
// multiple of the shard count.
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[V]{perShard: (capacity + shardCount - 1) / shardCount}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]*node[V])
	}
	return c
}

// Key digests the parts into a cache key. Parts are length-prefixed so
// ("ab", "c") and ("a", "bc") differ.
func Key(parts ...string) string {
	h := fnv.New128a()
	var n [8]byte
	for _, p := range parts {
		l := uint64(len(p))
		for i := range n {
			n[i] = byte(l >> (8 * i))
		}
		_, _ = h.Write(n[:])
		_, _ = h.Write([]byte(p))
	}
	return string(h.Sum(nil))
}

func (c *Cache[V]) shardFor(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &c.shards[h.Sum32()&shardMask]
}

// GetOrCreate returns the value under key, calling create to fill a miss.
// create runs with the shard locked, so concurrent callers for the same
// key wait for one result instead of each computing it.
func (c *Cache[V]) GetOrCreate(key string, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if nd, ok := s.entries[key]; ok {
		s.lru.moveToFront(nd)
		c.hits.Add(1)
		return nd.value
	}
	c.misses.Add(1)
	v := create()
	c.insert(s, key, v)
	return v
}

func (c *Cache[V]) insert(s *shard[V], key string, value V) {
	for s.lru.n >= c.perShard {
		old := s.lru.popBack()
		if old == nil {
			break
		}
		delete(s.entries, old.key)
		c.evictions.Add(1)
	}
	nd := &node[V]{key: key, value: value}
	s.lru.pushFront(nd)
	s.entries[key] = nd
}

// Len returns the number of resident entries.
func (c *Cache[V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Clear drops every entry. Counters are kept.
func (c *Cache[V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[string]*node[V])
		s.lru = recency[V]{}
		s.mu.Unlock()
	}
}

// Stats returns the current counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
