package cmap

import (
	"sync"

	"github.com/spaolacci/murmur3"
)

// DefaultShardCount is the default number of shards.
const DefaultShardCount = 16

// Map is a concurrent-safe sharded map.
type Map[K ~string, V any] struct {
	shards    []*shard[K, V]
	shardMask uint32
}

type shard[K ~string, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New creates a new sharded map with the default shard count.
func New[K ~string, V any]() *Map[K, V] {
	return NewWithShards[K, V](DefaultShardCount)
}

// NewWithShards creates a new sharded map with the specified shard count.
// shardCount must be a power of 2; any other value selects DefaultShardCount.
func NewWithShards[K ~string, V any](shardCount int) *Map[K, V] {
	if !ValidShardCount(shardCount) {
		shardCount = DefaultShardCount
	}

	m := &Map[K, V]{
		shards:    make([]*shard[K, V], shardCount),
		shardMask: uint32(shardCount - 1),
	}
	for i := 0; i < shardCount; i++ {
		m.shards[i] = &shard[K, V]{
			items: make(map[K]V),
		}
	}
	return m
}

// ValidShardCount reports whether n is a usable shard count (a power of 2).
func ValidShardCount(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ShardFor returns the shard index a key maps to.
func (m *Map[K, V]) ShardFor(key K) int {
	return int(murmur3.Sum32([]byte(key)) & m.shardMask)
}

func (m *Map[K, V]) getShard(key K) *shard[K, V] {
	return m.shards[m.ShardFor(key)]
}

// View calls fn with the value stored under key while holding the shard's
// read lock. fn must not retain or modify the value.
func (m *Map[K, V]) View(key K, fn func(value V, exists bool)) {
	shard := m.getShard(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	val, ok := shard.items[key]
	fn(val, ok)
}

// Compute atomically replaces the value under key with the result of fn.
// fn receives the current value and whether it exists. If fn returns an
// error the map is left untouched and the error is returned.
func (m *Map[K, V]) Compute(key K, fn func(value V, exists bool) (V, error)) (V, error) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	existing, exists := shard.items[key]
	next, err := fn(existing, exists)
	if err != nil {
		var zero V
		return zero, err
	}
	shard.items[key] = next
	return next, nil
}

// Count returns the total number of items.
func (m *Map[K, V]) Count() int {
	count := 0
	for _, shard := range m.shards {
		shard.mu.RLock()
		count += len(shard.items)
		shard.mu.RUnlock()
	}
	return count
}
