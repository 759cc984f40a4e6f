// Package cmap provides a sharded concurrent map keyed by strings.
//
// Keys are spread across a power-of-two number of shards by their murmur3
// hash. Each shard is guarded by its own RWMutex, so operations on keys in
// different shards never contend. A map with one shard behaves like a single
// map behind one lock.
//
// Usage:
//
//	m := cmap.NewWithShards[string, int](32)
//	n, err := m.Compute("key", func(old int, ok bool) (int, error) {
//		return old + 1, nil
//	})
//
// Thread Safety:
//
// Read operations (View, Count, Stats) hold a shard's read lock and may run
// in parallel. Compute holds the shard's write lock for the whole callback,
// so a read-modify-write inside it is atomic with respect to every other
// operation on that key.
package cmap
