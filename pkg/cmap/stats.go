package cmap

// ShardCount returns the number of shards.
func (m *Map[K, V]) ShardCount() int {
	return len(m.shards)
}

// ShardStats reports the number of keys held by one shard.
type ShardStats struct {
	Index int
	Count int
}

// Stats returns the key count of every shard, in shard order. Each shard is
// read under its own lock, so the totals are not a single point-in-time view
// while writers are active.
func (m *Map[K, V]) Stats() []ShardStats {
	stats := make([]ShardStats, len(m.shards))
	for i, s := range m.shards {
		s.mu.RLock()
		stats[i] = ShardStats{Index: i, Count: len(s.items)}
		s.mu.RUnlock()
	}
	return stats
}
