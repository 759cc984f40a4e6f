package benchmark

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/mudb-go/internal/storage/memory"
)

// KeyCounts defines the key-space sizes for benchmarking.
var KeyCounts = []int{5000, 10000, 50000, 100000, 500000}

// SmallKeyCounts for quick benchmarks.
var SmallKeyCounts = []int{1000, 5000, 10000}

// ShardCounts defines the lock-shard counts compared by the parallel benchmarks.
var ShardCounts = []int{1, 16, 64, 256}

// newKey generates a unique key.
func newKey() string {
	return "k:" + strings.ToLower(ulid.Make().String())
}

// prefillStore fills store with count string keys and returns them.
func prefillStore(b *testing.B, store *memory.Store, count int) []string {
	b.Helper()
	keys := make([]string, count)
	for i := range keys {
		keys[i] = newKey()
		if err := store.Set(keys[i], fmt.Sprintf("value-%d", i)); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
	return keys
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithKeyCounts runs a benchmark function with various key counts.
func runWithKeyCounts(b *testing.B, counts []int, benchFn func(b *testing.B, count int)) {
	for _, count := range counts {
		b.Run(fmt.Sprintf("keys_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}

// runWithShardCounts runs a benchmark function with various shard counts.
func runWithShardCounts(b *testing.B, benchFn func(b *testing.B, shards int)) {
	for _, shards := range ShardCounts {
		b.Run(fmt.Sprintf("shards_%d", shards), func(b *testing.B) {
			benchFn(b, shards)
		})
	}
}
