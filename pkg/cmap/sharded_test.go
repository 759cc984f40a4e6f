package cmap

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	m := New[string, int]()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.ShardCount() != DefaultShardCount {
		t.Errorf("shard count = %d, want %d", m.ShardCount(), DefaultShardCount)
	}
}

func TestNewWithShards(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, DefaultShardCount},  // invalid → default
		{-1, DefaultShardCount}, // invalid → default
		{3, DefaultShardCount},  // not power of 2 → default
		{1, 1},
		{2, 2},
		{8, 8},
		{64, 64},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("shards=%d", tt.input), func(t *testing.T) {
			m := NewWithShards[string, int](tt.input)
			if m.ShardCount() != tt.expected {
				t.Errorf("NewWithShards(%d) shard count = %d, want %d",
					tt.input, m.ShardCount(), tt.expected)
			}
		})
	}
}

func TestShardFor(t *testing.T) {
	m := NewWithShards[string, int](8)
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		idx := m.ShardFor(key)
		if idx < 0 || idx >= 8 {
			t.Fatalf("ShardFor(%q) = %d, out of range", key, idx)
		}
		if again := m.ShardFor(key); again != idx {
			t.Fatalf("ShardFor(%q) not stable: %d then %d", key, idx, again)
		}
	}

	single := NewWithShards[string, int](1)
	if idx := single.ShardFor("anything"); idx != 0 {
		t.Errorf("single shard ShardFor = %d, want 0", idx)
	}
}

// put stores v under key through Compute.
func put[K ~string, V any](m *Map[K, V], key K, v V) {
	_, _ = m.Compute(key, func(V, bool) (V, error) { return v, nil })
}

// lookup reads key through View.
func lookup[K ~string, V any](m *Map[K, V], key K) (got V, found bool) {
	m.View(key, func(v V, ok bool) { got, found = v, ok })
	return got, found
}

func TestView(t *testing.T) {
	m := New[string, int]()
	put(m, "a", 1)
	put(m, "b", 2)

	if got, found := lookup(m, "a"); !found || got != 1 {
		t.Errorf("View(a) = (%d, %v), want (1, true)", got, found)
	}
	if got, found := lookup(m, "b"); !found || got != 2 {
		t.Errorf("View(b) = (%d, %v), want (2, true)", got, found)
	}
	if got, found := lookup(m, "missing"); found || got != 0 {
		t.Errorf("View(missing) = (%d, %v), want (0, false)", got, found)
	}
}

func TestCompute(t *testing.T) {
	m := New[string, int]()

	v, err := m.Compute("n", func(old int, ok bool) (int, error) {
		if ok {
			t.Error("new key reported as existing")
		}
		return old + 1, nil
	})
	if err != nil || v != 1 {
		t.Fatalf("Compute = (%d, %v), want (1, nil)", v, err)
	}

	v, _ = m.Compute("n", func(old int, ok bool) (int, error) {
		return old + 10, nil
	})
	if v != 11 {
		t.Errorf("Compute = %d, want 11", v)
	}
}

func TestComputeErrorLeavesMapUntouched(t *testing.T) {
	m := New[string, int]()
	put(m, "k", 5)
	errBoom := errors.New("boom")

	_, err := m.Compute("k", func(old int, ok bool) (int, error) {
		return 99, errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Compute error = %v, want %v", err, errBoom)
	}
	if v, _ := lookup(m, "k"); v != 5 {
		t.Errorf("value after failed Compute = %d, want 5", v)
	}

	_, _ = m.Compute("absent", func(int, bool) (int, error) { return 1, errBoom })
	if _, found := lookup(m, "absent"); found {
		t.Error("failed Compute must not create the key")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestCount(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 100; i++ {
		put(m, fmt.Sprintf("key%d", i), i)
	}
	put(m, "key0", -1)
	if m.Count() != 100 {
		t.Errorf("Count() = %d, want 100", m.Count())
	}
}

func TestNamedStringKey(t *testing.T) {
	type key string
	m := New[key, string]()
	put(m, key("a"), "x")
	if v, ok := lookup(m, "a"); !ok || v != "x" {
		t.Errorf("View(a) = (%q, %v), want (x, true)", v, ok)
	}
}

func TestConcurrentCompute(t *testing.T) {
	for _, shards := range []int{1, 16} {
		t.Run(fmt.Sprintf("shards=%d", shards), func(t *testing.T) {
			m := NewWithShards[string, int](shards)
			const workers, perWorker = 16, 500

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perWorker; i++ {
						_, _ = m.Compute("counter", func(old int, _ bool) (int, error) {
							return old + 1, nil
						})
					}
				}()
			}
			wg.Wait()

			if v, _ := lookup(m, "counter"); v != workers*perWorker {
				t.Errorf("counter = %d, want %d", v, workers*perWorker)
			}
		})
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := New[string, int]()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", id, j)
				put(m, key, j)
				lookup(m, key)
			}
		}(i)
	}
	wg.Wait()

	if m.Count() != 1000 {
		t.Errorf("Count() = %d, want 1000", m.Count())
	}
}
