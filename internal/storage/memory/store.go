package memory

import (
	"github.com/yndnr/mudb-go/internal/core/domain"
	"github.com/yndnr/mudb-go/pkg/cmap"
)

// TypeNone is reported by Type for a missing key.
const TypeNone = "none"

// Store is the shared key space.
type Store struct {
	entries *cmap.Map[string, domain.Value]
	shards  int
}

// Option configures the Store.
type Option func(*Store)

// WithShards sets the number of lock shards. It must be a power of 2;
// 1 puts the whole key space behind a single lock.
func WithShards(n int) Option {
	return func(s *Store) {
		s.shards = n
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{shards: cmap.DefaultShardCount}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = cmap.NewWithShards[string, domain.Value](s.shards)
	s.shards = s.entries.ShardCount()
	return s
}

// Get returns the string stored under key. found is false for a missing key.
func (s *Store) Get(key string) (value string, found bool, err error) {
	s.entries.View(key, func(v domain.Value, ok bool) {
		if !ok {
			return
		}
		str, isString := v.(domain.String)
		if !isString {
			err = domain.ErrWrongType
			return
		}
		value, found = string(str), true
	})
	return value, found, err
}

// Set stores value under key, creating or overwriting a string.
func (s *Store) Set(key, value string) error {
	_, err := s.entries.Compute(key, func(old domain.Value, ok bool) (domain.Value, error) {
		if ok {
			if _, isString := old.(domain.String); !isString {
				return nil, domain.ErrWrongType
			}
		}
		return domain.String(value), nil
	})
	return err
}

// Push adds values one at a time to the given end of the list under key and
// returns the new length. The list is created when key is missing.
func (s *Store) Push(key string, values []string, end domain.End) (int, error) {
	if len(values) == 0 {
		return s.listLen(key)
	}

	var length int
	_, err := s.entries.Compute(key, func(old domain.Value, ok bool) (domain.Value, error) {
		var list *domain.List
		if ok {
			l, isList := old.(*domain.List)
			if !isList {
				return nil, domain.ErrWrongType
			}
			list = l
		} else {
			list = domain.NewList(len(values))
		}
		length = list.Push(end, values...)
		return list, nil
	})
	if err != nil {
		return 0, err
	}
	return length, nil
}

// Range returns a copy of the list elements selected by start and stop,
// resolved with domain.ResolveRange. A missing key yields an empty slice.
func (s *Store) Range(key string, start, stop int64) ([]string, error) {
	out := []string{}
	var err error
	s.entries.View(key, func(v domain.Value, ok bool) {
		if !ok {
			return
		}
		list, isList := v.(*domain.List)
		if !isList {
			err = domain.ErrWrongType
			return
		}
		out = list.Range(start, stop)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return s.entries.Count()
}

// Type returns the type name of the value under key, or TypeNone.
func (s *Store) Type(key string) string {
	t := TypeNone
	s.entries.View(key, func(v domain.Value, ok bool) {
		if ok {
			t = v.Type()
		}
	})
	return t
}

// Shards returns the number of lock shards in use.
func (s *Store) Shards() int {
	return s.shards
}

// ShardKeys returns the number of keys held by each shard.
func (s *Store) ShardKeys() []int {
	stats := s.entries.Stats()
	counts := make([]int, len(stats))
	for i, st := range stats {
		counts[i] = st.Count
	}
	return counts
}

func (s *Store) listLen(key string) (int, error) {
	var (
		n   int
		err error
	)
	s.entries.View(key, func(v domain.Value, ok bool) {
		if !ok {
			return
		}
		list, isList := v.(*domain.List)
		if !isList {
			err = domain.ErrWrongType
			return
		}
		n = list.Len()
	})
	return n, err
}
