package domain

// List is an index-addressable sequence of strings with amortized O(1) pushes
// at both ends, backed by a growable ring buffer.
//
// A List is not safe for concurrent use; the store serializes access.
type List struct {
	buf  []string
	head int
	n    int
}

const minListCap = 8

// NewList returns an empty list with room for capacity elements.
func NewList(capacity int) *List {
	if capacity < minListCap {
		capacity = minListCap
	}
	return &List{buf: make([]string, capacity)}
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.n
}

// At returns the element at index i (0 <= i < Len()).
func (l *List) At(i int) string {
	return l.buf[(l.head+i)%len(l.buf)]
}

// PushFront inserts v before the first element.
func (l *List) PushFront(v string) {
	if l.n == len(l.buf) {
		l.grow()
	}
	l.head = (l.head - 1 + len(l.buf)) % len(l.buf)
	l.buf[l.head] = v
	l.n++
}

// PushBack appends v after the last element.
func (l *List) PushBack(v string) {
	if l.n == len(l.buf) {
		l.grow()
	}
	l.buf[(l.head+l.n)%len(l.buf)] = v
	l.n++
}

// Push pushes values one at a time, in order, to the given end and returns
// the new length. Pushing a, b, c to the head leaves c at index 0.
func (l *List) Push(end End, values ...string) int {
	for _, v := range values {
		if end == Head {
			l.PushFront(v)
		} else {
			l.PushBack(v)
		}
	}
	return l.n
}

// Values returns a copy of all elements in order.
func (l *List) Values() []string {
	return l.slice(0, l.n-1)
}

// Range returns a copy of the elements selected by start and stop, resolved
// with ResolveRange.
func (l *List) Range(start, stop int64) []string {
	lo, hi, ok := ResolveRange(l.n, start, stop)
	if !ok {
		return []string{}
	}
	return l.slice(lo, hi)
}

func (l *List) slice(lo, hi int) []string {
	if hi < lo {
		return []string{}
	}
	out := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, l.At(i))
	}
	return out
}

func (l *List) grow() {
	size := len(l.buf) * 2
	if size < minListCap {
		size = minListCap
	}
	buf := make([]string, size)
	for i := 0; i < l.n; i++ {
		buf[i] = l.At(i)
	}
	l.buf = buf
	l.head = 0
}

// ResolveRange maps raw LRANGE indices onto a list of the given length and
// returns the inclusive bounds [lo, hi]. ok is false for an empty result.
//
// Each index is rounded on its own: a negative index i becomes length-|i|
// (floored at 0) and an index past the end becomes length-1. A stop before
// start is empty when both indices have the same sign, because only then does
// the raw comparison mean the same thing as the rounded one.
func ResolveRange(length int, start, stop int64) (lo, hi int, ok bool) {
	if length <= 0 {
		return 0, 0, false
	}
	if stop < start && (start < 0) == (stop < 0) {
		return 0, 0, false
	}

	n := int64(length)
	round := func(i int64) int64 {
		if i < 0 {
			// n+i == n-|i| without overflowing on math.MinInt64.
			i = n + i
			if i < 0 {
				i = 0
			}
			return i
		}
		if i >= n {
			return n - 1
		}
		return i
	}

	s, e := round(start), round(stop)
	if s > e {
		return 0, 0, false
	}
	return int(s), int(e), true
}
