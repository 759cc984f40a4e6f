package redisserver

import (
	"sync"

	"golang.org/x/time/rate"
)

// limiterRegistry hands out one token bucket per client IP. Connections from
// the same IP share a bucket; the bucket is dropped when the last of them
// closes.
type limiterRegistry struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	entries map[string]*limiterEntry
}

type limiterEntry struct {
	limiter *rate.Limiter
	refs    int
}

// newLimiterRegistry returns nil when perSecond is not positive, which
// disables rate limiting.
func newLimiterRegistry(perSecond, burst int) *limiterRegistry {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = perSecond
	}
	return &limiterRegistry{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		entries: make(map[string]*limiterEntry),
	}
}

// acquire returns the limiter for ip and takes a reference on it.
func (r *limiterRegistry) acquire(ip string) *rate.Limiter {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.entries[ip] = e
	}
	e.refs++
	return e.limiter
}

// release drops a reference taken by acquire.
func (r *limiterRegistry) release(ip string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[ip]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(r.entries, ip)
	}
}

// size returns the number of tracked IPs.
func (r *limiterRegistry) size() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
