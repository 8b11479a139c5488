// Package ratelimit implements a fixed-window request limiter keyed by
// client address. Counters live in process memory by default, or in Redis
// when the deployment wants one window shared across restarts.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether one more request fits the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)

	// Backend names the counter store for health reporting.
	Backend() string
}

// MemoryLimiter is the default backend: per-key counters that reset when
// the window elapses.
type MemoryLimiter struct {
	max    int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*entry
	clock   func() time.Time
}

type entry struct {
	start time.Time
	count int
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		window:  window,
		windows: make(map[string]*entry),
		clock:   time.Now,
	}
}

func (l *MemoryLimiter) Backend() string { return "memory" }

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.windows[key]
	if e == nil || now.Sub(e.start) >= l.window {
		e = &entry{start: now}
		l.windows[key] = e
	}
	e.count++
	return e.count <= l.max, nil
}
