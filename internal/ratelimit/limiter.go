// Package ratelimit bounds the number of calls issued to the backing store
// within a trailing time window.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"

	"mesa-board/internal/config/configs"
	"mesa-board/internal/metrics"
)

// Limiter is a sliding window log limiter shared by every component that
// talks to the store. It is safe for concurrent use.
type Limiter struct {
	max        int
	window     time.Duration
	minBackoff time.Duration
	clock      quartz.Clock
	metrics    *metrics.Metrics

	mu sync.Mutex
	// stamps holds the issue times of admitted calls, oldest first. Only
	// stamps newer than now-window are kept.
	stamps []time.Time
}

// New returns a limiter configured by cfg. Non-positive values fall back to
// one request per window and a zero minimum backoff floor.
func New(cfg configs.Limiter, clock quartz.Clock, m *metrics.Metrics) *Limiter {
	if cfg.MaxRequests < 1 {
		cfg.MaxRequests = 1
	}
	if cfg.MinBackoff < 0 {
		cfg.MinBackoff = 0
	}
	return &Limiter{
		max:        cfg.MaxRequests,
		window:     cfg.Window,
		minBackoff: cfg.MinBackoff,
		clock:      clock,
		metrics:    m,
		stamps:     make([]time.Time, 0, cfg.MaxRequests),
	}
}

// Acquire blocks until one more call fits in the window, records it and
// returns nil. It only fails when ctx ends first, in which case nothing is
// recorded.
func (l *Limiter) Acquire(ctx context.Context) error {
	start := l.clock.Now()
	for {
		wait := l.reserve()
		if wait <= 0 {
			l.metrics.ObserveAcquire(l.clock.Since(start).Seconds())
			return nil
		}

		t := l.clock.NewTimer(wait, "Limiter", "Acquire")
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// reserve records a call and returns zero when the window has room,
// otherwise it returns how long to sleep before trying again.
func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.evict(now)
	if len(l.stamps) < l.max {
		l.stamps = append(l.stamps, now)
		return 0
	}

	wait := l.stamps[0].Add(l.window).Sub(now)
	if wait < l.minBackoff {
		wait = l.minBackoff
	}
	return wait
}

// evict drops stamps that are not newer than now-window. Callers hold mu.
func (l *Limiter) evict(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

// Len returns the number of calls recorded in the current window.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.evict(l.clock.Now())
	return len(l.stamps)
}

// Max returns the configured ceiling.
func (l *Limiter) Max() int {
	return l.max
}
