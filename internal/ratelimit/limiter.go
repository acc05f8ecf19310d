// Package ratelimit serializes calls to quota-constrained external services.
//
// The limiter keeps a FIFO queue of submitted tasks and a sliding-window
// account of dispatched ones. A single drain cycle runs at a time; it
// dispatches the oldest undispatched task whenever fewer than MaxRequests
// dispatches fall inside the window, stays closed until that task settles
// plus a fixed cool-down, and backs off when the window is saturated.
// Dispatch order is always submission order; a task's failure reaches only
// its own caller.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultMaxRequests = 5
	defaultTimeWindow  = 60 * time.Second
	defaultCoolDown    = 1 * time.Second
	defaultBackoff     = 5 * time.Second
	defaultIdleRecheck = 1 * time.Second
)

// Task is a zero-argument unit of work executed under the limiter's quota.
type Task func(ctx context.Context) (any, error)

// Config tunes a Limiter. Zero values fall back to the production defaults
// (5 requests per 60s window, 1s cool-down, 5s saturation backoff).
type Config struct {
	MaxRequests int
	TimeWindow  time.Duration
	CoolDown    time.Duration
	Backoff     time.Duration
	IdleRecheck time.Duration
}

type outcome struct {
	value any
	err   error
}

type entry struct {
	ctx          context.Context
	task         Task
	result       chan outcome
	dispatched   bool
	dispatchedAt time.Time
}

// Limiter owns its queue and window accounting exclusively; callers interact
// with it only through Do. Independent instances share no state.
type Limiter struct {
	mu         sync.Mutex
	queue      []*entry
	processing bool

	maxRequests int
	timeWindow  time.Duration
	coolDown    time.Duration
	backoff     time.Duration
	idleRecheck time.Duration
}

func New(cfg Config) *Limiter {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = defaultMaxRequests
	}
	if cfg.TimeWindow <= 0 {
		cfg.TimeWindow = defaultTimeWindow
	}
	if cfg.CoolDown <= 0 {
		cfg.CoolDown = defaultCoolDown
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.IdleRecheck <= 0 {
		cfg.IdleRecheck = defaultIdleRecheck
	}
	return &Limiter{
		maxRequests: cfg.MaxRequests,
		timeWindow:  cfg.TimeWindow,
		coolDown:    cfg.CoolDown,
		backoff:     cfg.Backoff,
		idleRecheck: cfg.IdleRecheck,
	}
}

// Do enqueues task and blocks until the task settles or ctx is done. Enqueue
// itself never blocks; tasks submitted concurrently are all admitted in
// arrival order. A task abandoned via ctx still runs when its turn comes,
// bounded by whatever timeout the task itself carries.
func (l *Limiter) Do(ctx context.Context, task Task) (any, error) {
	e := &entry{
		ctx:    ctx,
		task:   task,
		result: make(chan outcome, 1),
	}

	l.mu.Lock()
	l.queue = append(l.queue, e)
	l.mu.Unlock()

	l.kick()

	select {
	case out := <-e.result:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Throttle runs a typed task through the limiter.
func Throttle[T any](ctx context.Context, l *Limiter, task func(ctx context.Context) (T, error)) (T, error) {
	v, err := l.Do(ctx, func(ctx context.Context) (any, error) {
		return task(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// kick starts a drain cycle unless one is already running. Safe to call from
// multiple goroutines and from expired timers; the processing flag keeps the
// drain logically single-threaded.
func (l *Limiter) kick() {
	l.mu.Lock()
	if l.processing {
		l.mu.Unlock()
		return
	}
	l.processing = true
	l.mu.Unlock()

	go l.drain()
}

// drain runs one cycle: age out dispatched entries, then either dispatch the
// oldest waiting task, back off while saturated, or re-check later while
// dispatched work is still inside the window.
func (l *Limiter) drain() {
	l.mu.Lock()

	now := time.Now()
	active := 0
	var next *entry
	kept := l.queue[:0]
	for _, e := range l.queue {
		if e.dispatched {
			// Only dispatched entries age out of the quota window;
			// waiting entries are never evicted.
			if now.Sub(e.dispatchedAt) > l.timeWindow {
				continue
			}
			active++
			kept = append(kept, e)
			continue
		}
		if next == nil {
			next = e
		}
		kept = append(kept, e)
	}
	l.queue = kept

	if active >= l.maxRequests {
		l.processing = false
		l.mu.Unlock()
		slog.Debug("[RateLimiter] Window saturated, backing off",
			slog.Int("active", active))
		time.AfterFunc(l.backoff, l.kick)
		return
	}

	if next == nil {
		l.processing = false
		l.mu.Unlock()
		if active > 0 {
			time.AfterFunc(l.idleRecheck, l.kick)
		}
		return
	}

	// The processing flag stays set until the task settles and the cool-down
	// elapses, so consecutive dispatches are spaced by at least the task's
	// duration plus the cool-down, independent of window accounting. A kick
	// from a concurrent Do or an expired timer is a no-op until then.
	next.dispatched = true
	next.dispatchedAt = now
	l.mu.Unlock()

	go func() {
		value, err := next.task(next.ctx)
		next.result <- outcome{value: value, err: err}
		time.AfterFunc(l.coolDown, func() {
			l.mu.Lock()
			l.processing = false
			l.mu.Unlock()
			l.kick()
		})
	}()
}
