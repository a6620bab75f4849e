package ratelimit

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Policy describes a sliding window: at most MaxRequests per Window.
type Policy struct {
	MaxRequests int
	Window      time.Duration
}

var (
	ChatQueryPolicy      = Policy{MaxRequests: 30, Window: time.Minute}
	DocumentUploadPolicy = Policy{MaxRequests: 10, Window: time.Minute}
	GeneralAPIPolicy     = Policy{MaxRequests: 100, Window: 15 * time.Minute}
)

// Result is the outcome of a single rate limit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// SortedSetStore is the minimal sorted-set surface the limiter needs.
// Entries are scored by request timestamp.
type SortedSetStore interface {
	PruneBefore(ctx context.Context, key string, cutoff time.Time) error
	Count(ctx context.Context, key string) (int64, error)
	Oldest(ctx context.Context, key string) (time.Time, bool, error)
	Add(ctx context.Context, key string, at time.Time, ttl time.Duration) error
}

type memoryRecord struct {
	count     int
	resetTime time.Time
}

// Limiter enforces a Policy against a SortedSetStore. When store is nil it
// falls back to an in-process fixed-window counter.
type Limiter struct {
	store  SortedSetStore
	policy Policy
	now    func() time.Time

	mu     sync.Mutex
	memory *gocache.Cache
}

type Option func(*Limiter)

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func NewLimiter(store SortedSetStore, policy Policy, opts ...Option) *Limiter {
	l := &Limiter{
		store:  store,
		policy: policy,
		now:    time.Now,
	}
	if store == nil {
		l.memory = gocache.New(policy.Window, 2*policy.Window)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Limiter) Policy() Policy {
	return l.policy
}

// Allow records one request for the identifier and reports whether it fits
// the policy. Store failures never block the request: the limiter fails open
// and returns the error alongside an allowed result so callers can log it.
func (l *Limiter) Allow(ctx context.Context, identifier string) (Result, error) {
	key := "rate_limit:" + identifier
	now := l.now()

	if l.store == nil {
		return l.allowMemory(key, now), nil
	}

	res, err := l.allowStore(ctx, key, now)
	if err != nil {
		return Result{
			Allowed:   true,
			Remaining: l.policy.MaxRequests,
			ResetTime: now.Add(l.policy.Window),
		}, err
	}
	return res, nil
}

func (l *Limiter) allowStore(ctx context.Context, key string, now time.Time) (Result, error) {
	cutoff := now.Add(-l.policy.Window)

	if err := l.store.PruneBefore(ctx, key, cutoff); err != nil {
		return Result{}, err
	}

	count, err := l.store.Count(ctx, key)
	if err != nil {
		return Result{}, err
	}

	if count >= int64(l.policy.MaxRequests) {
		resetTime := now.Add(l.policy.Window)
		if oldest, ok, err := l.store.Oldest(ctx, key); err == nil && ok {
			resetTime = oldest.Add(l.policy.Window)
		}
		return Result{
			Allowed:   false,
			Remaining: 0,
			ResetTime: resetTime,
		}, nil
	}

	if err := l.store.Add(ctx, key, now, l.policy.Window); err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:   true,
		Remaining: l.policy.MaxRequests - int(count) - 1,
		ResetTime: now.Add(l.policy.Window),
	}, nil
}

func (l *Limiter) allowMemory(key string, now time.Time) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	var record memoryRecord
	if cached, ok := l.memory.Get(key); ok {
		record = cached.(memoryRecord)
	}

	if record.count == 0 || now.After(record.resetTime) {
		record = memoryRecord{count: 1, resetTime: now.Add(l.policy.Window)}
	} else {
		record.count++
	}
	l.memory.Set(key, record, gocache.DefaultExpiration)

	remaining := l.policy.MaxRequests - record.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   record.count <= l.policy.MaxRequests,
		Remaining: remaining,
		ResetTime: record.resetTime,
	}
}
