// Package ratelimiter implements per-key token buckets used to throttle
// write endpoints (thread, comment and reply creation) per requester.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// take refills the bucket for the time elapsed since lastSeen and spends one token if possible.
func (b *bucket) take(now time.Time, rate, capacity float64) bool {
	b.tokens += now.Sub(b.lastSeen).Seconds() * rate
	if b.tokens > capacity {
		b.tokens = capacity
	}
	b.lastSeen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// KeyedLimiter keeps one bucket per key. Buckets idle for longer than ttl
// are evicted by a background sweep until Stop is called.
type KeyedLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens per second
	capacity float64
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func New(rate, capacity float64, ttl time.Duration) *KeyedLimiter {
	l := &KeyedLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastSeen: now}
		l.buckets[key] = b
	}
	return b.take(now, l.rate, l.capacity)
}

func (l *KeyedLimiter) sweepLoop() {
	interval := l.ttl / 2
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

func (l *KeyedLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-l.ttl)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop ends the background sweep. Allow keeps working afterwards.
func (l *KeyedLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// PerMinute allows n requests per minute with a burst of n.
func PerMinute(n int) *KeyedLimiter {
	return New(float64(n)/60, float64(n), time.Hour)
}

// PerSecond allows n requests per second with a burst of n.
func PerSecond(n int) *KeyedLimiter {
	return New(float64(n), float64(n), time.Hour)
}
