package ratelimiter

import (
	"sync"
	"time"
)

// Bucket is a token bucket for a single client identity.
type Bucket struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	identity   string
	parent     *ClientRateLimiter
}

// ClientRateLimiter hands out one token bucket per client identity
// (an IP, an email) and drops buckets that stay idle past expirationTime.
type ClientRateLimiter struct {
	buckets        map[string]*Bucket
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

func NewClientRateLimiter(rate float64, capacity float64, expirationTime time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		buckets:        make(map[string]*Bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (c *ClientRateLimiter) cleanup(identity string) {
	c.mu.Lock()
	delete(c.buckets, identity)
	c.mu.Unlock()
}

func (b *Bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.identity)
	})
}

func (c *ClientRateLimiter) getBucket(identity string) *Bucket {
	c.mu.RLock()
	bucket, exists := c.buckets[identity]
	c.mu.RUnlock()

	if exists {
		bucket.resetTimer()
		return bucket
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another goroutine may have created it while we waited for the lock
	bucket, exists = c.buckets[identity]
	if exists {
		bucket.resetTimer()
		return bucket
	}

	bucket = &Bucket{
		tokens:     c.capacity,
		capacity:   c.capacity,
		rate:       c.rate,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     c,
	}
	c.buckets[identity] = bucket
	bucket.resetTimer()

	return bucket
}

func (b *Bucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow reports whether the client identified by identity may proceed.
func (c *ClientRateLimiter) Allow(identity string) bool {
	return c.getBucket(identity).Allow()
}
