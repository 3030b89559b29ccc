package translate

import (
	"sync"
	"time"
)

// RateLimiter caps translation calls per rolling day so a busy frontend
// cannot burn through an external provider's quota.
type RateLimiter struct {
	mu        sync.Mutex
	count     int
	max       int // 0 = unlimited
	resetTime time.Time
}

func NewRateLimiter(maxPerDay int) *RateLimiter {
	return &RateLimiter{
		max:       maxPerDay,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// Allow reports whether another call fits in the current window and
// counts it when it does.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.max > 0 && rl.count >= rl.max {
		return false
	}
	rl.count++
	return true
}

// Used returns how many calls were counted in the current window.
func (rl *RateLimiter) Used() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.checkReset()
	return rl.count
}

func (rl *RateLimiter) checkReset() {
	if time.Now().After(rl.resetTime) {
		rl.count = 0
		rl.resetTime = time.Now().Add(24 * time.Hour)
	}
}
