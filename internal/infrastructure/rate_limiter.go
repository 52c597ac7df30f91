package infrastructure

import (
	"sync"
	"time"
)

// LoginLimiter throttles login attempts per username with a sliding window,
// so a brute-force run against one account cannot exhaust bcrypt time.
type LoginLimiter struct {
	attempts map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

func NewLoginLimiter(window time.Duration, limit int) *LoginLimiter {
	l := &LoginLimiter{
		attempts: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
		done:     make(chan struct{}),
	}
	go l.cleanupStaleEntries()
	return l
}

// Stop ends the background cleanup goroutine. Safe to call more than once.
func (l *LoginLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *LoginLimiter) Allow(key string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := time.Now()
	windowStart := now.Add(-l.window)

	var valid []time.Time
	for _, at := range l.attempts[key] {
		if at.After(windowStart) {
			valid = append(valid, at)
		}
	}

	if len(valid) < l.limit {
		valid = append(valid, now)
		l.attempts[key] = valid
		return true
	}

	l.attempts[key] = valid
	return false
}

func (l *LoginLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mutex.Lock()
			cutoff := time.Now().Add(-l.window)
			for key, attempts := range l.attempts {
				var valid []time.Time
				for _, at := range attempts {
					if at.After(cutoff) {
						valid = append(valid, at)
					}
				}
				if len(valid) == 0 {
					delete(l.attempts, key)
				} else {
					l.attempts[key] = valid
				}
			}
			l.mutex.Unlock()
		}
	}
}
