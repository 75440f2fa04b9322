package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type attemptData struct {
	count        int
	firstAttempt time.Time
}

// rateLimiter counts failed logins per client IP. Each Server owns one;
// the page form and the JSON API share it.
type rateLimiter struct {
	sync.Mutex
	attempts   map[string]*attemptData
	blocked    map[string]time.Time
	now        func() time.Time
	maxTracked int
}

const (
	maxAttempts    = 5
	blockDuration  = 15 * time.Minute
	windowDuration = 15 * time.Minute
	maxTrackedIPs  = 10000
)

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		attempts:   make(map[string]*attemptData),
		blocked:    make(map[string]time.Time),
		now:        time.Now,
		maxTracked: maxTrackedIPs,
	}
}

// Allow returns false if the IP is currently blocked.
// It also cleans up expired blocks.
func (r *rateLimiter) Allow(ip string) bool {
	r.Lock()
	defer r.Unlock()

	if unblockTime, ok := r.blocked[ip]; ok {
		if r.now().Before(unblockTime) {
			return false
		}
		// Block expired
		delete(r.blocked, ip)
		delete(r.attempts, ip)
	}
	return true
}

// RecordFailure increments the failure count and blocks if threshold reached.
func (r *rateLimiter) RecordFailure(ip string) {
	r.Lock()
	defer r.Unlock()

	if _, tracked := r.attempts[ip]; !tracked && len(r.attempts) >= r.maxTracked {
		r.evictExpired()
		// Every window is still live: start over rather than grow. Blocks
		// already issued are kept.
		if len(r.attempts) >= r.maxTracked {
			r.attempts = make(map[string]*attemptData)
		}
	}

	now := r.now()
	data, exists := r.attempts[ip]
	if !exists || now.Sub(data.firstAttempt) > windowDuration {
		data = &attemptData{firstAttempt: now}
		r.attempts[ip] = data
	}
	data.count++
	if data.count >= maxAttempts {
		r.blocked[ip] = now.Add(blockDuration)
	}
}

// Failures is the number of failures recorded for ip in the current window.
func (r *rateLimiter) Failures(ip string) int {
	r.Lock()
	defer r.Unlock()

	data, ok := r.attempts[ip]
	if !ok || r.now().Sub(data.firstAttempt) > windowDuration {
		return 0
	}
	return data.count
}

// Reset clears the counter for an IP (used on successful login).
func (r *rateLimiter) Reset(ip string) {
	r.Lock()
	defer r.Unlock()
	delete(r.attempts, ip)
	delete(r.blocked, ip)
}

// evictExpired drops windows and blocks that no longer matter. Callers
// hold the lock.
func (r *rateLimiter) evictExpired() {
	now := r.now()
	for ip, data := range r.attempts {
		if now.Sub(data.firstAttempt) > windowDuration {
			delete(r.attempts, ip)
		}
	}
	for ip, until := range r.blocked {
		if !now.Before(until) {
			delete(r.blocked, ip)
		}
	}
}

func getClientIP(r *http.Request) string {
	// Standard library method to get IP (handles IP:Port)
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
