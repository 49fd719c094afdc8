// Package lockout throttles face logins after repeated mismatches.
package lockout

import (
	"sync"
	"time"

	"github.com/bluele/gcache"
)

// DefaultSize bounds how many users are tracked at once; the least recently
// seen ones are evicted first.
const DefaultSize = 10000

type attempts struct {
	failures    int
	lockedUntil time.Time
}

// Store counts consecutive failed face logins per user. After maxFailures
// failures the user is locked for cooldown. A zero maxFailures disables it.
type Store struct {
	mu          sync.Mutex
	cache       gcache.Cache
	clock       gcache.Clock
	maxFailures int
	cooldown    time.Duration
}

// New returns a Store backed by an in-memory LRU.
func New(maxFailures int, cooldown time.Duration) *Store {
	return newWithClock(maxFailures, cooldown, gcache.NewRealClock())
}

func newWithClock(maxFailures int, cooldown time.Duration, clock gcache.Clock) *Store {
	return &Store{
		cache:       gcache.New(DefaultSize).LRU().Clock(clock).Build(),
		clock:       clock,
		maxFailures: maxFailures,
		cooldown:    cooldown,
	}
}

func (s *Store) enabled() bool {
	return s.maxFailures > 0
}

func (s *Store) load(userID string) attempts {
	v, err := s.cache.Get(userID)
	if err != nil {
		return attempts{}
	}
	a, _ := v.(attempts)
	return a
}

// IsLocked reports whether userID is locked and for how much longer.
func (s *Store) IsLocked(userID string) (bool, time.Duration) {
	if !s.enabled() {
		return false, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.load(userID)
	left := a.lockedUntil.Sub(s.clock.Now())
	if left <= 0 {
		return false, 0
	}
	return true, left
}

// RecordFailure counts a mismatch and reports whether it locked the user.
func (s *Store) RecordFailure(userID string) bool {
	if !s.enabled() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	a := s.load(userID)
	if !a.lockedUntil.IsZero() && !now.Before(a.lockedUntil) {
		a = attempts{}
	}
	a.failures++

	locked := false
	if a.failures >= s.maxFailures {
		a.lockedUntil = now.Add(s.cooldown)
		locked = true
	}
	// counters of idle users fade after one cooldown
	_ = s.cache.SetWithExpire(userID, a, s.cooldown)
	return locked
}

// RecordSuccess clears the user's failure history.
func (s *Store) RecordSuccess(userID string) {
	if !s.enabled() {
		return
	}
	s.cache.Remove(userID)
}
