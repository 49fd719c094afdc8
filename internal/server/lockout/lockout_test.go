package lockout

import (
	"testing"
	"time"

	"github.com/bluele/gcache"
	"github.com/stretchr/testify/assert"
)

func TestStore_LocksAfterMaxFailures(t *testing.T) {
	clock := gcache.NewFakeClock()
	s := newWithClock(3, time.Minute, clock)

	assert.False(t, s.RecordFailure("u1"))
	assert.False(t, s.RecordFailure("u1"))
	locked, _ := s.IsLocked("u1")
	assert.False(t, locked)

	assert.True(t, s.RecordFailure("u1"))
	locked, left := s.IsLocked("u1")
	assert.True(t, locked)
	assert.Equal(t, time.Minute, left)

	// other users are unaffected
	locked, _ = s.IsLocked("u2")
	assert.False(t, locked)
}

func TestStore_CooldownExpires(t *testing.T) {
	clock := gcache.NewFakeClock()
	s := newWithClock(2, time.Minute, clock)

	s.RecordFailure("u1")
	s.RecordFailure("u1")

	clock.Advance(30 * time.Second)
	locked, left := s.IsLocked("u1")
	assert.True(t, locked)
	assert.Equal(t, 30*time.Second, left)

	clock.Advance(31 * time.Second)
	locked, _ = s.IsLocked("u1")
	assert.False(t, locked)

	// a fresh failure after the lock starts counting from one again
	assert.False(t, s.RecordFailure("u1"))
}

func TestStore_SuccessResets(t *testing.T) {
	s := newWithClock(2, time.Minute, gcache.NewFakeClock())

	s.RecordFailure("u1")
	s.RecordSuccess("u1")
	assert.False(t, s.RecordFailure("u1"))
	locked, _ := s.IsLocked("u1")
	assert.False(t, locked)
}

func TestStore_Disabled(t *testing.T) {
	s := New(0, time.Minute)

	for range 10 {
		assert.False(t, s.RecordFailure("u1"))
	}
	locked, left := s.IsLocked("u1")
	assert.False(t, locked)
	assert.Zero(t, left)
	s.RecordSuccess("u1")
}
