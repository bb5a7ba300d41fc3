package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := RealClock{}
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestRealClock_Since(t *testing.T) {
	clock := RealClock{}
	past := time.Now().Add(-time.Second)
	assert.GreaterOrEqual(t, clock.Since(past), time.Second)
}

func TestMockClock_AdvanceAndSet(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, start.Add(400*time.Millisecond), clock.Now())
	assert.Equal(t, 400*time.Millisecond, clock.Since(start))

	later := start.Add(time.Hour)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}
