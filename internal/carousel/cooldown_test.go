package carousel

import (
	"testing"
	"time"

	"dish-wheel.klederson.com/internal/timeutil"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func TestCooldownGate_BurstAdmitsOne(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	g := NewCooldownGate(clock, 400*time.Millisecond)

	admitted := 0
	for i := 0; i < 10; i++ {
		if g.Request() {
			admitted++
		}
		clock.Advance(10 * time.Millisecond)
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, GateLocked, g.State())
}

func TestCooldownGate_SpacedRequestsBothAdmitted(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	g := NewCooldownGate(clock, 400*time.Millisecond)

	assert.True(t, g.Request())
	clock.Advance(500 * time.Millisecond)
	assert.True(t, g.Request())
}

func TestCooldownGate_UnlocksAtDeadline(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	g := NewCooldownGate(clock, 400*time.Millisecond)

	assert.Equal(t, GateIdle, g.State())
	assert.True(t, g.UnlockAt().IsZero())

	assert.True(t, g.Request())
	assert.Equal(t, epoch.Add(400*time.Millisecond), g.UnlockAt())

	clock.Advance(399 * time.Millisecond)
	assert.False(t, g.Request(), "dropped requests do not extend the lock")
	assert.Equal(t, epoch.Add(400*time.Millisecond), g.UnlockAt())

	clock.Advance(time.Millisecond)
	assert.Equal(t, GateIdle, g.State())
	assert.True(t, g.Request())
}

func TestGateState_String(t *testing.T) {
	assert.Equal(t, "idle", GateIdle.String())
	assert.Equal(t, "locked", GateLocked.String())
}
