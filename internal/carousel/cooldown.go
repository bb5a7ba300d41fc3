package carousel

import (
	"time"

	"dish-wheel.klederson.com/internal/timeutil"
)

// GateState is the state of a CooldownGate.
type GateState int

const (
	GateIdle GateState = iota
	GateLocked
)

func (s GateState) String() string {
	if s == GateLocked {
		return "locked"
	}
	return "idle"
}

// CooldownGate rate-limits discrete steps. The first request while idle is
// admitted and locks the gate until a fixed deadline; requests while locked
// are dropped. The deadline cannot be moved or cancelled and does not wait
// for any animation to finish.
type CooldownGate struct {
	clock    timeutil.Clock
	delay    time.Duration
	unlockAt time.Time
	locked   bool
}

// NewCooldownGate returns an idle gate with the given lock duration.
func NewCooldownGate(clock timeutil.Clock, delay time.Duration) *CooldownGate {
	return &CooldownGate{clock: clock, delay: delay}
}

// Request reports whether a step may run now. An admitted request locks
// the gate for the configured delay.
func (g *CooldownGate) Request() bool {
	now := g.clock.Now()
	if g.State() == GateLocked {
		return false
	}
	g.locked = true
	g.unlockAt = now.Add(g.delay)
	return true
}

// State returns the gate state, expiring the lock once its deadline passed.
func (g *CooldownGate) State() GateState {
	if g.locked && !g.clock.Now().Before(g.unlockAt) {
		g.locked = false
	}
	if g.locked {
		return GateLocked
	}
	return GateIdle
}

// UnlockAt returns the current lock deadline, or the zero time when idle.
func (g *CooldownGate) UnlockAt() time.Time {
	if g.State() == GateIdle {
		return time.Time{}
	}
	return g.unlockAt
}
