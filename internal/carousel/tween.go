package carousel

import (
	"math"
	"time"
)

// Tween interpolates a single value toward a target over a fixed duration.
// Retargeting mid-flight starts the next leg from wherever the value is at
// that moment, so motion never jumps back to an earlier start.
type Tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
	ease     EaseFunc
	active   bool
}

// NewTween returns an idle tween using ease over duration.
func NewTween(duration time.Duration, ease EaseFunc) Tween {
	if ease == nil {
		ease = Linear
	}
	return Tween{duration: duration, ease: ease}
}

// Retarget starts a leg from current to target at now.
func (t *Tween) Retarget(now time.Time, current, target float64) {
	t.from = current
	t.to = target
	t.start = now
	t.active = current != target && t.duration > 0
}

// Stop ends the tween where it is.
func (t *Tween) Stop() {
	t.active = false
}

// Active reports whether a leg is in flight.
func (t *Tween) Active() bool {
	return t.active
}

// Target returns the end value of the current or last leg.
func (t *Tween) Target() float64 {
	return t.to
}

// Value returns the interpolated value at now and whether the leg is
// finished. A finished tween goes idle.
func (t *Tween) Value(now time.Time) (float64, bool) {
	v, done := t.Peek(now)
	if done {
		t.active = false
	}
	return v, done
}

// Peek is Value without side effects.
func (t *Tween) Peek(now time.Time) (float64, bool) {
	if !t.active {
		return t.to, true
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		return t.to, true
	}
	return t.from + (t.to-t.from)*t.ease(p), false
}

// glide is an inertial coast toward a snapped target: the distance left
// decays exponentially, and the glide lands once the implied angular speed
// falls below settle.
type glide struct {
	from, to float64
	start    time.Time
	tau      float64
	settle   float64
	active   bool
}

func (g *glide) begin(now time.Time, from, to, tau, settle float64) {
	*g = glide{from: from, to: to, start: now, tau: tau, settle: settle, active: tau > 0 && from != to}
}

func (g *glide) value(now time.Time) (float64, bool) {
	if !g.active {
		return g.to, true
	}
	t := now.Sub(g.start).Seconds()
	if t < 0 {
		t = 0
	}
	decay := math.Exp(-t / g.tau)
	remaining := (g.to - g.from) * decay
	speed := math.Abs(remaining) / g.tau
	if speed < g.settle {
		g.active = false
		return g.to, true
	}
	return g.to - remaining, false
}
