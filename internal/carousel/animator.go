package carousel

import "time"

// PlateFrame is the current state of the detail plate enter animation.
type PlateFrame struct {
	Scale   float64
	Opacity float64
	Playing bool
}

// Animator drives the visible wheel rotation and the detail plate enter
// animation. It only interpolates; it never decides which item is active.
//
// While detached (no view mounted) animations are skipped: rotation jumps
// to its target and enter animations are not played or retried.
type Animator struct {
	attached bool
	visible  float64

	rotation Tween
	coast    glide
	plate    Tween

	tau, settle float64
}

// NewAnimator returns a detached animator resting at rotation.
func NewAnimator(rotation float64, rotate, plate time.Duration, tau, settle float64) *Animator {
	a := &Animator{
		visible:  rotation,
		rotation: NewTween(rotate, Power2Out),
		plate:    NewTween(plate, CircOut),
		tau:      tau,
		settle:   settle,
	}
	a.rotation.to = rotation
	a.plate.to = 1
	return a
}

// Attach marks the view as mounted.
func (a *Animator) Attach() { a.attached = true }

// Detach marks the view as gone and finishes everything in place.
func (a *Animator) Detach() {
	a.attached = false
	a.Jump(a.rotation.Target())
	a.plate.Stop()
}

// Attached reports whether animations are being played.
func (a *Animator) Attached() bool { return a.attached }

// Rotation returns the visible rotation in degrees.
func (a *Animator) Rotation() float64 { return a.visible }

// Jump sets the visible rotation immediately, superseding any motion.
func (a *Animator) Jump(rotation float64) {
	a.visible = rotation
	a.rotation.Retarget(time.Time{}, rotation, rotation)
	a.coast.active = false
}

// RotateTo eases the visible rotation toward target, retargeting any
// tween or glide in flight. It returns false when the animation was skipped.
func (a *Animator) RotateTo(now time.Time, target float64) bool {
	if !a.attached {
		a.Jump(target)
		return false
	}
	a.coast.active = false
	a.rotation.Retarget(now, a.visible, target)
	return true
}

// Glide coasts the visible rotation onto target with exponentially
// decaying speed. It returns false when the animation was skipped.
func (a *Animator) Glide(now time.Time, target float64) bool {
	if !a.attached {
		a.Jump(target)
		return false
	}
	a.rotation.Retarget(now, target, target)
	a.coast.begin(now, a.visible, target, a.tau, a.settle)
	return true
}

// PlayEnter restarts the plate enter animation. It returns false when the
// view is not mounted.
func (a *Animator) PlayEnter(now time.Time) bool {
	if !a.attached {
		return false
	}
	a.plate.Retarget(now, 0, 1)
	return true
}

// Plate returns the current plate frame.
func (a *Animator) Plate(now time.Time) PlateFrame {
	if !a.plate.Active() {
		return PlateFrame{Scale: 1, Opacity: 1}
	}
	v, _ := a.plate.Peek(now)
	return PlateFrame{Scale: v, Opacity: v, Playing: true}
}

// Animating reports whether any property is still in motion.
func (a *Animator) Animating() bool {
	return a.rotation.Active() || a.coast.active || a.plate.Active()
}

// Update advances every property to now. It reports whether the plate
// animation finished during this update.
func (a *Animator) Update(now time.Time) (plateDone bool) {
	switch {
	case a.coast.active:
		a.visible, _ = a.coast.value(now)
	case a.rotation.Active():
		a.visible, _ = a.rotation.Value(now)
	}
	if a.plate.Active() {
		if _, done := a.plate.Value(now); done {
			plateDone = true
		}
	}
	return plateDone
}
