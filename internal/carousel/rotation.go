package carousel

// RotationState is the authoritative rotation of the wheel plus the index
// of the item facing the viewer. Rotation is in degrees and unbounded; it
// accumulates across drags and is only ever compared modulo 360.
type RotationState struct {
	rotation float64
	target   float64
	active   int
	snapper  Snapper
}

// NewRotationState returns a state for n slots with item start facing the
// viewer. start is clamped by modulo.
func NewRotationState(n, start int) *RotationState {
	s := &RotationState{snapper: NewSnapper(n)}
	s.active = s.snapper.Clamp(start)
	s.rotation = s.snapper.RotationFor(s.active)
	s.target = s.rotation
	return s
}

// Rotation returns the logical rotation in degrees.
func (s *RotationState) Rotation() float64 { return s.rotation }

// Target returns the rotation the animator should settle on.
func (s *RotationState) Target() float64 { return s.target }

// Active returns the index of the item facing the viewer.
func (s *RotationState) Active() int { return s.active }

// Snapper returns the snapper for the current slot count.
func (s *RotationState) Snapper() Snapper { return s.snapper }

// ApplyDelta adds delta degrees to the rotation. No clamping.
func (s *RotationState) ApplyDelta(delta float64) {
	s.rotation += delta
}

// SetTarget records the desired end rotation for animation. It does not
// change the rotation itself.
func (s *RotationState) SetTarget(target float64) {
	s.target = target
}

// Consistent reports whether the active index matches the slot nearest to
// the rotation.
func (s *RotationState) Consistent() bool {
	if s.snapper.Len() == 0 {
		return true
	}
	_, idx := s.snapper.SnapNearest(s.rotation)
	return idx == s.active
}

// settle snaps the rotation to value and commits index. It reports whether
// the active index changed.
func (s *RotationState) settle(value float64, index int) bool {
	s.rotation = value
	s.target = value
	changed := index != s.active
	s.active = index
	return changed
}

// activeSlotRotation returns the slot-aligned rotation of the active item
// nearest to the current rotation.
func (s *RotationState) activeSlotRotation() float64 {
	base := s.rotation + ShortestDelta(s.rotation, s.snapper.RotationFor(s.active))
	step := s.snapper.Step()
	if step == 0 {
		return base
	}
	return roundTo(base, step)
}

// resize rebinds the state to n slots. The active index is clamped by
// modulo and the rotation moves to the nearest slot of that index.
func (s *RotationState) resize(n int) {
	s.snapper = NewSnapper(n)
	if n == 0 {
		s.active = 0
		return
	}
	s.active = s.snapper.Clamp(s.active)
	r := s.activeSlotRotation()
	s.rotation = r
	s.target = r
}
