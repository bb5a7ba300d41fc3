package carousel

import "math"

// tieEpsilon is the tolerance, in slot units, within which a value counts
// as sitting exactly on the midpoint between two slots.
const tieEpsilon = 1e-9

// Snapper quantizes rotation values to the N evenly spaced slots of a wheel.
//
// A rotation r brings slot i to the viewing position when r ≡ -slot(i)
// (mod 360): turning the wheel clockwise advances the item shown at the
// top counter-clockwise through the list.
type Snapper struct {
	n int
}

// NewSnapper returns a snapper for n slots. n <= 0 yields a snapper whose
// operations are all no-ops.
func NewSnapper(n int) Snapper {
	if n < 0 {
		n = 0
	}
	return Snapper{n: n}
}

// Len returns the number of slots.
func (s Snapper) Len() int {
	return s.n
}

// Step returns the angular size of one slot in degrees, or 0 when empty.
func (s Snapper) Step() float64 {
	if s.n == 0 {
		return 0
	}
	return 360 / float64(s.n)
}

// Slot returns the layout angle of slot i in degrees.
func (s Snapper) Slot(i int) float64 {
	return float64(i) * s.Step()
}

// RotationFor returns the rotation that brings slot i to the viewing
// position.
func (s Snapper) RotationFor(i int) float64 {
	return -s.Slot(i)
}

// SnapNearest returns the slot-aligned rotation nearest to value and the
// index of the item that rotation brings to the viewing position.
//
// At an exact midpoint between two slots the candidate with the lower item
// index wins, independently of the sign of value.
func (s Snapper) SnapNearest(value float64) (float64, int) {
	if s.n == 0 {
		return value, 0
	}
	step := s.Step()
	q := value / step
	lo := math.Floor(q)
	frac := q - lo

	var k float64
	switch {
	case math.Abs(frac-0.5) < tieEpsilon:
		if s.indexAt(lo) <= s.indexAt(lo+1) {
			k = lo
		} else {
			k = lo + 1
		}
	case frac < 0.5:
		k = lo
	default:
		k = lo + 1
	}
	return k * step, s.indexAt(k)
}

// indexAt maps a whole number of slot steps of rotation to an item index.
func (s Snapper) indexAt(k float64) int {
	m := math.Mod(-k, float64(s.n))
	if m < 0 {
		m += float64(s.n)
	}
	i := int(m)
	if i >= s.n {
		i = 0
	}
	return i
}

// StepIndex returns the index one slot away from active in direction dir.
// Only the sign of dir is used.
func (s Snapper) StepIndex(active, dir int) int {
	if s.n == 0 {
		return 0
	}
	return ((active+sign(dir))%s.n + s.n) % s.n
}

// Clamp maps any integer onto [0, N) by modulo.
func (s Snapper) Clamp(i int) int {
	if s.n == 0 {
		return 0
	}
	return (i%s.n + s.n) % s.n
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Normalize360 wraps an angle in degrees to [0, 360).
func Normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// ShortestDelta returns the signed angle in (-180, 180] that rotates from
// onto to.
func ShortestDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}
