package carousel

import "math"

// Circle is the closed path items are placed on, in y-down screen
// coordinates. Progress 0 is the rightmost point and increases clockwise.
type Circle struct {
	CX, CY, R float64
}

// PointAt returns the point at angle degrees clockwise from the rightmost
// point.
func (c Circle) PointAt(angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return c.CX + c.R*math.Cos(rad), c.CY + c.R*math.Sin(rad)
}

// TangentAt returns the direction of travel at angle, in degrees.
func (c Circle) TangentAt(angle float64) float64 {
	return Normalize360(angle + 90)
}

// LayoutOptions controls how items are spread along the path.
type LayoutOptions struct {
	// Start is the phase offset in path units (1 = full turn) applied to
	// every item; -0.25 puts index 0 at the top.
	Start float64
	// AutoRotate orients each item along the path tangent.
	AutoRotate bool
}

// Placement is where one item sits on the path.
type Placement struct {
	Index    int
	Angle    float64 // Degrees clockwise from the path origin, in [0, 360)
	X, Y     float64
	Rotation float64 // Own orientation in degrees; 0 unless AutoRotate
}

// Positions spreads items evenly along path. Item i sits at path progress
// i/N + Start. The result depends only on the item count, path and
// options. An empty list yields nil.
func Positions(items []Item, path Circle, opts LayoutOptions) []Placement {
	n := len(items)
	if n == 0 {
		return nil
	}
	out := make([]Placement, n)
	for i := range items {
		progress := float64(i)/float64(n) + opts.Start
		angle := Normalize360(progress * 360)
		x, y := path.PointAt(angle)
		p := Placement{Index: i, Angle: angle, X: x, Y: y}
		if opts.AutoRotate {
			p.Rotation = path.TangentAt(angle)
		}
		out[i] = p
	}
	return out
}

// ViewAngle is the path angle of the fixed viewing position (the top).
const ViewAngle = 270.0
