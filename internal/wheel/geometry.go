package wheel

import (
	"math"

	"dish-wheel.klederson.com/internal/carousel"
	"dish-wheel.klederson.com/internal/config"
)

// Geometry places the wheel inside a width x height block of cells.
type Geometry struct {
	Width, Height int
	CX, CY        int
	Radius        float64 // In columns; rows are scaled by config.AspectRatio
}

// NewGeometry fits the largest circle into the block, leaving a row above
// for the viewing marker.
func NewGeometry(width, height int) Geometry {
	cx := width / 2
	cy := height / 2
	rows := min(cy-1, height-1-cy)
	radius := math.Min(float64(cx-3), float64(rows)/config.AspectRatio)
	if radius < 3 {
		radius = 3
	}
	return Geometry{Width: width, Height: height, CX: cx, CY: cy, Radius: radius}
}

// Path returns the wheel path in column units, centered on the origin.
func (g Geometry) Path() carousel.Circle {
	return carousel.Circle{R: g.Radius}
}

// Cell maps a path angle to the nearest cell.
func (g Geometry) Cell(angle float64) (col, row int) {
	x, y := g.Path().PointAt(angle)
	return g.CX + int(math.Round(x)), g.CY + int(math.Round(y*config.AspectRatio))
}

// Contains reports whether a cell lies on or inside the wheel ring.
func (g Geometry) Contains(col, row int) bool {
	return CellDistance(col, row, g.CX, g.CY) <= g.Radius+1.5
}

// Angle returns the path angle of a cell as seen from the wheel center.
func (g Geometry) Angle(col, row int) float64 {
	return CellAngle(col, row, g.CX, g.CY)
}

// CellDistance computes the distance from a cell to the wheel center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the angle from center to a cell in degrees,
// clockwise from the right (the same convention as carousel.Circle).
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return carousel.Normalize360(math.Atan2(dy, dx) * 180 / math.Pi)
}

// RingChar returns the character that best follows the ring at angle.
func RingChar(angle float64) rune {
	sector := int(math.Round(carousel.Normalize360(angle)/45)) % 8
	switch sector {
	case 0, 4: // Right, left
		return '|'
	case 1, 5: // Lower right, upper left
		return '/'
	case 2, 6: // Bottom, top
		return '-'
	case 3, 7: // Lower left, upper right
		return '\\'
	default:
		return '.'
	}
}
