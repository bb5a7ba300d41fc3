package app

import (
	"dish-wheel.klederson.com/internal/config"
	"dish-wheel.klederson.com/internal/ui"
	"dish-wheel.klederson.com/internal/wheel"
)

// regions is the screen layout for one terminal size. View and mouse
// handling both derive positions from it so hit testing matches drawing.
type regions struct {
	narrow bool

	bodyH int

	wheelW    int
	wheel     wheel.Geometry
	wheelOrgX int // Screen cell of wheel content column 0
	wheelOrgY int

	detailX, detailY int
	detailW, detailH int

	listH int
}

func computeRegions(width, height int) regions {
	r := regions{narrow: width < config.NarrowWidth}

	r.bodyH = height - 2
	if r.bodyH < 8 {
		r.bodyH = 8
	}

	if r.narrow {
		r.detailX, r.detailY = 0, 1
		r.detailW, r.detailH = width, r.bodyH
		return r
	}

	r.wheelW = width * 3 / 5
	sideW := width - r.wheelW
	if sideW < 30 {
		sideW = 30
		r.wheelW = width - sideW
	}

	innerW := r.wheelW - 2
	innerH := r.bodyH - 3 // border plus legend line
	r.wheel = wheel.NewGeometry(innerW, innerH)
	r.wheelOrgX, r.wheelOrgY = 1, 2

	r.detailX, r.detailY = r.wheelW, 1
	r.detailW = sideW
	r.detailH = r.bodyH * 2 / 3
	r.listH = r.bodyH - r.detailH
	return r
}

// wheelCell converts a screen position to wheel content coordinates.
func (r regions) wheelCell(x, y int) (col, row int) {
	return x - r.wheelOrgX, y - r.wheelOrgY
}

// inWheel reports whether a screen position is on the wheel.
func (r regions) inWheel(x, y int) bool {
	if r.narrow {
		return false
	}
	col, row := r.wheelCell(x, y)
	return r.wheel.Contains(col, row)
}

// spoon returns -1 or +1 when the position is on the previous or next
// control, 0 otherwise.
func (r regions) spoon(x, y int) int {
	if y != r.detailY+ui.ControlsRow(r.detailH) {
		return 0
	}
	if x < r.detailX || x >= r.detailX+r.detailW {
		return 0
	}
	if x < r.detailX+r.detailW/2 {
		return -1
	}
	return 1
}
