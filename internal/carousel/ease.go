package carousel

import "math"

// EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(p float64) float64

// Linear is the identity ease.
func Linear(p float64) float64 { return clamp01(p) }

// Power2Out decelerates quadratically.
func Power2Out(p float64) float64 {
	p = clamp01(p)
	return 1 - (1-p)*(1-p)
}

// CircOut decelerates along a quarter circle.
func CircOut(p float64) float64 {
	p = clamp01(p)
	return math.Sqrt(1 - (p-1)*(p-1))
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}
