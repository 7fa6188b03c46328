package anim

import (
	"math"
)

// Easing maps a linear time fraction in [0, 1] to a progress fraction.
type Easing func(float64) float64

func Linear(t float64) float64 {
	return t
}

var (
	LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)
	FastOutSlowIn   = CubicBezier(0.4, 0, 0.2, 1)
	// ShiftEasing overshoots early and settles slowly; it drives the rotation
	// of pie charts.
	ShiftEasing = CubicBezier(0, 0.75, 0.35, 0.85)
)

const (
	bezierEpsilon    = 1e-6
	bezierIterations = 8
)

// CubicBezier returns the easing of a cubic Bézier curve going from (0, 0) to
// (1, 1) with control points (x1, y1) and (x2, y2), the way CSS timing
// functions are defined.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	var (
		cx = 3 * x1
		bx = 3*(x2-x1) - cx
		ax = 1 - cx - bx
		cy = 3 * y1
		by = 3*(y2-y1) - cy
		ay = 1 - cy - by
	)
	sampleX := func(t float64) float64 {
		return ((ax*t+bx)*t + cx) * t
	}
	sampleY := func(t float64) float64 {
		return ((ay*t+by)*t + cy) * t
	}
	slopeX := func(t float64) float64 {
		return (3*ax*t+2*bx)*t + cx
	}
	solve := func(x float64) float64 {
		t := x
		for i := 0; i < bezierIterations; i++ {
			diff := sampleX(t) - x
			if math.Abs(diff) < bezierEpsilon {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < bezierEpsilon {
				break
			}
			t -= diff / d
		}
		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < bezierEpsilon {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (hi-lo)/2 + lo
			if hi-lo < bezierEpsilon {
				break
			}
		}
		return t
	}
	return func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		default:
			return sampleY(solve(x))
		}
	}
}
