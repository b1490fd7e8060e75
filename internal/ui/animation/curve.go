package animation

import (
	"math"

	"fyne.io/fyne/v2"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(float64) float64

// Linear is the identity curve.
func Linear(progress float64) float64 {
	return clampUnit(progress)
}

// EaseInOut is the standard ease-in-out timing curve.
var EaseInOut = TimingCurve(0.42, 0, 0.58, 1)

// TimingCurve returns a cubic Bézier timing curve through (0,0), (x1,y1),
// (x2,y2) and (1,1).
func TimingCurve(x1, y1, x2, y2 float64) Curve {
	bezier := newUnitBezier(x1, y1, x2, y2)
	return func(progress float64) float64 {
		if progress <= 0 {
			return 0
		}
		if progress >= 1 {
			return 1
		}
		return bezier.sampleY(bezier.solveX(progress))
	}
}

func (curve Curve) apply(progress float64) float64 {
	if curve == nil {
		return Linear(progress)
	}
	return curve(clampUnit(progress))
}

func (curve Curve) forFyne() fyne.AnimationCurve {
	return func(progress float32) float32 {
		return float32(curve.apply(float64(progress)))
	}
}

// unitBezier is the cubic timing function with fixed end points (0,0) and
// (1,1), in polynomial form as used by WebKit's UnitBezier: x(t) and y(t)
// are evaluated with Horner's rule and x is inverted by Newton iteration,
// falling back to bisection where the slope flattens.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(x1, y1, x2, y2 float64) unitBezier {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	return unitBezier{
		ax: 1 - cx - bx, bx: bx, cx: cx,
		ay: 1 - cy - by, by: by, cy: cy,
	}
}

func (bezier unitBezier) sampleX(t float64) float64 {
	return ((bezier.ax*t+bezier.bx)*t + bezier.cx) * t
}

func (bezier unitBezier) sampleY(t float64) float64 {
	return ((bezier.ay*t+bezier.by)*t + bezier.cy) * t
}

func (bezier unitBezier) sampleDerivativeX(t float64) float64 {
	return (3*bezier.ax*t+2*bezier.bx)*t + bezier.cx
}

// solveX finds the curve parameter whose x coordinate is x.
func (bezier unitBezier) solveX(x float64) float64 {
	const epsilon = 1e-7

	t := x
	for i := 0; i < 8; i++ {
		delta := bezier.sampleX(t) - x
		if math.Abs(delta) < epsilon {
			return t
		}
		slope := bezier.sampleDerivativeX(t)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= delta / slope
	}

	low, high := 0.0, 1.0
	t = x
	for low < high {
		sample := bezier.sampleX(t)
		if math.Abs(sample-x) < epsilon {
			return t
		}
		if x > sample {
			low = t
		} else {
			high = t
		}
		t = (high-low)/2 + low
		if high-low < epsilon {
			break
		}
	}
	return t
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
