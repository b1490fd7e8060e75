package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":      Linear,
		"ease-in-out": EaseInOut,
		"ease-out":    TimingCurve(0, 0, 0.2, 1),
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, curve(0))
			assert.Equal(t, 1.0, curve(1))
			assert.Equal(t, 0.0, curve(-0.5), "input below range clamps")
			assert.Equal(t, 1.0, curve(1.5), "input above range clamps")
		})
	}
}

func TestCurvesAreMonotonic(t *testing.T) {
	for _, curve := range []Curve{Linear, EaseInOut, TimingCurve(0, 0, 0.2, 1)} {
		previous := 0.0
		for step := 1; step <= 100; step++ {
			value := curve(float64(step) / 100)
			assert.GreaterOrEqual(t, value, previous-1e-9)
			previous = value
		}
	}
}

func TestEaseInOutIsSymmetric(t *testing.T) {
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-6)
	for _, progress := range []float64{0.1, 0.25, 0.4} {
		assert.InDelta(t, 1, EaseInOut(progress)+EaseInOut(1-progress), 1e-6)
	}
	assert.Less(t, EaseInOut(0.2), 0.2, "starts slower than linear")
}

func TestTimingCurveEaseOut(t *testing.T) {
	easeOut := TimingCurve(0, 0, 0.2, 1)
	for _, progress := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.Greater(t, easeOut(progress), progress, "ease-out leads linear at %v", progress)
	}
}

func TestTimingCurveMatchesLinearControlPoints(t *testing.T) {
	straight := TimingCurve(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, progress := range []float64{0.1, 0.33, 0.5, 0.8} {
		assert.InDelta(t, progress, straight(progress), 1e-6)
	}
}

func TestNilCurveApplyIsLinear(t *testing.T) {
	var curve Curve
	assert.Equal(t, 0.25, curve.apply(0.25))
	assert.Equal(t, 1.0, curve.apply(3))
}

func TestTimingCurveReferenceValues(t *testing.T) {
	cases := []struct {
		name     string
		curve    Curve
		progress float64
		want     float64
	}{
		{"ease-in-out quarter", EaseInOut, 0.25, 0.1291619310},
		{"ease-in-out three quarters", EaseInOut, 0.75, 0.8708380690},
		{"accumulation half", TimingCurve(0, 0, 0.2, 1), 0.5, 0.8392450577},
		{"accumulation tenth", TimingCurve(0, 0, 0.2, 1), 0.1, 0.3038475773},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.curve(tc.progress), 1e-6)
		})
	}
}
