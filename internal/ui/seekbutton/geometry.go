package seekbutton

import (
	"math"

	"fyne.io/fyne/v2"
)

const (
	arcSweepDegrees  = 270
	arcSegments      = 27
	arrowHeadCount   = 2
	arrowHeadFactor  = 0.3
	arrowHeadStartX  = 0.6
	arrowHeadSpread  = 0.75
	labelFontFactor  = 0.4
	offsetReferenceW = 44
)

type segment struct {
	from fyne.Position
	to   fyne.Position
}

// arcSegmentsFor returns the open circle of the arrow, starting at three
// o'clock and sweeping clockwise to twelve o'clock.
func arcSegmentsFor(size fyne.Size) []segment {
	center := fyne.NewPos(size.Width/2, size.Height/2)
	radius := float64(size.Height) / 2
	points := make([]fyne.Position, 0, arcSegments+1)
	for step := 0; step <= arcSegments; step++ {
		angle := float64(step) / arcSegments * arcSweepDegrees * math.Pi / 180
		points = append(points, fyne.NewPos(
			center.X+float32(radius*math.Cos(angle)),
			center.Y+float32(radius*math.Sin(angle)),
		))
	}

	segments := make([]segment, 0, arcSegments)
	for index := 1; index < len(points); index++ {
		segments = append(segments, segment{from: points[index-1], to: points[index]})
	}
	return segments
}

// arrowHeadSegmentsFor returns the outline of the double arrow head sitting
// on the top edge, pointing right.
func arrowHeadSegmentsFor(size fyne.Size) []segment {
	head := float64(size.Width) * arrowHeadFactor
	x := float64(size.Width) * arrowHeadStartX
	segments := make([]segment, 0, arrowHeadCount*3)
	for i := 0; i < arrowHeadCount; i++ {
		shift := float64(i) * head
		tip := fyne.NewPos(float32(x+shift), 0)
		upper := fyne.NewPos(float32(x-head+shift), float32(-head*arrowHeadSpread))
		lower := fyne.NewPos(float32(x-head+shift), float32(head*arrowHeadSpread))
		segments = append(segments,
			segment{from: tip, to: upper},
			segment{from: upper, to: lower},
			segment{from: lower, to: tip},
		)
	}
	return segments
}

// rotate turns point clockwise around center by degrees.
func rotate(point, center fyne.Position, degrees float64) fyne.Position {
	if degrees == 0 {
		return point
	}
	radians := degrees * math.Pi / 180
	sin, cos := math.Sincos(radians)
	dx := float64(point.X - center.X)
	dy := float64(point.Y - center.Y)
	return fyne.NewPos(
		center.X+float32(dx*cos-dy*sin),
		center.Y+float32(dx*sin+dy*cos),
	)
}

// labelOffset scales the accumulation offset to the control width.
func labelOffset(offset float64, width float32) float32 {
	return float32(offset) * width / offsetReferenceW
}
