package seekbutton

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcRunsFromThreeToTwelveOClock(t *testing.T) {
	segments := arcSegmentsFor(fyne.NewSize(64, 64))
	require.Len(t, segments, arcSegments)

	first := segments[0].from
	last := segments[len(segments)-1].to
	assert.InDelta(t, 64, first.X, 0.01)
	assert.InDelta(t, 32, first.Y, 0.01)
	assert.InDelta(t, 32, last.X, 0.01)
	assert.InDelta(t, 0, last.Y, 0.01)

	for index := 1; index < len(segments); index++ {
		assert.Equal(t, segments[index-1].to, segments[index].from, "arc is continuous")
	}
}

func TestArrowHeadsPointRight(t *testing.T) {
	segments := arrowHeadSegmentsFor(fyne.NewSize(100, 100))
	require.Len(t, segments, arrowHeadCount*3)

	assert.InDelta(t, 60, segments[0].from.X, 0.01)
	assert.InDelta(t, 90, segments[3].from.X, 0.01)
	assert.InDelta(t, -22.5, segments[0].to.Y, 0.01)
}

func TestRotateClockwise(t *testing.T) {
	center := fyne.NewPos(0, 0)
	rotated := rotate(fyne.NewPos(10, 0), center, 90)
	assert.InDelta(t, 0, rotated.X, 1e-4)
	assert.InDelta(t, 10, rotated.Y, 1e-4)

	assert.Equal(t, fyne.NewPos(3, 4), rotate(fyne.NewPos(3, 4), center, 0))
}

func TestLabelOffsetScalesWithWidth(t *testing.T) {
	assert.InDelta(t, 80, labelOffset(80, 44), 1e-4)
	assert.InDelta(t, 160, labelOffset(80, 88), 1e-4)
}
