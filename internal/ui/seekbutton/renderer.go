package seekbutton

import (
	"image/color"
	"strconv"

	"seekbutton/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

const (
	minSide         = float32(64)
	strokeReference = float32(3)
)

type renderer struct {
	button       *SeekButton
	background   *canvas.Circle
	arc          []*canvas.Line
	heads        []*canvas.Line
	duration     *canvas.Text
	accumulation *canvas.Text
	objects      []fyne.CanvasObject
	size         fyne.Size
	last         renderState
	drawn        bool
}

// renderState is everything the drawing depends on.
type renderState struct {
	values     animation.Values
	size       fyne.Size
	focused    bool
	foreground color.Color
	focus      color.Color
}

// part is a set of object groups that need redrawing.
type part uint8

const (
	partBackground part = 1 << iota
	partGlyph
	partDuration
	partAccumulation

	partAll = partBackground | partGlyph | partDuration | partAccumulation
)

// changed reports which groups differ between prev and next.
func (prev renderState) changed(next renderState) part {
	if prev.size != next.size || prev.foreground != next.foreground || prev.focus != next.focus {
		return partAll
	}
	var parts part
	if prev.values.BackgroundOpacity != next.values.BackgroundOpacity || prev.focused != next.focused {
		parts |= partBackground
	}
	if prev.values.Rotation != next.values.Rotation {
		parts |= partGlyph
	}
	if prev.values.DurationOpacity != next.values.DurationOpacity {
		parts |= partDuration
	}
	if prev.values.AccumulationOpacity != next.values.AccumulationOpacity ||
		prev.values.AccumulationOffset != next.values.AccumulationOffset ||
		prev.values.AccumulationText != next.values.AccumulationText {
		parts |= partAccumulation
	}
	return parts
}

func newRenderer(button *SeekButton) *renderer {
	background := canvas.NewCircle(color.Transparent)

	duration := canvas.NewText(strconv.Itoa(button.Interval()), color.Black)
	accumulation := canvas.NewText("", color.Black)
	accumulation.TextStyle = fyne.TextStyle{Bold: true}

	r := &renderer{
		button:       button,
		background:   background,
		arc:          newLines(arcSegments),
		heads:        newLines(arrowHeadCount * 3),
		duration:     duration,
		accumulation: accumulation,
	}

	r.objects = append(r.objects, background)
	for _, line := range r.arc {
		r.objects = append(r.objects, line)
	}
	for _, line := range r.heads {
		r.objects = append(r.objects, line)
	}
	r.objects = append(r.objects, duration, accumulation)
	r.apply(r.state())
	return r
}

func newLines(count int) []*canvas.Line {
	lines := make([]*canvas.Line, count)
	for index := range lines {
		lines[index] = canvas.NewLine(color.Black)
	}
	return lines
}

func (r *renderer) Destroy() {}

func (r *renderer) Layout(size fyne.Size) {
	r.size = size
	r.apply(r.state())
}

func (r *renderer) MinSize() fyne.Size {
	return fyne.NewSize(minSide, minSide)
}

func (r *renderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Refresh redraws only the object groups whose inputs changed since the
// last refresh. Every store write lands here.
func (r *renderer) Refresh() {
	next := r.state()
	parts := partAll
	if r.drawn {
		parts = r.last.changed(next)
	}
	r.apply(next)
	r.last = next
	r.drawn = true

	if parts&partBackground != 0 {
		r.background.Refresh()
	}
	if parts&partGlyph != 0 {
		refreshLines(r.arc)
		refreshLines(r.heads)
	}
	if parts&partDuration != 0 {
		r.duration.Refresh()
	}
	if parts&partAccumulation != 0 {
		r.accumulation.Refresh()
	}
}

func (r *renderer) state() renderState {
	return renderState{
		values:     r.button.Values(),
		size:       r.size,
		focused:    r.button.focused,
		foreground: theme.Color(theme.ColorNameForeground),
		focus:      theme.Color(theme.ColorNameFocus),
	}
}

func refreshLines(lines []*canvas.Line) {
	for _, line := range lines {
		line.Refresh()
	}
}

func (r *renderer) apply(state renderState) {
	values := state.values
	foreground := state.foreground
	size := r.size
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	square := fyne.NewSize(side, side)
	origin := fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)
	center := fyne.NewPos(origin.X+side/2, origin.Y+side/2)

	r.background.FillColor = withOpacity(foreground, values.BackgroundOpacity)
	if state.focused {
		r.background.StrokeColor = state.focus
		r.background.StrokeWidth = 2
	} else {
		r.background.StrokeColor = color.Transparent
		r.background.StrokeWidth = 0
	}
	r.background.Move(origin)
	r.background.Resize(square)

	stroke := strokeReference * side / minSide
	if stroke < 1 {
		stroke = 1
	}
	placeLines(r.arc, arcSegmentsFor(square), origin, center, values.Rotation, foreground, stroke)
	placeLines(r.heads, arrowHeadSegmentsFor(square), origin, center, values.Rotation, foreground, stroke)

	textSize := side * labelFontFactor
	r.duration.TextSize = textSize
	r.duration.Color = withOpacity(foreground, values.DurationOpacity)
	centerText(r.duration, center, 0)

	r.accumulation.Text = values.AccumulationText
	r.accumulation.TextSize = textSize
	r.accumulation.Color = withOpacity(foreground, values.AccumulationOpacity)
	centerText(r.accumulation, center, labelOffset(values.AccumulationOffset, side))
}

func placeLines(lines []*canvas.Line, segments []segment, origin, center fyne.Position, degrees float64, stroke color.Color, width float32) {
	for index, line := range lines {
		if index >= len(segments) {
			line.Hide()
			continue
		}
		from := rotate(segments[index].from.Add(origin), center, degrees)
		to := rotate(segments[index].to.Add(origin), center, degrees)
		line.Position1 = from
		line.Position2 = to
		line.StrokeColor = stroke
		line.StrokeWidth = width
	}
}

func centerText(text *canvas.Text, center fyne.Position, offsetX float32) {
	measured := fyne.MeasureText(text.Text, text.TextSize, text.TextStyle)
	text.Move(fyne.NewPos(center.X-measured.Width/2+offsetX, center.Y-measured.Height/2))
	text.Resize(measured)
}

func withOpacity(base color.Color, opacity float64) color.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	nrgba := color.NRGBAModel.Convert(base).(color.NRGBA)
	nrgba.A = uint8(float64(nrgba.A) * opacity)
	return nrgba
}
