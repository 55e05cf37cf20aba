package viewer

import (
	"image"
	"math"

	"github.com/handegar/swvplot/base"
	"github.com/handegar/swvplot/utils"
)

// Braille cells hold 2x4 dots
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
)

// Projection maps data values onto braille dots inside 'Area' (given in
// terminal cells).
type Projection struct {
	Area       image.Rectangle
	XMin, XMax float64
	YMin, YMax float64
}

func (p Projection) dotWidth() int {
	return p.Area.Dx() * dotsPerCellX
}

func (p Projection) dotHeight() int {
	return p.Area.Dy() * dotsPerCellY
}

func (p Projection) X(t float64) int {
	span := p.XMax - p.XMin
	if span <= 0 {
		return p.Area.Min.X * dotsPerCellX
	}
	return p.Area.Min.X*dotsPerCellX +
		int(math.Round((t-p.XMin)/span*float64(p.dotWidth()-1)))
}

func (p Projection) Y(v float64) int {
	span := p.YMax - p.YMin
	bottom := p.Area.Min.Y*dotsPerCellY + p.dotHeight() - 1
	if span <= 0 {
		return bottom
	}
	return bottom - int(math.Round((v-p.YMin)/span*float64(p.dotHeight()-1)))
}

func (p Projection) Point(t, v float64) image.Point {
	return image.Pt(p.X(t), p.Y(v))
}

// Terminal cell holding the dot
func CellOf(dot image.Point) image.Point {
	return image.Pt(dot.X/dotsPerCellX, dot.Y/dotsPerCellY)
}

// Polylines returns the connected runs of the series in dot
// coordinates. A missing value or a point outside [XMin, XMax] ends a
// run. Consecutive points in the same dot column are merged to the
// vertical extent they cover.
func Polylines(series *base.Series, p Projection) [][]image.Point {
	var runs [][]image.Point
	var run []image.Point

	flush := func() {
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}

	for i := 0; i < series.Len(); i++ {
		if !series.Valid(i) {
			flush()
			continue
		}
		t := series.TimeMs[i]
		if t < p.XMin || t > p.XMax {
			flush()
			continue
		}

		pt := p.Point(t, series.Amplitude[i])
		n := len(run)
		if n > 0 && run[n-1] == pt {
			continue
		}
		if n >= 2 && run[n-1].X == pt.X && run[n-2].X == pt.X {
			a, b := run[n-2].Y, run[n-1].Y
			if pt.Y >= min(a, b) && pt.Y <= max(a, b) {
				continue
			}
			if (b >= a && pt.Y > b) || (b <= a && pt.Y < b) {
				run[n-1] = pt
				continue
			}
		}
		run = append(run, pt)
	}
	flush()

	return runs
}

// Bounds of the valid points with a time inside [xMin, xMax]
func visibleAmplitudeRange(series *base.Series, xMin, xMax float64) (float64, float64, bool) {
	lo, hi, ok := 0.0, 0.0, false
	for i := 0; i < series.Len(); i++ {
		if !series.Valid(i) {
			continue
		}
		t, v := series.TimeMs[i], series.Amplitude[i]
		if t < xMin || t > xMax {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

// Time window
type View struct {
	Min, Max float64
}

func (v View) Span() float64 {
	return v.Max - v.Min
}

// Full time extent of the series. An empty series gives [0, 1].
func FullView(series *base.Series) View {
	xMin, xMax, _, _, ok := series.Bounds()
	if !ok {
		return View{0, 1}
	}
	if xMax <= xMin {
		return View{xMin - 0.5, xMin + 0.5}
	}
	return View{xMin, xMax}
}

// Zoom scales the window around its center by 'factor' (< 1 zooms in)
// and keeps it inside 'full'.
func Zoom(v View, full View, factor float64) View {
	center := (v.Min + v.Max) / 2
	half := v.Span() * factor / 2
	if minHalf := full.Span() * 1e-6; half < minHalf {
		half = minHalf
	}
	return clampView(View{center - half, center + half}, full)
}

// Pan moves the window by 'fraction' of its width.
func Pan(v View, full View, fraction float64) View {
	d := v.Span() * fraction
	return clampView(View{v.Min + d, v.Max + d}, full)
}

func clampView(v View, full View) View {
	if v.Span() >= full.Span() {
		return full
	}
	if v.Min < full.Min {
		v.Max += full.Min - v.Min
		v.Min = full.Min
	}
	if v.Max > full.Max {
		v.Min -= v.Max - full.Max
		v.Max = full.Max
	}
	return v
}

type tick struct {
	Pos   int // Cell column or row
	Label string
}

// Ticks along the x axis positioned on terminal columns
func xTicks(p Projection, n int) []tick {
	values, step := utils.NiceTicks(p.XMin, p.XMax, n)
	out := make([]tick, 0, len(values))
	for _, v := range values {
		out = append(out, tick{
			Pos:   CellOf(image.Pt(p.X(v), 0)).X,
			Label: utils.FormatTick(v, step),
		})
	}
	return out
}

// Ticks along the y axis positioned on terminal rows
func yTicks(p Projection, n int) []tick {
	values, step := utils.NiceTicks(p.YMin, p.YMax, n)
	out := make([]tick, 0, len(values))
	for _, v := range values {
		out = append(out, tick{
			Pos:   CellOf(image.Pt(0, p.Y(v))).Y,
			Label: utils.FormatTick(v, step),
		})
	}
	return out
}

// Lays out tick labels on a single line of 'width' cells starting at
// column 'offset'. Labels are centered on their tick and dropped when
// they would overlap their left neighbour.
func xTickLine(ticks []tick, offset, width int) string {
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	next := 0
	for _, t := range ticks {
		label := []rune(t.Label)
		start := t.Pos - offset - len(label)/2
		if start < next || start < 0 || start+len(label) > width {
			continue
		}
		copy(line[start:], label)
		next = start + len(label) + 1
	}

	return string(line)
}
