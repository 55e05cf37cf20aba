package base

// A single row of the trace file. Only the two selected columns are
// kept, as raw text.
type Record struct {
	Line      int // 1-based line number in the source file
	PCM       string
	Timestamp string
}

type Trace struct {
	Filename  string
	Records   []Record
	ShortRows int // Rows lacking one or both of the selected columns
}

func (t *Trace) Len() int {
	return len(t.Records)
}

func (t *Trace) PCMColumn() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.PCM
	}
	return out
}

func (t *Trace) TimestampColumn() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Timestamp
	}
	return out
}

// Series holds the numeric trace. All slices have the same length and
// are aligned by row. Missing cells are NaN.
type Series struct {
	Ticks     []float64 // Raw timestamp counter
	TimeMs    []float64 // Timestamp converted to milliseconds
	Amplitude []float64 // PCM value
}

func (s *Series) Len() int {
	return len(s.Amplitude)
}

// A point is valid when both time and amplitude are present and finite.
// Cells like "inf" parse, but can't be placed on an axis.
func (s *Series) Valid(i int) bool {
	return IsPlottable(s.TimeMs[i]) && IsPlottable(s.Amplitude[i])
}

// Returns the time and amplitude of all valid points
func (s *Series) ValidPoints() ([]float64, []float64) {
	xs := make([]float64, 0, s.Len())
	ys := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if s.Valid(i) {
			xs = append(xs, s.TimeMs[i])
			ys = append(ys, s.Amplitude[i])
		}
	}
	return xs, ys
}

// Bounds returns the extent of the valid points. ok is false when
// there are none.
func (s *Series) Bounds() (xMin, xMax, yMin, yMax float64, ok bool) {
	for i := 0; i < s.Len(); i++ {
		if !s.Valid(i) {
			continue
		}
		x, y := s.TimeMs[i], s.Amplitude[i]
		if !ok {
			xMin, xMax, yMin, yMax = x, x, y, y
			ok = true
			continue
		}
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	return
}
