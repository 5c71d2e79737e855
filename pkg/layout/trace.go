package layout

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// PenLift is the sentinel coordinate separating disjoint segments in a
// [Trace].
var PenLift = math.NaN()

// IsPenLift reports whether v is the pen-lift sentinel.
func IsPenLift(v float64) bool { return math.IsNaN(v) }

// Point is a trace coordinate pair.
type Point struct {
	X, Y float64
}

// Segment is a single straight edge between two points.
type Segment struct {
	From, To Point
}

// Trace is a polyline with pen-lift sentinels. X and Y always have the same
// length, and sentinels appear at the same indices in both.
type Trace struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func (t *Trace) add(from, to Position) {
	t.X = append(t.X, float64(from.X), float64(to.X), PenLift)
	t.Y = append(t.Y, float64(from.Y), float64(to.Y), PenLift)
}

// Len returns the number of coordinates, sentinels included.
func (t Trace) Len() int { return len(t.X) }

// Segments splits the trace at pen-lifts and returns every pair of
// consecutive points that are not separated by a sentinel.
func (t Trace) Segments() []Segment {
	var out []Segment
	for i := 1; i < len(t.X) && i < len(t.Y); i++ {
		if IsPenLift(t.X[i-1]) || IsPenLift(t.X[i]) {
			continue
		}
		out = append(out, Segment{
			From: Point{X: t.X[i-1], Y: t.Y[i-1]},
			To:   Point{X: t.X[i], Y: t.Y[i]},
		})
	}
	return out
}

// MarshalJSON encodes pen-lifts as null, which JSON has no NaN for.
func (t Trace) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"x":`)
	writeCoords(&buf, t.X)
	buf.WriteString(`,"y":`)
	writeCoords(&buf, t.Y)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes null coordinates back into pen-lifts.
func (t *Trace) UnmarshalJSON(data []byte) error {
	var raw struct {
		X []*float64 `json:"x"`
		Y []*float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.X = fromNullable(raw.X)
	t.Y = fromNullable(raw.Y)
	return nil
}

// Nullable returns coords with pen-lifts replaced by nil, the form most
// plotting libraries expect.
func Nullable(coords []float64) []*float64 {
	out := make([]*float64, len(coords))
	for i, v := range coords {
		if IsPenLift(v) {
			continue
		}
		out[i] = &coords[i]
	}
	return out
}

func fromNullable(coords []*float64) []float64 {
	out := make([]float64, len(coords))
	for i, v := range coords {
		if v == nil {
			out[i] = PenLift
			continue
		}
		out[i] = *v
	}
	return out
}

func writeCoords(buf *bytes.Buffer, coords []float64) {
	buf.WriteByte('[')
	for i, v := range coords {
		if i > 0 {
			buf.WriteByte(',')
		}
		if IsPenLift(v) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	buf.WriteByte(']')
}
