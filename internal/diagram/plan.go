package diagram

import (
	"encoding/json"
	"math"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/grasshopper"
)

// Segment is a member projected onto the XY plane
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Type   string
}

// IsPoint reports whether the segment projects to a single point, as a
// vertical column does.
func (s Segment) IsPoint() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

// Layer is one kind of member drawn with a common style
type Layer struct {
	Name     string
	Segments []Segment
}

// Bounds is the XY extent of a set of layers
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width of the bounds; at least 1 so a degenerate extent still scales.
func (b Bounds) Width() float64 {
	return math.Max(b.MaxX-b.MinX, 1)
}

// Height of the bounds; at least 1.
func (b Bounds) Height() float64 {
	return math.Max(b.MaxY-b.MinY, 1)
}

// LayerFromDocument projects every member of an output document onto the XY plane.
// Z is ignored.
func LayerFromDocument(name string, d *grasshopper.Document) Layer {
	layer := Layer{Name: name, Segments: make([]Segment, 0, d.Len())}
	for i := range d.Types {
		layer.Segments = append(layer.Segments, Segment{
			X1:   float(d.StartPts[i].X),
			Y1:   float(d.StartPts[i].Y),
			X2:   float(d.EndPts[i].X),
			Y2:   float(d.EndPts[i].Y),
			Type: d.Types[i],
		})
	}
	return layer
}

// PlanBounds returns the extent of all segments. ok is false when there are none.
func PlanBounds(layers []Layer) (b Bounds, ok bool) {
	b = Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, l := range layers {
		for _, s := range l.Segments {
			b.MinX = math.Min(b.MinX, math.Min(s.X1, s.X2))
			b.MaxX = math.Max(b.MaxX, math.Max(s.X1, s.X2))
			b.MinY = math.Min(b.MinY, math.Min(s.Y1, s.Y2))
			b.MaxY = math.Max(b.MaxY, math.Max(s.Y1, s.Y2))
			ok = true
		}
	}
	if !ok {
		return Bounds{}, false
	}
	return b, true
}

func float(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}
