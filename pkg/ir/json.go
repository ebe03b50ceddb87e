// Package ir defines the tool-independent intermediate representation
// emitted by every format parser, and its canonical JSON encoding.
//
// All coordinates are millimetres, Y-down, origin top-left. Floats are
// rounded to exactly six decimal digits before serialization so golden
// snapshots stay stable across runs and across source tools.
package ir

import (
	"encoding/json"
	"math"
)

// F is a float64 that always serializes rounded to 6 decimal digits.
type F float64

func round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}

// MarshalJSON implements json.Marshaler.
func (f F) MarshalJSON() ([]byte, error) {
	return json.Marshal(round6(float64(f)))
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *F) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = F(v)
	return nil
}

// Point is a 2D coordinate, serialized as the two-element array [x, y]
// used throughout the Interactive HTML BOM schema.
type Point struct {
	X, Y float64
}

// MarshalJSON implements json.Marshaler.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{round6(p.X), round6(p.Y)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v [2]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.X, p.Y = v[0], v[1]
	return nil
}

// Size2 is a [width, height] pair.
type Size2 [2]F

// roundPoints rounds every coordinate of a polyline/contour to 6 decimals.
func roundPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{round6(p.X), round6(p.Y)}
	}
	return out
}
