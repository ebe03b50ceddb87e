// Package geomutil absorbs every per-tool coordinate convention (units,
// origin, winding, Y orientation) at parse time so the IR is the single
// canonical coordinate system downstream code never has to reason about
// "which EDA tool produced this".
package geomutil

import "math"

// Unit conversion constants. KiCad stores coordinates in millimetres
// directly in recent file versions, but its internal engine (and the
// values this package's callers most often receive from older tooling)
// uses nanometres and decidegrees; Altium uses 1/10000 mil integer units.
const (
	NanometersToMM       = 1e-6
	MMToNanometers       = 1e6
	DecidegreesToDegrees = 0.1
	DegreesToDecidegrees = 10.0

	// MilsToMM converts EasyEDA's mil-based coordinates to millimetres.
	MilsToMM = 0.0254

	// AltiumUnitToMM converts Altium's 1/10000-mil integer coordinate unit
	// to millimetres (spec §4.5).
	AltiumUnitToMM = 0.0000254
)

// MMToAltiumUnit is the inverse of AltiumUnitToMM, used by the bijectivity
// test property in spec §8 ("round(mm/0.0000254) = original_unit").
func MMToAltiumUnit(mm float64) int64 {
	return int64(math.Round(mm / AltiumUnitToMM))
}

// Point is a plain 2D coordinate used internally by parsers before
// lowering to ir.Point.
type Point struct {
	X, Y float64
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Rotate rotates p by angleDeg counter-clockwise around the origin.
func (p Point) Rotate(angleDeg float64) Point {
	r := angleDeg * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// FlipY negates the Y coordinate, used to reorient sources (Altium) whose
// native coordinate system has Y pointing up into the IR's Y-down system.
func (p Point) FlipY() Point { return Point{p.X, -p.Y} }

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
