package eagle

import (
	"math"

	"github.com/meawoppl/pastebom.com/pkg/geomutil"
)

// chordAngleToArc converts Eagle's chord+angle arc representation (start
// point, end point, signed sweep angle in degrees, positive
// counter-clockwise from start to end) into center/radius/startangle/
// endangle form (spec §4.4: "The curve attribute on wire expresses an arc
// by chord + angle; convert to a center-radius-sweep arc drawing").
//
// start and end arrive already converted by toMM, i.e. in the IR's Y-down
// frame, while sweepDeg keeps Eagle's Y-up sense. A positive sweep therefore
// runs clockwise in IR space, so the returned counter-clockwise arc begins
// at end for a positive sweep and at start for a negative one.
//
// radius = chordLen / (2*sin(|sweep|/2)); the center sits on the chord's
// perpendicular bisector, offset to the side the sweep direction and
// magnitude (minor vs. major arc) imply. Because the sweep magnitude is
// already known exactly from the source data, StartAngle/EndAngle are
// derived by adding the sweep directly rather than by re-measuring it
// from the endpoints, which keeps the conversion exact instead of
// approximate.
func chordAngleToArc(start, end geomutil.Point, sweepDeg float64) (center geomutil.Point, radius, startAngle, endAngle float64) {
	dx, dy := end.X-start.X, end.Y-start.Y
	chordLen := math.Hypot(dx, dy)
	sweep := sweepDeg * math.Pi / 180
	if chordLen < 1e-9 || math.Abs(sweep) < 1e-9 {
		return start, 0, 0, 0
	}

	radius = chordLen / (2 * math.Sin(math.Abs(sweep)/2))
	mid := geomutil.Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}
	h := math.Sqrt(math.Max(radius*radius-(chordLen/2)*(chordLen/2), 0))
	// Unit vector perpendicular to the chord.
	ux, uy := -dy/chordLen, dx/chordLen

	// A minor arc with positive sweep (0 < sweep < 180) has its center at
	// mid - u*h; a major arc (sweep > 180) puts it on the other side.
	// Negative sweep mirrors both cases.
	sign := 1.0
	if math.Abs(sweepDeg) > 180 {
		sign = -1
	}
	if sweepDeg < 0 {
		sign = -sign
	}
	center = geomutil.Point{X: mid.X - sign*ux*h, Y: mid.Y - sign*uy*h}

	if sweepDeg >= 0 {
		startAngle = geomutil.AngleOf(center, end)
		endAngle = startAngle + sweepDeg
	} else {
		startAngle = geomutil.AngleOf(center, start)
		endAngle = startAngle - sweepDeg
	}
	return center, radius, startAngle, endAngle
}
