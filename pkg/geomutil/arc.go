package geomutil

import "math"

// CircumCircle finds the center and radius of the circle passing through
// three non-collinear points, used to recover KiCad's start/mid/end arc
// form (and, in pkg/format/easyeda, SVG arc endpoints) into the IR's
// center/radius/sweep representation. ok is false for a
// degenerate (collinear) input.
func CircumCircle(a, mid, b Point) (center Point, radius float64, ok bool) {
	ax, ay := a.X, a.Y
	bx, by := mid.X, mid.Y
	cx, cy := b.X, b.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-12 {
		return Point{}, 0, false
	}

	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d

	center = Point{X: ux, Y: uy}
	radius = math.Hypot(ax-ux, ay-uy)
	return center, radius, true
}

// AngleOf returns the angle in degrees of p relative to center, in the
// [0, 360) range.
func AngleOf(center, p Point) float64 {
	deg := math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
	return NormalizeAngle(deg)
}

// SweepCCW returns the counter-clockwise angular sweep in degrees from
// start to end that passes through mid along the way. The IR's arc
// invariant (spec §3) requires EndAngle >= StartAngle with a CCW sweep, so
// callers set EndAngle = StartAngle + SweepCCW(...) rather than using the
// raw AngleOf(end) value, which could wrap the wrong way around the circle.
//
// When mid does not fall on the minor CCW arc from start to end, the real
// arc is the major one (sweep > 180); KiCad board outlines and silkscreen
// arcs are overwhelmingly minor arcs, so that is the only case handled
// precisely here.
func SweepCCW(start, mid, end float64) float64 {
	toCCW := func(from, to float64) float64 {
		d := math.Mod(to-from, 360)
		if d < 0 {
			d += 360
		}
		return d
	}
	sweepToMid := toCCW(start, mid)
	sweepToEnd := toCCW(start, end)
	if sweepToMid <= sweepToEnd {
		return sweepToEnd
	}
	return 360 - (sweepToMid - sweepToEnd)
}
