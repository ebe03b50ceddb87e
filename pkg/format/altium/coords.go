package altium

import "github.com/meawoppl/pastebom.com/pkg/geomutil"

// toMM converts a raw Altium integer coordinate pair (1/10000 mil units)
// into the IR's millimetre, Y-down space: scale by AltiumUnitToMM then
// negate Y, since Altium's native coordinate system has Y pointing up
// (spec §4.5).
func toMM(x, y int32) geomutil.Point {
	return geomutil.Point{
		X: float64(x) * geomutil.AltiumUnitToMM,
		Y: -float64(y) * geomutil.AltiumUnitToMM,
	}
}

// lenMM converts a raw Altium length/size/radius value (no sign flip
// needed, it isn't a coordinate) into millimetres.
func lenMM(v int32) float64 {
	return float64(v) * geomutil.AltiumUnitToMM
}

// rotMM converts Altium's stored rotation (degrees, counter-clockwise from
// +X in its Y-up space) into the IR's clockwise-after-Y-flip convention:
// the Y negation flips handedness, so the angle's sign inverts on
// emission (spec §4.5).
func rotMM(deg float64) float64 {
	return -deg
}

// arcAngles converts a source start/end angle pair (Altium: CCW sweep,
// Y-up) into the IR's required CCW-after-Y-flip, end >= start convention
// (spec §3 invariant (c)). The Y flip reverses handedness, so a CCW sweep
// in source space becomes a CW sweep in IR space unless the two endpoints
// are also swapped: the new start is the negated source end, and the new
// end is the negated source start.
func arcAngles(srcStart, srcEnd float64) (start, end float64) {
	return rotMM(srcEnd), rotMM(srcStart)
}
