package altium

import (
	"math"

	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// lowerBoardOutline walks a Board6 KIND=0 vertex list into edge drawings.
// An arc vertex's (X,Y) is the arc's center with Radius/StartA/EndA
// describing its sweep; a straight vertex's (X,Y) is simply the next
// point on the outline. A straight segment is inserted to bridge the
// running cursor to an arc's start point whenever they don't already
// coincide (spec §4.5: "Concatenate into edges").
func lowerBoardOutline(verts []boardVertex) []ir.Drawing {
	var out []ir.Drawing
	var cursor geomutil.Point
	have := false

	for _, v := range verts {
		if !v.IsArc {
			p := toMM(v.X, v.Y)
			if have && !samePoint(cursor, p) {
				out = append(out, ir.Segment{
					Start: ir.Point{X: cursor.X, Y: cursor.Y},
					End:   ir.Point{X: p.X, Y: p.Y},
				})
			}
			cursor, have = p, true
			continue
		}

		center := toMM(v.X, v.Y)
		radius := lenMM(v.Radius)
		start, end := arcAngles(v.StartA, v.EndA)
		// The physical point the outline enters this arc at is the one at
		// source angle StartA, which maps to IR angle `end` (arcAngles
		// swaps start/end along with negating, to keep end >= start); the
		// point it exits at maps to IR angle `start`.
		entryPt := geomutil.Point{
			X: center.X + radius*math.Cos(end*math.Pi/180),
			Y: center.Y + radius*math.Sin(end*math.Pi/180),
		}
		exitPt := geomutil.Point{
			X: center.X + radius*math.Cos(start*math.Pi/180),
			Y: center.Y + radius*math.Sin(start*math.Pi/180),
		}
		if have && !samePoint(cursor, entryPt) {
			out = append(out, ir.Segment{
				Start: ir.Point{X: cursor.X, Y: cursor.Y},
				End:   ir.Point{X: entryPt.X, Y: entryPt.Y},
			})
		}
		out = append(out, ir.Arc{
			Start:      ir.Point{X: center.X, Y: center.Y},
			Radius:     ir.F(radius),
			StartAngle: ir.F(start),
			EndAngle:   ir.F(end),
		})
		cursor, have = exitPt, true
	}
	return out
}

func samePoint(a, b geomutil.Point) bool {
	const eps = 1e-6
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
