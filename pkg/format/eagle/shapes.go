package eagle

import (
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// lowerWire converts a straight or curved Wire into a Segment or Arc.
// Coordinates are converted to mm/Y-down via toMM, then t (identity for
// board-level Plain wires, the element placement transform for
// package-local wires) is applied.
func lowerWire(w Wire, t geomutil.Transform, toMM toMMFn, scale float64) (ir.Drawing, []ir.Point, bool) {
	s := t.Apply(toMM(w.X1, w.Y1))
	e := t.Apply(toMM(w.X2, w.Y2))

	if w.Curve != 0 {
		sweep := w.Curve
		if t.Mirror {
			// Mirroring flips handedness, reversing the sweep direction.
			sweep = -sweep
		}
		center, radius, startAngle, endAngle := chordAngleToArc(s, e, sweep)
		if radius == 0 {
			return nil, nil, false
		}
		return ir.Arc{
			Start:      ir.Point{X: center.X, Y: center.Y},
			Radius:     ir.F(radius),
			StartAngle: ir.F(startAngle),
			EndAngle:   ir.F(endAngle),
			Width:      ir.F(w.Width * scale),
		}, []ir.Point{{X: s.X, Y: s.Y}, {X: e.X, Y: e.Y}}, true
	}

	return ir.Segment{
		Start: ir.Point{X: s.X, Y: s.Y}, End: ir.Point{X: e.X, Y: e.Y},
		Width: ir.F(w.Width * scale),
	}, []ir.Point{{X: s.X, Y: s.Y}, {X: e.X, Y: e.Y}}, true
}

func lowerCircle(c Circle, t geomutil.Transform, toMM toMMFn, scale float64) (ir.Drawing, []ir.Point, bool) {
	center := t.Apply(toMM(c.X, c.Y))
	radius := c.Radius * scale
	filled := 0
	if c.Width == 0 {
		filled = 1
	}
	return ir.Circle{
			Start: ir.Point{X: center.X, Y: center.Y}, Radius: ir.F(radius),
			Width: ir.F(c.Width * scale), Filled: filled,
		}, []ir.Point{
			{X: center.X - radius, Y: center.Y - radius},
			{X: center.X + radius, Y: center.Y + radius},
		}, true
}

func lowerRect(r Rect, t geomutil.Transform, toMM toMMFn, scale float64) (ir.Drawing, []ir.Point, bool) {
	_ = scale
	s := t.Apply(toMM(r.X1, r.Y1))
	e := t.Apply(toMM(r.X2, r.Y2))
	return ir.Rect{Start: ir.Point{X: s.X, Y: s.Y}, End: ir.Point{X: e.X, Y: e.Y}}, []ir.Point{{X: s.X, Y: s.Y}, {X: e.X, Y: e.Y}}, true
}

// lowerPolygonOutline converts a Plain-level Polygon (board-level copper
// pour or, on layer 20, the board outline itself) into a filled Polygon
// drawing.
func lowerPolygonOutline(p Polygon, t geomutil.Transform, toMM toMMFn, scale float64) (ir.Drawing, []ir.Point, bool) {
	if len(p.Vertices) == 0 {
		return nil, nil, false
	}
	contour := make(ir.Contour, len(p.Vertices))
	pts := make([]ir.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		ap := t.Apply(toMM(v.X, v.Y))
		pt := ir.Point{X: ap.X, Y: ap.Y}
		contour[i] = pt
		pts[i] = pt
	}
	return ir.Polygon{
		Polygons: []ir.Contour{contour},
		Filled:   1,
		Width:    ir.F(p.Width * scale),
	}, pts, true
}

func lowerText(tx Text, t geomutil.Transform, toMM toMMFn, scale float64, textSink *[]string) (ir.Drawing, []ir.Point, bool) {
	if tx.Value == "" {
		return nil, nil, false
	}
	*textSink = append(*textSink, tx.Value)
	pos := t.Apply(toMM(tx.X, tx.Y))
	angle, _ := parseRot(tx.Rot)
	height := tx.Size * scale
	if height == 0 {
		height = 1.0
	}
	p := ir.Point{X: pos.X, Y: pos.Y}
	return ir.StrokeText{
		Pos:       p,
		Text:      tx.Value,
		Height:    ir.F(height),
		Width:     ir.F(height * 0.8),
		Thickness: ir.F(height * 0.15),
		Angle:     ir.F(angle + t.AngleDeg),
	}, []ir.Point{p}, true
}
