package eagle

import (
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// lowerElement lowers a placed Element, resolved against its library
// Package, into a Footprint: every local-coordinate primitive in the
// package is run back through toMM (package geometry is authored in the
// same unit/Y-up system as everything else) and then through the
// element's own placement transform.
//
// Like easyeda components, Eagle elements carry no native bounding box, so
// one is derived the same way: an AABB of local (pre-rotation,
// mirror-applied) pad/drawing extents, with the rotation stored separately
// as Bbox.Angle for the renderer to apply.
func lowerElement(e Element, pkg *Package, toMM toMMFn, scale float64, textSink *[]string) *ir.Footprint {
	angle, mirrored := parseRot(e.Rot)
	origin := toMM(e.X, e.Y)
	full := geomutil.Transform{Translate: origin, AngleDeg: angle, Mirror: mirrored}
	localOnly := geomutil.Transform{Mirror: mirrored}

	out := &ir.Footprint{
		Ref:    e.Name,
		Center: ir.Point{X: origin.X, Y: origin.Y},
		Layer:  sideFromMirror(mirrored),
	}

	localBox := geomutil.Empty()
	expandLocal := func(x, y float64) { localBox.Expand(localOnly.Apply(toMM(x, y))) }

	for _, p := range pkg.Pads {
		out.Pads = append(out.Pads, lowerThPad(p, full, toMM, scale))
		expandLocal(p.X, p.Y)
	}
	for _, s := range pkg.Smds {
		out.Pads = append(out.Pads, lowerSmdPad(s, full, toMM, scale))
		expandLocal(s.X, s.Y)
	}

	addDrawing := func(bucket layerBucket, d ir.Drawing) {
		if d == nil {
			return
		}
		side := bucket.Side
		if side == "" {
			side = out.Layer
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: drawingBucketLabel(bucket, side), Drawing: d})
	}

	for _, w := range pkg.Wires {
		d, _, ok := lowerWire(w, full, toMM, scale)
		if !ok {
			continue
		}
		addDrawing(classifyLayer(w.Layer), d)
		expandLocal(w.X1, w.Y1)
		expandLocal(w.X2, w.Y2)
	}
	for _, c := range pkg.Circles {
		d, _, ok := lowerCircle(c, full, toMM, scale)
		if !ok {
			continue
		}
		addDrawing(classifyLayer(c.Layer), d)
		expandLocal(c.X-c.Radius, c.Y-c.Radius)
		expandLocal(c.X+c.Radius, c.Y+c.Radius)
	}
	for _, r := range pkg.Rects {
		d, _, ok := lowerRect(r, full, toMM, scale)
		if !ok {
			continue
		}
		addDrawing(classifyLayer(r.Layer), d)
		expandLocal(r.X1, r.Y1)
		expandLocal(r.X2, r.Y2)
	}
	for _, p := range pkg.Polygons {
		d, _, ok := lowerPolygonOutline(p, full, toMM, scale)
		if !ok {
			continue
		}
		addDrawing(classifyLayer(p.Layer), d)
		for _, v := range p.Vertices {
			expandLocal(v.X, v.Y)
		}
	}
	for _, t := range pkg.Texts {
		d, _, ok := lowerText(t, full, toMM, scale, textSink)
		if !ok {
			continue
		}
		addDrawing(classifyLayer(t.Layer), d)
		expandLocal(t.X, t.Y)
	}

	if !localBox.IsEmpty() {
		c := localBox.Center()
		out.Bbox = ir.Bbox{
			Pos:    out.Center,
			RelPos: ir.Point{X: c.X, Y: c.Y},
			Size:   ir.Size2{ir.F(localBox.Width()), ir.F(localBox.Height())},
			Angle:  ir.F(angle),
		}
	}

	return out
}

func sideFromMirror(mirrored bool) string {
	if mirrored {
		return ir.SideBack
	}
	return ir.SideFront
}

func drawingBucketLabel(bucket layerBucket, side string) string {
	switch bucket.Name {
	case "fab":
		return "fab-" + side
	default:
		return "silk-" + side
	}
}

// lowerThPad lowers a package through-hole pad. Eagle gives only a single
// diameter for round/square/long pads (no independent width/height), so
// Size carries that diameter on both axes.
func lowerThPad(p ThPad, t geomutil.Transform, toMM toMMFn, scale float64) ir.Pad {
	abs := t.Apply(toMM(p.X, p.Y))
	angle, _ := parseRot(p.Rot)

	out := ir.Pad{
		Layers: []string{ir.SideFront, ir.SideBack},
		Pos:    ir.Point{X: abs.X, Y: abs.Y},
		Size:   ir.Size2{ir.F(p.Diameter * scale), ir.F(p.Diameter * scale)},
		Shape:  mapThPadShape(p.Shape),
		Type:   ir.PadTypeTH,
		Angle:  ir.F(angle + t.AngleDeg),
		Pin1:   pin1If(p.Name),
	}
	if p.Drill > 0 {
		out.DrillShape = ir.DrillShapeCircle
		out.DrillSize = &ir.Size2{ir.F(p.Drill * scale), ir.F(p.Drill * scale)}
	}
	if out.Shape == ir.PadShapeChamfRect {
		out.ChamfRatio = ir.F(0.3)
		out.ChamfPos = ir.ChamferTL | ir.ChamferTR | ir.ChamferBR | ir.ChamferBL
	}
	return out
}

func mapThPadShape(shape string) string {
	switch shape {
	case "square":
		return ir.PadShapeRect
	case "octagon":
		return ir.PadShapeChamfRect
	case "long":
		return ir.PadShapeOval
	default:
		return ir.PadShapeCircle
	}
}

// lowerSmdPad lowers a package surface-mount pad. Layer determines which
// single copper side the pad lives on (spec §4.4).
func lowerSmdPad(s SmdPad, t geomutil.Transform, toMM toMMFn, scale float64) ir.Pad {
	abs := t.Apply(toMM(s.X, s.Y))
	angle, _ := parseRot(s.Rot)
	side := classifyLayer(s.Layer).Side
	if side == "" {
		side = ir.SideFront
	}

	shape := ir.PadShapeRect
	if s.RoundRatio > 0 {
		shape = ir.PadShapeRoundRect
	}

	out := ir.Pad{
		Layers: []string{side},
		Pos:    ir.Point{X: abs.X, Y: abs.Y},
		Size:   ir.Size2{ir.F(s.Dx * scale), ir.F(s.Dy * scale)},
		Shape:  shape,
		Type:   ir.PadTypeSMD,
		Angle:  ir.F(angle + t.AngleDeg),
		Pin1:   pin1If(s.Name),
	}
	if shape == ir.PadShapeRoundRect {
		minSide := s.Dx
		if s.Dy < minSide {
			minSide = s.Dy
		}
		out.Radius = ir.F(s.RoundRatio / 100 * minSide * scale)
	}
	return out
}

func pin1If(name string) int {
	if name == "1" {
		return 1
	}
	return 0
}
