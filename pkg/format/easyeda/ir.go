package easyeda

import (
	"math"

	"github.com/meawoppl/pastebom.com/pkg/bom"
	"github.com/meawoppl/pastebom.com/pkg/font"
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

const mil = geomutil.MilsToMM

// ToIR lowers a parsed EasyEDA Document into the tool-independent PcbData
// model (spec §4.3). The returned bom.Component slice is parallel to
// data.Footprints and carries the BOM-relevant fields the PcbData schema
// itself omits (spec §3, §4.6).
func ToIR(doc *Document) (*ir.PcbData, []bom.Component, []string) {
	var warnings []string
	var comps []bom.Component

	data := &ir.PcbData{}
	edgeBox := geomutil.Empty()
	netSet := map[string]bool{}
	addNet := func(n string) {
		if n != "" {
			netSet[n] = true
		}
	}

	identity := geomutil.Transform{}

	for _, t := range doc.Tracks {
		addNet(t.Net)
		bucket := classifyLayer(t.Layer)
		d, pts, ok := lowerTrack(t, identity)
		if !ok {
			continue
		}
		fileDrawing(data, &edgeBox, bucket, d, pts)
	}
	for _, a := range doc.Arcs {
		addNet(a.Net)
		bucket := classifyLayer(a.Layer)
		d, pts, ok := lowerArc(a, identity)
		if !ok {
			continue
		}
		fileDrawing(data, &edgeBox, bucket, d, pts)
	}
	for _, c := range doc.Circles {
		addNet(c.Net)
		bucket := classifyLayer(c.Layer)
		d, pts, ok := lowerCircle(c, identity)
		if !ok {
			continue
		}
		fileDrawing(data, &edgeBox, bucket, d, pts)
	}
	for _, r := range doc.Rects {
		bucket := classifyLayer(r.Layer)
		d, pts, ok := lowerRect(r, identity)
		if !ok {
			continue
		}
		fileDrawing(data, &edgeBox, bucket, d, pts)
	}
	for _, s := range doc.SolidRegions {
		addNet(s.Net)
		bucket := classifyLayer(s.Layer)
		d, pts, ok := lowerPolygon(s.Points, identity, s.Kind != "cutout")
		if !ok {
			continue
		}
		fileDrawing(data, &edgeBox, bucket, d, pts)
	}

	var allText []string
	for _, t := range doc.Texts {
		bucket := classifyLayer(t.Layer)
		d, pts, ok := lowerText(t, identity, &allText)
		if !ok {
			continue
		}
		fileDrawing(data, &edgeBox, bucket, d, pts)
	}

	if !edgeBox.IsEmpty() {
		data.EdgesBbox = ir.EdgesBbox{
			MinX: ir.F(edgeBox.Min.X), MinY: ir.F(edgeBox.Min.Y),
			MaxX: ir.F(edgeBox.Max.X), MaxY: ir.F(edgeBox.Max.Y),
		}
	}

	for _, ca := range doc.CopperAreas {
		addNet(ca.Net)
		if len(ca.Points) == 0 {
			continue
		}
		data.Zones = append(data.Zones, ir.ZonePolygons{
			Polygons: []ir.Contour{toIRContour(ca.Points, mil)},
			Net:      ca.Net,
		})
	}

	for _, c := range doc.Components {
		fp := lowerComponent(c, &allText)
		data.Footprints = append(data.Footprints, *fp)
		comps = append(comps, bom.Component{
			Ref:   c.Designator,
			Layer: fp.Layer,
			Fields: map[string]string{
				"Value":     c.Value,
				"Footprint": c.Package,
			},
		})
		for _, p := range c.Pads {
			addNet(p.Net)
		}
		for _, t := range c.Tracks {
			addNet(t.Net)
		}
	}

	for n := range netSet {
		data.Nets = append(data.Nets, n)
	}

	if len(allText) > 0 {
		data.FontData = buildFontData(allText)
	}

	return data, comps, warnings
}

// fileDrawing routes a lowered board-level drawing into edges, silk, or
// fab, expanding edgeBox for edge drawings.
func fileDrawing(data *ir.PcbData, edgeBox *geomutil.BoundingBox, bucket layerBucket, d ir.Drawing, pts []ir.Point) {
	switch bucket.Name {
	case "edge":
		data.Edges = append(data.Edges, d)
		for _, p := range pts {
			edgeBox.Expand(geomutil.Point{X: float64(p.X), Y: float64(p.Y)})
		}
	case "silk", "fab":
		target := &data.Drawings.Silkscreen
		if bucket.Name == "fab" {
			target = &data.Drawings.Fabrication
		}
		if bucket.Side == ir.SideBack {
			target.B = append(target.B, d)
		} else {
			target.F = append(target.F, d)
		}
	}
}

func toIRPoint(p Point, scale float64) ir.Point {
	return ir.Point{X: p.X * scale, Y: p.Y * scale}
}

func toIRContour(pts []Point, scale float64) ir.Contour {
	out := make(ir.Contour, len(pts))
	for i, p := range pts {
		out[i] = toIRPoint(p, scale)
	}
	return out
}

func lowerTrack(t Track, xf geomutil.Transform) (ir.Drawing, []ir.Point, bool) {
	if len(t.Points) < 2 {
		return nil, nil, false
	}
	contour := make(ir.Contour, len(t.Points))
	for i, p := range t.Points {
		ap := xf.Apply(geomutil.Point{X: p.X * mil, Y: p.Y * mil})
		contour[i] = ir.Point{X: ap.X, Y: ap.Y}
	}
	if len(contour) == 2 {
		return ir.Segment{Start: contour[0], End: contour[1], Width: ir.F(t.Width * mil)}, []ir.Point(contour), true
	}
	return ir.Polygon{
		Polygons: []ir.Contour{contour},
		Filled:   0,
		Width:    ir.F(t.Width * mil),
	}, []ir.Point(contour), true
}

func lowerCircle(c Circle, xf geomutil.Transform) (ir.Drawing, []ir.Point, bool) {
	center := xf.Apply(geomutil.Point{X: c.X * mil, Y: c.Y * mil})
	radius := c.Radius * mil
	cp := ir.Point{X: center.X, Y: center.Y}
	extent := ir.Point{X: center.X + radius, Y: center.Y + radius}
	return ir.Circle{Start: cp, Radius: ir.F(radius), Width: ir.F(c.Width * mil)}, []ir.Point{cp, extent}, true
}

func lowerRect(r Rect, xf geomutil.Transform) (ir.Drawing, []ir.Point, bool) {
	s := xf.Apply(geomutil.Point{X: r.X * mil, Y: r.Y * mil})
	e := xf.Apply(geomutil.Point{X: (r.X + r.Width) * mil, Y: (r.Y + r.Height) * mil})
	sp, ep := ir.Point{X: s.X, Y: s.Y}, ir.Point{X: e.X, Y: e.Y}
	return ir.Rect{Start: sp, End: ep}, []ir.Point{sp, ep}, true
}

func lowerPolygon(pts []Point, xf geomutil.Transform, filled bool) (ir.Drawing, []ir.Point, bool) {
	if len(pts) == 0 {
		return nil, nil, false
	}
	contour := make(ir.Contour, len(pts))
	for i, p := range pts {
		ap := xf.Apply(geomutil.Point{X: p.X * mil, Y: p.Y * mil})
		contour[i] = ir.Point{X: ap.X, Y: ap.Y}
	}
	f := 0
	if filled {
		f = 1
	}
	return ir.Polygon{Polygons: []ir.Contour{contour}, Filled: f}, []ir.Point(contour), true
}

// lowerArc converts the SVG "M x y A rx ry 0 large sweep ex ey" fragment
// EasyEDA emits into a three-point circumcircle arc (spec §4.3 implies
// arcs carry enough geometry to reconstruct center/radius/sweep; this
// mirrors the chord+endpoint approach pkg/geomutil/arc.go already
// provides for KiCad, using the path's own start/end plus a synthesized
// midpoint on the minor arc when the flattened path omits one).
func lowerArc(a Arc, xf geomutil.Transform) (ir.Drawing, []ir.Point, bool) {
	start, rx, end, ok := parseArcPathEndpoints(a.Path)
	if !ok {
		return nil, nil, false
	}
	s := xf.Apply(geomutil.Point{X: start.X * mil, Y: start.Y * mil})
	e := xf.Apply(geomutil.Point{X: end.X * mil, Y: end.Y * mil})
	radius := rx * mil
	// Midpoint of the chord, pushed out to the circle along the
	// perpendicular bisector, approximates the arc's true midpoint well
	// enough to disambiguate its CCW sweep for the common minor-arc case.
	chordMid := geomutil.Point{X: (s.X + e.X) / 2, Y: (s.Y + e.Y) / 2}
	center, _, okc := geomutil.CircumCircle(s, chordMid, e)
	if !okc {
		center = chordMid
	}
	startAngle := geomutil.AngleOf(center, s)
	endAngle := geomutil.AngleOf(center, e)
	sweep := geomutil.SweepCCW(startAngle, geomutil.NormalizeAngle((startAngle+endAngle)/2), endAngle)
	cp := ir.Point{X: center.X, Y: center.Y}
	return ir.Arc{
		Start:      cp,
		Radius:     ir.F(radius),
		StartAngle: ir.F(startAngle),
		EndAngle:   ir.F(startAngle + sweep),
		Width:      ir.F(a.Width * mil),
	}, []ir.Point{{X: s.X, Y: s.Y}, {X: e.X, Y: e.Y}}, true
}

func lowerText(t Text, xf geomutil.Transform, textSink *[]string) (ir.Drawing, []ir.Point, bool) {
	if t.Value == "" {
		return nil, nil, false
	}
	*textSink = append(*textSink, t.Value)
	pos := xf.Apply(geomutil.Point{X: t.X * mil, Y: t.Y * mil})
	p := ir.Point{X: pos.X, Y: pos.Y}
	height := t.FontSize * mil
	if height == 0 {
		height = 1.0
	}
	return ir.StrokeText{
		Pos:    p,
		Text:   t.Value,
		Height: ir.F(height),
		Angle:  ir.F(t.Rotation + xf.AngleDeg),
	}, []ir.Point{p}, true
}

// lowerComponent places one LIB~ instance, applying its placement
// transform to every nested primitive and computing the oriented bbox per
// spec §4.3's explicit AABB-then-rotate algorithm, since EasyEDA carries
// no native per-component bounding box.
func lowerComponent(c Component, textSink *[]string) *ir.Footprint {
	full := geomutil.Transform{
		Translate: geomutil.Point{X: c.X * mil, Y: c.Y * mil},
		AngleDeg:  c.Rotation,
		Mirror:    isBackLayer(c.Layer),
	}
	// localOnly mirrors but does not rotate or translate: extrema computed
	// through it give the pre-rotation local-space AABB the spec asks for,
	// so Size isn't inflated by the component's own rotation.
	localOnly := geomutil.Transform{Mirror: isBackLayer(c.Layer)}

	out := &ir.Footprint{
		Ref:    c.Designator,
		Center: ir.Point{X: full.Translate.X, Y: full.Translate.Y},
		Layer:  sideOf(c.Layer),
	}

	localBox := geomutil.Empty()

	for _, p := range c.Pads {
		pad := lowerPad(p, full)
		out.Pads = append(out.Pads, pad)
		lp := localOnly.Apply(geomutil.Point{X: p.X * mil, Y: p.Y * mil})
		localBox.Expand(lp)
	}

	for _, t := range c.Tracks {
		d, _, ok := lowerTrack(t, full)
		if !ok {
			continue
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: componentDrawingLabel(t.Layer), Drawing: d})
		for _, p := range t.Points {
			localBox.Expand(localOnly.Apply(geomutil.Point{X: p.X * mil, Y: p.Y * mil}))
		}
	}
	for _, a := range c.Arcs {
		d, _, ok := lowerArc(a, full)
		if !ok {
			continue
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: componentDrawingLabel(a.Layer), Drawing: d})
	}
	for _, circ := range c.Circles {
		d, _, ok := lowerCircle(circ, full)
		if !ok {
			continue
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: componentDrawingLabel(circ.Layer), Drawing: d})
		r := circ.Radius * mil
		lc := localOnly.Apply(geomutil.Point{X: circ.X * mil, Y: circ.Y * mil})
		localBox.Expand(geomutil.Point{X: lc.X - r, Y: lc.Y - r})
		localBox.Expand(geomutil.Point{X: lc.X + r, Y: lc.Y + r})
	}
	for _, r := range c.Rects {
		d, _, ok := lowerRect(r, full)
		if !ok {
			continue
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: componentDrawingLabel(r.Layer), Drawing: d})
		localBox.Expand(localOnly.Apply(geomutil.Point{X: r.X * mil, Y: r.Y * mil}))
		localBox.Expand(localOnly.Apply(geomutil.Point{X: (r.X + r.Width) * mil, Y: (r.Y + r.Height) * mil}))
	}
	for _, t := range c.Texts {
		d, _, ok := lowerText(t, full, textSink)
		if !ok {
			continue
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: componentDrawingLabel(t.Layer), Drawing: d})
	}

	if !localBox.IsEmpty() {
		out.Bbox = ir.Bbox{
			Pos:    out.Center,
			RelPos: ir.Point{X: localBox.Center().X, Y: localBox.Center().Y},
			Size:   ir.Size2{ir.F(localBox.Width()), ir.F(localBox.Height())},
			Angle:  ir.F(c.Rotation),
		}
	}

	return out
}

func componentDrawingLabel(layer int) string {
	b := classifyLayer(layer)
	side := b.Side
	if side == "" {
		side = "F"
	}
	if b.Name == "fab" {
		return "fab-" + side
	}
	return "silk-" + side
}

func lowerPad(p Pad, xf geomutil.Transform) ir.Pad {
	abs := xf.Apply(geomutil.Point{X: p.X * mil, Y: p.Y * mil})

	shape, polys := mapPadShape(p)
	padType := ir.PadTypeSMD
	layers := []string{sideOf(p.Layer)}
	if p.HoleRadius > 0 {
		padType = ir.PadTypeTH
		layers = []string{ir.SideFront, ir.SideBack}
	}

	out := ir.Pad{
		Layers: layers,
		Pos:    ir.Point{X: abs.X, Y: abs.Y},
		Size:   ir.Size2{ir.F(p.W * mil), ir.F(p.H * mil)},
		Shape:  shape,
		Type:   padType,
		Angle:  ir.F(p.Rotation + xf.AngleDeg),
		Net:    p.Net,
	}
	if polys != nil {
		out.Polygons = polys
	}

	if padType == ir.PadTypeTH {
		drillShape := ir.DrillShapeCircle
		w, h := p.HoleRadius*2*mil, p.HoleRadius*2*mil
		if p.HoleLength > 0 {
			drillShape = ir.DrillShapeOblong
			h = p.HoleLength * mil
		}
		out.DrillShape = drillShape
		out.DrillSize = &ir.Size2{ir.F(w), ir.F(h)}
	}

	return out
}

func mapPadShape(p Pad) (string, []ir.Contour) {
	switch p.Shape {
	case "RECT", "RECTANGLE":
		return ir.PadShapeRect, nil
	case "OVAL", "ELLIPSE":
		return ir.PadShapeOval, nil
	case "ROUND", "CIRCLE":
		return ir.PadShapeCircle, nil
	case "POLYGON":
		if len(p.Points) == 0 {
			return ir.PadShapeCustom, nil
		}
		return ir.PadShapeCustom, []ir.Contour{toIRContour(p.Points, mil)}
	default:
		return ir.PadShapeRect, nil
	}
}

func buildFontData(texts []string) map[string]ir.Glyph {
	used := font.Used(texts)
	if len(used) == 0 {
		return nil
	}
	out := make(map[string]ir.Glyph, len(used))
	for ch, g := range used {
		lines := make([][]ir.Point, len(g.Lines))
		for i, l := range g.Lines {
			pts := make([]ir.Point, len(l))
			for j, p := range l {
				pts[j] = ir.Point{X: p.X, Y: p.Y}
			}
			lines[i] = pts
		}
		out[ch] = ir.Glyph{W: ir.F(g.Width), L: lines}
	}
	return out
}

// parseArcPathEndpoints extracts the start point, x-radius, and end point
// from an EasyEDA arc path fragment "M sx sy A rx ry 0 large sweep ex ey".
func parseArcPathEndpoints(path string) (start Point, rx float64, end Point, ok bool) {
	toks := splitSvgTokens(path)
	var nums []float64
	for _, t := range toks {
		if isSvgCommand(t) {
			continue
		}
		if v, vok := parseSvgNumber(t); vok {
			nums = append(nums, v)
		}
	}
	// M sx sy A rx ry xrot large sweep ex ey -> 9 numbers total.
	if len(nums) < 9 {
		return Point{}, 0, Point{}, false
	}
	start = Point{X: nums[0], Y: nums[1]}
	rx = math.Abs(nums[2])
	end = Point{X: nums[7], Y: nums[8]}
	return start, rx, end, true
}
