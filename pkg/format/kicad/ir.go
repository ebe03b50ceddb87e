package kicad

import (
	"math"

	"github.com/meawoppl/pastebom.com/pkg/bom"
	"github.com/meawoppl/pastebom.com/pkg/font"
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// ToIR lowers a parsed KiCad Board into the tool-independent PcbData model.
// The returned bom.Component slice is parallel to data.Footprints and
// carries the BOM-relevant fields (Value and the library-qualified
// footprint name) that the PcbData schema itself omits (spec §3, §4.6);
// DNP and virtual status are not read from KiCad files.
func ToIR(b *Board) (*ir.PcbData, []bom.Component, []string) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }
	var comps []bom.Component

	data := &ir.PcbData{
		Metadata: ir.Metadata{
			Title:    b.TitleBlock.Title,
			Revision: b.TitleBlock.Revision,
			Company:  b.TitleBlock.Company,
			Date:     b.TitleBlock.Date,
		},
	}

	edgeBox := geomutil.Empty()
	var allText []string

	for _, g := range b.Graphics {
		bucket := classifyLayer(g.Layer)
		switch bucket.Name {
		case "edge":
			d, pts, ok := lowerGraphic(g, geomutil.Transform{}, &allText)
			if !ok {
				continue
			}
			data.Edges = append(data.Edges, d)
			for _, p := range pts {
				edgeBox.Expand(geomutil.Point{X: p.X, Y: p.Y})
			}
		case "silk", "fab":
			d, _, ok := lowerGraphic(g, geomutil.Transform{}, &allText)
			if !ok {
				continue
			}
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

	if !edgeBox.IsEmpty() {
		data.EdgesBbox = ir.EdgesBbox{
			MinX: ir.F(edgeBox.Min.X), MinY: ir.F(edgeBox.Min.Y),
			MaxX: ir.F(edgeBox.Max.X), MaxY: ir.F(edgeBox.Max.Y),
		}
	}

	for _, fp := range b.Footprints {
		out, err := lowerFootprint(fp, &allText)
		if err != nil {
			warn(err.Error())
			continue
		}
		data.Footprints = append(data.Footprints, *out)
		comps = append(comps, bom.Component{
			Ref:   fp.Reference,
			Layer: sideOf2(fp.Layer),
			Fields: map[string]string{
				"Value":     fp.Value,
				"Footprint": footprintName(fp),
			},
		})
	}

	if len(b.Tracks) > 0 || len(b.Vias) > 0 || len(b.Arcs) > 0 {
		tracks := &ir.Tracks{}
		for _, t := range b.Tracks {
			side := classifyLayer(t.Layer).Side
			rec := ir.TrackSegment{
				Start: toIRPoint(t.Start), End: toIRPoint(t.End),
				Width: ir.F(t.Width), Net: t.Net,
			}
			if side == ir.SideBack {
				tracks.B = append(tracks.B, rec)
			} else {
				tracks.F = append(tracks.F, rec)
			}
		}
		for _, a := range b.Arcs {
			side := classifyLayer(a.Layer).Side
			rec := lowerArcTrack(a)
			if side == ir.SideBack {
				tracks.B = append(tracks.B, rec)
			} else {
				tracks.F = append(tracks.F, rec)
			}
		}
		for _, v := range b.Vias {
			rec := ir.TrackVia{
				Start: toIRPoint(v.Position), End: toIRPoint(v.Position),
				Width: ir.F(v.Size), Net: v.Net,
				DrillSize: ir.Size2{ir.F(v.Drill), ir.F(v.Drill)},
			}
			// Vias span both sides regardless of which copper layers they
			// actually connect (spec §4.2): the viewer draws them on both.
			tracks.F = append(tracks.F, rec)
			tracks.B = append(tracks.B, rec)
		}
		data.Tracks = tracks
	}

	for _, z := range b.Zones {
		var contours []ir.Contour
		for _, fill := range z.Fills {
			contours = append(contours, toIRContour(fill))
		}
		if len(contours) == 0 && len(z.Outline) > 0 {
			// No cached fill polygon (board saved without a zone refill
			// pass): emit the declared outline instead of dropping the
			// zone (spec §4.2 step 6, §9 zone-fills note).
			contours = append(contours, toIRContour(z.Outline))
		}
		if len(contours) == 0 {
			continue
		}
		data.Zones = append(data.Zones, ir.ZonePolygons{
			Polygons: contours,
			Net:      z.Net,
		})
	}

	var netNames []string
	for _, n := range b.Nets {
		if n.Name != "" {
			netNames = append(netNames, n.Name)
		}
	}
	data.Nets = netNames

	if len(allText) > 0 {
		used := font.Used(allText)
		if len(used) > 0 {
			data.FontData = make(map[string]ir.Glyph, len(used))
			for ch, g := range used {
				lines := make([][]ir.Point, len(g.Lines))
				for i, l := range g.Lines {
					pts := make([]ir.Point, len(l))
					for j, p := range l {
						pts[j] = ir.Point{X: p.X, Y: p.Y}
					}
					lines[i] = pts
				}
				data.FontData[ch] = ir.Glyph{W: ir.F(g.Width), L: lines}
			}
		}
	}

	return data, comps, warnings
}

// footprintName reconstructs the "library:name" footprint identifier the
// board file split apart on load (footprints.go), for use as the BOM's
// Footprint group field.
func footprintName(fp Footprint) string {
	if fp.Library == "" {
		return fp.Name
	}
	return fp.Library + ":" + fp.Name
}

func toIRPoint(p Position) ir.Point { return ir.Point{X: p.X, Y: p.Y} }

func toIRContour(pts []Position) ir.Contour {
	out := make(ir.Contour, len(pts))
	for i, p := range pts {
		out[i] = ir.Point{X: p.X, Y: p.Y}
	}
	return out
}

func lowerArcTrack(a ArcTrack) ir.TrackArc {
	start := geomutil.Point{X: a.Start.X, Y: a.Start.Y}
	mid := geomutil.Point{X: a.Mid.X, Y: a.Mid.Y}
	end := geomutil.Point{X: a.End.X, Y: a.End.Y}
	center, radius, ok := geomutil.CircumCircle(start, mid, end)
	if !ok {
		center = start
	}
	startAngle := geomutil.AngleOf(center, start)
	sweep := geomutil.SweepCCW(startAngle, geomutil.AngleOf(center, mid), geomutil.AngleOf(center, end))
	return ir.TrackArc{
		Center:     ir.Point{X: center.X, Y: center.Y},
		Radius:     ir.F(radius),
		StartAngle: ir.F(startAngle),
		EndAngle:   ir.F(startAngle + sweep),
		Width:      ir.F(a.Width),
		Net:        a.Net,
	}
}

// lowerGraphic converts a Graphic into a Drawing, placing it with t (the
// zero Transform for board-level graphics, which are already absolute; the
// footprint's placement for footprint graphics), returning the points
// touched (for bbox purposes) and whether the conversion produced anything
// drawable.
func lowerGraphic(g Graphic, t geomutil.Transform, textSink *[]string) (ir.Drawing, []ir.Point, bool) {
	apply := func(p Position) ir.Point {
		out := t.Apply(geomutil.Point{X: p.X, Y: p.Y})
		return ir.Point{X: out.X, Y: out.Y}
	}

	switch g.Kind {
	case "line":
		s, e := apply(g.Start), apply(g.End)
		return ir.Segment{Start: s, End: e, Width: ir.F(g.Stroke.Width)}, []ir.Point{s, e}, true
	case "rect":
		s, e := apply(g.Start), apply(g.End)
		return ir.Rect{Start: s, End: e, Width: ir.F(g.Stroke.Width)}, []ir.Point{s, e}, true
	case "circle":
		c := apply(g.Center)
		e := apply(g.End)
		radius := distance(c, e)
		filled := 0
		if g.Fill.Type != "" && g.Fill.Type != "none" {
			filled = 1
		}
		return ir.Circle{Start: c, Radius: ir.F(radius), Width: ir.F(g.Stroke.Width), Filled: filled}, []ir.Point{c, e}, true
	case "arc":
		start := geomutil.Point{X: g.Start.X, Y: g.Start.Y}
		mid := geomutil.Point{X: g.Mid.X, Y: g.Mid.Y}
		end := geomutil.Point{X: g.End.X, Y: g.End.Y}
		start = t.Apply(start)
		mid = t.Apply(mid)
		end = t.Apply(end)
		center, radius, ok := geomutil.CircumCircle(start, mid, end)
		if !ok {
			return nil, nil, false
		}
		startAngle := geomutil.AngleOf(center, start)
		sweep := geomutil.SweepCCW(startAngle, geomutil.AngleOf(center, mid), geomutil.AngleOf(center, end))
		return ir.Arc{
			Start:      ir.Point{X: center.X, Y: center.Y},
			Radius:     ir.F(radius),
			StartAngle: ir.F(startAngle),
			EndAngle:   ir.F(startAngle + sweep),
			Width:      ir.F(g.Stroke.Width),
		}, []ir.Point{{X: start.X, Y: start.Y}, {X: end.X, Y: end.Y}}, true
	case "polygon", "curve":
		if len(g.Points) == 0 {
			return nil, nil, false
		}
		contour := make(ir.Contour, len(g.Points))
		var pts []ir.Point
		for i, p := range g.Points {
			ap := apply(p)
			contour[i] = ap
			pts = append(pts, ap)
		}
		filled := 1
		if g.Fill.Type == "" || g.Fill.Type == "none" {
			filled = 0
		}
		return ir.Polygon{
			Pos:      ir.Point{},
			Angle:    0,
			Polygons: []ir.Contour{contour},
			Filled:   filled,
			Width:    ir.F(g.Stroke.Width),
		}, pts, true
	case "text":
		*textSink = append(*textSink, g.Text)
		pos := apply(g.Start)
		height := g.Size.H
		if height == 0 {
			height = 1.0
		}
		st := ir.StrokeText{
			Pos:       pos,
			Text:      g.Text,
			Height:    ir.F(height),
			Width:     ir.F(g.Size.W),
			Thickness: ir.F(g.Width),
			Angle:     ir.F(g.Start.Angle + t.AngleDeg),
		}
		// fp_text's reference/value designator is annotated per spec §4.2
		// step 3/§3 ("annotated with ref=1/val=1 for fp_text").
		switch g.TextType {
		case "reference":
			st.Ref = 1
		case "value":
			st.Val = 1
		}
		return st, []ir.Point{pos}, true
	default:
		return nil, nil, false
	}
}

func distance(a, b ir.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func lowerFootprint(fp Footprint, textSink *[]string) (*ir.Footprint, error) {
	t := geomutil.Transform{
		Translate: geomutil.Point{X: fp.Position.X, Y: fp.Position.Y},
		AngleDeg:  fp.Position.Angle,
		Mirror:    isBackLayer(fp.Layer),
	}

	out := &ir.Footprint{
		Ref:    fp.Reference,
		Center: ir.Point{X: fp.Position.X, Y: fp.Position.Y},
		Layer:  sideOf2(fp.Layer),
	}

	bbox := geomutil.Empty()

	for _, p := range fp.Pads {
		pad := lowerPad(p, t)
		out.Pads = append(out.Pads, pad)
		hw, hh := float64(pad.Size[0])/2, float64(pad.Size[1])/2
		bbox.Expand(geomutil.Point{X: float64(pad.Pos.X) - hw, Y: float64(pad.Pos.Y) - hh})
		bbox.Expand(geomutil.Point{X: float64(pad.Pos.X) + hw, Y: float64(pad.Pos.Y) + hh})
	}

	for _, g := range fp.Graphics {
		bucket := classifyLayer(g.Layer)
		d, pts, ok := lowerGraphic(g, t, textSink)
		if !ok {
			continue
		}
		for _, p := range pts {
			bbox.Expand(geomutil.Point{X: p.X, Y: p.Y})
		}
		side := bucket.Side
		if side == "" {
			side = sideOf2(fp.Layer)
		}
		out.Drawings = append(out.Drawings, ir.LayeredDrawing{Layer: drawingBucketLabel(bucket, side), Drawing: d})
	}

	if !bbox.IsEmpty() {
		out.Bbox = ir.Bbox{
			Pos:    out.Center,
			RelPos: ir.Point{X: bbox.Center().X - fp.Position.X, Y: bbox.Center().Y - fp.Position.Y},
			Size:   ir.Size2{ir.F(bbox.Width()), ir.F(bbox.Height())},
			Angle:  ir.F(fp.Position.Angle),
		}
	}

	return out, nil
}

// sideOf2 returns "F" or "B" for a footprint/pad placement layer like
// "F.Cu" or "B.SilkS".
func sideOf2(layer string) string {
	if isBackLayer(layer) {
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

func lowerPad(p Pad, t geomutil.Transform) ir.Pad {
	abs := t.Apply(geomutil.Point{X: p.Position.X, Y: p.Position.Y})

	shape := mapPadShape(p.Shape)
	padType := ir.PadTypeSMD
	if p.Type == "thru_hole" || p.Type == "np_thru_hole" {
		padType = ir.PadTypeTH
	}

	out := ir.Pad{
		Layers: padSides(p.Layers),
		Pos:    ir.Point{X: abs.X, Y: abs.Y},
		Size:   ir.Size2{ir.F(p.Size.W), ir.F(p.Size.H)},
		Shape:  shape,
		Type:   padType,
		Angle:  ir.F(p.Position.Angle + t.AngleDeg),
		Net:    p.Net,
	}

	if padType == ir.PadTypeTH && p.Drill > 0 {
		drillShape := p.DrillShape
		if drillShape == "" {
			drillShape = ir.DrillShapeCircle
		}
		w, h := p.Drill, p.Drill
		if drillShape == ir.DrillShapeOblong && p.DrillW > 0 {
			h = p.DrillW
		}
		out.DrillShape = drillShape
		out.DrillSize = &ir.Size2{ir.F(w), ir.F(h)}
	}

	if p.Shape == "roundrect" {
		minSide := p.Size.W
		if p.Size.H < minSide {
			minSide = p.Size.H
		}
		out.Radius = ir.F(p.RoundRatio * minSide)
	}

	if p.ChamfRatio > 0 {
		out.ChamfRatio = ir.F(p.ChamfRatio)
		mask := 0
		if p.ChamfTL {
			mask |= ir.ChamferTL
		}
		if p.ChamfTR {
			mask |= ir.ChamferTR
		}
		if p.ChamfBR {
			mask |= ir.ChamferBR
		}
		if p.ChamfBL {
			mask |= ir.ChamferBL
		}
		out.ChamfPos = mask
	}

	return out
}

func mapPadShape(shape string) string {
	switch shape {
	case "rect":
		return ir.PadShapeRect
	case "circle":
		return ir.PadShapeCircle
	case "oval":
		return ir.PadShapeOval
	case "roundrect":
		return ir.PadShapeRoundRect
	case "trapezoid", "custom":
		return ir.PadShapeCustom
	default:
		return ir.PadShapeRect
	}
}
