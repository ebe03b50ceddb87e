package altium

import (
	"github.com/meawoppl/pastebom.com/pkg/bom"
	"github.com/meawoppl/pastebom.com/pkg/font"
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// ToIR lowers a parsed Altium Document into the tool-independent PcbData
// model (spec §4.5). The returned bom.Component slice is parallel to
// data.Footprints and carries the BOM-relevant fields the PcbData schema
// itself omits (spec §3, §4.6).
func ToIR(doc *Document) (*ir.PcbData, []bom.Component, []string) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	netName := func(idx int) string {
		if idx < 0 || idx >= len(doc.Nets) {
			return ""
		}
		return doc.Nets[idx].Name
	}
	compByIdx := make(map[int]componentRecord, len(doc.Components))
	for _, c := range doc.Components {
		compByIdx[c.Index] = c
	}

	data := &ir.PcbData{}
	edgeBox := geomutil.Empty()
	var allText []string

	for _, d := range lowerBoardOutline(doc.Outline) {
		data.Edges = append(data.Edges, d)
	}
	for _, v := range doc.Outline {
		edgeBox.Expand(toMM(v.X, v.Y))
	}
	if !edgeBox.IsEmpty() {
		data.EdgesBbox = ir.EdgesBbox{
			MinX: ir.F(edgeBox.Min.X), MinY: ir.F(edgeBox.Min.Y),
			MaxX: ir.F(edgeBox.Max.X), MaxY: ir.F(edgeBox.Max.Y),
		}
	}

	builders := newFootprintBuilders(doc.Components)
	boardPads := placePads(builders, doc.Pads, netName)

	for _, t := range doc.Texts {
		d, ok := lowerText(t, doc.WideStrings, compByIdx, &allText)
		if !ok {
			continue
		}
		bucket, known := classifyLayer(t.Layer, doc.MechKinds)
		if !known {
			continue
		}
		side := bucket.Side
		if side == "" {
			side = ir.SideFront
		}
		if fb, ok := builders[t.Component]; ok && t.Component != noComponent {
			extent := strokeTextExtent(d)
			fb.addDrawing(side, d, extent)
			continue
		}
		switch bucket.Name {
		case "silk":
			appendSideDrawing(&data.Drawings.Silkscreen, side, d)
		case "fab":
			appendSideDrawing(&data.Drawings.Fabrication, side, d)
		}
	}

	data.Footprints = buildFootprints(doc.Components, builders)
	comps := make([]bom.Component, len(doc.Components))
	for i, c := range doc.Components {
		comps[i] = bom.Component{
			Ref:     c.Name,
			Layer:   data.Footprints[i].Layer,
			Virtual: c.Virtual,
			Fields: map[string]string{
				"Value":     c.Value,
				"Footprint": c.Footprint,
			},
		}
	}
	if len(boardPads) > 0 {
		warn("altium: board-level pads with no owning component were dropped from footprint output")
	}

	tracks := &ir.Tracks{}
	for _, t := range doc.Tracks {
		bucket, known := classifyLayer(t.Layer, doc.MechKinds)
		if !known || bucket.Name != "copper" {
			continue
		}
		s, e := toMM(t.X1, t.Y1), toMM(t.X2, t.Y2)
		rec := ir.TrackSegment{
			Start: ir.Point{X: s.X, Y: s.Y}, End: ir.Point{X: e.X, Y: e.Y},
			Width: ir.F(lenMM(t.Width)), Net: netName(t.Net),
		}
		appendTrackBySide(tracks, bucket.Side, rec)
	}
	for _, a := range doc.Arcs {
		bucket, known := classifyLayer(a.Layer, doc.MechKinds)
		if !known || bucket.Name != "copper" {
			continue
		}
		center := toMM(a.CX, a.CY)
		start, end := arcAngles(a.StartAngle, a.EndAngle)
		rec := ir.TrackArc{
			Center: ir.Point{X: center.X, Y: center.Y}, Radius: ir.F(lenMM(a.Radius)),
			StartAngle: ir.F(start), EndAngle: ir.F(end),
			Width: ir.F(lenMM(a.Width)), Net: netName(a.Net),
		}
		appendTrackBySide(tracks, bucket.Side, rec)
	}
	for _, v := range doc.Vias {
		p := toMM(v.X, v.Y)
		d := lenMM(v.Hole)
		rec := ir.TrackVia{
			Start: ir.Point{X: p.X, Y: p.Y}, End: ir.Point{X: p.X, Y: p.Y},
			Width: ir.F(lenMM(v.Diameter)), Net: netName(v.Net),
			DrillSize: ir.Size2{ir.F(d), ir.F(d)},
		}
		tracks.F = append(tracks.F, rec)
		tracks.B = append(tracks.B, rec)
	}
	if len(tracks.F) > 0 || len(tracks.B) > 0 {
		data.Tracks = tracks
	}

	if len(doc.Fills) > 0 {
		var zonePolys []ir.Contour
		for _, f := range doc.Fills {
			bucket, known := classifyLayer(f.Layer, doc.MechKinds)
			if !known || bucket.Name != "copper" {
				continue
			}
			c1, c2 := toMM(f.X1, f.Y1), toMM(f.X2, f.Y2)
			zonePolys = append(zonePolys, ir.Contour{
				{X: c1.X, Y: c1.Y}, {X: c2.X, Y: c1.Y},
				{X: c2.X, Y: c2.Y}, {X: c1.X, Y: c2.Y},
			})
		}
		if len(zonePolys) > 0 {
			data.Zones = append(data.Zones, ir.ZonePolygons{Polygons: zonePolys})
		}
	}

	netSet := map[string]bool{}
	for _, n := range doc.Nets {
		if n.Name != "" {
			netSet[n.Name] = true
		}
	}
	for n := range netSet {
		data.Nets = append(data.Nets, n)
	}

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

func appendTrackBySide(tracks *ir.Tracks, side string, rec ir.Track) {
	if side == ir.SideBack {
		tracks.B = append(tracks.B, rec)
	} else {
		tracks.F = append(tracks.F, rec)
	}
}

func appendSideDrawing(bucket *ir.SideDrawings, side string, d ir.Drawing) {
	if side == ir.SideBack {
		bucket.B = append(bucket.B, d)
	} else {
		bucket.F = append(bucket.F, d)
	}
}

// strokeTextExtent returns the handful of points a StrokeText drawing
// needs contributed to its owning footprint's local bounding box: its
// anchor corners, approximated from position/width/height since the
// rendered glyph outlines themselves aren't computed until font.Used runs.
func strokeTextExtent(d ir.Drawing) []geomutil.Point {
	t, ok := d.(ir.StrokeText)
	if !ok {
		return nil
	}
	hw, hh := float64(t.Width)/2, float64(t.Height)/2
	cx, cy := float64(t.Pos.X), float64(t.Pos.Y)
	return []geomutil.Point{
		{X: cx - hw, Y: cy - hh}, {X: cx + hw, Y: cy + hh},
	}
}
