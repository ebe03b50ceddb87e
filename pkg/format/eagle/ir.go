package eagle

import (
	"github.com/meawoppl/pastebom.com/pkg/bom"
	"github.com/meawoppl/pastebom.com/pkg/font"
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// ToIR lowers a parsed Eagle Document into the tool-independent PcbData
// model (spec §4.4). The returned bom.Component slice is parallel to
// data.Footprints and carries the BOM-relevant fields the PcbData schema
// itself omits (spec §3, §4.6).
func ToIR(doc *Document) (*ir.PcbData, []bom.Component, []string) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }
	var comps []bom.Component

	scale := unitScale(doc.Drawing.Grid.Unit)
	// Eagle's native coordinate system has Y pointing up (board origin at
	// bottom-left), unlike the IR's Y-down convention; every raw
	// coordinate is flipped on the way in, the same treatment spec §4.5
	// spells out explicitly for Altium.
	toMM := func(x, y float64) geomutil.Point {
		return geomutil.Point{X: x * scale, Y: -y * scale}
	}

	data := &ir.PcbData{}
	edgeBox := geomutil.Empty()
	netSet := map[string]bool{}
	var allText []string

	board := doc.Drawing.Board
	identity := geomutil.Transform{}

	file := func(bucket layerBucket, d ir.Drawing, pts []ir.Point) {
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

	for _, w := range board.Plain.Wires {
		bucket := classifyLayer(w.Layer)
		d, pts, ok := lowerWire(w, identity, toMM, scale)
		if ok {
			file(bucket, d, pts)
		}
	}
	for _, c := range board.Plain.Circles {
		d, pts, ok := lowerCircle(c, identity, toMM, scale)
		if ok {
			file(classifyLayer(c.Layer), d, pts)
		}
	}
	for _, r := range board.Plain.Rects {
		d, pts, ok := lowerRect(r, identity, toMM, scale)
		if ok {
			file(classifyLayer(r.Layer), d, pts)
		}
	}
	for _, p := range board.Plain.Polygons {
		d, pts, ok := lowerPolygonOutline(p, identity, toMM, scale)
		if ok {
			file(classifyLayer(p.Layer), d, pts)
		}
	}
	for _, t := range board.Plain.Texts {
		d, pts, ok := lowerText(t, identity, toMM, scale, &allText)
		if ok {
			file(classifyLayer(t.Layer), d, pts)
		}
	}

	if !edgeBox.IsEmpty() {
		data.EdgesBbox = ir.EdgesBbox{
			MinX: ir.F(edgeBox.Min.X), MinY: ir.F(edgeBox.Min.Y),
			MaxX: ir.F(edgeBox.Max.X), MaxY: ir.F(edgeBox.Max.Y),
		}
	}

	if len(board.Elements) > 0 || len(board.Signals) > 0 {
		idx := buildPackageIndex(board.Libraries)
		tracks := &ir.Tracks{}

		for _, e := range board.Elements {
			pkg, ok := idx.lookup(e.Library, e.Package)
			if !ok {
				warn("eagle: unresolved package " + e.Library + ":" + e.Package + " for element " + e.Name)
				continue
			}
			fp := lowerElement(e, pkg, toMM, scale, &allText)
			data.Footprints = append(data.Footprints, *fp)
			comps = append(comps, bom.Component{
				Ref:   e.Name,
				Layer: fp.Layer,
				Fields: map[string]string{
					"Value":     e.Value,
					"Footprint": e.Library + ":" + e.Package,
				},
			})
		}

		for _, sig := range board.Signals {
			if sig.Name != "" {
				netSet[sig.Name] = true
			}
			for _, w := range sig.Wires {
				bucket := classifyLayer(w.Layer)
				if bucket.Name == "edge" {
					d, pts, ok := lowerWire(w, identity, toMM, scale)
					if ok {
						file(bucket, d, pts)
					}
					continue
				}
				if w.Curve != 0 {
					s, e := toMM(w.X1, w.Y1), toMM(w.X2, w.Y2)
					center, radius, startAngle, endAngle := chordAngleToArc(s, e, w.Curve)
					rec := ir.TrackArc{
						Center: ir.Point{X: center.X, Y: center.Y}, Radius: ir.F(radius),
						StartAngle: ir.F(startAngle), EndAngle: ir.F(endAngle),
						Width: ir.F(w.Width * scale), Net: sig.Name,
					}
					appendTrackBySide(tracks, bucket.Side, rec)
					continue
				}
				s, e := toMM(w.X1, w.Y1), toMM(w.X2, w.Y2)
				rec := ir.TrackSegment{
					Start: ir.Point{X: s.X, Y: s.Y}, End: ir.Point{X: e.X, Y: e.Y},
					Width: ir.F(w.Width * scale), Net: sig.Name,
				}
				appendTrackBySide(tracks, bucket.Side, rec)
			}
			for _, v := range sig.Vias {
				p := toMM(v.X, v.Y)
				rec := ir.TrackVia{
					Start: ir.Point{X: p.X, Y: p.Y}, End: ir.Point{X: p.X, Y: p.Y},
					Width: ir.F(v.Diameter * scale), Net: sig.Name,
					DrillSize: ir.Size2{ir.F(v.Drill * scale), ir.F(v.Drill * scale)},
				}
				tracks.F = append(tracks.F, rec)
				tracks.B = append(tracks.B, rec)
			}
			for _, poly := range sig.Polygons {
				if len(poly.Vertices) == 0 {
					continue
				}
				contour := make(ir.Contour, len(poly.Vertices))
				for i, v := range poly.Vertices {
					p := toMM(v.X, v.Y)
					contour[i] = ir.Point{X: p.X, Y: p.Y}
				}
				data.Zones = append(data.Zones, ir.ZonePolygons{
					Polygons: []ir.Contour{contour},
					Net:      sig.Name,
				})
			}
		}

		if len(tracks.F) > 0 || len(tracks.B) > 0 {
			data.Tracks = tracks
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

type toMMFn func(x, y float64) geomutil.Point
