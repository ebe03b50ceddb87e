package altium

import (
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// footprintBuilder accumulates the objects that belong to one component
// (or to the board itself, for component_id == noComponent) while the
// object streams are walked once each.
type footprintBuilder struct {
	comp     componentRecord
	pads     []ir.Pad
	drawings []ir.LayeredDrawing
	local    geomutil.BoundingBox
}

func newFootprintBuilder(comp componentRecord) *footprintBuilder {
	return &footprintBuilder{comp: comp, local: geomutil.Empty()}
}

func (fb *footprintBuilder) transform() geomutil.Transform {
	pos := toMM(fb.comp.X, fb.comp.Y)
	return geomutil.Transform{
		Translate: pos,
		AngleDeg:  rotMM(fb.comp.Rotation),
	}
}

// addPad appends a pad already in absolute board coordinates (as Altium's
// own pad geometry fields always are), and folds its local-space position
// into the running bbox via the component's inverse transform (spec
// §4.5: "apply inverse component transform... to get local coordinates
// for bbox computation, keep absolute coordinates for pads in IR").
func (fb *footprintBuilder) addPad(pad ir.Pad) {
	fb.pads = append(fb.pads, pad)
	t := fb.transform()
	local := t.ApplyInverse(geomutil.Point{X: pad.Pos.X, Y: pad.Pos.Y})
	fb.local.Expand(local)
}

// addDrawing attaches a per-side drawing to this component, folding its
// extent into the same local bbox pads contribute to.
func (fb *footprintBuilder) addDrawing(side string, d ir.Drawing, extent []geomutil.Point) {
	fb.drawings = append(fb.drawings, ir.LayeredDrawing{Layer: side, Drawing: d})
	t := fb.transform()
	for _, p := range extent {
		fb.local.Expand(t.ApplyInverse(p))
	}
}

func (fb *footprintBuilder) build() ir.Footprint {
	t := fb.transform()
	out := ir.Footprint{
		Ref:      fb.comp.Name,
		Center:   ir.Point{X: t.Translate.X, Y: t.Translate.Y},
		Pads:     fb.pads,
		Drawings: fb.drawings,
		Layer:    componentSide(fb.comp.Layer),
	}
	if !fb.local.IsEmpty() {
		out.Bbox = ir.Bbox{
			Pos:    ir.Point{X: t.Translate.X, Y: t.Translate.Y},
			RelPos: ir.Point{X: fb.local.Center().X, Y: fb.local.Center().Y},
			Size:   ir.Size2{ir.F(fb.local.Width()), ir.F(fb.local.Height())},
			Angle:  ir.F(t.AngleDeg),
		}
	}
	return out
}

func componentSide(layer int) string {
	if legacyLayerIsBack(layer) || normalizeLayer(layer) == legacyBotOverlay {
		return ir.SideBack
	}
	return ir.SideFront
}

// newFootprintBuilders seeds one builder per Components6 record, keyed by
// component index for O(1) lookup while walking the other object streams.
func newFootprintBuilders(comps []componentRecord) map[int]*footprintBuilder {
	out := make(map[int]*footprintBuilder, len(comps))
	for _, c := range comps {
		out[c.Index] = newFootprintBuilder(c)
	}
	return out
}

// placePads groups every pad by its component_id into the matching
// builder, and returns the pads whose component_id is noComponent (or
// otherwise unresolved) as board-level pads instead.
func placePads(builders map[int]*footprintBuilder, pads []padRecord, netName func(int) string) []ir.Pad {
	var boardPads []ir.Pad
	for _, p := range pads {
		lowered := lowerPad(p, netName)
		fb, ok := builders[p.Component]
		if p.Component == noComponent || p.Component < 0 || !ok {
			boardPads = append(boardPads, lowered...)
			continue
		}
		for _, pd := range lowered {
			fb.addPad(pd)
		}
	}
	return boardPads
}

// buildFootprints finalizes every builder in component-index order.
func buildFootprints(comps []componentRecord, builders map[int]*footprintBuilder) []ir.Footprint {
	out := make([]ir.Footprint, len(comps))
	for i, c := range comps {
		out[i] = builders[c.Index].build()
	}
	return out
}
