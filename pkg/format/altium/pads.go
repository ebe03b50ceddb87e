package altium

import (
	"math"

	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// Altium pad shape codes (spec §4.5).
const (
	padShapeCircle   = 1
	padShapeRect     = 2
	padShapeOctagon  = 3
	padShapeRoundRect = 9
)

// lowerPadShape fills in the shape, radius, and polygon fields on pad (the
// caller sets Size) for one layer's (top/mid/bottom) size and shape code, given the
// corner radius sub-record value when present (0 means "use the spec's
// default of min-dimension * 0.25").
func lowerPadShape(pad *ir.Pad, shapeCode int, w, h, cornerRadiusMM float64) {
	switch shapeCode {
	case padShapeRect:
		pad.Shape = ir.PadShapeRect
	case padShapeOctagon:
		pad.Shape = ir.PadShapeCustom
		pad.Polygons = []ir.Contour{octagonContour(w, h)}
	case padShapeRoundRect:
		pad.Shape = ir.PadShapeRoundRect
		r := cornerRadiusMM
		if r <= 0 {
			r = math.Min(w, h) * 0.25
		}
		pad.Radius = ir.F(r)
	default: // padShapeCircle and anything unrecognized
		pad.Shape = ir.PadShapeCircle
	}
}

// octagonContour computes an 8-vertex polygon for an octagonal pad: a
// rect with all four corners chamfered at 45 degrees (spec §4.5).
func octagonContour(w, h float64) ir.Contour {
	hw, hh := w/2, h/2
	chamfer := math.Min(w, h) * 0.25
	return ir.Contour{
		{X: -hw + chamfer, Y: -hh},
		{X: hw - chamfer, Y: -hh},
		{X: hw, Y: -hh + chamfer},
		{X: hw, Y: hh - chamfer},
		{X: hw - chamfer, Y: hh},
		{X: -hw + chamfer, Y: hh},
		{X: -hw, Y: hh - chamfer},
		{X: -hw, Y: -hh + chamfer},
	}
}

// lowerPad converts one raw Altium pad record into one or more IR pads:
// usually one, but two when a through-hole pad's bottom layer size differs
// from the top layer (a top-sized pad plus a bottom-sized pad). A differing
// mid-layer size alone does not add a pad, and SMD pads always yield one.
func lowerPad(p padRecord, netName func(int) string) []ir.Pad {
	pos := toMM(p.X, p.Y)
	angle := rotMM(p.Rotation)
	th := isMultiLayer(p.Layer) || p.Hole != 0

	base := ir.Pad{
		Pos:   ir.Point{X: pos.X, Y: pos.Y},
		Angle: ir.F(angle),
		Pin1:  pin1If(p.Name),
		Net:   netName(p.Net),
		Type:  ir.PadTypeSMD,
	}
	if th {
		base.Type = ir.PadTypeTH
		base.Layers = []string{ir.SideFront, ir.SideBack}
		if p.Hole != 0 {
			base.DrillShape = ir.DrillShapeCircle
			d := lenMM(p.Hole)
			base.DrillSize = &ir.Size2{ir.F(d), ir.F(d)}
		}
	} else if legacyLayerIsBack(p.Layer) {
		base.Layers = []string{ir.SideBack}
	} else {
		base.Layers = []string{ir.SideFront}
	}

	top := base
	top.Size = ir.Size2{ir.F(lenMM(p.TopW)), ir.F(lenMM(p.TopH))}
	lowerPadShape(&top, p.TopShape, lenMM(p.TopW), lenMM(p.TopH), 0)

	if !th || (p.MidW == p.TopW && p.MidH == p.TopH && p.BotW == p.TopW && p.BotH == p.TopH) {
		return []ir.Pad{top}
	}

	out := []ir.Pad{top}
	if p.BotW != p.TopW || p.BotH != p.TopH {
		bot := base
		bot.Size = ir.Size2{ir.F(lenMM(p.BotW)), ir.F(lenMM(p.BotH))}
		lowerPadShape(&bot, p.BotShape, lenMM(p.BotW), lenMM(p.BotH), 0)
		out = append(out, bot)
	}
	return out
}

func legacyLayerIsBack(layer int) bool {
	return normalizeLayer(layer) == legacyBotCopper
}

func pin1If(name string) int {
	if name == "1" {
		return 1
	}
	return 0
}
