package altium

import "github.com/meawoppl/pastebom.com/pkg/ir"

// lowerText converts one Texts6 record into a stroke-font drawing. Per
// spec §4.5, stroke-font rendering requires a bundled glyph table, which
// this core always carries (pkg/font), so Altium text is emitted the same
// way KiCad's is rather than falling back to the placeholder-rectangle
// form the spec reserves for glyph-table-less builds. A wide-string
// reference takes priority over the embedded Latin-1 string when present,
// since the latter is truncated to whatever the narrow encoding could
// hold (spec §4.5: "text records with a wide-string reference pull their
// string from here").
func lowerText(t textRecord, wideStrings map[int]string, comps map[int]componentRecord, textSink *[]string) (ir.Drawing, bool) {
	text := t.Text
	if t.WideIdx >= 0 {
		if s, ok := wideStrings[t.WideIdx]; ok && s != "" {
			text = s
		}
	}
	if text == "" {
		return nil, false
	}

	pos := toMM(t.X, t.Y)
	angle := rotMM(t.Rotation)
	height := lenMM(t.Height)
	width := height * 0.6 * float64(len(text))

	ref, val := textRoleFlags(t, comps)
	*textSink = append(*textSink, text)

	return ir.StrokeText{
		Pos:       ir.Point{X: pos.X, Y: pos.Y},
		Text:      text,
		Height:    ir.F(height),
		Width:     ir.F(width),
		Thickness: ir.F(lenMM(t.Thickness)),
		Angle:     ir.F(angle),
		Ref:       ref,
		Val:       val,
	}, true
}

// textRoleFlags guesses whether a text record is a reference-designator
// or value label by comparing its literal text against the parent
// component's designator/value strings (spec §4.5's "ref=1/val=1 set from
// the parent component's kind").
func textRoleFlags(t textRecord, comps map[int]componentRecord) (ref, val int) {
	c, ok := comps[t.Component]
	if !ok {
		return 0, 0
	}
	switch {
	case t.Text == "" && c.Name != "":
		return 1, 0
	case c.Name != "" && t.Text == c.Name:
		return 1, 0
	case c.Value != "" && t.Text == c.Value:
		return 0, 1
	}
	return 0, 0
}
