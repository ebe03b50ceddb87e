package altium

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/meawoppl/pastebom.com/pkg/ir"
)

func TestParseKVStream(t *testing.T) {
	var buf []byte
	body := []byte("RECORD=17|LAYER=TOP|NAME=R1|ROTATION=90.5|NOBOM=T")
	buf = appendLenPrefixed(buf, body)

	recs, err := parseKVStream(buf)
	if err != nil {
		t.Fatalf("parseKVStream: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.String("NAME") != "R1" {
		t.Errorf("NAME = %q, want R1", r.String("NAME"))
	}
	if r.Int("RECORD") != 17 {
		t.Errorf("RECORD = %d, want 17", r.Int("RECORD"))
	}
	if got := r.Float("ROTATION"); got != 90.5 {
		t.Errorf("ROTATION = %v, want 90.5", got)
	}
	if !r.Bool("NOBOM") {
		t.Errorf("NOBOM = false, want true")
	}
	if r.HasKey("MISSING") {
		t.Errorf("HasKey(MISSING) = true, want false")
	}
}

func TestParseKVStreamSkipsEmptyRecords(t *testing.T) {
	var buf []byte
	buf = appendLenPrefixed(buf, nil)
	buf = appendLenPrefixed(buf, []byte("NAME=GND"))

	recs, err := parseKVStream(buf)
	if err != nil {
		t.Fatalf("parseKVStream: %v", err)
	}
	if len(recs) != 1 || recs[0].String("NAME") != "GND" {
		t.Fatalf("got %+v, want one record NAME=GND", recs)
	}
}

func appendLenPrefixed(buf, body []byte) []byte {
	head := make([]byte, 4)
	binary.LittleEndian.PutUint32(head, uint32(len(body)))
	buf = append(buf, head...)
	buf = append(buf, body...)
	return buf
}

func TestReadSubRecordsAndGroupRuns(t *testing.T) {
	var buf []byte
	buf = appendSubRecord(buf, 0, []byte("1\x00"))
	buf = appendSubRecord(buf, 1, make([]byte, 40))
	buf = appendSubRecord(buf, 0, []byte("2\x00"))
	buf = appendSubRecord(buf, 1, make([]byte, 40))

	subs, err := readSubRecords(buf)
	if err != nil {
		t.Fatalf("readSubRecords: %v", err)
	}
	if len(subs) != 4 {
		t.Fatalf("got %d sub-records, want 4", len(subs))
	}

	runs := groupRuns(subs)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if len(runs[0]) != 2 || len(runs[1]) != 2 {
		t.Fatalf("runs = %+v, want two pairs", runs)
	}

	geomIdx, nameIdx := payloadIndices(runs[0])
	if geomIdx != 1 || nameIdx != 0 {
		t.Fatalf("payloadIndices = (%d, %d), want (1, 0)", geomIdx, nameIdx)
	}
}

func appendSubRecord(buf []byte, typ byte, payload []byte) []byte {
	head := make([]byte, 5)
	head[0] = typ
	binary.LittleEndian.PutUint32(head[1:5], uint32(len(payload)))
	buf = append(buf, head...)
	buf = append(buf, payload...)
	return buf
}

func TestParseTracks6(t *testing.T) {
	p := make([]byte, 33)
	p[0] = legacyTopCopper
	binary.LittleEndian.PutUint16(p[3:5], uint16(int16(2)))  // net
	binary.LittleEndian.PutUint16(p[7:9], uint16(int16(-1))) // no component
	binary.LittleEndian.PutUint32(p[13:17], uint32(int32(0)))
	binary.LittleEndian.PutUint32(p[17:21], uint32(int32(0)))
	binary.LittleEndian.PutUint32(p[21:25], uint32(int32(1000000)))
	binary.LittleEndian.PutUint32(p[25:29], uint32(int32(0)))
	binary.LittleEndian.PutUint32(p[29:33], uint32(int32(10000)))

	var buf []byte
	buf = appendSubRecord(buf, 0, p)

	tracks, err := parseTracks6(buf)
	if err != nil {
		t.Fatalf("parseTracks6: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	tr := tracks[0]
	if tr.Layer != legacyTopCopper || tr.Net != 2 || tr.X2 != 1000000 || tr.Width != 10000 {
		t.Fatalf("track = %+v, unexpected field values", tr)
	}
}

func TestNormalizeLayerAcrossGenerations(t *testing.T) {
	cases := []struct {
		id   int
		want int
	}{
		{legacyTopCopper, legacyTopCopper},
		{v7Base + legacyBotCopper, legacyBotCopper},
		{v8Base + legacyMultiLayer, legacyMultiLayer},
	}
	for _, c := range cases {
		if got := normalizeLayer(c.id); got != c.want {
			t.Errorf("normalizeLayer(%#x) = %d, want %d", c.id, got, c.want)
		}
	}
}

func TestClassifyLayerMechanical(t *testing.T) {
	mechKinds := map[int]mechanicalKind{5: mechAssemblyTop, 6: mechanicalKind("UNKNOWN_KIND")}

	if b, ok := classifyLayer(legacyTopCopper, mechKinds); !ok || b.Name != "copper" || b.Side != ir.SideFront {
		t.Errorf("classifyLayer(legacyTopCopper) = %+v, %v", b, ok)
	}
	if b, ok := classifyLayer(5, mechKinds); !ok || b.Name != "fab" || b.Side != ir.SideFront {
		t.Errorf("classifyLayer(mech assembly top) = %+v, %v", b, ok)
	}
	if _, ok := classifyLayer(6, mechKinds); ok {
		t.Errorf("classifyLayer(unrecognized mech kind) = ok, want dropped")
	}
	if _, ok := classifyLayer(999, mechKinds); ok {
		t.Errorf("classifyLayer(unknown layer) = ok, want dropped")
	}
}

func TestArcAnglesPreservesEndGreaterThanStart(t *testing.T) {
	start, end := arcAngles(10, 100)
	if start != -100 || end != -10 {
		t.Fatalf("arcAngles(10,100) = (%v,%v), want (-100,-10)", start, end)
	}
	if end < start {
		t.Fatalf("arcAngles produced end < start: %v < %v", end, start)
	}
}

func TestLowerPadSMD(t *testing.T) {
	p := padRecord{
		Name: "1", Layer: legacyTopCopper, Net: -1, Component: noComponent,
		TopW: 40000, TopH: 40000, MidW: 40000, MidH: 40000, BotW: 40000, BotH: 40000,
		TopShape: padShapeRect, MidShape: padShapeRect, BotShape: padShapeRect,
	}
	pads := lowerPad(p, func(int) string { return "" })
	if len(pads) != 1 {
		t.Fatalf("got %d pads, want 1", len(pads))
	}
	pad := pads[0]
	if pad.Type != ir.PadTypeSMD {
		t.Errorf("Type = %q, want smd", pad.Type)
	}
	if len(pad.Layers) != 1 || pad.Layers[0] != ir.SideFront {
		t.Errorf("Layers = %v, want [F]", pad.Layers)
	}
	if pad.Pin1 != 1 {
		t.Errorf("Pin1 = %d, want 1 for pad named \"1\"", pad.Pin1)
	}
}

func TestLowerPadThroughHole(t *testing.T) {
	p := padRecord{
		Name: "3", Layer: legacyMultiLayer, Net: -1, Component: noComponent,
		TopW: 60000, TopH: 60000, MidW: 60000, MidH: 60000, BotW: 60000, BotH: 60000,
		Hole:     31496, // ~0.8mm
		TopShape: padShapeCircle, MidShape: padShapeCircle, BotShape: padShapeCircle,
	}
	pads := lowerPad(p, func(int) string { return "" })
	if len(pads) != 1 {
		t.Fatalf("got %d pads, want 1", len(pads))
	}
	pad := pads[0]
	if pad.Type != ir.PadTypeTH {
		t.Fatalf("Type = %q, want th", pad.Type)
	}
	if len(pad.Layers) != 2 || pad.Layers[0] != ir.SideFront || pad.Layers[1] != ir.SideBack {
		t.Errorf("Layers = %v, want [F B]", pad.Layers)
	}
	if pad.DrillShape != ir.DrillShapeCircle {
		t.Errorf("DrillShape = %q, want circle", pad.DrillShape)
	}
	if pad.DrillSize == nil {
		t.Fatal("DrillSize is nil, want ~0.8mm")
	}
	want := 0.8
	if math.Abs(float64(pad.DrillSize[0])-want) > 0.001 {
		t.Errorf("DrillSize[0] = %v, want ~%v", pad.DrillSize[0], want)
	}
}

func TestLowerPadAsymmetricBottomSizeProducesTwoEntries(t *testing.T) {
	p := padRecord{
		Name: "2", Layer: legacyMultiLayer, Net: -1, Component: noComponent,
		TopW: 40000, TopH: 40000, MidW: 40000, MidH: 40000, BotW: 60000, BotH: 60000,
		Hole:     20000,
		TopShape: padShapeCircle, MidShape: padShapeCircle, BotShape: padShapeCircle,
	}
	pads := lowerPad(p, func(int) string { return "" })
	if len(pads) != 2 {
		t.Fatalf("got %d pads, want 2 (differing top/bottom size)", len(pads))
	}
}

func TestOctagonContourHasEightVertices(t *testing.T) {
	c := octagonContour(1, 1)
	if len(c) != 8 {
		t.Fatalf("octagonContour produced %d vertices, want 8", len(c))
	}
}

func TestParseBoard6Outline(t *testing.T) {
	recs := []kvRecord{
		{
			"KIND":   "0",
			"VCOUNT": "2",
			"VX0":    "0", "VY0": "0", "SA0": "0", "EA0": "0", "R0": "0",
			"VX1": "1000000", "VY1": "0", "SA1": "0", "EA1": "0", "R1": "0",
		},
		{"LAYERID": "5", "MECHKIND": "assembly_top"},
	}
	mechKinds, outline := parseBoard6(recs)
	if len(outline) != 2 {
		t.Fatalf("got %d outline vertices, want 2", len(outline))
	}
	if outline[1].X != 1000000 {
		t.Errorf("outline[1].X = %d, want 1000000", outline[1].X)
	}
	if mechKinds[5] != mechAssemblyTop {
		t.Errorf("mechKinds[5] = %q, want ASSEMBLY_TOP", mechKinds[5])
	}
}

func TestLowerBoardOutlineProducesSegment(t *testing.T) {
	verts := []boardVertex{
		{X: 0, Y: 0},
		{X: 1000000, Y: 0},
	}
	drawings := lowerBoardOutline(verts)
	if len(drawings) != 1 {
		t.Fatalf("got %d drawings, want 1 segment", len(drawings))
	}
	seg, ok := drawings[0].(ir.Segment)
	if !ok {
		t.Fatalf("drawing type = %T, want ir.Segment", drawings[0])
	}
	if seg.Start.X != 0 || seg.End.X == 0 {
		t.Fatalf("segment = %+v, want nonzero end X", seg)
	}
}

func TestAssembleFootprintsGroupsPadsByComponent(t *testing.T) {
	comps := []componentRecord{
		{Index: 0, Name: "R1", X: 500000, Y: 500000},
	}
	builders := newFootprintBuilders(comps)
	pads := []padRecord{
		{Name: "1", Component: 0, Layer: legacyTopCopper, TopW: 10000, TopH: 10000, MidW: 10000, MidH: 10000, BotW: 10000, BotH: 10000},
		{Name: "2", Component: 0, Layer: legacyTopCopper, TopW: 10000, TopH: 10000, MidW: 10000, MidH: 10000, BotW: 10000, BotH: 10000},
		{Name: "", Component: noComponent, Layer: legacyTopCopper, TopW: 10000, TopH: 10000, MidW: 10000, MidH: 10000, BotW: 10000, BotH: 10000},
	}
	boardPads := placePads(builders, pads, func(int) string { return "" })
	if len(boardPads) != 1 {
		t.Fatalf("got %d board-level pads, want 1", len(boardPads))
	}
	fps := buildFootprints(comps, builders)
	if len(fps) != 1 {
		t.Fatalf("got %d footprints, want 1", len(fps))
	}
	if len(fps[0].Pads) != 2 {
		t.Fatalf("footprint has %d pads, want 2", len(fps[0].Pads))
	}
}

func TestToIREmptyDocumentProducesNoFootprintsOrEdges(t *testing.T) {
	doc := &Document{WideStrings: map[int]string{}}
	data, comps, warnings := ToIR(doc)
	if len(comps) != 0 {
		t.Errorf("got %d bom components, want 0", len(comps))
	}
	if len(data.Footprints) != 0 {
		t.Errorf("got %d footprints, want 0", len(data.Footprints))
	}
	if len(data.Edges) != 0 {
		t.Errorf("got %d edges, want 0", len(data.Edges))
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none for an empty document", warnings)
	}
}

func TestLooksLikeAltium(t *testing.T) {
	good := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0, 0}
	if !LooksLikeAltium(good) {
		t.Error("LooksLikeAltium(valid magic) = false, want true")
	}
	if LooksLikeAltium([]byte("<?xml version")) {
		t.Error("LooksLikeAltium(xml) = true, want false")
	}
	if LooksLikeAltium(nil) {
		t.Error("LooksLikeAltium(nil) = true, want false")
	}
}
