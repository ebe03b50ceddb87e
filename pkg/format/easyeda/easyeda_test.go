package easyeda

import (
	"strings"
	"testing"
)

const minimalDoc = "{\n" +
	"  \"head\": {\"title\": \"Demo\"},\n" +
	"  \"shape\": [\n" +
	"    \"TRACK~0~10~~0 0 400 0~\",\n" +
	"    \"TRACK~0~10~~400 0 400 400~\",\n" +
	"    \"TRACK~0~10~~400 400 0 400~\",\n" +
	"    \"TRACK~0~10~~0 400 0 0~\",\n" +
	"    \"LIB~200~200~Designator`0`R1#@$Value`0`10k#@$package`0`R_0603~90~0~comp1~1~PAD~RECT~-15~0~35~45~1~GND~1~0~~0~pad1#@$PAD~RECT~15~0~35~45~1~~2~0~~0~pad2\"\n" +
	"  ]\n" +
	"}"

func TestParseMinimalDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(minimalDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Tracks) != 4 {
		t.Fatalf("tracks = %d, want 4", len(doc.Tracks))
	}
	if len(doc.Components) != 1 {
		t.Fatalf("components = %d, want 1", len(doc.Components))
	}
	c := doc.Components[0]
	if c.Designator != "R1" || c.Value != "10k" || c.Package != "R_0603" {
		t.Fatalf("component = %+v, want R1/10k/R_0603", c)
	}
	if len(c.Pads) != 2 {
		t.Fatalf("pads = %d, want 2", len(c.Pads))
	}
	if c.Pads[0].Net != "GND" {
		t.Fatalf("pad 1 net = %q, want GND", c.Pads[0].Net)
	}
	if c.Pads[1].Net != "" {
		t.Fatalf("pad 2 net = %q, want empty", c.Pads[1].Net)
	}
	if c.Rotation != 90 {
		t.Fatalf("rotation = %v, want 90", c.Rotation)
	}
}

func TestToIRProducesEdgesAndFootprint(t *testing.T) {
	doc, err := Parse(strings.NewReader(minimalDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, comps, warnings := ToIR(doc)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(comps) != len(data.Footprints) {
		t.Fatalf("bom components = %d, want one per footprint (%d)", len(comps), len(data.Footprints))
	}
	if len(data.Edges) != 4 {
		t.Fatalf("edges = %d, want 4", len(data.Edges))
	}
	wantMax := 400 * mil
	if float64(data.EdgesBbox.MaxX) != wantMax || float64(data.EdgesBbox.MaxY) != wantMax {
		t.Fatalf("edges bbox = %+v, want max (%v,%v)", data.EdgesBbox, wantMax, wantMax)
	}
	if len(data.Footprints) != 1 {
		t.Fatalf("footprints = %d, want 1", len(data.Footprints))
	}
	fp := data.Footprints[0]
	if fp.Ref != "R1" {
		t.Fatalf("footprint ref = %q, want R1", fp.Ref)
	}
	if len(fp.Pads) != 2 {
		t.Fatalf("footprint pads = %d, want 2", len(fp.Pads))
	}
	if len(data.Nets) != 1 || data.Nets[0] != "GND" {
		t.Fatalf("nets = %v, want [GND]", data.Nets)
	}
}

func TestUnknownShapeTagIsRecoverable(t *testing.T) {
	const doc = `{"shape": ["BOGUS~1~2~3", "TRACK~0~10~~0 0 1 1~"]}`
	d, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Tracks) != 1 {
		t.Fatalf("tracks = %d, want 1 (unknown tag should be skipped, not fatal)", len(d.Tracks))
	}
}
