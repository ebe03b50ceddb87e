package eagle

import (
	"strings"
	"testing"
)

const minimalBrd = `<?xml version="1.0"?>
<eagle>
  <drawing>
    <grid unit="mm"/>
    <board>
      <plain>
        <wire x1="0" y1="0" x2="10" y2="0" width="0.2" layer="20"/>
        <wire x1="10" y1="0" x2="10" y2="10" width="0.2" layer="20"/>
        <wire x1="10" y1="10" x2="0" y2="10" width="0.2" layer="20"/>
        <wire x1="0" y1="10" x2="0" y2="0" width="0.2" layer="20"/>
      </plain>
      <libraries>
        <library name="lib1">
          <packages>
            <package name="R0603">
              <smd name="1" x="-0.8" y="0" dx="0.9" dy="0.8" layer="1" roundness="0"/>
              <smd name="2" x="0.8" y="0" dx="0.9" dy="0.8" layer="1" roundness="0"/>
            </package>
          </packages>
        </library>
      </libraries>
      <elements>
        <element name="R1" library="lib1" package="R0603" value="10k" x="5" y="5" rot="R0"/>
      </elements>
      <signals>
        <signal name="GND">
          <wire x1="0" y1="0" x2="5" y2="0" width="0.25" layer="1"/>
          <via x="5" y="0" drill="0.3" diameter="0.6"/>
        </signal>
      </signals>
    </board>
  </drawing>
</eagle>`

func TestParseMinimalBoard(t *testing.T) {
	doc, err := Parse(strings.NewReader(minimalBrd))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	board := doc.Drawing.Board
	if len(board.Plain.Wires) != 4 {
		t.Fatalf("plain wires = %d, want 4", len(board.Plain.Wires))
	}
	if len(board.Elements) != 1 {
		t.Fatalf("elements = %d, want 1", len(board.Elements))
	}
	if board.Elements[0].Name != "R1" || board.Elements[0].Value != "10k" {
		t.Fatalf("element = %+v, want R1/10k", board.Elements[0])
	}
	if len(board.Signals) != 1 || board.Signals[0].Name != "GND" {
		t.Fatalf("signals = %+v, want one GND signal", board.Signals)
	}
}

func TestToIRProducesEdgesFootprintAndTracks(t *testing.T) {
	doc, err := Parse(strings.NewReader(minimalBrd))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, comps, warnings := ToIR(doc)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(comps) != 1 || comps[0].Fields["Value"] != "10k" {
		t.Fatalf("bom components = %+v, want one entry with Value=10k", comps)
	}
	if len(data.Edges) != 4 {
		t.Fatalf("edges = %d, want 4", len(data.Edges))
	}
	if float64(data.EdgesBbox.MaxX) != 10 || float64(data.EdgesBbox.MaxY) != 10 {
		t.Fatalf("edges bbox = %+v, want max (10,10)", data.EdgesBbox)
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
	if data.Tracks == nil || len(data.Tracks.F) != 2 {
		// one segment + one via, both filed on the front side
		t.Fatalf("front tracks = %+v, want 2 entries", data.Tracks)
	}
	if len(data.Nets) != 1 || data.Nets[0] != "GND" {
		t.Fatalf("nets = %v, want [GND]", data.Nets)
	}
}

func TestUnresolvedPackageIsRecoverable(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<eagle><drawing><grid unit="mm"/><board>
  <elements><element name="U1" library="missing" package="DIP8" value="" x="0" y="0" rot="R0"/></elements>
</board></drawing></eagle>`
	d, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, _, warnings := ToIR(d)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly 1 (unresolved package)", warnings)
	}
	if len(data.Footprints) != 0 {
		t.Fatalf("footprints = %d, want 0", len(data.Footprints))
	}
}

func TestCurvedWireLowersToArc(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<eagle><drawing><grid unit="mm"/><board>
  <signals><signal name="NET1">
    <wire x1="0" y1="0" x2="10" y2="0" width="0.2" layer="1" curve="90"/>
  </signal></signals>
</board></drawing></eagle>`
	d, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, _, _ := ToIR(d)
	if data.Tracks == nil || len(data.Tracks.F) != 1 {
		t.Fatalf("front tracks = %+v, want 1 arc", data.Tracks)
	}
	arc, ok := data.Tracks.F[0].(interface{ TrackType() string })
	if !ok || arc.TrackType() != "arc" {
		t.Fatalf("track = %+v, want an arc", data.Tracks.F[0])
	}
}
