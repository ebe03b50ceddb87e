package kicad

import (
	"strings"
	"testing"
)

const netQueryBoard = `(kicad_pcb (version 20221018) (generator "pcbnew")
  (general (thickness 1.6))
  (layers (0 "F.Cu" signal) (31 "B.Cu" signal))
  (net 0 "")
  (net 1 "GND")
  (net 2 "VCC")
  (footprint "Resistor_SMD:R_0603" (layer "F.Cu") (at 5 5 0)
    (property "Reference" "R1" (at 0 -1 0))
    (property "Value" "10k" (at 0 1 0))
    (pad "1" smd rect (at -0.8 0) (size 0.9 0.95) (layers "F.Cu") (net 1 "GND"))
    (pad "2" smd rect (at 0.8 0) (size 0.9 0.95) (layers "F.Cu") (net 2 "VCC"))
  )
  (segment (start 0.8 5) (end 5 5) (width 0.25) (layer "F.Cu") (net 1))
  (via (at 5 5) (size 0.6) (drill 0.3) (layers "F.Cu" "B.Cu") (net 2))
)`

func parseNetQueryBoard(t *testing.T) *Board {
	t.Helper()
	b, err := Parse(strings.NewReader(netQueryBoard))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return b
}

func TestGetAllNetNames(t *testing.T) {
	b := parseNetQueryBoard(t)
	names := b.GetAllNetNames()
	if len(names) != 3 || names[0] != "" || names[1] != "GND" || names[2] != "VCC" {
		t.Fatalf("GetAllNetNames = %v", names)
	}
}

func TestGetNetInfoGathersAllConnections(t *testing.T) {
	b := parseNetQueryBoard(t)
	info := b.GetNetInfo("GND")
	if info == nil {
		t.Fatal("GetNetInfo(GND) = nil")
	}
	if len(info.Pads) != 1 || info.Pads[0].Number != "1" {
		t.Fatalf("GND pads = %+v", info.Pads)
	}
	if len(info.Tracks) != 1 {
		t.Fatalf("GND tracks = %+v", info.Tracks)
	}
	if len(info.Vias) != 0 {
		t.Fatalf("GND vias = %+v, want none", info.Vias)
	}
}

func TestGetNetInfoUnknownNetReturnsNil(t *testing.T) {
	b := parseNetQueryBoard(t)
	if info := b.GetNetInfo("NOPE"); info != nil {
		t.Fatalf("GetNetInfo(NOPE) = %+v, want nil", info)
	}
}

func TestGetNetVias(t *testing.T) {
	b := parseNetQueryBoard(t)
	vias := b.GetNetVias("VCC")
	if len(vias) != 1 {
		t.Fatalf("VCC vias = %+v, want 1", vias)
	}
}
