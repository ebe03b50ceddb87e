package extract

import (
	"encoding/json"
	"strings"
	"testing"
)

const minimalKicadBoard = `(kicad_pcb (version 20221018) (generator "pcbnew")
  (general (thickness 1.6))
  (title_block (title "Demo") (rev "A1") (company "Acme"))
  (layers
    (0 "F.Cu" signal)
    (31 "B.Cu" signal)
    (37 "F.SilkS" user)
    (44 "Edge.Cuts" user)
  )
  (net 0 "")
  (net 1 "GND")
  (gr_line (start 0 0) (end 10 0) (stroke (width 0.1) (type solid)) (layer "Edge.Cuts"))
  (gr_line (start 10 0) (end 10 10) (stroke (width 0.1) (type solid)) (layer "Edge.Cuts"))
  (gr_line (start 10 10) (end 0 10) (stroke (width 0.1) (type solid)) (layer "Edge.Cuts"))
  (gr_line (start 0 10) (end 0 0) (stroke (width 0.1) (type solid)) (layer "Edge.Cuts"))
  (footprint "Resistor_SMD:R_0603" (layer "F.Cu") (at 5 5 90)
    (property "Reference" "R1" (at 0 -1 0))
    (property "Value" "10k" (at 0 1 0))
    (pad "1" smd rect (at -0.8 0) (size 0.9 0.95) (layers "F.Cu" "F.Paste" "F.Mask") (net 1 "GND"))
    (pad "2" smd rect (at 0.8 0) (size 0.9 0.95) (layers "F.Cu" "F.Paste" "F.Mask"))
  )
  (segment (start 0.8 5) (end 5 5) (width 0.25) (layer "F.Cu") (net 1))
)`

func TestDetectFormatByExtension(t *testing.T) {
	f, err := detectFormat("board.kicad_pcb", []byte(minimalKicadBoard))
	if err != nil || f != FormatKiCad {
		t.Fatalf("detectFormat = %v, %v, want kicad, nil", f, err)
	}
}

func TestDetectFormatCFBMagicOverridesExtension(t *testing.T) {
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 8)...)
	f, err := detectFormat("whatever.kicad_pcb", data)
	if err != nil || f != FormatAltium {
		t.Fatalf("detectFormat = %v, %v, want altium, nil", f, err)
	}
}

func TestDetectFormatUnsupportedReturnsError(t *testing.T) {
	_, err := detectFormat("notes.txt", []byte("hello"))
	extractErr, ok := err.(*Error)
	if !ok || extractErr.Code != CodeUnsupportedFormat {
		t.Fatalf("err = %v, want UnsupportedFormat", err)
	}
}

func TestExtractBytesKicadProducesBOM(t *testing.T) {
	pcb, err := ExtractBytes([]byte(minimalKicadBoard), FormatKiCad, DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(pcb.Footprints) != 1 || pcb.Footprints[0].Ref != "R1" {
		t.Fatalf("footprints = %+v, want one R1", pcb.Footprints)
	}
	if pcb.BOM == nil || len(pcb.BOM.Both) != 1 {
		t.Fatalf("bom = %+v, want one synthesized group", pcb.BOM)
	}
}

func TestExtractBytesStripsTracksAndNetsWhenExcluded(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeTracks = false
	opts.IncludeNets = false
	pcb, err := ExtractBytes([]byte(minimalKicadBoard), FormatKiCad, opts)
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if pcb.Tracks != nil {
		t.Fatalf("tracks = %+v, want nil with IncludeTracks=false", pcb.Tracks)
	}
	if pcb.Nets != nil {
		t.Fatalf("nets = %v, want nil with IncludeNets=false", pcb.Nets)
	}
}

func TestExtractBytesMalformedKicadReturnsError(t *testing.T) {
	_, err := ExtractBytes([]byte(`(kicad_pcb (unterminated`), FormatKiCad, DefaultOptions())
	extractErr, ok := err.(*Error)
	if !ok || extractErr.Code != CodeMalformed {
		t.Fatalf("err = %v, want Malformed", err)
	}
}

func TestMarshalJSONRoundsFloatsAndOrdersKeys(t *testing.T) {
	pcb, err := ExtractBytes([]byte(minimalKicadBoard), FormatKiCad, DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	out, err := MarshalJSON(pcb, false)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(out, &generic); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if _, ok := generic["edges_bbox"]; !ok {
		t.Fatalf("missing edges_bbox key in %s", out)
	}
	s := string(out)
	if !(strings.Index(s, `"edges_bbox"`) < strings.Index(s, `"footprints"`) && strings.Index(s, `"footprints"`) < strings.Index(s, `"metadata"`)) {
		t.Fatalf("keys not in declared order (edges_bbox, footprints, metadata): %s", out)
	}
	if strings.Contains(string(out), ".0000000000000") {
		t.Fatalf("output contains unrounded float: %s", out)
	}
}
