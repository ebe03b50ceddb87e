package main

import (
	"bytes"
	"strings"
	"testing"
)

const netsCmdBoard = `(kicad_pcb (version 20221018) (generator "pcbnew")
  (general (thickness 1.6))
  (layers (0 "F.Cu" signal))
  (net 0 "")
  (net 1 "GND")
  (footprint "R_0603" (layer "F.Cu") (at 5 5 0)
    (property "Reference" "R1" (at 0 -1 0))
    (property "Value" "10k" (at 0 1 0))
    (pad "1" smd rect (at -0.8 0) (size 0.9 0.95) (layers "F.Cu") (net 1 "GND"))
  )
)`

func TestNetsCmdListsAllNets(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", netsCmdBoard)
	out, err := runCLI(t, "nets", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "GND") {
		t.Fatalf("output = %s, want GND listed", out)
	}
}

func TestNetsCmdShowsSingleNetDetail(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", netsCmdBoard)
	out, err := runCLI(t, "nets", path, "GND")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "1 pads") {
		t.Fatalf("output = %s, want 1 pads reported", out)
	}
}

func TestNetsCmdUnknownNetReturnsError(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", netsCmdBoard)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"nets", path, "NOPE"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown net")
	}
}
