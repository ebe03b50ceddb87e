package main

import (
	"bytes"
	"os"
	"path/filepath"
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

func runCLI(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	// Flag variables keep their values between Execute calls, so start each
	// run from the registered defaults.
	outPath, formatFlag, pretty, checkOverlaps = "", "", false, false
	includeTracks, includeNets = true, true
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err = rootCmd.Execute()
	return buf.String(), err
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}
	return path
}

func TestRunExtractWritesJSONToStdout(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", minimalKicadBoard)
	out, err := runCLI(t, path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"ref":"R1"`) {
		t.Fatalf("stdout = %s, want footprint R1", out)
	}
}

func TestRunExtractWritesJSONToFile(t *testing.T) {
	in := writeFixture(t, "board.kicad_pcb", minimalKicadBoard)
	outPath := filepath.Join(filepath.Dir(in), "out.json")
	if _, err := runCLI(t, in, "-o", outPath, "--pretty"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "\n  ") {
		t.Fatalf("output not pretty-printed: %s", content)
	}
}

func TestRunExtractUnsupportedFormatExitsWithCode3(t *testing.T) {
	path := writeFixture(t, "notes.txt", "hello")
	_, err := runCLI(t, path)
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if exitCodeFor(err) != 3 {
		t.Fatalf("exitCodeFor = %d, want 3", exitCodeFor(err))
	}
}

func TestRunExtractForcedFormatFlag(t *testing.T) {
	path := writeFixture(t, "board.dat", minimalKicadBoard)
	out, err := runCLI(t, path, "-f", "kicad")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"ref":"R1"`) {
		t.Fatalf("stdout = %s, want footprint R1", out)
	}
}

func TestRunExtractUnknownFormatFlagReturnsError(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", minimalKicadBoard)
	_, err := runCLI(t, path, "-f", "gerber")
	if err == nil || exitCodeFor(err) != 3 {
		t.Fatalf("err = %v, want UnsupportedFormat", err)
	}
}

func TestRunExtractExcludeTracksAndNets(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", minimalKicadBoard)
	out, err := runCLI(t, path, "--include-tracks=false", "--include-nets=false")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(out, `"tracks"`) || strings.Contains(out, `"nets"`) {
		t.Fatalf("stdout = %s, want tracks/nets omitted", out)
	}
}

func TestRunExtractMissingFileExitsWithCode5(t *testing.T) {
	_, err := runCLI(t, filepath.Join(t.TempDir(), "missing.kicad_pcb"))
	if err == nil || exitCodeFor(err) != 5 {
		t.Fatalf("err = %v, want Io", err)
	}
}

const overlappingFootprintsBoard = `(kicad_pcb (version 20221018) (generator "pcbnew")
  (general (thickness 1.6))
  (layers (0 "F.Cu" signal))
  (net 0 "")
  (footprint "R_0603" (layer "F.Cu") (at 5 5 0)
    (property "Reference" "R1" (at 0 -1 0))
    (property "Value" "10k" (at 0 1 0))
    (pad "1" smd rect (at -0.8 0) (size 0.9 0.95) (layers "F.Cu"))
  )
  (footprint "R_0603" (layer "F.Cu") (at 5.1 5.1 0)
    (property "Reference" "R2" (at 0 -1 0))
    (property "Value" "10k" (at 0 1 0))
    (pad "1" smd rect (at -0.8 0) (size 0.9 0.95) (layers "F.Cu"))
  )
)`

func TestRunExtractCheckOverlapsReportsHits(t *testing.T) {
	path := writeFixture(t, "board.kicad_pcb", overlappingFootprintsBoard)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{path, "--check-overlaps"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "overlap: R1 <-> R2") && !strings.Contains(buf.String(), "overlap: R2 <-> R1") {
		t.Fatalf("output = %s, want an overlap report between R1 and R2", buf.String())
	}
}
