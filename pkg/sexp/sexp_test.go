package sexp

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestParseStringBasic(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple list", input: "(kicad_pcb (version 20221018))"},
		{name: "quoted string", input: `(title_block (title "My Board"))`},
		{name: "flat list of numbers", input: "(at 1.5 2.5 90)"},
		{name: "unbalanced parens", input: "(at 1 2", wantErr: true},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFindAndFindAll(t *testing.T) {
	root, err := ParseOne(strings.NewReader(`(footprint "R_0402" (layer "F.Cu") (pad "1" smd rect) (pad "2" smd rect))`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, ok := Find(root, "layer"); !ok {
		t.Fatal("expected to find 'layer' node")
	}

	pads := FindAll(root, "pad")
	if len(pads) != 2 {
		t.Fatalf("expected 2 pads, got %d", len(pads))
	}
}

func TestQuotedStringRoundTrip(t *testing.T) {
	root, err := ParseOne(strings.NewReader(`(title_block (title "Example Board"))`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	titleNode, ok := Find(root, "title")
	if !ok {
		t.Fatal("expected to find 'title' node")
	}
	got, err := StringAt(titleNode, 1)
	if err != nil {
		t.Fatalf("StringAt: %v", err)
	}
	if got != "Example Board" {
		t.Fatalf("got %q, want %q", got, "Example Board")
	}
}

func TestFloatAndIntAt(t *testing.T) {
	root, err := ParseOne(strings.NewReader(`(at -1.5 2.0 90)`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	x, err := FloatAt(root, 1)
	if err != nil || x != -1.5 {
		t.Fatalf("FloatAt(1) = %v, %v, want -1.5", x, err)
	}
	angle, err := IntAt(root, 3)
	if err != nil || angle != 90 {
		t.Fatalf("IntAt(3) = %v, %v, want 90", angle, err)
	}
}

func TestNestedFindDrift(t *testing.T) {
	// Simulates a newer KiCad version inserting an extra field before
	// "layers" — Find must still locate it by head symbol, not position.
	root, err := ParseOne(strings.NewReader(`(pad "1" smd rect (at 0 0) (uuid "abc") (layers "F.Cu" "F.Paste"))`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := Find(root, "layers"); !ok {
		t.Fatalf("expected to find 'layers' despite preceding uuid field, got tree:\n%s", spew.Sdump(root))
	}
}

func TestParseTreeShapeMatchesExpectedNesting(t *testing.T) {
	root, err := ParseOne(strings.NewReader(`(pad "1" smd rect (at 0 0) (layers "F.Cu"))`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	found, ok := Find(root, "at")
	at, isList := found.(*List)
	if !ok || !isList || len(at.Items()) != 3 {
		t.Fatalf("unexpected 'at' node shape, got:\n%s", spew.Sdump(root))
	}
}
