package bom

import (
	"testing"

	"github.com/meawoppl/pastebom.com/pkg/ir"
)

func comp(ref, layer, value, footprint string) Component {
	return Component{
		Ref:   ref,
		Layer: layer,
		Fields: map[string]string{
			"Value":     value,
			"Footprint": footprint,
		},
	}
}

func TestBuildGroupsByValueAndFootprint(t *testing.T) {
	parts := []Component{
		comp("R1", ir.SideFront, "10k", "R0402"),
		comp("R2", ir.SideFront, "10k", "R0402"),
		comp("R3", ir.SideFront, "1k", "R0402"),
	}
	out := Build(parts, DefaultOptions())
	if len(out.Both) != 2 {
		t.Fatalf("got %d groups, want 2", len(out.Both))
	}
	var tenK ir.Group
	for _, g := range out.Both {
		if len(g) == 2 {
			tenK = g
		}
	}
	if tenK == nil {
		t.Fatalf("no group of size 2 found in %+v", out.Both)
	}
	if tenK[0].Ref != "R1" || tenK[1].Ref != "R2" {
		t.Fatalf("group refs = %v, want [R1 R2] in sorted order", tenK)
	}
}

func TestBuildSplitsFrontAndBack(t *testing.T) {
	parts := []Component{
		comp("R1", ir.SideFront, "10k", "R0402"),
		comp("R2", ir.SideBack, "10k", "R0402"),
	}
	out := Build(parts, DefaultOptions())
	if len(out.Both) != 1 || len(out.Both[0]) != 2 {
		t.Fatalf("Both = %+v, want one group of 2", out.Both)
	}
	if len(out.F) != 1 || len(out.F[0]) != 1 || out.F[0][0].Ref != "R1" {
		t.Fatalf("F = %+v, want one group with R1", out.F)
	}
	if len(out.B) != 1 || len(out.B[0]) != 1 || out.B[0][0].Ref != "R2" {
		t.Fatalf("B = %+v, want one group with R2", out.B)
	}
}

func TestBuildSortsByComponentSortOrderThenNumber(t *testing.T) {
	parts := []Component{
		comp("R10", ir.SideFront, "v", "fp"),
		comp("C1", ir.SideFront, "v", "fp"),
		comp("R2", ir.SideFront, "v", "fp"),
	}
	out := Build(parts, DefaultOptions())
	if len(out.Both) != 1 {
		t.Fatalf("got %d groups, want 1 (identical value+footprint)", len(out.Both))
	}
	group := out.Both[0]
	want := []string{"C1", "R2", "R10"}
	for i, w := range want {
		if group[i].Ref != w {
			t.Fatalf("group[%d] = %q, want %q (full order %v)", i, group[i].Ref, w, group)
		}
	}
}

func TestBuildBlacklistsVirtualAndEmptyValue(t *testing.T) {
	parts := []Component{
		comp("R1", ir.SideFront, "10k", "R0402"),
		{Ref: "TP1", Layer: ir.SideFront, Virtual: true, Fields: map[string]string{"Value": "", "Footprint": ""}},
		comp("TP2", ir.SideFront, "", "R0402"),
	}
	opts := DefaultOptions()
	opts.BlacklistVirtual = true
	opts.BlacklistEmptyVal = true
	out := Build(parts, opts)
	if len(out.Skipped) != 2 {
		t.Fatalf("skipped = %v, want 2 entries (idx 1 virtual, idx 2 empty value)", out.Skipped)
	}
	if len(out.Both) != 1 || len(out.Both[0]) != 1 || out.Both[0][0].Ref != "R1" {
		t.Fatalf("Both = %+v, want one group with R1", out.Both)
	}
}

func TestBuildRespectsDNPField(t *testing.T) {
	parts := []Component{
		comp("R1", ir.SideFront, "10k", "R0402"),
		{Ref: "R2", Layer: ir.SideFront, Fields: map[string]string{"Value": "10k", "Footprint": "R0402", "DNP": "1"}},
	}
	opts := DefaultOptions()
	opts.DNPField = "DNP"
	out := Build(parts, opts)
	if len(out.Skipped) != 1 || out.Skipped[0] != 1 {
		t.Fatalf("skipped = %v, want [1]", out.Skipped)
	}
	if len(out.Both) != 1 || len(out.Both[0]) != 1 {
		t.Fatalf("Both = %+v, want one group with only R1", out.Both)
	}
}

func TestBuildPopulatesFieldsByIndex(t *testing.T) {
	parts := []Component{
		comp("R1", ir.SideFront, "10k", "R0402"),
	}
	out := Build(parts, DefaultOptions())
	values, ok := out.Fields["0"]
	if !ok {
		t.Fatalf("Fields[\"0\"] missing, got %+v", out.Fields)
	}
	if len(values) != 2 || values[0] != "10k" || values[1] != "R0402" {
		t.Fatalf("Fields[0] = %v, want [10k R0402]", values)
	}
}

func TestSplitRef(t *testing.T) {
	cases := []struct {
		ref        string
		wantPrefix string
		wantNum    int
		wantOK     bool
	}{
		{"R10", "R", 10, true},
		{"U1", "U", 1, true},
		{"HS", "HS", 0, false},
		{"", "", 0, false},
	}
	for _, c := range cases {
		p, n, ok := splitRef(c.ref)
		if p != c.wantPrefix || n != c.wantNum || ok != c.wantOK {
			t.Errorf("splitRef(%q) = (%q, %d, %v), want (%q, %d, %v)", c.ref, p, n, ok, c.wantPrefix, c.wantNum, c.wantOK)
		}
	}
}

func TestPrefixRankUnknownFallsToTilde(t *testing.T) {
	order := []string{"C", "R", "~", "U"}
	if prefixRank("R", order) != 1 {
		t.Errorf("prefixRank(R) = %d, want 1", prefixRank("R", order))
	}
	if prefixRank("ZZ", order) != prefixRank("~", order) {
		t.Errorf("prefixRank(ZZ) = %d, want same slot as ~ (%d)", prefixRank("ZZ", order), prefixRank("~", order))
	}
}
