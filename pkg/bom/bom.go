// Package bom implements the grouping engine that turns a flat footprint
// list into the viewer's bill-of-materials structure (spec §4.6): dedupe
// identical parts into groups, split each group by board side, and record
// per-part field values for display.
//
// The canonical PcbData schema (spec §3) carries no Value/Footprint/DNP
// fields on ir.Footprint — those only exist to drive BOM grouping, not to
// round-trip through the viewer's IR — so callers hand this package a
// parallel Component slice, one entry per footprint index, built from
// each parser's own intermediate type rather than from ir.Footprint.
package bom

import (
	"sort"
	"strconv"
	"strings"

	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// Component is one footprint's BOM-relevant attributes, indexed the same
// way as the PcbData.Footprints slice it was derived from.
type Component struct {
	Ref     string
	Layer   string // ir.SideFront or ir.SideBack
	Fields  map[string]string
	Virtual bool
}

// defaultSortOrder is spec §4.6's default component_sort_order.
var defaultSortOrder = strings.Split("C,R,L,D,U,Y,X,F,SW,A,~,HS,CNN,J,P,NT,MH", ",")

// Options configures the grouping algorithm (spec §4.6).
type Options struct {
	GroupFields        []string
	ShowFields         []string
	ComponentSortOrder []string
	BlacklistVirtual   bool
	BlacklistEmptyVal  bool
	DNPField           string
}

// DefaultOptions returns spec §4.6's documented defaults.
func DefaultOptions() Options {
	return Options{
		GroupFields:        []string{"Value", "Footprint"},
		ShowFields:         []string{"Value", "Footprint"},
		ComponentSortOrder: defaultSortOrder,
	}
}

// Build groups components into the BOM record of spec §3/§4.6.
func Build(components []Component, opts Options) *ir.BOM {
	if len(opts.GroupFields) == 0 {
		opts.GroupFields = DefaultOptions().GroupFields
	}
	if len(opts.ShowFields) == 0 {
		opts.ShowFields = DefaultOptions().ShowFields
	}
	if len(opts.ComponentSortOrder) == 0 {
		opts.ComponentSortOrder = defaultSortOrder
	}

	out := &ir.BOM{Fields: map[string][]string{}}

	type member struct {
		idx   int
		ref   string
		layer string
	}
	groups := map[string][]member{}
	var groupOrder []string

	for idx, c := range components {
		if c.Virtual && opts.BlacklistVirtual {
			out.Skipped = append(out.Skipped, idx)
			continue
		}
		if opts.BlacklistEmptyVal && strings.TrimSpace(c.Fields["Value"]) == "" {
			out.Skipped = append(out.Skipped, idx)
			continue
		}
		if opts.DNPField != "" && isTruthy(c.Fields[opts.DNPField]) {
			out.Skipped = append(out.Skipped, idx)
			continue
		}

		key := groupKey(c.Fields, opts.GroupFields)
		if _, seen := groups[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], member{idx: idx, ref: c.Ref, layer: c.Layer})

		values := make([]string, len(opts.ShowFields))
		for i, f := range opts.ShowFields {
			values[i] = c.Fields[f]
		}
		out.FieldsByIndex(idx, values)
	}

	sortOrder := opts.ComponentSortOrder
	for _, key := range groupOrder {
		members := groups[key]
		sort.SliceStable(members, func(i, j int) bool {
			return lessRef(members[i].ref, members[j].ref, sortOrder)
		})

		group := make(ir.Group, len(members))
		for i, m := range members {
			group[i] = ir.RefIdx{Ref: m.ref, Idx: m.idx}
		}
		out.Both = append(out.Both, group)

		var fGroup, bGroup ir.Group
		for _, m := range members {
			if m.layer == ir.SideBack {
				bGroup = append(bGroup, ir.RefIdx{Ref: m.ref, Idx: m.idx})
			} else {
				fGroup = append(fGroup, ir.RefIdx{Ref: m.ref, Idx: m.idx})
			}
		}
		if len(fGroup) > 0 {
			out.F = append(out.F, fGroup)
		}
		if len(bGroup) > 0 {
			out.B = append(out.B, bGroup)
		}
	}

	return out
}

func groupKey(fields map[string]string, groupFields []string) string {
	parts := make([]string, len(groupFields))
	for i, f := range groupFields {
		parts[i] = fields[f]
	}
	return strings.Join(parts, "\x00")
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "f", "n":
		return false
	default:
		return true
	}
}

// lessRef orders two reference designators by the component_sort_order
// position of their letter prefix, then by numeric suffix, then
// alphabetically as a final tiebreak (spec §4.6).
func lessRef(a, b string, order []string) bool {
	pa, na, oka := splitRef(a)
	pb, nb, okb := splitRef(b)
	ra, rb := prefixRank(pa, order), prefixRank(pb, order)
	if ra != rb {
		return ra < rb
	}
	if oka && okb && na != nb {
		return na < nb
	}
	return a < b
}

func prefixRank(prefix string, order []string) int {
	for i, p := range order {
		if strings.EqualFold(p, prefix) {
			return i
		}
	}
	for i, p := range order {
		if p == "~" {
			return i
		}
	}
	return len(order)
}

// splitRef separates a reference designator into its leading alphabetic
// prefix and trailing numeric suffix ("R10" -> "R", 10, true).
func splitRef(ref string) (prefix string, num int, ok bool) {
	i := 0
	for i < len(ref) && isLetter(ref[i]) {
		i++
	}
	prefix = ref[:i]
	n, err := strconv.Atoi(ref[i:])
	if err != nil {
		return prefix, 0, false
	}
	return prefix, n, true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
