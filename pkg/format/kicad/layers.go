package kicad

import "strings"

// layerBucket classifies a KiCad layer name into the drawing buckets the IR
// groups by (spec §3, §9): copper-F/B feed the optional tracks model,
// silk-F/B and fab-F/B feed drawings.silkscreen/drawings.fabrication, edge
// feeds the board outline, and everything else is dropped (not drawable in
// the IR's fixed layer set).
type layerBucket struct {
	Name string // "copper", "silk", "fab", "edge", "other"
	Side string // "F", "B", or "" for edge/other
}

func classifyLayer(name string) layerBucket {
	switch {
	case name == "Edge.Cuts":
		return layerBucket{Name: "edge"}
	case strings.HasSuffix(name, ".Cu"):
		return layerBucket{Name: "copper", Side: sideOf(name)}
	case strings.Contains(name, "SilkS") || strings.Contains(name, "Silkscreen"):
		return layerBucket{Name: "silk", Side: sideOf(name)}
	case strings.HasSuffix(name, ".Fab"):
		return layerBucket{Name: "fab", Side: sideOf(name)}
	default:
		return layerBucket{Name: "other"}
	}
}

func sideOf(layerName string) string {
	if strings.HasPrefix(layerName, "F.") {
		return "F"
	}
	if strings.HasPrefix(layerName, "B.") {
		return "B"
	}
	return ""
}

// isBackLayer reports whether a footprint/pad's own placement layer is the
// back side, driving the local-coordinate X-mirror (geomutil.Transform's
// Mirror) on lowering to absolute IR coordinates (spec §4.2, §9).
func isBackLayer(layer string) bool {
	return strings.HasPrefix(layer, "B.")
}

// padSides reduces a pad's raw KiCad layer tag list (e.g. "F.Cu", "F.Paste",
// "F.Mask") to the deduped board-side set spec §3 requires (layers ⊆
// {"F","B"}), the same reduction pkg/format/eagle and pkg/format/easyeda
// already apply to their own native pad layer lists.
func padSides(rawLayers []string) []string {
	var hasF, hasB bool
	for _, l := range rawLayers {
		switch sideOf(l) {
		case "F":
			hasF = true
		case "B":
			hasB = true
		}
	}
	var out []string
	if hasF {
		out = append(out, "F")
	}
	if hasB {
		out = append(out, "B")
	}
	return out
}
