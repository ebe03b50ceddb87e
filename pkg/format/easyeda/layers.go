package easyeda

// layerBucket classifies an EasyEDA numeric layer ID into the same
// copper/silk/fab/edge/other buckets pkg/format/kicad uses, so ir.go can
// share lowering logic across formats without format-specific cases
// downstream.
type layerBucket struct {
	Name string // "copper", "silk", "fab", "edge", "other"
	Side string // "F", "B", or "" for edge/other
}

// layerTable is EasyEDA's fixed numeric layer assignment (spec §4.3: "Layer
// IDs (decimal strings) map to sides per the table in the source").
var layerTable = map[int]layerBucket{
	1:  {Name: "copper", Side: "F"},
	2:  {Name: "copper", Side: "B"},
	3:  {Name: "silk", Side: "F"},
	4:  {Name: "silk", Side: "B"},
	5:  {Name: "other", Side: "F"}, // top paste
	6:  {Name: "other", Side: "B"}, // bottom paste
	7:  {Name: "other", Side: "F"}, // top mask
	8:  {Name: "other", Side: "B"}, // bottom mask
	9:  {Name: "other"},            // ratlines
	10: {Name: "edge"},
	11: {Name: "other"}, // multi-layer
	12: {Name: "other"}, // document/notes
	13: {Name: "fab", Side: "F"},
	14: {Name: "fab", Side: "B"},
	15: {Name: "other"}, // mechanical
}

func classifyLayer(id int) layerBucket {
	if b, ok := layerTable[id]; ok {
		return b
	}
	return layerBucket{Name: "other"}
}

// isBackLayer reports whether a component placement layer is the back
// side, driving the mirror flag on the component's placement transform
// (spec §4.3: "mirror when placed on layer 2").
func isBackLayer(layer int) bool {
	return layer == 2
}

func sideOf(layer int) string {
	if isBackLayer(layer) {
		return "B"
	}
	return "F"
}
