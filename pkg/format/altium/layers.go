package altium

// layerBucket classifies an Altium layer ID into the copper/silk/fab/edge
// buckets the other format parsers use (spec §4.5: "three generations [of
// layer ID] coexist").
type layerBucket struct {
	Name string // "copper", "silk", "fab", "edge", "other"
	Side string // "F", "B", or "" when the layer has no side
}

// Legacy 8-bit layer IDs.
const (
	legacyTopCopper = 1
	legacyBotCopper = 32
	legacyTopOverlay = 33
	legacyBotOverlay = 34
	legacyMultiLayer = 74
)

// V7/V8 generations encode the same logical layer at a higher ID range;
// masking off the generation tag recovers the legacy-style index.
const (
	v7Base = 0x01000000
	v8Base = 0x01030000
)

// normalizeLayer folds a V7 or V8 layer ID down to its legacy-range
// equivalent so one table drives classification for all three
// generations.
func normalizeLayer(id int) int {
	switch {
	case id >= v8Base:
		return id - v8Base
	case id >= v7Base:
		return id - v7Base
	default:
		return id
	}
}

var legacyLayerTable = map[int]layerBucket{
	legacyTopCopper:  {Name: "copper", Side: "F"},
	legacyBotCopper:  {Name: "copper", Side: "B"},
	legacyTopOverlay: {Name: "silk", Side: "F"},
	legacyBotOverlay: {Name: "silk", Side: "B"},
	legacyMultiLayer: {Name: "copper", Side: "F"}, // multi-layer objects file as front copper; TH pads carry both sides explicitly via their own layers field
}

// mechanicalKind mirrors the Board6 stackup's MECHKINDn attribute for a
// mechanical layer. Only assembly/courtyard mechanical layers map to
// fabrication drawings; everything else is dropped (spec §4.5).
type mechanicalKind string

const (
	mechAssemblyTop    mechanicalKind = "ASSEMBLY_TOP"
	mechAssemblyBottom mechanicalKind = "ASSEMBLY_BOTTOM"
	mechCourtyardTop   mechanicalKind = "COURTYARD_TOP"
	mechCourtyardBot   mechanicalKind = "COURTYARD_BOTTOM"
)

func classifyLayer(id int, mechKinds map[int]mechanicalKind) (layerBucket, bool) {
	norm := normalizeLayer(id)
	if b, ok := legacyLayerTable[norm]; ok {
		return b, true
	}
	if kind, ok := mechKinds[norm]; ok {
		switch kind {
		case mechAssemblyTop:
			return layerBucket{Name: "fab", Side: "F"}, true
		case mechAssemblyBottom:
			return layerBucket{Name: "fab", Side: "B"}, true
		case mechCourtyardTop:
			return layerBucket{Name: "fab", Side: "F"}, true
		case mechCourtyardBot:
			return layerBucket{Name: "fab", Side: "B"}, true
		}
		return layerBucket{}, false
	}
	return layerBucket{}, false
}

// isMultiLayer reports whether a raw layer ID is Altium's multi-layer
// sentinel, which (together with a nonzero hole size) marks a pad as
// through-hole in IR terms (spec §4.5).
func isMultiLayer(id int) bool {
	return normalizeLayer(id) == legacyMultiLayer
}
