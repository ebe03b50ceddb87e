package eagle

// layerBucket classifies an Eagle numeric layer ID into the same
// copper/silk/fab/edge/other buckets the other format parsers use.
type layerBucket struct {
	Name string // "copper", "silk", "fab", "edge", "other"
	Side string // "F", "B", or "" for edge/other
}

// layerTable is Eagle's fixed numeric layer assignment (spec §4.4: "1,16
// copper; 21,22 silk; 25,26 silk-text; 27,28 fab-text; 51,52 fab; 20
// edge").
var layerTable = map[int]layerBucket{
	1:  {Name: "copper", Side: "F"},
	16: {Name: "copper", Side: "B"},
	20: {Name: "edge"},
	21: {Name: "silk", Side: "F"},
	22: {Name: "silk", Side: "B"},
	25: {Name: "silk", Side: "F"}, // names
	26: {Name: "silk", Side: "B"},
	27: {Name: "fab", Side: "F"}, // values
	28: {Name: "fab", Side: "B"},
	29: {Name: "other", Side: "F"}, // stop mask
	30: {Name: "other", Side: "B"},
	31: {Name: "other", Side: "F"}, // cream/paste
	32: {Name: "other", Side: "B"},
	51: {Name: "fab", Side: "F"},
	52: {Name: "fab", Side: "B"},
}

func classifyLayer(id int) layerBucket {
	if b, ok := layerTable[id]; ok {
		return b
	}
	return layerBucket{Name: "other"}
}
