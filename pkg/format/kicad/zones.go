package kicad

import "github.com/meawoppl/pastebom.com/pkg/sexp"

// parseZones collects every (zone ...) at board root. A multi-layer zone
// (declared with (layers ...) rather than a single (layer ...)) expands
// into one Zone per layer that received a filled_polygon, or, when none of
// the declared layers have cached fill data, one Zone per declared layer
// using the zone's outline (spec §4.2 step 6).
func parseZones(root sexp.Sexp, netMap *NetMap) []Zone {
	var zones []Zone
	for _, node := range sexp.FindAll(root, "zone") {
		zones = append(zones, parseZone(node, netMap)...)
	}
	return zones
}

func parseZone(node sexp.Sexp, netMap *NetMap) []Zone {
	var net string
	if netNode, ok := sexp.Find(node, "net"); ok {
		if num, err := sexp.IntAt(netNode, 1); err == nil {
			net = netMap.NameFor(num)
		}
	}

	var outline []Position
	if polyNode, ok := sexp.Find(node, "polygon"); ok {
		if ptsNode, ok := sexp.Find(polyNode, "pts"); ok {
			outline = parseXYPoints(ptsNode)
		}
	}

	singleLayer := layerNameOf(node)
	var multiLayers []string
	if layersNode, ok := sexp.Find(node, "layers"); ok {
		for _, item := range sexp.Rest(layersNode) {
			if sym, ok := item.(sexp.Symbol); ok {
				multiLayers = append(multiLayers, sym.Unquoted())
			}
		}
	}

	filledNodes := sexp.FindAll(node, "filled_polygon")

	if len(multiLayers) > 0 {
		fillsByLayer := make(map[string][][]Position)
		var order []string
		for _, fpNode := range filledNodes {
			layer := layerNameOf(fpNode)
			if layer == "" {
				continue
			}
			ptsNode, ok := sexp.Find(fpNode, "pts")
			if !ok {
				continue
			}
			pts := parseXYPoints(ptsNode)
			if len(pts) == 0 {
				continue
			}
			if _, seen := fillsByLayer[layer]; !seen {
				order = append(order, layer)
			}
			fillsByLayer[layer] = append(fillsByLayer[layer], pts)
		}
		if len(order) == 0 {
			// No cached filled_polygon data for any declared layer (e.g.
			// the board was saved without running the zone-fill pass) —
			// fall back to the declared outline, once per declared layer
			// (spec §4.2 step 6: "otherwise emit the zone outline").
			zones := make([]Zone, 0, len(multiLayers))
			for _, layer := range multiLayers {
				zones = append(zones, Zone{Net: net, Layer: layer, Outline: outline})
			}
			return zones
		}
		zones := make([]Zone, 0, len(order))
		for _, layer := range order {
			zones = append(zones, Zone{Net: net, Layer: layer, Outline: outline, Fills: fillsByLayer[layer]})
		}
		return zones
	}

	var fills [][]Position
	for _, fpNode := range filledNodes {
		ptsNode, ok := sexp.Find(fpNode, "pts")
		if !ok {
			continue
		}
		if pts := parseXYPoints(ptsNode); len(pts) > 0 {
			fills = append(fills, pts)
		}
	}
	if singleLayer == "" {
		return nil
	}
	return []Zone{{Net: net, Layer: singleLayer, Outline: outline, Fills: fills}}
}
