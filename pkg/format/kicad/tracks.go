package kicad

import (
	"fmt"

	"github.com/meawoppl/pastebom.com/pkg/sexp"
)

// parseTracks collects every top-level (segment ...) copper trace and
// every top-level (arc ...) routed arc (newer KiCad files route arcs as
// tracks, not just as footprint/edge graphics).
func parseTracks(root sexp.Sexp, netMap *NetMap) ([]Track, []ArcTrack, error) {
	var tracks []Track
	for _, node := range sexp.FindAll(root, "segment") {
		t, err := parseSegment(node, netMap)
		if err != nil {
			return nil, nil, fmt.Errorf("segment: %w", err)
		}
		tracks = append(tracks, *t)
	}

	var arcs []ArcTrack
	for _, node := range sexp.FindAll(root, "arc") {
		a, err := parseArcTrack(node, netMap)
		if err != nil {
			continue
		}
		arcs = append(arcs, *a)
	}

	return tracks, arcs, nil
}

func parseSegment(node sexp.Sexp, netMap *NetMap) (*Track, error) {
	t := &Track{Width: 0.15}

	startNode, ok := sexp.Find(node, "start")
	if !ok {
		return nil, fmt.Errorf("missing required 'start' position")
	}
	t.Start = parsePositionNode(startNode)

	endNode, ok := sexp.Find(node, "end")
	if !ok {
		return nil, fmt.Errorf("missing required 'end' position")
	}
	t.End = parsePositionNode(endNode)

	if wNode, ok := sexp.Find(node, "width"); ok {
		if v, err := sexp.FloatAt(wNode, 1); err == nil {
			t.Width = v
		}
	}

	t.Layer = layerNameOf(node)
	if t.Layer == "" {
		return nil, fmt.Errorf("missing required 'layer' field")
	}

	if netNode, ok := sexp.Find(node, "net"); ok {
		if num, err := sexp.IntAt(netNode, 1); err == nil {
			t.Net = netMap.NameFor(num)
		}
	}

	return t, nil
}

func parseArcTrack(node sexp.Sexp, netMap *NetMap) (*ArcTrack, error) {
	a := &ArcTrack{Width: 0.15}

	startNode, ok := sexp.Find(node, "start")
	if !ok {
		return nil, fmt.Errorf("missing required 'start' position")
	}
	a.Start = parsePositionNode(startNode)

	midNode, ok := sexp.Find(node, "mid")
	if !ok {
		return nil, fmt.Errorf("missing required 'mid' position")
	}
	a.Mid = parsePositionNode(midNode)

	endNode, ok := sexp.Find(node, "end")
	if !ok {
		return nil, fmt.Errorf("missing required 'end' position")
	}
	a.End = parsePositionNode(endNode)

	if wNode, ok := sexp.Find(node, "width"); ok {
		if v, err := sexp.FloatAt(wNode, 1); err == nil {
			a.Width = v
		}
	}

	a.Layer = layerNameOf(node)
	if a.Layer == "" {
		return nil, fmt.Errorf("missing required 'layer' field")
	}

	if netNode, ok := sexp.Find(node, "net"); ok {
		if num, err := sexp.IntAt(netNode, 1); err == nil {
			a.Net = netMap.NameFor(num)
		}
	}

	return a, nil
}

// parseVias collects every top-level (via ...) plated hole.
func parseVias(root sexp.Sexp, netMap *NetMap) ([]Via, error) {
	var vias []Via
	for _, node := range sexp.FindAll(root, "via") {
		v, err := parseVia(node, netMap)
		if err != nil {
			return nil, fmt.Errorf("via: %w", err)
		}
		vias = append(vias, *v)
	}
	return vias, nil
}

func parseVia(node sexp.Sexp, netMap *NetMap) (*Via, error) {
	v := &Via{}

	atNode, ok := sexp.Find(node, "at")
	if !ok {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	v.Position = parsePositionNode(atNode)

	sizeNode, ok := sexp.Find(node, "size")
	if !ok {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	size, err := sexp.FloatAt(sizeNode, 1)
	if err != nil {
		return nil, fmt.Errorf("via size: %w", err)
	}
	v.Size = size

	drillNode, ok := sexp.Find(node, "drill")
	if !ok {
		return nil, fmt.Errorf("missing required 'drill' field")
	}
	drill, err := sexp.FloatAt(drillNode, 1)
	if err != nil {
		return nil, fmt.Errorf("via drill: %w", err)
	}
	v.Drill = drill

	layersNode, ok := sexp.Find(node, "layers")
	if !ok {
		return nil, fmt.Errorf("missing required 'layers' field")
	}
	for _, item := range sexp.Rest(layersNode) {
		sym, ok := item.(sexp.Symbol)
		if !ok {
			continue
		}
		v.Layers = append(v.Layers, sym.Unquoted())
	}

	if netNode, ok := sexp.Find(node, "net"); ok {
		if num, err := sexp.IntAt(netNode, 1); err == nil {
			v.Net = netMap.NameFor(num)
		}
	}

	return v, nil
}
