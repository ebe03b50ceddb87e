package kicad

// NetInfo bundles a net's name with everything on the board attached to it.
type NetInfo struct {
	Name   string
	Pads   []Pad
	Tracks []Track
	Arcs   []ArcTrack
	Vias   []Via
}

// GetAllNetNames lists every declared net, in declaration order (net 0,
// the "no net" sentinel, is always first when present).
func (b *Board) GetAllNetNames() []string {
	names := make([]string, len(b.Nets))
	for i, n := range b.Nets {
		names[i] = n.Name
	}
	return names
}

// GetNetPads returns every pad, across every footprint, assigned to netName.
func (b *Board) GetNetPads(netName string) []Pad {
	var pads []Pad
	for _, fp := range b.Footprints {
		for _, pad := range fp.Pads {
			if pad.Net == netName {
				pads = append(pads, pad)
			}
		}
	}
	return pads
}

// GetNetTracks returns every straight track segment assigned to netName.
func (b *Board) GetNetTracks(netName string) []Track {
	var tracks []Track
	for _, t := range b.Tracks {
		if t.Net == netName {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// GetNetArcs returns every routed arc segment assigned to netName.
func (b *Board) GetNetArcs(netName string) []ArcTrack {
	var arcs []ArcTrack
	for _, a := range b.Arcs {
		if a.Net == netName {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// GetNetVias returns every via assigned to netName.
func (b *Board) GetNetVias(netName string) []Via {
	var vias []Via
	for _, v := range b.Vias {
		if v.Net == netName {
			vias = append(vias, v)
		}
	}
	return vias
}

// GetNetInfo gathers every pad, track, arc, and via on netName. Returns nil
// if netName isn't one of the board's declared nets.
func (b *Board) GetNetInfo(netName string) *NetInfo {
	found := false
	for _, n := range b.Nets {
		if n.Name == netName {
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return &NetInfo{
		Name:   netName,
		Pads:   b.GetNetPads(netName),
		Tracks: b.GetNetTracks(netName),
		Arcs:   b.GetNetArcs(netName),
		Vias:   b.GetNetVias(netName),
	}
}
