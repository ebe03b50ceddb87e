package ir

import "encoding/json"

// EdgesBbox is the tight axis-aligned bounding box of all edge drawings.
type EdgesBbox struct {
	MinX F `json:"minx"`
	MinY F `json:"miny"`
	MaxX F `json:"maxx"`
	MaxY F `json:"maxy"`
}

// SideDrawings buckets drawings by board side.
type SideDrawings struct {
	F []Drawing `json:"F"`
	B []Drawing `json:"B"`
}

func (s *SideDrawings) UnmarshalJSON(data []byte) error {
	var wire struct {
		F []json.RawMessage `json:"F"`
		B []json.RawMessage `json:"B"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	decode := func(raw []json.RawMessage) ([]Drawing, error) {
		out := make([]Drawing, len(raw))
		for i, r := range raw {
			d, err := UnmarshalDrawing(r)
			if err != nil {
				return nil, err
			}
			out[i] = d
		}
		return out, nil
	}
	f, err := decode(wire.F)
	if err != nil {
		return err
	}
	b, err := decode(wire.B)
	if err != nil {
		return err
	}
	s.F, s.B = f, b
	return nil
}

// DrawingsByLayer splits board-level (non-edge, non-footprint) drawings
// into the silkscreen and fabrication buckets, each per-side.
type DrawingsByLayer struct {
	Silkscreen  SideDrawings `json:"silkscreen"`
	Fabrication SideDrawings `json:"fabrication"`
}

// Metadata carries the source design's title-block fields.
type Metadata struct {
	Title    string `json:"title"`
	Revision string `json:"revision"`
	Company  string `json:"company"`
	Date     string `json:"date"`
}

// Glyph is one bundled stroke-font character: stroke width plus its
// polyline outlines, in font design units.
type Glyph struct {
	W F          `json:"w"`
	L [][]Point  `json:"l"`
}

// PcbData is the IR root produced by every format parser.
type PcbData struct {
	EdgesBbox  EdgesBbox         `json:"edges_bbox"`
	Edges      []Drawing         `json:"edges"`
	Drawings   DrawingsByLayer   `json:"drawings"`
	Footprints []Footprint       `json:"footprints"`
	Metadata   Metadata          `json:"metadata"`
	Tracks     *Tracks           `json:"tracks,omitempty"`
	Zones      []Zone            `json:"zones,omitempty"`
	Nets       []string          `json:"nets,omitempty"`
	FontData   map[string]Glyph  `json:"font_data,omitempty"`
	BOM        *BOM              `json:"bom,omitempty"`
}

func (p *PcbData) UnmarshalJSON(data []byte) error {
	type wire struct {
		EdgesBbox EdgesBbox         `json:"edges_bbox"`
		Edges     []json.RawMessage `json:"edges"`
		Drawings  struct {
			Silkscreen  SideDrawings `json:"silkscreen"`
			Fabrication SideDrawings `json:"fabrication"`
		} `json:"drawings"`
		Footprints []Footprint      `json:"footprints"`
		Metadata   Metadata         `json:"metadata"`
		Tracks     *Tracks          `json:"tracks,omitempty"`
		Zones      []json.RawMessage `json:"zones,omitempty"`
		Nets       []string         `json:"nets,omitempty"`
		FontData   map[string]Glyph `json:"font_data,omitempty"`
		BOM        *BOM             `json:"bom,omitempty"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	edges := make([]Drawing, len(w.Edges))
	for i, r := range w.Edges {
		d, err := UnmarshalDrawing(r)
		if err != nil {
			return err
		}
		edges[i] = d
	}
	zones := make([]Zone, len(w.Zones))
	for i, r := range w.Zones {
		z, err := UnmarshalZone(r)
		if err != nil {
			return err
		}
		zones[i] = z
	}
	p.EdgesBbox = w.EdgesBbox
	p.Edges = edges
	p.Drawings = DrawingsByLayer{Silkscreen: w.Drawings.Silkscreen, Fabrication: w.Drawings.Fabrication}
	p.Footprints = w.Footprints
	p.Metadata = w.Metadata
	p.Tracks = w.Tracks
	p.Zones = zones
	p.Nets = w.Nets
	p.FontData = w.FontData
	p.BOM = w.BOM
	return nil
}
