package ir

import "encoding/json"

// Side constants for footprints, pads, and per-side drawing buckets.
const (
	SideFront = "F"
	SideBack  = "B"
)

// LayeredDrawing pairs a drawing with the board side it was emitted on.
// Marshaling is the struct default (Drawing's own MarshalJSON handles the
// nested tagged-sum encoding); Unmarshal needs help picking the concrete
// Drawing type from its "type" field.
type LayeredDrawing struct {
	Layer   string  `json:"layer"`
	Drawing Drawing `json:"drawing"`
}

func (ld *LayeredDrawing) UnmarshalJSON(data []byte) error {
	var wire struct {
		Layer   string          `json:"layer"`
		Drawing json.RawMessage `json:"drawing"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d, err := UnmarshalDrawing(wire.Drawing)
	if err != nil {
		return err
	}
	ld.Layer = wire.Layer
	ld.Drawing = d
	return nil
}

// Bbox is a footprint's oriented bounding box: Pos is the footprint's
// anchor (its placement position) in board coordinates, RelPos is the
// offset from Pos to the box center (in the footprint's unrotated local
// frame for the EasyEDA, Eagle and Altium parsers; along the board axes for
// KiCad, whose box is measured after placement), Size is width/height, and
// Angle is the footprint's own rotation.
type Bbox struct {
	Pos    Point `json:"pos"`
	RelPos Point `json:"relpos"`
	Size   Size2 `json:"size"`
	Angle  F     `json:"angle"`
}

// Footprint is one placed component: reference designator, pads, and the
// silkscreen/fabrication drawings that belong to it.
type Footprint struct {
	Ref      string           `json:"ref"`
	Center   Point            `json:"center"`
	Bbox     Bbox             `json:"bbox"`
	Pads     []Pad            `json:"pads"`
	Drawings []LayeredDrawing `json:"drawings"`
	Layer    string           `json:"layer"`
}
