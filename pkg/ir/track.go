package ir

import (
	"encoding/json"
	"fmt"
)

// Track is the tagged sum of the three track record shapes emitted on the
// F/B track lists: straight segment, via, and arc.
type Track interface {
	TrackType() string
}

// TrackSegment is a straight copper trace.
type TrackSegment struct {
	Start Point  `json:"start"`
	End   Point  `json:"end"`
	Width F      `json:"width"`
	Net   string `json:"net"`
}

func (TrackSegment) TrackType() string { return "segment" }

func (t TrackSegment) MarshalJSON() ([]byte, error) {
	type alias TrackSegment
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"segment", alias(t)})
}

// TrackVia is a plated via, listed under both F and B lists.
type TrackVia struct {
	Start     Point  `json:"start"`
	End       Point  `json:"end"`
	Width     F      `json:"width"`
	Net       string `json:"net"`
	DrillSize Size2  `json:"drillsize"`
}

func (TrackVia) TrackType() string { return "via" }

func (t TrackVia) MarshalJSON() ([]byte, error) {
	type alias TrackVia
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"via", alias(t)})
}

// TrackArc is a curved copper trace.
type TrackArc struct {
	Center     Point  `json:"center"`
	StartAngle F      `json:"startangle"`
	EndAngle   F      `json:"endangle"`
	Radius     F      `json:"radius"`
	Width      F      `json:"width"`
	Net        string `json:"net"`
}

func (TrackArc) TrackType() string { return "arc" }

func (t TrackArc) MarshalJSON() ([]byte, error) {
	type alias TrackArc
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"arc", alias(t)})
}

// UnmarshalTrack decodes one Track value from its canonical JSON form.
func UnmarshalTrack(data []byte) (Track, error) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode track envelope: %w", err)
	}
	switch env.Type {
	case "segment":
		var v TrackSegment
		return v, json.Unmarshal(data, &v)
	case "via":
		var v TrackVia
		return v, json.Unmarshal(data, &v)
	case "arc":
		var v TrackArc
		return v, json.Unmarshal(data, &v)
	default:
		return nil, fmt.Errorf("unknown track type %q", env.Type)
	}
}

// Tracks segregates track records by board side (spec §3).
type Tracks struct {
	F []Track `json:"F"`
	B []Track `json:"B"`
}

func (t *Tracks) UnmarshalJSON(data []byte) error {
	var wire struct {
		F []json.RawMessage `json:"F"`
		B []json.RawMessage `json:"B"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	decode := func(raw []json.RawMessage) ([]Track, error) {
		out := make([]Track, len(raw))
		for i, r := range raw {
			tr, err := UnmarshalTrack(r)
			if err != nil {
				return nil, err
			}
			out[i] = tr
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
	t.F, t.B = f, b
	return nil
}
