package ir

import (
	"encoding/json"
	"fmt"
)

// Drawing is the tagged-sum of every graphical primitive the IR can carry:
// segment, rect, circle, arc (two forms), curve, polygon (two forms), and
// text (two forms). Concrete types are distinguished by their Type().
type Drawing interface {
	Type() string
}

// Segment is a straight line.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
	Width F     `json:"width"`
}

func (Segment) Type() string { return "segment" }

func (s Segment) MarshalJSON() ([]byte, error) {
	type alias Segment
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"segment", alias(s)})
}

// Rect is an axis-aligned (pre-rotation) rectangle given by two corners.
type Rect struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
	Width F     `json:"width"`
}

func (Rect) Type() string { return "rect" }

func (r Rect) MarshalJSON() ([]byte, error) {
	type alias Rect
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"rect", alias(r)})
}

// Circle is defined by center and radius. Filled is 0 or 1.
type Circle struct {
	Start  Point `json:"start"`
	Radius F     `json:"radius"`
	Width  F     `json:"width"`
	Filled int   `json:"filled"`
}

func (Circle) Type() string { return "circle" }

func (c Circle) MarshalJSON() ([]byte, error) {
	type alias Circle
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"circle", alias(c)})
}

// Arc is a center/radius/sweep arc. Per the invariant in spec §3,
// EndAngle >= StartAngle and the sweep is counter-clockwise in IR space.
type Arc struct {
	Start      Point `json:"start"`
	Radius     F     `json:"radius"`
	StartAngle F     `json:"startangle"`
	EndAngle   F     `json:"endangle"`
	Width      F     `json:"width"`
}

func (Arc) Type() string { return "arc" }

func (a Arc) MarshalJSON() ([]byte, error) {
	type alias Arc
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"arc", alias(a)})
}

// ArcPath is the fallback arc form for sources that hand us an
// already-flattened SVG path rather than clean center/radius/sweep data.
// None of this module's parsers emits it.
type ArcPath struct {
	SvgPath string `json:"svgpath"`
	Width   F      `json:"width"`
}

func (ArcPath) Type() string { return "arc" }

func (a ArcPath) MarshalJSON() ([]byte, error) {
	type alias ArcPath
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"arc", alias(a)})
}

// Curve is a cubic Bezier segment.
type Curve struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
	CPA   Point `json:"cpa"`
	CPB   Point `json:"cpb"`
	Width F     `json:"width"`
}

func (Curve) Type() string { return "curve" }

func (c Curve) MarshalJSON() ([]byte, error) {
	type alias Curve
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"curve", alias(c)})
}

// Contour is one closed polygon ring; first and last points need not repeat.
type Contour []Point

func (c Contour) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Point(roundPoints([]Point(c))))
}

// Polygon is a multi-contour, even-odd-filled polygon given by explicit
// point lists, positioned and rotated as a rigid body.
type Polygon struct {
	Pos      Point     `json:"pos"`
	Angle    F         `json:"angle"`
	Polygons []Contour `json:"polygons"`
	Filled   int       `json:"filled"`
	Width    F         `json:"width"`
}

func (Polygon) Type() string { return "polygon" }

func (p Polygon) MarshalJSON() ([]byte, error) {
	type alias Polygon
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"polygon", alias(p)})
}

// PolygonPath is the fallback polygon form for sources that only hand us
// a flattened SVG path. None of this module's parsers emits it.
type PolygonPath struct {
	SvgPath string `json:"svgpath"`
	Filled  int    `json:"filled"`
	Width   F      `json:"width"`
}

func (PolygonPath) Type() string { return "polygon" }

func (p PolygonPath) MarshalJSON() ([]byte, error) {
	type alias PolygonPath
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"polygon", alias(p)})
}

// TextPath is a pre-outlined text drawing: an SVG path plus the ref/val
// classification flags. None of this module's parsers emits it; all text,
// Altium's included, is emitted as StrokeText.
type TextPath struct {
	SvgPath   string `json:"svgpath"`
	Thickness F      `json:"thickness"`
	Ref       int    `json:"ref,omitempty"`
	Val       int    `json:"val,omitempty"`
}

func (TextPath) Type() string { return "text" }

func (t TextPath) MarshalJSON() ([]byte, error) {
	type alias TextPath
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"text", alias(t)})
}

// StrokeText is stroke-font text rendered from the bundled Hershey-derived
// glyph table (KiCad gr_text/fp_text).
type StrokeText struct {
	Pos       Point    `json:"pos"`
	Text      string   `json:"text"`
	Height    F        `json:"height"`
	Width     F        `json:"width"`
	Justify   [2]int   `json:"justify"`
	Thickness F        `json:"thickness"`
	Angle     F        `json:"angle"`
	Attr      []string `json:"attr,omitempty"`
	Ref       int      `json:"ref,omitempty"`
	Val       int      `json:"val,omitempty"`
}

func (StrokeText) Type() string { return "text" }

func (t StrokeText) MarshalJSON() ([]byte, error) {
	type alias StrokeText
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"text", alias(t)})
}

// drawingEnvelope is used only to discriminate Type() during decode.
type drawingEnvelope struct {
	Type string `json:"type"`
}

// UnmarshalDrawing decodes one Drawing value from its canonical JSON form,
// used by the IR round-trip test property (spec §8: IR -> JSON -> parse ->
// IR yields a value-equal IR).
func UnmarshalDrawing(data []byte) (Drawing, error) {
	var env drawingEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode drawing envelope: %w", err)
	}

	switch env.Type {
	case "segment":
		var v Segment
		return v, json.Unmarshal(data, &v)
	case "rect":
		var v Rect
		return v, json.Unmarshal(data, &v)
	case "circle":
		var v Circle
		return v, json.Unmarshal(data, &v)
	case "arc":
		var probe struct {
			SvgPath string `json:"svgpath"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		if probe.SvgPath != "" {
			var v ArcPath
			return v, json.Unmarshal(data, &v)
		}
		var v Arc
		return v, json.Unmarshal(data, &v)
	case "curve":
		var v Curve
		return v, json.Unmarshal(data, &v)
	case "polygon":
		var probe struct {
			SvgPath string `json:"svgpath"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		if probe.SvgPath != "" {
			var v PolygonPath
			return v, json.Unmarshal(data, &v)
		}
		var v Polygon
		return v, json.Unmarshal(data, &v)
	case "text":
		var probe struct {
			SvgPath string `json:"svgpath"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		if probe.SvgPath != "" {
			var v TextPath
			return v, json.Unmarshal(data, &v)
		}
		var v StrokeText
		return v, json.Unmarshal(data, &v)
	default:
		return nil, fmt.Errorf("unknown drawing type %q", env.Type)
	}
}

// DrawingList decodes an array of Drawing values.
func DrawingList(data []byte) ([]Drawing, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]Drawing, len(raw))
	for i, r := range raw {
		d, err := UnmarshalDrawing(r)
		if err != nil {
			return nil, fmt.Errorf("drawing %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// DrawingSlice wraps []Drawing so it marshals correctly through the
// Marshaler implementations of its elements (plain []Drawing already does,
// this type exists for UnmarshalJSON symmetry on struct fields).
type DrawingSlice []Drawing

func (s DrawingSlice) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Drawing(s))
}

func (s *DrawingSlice) UnmarshalJSON(data []byte) error {
	list, err := DrawingList(data)
	if err != nil {
		return err
	}
	*s = DrawingSlice(list)
	return nil
}
