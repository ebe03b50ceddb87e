package ir

import (
	"encoding/json"
	"fmt"
)

// Fill rule for path-form zones.
const (
	FillRuleEvenOdd = "evenodd"
	FillRuleNonzero = "nonzero"
)

// Zone is a copper region tied to a net; either explicit polygon contours
// (the common case, including KiCad's pre-computed filled_polygon data) or
// a flattened SVG path. This module's parsers emit only the polygon form.
type Zone interface {
	zoneMarker()
}

// ZonePolygons is the polygon-contour zone form.
type ZonePolygons struct {
	Polygons []Contour `json:"polygons"`
	Width    F         `json:"width"`
	Net      string    `json:"net"`
}

func (ZonePolygons) zoneMarker() {}

func (z ZonePolygons) MarshalJSON() ([]byte, error) {
	type alias ZonePolygons
	return json.Marshal(alias(z))
}

// ZonePath is the SVG-path zone form.
type ZonePath struct {
	SvgPath  string `json:"svgpath"`
	Net      string `json:"net"`
	FillRule string `json:"fillrule"`
}

func (ZonePath) zoneMarker() {}

func (z ZonePath) MarshalJSON() ([]byte, error) {
	type alias ZonePath
	return json.Marshal(alias(z))
}

// UnmarshalZone decodes one Zone value, discriminating on the presence of
// the svgpath field since zones carry no explicit "type" key in the
// upstream schema.
func UnmarshalZone(data []byte) (Zone, error) {
	var probe struct {
		SvgPath *string `json:"svgpath"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode zone: %w", err)
	}
	if probe.SvgPath != nil {
		var v ZonePath
		return v, json.Unmarshal(data, &v)
	}
	var v ZonePolygons
	return v, json.Unmarshal(data, &v)
}
