package easyeda

import (
	"fmt"
	"strings"
)

// parseComponent handles a LIB~ shape block:
//
//	LIB~x~y~attributes~rotation~importFlag~id~layer~childs
//
// attributes is a "#@$"-joined list of "key`id`value" triples; childs is a
// "#@$"-joined list of ordinary shape strings in the component's local
// coordinate system (spec §4.3: "Components come as LIB~… blocks with
// nested shape arrays in component-local coordinates"). Unlike every other
// (flat) primitive, the entry cannot be split on "~" in one pass: childs
// is itself "~"-delimited shape text, so only the first 8 fields are
// split out and the remainder is kept whole.
func parseComponent(entry string) (*Component, error) {
	f := strings.SplitN(entry, "~", 9)
	if len(f) < 8 {
		return nil, fmt.Errorf("LIB: too few fields")
	}

	c := &Component{
		X:        ffloat(f, 1),
		Y:        ffloat(f, 2),
		Rotation: ffloat(f, 4),
		ID:       field(f, 6),
		Layer:    fint(f, 7),
	}

	for key, value := range parseAttributes(field(f, 3)) {
		switch strings.ToLower(key) {
		case "package", "footprint":
			c.Package = value
		case "name", "designator":
			c.Designator = value
		case "value":
			c.Value = value
		}
	}

	for _, childEntry := range splitChilds(field(f, 8)) {
		childFields := strings.Split(childEntry, "~")
		if len(childFields) == 0 {
			continue
		}
		switch childFields[0] {
		case TagPad:
			if p, err := parsePad(childFields); err == nil {
				c.Pads = append(c.Pads, *p)
			}
		case TagTrack:
			if t, err := parseTrack(childFields); err == nil {
				c.Tracks = append(c.Tracks, *t)
			}
		case TagArc:
			if a, err := parseArc(childFields); err == nil {
				c.Arcs = append(c.Arcs, *a)
			}
		case TagCircle:
			if cc, err := parseCircle(childFields); err == nil {
				c.Circles = append(c.Circles, *cc)
			}
		case TagRect:
			if r, err := parseRect(childFields); err == nil {
				c.Rects = append(c.Rects, *r)
			}
		case TagText:
			if t, err := parseText(childFields); err == nil {
				if t.IsName && c.Designator == "" {
					c.Designator = t.Value
				}
				c.Texts = append(c.Texts, *t)
			}
		}
	}

	return c, nil
}

// splitChilds splits a "#@$"-joined list of nested shape strings.
func splitChilds(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "#@$")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseAttributes splits a "#@$"-joined list of "key`id`value" (or
// "key`value") triples into a key->value map.
func parseAttributes(s string) map[string]string {
	out := map[string]string{}
	for _, entry := range strings.Split(s, "#@$") {
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "`")
		if len(parts) < 2 {
			continue
		}
		out[parts[0]] = parts[len(parts)-1]
	}
	return out
}
