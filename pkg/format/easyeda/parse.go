package easyeda

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// documentWire is the top-level EasyEDA PCB export JSON shape.
type documentWire struct {
	Shape []string `json:"shape"`
	Head  struct {
		Title string `json:"title"`
	} `json:"head"`
}

// ParseFile reads and parses an EasyEDA PCB JSON export from disk.
func ParseFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open easyeda file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an EasyEDA PCB JSON document from r.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read easyeda document: %w", err)
	}

	var wire documentWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("malformed easyeda json: %w", err)
	}
	if len(wire.Shape) == 0 {
		return nil, fmt.Errorf("easyeda document has no shape array")
	}

	doc := &Document{}
	for _, entry := range wire.Shape {
		if err := dispatchShape(doc, entry); err != nil {
			// Recoverable per spec §7: a single malformed primitive is
			// dropped rather than failing the whole parse.
			continue
		}
	}
	return doc, nil
}

// dispatchShape parses one top-level "~"-delimited shape string and files
// it into doc, routing LIB~ blocks through parseComponent.
func dispatchShape(doc *Document, entry string) error {
	fields := strings.Split(entry, "~")
	if len(fields) == 0 {
		return fmt.Errorf("empty shape entry")
	}
	tag := fields[0]

	switch tag {
	case TagLib:
		// LIB's childs field is itself "~"-joined shape text, so it must
		// be carved out with a bounded split rather than the naive
		// Split(entry, "~") used for every other (flat) primitive.
		c, err := parseComponent(entry)
		if err != nil {
			return err
		}
		doc.Components = append(doc.Components, *c)
	case TagTrack:
		t, err := parseTrack(fields)
		if err != nil {
			return err
		}
		doc.Tracks = append(doc.Tracks, *t)
	case TagPad:
		p, err := parsePad(fields)
		if err != nil {
			return err
		}
		doc.Pads = append(doc.Pads, *p)
	case TagArc:
		a, err := parseArc(fields)
		if err != nil {
			return err
		}
		doc.Arcs = append(doc.Arcs, *a)
	case TagCircle:
		c, err := parseCircle(fields)
		if err != nil {
			return err
		}
		doc.Circles = append(doc.Circles, *c)
	case TagRect:
		rect, err := parseRect(fields)
		if err != nil {
			return err
		}
		doc.Rects = append(doc.Rects, *rect)
	case TagSolidRegion:
		s, err := parseSolidRegion(fields)
		if err != nil {
			return err
		}
		doc.SolidRegions = append(doc.SolidRegions, *s)
	case TagCopperArea:
		c, err := parseCopperArea(fields)
		if err != nil {
			return err
		}
		doc.CopperAreas = append(doc.CopperAreas, *c)
	case TagText:
		t, err := parseText(fields)
		if err != nil {
			return err
		}
		doc.Texts = append(doc.Texts, *t)
	case TagHole:
		h, err := parseHole(fields)
		if err != nil {
			return err
		}
		doc.Holes = append(doc.Holes, *h)
	case TagSvgNode:
		// SVGNODE carries decorative vector art (logos, QR codes) with no
		// IR equivalent; spec §4.3 names it only to be recognized and
		// skipped, not rendered.
		return nil
	default:
		return fmt.Errorf("unknown shape tag %q", tag)
	}
	return nil
}

func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

func ffloat(fields []string, i int) float64 {
	v, _ := strconv.ParseFloat(field(fields, i), 64)
	return v
}

func fint(fields []string, i int) int {
	v, _ := strconv.Atoi(field(fields, i))
	return v
}

// parsePointList parses a flat "x1 y1 x2 y2 ..." or "x1,y1 x2,y2"
// space-separated coordinate list into Points.
func parsePointList(s string) []Point {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	toks := strings.Fields(strings.ReplaceAll(s, ",", " "))
	var pts []Point
	for i := 0; i+1 < len(toks); i += 2 {
		x, errX := strconv.ParseFloat(toks[i], 64)
		y, errY := strconv.ParseFloat(toks[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}
