package easyeda

import "fmt"

// parseTrack handles "TRACK~width~layer~net~pointList~id".
func parseTrack(f []string) (*Track, error) {
	if len(f) < 5 {
		return nil, fmt.Errorf("TRACK: too few fields")
	}
	return &Track{
		Width:  ffloat(f, 1),
		Layer:  fint(f, 2),
		Net:    field(f, 3),
		Points: parsePointList(field(f, 4)),
	}, nil
}

// parsePad handles
// "PAD~shape~x~y~w~h~layer~net~number~holeRadius~points~rotation~id~holeLength~plated~...".
func parsePad(f []string) (*Pad, error) {
	if len(f) < 10 {
		return nil, fmt.Errorf("PAD: too few fields")
	}
	p := &Pad{
		Shape:      field(f, 1),
		X:          ffloat(f, 2),
		Y:          ffloat(f, 3),
		W:          ffloat(f, 4),
		H:          ffloat(f, 5),
		Layer:      fint(f, 6),
		Net:        field(f, 7),
		Number:     field(f, 8),
		HoleRadius: ffloat(f, 9),
		Points:     parsePointList(field(f, 10)),
		Rotation:   ffloat(f, 11),
	}
	if len(f) > 13 {
		p.HoleLength = ffloat(f, 13)
	}
	if len(f) > 14 {
		p.Plated = field(f, 14) != "N"
	} else {
		p.Plated = true
	}
	return p, nil
}

// parseArc handles "ARC~width~layer~net~path~helperDots~id". path is an SVG
// path fragment: "M startx starty A rx ry 0 large sweep endx endy".
func parseArc(f []string) (*Arc, error) {
	if len(f) < 5 {
		return nil, fmt.Errorf("ARC: too few fields")
	}
	return &Arc{
		Width: ffloat(f, 1),
		Layer: fint(f, 2),
		Net:   field(f, 3),
		Path:  field(f, 4),
	}, nil
}

// parseCircle handles "CIRCLE~x~y~radius~width~layer~id~net~...".
func parseCircle(f []string) (*Circle, error) {
	if len(f) < 6 {
		return nil, fmt.Errorf("CIRCLE: too few fields")
	}
	c := &Circle{
		X:      ffloat(f, 1),
		Y:      ffloat(f, 2),
		Radius: ffloat(f, 3),
		Width:  ffloat(f, 4),
		Layer:  fint(f, 5),
	}
	if len(f) > 7 {
		c.Net = field(f, 7)
	}
	return c, nil
}

// parseRect handles "RECT~x~y~width~height~layer~id~rotation~...".
func parseRect(f []string) (*Rect, error) {
	if len(f) < 6 {
		return nil, fmt.Errorf("RECT: too few fields")
	}
	r := &Rect{
		X:      ffloat(f, 1),
		Y:      ffloat(f, 2),
		Width:  ffloat(f, 3),
		Height: ffloat(f, 4),
		Layer:  fint(f, 5),
	}
	if len(f) > 7 {
		r.Rotation = ffloat(f, 7)
	}
	return r, nil
}

// parseSolidRegion handles "SOLIDREGION~layer~net~pointsSvgPath~type~id".
func parseSolidRegion(f []string) (*SolidRegion, error) {
	if len(f) < 5 {
		return nil, fmt.Errorf("SOLIDREGION: too few fields")
	}
	return &SolidRegion{
		Layer:  fint(f, 1),
		Net:    field(f, 2),
		Points: parseSvgPolygonPath(field(f, 3)),
		Kind:   field(f, 4),
	}, nil
}

// parseCopperArea handles "COPPERAREA~layer~net~path~type~name~clearance~...".
func parseCopperArea(f []string) (*CopperArea, error) {
	if len(f) < 4 {
		return nil, fmt.Errorf("COPPERAREA: too few fields")
	}
	return &CopperArea{
		Layer:  fint(f, 1),
		Net:    field(f, 2),
		Points: parseSvgPolygonPath(field(f, 3)),
	}, nil
}

// parseText handles
// "TEXT~type~x~y~rotation~value~layer~id~fontsize~...~mirror~...".
func parseText(f []string) (*Text, error) {
	if len(f) < 7 {
		return nil, fmt.Errorf("TEXT: too few fields")
	}
	t := &Text{
		X:        ffloat(f, 2),
		Y:        ffloat(f, 3),
		Rotation: ffloat(f, 4),
		Value:    field(f, 5),
		Layer:    fint(f, 6),
		IsName:   field(f, 1) == "N",
	}
	if len(f) > 8 {
		t.FontSize = ffloat(f, 8)
	}
	for _, flag := range f {
		if flag == "mirror" {
			t.Mirror = true
		}
	}
	return t, nil
}

// parseHole handles "HOLE~x~y~diameter~id".
func parseHole(f []string) (*Hole, error) {
	if len(f) < 4 {
		return nil, fmt.Errorf("HOLE: too few fields")
	}
	return &Hole{
		X:        ffloat(f, 1),
		Y:        ffloat(f, 2),
		Diameter: ffloat(f, 3),
	}, nil
}

// parseSvgPolygonPath extracts the vertex list from SOLIDREGION/COPPERAREA's
// flattened "M x y L x y L x y Z" path form, ignoring the command letters
// (EasyEDA only emits M/L/Z for these shapes).
func parseSvgPolygonPath(path string) []Point {
	fields := splitSvgTokens(path)
	var pts []Point
	var pendingX float64
	haveX := false
	for _, tok := range fields {
		if tok == "" || isSvgCommand(tok) {
			continue
		}
		v, ok := parseSvgNumber(tok)
		if !ok {
			continue
		}
		if !haveX {
			pendingX, haveX = v, true
			continue
		}
		pts = append(pts, Point{X: pendingX, Y: v})
		haveX = false
	}
	return pts
}
