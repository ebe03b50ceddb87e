package kicad

import "github.com/meawoppl/pastebom.com/pkg/sexp"

var topLevelGraphicKinds = map[string]string{
	"gr_line":   "line",
	"gr_circle": "circle",
	"gr_arc":    "arc",
	"gr_rect":   "rect",
	"gr_poly":   "polygon",
	"gr_curve":  "curve",
	"gr_text":   "text",
}

var footprintGraphicKinds = map[string]string{
	"fp_line":   "line",
	"fp_circle": "circle",
	"fp_arc":    "arc",
	"fp_rect":   "rect",
	"fp_poly":   "polygon",
	"fp_curve":  "curve",
	"fp_text":   "text",
}

// parseTopLevelGraphics collects every gr_* drawing primitive at the board
// root, in file order (order matters for layer stacking in the viewer).
func parseTopLevelGraphics(root sexp.Sexp) []Graphic {
	return collectGraphics(root, topLevelGraphicKinds)
}

func collectGraphics(node sexp.Sexp, kinds map[string]string) []Graphic {
	var out []Graphic
	for _, item := range sexp.Items(node) {
		if item == nil || item.IsLeaf() {
			continue
		}
		tag, ok := sexp.HeadSymbol(item)
		if !ok {
			continue
		}
		kind, known := kinds[string(tag)]
		if !known {
			continue
		}
		g, err := parseGraphicNode(item, kind, string(tag))
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}

func parseGraphicNode(node sexp.Sexp, kind string, rawTag string) (Graphic, error) {
	g := Graphic{Kind: kind, Stroke: Stroke{Width: 0.15, Type: "solid"}, Fill: Fill{Type: "none"}}

	switch kind {
	case "line":
		if n, ok := sexp.Find(node, "start"); ok {
			g.Start = parsePositionNode(n)
		}
		if n, ok := sexp.Find(node, "end"); ok {
			g.End = parsePositionNode(n)
		}
	case "circle":
		if n, ok := sexp.Find(node, "center"); ok {
			g.Center = parsePositionNode(n)
		}
		if n, ok := sexp.Find(node, "end"); ok {
			g.End = parsePositionNode(n)
		}
	case "arc":
		if n, ok := sexp.Find(node, "start"); ok {
			g.Start = parsePositionNode(n)
		}
		if n, ok := sexp.Find(node, "mid"); ok {
			g.Mid = parsePositionNode(n)
		}
		if n, ok := sexp.Find(node, "end"); ok {
			g.End = parsePositionNode(n)
		}
		if n, ok := sexp.Find(node, "angle"); ok {
			g.Angle, _ = sexp.FloatAt(n, 1)
		}
	case "rect":
		if n, ok := sexp.Find(node, "start"); ok {
			g.Start = parsePositionNode(n)
		}
		if n, ok := sexp.Find(node, "end"); ok {
			g.End = parsePositionNode(n)
		}
	case "polygon":
		if pts, ok := sexp.Find(node, "pts"); ok {
			g.Points = parseXYPoints(pts)
		}
	case "curve":
		if pts, ok := sexp.Find(node, "pts"); ok {
			g.Points = parseXYPoints(pts)
		}
	case "text":
		// fp_text's grammar is (fp_text TYPE "content" ...) where TYPE is
		// "reference"/"value"/"user"; gr_text has no leading type tag and
		// carries its content directly at index 1.
		textIdx := 1
		if rawTag == "fp_text" {
			textType, err := sexp.StringAt(node, 1)
			if err != nil {
				return Graphic{}, err
			}
			g.TextType = textType
			textIdx = 2
		}
		text, err := sexp.StringAt(node, textIdx)
		if err != nil {
			return Graphic{}, err
		}
		g.Text = text
		if n, ok := sexp.Find(node, "at"); ok {
			g.Start = parsePositionNode(n)
		}
		if eff, ok := sexp.Find(node, "effects"); ok {
			if font, ok := sexp.Find(eff, "font"); ok {
				if sz, ok := sexp.Find(font, "size"); ok {
					w, _ := sexp.FloatAt(sz, 1)
					h, _ := sexp.FloatAt(sz, 2)
					g.Size = Size{W: w, H: h}
				}
				if th, ok := sexp.Find(font, "thickness"); ok {
					g.Width, _ = sexp.FloatAt(th, 1)
				}
			}
		}
	}

	if n, ok := sexp.Find(node, "stroke"); ok {
		g.Stroke = parseStrokeNode(n)
	}
	if n, ok := sexp.Find(node, "fill"); ok {
		g.Fill = parseFillNode(n)
	}

	g.Layer = layerNameOf(node)
	if g.Layer == "" && kind != "text" {
		return Graphic{}, errNoLayer
	}
	return g, nil
}

func parseXYPoints(ptsNode sexp.Sexp) []Position {
	var pts []Position
	for _, item := range sexp.Items(ptsNode) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, _ := sexp.Name(item); name != "xy" {
			continue
		}
		x, errX := sexp.FloatAt(item, 1)
		y, errY := sexp.FloatAt(item, 2)
		if errX == nil && errY == nil {
			pts = append(pts, Position{X: x, Y: y})
		}
	}
	return pts
}

var errNoLayer = missingFieldError("layer")

type missingFieldError string

func (e missingFieldError) Error() string { return "missing required '" + string(e) + "' field" }
