// Package easyeda parses EasyEDA's JSON PCB export into the internal
// component model lowered by ir.go into the tool-independent IR (spec
// §4.3). EasyEDA has no dedicated example repo in the retrieved corpus —
// this package follows the JSON-handling idiom (stdlib encoding/json,
// explicit error wrapping) established by pkg/ir and pkg/format/kicad, and
// is grounded directly in spec.md's own wire-format description.
package easyeda

// Shape primitive tags, the first `~`-delimited field of each entry in the
// document's top-level "shape" array.
const (
	TagTrack      = "TRACK"
	TagPad        = "PAD"
	TagArc        = "ARC"
	TagCircle     = "CIRCLE"
	TagRect       = "RECT"
	TagSolidRegion = "SOLIDREGION"
	TagCopperArea = "COPPERAREA"
	TagSvgNode    = "SVGNODE"
	TagText       = "TEXT"
	TagHole       = "HOLE"
	TagLib        = "LIB"
)

// Track is a copper or silkscreen polyline: "TRACK~width~layer~net~pts~id".
type Track struct {
	Width  float64
	Layer  int
	Net    string
	Points []Point
}

// Pad is "PAD~shape~x~y~w~h~layer~net~number~holeRadius~points~rotation~id~holeLength~..."
type Pad struct {
	Shape      string
	X, Y       float64
	W, H       float64
	Layer      int
	Net        string
	Number     string
	HoleRadius float64
	Points     []Point // used by POLYGON-shaped pads
	Rotation   float64
	HoleLength float64 // 0 for round holes, >0 for slotted (oblong)
	Plated     bool
}

// Arc is "ARC~width~layer~net~path~helperDots~id", path a bare SVG path
// fragment ("M x y A rx ry 0 flags x2 y2").
type Arc struct {
	Width float64
	Layer int
	Net   string
	Path  string
}

// Circle is "CIRCLE~x~y~radius~width~layer~id~net~...".
type Circle struct {
	X, Y, Radius float64
	Width        float64
	Layer        int
	Net          string
}

// Rect is "RECT~x~y~width~height~layer~id~rotation~..."
type Rect struct {
	X, Y          float64
	Width, Height float64
	Layer         int
	Rotation      float64
}

// SolidRegion is "SOLIDREGION~layer~net~pointsSvgPath~type~id", a filled
// polygon (board edge cutout, copper pour outline, or silkscreen fill).
type SolidRegion struct {
	Layer  int
	Net    string
	Points []Point
	Kind   string // "cutout", "solid", "npth"
}

// CopperArea is "COPPERAREA~layer~net~path~type~name~clearance~...", a
// poured copper zone; Points is the outline path flattened to vertices.
type CopperArea struct {
	Layer  int
	Net    string
	Points []Point
}

// Text is "TEXT~type~x~y~rotation~value~layer~...~fontSize~...~mirror~...~id"
type Text struct {
	X, Y     float64
	Rotation float64
	Value    string
	Layer    int
	FontSize float64
	Mirror   bool
	IsName   bool // type == "N" (designator) or "C" (comment/value)
}

// Hole is "HOLE~x~y~diameter~id", an unplated mechanical hole.
type Hole struct {
	X, Y, Diameter float64
}

// Point is a local 2D coordinate in EasyEDA's native mil units, still
// unconverted at this layer.
type Point struct {
	X, Y float64
}

// Component is one LIB~ placed library instance: the placement transform
// plus every nested primitive in component-local coordinates.
type Component struct {
	X, Y     float64
	Rotation float64
	Layer    int // 1 = top, 2 = bottom (mirrored)
	ID       string
	Package  string // "Package" attribute value, used as Footprint field
	Designator string
	Value    string

	Pads   []Pad
	Tracks []Track
	Arcs   []Arc
	Circles []Circle
	Rects  []Rect
	Texts  []Text
}

// Document is the fully parsed EasyEDA PCB: loose board-level primitives
// plus placed components.
type Document struct {
	Components []Component

	Tracks       []Track
	Pads         []Pad // unattached pads, rare but legal (component_id-less in spec terms)
	Arcs         []Arc
	Circles      []Circle
	Rects        []Rect
	SolidRegions []SolidRegion
	CopperAreas  []CopperArea
	Texts        []Text
	Holes        []Hole
}
