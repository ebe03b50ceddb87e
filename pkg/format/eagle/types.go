// Package eagle parses Eagle/Fusion360 .brd XML board files into the
// tool-independent IR (spec §4.4). The XML tree shape follows
// eagle.drawing.board.{plain,libraries,elements,signals}; decoding uses
// encoding/xml the way the examples corpus's beetlebugorg-s57 package
// decodes its own XML catalog format (pkg/s57/catalog.go).
package eagle

import "encoding/xml"

// Document is the root <eagle> element of a .brd file.
type Document struct {
	XMLName xml.Name `xml:"eagle"`
	Drawing Drawing  `xml:"drawing"`
}

// Drawing holds the grid (unit info) and the board itself.
type Drawing struct {
	Grid  Grid  `xml:"grid"`
	Board Board `xml:"board"`
}

// Grid carries the document's display unit; board coordinates are
// sometimes authored in mil and sometimes in mm depending on this setting
// (spec §4.4: "the file may mix mm and mil; always convert to mm at parse
// time").
type Grid struct {
	Unit string `xml:"unit,attr"`
}

// Board is eagle.drawing.board: free-floating drawing primitives, the
// library catalog, placed elements, and routed signals.
type Board struct {
	Plain      Plain       `xml:"plain"`
	Libraries  []Library   `xml:"libraries>library"`
	Elements   []Element   `xml:"elements>element"`
	Signals    []Signal    `xml:"signals>signal"`
}

// Plain holds board-level (unattached) drawing primitives: wires, text,
// circles, rectangles, polygons drawn directly on the board rather than
// inside a library package.
type Plain struct {
	Wires    []Wire    `xml:"wire"`
	Texts    []Text    `xml:"text"`
	Circles  []Circle  `xml:"circle"`
	Rects    []Rect    `xml:"rectangle"`
	Polygons []Polygon `xml:"polygon"`
}

// Library is one <library name="..."> block containing package
// definitions, indexed by (library name, package name) when resolving an
// element's footprint.
type Library struct {
	Name     string    `xml:"name,attr"`
	Packages []Package `xml:"packages>package"`
}

// Package is one footprint definition: local-coordinate primitives plus
// pads/smds, exactly analogous to a KiCad (footprint ...) block.
type Package struct {
	Name     string    `xml:"name,attr"`
	Wires    []Wire    `xml:"wire"`
	Texts    []Text    `xml:"text"`
	Circles  []Circle  `xml:"circle"`
	Rects    []Rect    `xml:"rectangle"`
	Polygons []Polygon `xml:"polygon"`
	Pads     []ThPad   `xml:"pad"`
	Smds     []SmdPad  `xml:"smd"`
}

// Element is one placed component: a reference into a (library, package)
// pair plus position/rotation.
type Element struct {
	Name    string  `xml:"name,attr"` // reference designator
	Library string  `xml:"library,attr"`
	Package string  `xml:"package,attr"`
	Value   string  `xml:"value,attr"`
	X       float64 `xml:"x,attr"`
	Y       float64 `xml:"y,attr"`
	Rot     string  `xml:"rot,attr"` // "R90", "MR90" (mirrored)
}

// Wire is a line or arc segment (arcs carry a non-zero Curve attribute:
// chord endpoints plus a signed sweep angle in degrees).
type Wire struct {
	X1     float64 `xml:"x1,attr"`
	Y1     float64 `xml:"y1,attr"`
	X2     float64 `xml:"x2,attr"`
	Y2     float64 `xml:"y2,attr"`
	Layer  int     `xml:"layer,attr"`
	Width  float64 `xml:"width,attr"`
	Curve  float64 `xml:"curve,attr"`
}

// Text is a board or package text label.
type Text struct {
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Layer int     `xml:"layer,attr"`
	Size  float64 `xml:"size,attr"`
	Rot   string  `xml:"rot,attr"`
	Value string  `xml:",chardata"`
}

// Circle is a board or package circle outline.
type Circle struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Radius float64 `xml:"radius,attr"`
	Layer  int     `xml:"layer,attr"`
	Width  float64 `xml:"width,attr"`
}

// Rect is a board or package filled rectangle, given by opposite corners.
type Rect struct {
	X1    float64 `xml:"x1,attr"`
	Y1    float64 `xml:"y1,attr"`
	X2    float64 `xml:"x2,attr"`
	Y2    float64 `xml:"y2,attr"`
	Layer int     `xml:"layer,attr"`
}

// Polygon is a filled outline (board-level: often a copper pour; it also
// doubles as the board edge when layer==20).
type Polygon struct {
	Layer    int      `xml:"layer,attr"`
	Width    float64  `xml:"width,attr"`
	Vertices []Vertex `xml:"vertex"`
}

// Vertex is one polygon corner.
type Vertex struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

// ThPad is a round/oblong through-hole pad defined inside a package.
type ThPad struct {
	Name     string  `xml:"name,attr"`
	X        float64 `xml:"x,attr"`
	Y        float64 `xml:"y,attr"`
	Drill    float64 `xml:"drill,attr"`
	Diameter float64 `xml:"diameter,attr"`
	Shape    string  `xml:"shape,attr"`
	Rot      string  `xml:"rot,attr"`
}

// SmdPad is a surface-mount pad defined inside a package.
type SmdPad struct {
	Name       string  `xml:"name,attr"`
	X          float64 `xml:"x,attr"`
	Y          float64 `xml:"y,attr"`
	Dx         float64 `xml:"dx,attr"`
	Dy         float64 `xml:"dy,attr"`
	Layer      int     `xml:"layer,attr"`
	Rot        string  `xml:"rot,attr"`
	RoundRatio float64 `xml:"roundness,attr"`
}

// Signal is one named net: the wires/vias/polygon fills routed on it.
type Signal struct {
	Name     string    `xml:"name,attr"`
	Wires    []Wire    `xml:"wire"`
	Vias     []Via     `xml:"via"`
	Polygons []Polygon `xml:"polygon"`
}

// Via is a plated via on a signal.
type Via struct {
	X        float64 `xml:"x,attr"`
	Y        float64 `xml:"y,attr"`
	Drill    float64 `xml:"drill,attr"`
	Diameter float64 `xml:"diameter,attr"`
}
