package kicad

import (
	"fmt"
	"io"
	"os"

	"github.com/meawoppl/pastebom.com/pkg/sexp"
)

// ParseFile opens and parses a .kicad_pcb file.
func ParseFile(filename string) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open kicad_pcb file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a complete kicad_pcb document from r.
func Parse(r io.Reader) (*Board, error) {
	root, err := sexp.ParseOne(r)
	if err != nil {
		return nil, fmt.Errorf("parse s-expression: %w", err)
	}

	rootName, err := sexp.Name(root)
	if err != nil {
		return nil, fmt.Errorf("malformed root node: %w", err)
	}
	if rootName != "kicad_pcb" {
		return nil, fmt.Errorf("not a kicad_pcb file: root node is %q", rootName)
	}

	version, generator, err := parseHeader(root)
	if err != nil {
		return nil, err
	}
	board := &Board{Version: version, Generator: generator}

	if layersNode, ok := sexp.Find(root, "layers"); ok {
		layers, err := parseLayers(layersNode)
		if err != nil {
			return nil, fmt.Errorf("parse layers: %w", err)
		}
		board.Layers = layers
	}

	if tbNode, ok := sexp.Find(root, "title_block"); ok {
		board.TitleBlock = parseTitleBlock(tbNode)
	}

	nets, err := parseNets(root)
	if err != nil {
		return nil, fmt.Errorf("parse nets: %w", err)
	}
	board.Nets = nets
	netMap := NewNetMap(nets)

	board.Graphics = parseTopLevelGraphics(root)

	tracks, arcs, err := parseTracks(root, netMap)
	if err != nil {
		return nil, fmt.Errorf("parse tracks: %w", err)
	}
	board.Tracks = tracks
	board.Arcs = arcs

	vias, err := parseVias(root, netMap)
	if err != nil {
		return nil, fmt.Errorf("parse vias: %w", err)
	}
	board.Vias = vias

	footprints, err := parseFootprints(root, netMap)
	if err != nil {
		return nil, fmt.Errorf("parse footprints: %w", err)
	}
	board.Footprints = footprints

	board.Zones = parseZones(root, netMap)

	return board, nil
}

// parseHeader extracts (version N) and (generator "tool") / (host tool ver).
func parseHeader(root sexp.Sexp) (version int, generator string, err error) {
	versionNode, ok := sexp.Find(root, "version")
	if !ok {
		return 0, "", fmt.Errorf("missing required 'version' field")
	}
	ver, err := sexp.IntAt(versionNode, 1)
	if err != nil {
		return 0, "", fmt.Errorf("parse version: %w", err)
	}
	if ver < MinSupportedVersion {
		return 0, "", fmt.Errorf("unsupported kicad_pcb version %d (minimum %d, KiCad 5.0)", ver, MinSupportedVersion)
	}

	gen := "unknown"
	if genNode, ok := sexp.Find(root, "generator"); ok {
		if name, err := sexp.StringAt(genNode, 1); err == nil {
			gen = name
		}
	} else if hostNode, ok := sexp.Find(root, "host"); ok {
		if name, err := sexp.StringAt(hostNode, 1); err == nil {
			gen = name
		}
	}
	return ver, gen, nil
}

func parseTitleBlock(node sexp.Sexp) TitleBlock {
	var tb TitleBlock
	if n, ok := sexp.Find(node, "title"); ok {
		tb.Title, _ = sexp.StringAt(n, 1)
	}
	if n, ok := sexp.Find(node, "date"); ok {
		tb.Date, _ = sexp.StringAt(n, 1)
	}
	if n, ok := sexp.Find(node, "rev"); ok {
		tb.Revision, _ = sexp.StringAt(n, 1)
	}
	if n, ok := sexp.Find(node, "company"); ok {
		tb.Company, _ = sexp.StringAt(n, 1)
	}
	return tb
}

// parseLayers reads (layers (0 "F.Cu" signal) (31 "B.Cu" signal) ...).
func parseLayers(node sexp.Sexp) ([]Layer, error) {
	var layers []Layer
	for _, item := range sexp.Rest(node) {
		if item == nil || item.IsLeaf() {
			continue
		}
		num, err := sexp.IntAt(item, 0)
		if err != nil {
			return nil, fmt.Errorf("layer number: %w", err)
		}
		name, err := sexp.StringAt(item, 1)
		if err != nil {
			return nil, fmt.Errorf("layer name: %w", err)
		}
		typ := "user"
		if t, err := sexp.StringAt(item, 2); err == nil {
			typ = t
		}
		layers = append(layers, Layer{Number: num, Name: name, Type: typ})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers defined")
	}
	return layers, nil
}

// parseNets reads every top-level (net N "name") declaration.
func parseNets(root sexp.Sexp) ([]Net, error) {
	var nets []Net
	for _, netNode := range sexp.FindAll(root, "net") {
		num, err := sexp.IntAt(netNode, 1)
		if err != nil {
			return nil, fmt.Errorf("net number: %w", err)
		}
		name, _ := sexp.StringAt(netNode, 2)
		nets = append(nets, Net{Number: num, Name: name})
	}
	return nets, nil
}

func layerNameOf(node sexp.Sexp) string {
	if n, ok := sexp.Find(node, "layer"); ok {
		name, _ := sexp.StringAt(n, 1)
		return name
	}
	return ""
}

func parsePositionNode(node sexp.Sexp) Position {
	var p Position
	p.X, _ = sexp.FloatAt(node, 1)
	p.Y, _ = sexp.FloatAt(node, 2)
	p.Angle, _ = sexp.FloatAt(node, 3)
	return p
}

func parseStrokeNode(node sexp.Sexp) Stroke {
	s := Stroke{Width: 0.15, Type: "solid"}
	if w, ok := sexp.Find(node, "width"); ok {
		if v, err := sexp.FloatAt(w, 1); err == nil {
			s.Width = v
		}
	}
	if t, ok := sexp.Find(node, "type"); ok {
		if v, err := sexp.StringAt(t, 1); err == nil {
			s.Type = v
		}
	}
	return s
}

func parseFillNode(node sexp.Sexp) Fill {
	f := Fill{Type: "none"}
	if t, ok := sexp.Find(node, "type"); ok {
		if v, err := sexp.StringAt(t, 1); err == nil {
			f.Type = v
		}
	}
	return f
}
