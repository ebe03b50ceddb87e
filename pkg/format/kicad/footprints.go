package kicad

import (
	"fmt"
	"strings"

	"github.com/meawoppl/pastebom.com/pkg/sexp"
)

// parseFootprints collects every (footprint ...) at board root.
func parseFootprints(root sexp.Sexp, netMap *NetMap) ([]Footprint, error) {
	var out []Footprint
	for _, node := range sexp.FindAll(root, "footprint") {
		fp, err := parseFootprint(node, netMap)
		if err != nil {
			// One malformed footprint shouldn't fail the whole board; spec
			// §7 treats this class of anomaly as recoverable.
			continue
		}
		out = append(out, *fp)
	}
	return out, nil
}

func parseFootprint(node sexp.Sexp, netMap *NetMap) (*Footprint, error) {
	fp := &Footprint{}

	fullName, err := sexp.StringAt(node, 1)
	if err != nil {
		return nil, fmt.Errorf("footprint name: %w", err)
	}
	if idx := strings.IndexByte(fullName, ':'); idx > 0 {
		fp.Library, fp.Name = fullName[:idx], fullName[idx+1:]
	} else {
		fp.Name = fullName
	}

	fp.Layer = layerNameOf(node)
	if fp.Layer == "" {
		return nil, fmt.Errorf("missing required 'layer' field")
	}

	atNode, ok := sexp.Find(node, "at")
	if !ok {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	fp.Position = parsePositionNode(atNode)

	for _, propNode := range sexp.FindAll(node, "property") {
		name, err := sexp.StringAt(propNode, 1)
		if err != nil {
			continue
		}
		value, err := sexp.StringAt(propNode, 2)
		if err != nil {
			continue
		}
		switch name {
		case "Reference":
			fp.Reference = value
		case "Value":
			fp.Value = value
		}
	}

	for _, padNode := range sexp.FindAll(node, "pad") {
		pad, err := parsePad(padNode, netMap)
		if err != nil {
			continue
		}
		fp.Pads = append(fp.Pads, *pad)
	}

	fp.Graphics = collectGraphics(node, footprintGraphicKinds)

	return fp, nil
}

func parsePad(node sexp.Sexp, netMap *NetMap) (*Pad, error) {
	pad := &Pad{}

	number, err := sexp.StringAt(node, 1)
	if err != nil {
		return nil, fmt.Errorf("pad number: %w", err)
	}
	pad.Number = number

	padType, err := sexp.StringAt(node, 2)
	if err != nil {
		return nil, fmt.Errorf("pad type: %w", err)
	}
	pad.Type = padType

	shape, err := sexp.StringAt(node, 3)
	if err != nil {
		return nil, fmt.Errorf("pad shape: %w", err)
	}
	pad.Shape = shape

	atNode, ok := sexp.Find(node, "at")
	if !ok {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	pad.Position = parsePositionNode(atNode)

	sizeNode, ok := sexp.Find(node, "size")
	if !ok {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	w, err := sexp.FloatAt(sizeNode, 1)
	if err != nil {
		return nil, fmt.Errorf("pad width: %w", err)
	}
	h, err := sexp.FloatAt(sizeNode, 2)
	if err != nil {
		return nil, fmt.Errorf("pad height: %w", err)
	}
	pad.Size = Size{W: w, H: h}

	if drillNode, ok := sexp.Find(node, "drill"); ok {
		if v, err := sexp.FloatAt(drillNode, 1); err == nil {
			pad.Drill = v
			pad.DrillShape = "circle"
		} else if ovalNode, ok := sexp.Find(drillNode, "oval"); ok {
			_ = ovalNode
			pad.DrillShape = "oblong"
			if dw, err := sexp.FloatAt(drillNode, 2); err == nil {
				pad.Drill = dw
			}
			if dh, err := sexp.FloatAt(drillNode, 3); err == nil {
				pad.DrillW = dh
			}
		}
	}

	if layersNode, ok := sexp.Find(node, "layers"); ok {
		for _, item := range sexp.Rest(layersNode) {
			sym, ok := item.(sexp.Symbol)
			if !ok {
				continue
			}
			pad.Layers = append(pad.Layers, sym.Unquoted())
		}
	} else {
		return nil, fmt.Errorf("missing required 'layers' field")
	}

	if netNode, ok := sexp.Find(node, "net"); ok {
		if num, err := sexp.IntAt(netNode, 1); err == nil && netMap != nil {
			pad.Net = netMap.NameFor(num)
		}
	}

	if rrNode, ok := sexp.Find(node, "roundrect_rratio"); ok {
		pad.RoundRatio, _ = sexp.FloatAt(rrNode, 1)
	}
	if crNode, ok := sexp.Find(node, "chamfer_ratio"); ok {
		pad.ChamfRatio, _ = sexp.FloatAt(crNode, 1)
	}
	if chNode, ok := sexp.Find(node, "chamfer"); ok {
		for _, item := range sexp.Rest(chNode) {
			sym, ok := item.(sexp.Symbol)
			if !ok {
				continue
			}
			switch sym.Unquoted() {
			case "top_left":
				pad.ChamfTL = true
			case "top_right":
				pad.ChamfTR = true
			case "bottom_right":
				pad.ChamfBR = true
			case "bottom_left":
				pad.ChamfBL = true
			}
		}
	}

	return pad, nil
}
