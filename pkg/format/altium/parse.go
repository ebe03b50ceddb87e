package altium

import "strings"

// parseBoard6 reads the Board6/Data text-property stream: stackup layer
// definitions (for mechanical-layer kind lookup) and the board outline
// vertices carried by the KIND=0 record.
func parseBoard6(recs []kvRecord) (mechKinds map[int]mechanicalKind, outline []boardVertex) {
	mechKinds = map[int]mechanicalKind{}
	for _, r := range recs {
		if layerID := r.Int("LAYERID"); layerID != 0 && r.HasKey("MECHKIND") {
			mechKinds[layerID] = mechanicalKind(strings.ToUpper(r.String("MECHKIND")))
		}
		if r.Int("KIND") != 0 {
			continue
		}
		n := r.Int("VCOUNT")
		if n == 0 {
			continue
		}
		verts := make([]boardVertex, 0, n)
		for i := 0; i < n; i++ {
			vx := r.Float(vertexKey("VX", i))
			vy := r.Float(vertexKey("VY", i))
			sa := r.Float(vertexKey("SA", i))
			ea := r.Float(vertexKey("EA", i))
			radius := r.Float(vertexKey("R", i))
			verts = append(verts, boardVertex{
				X: int32(vx), Y: int32(vy),
				StartA: sa, EndA: ea,
				Radius: int32(radius),
				IsArc:  sa != 0 || ea != 0,
			})
		}
		outline = append(outline, verts...)
	}
	return mechKinds, outline
}

func vertexKey(prefix string, i int) string {
	return prefix + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// parseComponents6 reads Components6/Data, one record per placed
// component, indexed by its order of appearance (component_id references
// this index).
func parseComponents6(recs []kvRecord) []componentRecord {
	out := make([]componentRecord, 0, len(recs))
	for i, r := range recs {
		out = append(out, componentRecord{
			Index:     i,
			Name:      r.String("SOURCEDESIGNATOR"),
			Footprint: r.String("PATTERN"),
			Value:     r.String("COMMENT"),
			Layer:     layerNameToSide(r.String("LAYER")),
			X:         int32(r.Float("X")),
			Y:         int32(r.Float("Y")),
			Rotation:  r.Float("ROTATION"),
			Virtual:   r.Bool("NOBOM") || r.Bool("VIRTUAL"),
			Kind:      strings.ToUpper(r.String("COMPONENTKIND")),
		})
	}
	return out
}

func layerNameToSide(name string) int {
	if strings.EqualFold(name, "BOTTOM") {
		return legacyBotOverlay
	}
	return legacyTopOverlay
}

// parseNets6 reads Nets6/Data, one record per net, indexed by order of
// appearance (net indices in other streams reference this order).
func parseNets6(recs []kvRecord) []netRecord {
	out := make([]netRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, netRecord{Name: r.String("NAME")})
	}
	return out
}
