package altium

import (
	"encoding/binary"
	"fmt"

	"github.com/meawoppl/pastebom.com/pkg/cfb"
)

var cfbMagic = [8]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// LooksLikeAltium reports whether data begins with the OLE2/CFB magic
// number, the format-dispatch signal spec §4.1 uses to route Altium files
// regardless of filename.
func LooksLikeAltium(data []byte) bool {
	if len(data) < len(cfbMagic) {
		return false
	}
	for i, b := range cfbMagic {
		if data[i] != b {
			return false
		}
	}
	return true
}

// Document is a fully-parsed Altium PCB document: every required stream
// decoded into its typed record list.
type Document struct {
	MechKinds   map[int]mechanicalKind
	Outline     []boardVertex
	Components  []componentRecord
	Nets        []netRecord
	Tracks      []trackRecord
	Arcs        []arcRecord
	Vias        []viaRecord
	Pads        []padRecord
	Texts       []textRecord
	Fills       []fillRecord
	WideStrings map[int]string
}

// requiredStream reads one /Data stream, wrapping cfb errors with the
// stream name for diagnostics.
func requiredStream(r *cfb.Reader, storage string) ([]byte, error) {
	data, err := r.ReadStream(storage + "/Data")
	if err != nil {
		return nil, fmt.Errorf("altium: reading %s: %w", storage, err)
	}
	return data, nil
}

func optionalStream(r *cfb.Reader, storage string) []byte {
	if !r.HasStream(storage + "/Data") {
		return nil
	}
	data, _ := r.ReadStream(storage + "/Data")
	return data
}

// Parse opens an Altium OLE2 container and decodes every stream needed to
// lower the board to IR (spec §4.5).
func Parse(data []byte) (*Document, error) {
	r, err := cfb.Open(data)
	if err != nil {
		return nil, fmt.Errorf("altium: %w", err)
	}

	boardData, err := requiredStream(r, "Board6")
	if err != nil {
		return nil, err
	}
	compData, err := requiredStream(r, "Components6")
	if err != nil {
		return nil, err
	}
	netData, err := requiredStream(r, "Nets6")
	if err != nil {
		return nil, err
	}
	trackData, err := requiredStream(r, "Tracks6")
	if err != nil {
		return nil, err
	}
	arcData, err := requiredStream(r, "Arcs6")
	if err != nil {
		return nil, err
	}
	padData, err := requiredStream(r, "Pads6")
	if err != nil {
		return nil, err
	}
	viaData, err := requiredStream(r, "Vias6")
	if err != nil {
		return nil, err
	}
	textData, err := requiredStream(r, "Texts6")
	if err != nil {
		return nil, err
	}
	wideData, err := requiredStream(r, "WideStrings6")
	if err != nil {
		return nil, err
	}

	boardKV, err := parseKVStream(boardData)
	if err != nil {
		return nil, err
	}
	compKV, err := parseKVStream(compData)
	if err != nil {
		return nil, err
	}
	netKV, err := parseKVStream(netData)
	if err != nil {
		return nil, err
	}

	tracks, err := parseTracks6(trackData)
	if err != nil {
		return nil, err
	}
	arcs, err := parseArcs6(arcData)
	if err != nil {
		return nil, err
	}
	vias, err := parseVias6(viaData)
	if err != nil {
		return nil, err
	}
	pads, err := parsePads6(padData)
	if err != nil {
		return nil, err
	}
	texts, err := parseTexts6(textData)
	if err != nil {
		return nil, err
	}

	var fills []fillRecord
	if fillData := optionalStream(r, "Fills6"); fillData != nil {
		fills, err = parseFills6(fillData)
		if err != nil {
			return nil, err
		}
	}

	mechKinds, outline := parseBoard6(boardKV)

	doc := &Document{
		MechKinds:   mechKinds,
		Outline:     outline,
		Components:  parseComponents6(compKV),
		Nets:        parseNets6(netKV),
		Tracks:      tracks,
		Arcs:        arcs,
		Vias:        vias,
		Pads:        pads,
		Texts:       texts,
		Fills:       fills,
		WideStrings: parseWideStrings(wideData),
	}
	return doc, nil
}

// parseWideStrings decodes WideStrings6/Data: the same length-prefixed
// record framing as the text-property streams (spec §4.5), but each
// record's payload is UTF-16LE text rather than Latin-1 KEY=VALUE pairs,
// since it exists specifically to carry characters Latin-1 can't.
func parseWideStrings(data []byte) map[int]string {
	out := map[int]string{}
	off, idx := 0, 0
	for off+4 <= len(data) {
		length := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		if off+int(length) > len(data) {
			break
		}
		body := data[off : off+int(length)]
		off += int(length)
		out[idx] = cfb.DecodeUTF16LE(body)
		idx++
	}
	return out
}
