package altium

import (
	"encoding/binary"
	"fmt"
	"math"
)

// subRecord is one `[u8 type][u32 LE length][payload]` frame that makes up
// a binary-encoded object stream (Tracks6, Arcs6, Vias6, Pads6, Fills6,
// Regions6, Texts6 per spec §4.5).
type subRecord struct {
	Type    byte
	Payload []byte
}

func readSubRecords(data []byte) ([]subRecord, error) {
	var out []subRecord
	off := 0
	for off < len(data) {
		if off+5 > len(data) {
			return nil, fmt.Errorf("altium: truncated sub-record header at offset %d", off)
		}
		typ := data[off]
		length := binary.LittleEndian.Uint32(data[off+1 : off+5])
		off += 5
		if off+int(length) > len(data) {
			return nil, fmt.Errorf("altium: sub-record at offset %d overruns stream (declared len %d)", off, length)
		}
		out = append(out, subRecord{Type: typ, Payload: data[off : off+int(length)]})
		off += int(length)
	}
	return out, nil
}

// Fixed-width field readers. All multi-byte integers and floats are
// little-endian, matching the rest of the CFB container's byte order.

func i8At(b []byte, off int) int8 {
	if off < 0 || off >= len(b) {
		return 0
	}
	return int8(b[off])
}

func u8At(b []byte, off int) uint8 {
	if off < 0 || off >= len(b) {
		return 0
	}
	return b[off]
}

func i16At(b []byte, off int) int16 {
	if off < 0 || off+2 > len(b) {
		return 0
	}
	return int16(binary.LittleEndian.Uint16(b[off : off+2]))
}

func u16At(b []byte, off int) uint16 {
	if off < 0 || off+2 > len(b) {
		return 0
	}
	return binary.LittleEndian.Uint16(b[off : off+2])
}

func i32At(b []byte, off int) int32 {
	if off < 0 || off+4 > len(b) {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}

func f64At(b []byte, off int) float64 {
	if off < 0 || off+8 > len(b) {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[off : off+8]))
}

// geomPayload picks the sub-record carrying an object's fixed-offset
// geometry fields out of a group belonging to one logical record. Track,
// Arc, Via, Fill, and Text records carry exactly one geometry sub-record;
// Pad records carry a leading name sub-record (type 0) before it. We treat
// whichever sub-record is longest as the geometry one, which tolerates
// either convention without needing the exact type-code assignment Altium
// itself uses internally (undocumented and not recoverable from the spec
// prose alone).
func geomPayload(group []subRecord) []byte {
	geomIdx, _ := payloadIndices(group)
	if geomIdx < 0 {
		return nil
	}
	return group[geomIdx].Payload
}

// namePayload returns the first sub-record in a group that isn't the
// geometry one (by index, not content, so a zero-length or duplicate
// payload can't be mismatched against it), used for Pad/Text name and
// embedded-string fields.
func namePayload(group []subRecord) []byte {
	_, nameIdx := payloadIndices(group)
	if nameIdx < 0 {
		return nil
	}
	return group[nameIdx].Payload
}

// payloadIndices locates the geometry sub-record (the longest payload in
// the group) and the first non-geometry sub-record (the name/string one,
// for Pad and Text records), both identified by index so that ambiguous
// content (a zero-length or duplicate-length payload) can never be
// mismatched. Returns -1 for either index when the group has no candidate.
func payloadIndices(group []subRecord) (geomIdx, nameIdx int) {
	geomIdx, nameIdx = -1, -1
	for i, sr := range group {
		if geomIdx == -1 || len(sr.Payload) > len(group[geomIdx].Payload) {
			geomIdx = i
		}
	}
	for i := range group {
		if i != geomIdx {
			nameIdx = i
			break
		}
	}
	return geomIdx, nameIdx
}
