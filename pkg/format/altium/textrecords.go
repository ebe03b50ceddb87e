package altium

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// kvRecord is one parsed `KEY=VALUE|KEY=VALUE|...` text-property record
// (Board6, Components6, Nets6, Polygons6 per spec §4.5). Keys are
// upper-cased on parse; lookups use the key as given, so callers pass
// upper-case keys.
type kvRecord map[string]string

// parseKVStream splits a text-property stream into its records. Each
// record is framed as a little-endian uint32 length L followed by L bytes
// of null-terminated Latin-1 text.
func parseKVStream(data []byte) ([]kvRecord, error) {
	var out []kvRecord
	off := 0
	for off < len(data) {
		if off+4 > len(data) {
			return nil, fmt.Errorf("altium: truncated text record length at offset %d", off)
		}
		length := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		if off+int(length) > len(data) {
			return nil, fmt.Errorf("altium: truncated text record body at offset %d", off)
		}
		body := data[off : off+int(length)]
		off += int(length)
		if len(body) == 0 {
			continue
		}
		out = append(out, parseKVBody(body))
	}
	return out, nil
}

func parseKVBody(body []byte) kvRecord {
	s := latin1ToUTF8(body)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	rec := kvRecord{}
	for _, field := range strings.Split(s, "|") {
		if field == "" {
			continue
		}
		eq := strings.IndexByte(field, '=')
		if eq < 0 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(field[:eq]))
		rec[key] = field[eq+1:]
	}
	return rec
}

func latin1ToUTF8(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

func (r kvRecord) String(key string) string {
	return r[key]
}

func (r kvRecord) Bool(key string) bool {
	v := r[key]
	return v == "T" || v == "t" || v == "1"
}

func (r kvRecord) Int(key string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(r[key]))
	return v
}

func (r kvRecord) Float(key string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(r[key]), 64)
	return v
}

// HasKey reports whether the record defines key at all (distinguishing an
// explicit "0" from "not present").
func (r kvRecord) HasKey(key string) bool {
	_, ok := r[key]
	return ok
}
