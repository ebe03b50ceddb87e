// Package extract implements the format-independent driver (spec §4.7):
// probe the input, dispatch to the matching parser, optionally synthesize
// a BOM, and emit the canonical PcbData JSON.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/meawoppl/pastebom.com/pkg/format/altium"
)

// Format names one of the four supported source tools.
type Format string

const (
	FormatKiCad   Format = "kicad"
	FormatEasyEDA Format = "easyeda"
	FormatEagle   Format = "eagle"
	FormatAltium  Format = "altium"
)

// detectFormat implements spec §4.1's dispatch rules: extension first,
// falling back to content sniffing (the CFB magic always wins regardless
// of name, since Altium files are sometimes renamed).
func detectFormat(filename string, data []byte) (Format, error) {
	if altium.LooksLikeAltium(data) {
		return FormatAltium, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".kicad_pcb":
		return FormatKiCad, nil
	case ".json":
		if looksLikeEasyEDA(data) {
			return FormatEasyEDA, nil
		}
	case ".brd", ".fbrd":
		return FormatEagle, nil
	case ".pcbdoc", ".cspcbdoc", ".cmpcbdoc":
		return FormatAltium, nil
	}

	// No usable extension (e.g. extract_bytes with no filename): sniff
	// the content itself.
	switch {
	case bytes.Contains(data[:min(len(data), 4096)], []byte("kicad_pcb")):
		return FormatKiCad, nil
	case looksLikeEasyEDA(data):
		return FormatEasyEDA, nil
	case bytes.HasPrefix(bytes.TrimSpace(data), []byte("<?xml")) || bytes.Contains(data[:min(len(data), 4096)], []byte("<eagle")):
		return FormatEagle, nil
	}

	return "", &Error{Code: CodeUnsupportedFormat, Message: "no parser recognizes this file"}
}

// looksLikeEasyEDA sniffs for the "canvas"/"shape" fields an EasyEDA PCB
// export JSON document always carries at its top level (spec §4.1).
func looksLikeEasyEDA(data []byte) bool {
	head := data
	if len(head) > 4096 {
		head = head[:4096]
	}
	return bytes.Contains(head, []byte(`"shape"`)) || bytes.Contains(head, []byte(`"canvas"`))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ParseFormat maps a user-supplied `-f` flag value to a Format, for the
// CLI's explicit format override.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(s)) {
	case FormatKiCad, FormatEasyEDA, FormatEagle, FormatAltium:
		return Format(strings.ToLower(s)), true
	default:
		return "", false
	}
}
