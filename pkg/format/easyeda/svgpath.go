package easyeda

import (
	"strconv"
	"strings"
)

// splitSvgTokens splits a minimal SVG path string ("M x y L x y Z") into
// command letters and numbers, tolerating both space- and
// comma-delimited coordinate pairs.
func splitSvgTokens(path string) []string {
	replacer := strings.NewReplacer(",", " ", "M", " M ", "L", " L ", "Z", " Z ", "A", " A ", "z", " Z ")
	return strings.Fields(replacer.Replace(path))
}

func isSvgCommand(tok string) bool {
	switch tok {
	case "M", "L", "Z", "A":
		return true
	default:
		return false
	}
}

func parseSvgNumber(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
