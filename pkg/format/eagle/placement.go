package eagle

import (
	"strconv"
	"strings"
)

// parseRot parses Eagle's rotation attribute string, e.g. "R90" or the
// mirrored form "MR90" (spec §4.4: `rot` string `"R90"`, `"MR90"` for
// mirrored).
func parseRot(rot string) (angle float64, mirrored bool) {
	s := rot
	if strings.HasPrefix(s, "M") {
		mirrored = true
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "R")
	if s == "" {
		return 0, mirrored
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, mirrored
	}
	return v, mirrored
}
