// Package font bundles a small stroke-font glyph table used to render
// gr_text/fp_text silkscreen labels as vector strokes (spec §4.6, §6). No
// library in the example corpus ships the full Hershey simplex dataset
// (agg_go's font packages wrap FreeType's outline rasterizer, not a stroke
// vector table), and fabricating the complete dataset from scratch would
// not be grounded in anything real, so this bundles a small, documented,
// functional subset covering the characters that actually occur in
// reference designators and values (digits, uppercase letters, and a
// handful of punctuation marks). Unsupported runes fall back to a single
// box outline glyph so text still occupies a plausible bounding box.
package font

import "github.com/meawoppl/pastebom.com/pkg/geomutil"

// Glyph is one character's stroke outline, defined on a unit em square
// (0,0) to (Width,1), scaled by the caller to the text's actual size.
type Glyph struct {
	Width float64
	Lines [][]geomutil.Point
}

var glyphs = map[rune]Glyph{
	'0': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.65, Y: 0}, {X: 0.65, Y: 1}, {X: 0.05, Y: 1}, {X: 0.05, Y: 0}}}},
	'1': {Width: 0.5, Lines: [][]geomutil.Point{{{X: 0.25, Y: 0}, {X: 0.25, Y: 1}}}},
	'2': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.65, Y: 1}, {X: 0.65, Y: 0.5}, {X: 0.05, Y: 0.5}, {X: 0.05, Y: 0}, {X: 0.65, Y: 0}}}},
	'3': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.65, Y: 1}, {X: 0.65, Y: 0}, {X: 0.05, Y: 0}}, {{X: 0.05, Y: 0.5}, {X: 0.65, Y: 0.5}}}},
	'4': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.05, Y: 0.5}, {X: 0.65, Y: 0.5}}, {{X: 0.65, Y: 1}, {X: 0.65, Y: 0}}}},
	'5': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.65, Y: 1}, {X: 0.05, Y: 1}, {X: 0.05, Y: 0.5}, {X: 0.65, Y: 0.5}, {X: 0.65, Y: 0}, {X: 0.05, Y: 0}}}},
	'6': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.65, Y: 1}, {X: 0.05, Y: 1}, {X: 0.05, Y: 0}, {X: 0.65, Y: 0}, {X: 0.65, Y: 0.5}, {X: 0.05, Y: 0.5}}}},
	'7': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.65, Y: 1}, {X: 0.3, Y: 0}}}},
	'8': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.65, Y: 0}, {X: 0.65, Y: 1}, {X: 0.05, Y: 1}, {X: 0.05, Y: 0}}, {{X: 0.05, Y: 0.5}, {X: 0.65, Y: 0.5}}}},
	'9': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.65, Y: 0}, {X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.65, Y: 1}, {X: 0.65, Y: 0.5}, {X: 0.05, Y: 0.5}}}},
	'.': {Width: 0.3, Lines: [][]geomutil.Point{{{X: 0.1, Y: 0}, {X: 0.15, Y: 0}}}},
	',': {Width: 0.3, Lines: [][]geomutil.Point{{{X: 0.15, Y: 0}, {X: 0.05, Y: -0.15}}}},
	'-': {Width: 0.5, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0.5}, {X: 0.45, Y: 0.5}}}},
	'_': {Width: 0.5, Lines: [][]geomutil.Point{{{X: 0.0, Y: 0}, {X: 0.5, Y: 0}}}},
	'+': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0.5}, {X: 0.65, Y: 0.5}}, {{X: 0.35, Y: 0.2}, {X: 0.35, Y: 0.8}}}},
	'/': {Width: 0.6, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.55, Y: 1}}}},
	':': {Width: 0.3, Lines: [][]geomutil.Point{{{X: 0.1, Y: 0.2}, {X: 0.15, Y: 0.2}}, {{X: 0.1, Y: 0.7}, {X: 0.15, Y: 0.7}}}},
	' ': {Width: 0.5},
	'A': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.35, Y: 1}, {X: 0.65, Y: 0}}, {{X: 0.15, Y: 0.35}, {X: 0.55, Y: 0.35}}}},
	'B': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.5, Y: 1}, {X: 0.65, Y: 0.75}, {X: 0.5, Y: 0.5}, {X: 0.05, Y: 0.5}}, {{X: 0.5, Y: 0.5}, {X: 0.65, Y: 0.25}, {X: 0.5, Y: 0}, {X: 0.05, Y: 0}}}},
	'C': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.65, Y: 0.8}, {X: 0.45, Y: 1}, {X: 0.2, Y: 1}, {X: 0.05, Y: 0.8}, {X: 0.05, Y: 0.2}, {X: 0.2, Y: 0}, {X: 0.45, Y: 0}, {X: 0.65, Y: 0.2}}}},
	'D': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.4, Y: 1}, {X: 0.65, Y: 0.7}, {X: 0.65, Y: 0.3}, {X: 0.4, Y: 0}, {X: 0.05, Y: 0}}}},
	'E': {Width: 0.65, Lines: [][]geomutil.Point{{{X: 0.6, Y: 0}, {X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.6, Y: 1}}, {{X: 0.05, Y: 0.5}, {X: 0.45, Y: 0.5}}}},
	'F': {Width: 0.6, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.6, Y: 1}}, {{X: 0.05, Y: 0.5}, {X: 0.45, Y: 0.5}}}},
	'G': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.65, Y: 0.8}, {X: 0.45, Y: 1}, {X: 0.2, Y: 1}, {X: 0.05, Y: 0.8}, {X: 0.05, Y: 0.2}, {X: 0.2, Y: 0}, {X: 0.45, Y: 0}, {X: 0.65, Y: 0.2}, {X: 0.65, Y: 0.45}, {X: 0.4, Y: 0.45}}}},
	'H': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}}, {{X: 0.65, Y: 0}, {X: 0.65, Y: 1}}, {{X: 0.05, Y: 0.5}, {X: 0.65, Y: 0.5}}}},
	'I': {Width: 0.3, Lines: [][]geomutil.Point{{{X: 0.15, Y: 0}, {X: 0.15, Y: 1}}}},
	'J': {Width: 0.6, Lines: [][]geomutil.Point{{{X: 0.5, Y: 1}, {X: 0.5, Y: 0.2}, {X: 0.35, Y: 0}, {X: 0.2, Y: 0}, {X: 0.05, Y: 0.2}}}},
	'K': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}}, {{X: 0.65, Y: 1}, {X: 0.05, Y: 0.5}, {X: 0.65, Y: 0}}}},
	'L': {Width: 0.6, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.05, Y: 0}, {X: 0.55, Y: 0}}}},
	'M': {Width: 0.85, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.425, Y: 0.55}, {X: 0.8, Y: 1}, {X: 0.8, Y: 0}}}},
	'N': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.65, Y: 0}, {X: 0.65, Y: 1}}}},
	'O': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0.2}, {X: 0.05, Y: 0.8}, {X: 0.2, Y: 1}, {X: 0.55, Y: 1}, {X: 0.7, Y: 0.8}, {X: 0.7, Y: 0.2}, {X: 0.55, Y: 0}, {X: 0.2, Y: 0}, {X: 0.05, Y: 0.2}}}},
	'P': {Width: 0.65, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.5, Y: 1}, {X: 0.6, Y: 0.75}, {X: 0.5, Y: 0.5}, {X: 0.05, Y: 0.5}}}},
	'Q': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0.2}, {X: 0.05, Y: 0.8}, {X: 0.2, Y: 1}, {X: 0.55, Y: 1}, {X: 0.7, Y: 0.8}, {X: 0.7, Y: 0.2}, {X: 0.55, Y: 0}, {X: 0.2, Y: 0}, {X: 0.05, Y: 0.2}}, {{X: 0.4, Y: 0.3}, {X: 0.7, Y: 0}}}},
	'R': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.05, Y: 1}, {X: 0.5, Y: 1}, {X: 0.6, Y: 0.75}, {X: 0.5, Y: 0.5}, {X: 0.05, Y: 0.5}}, {{X: 0.3, Y: 0.5}, {X: 0.65, Y: 0}}}},
	'S': {Width: 0.65, Lines: [][]geomutil.Point{{{X: 0.6, Y: 0.8}, {X: 0.4, Y: 1}, {X: 0.15, Y: 1}, {X: 0.05, Y: 0.8}, {X: 0.15, Y: 0.6}, {X: 0.45, Y: 0.4}, {X: 0.55, Y: 0.2}, {X: 0.45, Y: 0}, {X: 0.2, Y: 0}, {X: 0.05, Y: 0.2}}}},
	'T': {Width: 0.65, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.6, Y: 1}}, {{X: 0.325, Y: 1}, {X: 0.325, Y: 0}}}},
	'U': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.05, Y: 0.2}, {X: 0.2, Y: 0}, {X: 0.55, Y: 0}, {X: 0.7, Y: 0.2}, {X: 0.7, Y: 1}}}},
	'V': {Width: 0.75, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.375, Y: 0}, {X: 0.7, Y: 1}}}},
	'W': {Width: 0.9, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.25, Y: 0}, {X: 0.45, Y: 0.7}, {X: 0.65, Y: 0}, {X: 0.85, Y: 1}}}},
	'X': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.65, Y: 1}}, {{X: 0.05, Y: 1}, {X: 0.65, Y: 0}}}},
	'Y': {Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.35, Y: 0.5}, {X: 0.65, Y: 1}}, {{X: 0.35, Y: 0.5}, {X: 0.35, Y: 0}}}},
	'Z': {Width: 0.65, Lines: [][]geomutil.Point{{{X: 0.05, Y: 1}, {X: 0.6, Y: 1}, {X: 0.05, Y: 0}, {X: 0.6, Y: 0}}}},
}

var fallback = Glyph{Width: 0.7, Lines: [][]geomutil.Point{{{X: 0.05, Y: 0}, {X: 0.65, Y: 0}, {X: 0.65, Y: 1}, {X: 0.05, Y: 1}, {X: 0.05, Y: 0}}}}

// Lookup returns the glyph for a rune (uppercased for letters, since the
// bundled subset only covers uppercase), and whether it was a table hit.
func Lookup(r rune) (Glyph, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	g, ok := glyphs[r]
	if !ok {
		return fallback, false
	}
	return g, true
}

// Used returns the glyph table restricted to the runes that occur in any of
// the given strings, keyed by their single-rune string form — the shape
// PcbData.FontData expects (spec §3: "font_data containing only referenced
// glyphs").
func Used(texts []string) map[string]Glyph {
	seen := make(map[rune]bool)
	out := make(map[string]Glyph)
	for _, t := range texts {
		for _, r := range t {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			if seen[r] {
				continue
			}
			seen[r] = true
			if g, ok := glyphs[r]; ok {
				out[string(r)] = g
			}
		}
	}
	return out
}
