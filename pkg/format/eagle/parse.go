package eagle

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meawoppl/pastebom.com/pkg/geomutil"
)

// ParseFile reads and parses an Eagle/Fusion360 .brd file from disk.
func ParseFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open eagle file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an Eagle .brd XML document from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed eagle xml: %w", err)
	}
	if doc.Drawing.Board.Elements == nil && doc.Drawing.Board.Plain.Wires == nil && len(doc.Drawing.Board.Signals) == 0 {
		return nil, fmt.Errorf("eagle document has no board content")
	}
	return &doc, nil
}

// unitScale returns the factor to multiply raw coordinates by to reach
// millimetres, from the drawing's <grid unit="..."> attribute (spec §4.4).
func unitScale(unit string) float64 {
	switch strings.ToLower(unit) {
	case "mil", "mils":
		return geomutil.MilsToMM
	case "inch", "inches":
		return 25.4
	default:
		// "mm" and micron-grid documents (the common case) are already
		// millimetres.
		return 1.0
	}
}

// packageIndex resolves (library, package) pairs to their Package
// definition, mirroring the lookup every element's Library+Package
// attribute pair performs.
type packageIndex map[[2]string]*Package

func buildPackageIndex(libs []Library) packageIndex {
	idx := packageIndex{}
	for li := range libs {
		lib := &libs[li]
		for pi := range lib.Packages {
			pkg := &lib.Packages[pi]
			idx[[2]string{lib.Name, pkg.Name}] = pkg
		}
	}
	return idx
}

func (idx packageIndex) lookup(library, pkg string) (*Package, bool) {
	p, ok := idx[[2]string{library, pkg}]
	return p, ok
}
