package geomutil

import (
	"github.com/dhconnelly/rtreego"
)

// Indexed wraps a bounding box with an opaque label so OverlapIndex can
// report which two entries collided.
type Indexed struct {
	Label string
	Box   BoundingBox
}

// Bounds implements rtreego.Spatial, grounded on beetlebugorg-s57's
// ChartEntry.Bounds (pkg/s57/index.go): a point at the box's minimum
// corner plus its width/height as the rectangle's side lengths.
func (e Indexed) Bounds() rtreego.Rect {
	point := rtreego.Point{e.Box.Min.X, e.Box.Min.Y}
	lengths := []float64{
		maxf(e.Box.Width(), 1e-9),
		maxf(e.Box.Height(), 1e-9),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// OverlapIndex is a spatial index over a board's footprint bounding boxes,
// used by the optional overlap diagnostic (SPEC_FULL "Supplemented
// features" — not mandated by spec.md, but a cheap consumer of data the
// extractor already computes). It is not used by the core extraction path.
type OverlapIndex struct {
	tree *rtreego.Rtree
}

// NewOverlapIndex builds an R-tree over the given entries.
func NewOverlapIndex(entries []Indexed) *OverlapIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for _, e := range entries {
		tree.Insert(e)
	}
	return &OverlapIndex{tree: tree}
}

// Overlap is a pair of entries whose bounding boxes intersect.
type Overlap struct {
	A, B string
}

// FindOverlaps reports every pair of distinct entries whose bounding boxes
// intersect, each pair reported once.
func FindOverlaps(entries []Indexed) []Overlap {
	idx := NewOverlapIndex(entries)
	seen := make(map[[2]string]bool)
	var overlaps []Overlap
	for _, e := range entries {
		hits := idx.tree.SearchIntersect(e.Bounds())
		for _, h := range hits {
			other, ok := h.(Indexed)
			if !ok || other.Label == e.Label {
				continue
			}
			key := [2]string{e.Label, other.Label}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			overlaps = append(overlaps, Overlap{A: key[0], B: key[1]})
		}
	}
	return overlaps
}
