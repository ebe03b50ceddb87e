package geomutil

// BoundingBox is an axis-aligned bounding box in board coordinates.
// Grounded on OpenTraceJTAG's pkg/kicad/sexp.BoundingBox, generalized to
// the coordinate-agnostic Point type shared by every format parser.
type BoundingBox struct {
	Min Point
	Max Point
}

// Empty returns a bounding box that Expand will replace on first use.
func Empty() BoundingBox {
	const huge = 1e9
	return BoundingBox{
		Min: Point{X: huge, Y: huge},
		Max: Point{X: -huge, Y: -huge},
	}
}

// IsEmpty reports whether the box has never been expanded.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Expand grows the box to include p.
func (b *BoundingBox) Expand(p Point) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

// ExpandBox grows the box to include other.
func (b *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		b.Expand(other.Min)
		b.Expand(other.Max)
	}
}

// Width returns the box width.
func (b BoundingBox) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the box height.
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the box center point.
func (b BoundingBox) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Intersects reports whether two boxes overlap.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// FromPoints computes the tight AABB of a set of points.
func FromPoints(pts []Point) BoundingBox {
	b := Empty()
	for _, p := range pts {
		b.Expand(p)
	}
	return b
}

// Transform is a rigid 2D transform (rotation about the origin, then
// translation), matching the footprint placement rule used by every
// format: absolute = translation + rotate(local, angle).
type Transform struct {
	Translate Point
	AngleDeg  float64
	// Mirror flips the local X axis before rotation, used for components
	// placed on the back side in sources where the library footprint is
	// defined unflipped (EasyEDA layer 2, KiCad back-side pads stored in
	// front-side-local coordinates in older generators).
	Mirror bool
}

// Apply transforms a local-space point into board space.
func (t Transform) Apply(local Point) Point {
	if t.Mirror {
		local.X = -local.X
	}
	return t.Translate.Add(local.Rotate(t.AngleDeg))
}

// ApplyInverse maps a board-space point back into the transform's local
// space: subtract translation, rotate by -angle. Used by Altium component
// assembly (spec §4.5) to compute oriented bounding boxes.
func (t Transform) ApplyInverse(abs Point) Point {
	local := abs.Sub(t.Translate).Rotate(-t.AngleDeg)
	if t.Mirror {
		local.X = -local.X
	}
	return local
}
