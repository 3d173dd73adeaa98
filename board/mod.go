package board

// Point indexes an intersection in row-major order: y*size + x.
type Point int

// Group identifies a chain of stones by its representative point.
type Group Point

const NoGroup Group = -1

// Board is the read-only view of a position consumed by ownership statistics.
// Move legality and captures are the caller's concern.
type Board interface {
	Size() int
	NumPoints() int
	At(p Point) Stone
	// GroupAt returns NoGroup for empty points. A point p is the canonical
	// representative of its group iff GroupAt(p) == Group(p).
	GroupAt(p Point) Group
	// OnePointEye returns the colour enclosing an empty single-point region,
	// or None.
	OnePointEye(p Point) Stone
	Komi() float64
	HandicapCompensation() int
}
