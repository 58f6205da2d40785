package grid

import "fmt"

// Coordinate is a point in the grid's 3D integer space. Layer 0 hosts the
// gates; layers above it are available for detours.
type Coordinate struct {
	X, Y, Z int
}

// String renders the coordinate as "x,y,z".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// manhattan2D returns the Manhattan distance between the (x,y) projections
// of two coordinates, ignoring Z. Nets only ever start and end at Z=0, so
// this is the distance spec.md calls minimal_length.
func manhattan2D(a, b Coordinate) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sqMagnitude returns the squared Euclidean magnitude of a coordinate's
// position vector. Segment canonicalization orders endpoints by this value
// (smaller first); squared magnitude preserves the same ordering as the
// magnitude itself and avoids a sqrt per segment.
func sqMagnitude(c Coordinate) int {
	return c.X*c.X + c.Y*c.Y + c.Z*c.Z
}

// Segment is a canonical, unordered unit-length connection between two
// adjacent coordinates. Use MakeSegment to construct one; constructing a
// Segment literal directly bypasses canonicalization and is a bug.
type Segment struct {
	A, B Coordinate
}

// MakeSegment returns the canonical form of the segment between two
// unit-adjacent coordinates: the endpoint with the smaller squared
// Euclidean magnitude is stored first, so MakeSegment(a, b) and
// MakeSegment(b, a) always compare equal. Returns ErrNotAdjacent if a and b
// do not differ by exactly 1 along exactly one axis.
func MakeSegment(a, b Coordinate) (Segment, error) {
	dx := absInt(a.X - b.X)
	dy := absInt(a.Y - b.Y)
	dz := absInt(a.Z - b.Z)
	if dx+dy+dz != 1 {
		return Segment{}, ErrNotAdjacent
	}
	if sqMagnitude(a) <= sqMagnitude(b) {
		return Segment{A: a, B: b}, nil
	}
	return Segment{A: b, B: a}, nil
}

// Gate is a fixed terminal at layer z=0 that a net must start or end on.
// Gates are immutable once loaded into a Grid.
type Gate struct {
	UID uint64
	X, Y int
}

// Coordinate returns the gate's position at layer 0.
func (g Gate) Coordinate() Coordinate {
	return Coordinate{X: g.X, Y: g.Y, Z: 0}
}

// NetKey identifies a net by its two gate uids, in the order the netlist
// listed them. Per spec.md's design notes, (a,b) and (b,a) are treated as
// distinct keys unless the loader canonicalizes them before calling
// NewGrid; this package does not canonicalize on the caller's behalf.
type NetKey struct {
	StartUID, EndUID uint64
}

// String renders the key as "start-end", matching the output contract's
// net identifier shape.
func (k NetKey) String() string {
	return fmt.Sprintf("%d-%d", k.StartUID, k.EndUID)
}

// Path is an ordered sequence of coordinates from a net's start gate to its
// end gate, inclusive. An empty Path means the net is unrouted.
type Path []Coordinate

// Segments returns the canonical segments formed by consecutive coordinates
// in the path. Returns ErrNotAdjacent if any consecutive pair is not
// unit-adjacent.
func (p Path) Segments() ([]Segment, error) {
	if len(p) < 2 {
		return nil, nil
	}
	segs := make([]Segment, 0, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		seg, err := MakeSegment(p[i], p[i+1])
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Net is an unordered pair of gates that must be electrically connected.
type Net struct {
	Key NetKey

	Start, End Coordinate

	// MinimalLength is the Manhattan distance between Start and End.
	MinimalLength int

	// Path is the net's current routed path, or nil if unrouted.
	Path Path

	// ExpIntersections is the heuristic crossing count computed by
	// sorter.ByExpectedIntersections; zero until that sorter runs.
	ExpIntersections int
}

// CurrentLength returns the number of segments in the net's current path,
// or -1 if the net is unrouted.
func (n *Net) CurrentLength() int {
	if len(n.Path) == 0 {
		return -1
	}
	return len(n.Path) - 1
}

// Routed reports whether the net currently has a path.
func (n *Net) Routed() bool {
	return len(n.Path) > 0
}

// Size describes a grid's extents. X and Y must be positive; Z must be at
// least 2, reserving layer 0 for gates and layers 1-2 for gate-avoidance
// detours above it.
type Size struct {
	X, Y, Z int
}

// NetSpec is the minimal description of a net a loader supplies to
// NewGrid: the uids of the two gates it must connect.
type NetSpec struct {
	StartUID, EndUID uint64
}
