package grid

import "fmt"

// Grid is the shared routing surface: a bounded 3D box that owns the gate
// set, the per-net path map, the segment-occupancy map, and the derived
// cost. Grid is the sole shared mutable resource in a routing run (spec.md
// §5); exactly one router or optimizer mutates it at a time.
//
// The zero value is not usable; construct with NewGrid.
type Grid struct {
	size Size

	gates      map[uint64]Gate
	gateAt     map[Coordinate]uint64 // gate coordinate -> uid, for O(1) gate lookups
	nets       map[NetKey]*Net

	wireSegments map[Segment]NetKey
	coordinates  map[Coordinate]int // refcount: number of occupied segments touching this coordinate

	intersections int
}

// NewGrid constructs a Grid from a loaded gate list and net spec list. It
// performs no I/O; callers (loaders, out of scope for this module) are
// responsible for producing gates and nets from whatever source they read.
//
// Returns ErrEmptySize if size is degenerate, ErrGateOutOfBounds if a gate
// falls outside the grid, ErrDuplicateGate/ErrDuplicateNet on repeated
// identifiers, and ErrUnknownGate if a net references an unloaded uid.
func NewGrid(size Size, gates []Gate, nets []NetSpec) (*Grid, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z < 2 {
		return nil, ErrEmptySize
	}

	g := &Grid{
		size:         size,
		gates:        make(map[uint64]Gate, len(gates)),
		gateAt:       make(map[Coordinate]uint64, len(gates)),
		nets:         make(map[NetKey]*Net, len(nets)),
		wireSegments: make(map[Segment]NetKey),
		coordinates:  make(map[Coordinate]int),
	}

	for _, gate := range gates {
		if _, exists := g.gates[gate.UID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateGate, gate.UID)
		}
		c := gate.Coordinate()
		if !g.inBounds2D(c) {
			return nil, fmt.Errorf("%w: gate %d at %s", ErrGateOutOfBounds, gate.UID, c)
		}
		g.gates[gate.UID] = gate
		g.gateAt[c] = gate.UID
	}

	for _, spec := range nets {
		key := NetKey{StartUID: spec.StartUID, EndUID: spec.EndUID}
		if _, exists := g.nets[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNet, key)
		}
		start, ok := g.gates[spec.StartUID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownGate, spec.StartUID)
		}
		end, ok := g.gates[spec.EndUID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownGate, spec.EndUID)
		}
		startC, endC := start.Coordinate(), end.Coordinate()
		g.nets[key] = &Net{
			Key:           key,
			Start:         startC,
			End:           endC,
			MinimalLength: manhattan2D(startC, endC),
		}
	}

	return g, nil
}

// Size returns the grid's extents.
func (g *Grid) Size() Size { return g.size }

// InBounds reports whether c lies within the grid's extents:
// 0 <= x <= X, 0 <= y <= Y, 0 <= z <= Z.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X <= g.size.X &&
		c.Y >= 0 && c.Y <= g.size.Y &&
		c.Z >= 0 && c.Z <= g.size.Z
}

func (g *Grid) inBounds2D(c Coordinate) bool {
	return c.X >= 0 && c.X <= g.size.X && c.Y >= 0 && c.Y <= g.size.Y
}

// IsGate reports whether c is the coordinate of any loaded gate.
func (g *Grid) IsGate(c Coordinate) bool {
	_, ok := g.gateAt[c]
	return ok
}

// GateAt returns the uid of the gate at c, if any.
func (g *Grid) GateAt(c Coordinate) (uint64, bool) {
	uid, ok := g.gateAt[c]
	return uid, ok
}

// Gate returns the gate with the given uid.
func (g *Grid) Gate(uid uint64) (Gate, bool) {
	gate, ok := g.gates[uid]
	return gate, ok
}

// Net returns the net with the given key.
func (g *Grid) Net(key NetKey) (*Net, bool) {
	n, ok := g.nets[key]
	return n, ok
}

// Nets returns a shallow copy of the key->net map: the map itself may be
// freely ranged over or indexed without affecting the grid's own net set,
// but the returned *Net pointers alias the grid's nets, so mutating
// net.Path through them is how routers and optimizers write results back.
func (g *Grid) Nets() map[NetKey]*Net {
	out := make(map[NetKey]*Net, len(g.nets))
	for k, v := range g.nets {
		out[k] = v
	}
	return out
}

// NetCount returns the number of nets in the grid.
func (g *Grid) NetCount() int { return len(g.nets) }

// IsOccupied reports whether any segment currently touches coordinate c.
func (g *Grid) IsOccupied(c Coordinate) bool {
	return g.coordinates[c] > 0
}

// SegmentOwner returns the net key occupying seg, if any.
func (g *Grid) SegmentOwner(seg Segment) (NetKey, bool) {
	key, ok := g.wireSegments[seg]
	return key, ok
}

// SegmentCount returns the number of occupied segments, i.e. |wire_segments|.
func (g *Grid) SegmentCount() int { return len(g.wireSegments) }

// Intersections returns the current intersection count.
func (g *Grid) Intersections() int { return g.intersections }
