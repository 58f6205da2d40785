package sorter

import (
	"math/rand"
	"sort"

	"github.com/dkuijer/chiproute/grid"
)

// Name identifies one of the registered sorters by the name spec.md gives
// it, so callers (notably package router's Config) can select one by string
// rather than by importing a function value.
type Name string

const (
	ByLengthName                Name = "sort_length"
	RandomName                  Name = "random_sort"
	ByMiddleFirstName           Name = "sort_middle_first"
	ByGateOccupancyName         Name = "sort_gate"
	ByExpectedIntersectionsName Name = "sort_exp_intersections"
)

// Options carries every parameter any sorter might need. Individual sorters
// ignore the fields they don't use (Random ignores Descending; every sorter
// but ByMiddleFirst ignores Size), matching the original's functions which
// also each accept a uniform (nets, descending) signature and ignore it
// where irrelevant.
type Options struct {
	// Descending reverses the sorter's natural ascending order. Ignored by
	// Random.
	Descending bool

	// RNG is consumed only by Random; required when that sorter is selected.
	RNG *rand.Rand

	// Size is consumed only by ByMiddleFirst, to locate the grid's 2D
	// center.
	Size grid.Size
}

// Func is the common signature every sorter in this package implements.
type Func func(nets map[grid.NetKey]*grid.Net, opts Options) []*grid.Net

// Registry maps each Name to its Func, for callers that select a sorter by
// configuration string (package router's Config.Sorter).
var Registry = map[Name]Func{
	ByLengthName:                ByLength,
	RandomName:                  Random,
	ByMiddleFirstName:           ByMiddleFirst,
	ByGateOccupancyName:         ByGateOccupancy,
	ByExpectedIntersectionsName: ByExpectedIntersections,
}

// Lookup returns the Func registered under name, or ErrUnknownSorter.
func Lookup(name Name) (Func, error) {
	fn, ok := Registry[name]
	if !ok {
		return nil, ErrUnknownSorter
	}
	return fn, nil
}

// canonicalOrder returns nets as a slice ordered by NetKey (StartUID then
// EndUID), the deterministic base every sorter sorts from. Go map iteration
// order is randomized, so without this step two runs given the same (nets,
// opts) could resolve stable-sort ties differently.
func canonicalOrder(nets map[grid.NetKey]*grid.Net) []*grid.Net {
	out := make([]*grid.Net, 0, len(nets))
	for _, n := range nets {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return keyLess(out[i].Key, out[j].Key) })
	return out
}

func keyLess(a, b grid.NetKey) bool {
	if a.StartUID != b.StartUID {
		return a.StartUID < b.StartUID
	}
	return a.EndUID < b.EndUID
}
