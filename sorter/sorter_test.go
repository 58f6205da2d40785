package sorter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/sorter"
)

func netAt(key grid.NetKey, start, end grid.Coordinate) *grid.Net {
	return &grid.Net{
		Key:           key,
		Start:         start,
		End:           end,
		MinimalLength: absInt(start.X-end.X) + absInt(start.Y-end.Y),
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func keysOf(nets []*grid.Net) []grid.NetKey {
	out := make([]grid.NetKey, len(nets))
	for i, n := range nets {
		out[i] = n.Key
	}
	return out
}

// TestByLength_AscendingDescendingReversed is testable property #6:
// sort_length ascending then descending on the same input yields reversed
// orderings modulo ties.
func TestByLength_AscendingDescendingReversed(t *testing.T) {
	nets := map[grid.NetKey]*grid.Net{
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2}, grid.Coordinate{}, grid.Coordinate{X: 5}),
		{StartUID: 3, EndUID: 4}: netAt(grid.NetKey{StartUID: 3, EndUID: 4}, grid.Coordinate{}, grid.Coordinate{X: 1}),
		{StartUID: 5, EndUID: 6}: netAt(grid.NetKey{StartUID: 5, EndUID: 6}, grid.Coordinate{}, grid.Coordinate{X: 3}),
	}

	asc := sorter.ByLength(nets, sorter.Options{})
	desc := sorter.ByLength(nets, sorter.Options{Descending: true})

	require.Equal(t, []int{1, 3, 5}, lengths(asc))
	require.Equal(t, []int{5, 3, 1}, lengths(desc))
}

func lengths(nets []*grid.Net) []int {
	out := make([]int, len(nets))
	for i, n := range nets {
		out[i] = n.MinimalLength
	}
	return out
}

func TestByLength_StableOnTies(t *testing.T) {
	nets := map[grid.NetKey]*grid.Net{
		{StartUID: 1, EndUID: 1}: netAt(grid.NetKey{StartUID: 1, EndUID: 1}, grid.Coordinate{}, grid.Coordinate{X: 2}),
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2}, grid.Coordinate{}, grid.Coordinate{X: 2}),
		{StartUID: 1, EndUID: 3}: netAt(grid.NetKey{StartUID: 1, EndUID: 3}, grid.Coordinate{}, grid.Coordinate{X: 2}),
	}

	out := sorter.ByLength(nets, sorter.Options{})
	// All tied at length 2; canonicalOrder breaks the tie by NetKey, so the
	// result must come back in ascending EndUID order.
	require.Equal(t, []grid.NetKey{
		{StartUID: 1, EndUID: 1},
		{StartUID: 1, EndUID: 2},
		{StartUID: 1, EndUID: 3},
	}, keysOf(out))
}

func TestRandom_DeterministicGivenSeed(t *testing.T) {
	nets := map[grid.NetKey]*grid.Net{
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2}, grid.Coordinate{}, grid.Coordinate{X: 1}),
		{StartUID: 3, EndUID: 4}: netAt(grid.NetKey{StartUID: 3, EndUID: 4}, grid.Coordinate{}, grid.Coordinate{X: 2}),
		{StartUID: 5, EndUID: 6}: netAt(grid.NetKey{StartUID: 5, EndUID: 6}, grid.Coordinate{}, grid.Coordinate{X: 3}),
		{StartUID: 7, EndUID: 8}: netAt(grid.NetKey{StartUID: 7, EndUID: 8}, grid.Coordinate{}, grid.Coordinate{X: 4}),
	}

	first := sorter.Random(nets, sorter.Options{RNG: rand.New(rand.NewSource(42))})
	second := sorter.Random(nets, sorter.Options{RNG: rand.New(rand.NewSource(42))})

	require.Equal(t, keysOf(first), keysOf(second))
	require.ElementsMatch(t, keysOf(first), []grid.NetKey{
		{StartUID: 1, EndUID: 2}, {StartUID: 3, EndUID: 4},
		{StartUID: 5, EndUID: 6}, {StartUID: 7, EndUID: 8},
	})
}

func TestByMiddleFirst_AscendingIsClosestToCenter(t *testing.T) {
	nets := map[grid.NetKey]*grid.Net{
		// center-ish net: both endpoints near (5,5)
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2},
			grid.Coordinate{X: 4, Y: 5}, grid.Coordinate{X: 6, Y: 5}),
		// far corner net
		{StartUID: 3, EndUID: 4}: netAt(grid.NetKey{StartUID: 3, EndUID: 4},
			grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 0}),
	}

	out := sorter.ByMiddleFirst(nets, sorter.Options{Size: grid.Size{X: 10, Y: 10, Z: 2}})
	require.Equal(t, grid.NetKey{StartUID: 1, EndUID: 2}, out[0].Key)
}

func TestByGateOccupancy_BusiestFirstWhenDescending(t *testing.T) {
	shared := grid.Coordinate{X: 0, Y: 0}
	nets := map[grid.NetKey]*grid.Net{
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2}, shared, grid.Coordinate{X: 1}),
		{StartUID: 1, EndUID: 3}: netAt(grid.NetKey{StartUID: 1, EndUID: 3}, shared, grid.Coordinate{X: 2}),
		{StartUID: 4, EndUID: 5}: netAt(grid.NetKey{StartUID: 4, EndUID: 5}, grid.Coordinate{X: 9}, grid.Coordinate{X: 10}),
	}

	out := sorter.ByGateOccupancy(nets, sorter.Options{Descending: true})
	// Both nets touching `shared` have occ(shared)=2, so busyness = 2+1-2=1
	// for each; the untouched pair has busyness 1+1-2=0 and must sort last.
	require.Equal(t, grid.NetKey{StartUID: 4, EndUID: 5}, out[2].Key)
}

// TestByExpectedIntersections_CrossingPair exercises the cross-product test
// against a textbook crossing X shape.
func TestByExpectedIntersections_CrossingPair(t *testing.T) {
	nets := map[grid.NetKey]*grid.Net{
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2},
			grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 4, Y: 4}),
		{StartUID: 3, EndUID: 4}: netAt(grid.NetKey{StartUID: 3, EndUID: 4},
			grid.Coordinate{X: 0, Y: 4}, grid.Coordinate{X: 4, Y: 0}),
		{StartUID: 5, EndUID: 6}: netAt(grid.NetKey{StartUID: 5, EndUID: 6},
			grid.Coordinate{X: 10, Y: 10}, grid.Coordinate{X: 11, Y: 11}),
	}

	out := sorter.ByExpectedIntersections(nets, sorter.Options{})
	require.Equal(t, 0, out[0].ExpIntersections)
	require.Equal(t, grid.NetKey{StartUID: 5, EndUID: 6}, out[0].Key)

	for _, key := range []grid.NetKey{{StartUID: 1, EndUID: 2}, {StartUID: 3, EndUID: 4}} {
		n, ok := nets[key]
		require.True(t, ok)
		require.Equal(t, 1, n.ExpIntersections)
	}
}

func TestByExpectedIntersections_ResetsAcrossCalls(t *testing.T) {
	nets := map[grid.NetKey]*grid.Net{
		{StartUID: 1, EndUID: 2}: netAt(grid.NetKey{StartUID: 1, EndUID: 2},
			grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 4, Y: 4}),
		{StartUID: 3, EndUID: 4}: netAt(grid.NetKey{StartUID: 3, EndUID: 4},
			grid.Coordinate{X: 0, Y: 4}, grid.Coordinate{X: 4, Y: 0}),
	}

	sorter.ByExpectedIntersections(nets, sorter.Options{})
	sorter.ByExpectedIntersections(nets, sorter.Options{})

	for _, n := range nets {
		require.Equal(t, 1, n.ExpIntersections, "a second call must not accumulate on top of the first")
	}
}

func TestLookup_UnknownSorter(t *testing.T) {
	_, err := sorter.Lookup("not_a_sorter")
	require.ErrorIs(t, err, sorter.ErrUnknownSorter)
}

func TestLookup_AllFiveNamesRegistered(t *testing.T) {
	for _, name := range []sorter.Name{
		sorter.ByLengthName, sorter.RandomName, sorter.ByMiddleFirstName,
		sorter.ByGateOccupancyName, sorter.ByExpectedIntersectionsName,
	} {
		fn, err := sorter.Lookup(name)
		require.NoError(t, err)
		require.NotNil(t, fn)
	}
}
