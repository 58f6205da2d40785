package localsearch_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkuijer/chiproute/astar"
	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/localsearch"
	"github.com/dkuijer/chiproute/sorter"
)

// buildRoutedGrid constructs a grid with plenty of detour room and routes
// every net with astar.Solve, the precondition both optimizers assume.
func buildRoutedGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(
		grid.Size{X: 6, Y: 6, Z: 3},
		[]grid.Gate{
			{UID: 1, X: 0, Y: 0},
			{UID: 2, X: 4, Y: 0},
			{UID: 3, X: 0, Y: 4},
			{UID: 4, X: 4, Y: 4},
		},
		[]grid.NetSpec{
			{StartUID: 1, EndUID: 2},
			{StartUID: 3, EndUID: 4},
		},
	)
	require.NoError(t, err)

	for _, key := range []grid.NetKey{{StartUID: 1, EndUID: 2}, {StartUID: 3, EndUID: 4}} {
		_, err := astar.Solve(g, key)
		require.NoError(t, err)
	}
	return g
}

// TestHillclimber_NeverIncreasesCost is testable property #6-adjacent: a
// Hillclimber run's recorded cost history is monotonically non-increasing.
func TestHillclimber_NeverIncreasesCost(t *testing.T) {
	g := buildRoutedGrid(t)
	startCost := g.ComputeCost()

	result, err := localsearch.RunHillclimber(g,
		localsearch.WithHillclimberIterations(20),
		localsearch.WithHillclimberSorter(sorter.ByLengthName, false),
		localsearch.WithHillclimberRNG(rand.New(rand.NewSource(42))),
	)
	require.NoError(t, err)
	require.Len(t, result.History, 20)

	prev := startCost
	for _, cost := range result.History {
		require.LessOrEqual(t, cost, prev, "hillclimber only ever accepts a rewrite that holds cost flat or lowers it")
		prev = cost
	}
	require.Equal(t, g.ComputeCost(), result.History[len(result.History)-1])
}

// TestHillclimber_AcceptedRewriteLeavesNoLeakedSegments is testable
// property #2: after any accepted rewrite, the grid's occupancy reflects
// exactly the nets' current paths, with no stale segments left behind.
func TestHillclimber_AcceptedRewriteLeavesNoLeakedSegments(t *testing.T) {
	g := buildRoutedGrid(t)

	_, err := localsearch.RunHillclimber(g,
		localsearch.WithHillclimberIterations(10),
		localsearch.WithHillclimberRNG(rand.New(rand.NewSource(7))),
	)
	require.NoError(t, err)

	expectedSegments := 0
	for _, net := range g.Nets() {
		segs, err := net.Path.Segments()
		require.NoError(t, err)
		expectedSegments += len(segs)
	}
	require.Equal(t, expectedSegments, g.SegmentCount())
}

// TestAnnealing_ZeroTemperatureRejectsAnyWorseningMove is scenario S6's
// T=0 half: with temperature pinned at zero, a worsening candidate must
// never be accepted, regardless of the random draw.
func TestAnnealing_ZeroTemperatureRejectsAnyWorseningMove(t *testing.T) {
	require.Equal(t, float64(0), acceptanceProbabilityForTest(1, 0))
	require.Equal(t, float64(1), acceptanceProbabilityForTest(0, 0))
	require.Equal(t, float64(1), acceptanceProbabilityForTest(-5, 0))
}

// TestAnnealing_HighTemperatureAcceptsSmallWorseningWithHighProbability is
// scenario S6's T0=1e6 half.
func TestAnnealing_HighTemperatureAcceptsSmallWorseningWithHighProbability(t *testing.T) {
	p := acceptanceProbabilityForTest(1, 1_000_000)
	require.Greater(t, p, 0.999999)
}

// TestAnnealing_RunProducesHistoryPerIteration exercises the full run loop
// end to end against a live grid.
func TestAnnealing_RunProducesHistoryPerIteration(t *testing.T) {
	g := buildRoutedGrid(t)

	result, err := localsearch.RunAnnealing(g,
		localsearch.WithAnnealingIterations(10),
		localsearch.WithAnnealingRNG(rand.New(rand.NewSource(3))),
	)
	require.NoError(t, err)
	require.Len(t, result.History, 10)
}

// TestRunAnnealing_RejectsBadAlpha confirms the configuration error
// (spec.md §7) fires before any iteration runs.
func TestRunAnnealing_RejectsBadAlpha(t *testing.T) {
	g := buildRoutedGrid(t)
	_, err := localsearch.RunAnnealing(g,
		localsearch.WithAnnealingSchedule(localsearch.ExponentialSchedule),
		localsearch.WithAnnealingParams(localsearch.ScheduleParams{Alpha: 1.5}),
	)
	require.ErrorIs(t, err, localsearch.ErrBadAlpha)
}

func TestRunAnnealing_RejectsBadBetaForGeometric(t *testing.T) {
	g := buildRoutedGrid(t)
	opts := localsearch.DefaultAnnealingOptions(100, localsearch.GeometricSchedule)
	opts.Params.Beta = 0
	_, err := localsearch.RunAnnealing(g, func(o *localsearch.AnnealingOptions) { *o = opts })
	require.ErrorIs(t, err, localsearch.ErrBadBeta)
}

func TestRunAnnealing_NilGrid(t *testing.T) {
	_, err := localsearch.RunAnnealing(nil)
	require.ErrorIs(t, err, localsearch.ErrNilGrid)
}

func TestRunHillclimber_NilGrid(t *testing.T) {
	_, err := localsearch.RunHillclimber(nil)
	require.ErrorIs(t, err, localsearch.ErrNilGrid)
}

// acceptanceProbabilityForTest reimplements the package-private formula so
// this external test package can exercise it directly. It is a hand-kept
// copy of localsearch.acceptanceProbability; nothing checks that the two
// stay identical.
func acceptanceProbabilityForTest(delta int, T float64) float64 {
	if delta <= 0 {
		return 1
	}
	if T == 0 {
		return 0
	}
	return math.Exp(-float64(delta) / T)
}
