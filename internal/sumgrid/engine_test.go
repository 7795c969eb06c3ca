package sumgrid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

func newEngine(t *testing.T, rows [][]int, target int, charges sumgrid.Charges) *sumgrid.Engine {
	t.Helper()
	e, err := sumgrid.NewEngineWithGrid(sumgrid.Options{
		Target:  target,
		Charges: charges,
	}, sumgrid.GridFromRows(rows), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return e
}

func selectAll(t *testing.T, e *sumgrid.Engine, cells ...sumgrid.Coord) {
	t.Helper()
	for _, c := range cells {
		changed, err := e.Toggle(c)
		require.NoError(t, err)
		require.True(t, changed, "toggle %v", c)
	}
}

func TestEngineFirstMatchScores20(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}, {3, 1}}, 3, sumgrid.Charges{})

	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(0, 1))
	require.Equal(t, 3, e.Sum())

	m, err := e.Confirm()
	require.NoError(t, err)

	assert.Equal(t, 20, m.Delta)
	assert.Equal(t, 20, e.Score())
	assert.Equal(t, 1, e.Combo())
	assert.Equal(t, 1, e.Moves())
	assert.Empty(t, e.Selection())
	assert.True(t, e.RefillPending())
	assert.Equal(t, ". .\n3 1", e.Grid().String())
}

func TestEngineVerticalMatch(t *testing.T) {
	e := newEngine(t, [][]int{{2, 1}, {3, 1}}, 5, sumgrid.Charges{})

	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(1, 0))
	m, err := e.Confirm()

	require.NoError(t, err)
	assert.Equal(t, 5, m.Sum)
}

func TestEngineConfirmMismatchLeavesState(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}, {3, 1}}, 3, sumgrid.Charges{})
	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(1, 0))
	before := e.Grid()

	_, err := e.Confirm()

	require.ErrorIs(t, err, sumgrid.ErrInvalidSelection)
	assert.True(t, before.Equal(e.Grid()))
	assert.Zero(t, e.Score())
	assert.Zero(t, e.Moves())
	assert.Len(t, e.Selection(), 2, "selection survives a rejected confirm")
	assert.False(t, e.RefillPending())
}

func TestEngineConfirmEmpty(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}}, 3, sumgrid.Charges{})
	_, err := e.Confirm()
	assert.ErrorIs(t, err, sumgrid.ErrEmptySelection)
}

func TestEngineComboBonus(t *testing.T) {
	e := newEngine(t, [][]int{
		{1, 2, 1},
		{2, 1, 2},
	}, 3, sumgrid.Charges{})

	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(0, 1))
	_, err := e.Confirm()
	require.NoError(t, err)
	e.Refill()

	// Find any match on the refilled board to keep the streak going.
	p, ok := sumgrid.FindHint(e.Grid(), 3)
	require.True(t, ok)
	selectAll(t, e, p...)
	m, err := e.Confirm()
	require.NoError(t, err)

	assert.Equal(t, 2, m.Combo)
	assert.Equal(t, len(p)*10+2*5, m.Delta)
	assert.Equal(t, 20+m.Delta, e.Score())
	assert.Equal(t, 2, e.MaxCombo())
}

func TestEngineClearResetsCombo(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}, {3, 1}}, 3, sumgrid.Charges{})
	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(0, 1))
	_, err := e.Confirm()
	require.NoError(t, err)
	e.Refill()
	require.Equal(t, 1, e.Combo())

	e.Clear()

	assert.Zero(t, e.Combo())
	assert.Equal(t, 1, e.MaxCombo())
}

func TestEngineRefillPendingBlocksActions(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}, {3, 1}}, 3, sumgrid.Charges{Hints: 1, Shuffles: 1, Bombs: 1})
	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(0, 1))
	_, err := e.Confirm()
	require.NoError(t, err)

	_, err = e.Toggle(sumgrid.At(1, 0))
	assert.ErrorIs(t, err, sumgrid.ErrRefillPending)
	_, err = e.Confirm()
	assert.ErrorIs(t, err, sumgrid.ErrRefillPending)
	_, err = e.Hint()
	assert.ErrorIs(t, err, sumgrid.ErrRefillPending)
	assert.ErrorIs(t, e.Shuffle(), sumgrid.ErrRefillPending)
	_, err = e.Bomb(sumgrid.At(1, 1))
	assert.ErrorIs(t, err, sumgrid.ErrRefillPending)

	n := e.Refill()
	assert.Equal(t, 2, n)
	assert.False(t, e.RefillPending())
	assert.True(t, e.Grid().Full())
	assert.Equal(t, sumgrid.Charges{Hints: 1, Shuffles: 1, Bombs: 1}, e.Charges())
}

func TestEngineHint(t *testing.T) {
	e := newEngine(t, [][]int{{1, 4}, {4, 1}}, 5, sumgrid.Charges{Hints: 1})

	p, err := e.Hint()
	require.NoError(t, err)
	assert.Equal(t, sumgrid.Path{sumgrid.At(0, 0), sumgrid.At(0, 1)}, p)
	assert.Zero(t, e.Charges().Hints)
	assert.Empty(t, e.Selection(), "hint does not select")

	_, err = e.Hint()
	assert.ErrorIs(t, err, sumgrid.ErrNoCharges)
	assert.ErrorIs(t, err, sumgrid.ErrEmptySelection)
}

func TestEngineHintNoPathKeepsCharge(t *testing.T) {
	e := newEngine(t, [][]int{{9, 9}, {9, 9}}, 10, sumgrid.Charges{Hints: 2})

	_, err := e.Hint()

	assert.ErrorIs(t, err, sumgrid.ErrNoHint)
	assert.Equal(t, 2, e.Charges().Hints)
	assert.False(t, e.HasMove())
}

func TestEngineShuffle(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2, 3}, {4, 5, 6}}, 7, sumgrid.Charges{Shuffles: 1})
	selectAll(t, e, sumgrid.At(0, 0))

	require.NoError(t, e.Shuffle())
	assert.Zero(t, e.Charges().Shuffles)
	assert.Empty(t, e.Selection())
	assert.Zero(t, e.Combo())
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, e.Grid().Values())

	err := e.Shuffle()
	assert.ErrorIs(t, err, sumgrid.ErrNoCharges)
}

func TestEngineBomb(t *testing.T) {
	e := newEngine(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, 10, sumgrid.Charges{Bombs: 1})

	blast, err := e.Bomb(sumgrid.At(1, 1))
	require.NoError(t, err)

	assert.ElementsMatch(t, sumgrid.Path{
		sumgrid.At(1, 1), sumgrid.At(1, 2), sumgrid.At(2, 1), sumgrid.At(1, 0), sumgrid.At(0, 1),
	}, blast)
	assert.Equal(t, "1 . 3\n. . .\n7 . 9", e.Grid().String())
	assert.Zero(t, e.Score(), "bombs award no points")
	assert.Equal(t, 5, e.CellsCleared())
	assert.True(t, e.RefillPending())

	e.Refill()
	_, err = e.Bomb(sumgrid.At(0, 0))
	assert.ErrorIs(t, err, sumgrid.ErrNoCharges)
}

func TestEngineBombCorner(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}, {3, 4}}, 10, sumgrid.Charges{Bombs: 2})

	_, err := e.Bomb(sumgrid.At(5, 5))
	require.ErrorIs(t, err, sumgrid.ErrOutOfBounds)
	assert.Equal(t, 2, e.Charges().Bombs, "a rejected bomb keeps its charge")

	blast, err := e.Bomb(sumgrid.At(0, 0))
	require.NoError(t, err)
	assert.Len(t, blast, 3)
	assert.Equal(t, ". .\n. 4", e.Grid().String())
}

func TestEngineFreeze(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}}, 3, sumgrid.Charges{Freezes: 1})

	require.NoError(t, e.UseFreeze())
	assert.ErrorIs(t, e.UseFreeze(), sumgrid.ErrNoCharges)
}

func TestEngineEvents(t *testing.T) {
	e := newEngine(t, [][]int{{1, 2}, {3, 1}}, 3, sumgrid.Charges{Hints: 1})
	var events []sumgrid.Event
	e.Subscribe(func(ev sumgrid.Event) {
		events = append(events, ev)
	})

	_, err := e.Hint()
	require.NoError(t, err)
	selectAll(t, e, sumgrid.At(0, 0), sumgrid.At(0, 1))

	// Diagonal to the last cell: ignored without an event.
	changed, err := e.Toggle(sumgrid.At(1, 0))
	require.NoError(t, err)
	require.False(t, changed)

	_, err = e.Confirm()
	require.NoError(t, err)
	e.Refill()
	e.Clear()

	kinds := make([]sumgrid.EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []sumgrid.EventKind{
		sumgrid.EventHinted,
		sumgrid.EventSelected,
		sumgrid.EventSelected,
		sumgrid.EventMatched,
		sumgrid.EventRefilled,
		sumgrid.EventCleared,
	}, kinds)

	matched := events[3]
	assert.Equal(t, 20, matched.Delta)
	assert.Equal(t, 20, matched.Score)
	assert.Equal(t, 1, matched.Combo)
	assert.Equal(t, sumgrid.Path{sumgrid.At(0, 0), sumgrid.At(0, 1)}, matched.Path)
	assert.Equal(t, "matched", matched.Kind.String())
}

func TestNewEngineGenerates(t *testing.T) {
	e, err := sumgrid.NewEngine(sumgrid.Options{Rows: 5, Cols: 5, Target: 10}, rand.New(rand.NewSource(8)))
	require.NoError(t, err)

	assert.Equal(t, 5, e.Rows())
	assert.Equal(t, 5, e.Cols())
	assert.True(t, e.Grid().Full())

	_, err = sumgrid.NewEngine(sumgrid.Options{Rows: 5, Cols: 5, Target: 1}, rand.New(rand.NewSource(8)))
	assert.ErrorIs(t, err, sumgrid.ErrInvalidConfig)
}
