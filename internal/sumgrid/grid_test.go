package sumgrid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

// seqRand replays fixed draws, reducing each modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestCoordAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b sumgrid.Coord
		want bool
	}{
		{"right", sumgrid.At(1, 1), sumgrid.At(1, 2), true},
		{"down", sumgrid.At(1, 1), sumgrid.At(2, 1), true},
		{"left", sumgrid.At(1, 1), sumgrid.At(1, 0), true},
		{"up", sumgrid.At(1, 1), sumgrid.At(0, 1), true},
		{"diagonal", sumgrid.At(1, 1), sumgrid.At(2, 2), false},
		{"same", sumgrid.At(1, 1), sumgrid.At(1, 1), false},
		{"two apart", sumgrid.At(1, 1), sumgrid.At(1, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Adjacent(tt.b))
		})
	}
}

func TestGridFromRows(t *testing.T) {
	g := sumgrid.GridFromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.At(sumgrid.At(1, 2)))
	assert.Equal(t, sumgrid.Empty, g.At(sumgrid.At(2, 0)), "out of bounds reads as empty")
	assert.Equal(t, "1 2 3\n4 5 6", g.String())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, g.RowValues())
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := sumgrid.GridFromRows([][]int{{1, 2}, {3, 4}})
	c := g.Clone()
	c.Set(sumgrid.At(0, 0), sumgrid.Empty)

	assert.Equal(t, 1, g.At(sumgrid.At(0, 0)))
	assert.False(t, g.Equal(c))
	assert.Equal(t, "1 2\n3 4", g.String())
	assert.Equal(t, ". 2\n3 4", c.String())
}

func TestMaxValue(t *testing.T) {
	tests := []struct {
		target, want int
	}{
		{2, 1},
		{5, 4},
		{10, 9},
		{15, 9},
		{100, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sumgrid.MaxValue(tt.target), "MaxValue(%d)", tt.target)
	}
}

func TestGenerateValueBounds(t *testing.T) {
	for _, target := range []int{2, 3, 5, 10, 15, 30} {
		rng := rand.New(rand.NewSource(int64(target)))
		for round := 0; round < 20; round++ {
			g, err := sumgrid.Generate(6, 6, target, rng)
			require.NoError(t, err)
			require.True(t, g.Full())

			for _, v := range g.Values() {
				require.GreaterOrEqual(t, v, 1)
				require.LessOrEqual(t, v, min(target-1, 9), "target %d", target)
			}
		}
	}
}

func TestGenerateCoversRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		g, err := sumgrid.Generate(5, 5, 10, rng)
		require.NoError(t, err)
		for _, v := range g.Values() {
			seen[v] = true
		}
	}
	assert.Len(t, seen, 9, "every digit 1..9 should appear over 250 draws")
}

func TestGenerateInvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name               string
		rows, cols, target int
	}{
		{"zero rows", 0, 5, 10},
		{"negative cols", 5, -1, 10},
		{"target too small", 5, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sumgrid.Generate(tt.rows, tt.cols, tt.target, rng)
			assert.ErrorIs(t, err, sumgrid.ErrInvalidConfig)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := sumgrid.Generate(5, 5, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := sumgrid.Generate(5, 5, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
