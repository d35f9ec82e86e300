package mazegen_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/maze"
	"github.com/katalvlaran/katas/mazegen"
)

func TestGenerate_Deterministic(t *testing.T) {
	for _, algo := range []mazegen.Algorithm{mazegen.AlgoKruskal, mazegen.AlgoWilson} {
		t.Run(algo.String(), func(t *testing.T) {
			first, err := mazegen.Generate(5, 7, mazegen.WithSeed(42), mazegen.WithAlgorithm(algo))
			require.NoError(t, err)
			second, err := mazegen.Generate(5, 7, mazegen.WithSeed(42), mazegen.WithAlgorithm(algo))
			require.NoError(t, err)
			require.Equal(t, first, second, "same seed must carve the same maze")
		})
	}
}

func TestGenerate_WithRandMatchesWithSeed(t *testing.T) {
	seeded, err := mazegen.Generate(4, 4, mazegen.WithSeed(7))
	require.NoError(t, err)
	explicit, err := mazegen.Generate(4, 4, mazegen.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.Equal(t, seeded, explicit)
}

func TestGenerate_Dimensions(t *testing.T) {
	cases := []struct{ rows, cols int }{{1, 1}, {3, 3}, {5, 8}}
	for _, tc := range cases {
		rows, err := mazegen.Generate(tc.rows, tc.cols, mazegen.WithSeed(1))
		require.NoError(t, err)
		require.Len(t, rows, 2*tc.rows+1)
		for _, row := range rows {
			require.Len(t, row, 2*tc.cols+1)
		}
	}
}

// The border must stay solid except for exactly two punched openings:
// above the top-left room and below the bottom-right room.
func TestGenerate_BorderIntact(t *testing.T) {
	for _, algo := range []mazegen.Algorithm{mazegen.AlgoKruskal, mazegen.AlgoWilson} {
		t.Run(algo.String(), func(t *testing.T) {
			rows, err := mazegen.Generate(6, 9, mazegen.WithSeed(3), mazegen.WithAlgorithm(algo))
			require.NoError(t, err)

			top, bottom := rows[0], rows[len(rows)-1]
			require.Equal(t, 1, strings.Count(top, " "), "top row carries one opening")
			require.Equal(t, byte(' '), top[1], "entrance sits above the first room")
			require.Equal(t, 1, strings.Count(bottom, " "))
			require.Equal(t, byte(' '), bottom[len(bottom)-2], "exit sits below the last room")

			for i, row := range rows {
				require.Equal(t, byte('X'), row[0], "left border open at row %d", i)
				require.Equal(t, byte('X'), row[len(row)-1], "right border open at row %d", i)
			}
		})
	}
}

func TestGenerate_SingleOpenRegion(t *testing.T) {
	for _, algo := range []mazegen.Algorithm{mazegen.AlgoKruskal, mazegen.AlgoWilson} {
		for seed := int64(1); seed <= 3; seed++ {
			rows, err := mazegen.Generate(6, 9, mazegen.WithSeed(seed), mazegen.WithAlgorithm(algo))
			require.NoError(t, err)
			g, err := maze.Parse(rows)
			require.NoError(t, err)
			require.Len(t, g.OpenRegions(), 1, "%v seed=%d must carve one connected region", algo, seed)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := mazegen.Generate(3, 3)
	require.ErrorIs(t, err, mazegen.ErrNeedRandSource)

	_, err = mazegen.Generate(0, 3, mazegen.WithSeed(1))
	require.ErrorIs(t, err, mazegen.ErrBadDimension)

	_, err = mazegen.Generate(3, 3, mazegen.WithSeed(1), mazegen.WithAlgorithm(mazegen.Algorithm(99)))
	require.ErrorIs(t, err, mazegen.ErrUnknownAlgorithm)
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { mazegen.WithRand(nil) })
}

func TestCorridor(t *testing.T) {
	rows, err := mazegen.Corridor(5)
	require.NoError(t, err)
	require.Equal(t, []string{"XXXXX", "     ", "XXXXX"}, rows)

	_, err = mazegen.Corridor(1)
	require.ErrorIs(t, err, mazegen.ErrBadDimension)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		name string
		want mazegen.Algorithm
		ok   bool
	}{
		{"kruskal", mazegen.AlgoKruskal, true},
		{"wilson", mazegen.AlgoWilson, true},
		{"prim", 0, false},
	}
	for _, tc := range cases {
		got, err := mazegen.ParseAlgorithm(tc.name)
		if !tc.ok {
			require.ErrorIs(t, err, mazegen.ErrUnknownAlgorithm)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}
