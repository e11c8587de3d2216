package wires

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePaths(t *testing.T, raw ...string) []Path {
	t.Helper()
	paths := make([]Path, len(raw))
	for i, s := range raw {
		var err error
		paths[i], err = ParsePath(s)
		require.NoError(t, err)
	}
	return paths
}

func TestParsePath(t *testing.T) {
	t.Run("traces every point with step counts", func(t *testing.T) {
		path, err := ParsePath("R2,U1")
		require.NoError(t, err)

		assert.Equal(t, Path{
			{1, 0}: 1,
			{2, 0}: 2,
			{2, 1}: 3,
		}, path)
	})

	t.Run("first visit wins on self-crossing", func(t *testing.T) {
		// R2,U1,L1,D1 ends back on (1, 0), first reached at step 1.
		path, err := ParsePath("R2,U1,L1,D1")
		require.NoError(t, err)
		assert.Equal(t, 1, path[Point{1, 0}])
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := ParsePath("R2,X3")
		assert.ErrorIs(t, err, ErrBadMove)
	})

	t.Run("bad distance", func(t *testing.T) {
		_, err := ParsePath("R2,Ux")
		assert.ErrorIs(t, err, ErrBadMove)
	})
}

func TestClosestCrossing(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  int
	}{
		{"small", []string{"R8,U5,L5,D3", "U7,R6,D4,L4"}, 6},
		{"medium", []string{
			"R75,D30,R83,U83,L12,D49,R71,U7,L72",
			"U62,R66,U55,R34,D71,R55,D58,R83",
		}, 159},
		{"large", []string{
			"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
		}, 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClosestCrossing(parsePaths(t, tt.paths...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortestCrossing(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  int
	}{
		{"small", []string{"R8,U5,L5,D3", "U7,R6,D4,L4"}, 30},
		{"medium", []string{
			"R75,D30,R83,U83,L12,D49,R71,U7,L72",
			"U62,R66,U55,R34,D71,R55,D58,R83",
		}, 610},
		{"large", []string{
			"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
		}, 410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShortestCrossing(parsePaths(t, tt.paths...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoCrossings(t *testing.T) {
	paths := parsePaths(t, "R2", "U2")
	_, err := ClosestCrossing(paths)
	assert.ErrorIs(t, err, ErrNoCrossings)
	_, err = ShortestCrossing(paths)
	assert.ErrorIs(t, err, ErrNoCrossings)
}
