package nbody

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoon(t *testing.T) {
	moon, err := ParseMoon("<x=-1, y=0, z=2>")
	require.NoError(t, err)
	assert.Equal(t, Moon{Pos: Vec3{X: -1, Y: 0, Z: 2}}, moon)

	_, err = ParseMoon("<x=1, y=2>")
	assert.ErrorIs(t, err, ErrBadMoon)
}

func exampleMoons(t *testing.T) []Moon {
	t.Helper()
	moons, err := ParseMoons([]string{
		"<x=-1, y=0, z=2>",
		"<x=2, y=-10, z=-7>",
		"<x=4, y=-8, z=8>",
		"<x=3, y=5, z=-1>",
	})
	require.NoError(t, err)
	return moons
}

func TestStep(t *testing.T) {
	moons := exampleMoons(t)
	Step(moons)

	assert.Equal(t, Moon{Pos: Vec3{2, -1, 1}, Vel: Vec3{3, -1, -1}}, moons[0])
	assert.Equal(t, Moon{Pos: Vec3{3, -7, -4}, Vel: Vec3{1, 3, 3}}, moons[1])
	assert.Equal(t, Moon{Pos: Vec3{1, -7, 5}, Vel: Vec3{-3, 1, -3}}, moons[2])
	assert.Equal(t, Moon{Pos: Vec3{2, 2, 0}, Vel: Vec3{-1, -3, 1}}, moons[3])
}

func TestTotalEnergy(t *testing.T) {
	assert.Equal(t, 179, TotalEnergy(exampleMoons(t), 10))
}

func TestTotalEnergyLargerExample(t *testing.T) {
	moons, err := ParseMoons([]string{
		"<x=-8, y=-10, z=0>",
		"<x=5, y=5, z=10>",
		"<x=2, y=-7, z=3>",
		"<x=9, y=-8, z=-3>",
	})
	require.NoError(t, err)
	assert.Equal(t, 1940, TotalEnergy(moons, 100))
}
