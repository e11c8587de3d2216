// Package nbody simulates the mutual gravity of Jupiter's moons on integer
// coordinates.
package nbody

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadMoon marks an unparseable moon position line.
var ErrBadMoon = errors.New("bad moon position")

var axisPattern = regexp.MustCompile(`(\w)=(-?\d+)`)

// Vec3 is an integer 3-vector.
type Vec3 struct {
	X, Y, Z int
}

func (v Vec3) energy() int {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

// Moon is a body with a position and velocity.
type Moon struct {
	Pos, Vel Vec3
}

// Energy returns the moon's total energy: potential (sum of absolute
// position components) times kinetic (sum of absolute velocity components).
func (m Moon) Energy() int {
	return m.Pos.energy() * m.Vel.energy()
}

// ParseMoon reads a scan line such as "<x=-1, y=0, z=2>" into a moon at
// rest.
func ParseMoon(line string) (Moon, error) {
	axes := make(map[string]int, 3)
	for _, match := range axisPattern.FindAllStringSubmatch(line, -1) {
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return Moon{}, fmt.Errorf("%w: %q", ErrBadMoon, line)
		}
		axes[match[1]] = n
	}

	for _, axis := range []string{"x", "y", "z"} {
		if _, ok := axes[axis]; !ok {
			return Moon{}, fmt.Errorf("%w: missing %s in %q", ErrBadMoon, axis, line)
		}
	}

	return Moon{Pos: Vec3{X: axes["x"], Y: axes["y"], Z: axes["z"]}}, nil
}

// ParseMoons reads one moon per line, skipping blank lines.
func ParseMoons(lines []string) ([]Moon, error) {
	var moons []Moon
	for _, line := range lines {
		if line == "" {
			continue
		}
		moon, err := ParseMoon(line)
		if err != nil {
			return nil, err
		}
		moons = append(moons, moon)
	}
	return moons, nil
}

// Step advances the simulation one tick: every pair of moons pulls each
// other one unit per axis, then every moon moves by its velocity.
func Step(moons []Moon) {
	for i := range moons {
		for j := i + 1; j < len(moons); j++ {
			applyGravity(&moons[i], &moons[j])
		}
	}
	for i := range moons {
		moons[i].Pos.X += moons[i].Vel.X
		moons[i].Pos.Y += moons[i].Vel.Y
		moons[i].Pos.Z += moons[i].Vel.Z
	}
}

func applyGravity(a, b *Moon) {
	pull(a.Pos.X, b.Pos.X, &a.Vel.X, &b.Vel.X)
	pull(a.Pos.Y, b.Pos.Y, &a.Vel.Y, &b.Vel.Y)
	pull(a.Pos.Z, b.Pos.Z, &a.Vel.Z, &b.Vel.Z)
}

func pull(posA, posB int, velA, velB *int) {
	switch {
	case posA < posB:
		*velA++
		*velB--
	case posA > posB:
		*velA--
		*velB++
	}
}

// TotalEnergy runs the simulation for the given number of steps and
// returns the summed energy of all moons. The slice is mutated.
func TotalEnergy(moons []Moon, steps int) int {
	for s := 0; s < steps; s++ {
		Step(moons)
	}
	total := 0
	for _, moon := range moons {
		total += moon.Energy()
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
