// Package wires finds crossings between wire paths laid out on a grid.
//
// A path is written as comma-separated moves such as "R8,U5,L5,D3". Every
// wire starts at the origin; crossings at the origin itself do not count.
package wires

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors.
var (
	ErrBadMove     = errors.New("bad path move")
	ErrNoCrossings = errors.New("paths do not cross")
)

// Point is a grid position.
type Point struct {
	X, Y int
}

func (p Point) manhattan() int {
	return abs(p.X) + abs(p.Y)
}

// Path maps every grid point a wire visits to the number of steps taken to
// first reach it. The origin is not included.
type Path map[Point]int

// ParsePath traces a path string into the set of visited points.
func ParsePath(s string) (Path, error) {
	visited := make(Path)
	var cur Point
	steps := 0

	for _, move := range strings.Split(s, ",") {
		if move == "" {
			return nil, fmt.Errorf("%w: empty move", ErrBadMove)
		}

		var dx, dy int
		switch move[0] {
		case 'U':
			dy = 1
		case 'D':
			dy = -1
		case 'L':
			dx = -1
		case 'R':
			dx = 1
		default:
			return nil, fmt.Errorf("%w: direction %q", ErrBadMove, move[0])
		}

		dist, err := strconv.Atoi(move[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: distance in %q", ErrBadMove, move)
		}

		for i := 0; i < dist; i++ {
			cur.X += dx
			cur.Y += dy
			steps++
			if _, ok := visited[cur]; !ok {
				visited[cur] = steps
			}
		}
	}

	return visited, nil
}

// crossings returns the points visited by every path.
func crossings(paths []Path) []Point {
	if len(paths) == 0 {
		return nil
	}

	var shared []Point
outer:
	for point := range paths[0] {
		for _, path := range paths[1:] {
			if _, ok := path[point]; !ok {
				continue outer
			}
		}
		shared = append(shared, point)
	}
	return shared
}

// ClosestCrossing returns the smallest Manhattan distance from the origin
// to any point where all paths cross.
func ClosestCrossing(paths []Path) (int, error) {
	best := -1
	for _, point := range crossings(paths) {
		if d := point.manhattan(); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0, ErrNoCrossings
	}
	return best, nil
}

// ShortestCrossing returns the smallest combined step count over all paths
// to any point where they cross.
func ShortestCrossing(paths []Path) (int, error) {
	best := -1
	for _, point := range crossings(paths) {
		length := 0
		for _, path := range paths {
			length += path[point]
		}
		if best < 0 || length < best {
			best = length
		}
	}
	if best < 0 {
		return 0, ErrNoCrossings
	}
	return best, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
