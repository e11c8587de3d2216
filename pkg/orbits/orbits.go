// Package orbits builds the orbit tree of a local orbit map and computes
// its checksum.
//
// The map is a list of lines "A)B", meaning B orbits A. Every object
// ultimately orbits the universal Center of Mass, COM.
package orbits

import (
	"errors"
	"fmt"
	"strings"
)

// Root is the universal Center of Mass every orbit chain ends at.
const Root = "COM"

// ErrBadOrbit marks a malformed orbit map line.
var ErrBadOrbit = errors.New("bad orbit line")

// Map records, for each object, the objects directly orbiting it.
type Map map[string][]string

// Parse reads "A)B" lines into an orbit map. Blank lines are skipped.
func Parse(lines []string) (Map, error) {
	orbits := make(Map)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		center, orbiter, ok := strings.Cut(line, ")")
		if !ok || center == "" || orbiter == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadOrbit, line)
		}
		orbits[center] = append(orbits[center], orbiter)
	}
	return orbits, nil
}

// Checksum returns the total number of direct and indirect orbits: the sum
// over every object of its depth below COM.
func (m Map) Checksum() int {
	var walk func(name string, depth int) int
	walk = func(name string, depth int) int {
		total := depth
		for _, child := range m[name] {
			total += walk(child, depth+1)
		}
		return total
	}
	return walk(Root, 0)
}
