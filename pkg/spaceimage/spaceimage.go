// Package spaceimage decodes Space Image Format transmissions: a digit
// stream split into fixed-size layers.
package spaceimage

import (
	"errors"
	"fmt"
)

// ErrBadDimensions marks a digit stream that does not divide evenly into
// width-by-height layers.
var ErrBadDimensions = errors.New("digit stream does not fill whole layers")

// Layer is one width-by-height slice of the transmission, in row-major
// order.
type Layer []int

// count returns how many pixels of the layer hold the given digit.
func (l Layer) count(digit int) int {
	n := 0
	for _, d := range l {
		if d == digit {
			n++
		}
	}
	return n
}

// Layers splits a digit stream into width-by-height layers.
func Layers(digits []int, width, height int) ([]Layer, error) {
	size := width * height
	if size <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if len(digits)%size != 0 {
		return nil, fmt.Errorf("%w: %d digits, layer size %d", ErrBadDimensions, len(digits), size)
	}

	layers := make([]Layer, 0, len(digits)/size)
	for start := 0; start < len(digits); start += size {
		layers = append(layers, Layer(digits[start:start+size]))
	}
	return layers, nil
}

// Checksum finds the layer with the fewest zero pixels and returns its
// one-pixel count multiplied by its two-pixel count.
func Checksum(layers []Layer) int {
	var best Layer
	fewest := -1
	for _, layer := range layers {
		if zeros := layer.count(0); fewest < 0 || zeros < fewest {
			best, fewest = layer, zeros
		}
	}
	if best == nil {
		return 0
	}
	return best.count(1) * best.count(2)
}
