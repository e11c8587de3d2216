// Package input reads puzzle input files. Inputs are small, so every
// reader loads the whole file, trims surrounding whitespace, and parses
// strictly: the first bad token fails the read.
package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Lines reads a file and returns its trimmed, newline-separated lines.
func Lines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n"), nil
}

// Ints reads a file of sep-separated integers.
func Ints(path, sep string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tokens := strings.Split(strings.TrimSpace(string(data)), sep)
	nums := make([]int, len(tokens))
	for i, token := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("parse %s: bad integer %q", path, token)
		}
		nums[i] = n
	}
	return nums, nil
}

// Digits reads a file containing one unbroken run of decimal digits.
func Digits(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(data))
	digits := make([]int, len(text))
	for i, c := range text {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("parse %s: non-digit %q at offset %d", path, c, i)
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}
