// Package password counts candidate passwords satisfying the venus fuel
// depot rules: six digits, never decreasing left to right, with at least
// one adjacent repeated digit.
package password

import "strconv"

// ValidWeak reports whether n satisfies the part-one rules: exactly six
// digits, monotonically non-decreasing, containing at least one adjacent
// pair of equal digits.
func ValidWeak(n int) bool {
	s := strconv.Itoa(n)
	if len(s) != 6 {
		return false
	}

	hasPair := false
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
		if s[i] == s[i-1] {
			hasPair = true
		}
	}
	return hasPair
}

// ValidStrict reports whether n additionally contains a digit group of
// exactly two. Because valid passwords have non-decreasing digits, equal
// digits are always adjacent, so counting occurrences suffices.
func ValidStrict(n int) bool {
	if !ValidWeak(n) {
		return false
	}

	var counts [10]int
	for s := strconv.Itoa(n); len(s) > 0; s = s[1:] {
		counts[s[0]-'0']++
	}
	for _, c := range counts {
		if c == 2 {
			return true
		}
	}
	return false
}

// CountInRange counts the numbers in [lo, hi] accepted by valid.
func CountInRange(lo, hi int, valid func(int) bool) int {
	count := 0
	for n := lo; n <= hi; n++ {
		if valid(n) {
			count++
		}
	}
	return count
}
