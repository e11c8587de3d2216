// Package fuel computes launch fuel requirements for module masses.
package fuel

// Cost returns the fuel required to launch a single mass: mass divided by
// three, rounded down, minus two. Go's integer division truncates toward
// zero, which is the required behavior for negative masses.
func Cost(mass int) int {
	return mass/3 - 2
}

// Total sums the fuel cost of each mass.
func Total(masses []int) int {
	var total int
	for _, mass := range masses {
		total += Cost(mass)
	}
	return total
}

// TotalCompounded sums the fuel cost of each mass, plus the fuel required
// to lift that fuel, and so on. Each chain stops at the first negative
// cost, which is not added; zero costs are.
func TotalCompounded(masses []int) int {
	var total int
	for _, mass := range masses {
		for cost := Cost(mass); cost >= 0; cost = Cost(cost) {
			total += cost
		}
	}
	return total
}
