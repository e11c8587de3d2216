package intcode

// SearchSpace bounds the parameter grid scanned by Search: both parameters
// range over [0, SearchSpace).
const SearchSpace = 100

// Search scans parameter pairs (i, j) in row-major order, executing the
// program once per pair, and returns the first pair whose result equals
// target. Any execution error aborts the whole search and is returned as
// is; exhausting the grid without a match returns ErrTargetNotFound.
func (p *Program) Search(target int) (int, int, error) {
	for i := 0; i < SearchSpace; i++ {
		for j := 0; j < SearchSpace; j++ {
			result, err := p.Execute(i, j)
			if err != nil {
				return 0, 0, err
			}
			if result == target {
				return i, j, nil
			}
		}
	}
	return 0, 0, ErrTargetNotFound
}
