package dice

import "golang.org/x/exp/constraints"

// clamp limits v to at most max.
func clamp[T constraints.Integer](v, max T) T {
	if v > max {
		return max
	}
	return v
}
