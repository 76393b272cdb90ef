// Package mathx holds the integer helpers the lattice code relies on.
// Every division here rounds toward negative infinity so that negative
// coordinates land in the same cell bands as positive ones.
package mathx

// FloorDiv returns floor(a / b). b must be > 0.
func FloorDiv(a, b int) int {
	q := a / b
	r := a % b
	if r < 0 {
		q--
	}
	return q
}

// Mod returns the Euclidean remainder of a / b, always in [0, b). b must be > 0.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
