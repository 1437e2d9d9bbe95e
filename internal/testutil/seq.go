package testutil

// Ints returns the sequence start, start+1, ..., start+n-1.
func Ints(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Ramp returns n floats spaced by step, starting at start.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
