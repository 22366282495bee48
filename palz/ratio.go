package palz

// Ratio returns the space saved by compressed relative to original, as a
// percentage. It never returns a negative value.
func Ratio(original, compressed int64) float64 {
	if original <= 0 {
		return 0
	}
	if r := (1 - float64(compressed)/float64(original)) * 100; r > 0 {
		return r
	}
	return 0
}
