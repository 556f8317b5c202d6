package bloom

import "math"

// CheckParams validates constructor parameters for safe sizing computations.
func CheckParams(n uint, p float64) error {
	if n == 0 {
		return ErrBadItemCount
	}
	if p <= 0 || p >= 1 {
		return ErrBadFPRate
	}
	return nil
}

// OptimalM returns the bit array length minimizing the expected false
// positive rate for n items at target rate p:
//
//	m = ceil(-n * ln(p) / (ln 2)^2)
//
// The caller is responsible for ensuring:
//   - n > 0
//   - 0 < p < 1
//
// CheckParams can be used to check these conditions.
func OptimalM(n uint, p float64) uint {
	return uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
}

// OptimalK returns the probe round count for target rate p:
//
//	k = ceil(-ln(p) / ln 2)
//
// The same parameter conditions as OptimalM apply; any p in (0,1) yields
// k >= 1.
func OptimalK(p float64) uint32 {
	return uint32(math.Ceil(-math.Log(p) / math.Ln2))
}
