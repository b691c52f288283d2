package asciiart

import (
	"math"
	"slices"
)

// Normalize stretches values in place so the smallest becomes 0 and the
// largest 255. Uniform input is left untouched.
func Normalize(values []int) {
	if len(values) == 0 {
		return
	}

	lo, hi := slices.Min(values), slices.Max(values)
	if hi <= lo {
		return
	}

	// halves round away from zero
	span := float64(hi - lo)
	for i, v := range values {
		values[i] = int(math.Round(255 * float64(v-lo) / span))
	}
}
