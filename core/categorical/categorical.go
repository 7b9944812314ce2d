// Package categorical draws an index from an unnormalized discrete
// distribution.
package categorical

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Draw returns an index i in [0, len(weights)) with probability
// weights[i] / sum(weights).  It overwrites weights with their running
// sums, so callers can reuse one buffer across draws without
// allocating.  Draw panics if a weight is negative or NaN, or if the
// sum is not positive and finite.
func Draw(weights []float64, rng *rand.Rand) int {
	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			panic(fmt.Sprintf("weights[%d] = %v is not a valid weight", i, w))
		}
		sum += w
		weights[i] = sum
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		panic(fmt.Sprintf("sum of %d weights = %v, not positive and finite",
			len(weights), sum))
	}

	u := rng.Float64() * sum
	i := sort.Search(len(weights), func(i int) bool { return weights[i] > u })
	if i == len(weights) {
		// u rounded up to sum; take the last bin with positive weight.
		i = len(weights) - 1
		for i > 0 && weights[i-1] == weights[i] {
			i--
		}
	}
	return i
}
