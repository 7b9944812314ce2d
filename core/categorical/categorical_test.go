package categorical

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawSingleSupport(t *testing.T) {
	rng := rand.New(rand.NewSource(-1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 2, Draw([]float64{0, 0, 3, 0}, rng))
	}
}

func TestDrawWritesRunningSums(t *testing.T) {
	w := []float64{1, 2, 3}
	Draw(w, rand.New(rand.NewSource(1)))
	assert.Equal(t, []float64{1, 3, 6}, w)
}

func TestDrawDeterministicGivenSeed(t *testing.T) {
	draws := func() []int {
		rng := rand.New(rand.NewSource(42))
		r := make([]int, 50)
		for i := range r {
			r[i] = Draw([]float64{0.2, 0.5, 0.3}, rng)
		}
		return r
	}
	assert.Equal(t, draws(), draws())
}

func TestDrawFrequencies(t *testing.T) {
	const n = 100000
	rng := rand.New(rand.NewSource(7))
	weights := []float64{1, 3, 6}
	hits := make([]int, len(weights))
	buf := make([]float64, len(weights))
	for i := 0; i < n; i++ {
		copy(buf, weights)
		hits[Draw(buf, rng)]++
	}
	for i, w := range weights {
		assert.InDelta(t, w/10, float64(hits[i])/n, 0.01,
			"frequency of index %d", i)
	}
}

func TestDrawRejectsDegenerateWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { Draw([]float64{0, 0}, rng) })
	assert.Panics(t, func() { Draw([]float64{1, -1}, rng) })
	assert.Panics(t, func() { Draw(nil, rng) })
}
