package gibbs

import (
	"math/rand"

	"github.com/godist/ldagibbs/core/categorical"
	"github.com/golang/glog"
)

// Sampler implements the plain collapsed Gibbs sampler of LDA
// described in *Finding Scientific Topics* by Thomas Griffiths and
// Mark Steyvers, PNAS 2004.  Each token is resampled conditioned on
// all other current assignments, including those already updated in
// the same sweep.
//
// A Sampler is not safe for concurrent use.  The detach-draw-reattach
// steps of a sweep read and write the shared count tables without
// locking.
type Sampler struct {
	corpus  *Corpus
	counts  *Counts
	rng     *rand.Rand
	weights []float64 // conditional of the current token, reused
	changes int
}

func NewSampler(c *Corpus, s *Counts, rng *rand.Rand) *Sampler {
	return &Sampler{
		corpus:  c,
		counts:  s,
		rng:     rng,
		weights: make([]float64, s.NumTopics()),
	}
}

// Sweep makes passes full passes over the corpus.  Sweep(0) does
// nothing.
func (s *Sampler) Sweep(passes int) {
	for p := 0; p < passes; p++ {
		s.changes = 0
		s.corpus.ForEach(s.resample)
	}
}

// Changes returns the number of tokens whose topic changed during the
// most recent pass.
func (s *Sampler) Changes() int {
	return s.changes
}

func (s *Sampler) resample(t *Token) {
	oldTopic := t.topic
	s.counts.Remove(t)
	s.weights = s.counts.Conditional(t, s.weights)
	newTopic := categorical.Draw(s.weights, s.rng)
	if newTopic < 0 || newTopic >= s.counts.NumTopics() {
		glog.Fatalf("Failed in sampling: newTopic = %d out of range [0, %d)",
			newTopic, s.counts.NumTopics())
	}
	s.counts.Add(t, newTopic)
	if newTopic != oldTopic {
		s.changes++
	}
}
