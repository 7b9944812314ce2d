package gibbs

import (
	"fmt"

	"github.com/godist/ldagibbs/core/hist"
	"github.com/pkg/errors"
)

// Counts holds the sufficient statistics of the current topic
// assignments:
//
//	docTopic[d][t]  tokens in document d assigned topic t
//	wordTopic[w][t] tokens of word w assigned topic t
//	topicTotal[t]   tokens assigned topic t
//	docTotal[d]     tokens in document d, fixed
//
// Every attached token contributes exactly one unit to
// docTopic[doc][topic], wordTopic[word][topic] and topicTotal[topic].
// Resampling a token is a two-phase protocol: Remove detaches it, so
// that Conditional sees the counts of all other tokens, then Add
// reattaches it with its new topic.
type Counts struct {
	a, b       float64 // topic-word and document-topic prior mass
	aSum       float64 // |V| * a
	docTopic   []hist.Dense
	wordTopic  []hist.Dense
	topicTotal hist.Dense
	docTotal   []int64
}

// NewCounts builds the tables from the current topics of all tokens
// in c.
func NewCounts(c *Corpus, vocabSize, numTopics int, a, b float64) *Counts {
	s := &Counts{
		a:          a,
		b:          b,
		aSum:       a * float64(vocabSize),
		docTopic:   make([]hist.Dense, c.NumDocs()),
		wordTopic:  make([]hist.Dense, vocabSize),
		topicTotal: hist.NewDense(numTopics),
		docTotal:   make([]int64, c.NumDocs()),
	}
	for d := range s.docTopic {
		s.docTopic[d] = hist.NewDense(numTopics)
	}
	for w := range s.wordTopic {
		s.wordTopic[w] = hist.NewDense(numTopics)
	}
	c.ForEach(func(t *Token) {
		s.inc(t)
		s.docTotal[t.doc]++
	})
	return s
}

func (s *Counts) NumTopics() int {
	return s.topicTotal.Len()
}

func (s *Counts) DocTopic(d, t int) int64 {
	return s.docTopic[d].At(t)
}

func (s *Counts) TopicWord(t int, w int32) int64 {
	return s.wordTopic[w].At(t)
}

func (s *Counts) TopicTotal(t int) int64 {
	return s.topicTotal.At(t)
}

func (s *Counts) DocTotal(d int) int64 {
	return s.docTotal[d]
}

// DocTopicHist returns the topic histogram of document d.  Callers
// must not modify it.
func (s *Counts) DocTopicHist(d int) hist.Dense {
	return s.docTopic[d]
}

// WordTopicHist returns the topic histogram of word id w.  Callers
// must not modify it.
func (s *Counts) WordTopicHist(w int32) hist.Dense {
	return s.wordTopic[w]
}

// Remove takes the contribution of t out of the tables.  It panics if
// t is already detached or if any count would become negative.
func (s *Counts) Remove(t *Token) {
	if t.detached {
		panic(fmt.Sprintf("token %v of document %d removed twice", t, t.doc))
	}
	s.docTopic[t.doc].Dec(t.topic, 1)
	s.wordTopic[t.id].Dec(t.topic, 1)
	s.topicTotal.Dec(t.topic, 1)
	t.detached = true
}

// Add sets the topic of a detached token and puts its contribution
// back into the tables.
func (s *Counts) Add(t *Token, topic int) {
	if !t.detached {
		panic(fmt.Sprintf("token %v of document %d added without Remove",
			t, t.doc))
	}
	if topic < 0 || topic >= s.NumTopics() {
		panic(fmt.Sprintf("topic %d out of range [0, %d)",
			topic, s.NumTopics()))
	}
	t.topic = topic
	t.detached = false
	s.inc(t)
}

func (s *Counts) inc(t *Token) {
	s.docTopic[t.doc].Inc(t.topic, 1)
	s.wordTopic[t.id].Inc(t.topic, 1)
	s.topicTotal.Inc(t.topic, 1)
}

// Conditional fills weights with the unnormalized probabilities of
// each topic for a detached token:
//
//	(docTopic[d][t] + B) * (wordTopic[w][t] + A) / (topicTotal[t] + |V|*A)
//
// If weights is shorter than the number of topics, a new slice is
// allocated.
func (s *Counts) Conditional(t *Token, weights []float64) []float64 {
	if !t.detached {
		panic(fmt.Sprintf("conditional of attached token %v", t))
	}
	k := s.NumTopics()
	if cap(weights) < k {
		weights = make([]float64, k)
	}
	weights = weights[:k]

	docHist := s.docTopic[t.doc]
	wordHist := s.wordTopic[t.id]
	for topic := 0; topic < k; topic++ {
		weights[topic] = (float64(docHist[topic]) + s.b) *
			(float64(wordHist[topic]) + s.a) /
			(float64(s.topicTotal[topic]) + s.aSum)
	}
	return weights
}

// Verify recomputes all tables from the topics of tokens in c and
// returns an error describing the first mismatch.
func (s *Counts) Verify(c *Corpus) error {
	k := s.NumTopics()
	docTopic := make([]hist.Dense, c.NumDocs())
	for d := range docTopic {
		docTopic[d] = hist.NewDense(k)
	}
	wordTopic := make([]hist.Dense, len(s.wordTopic))
	for w := range wordTopic {
		wordTopic[w] = hist.NewDense(k)
	}
	topicTotal := hist.NewDense(k)

	var err error
	c.ForEach(func(t *Token) {
		if t.detached && err == nil {
			err = errors.Errorf("token %v of document %d is detached", t, t.doc)
		}
		docTopic[t.doc].Inc(t.topic, 1)
		wordTopic[t.id].Inc(t.topic, 1)
		topicTotal.Inc(t.topic, 1)
	})
	if err != nil {
		return err
	}

	for d := range docTopic {
		if s.docTotal[d] != int64(len(c.Document(d))) {
			return errors.Errorf("docTotal[%d] = %d, document has %d tokens",
				d, s.docTotal[d], len(c.Document(d)))
		}
		if sum := s.docTopic[d].Sum(); sum != s.docTotal[d] {
			return errors.Errorf("docTopic[%d] sums to %d, docTotal = %d",
				d, sum, s.docTotal[d])
		}
		for t := 0; t < k; t++ {
			if docTopic[d][t] != s.docTopic[d][t] {
				return errors.Errorf("docTopic[%d][%d] = %d, expected %d",
					d, t, s.docTopic[d][t], docTopic[d][t])
			}
		}
	}
	for w := range wordTopic {
		for t := 0; t < k; t++ {
			if wordTopic[w][t] != s.wordTopic[w][t] {
				return errors.Errorf("topicWord[%d][%d] = %d, expected %d",
					t, w, s.wordTopic[w][t], wordTopic[w][t])
			}
		}
	}
	for t := 0; t < k; t++ {
		if topicTotal[t] != s.topicTotal[t] {
			return errors.Errorf("topicTotal[%d] = %d, expected %d",
				t, s.topicTotal[t], topicTotal[t])
		}
	}
	return nil
}
