package gibbs

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/godist/ldagibbs/core/hist"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Model binds a corpus, its vocabulary and count tables, and the
// smoothing constants of LDA.  A = 1/T is the topic-word prior mass
// and B = 1/D the document-topic prior mass; both are fixed when the
// model is created.
//
// Views returned by Model are snapshots and never alias sampler
// state.
type Model struct {
	numTopics int
	a, b      float64
	vocab     *Vocabulary
	corpus    *Corpus
	counts    *Counts
	sampler   *Sampler
}

// NewModel creates a model of numTopics topics over documents with
// uniformly random initial topics.  rng drives both the
// initialization and all subsequent sweeps.
func NewModel(numTopics int, documents [][]string, rng *rand.Rand) (*Model, error) {
	if numTopics < 1 {
		return nil, errors.Errorf("numTopics = %d, less than 1", numTopics)
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	return NewModelWithInitializer(numTopics, documents, rng,
		RandomTopics(numTopics, rng))
}

// NewModelWithInitializer is like NewModel, but takes the initial
// topic of every token from init.
func NewModelWithInitializer(numTopics int, documents [][]string,
	rng *rand.Rand, init Initializer) (*Model, error) {

	if rng == nil {
		return nil, errors.New("nil random source")
	}
	vocab := NewVocabularyFromDocuments(documents)
	corpus, e := NewCorpus(documents, vocab, numTopics, init)
	if e != nil {
		return nil, errors.Wrap(e, "cannot build corpus")
	}

	m := &Model{
		numTopics: numTopics,
		a:         1.0 / float64(numTopics),
		b:         1.0 / float64(corpus.NumDocs()),
		vocab:     vocab,
		corpus:    corpus,
	}
	m.counts = NewCounts(corpus, vocab.Len(), numTopics, m.a, m.b)
	m.sampler = NewSampler(corpus, m.counts, rng)

	glog.V(1).Infof("Created model: %d topics, %d documents, %d tokens, "+
		"%d words, A = %g, B = %g", numTopics, corpus.NumDocs(),
		corpus.Len(), vocab.Len(), m.a, m.b)
	return m, nil
}

func (m *Model) NumTopics() int {
	return m.numTopics
}

func (m *Model) NumDocs() int {
	return m.corpus.NumDocs()
}

// A returns the topic-word smoothing constant.
func (m *Model) A() float64 {
	return m.a
}

// B returns the document-topic smoothing constant.
func (m *Model) B() float64 {
	return m.b
}

func (m *Model) Vocabulary() *Vocabulary {
	return m.vocab
}

func (m *Model) Corpus() *Corpus {
	return m.corpus
}

func (m *Model) Counts() *Counts {
	return m.counts
}

// Sweep resamples the topic of every token passes times.  It must not
// be called concurrently with any other method of m.
func (m *Model) Sweep(passes int) {
	m.sampler.Sweep(passes)
}

// Changes returns the number of tokens reassigned by the most recent
// pass.
func (m *Model) Changes() int {
	return m.sampler.Changes()
}

// DocumentTopicDist returns the smoothed topic distribution of
// document d, (n_dt + B) / (n_d + T*B).
func (m *Model) DocumentTopicDist(d int) []float64 {
	dist := make([]float64, m.numTopics)
	norm := 1.0 / (float64(m.counts.DocTotal(d)) + float64(m.numTopics)*m.b)
	for t := range dist {
		dist[t] = (float64(m.counts.DocTopic(d, t)) + m.b) * norm
	}
	return dist
}

// DocumentTopicDists returns DocumentTopicDist of every document.
func (m *Model) DocumentTopicDists() [][]float64 {
	dists := make([][]float64, m.NumDocs())
	for d := range dists {
		dists[d] = m.DocumentTopicDist(d)
	}
	return dists
}

// TopicWordDist returns the smoothed word distribution of topic t,
// (n_tw + A) / (n_t + |V|*A).
func (m *Model) TopicWordDist(t int) map[string]float64 {
	dist := make(map[string]float64, m.vocab.Len())
	norm := 1.0 / (float64(m.counts.TopicTotal(t)) +
		float64(m.vocab.Len())*m.a)
	for w, word := range m.vocab.Tokens {
		dist[word] = (float64(m.counts.TopicWord(t, int32(w))) + m.a) * norm
	}
	return dist
}

// TopicWordDists returns TopicWordDist of every topic.
func (m *Model) TopicWordDists() []map[string]float64 {
	dists := make([]map[string]float64, m.numTopics)
	for t := range dists {
		dists[t] = m.TopicWordDist(t)
	}
	return dists
}

// TokenTopics returns the current topics of tokens in document d.
func (m *Model) TokenTopics(d int) []int {
	doc := m.corpus.Document(d)
	topics := make([]int, len(doc))
	for i, t := range doc {
		topics[i] = t.Topic()
	}
	return topics
}

// AllTokenTopics returns TokenTopics of every document.
func (m *Model) AllTokenTopics() [][]int {
	topics := make([][]int, m.NumDocs())
	for d := range topics {
		topics[d] = m.TokenTopics(d)
	}
	return topics
}

// WordTopicHist counts the occurrences of word currently assigned to
// each topic by scanning the corpus.  A word that never occurs gets
// an all-zero histogram.
func (m *Model) WordTopicHist(word string) hist.Dense {
	h := hist.NewDense(m.numTopics)
	m.corpus.ForEach(func(t *Token) {
		if t.Word() == word {
			h.Inc(t.Topic(), 1)
		}
	})
	return h
}

// GetTopWords returns ids of words in topic t and their counts, in
// descending order of count.
func (m *Model) GetTopWords(t int) *hist.Ranked {
	words := hist.NewSparse()
	for w := range m.vocab.Tokens {
		if c := m.counts.TopicWord(t, int32(w)); c > 0 {
			words.Inc(w, int(c))
		}
	}
	return hist.NewRanked(words)
}

// GetTopNWords returns the top words of topic t whose counts add up
// to at least fraction of the topic's tokens.
func (m *Model) GetTopNWords(t int, fraction float64) *hist.Ranked {
	return m.GetTopWords(t).TruncateMass(fraction, m.counts.TopicTotal(t))
}

func (m *Model) PrintTopics(w io.Writer) {
	m.PrintTopicsTopNWords(w, 1.0)
}

// PrintTopicsTopNWords prints each topic as words with their counts in
// descending order.  Parameter fraction is passed to GetTopNWords and
// controls how many words are printed for each topic.
func (m *Model) PrintTopicsTopNWords(w io.Writer, fraction float64) {
	for t := 0; t < m.numTopics; t++ {
		fmt.Fprintf(w, "Topic %05d Nt %05d:", t, m.counts.TopicTotal(t))
		m.GetTopNWords(t, fraction).ForEach(func(word int, count int64) error {
			fmt.Fprintf(w, " %s (%d)", m.vocab.Token(int32(word)), count)
			return nil
		})
		fmt.Fprintf(w, "\n")
	}
}

// Verify checks that the count tables agree with the current topic
// assignments.
func (m *Model) Verify() error {
	return m.counts.Verify(m.corpus)
}
