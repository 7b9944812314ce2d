package gibbs

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Initializer returns the initial topic of the pos-th token in
// document doc.
type Initializer func(doc, pos int) int

// RandomTopics draws every initial topic uniformly from [0,
// numTopics).
func RandomTopics(numTopics int, rng *rand.Rand) Initializer {
	return func(_, _ int) int {
		return rng.Intn(numTopics)
	}
}

// FixedTopic assigns the same initial topic to every token.
func FixedTopic(topic int) Initializer {
	return func(_, _ int) int {
		return topic
	}
}

// Corpus holds the tokens of all documents.  Its shape never changes
// after NewCorpus; sweeps visit documents in order and tokens in
// their document order.
type Corpus struct {
	docs      [][]*Token
	numTokens int
}

// NewCorpus creates one Token per word occurrence.  Document ids are
// positions in documents.  It fails if documents is empty, if a word
// is not in vocab, or if init returns a topic out of [0, numTopics).
func NewCorpus(documents [][]string, vocab *Vocabulary, numTopics int,
	init Initializer) (*Corpus, error) {

	if numTopics < 1 {
		return nil, errors.Errorf("numTopics = %d, less than 1", numTopics)
	}
	if len(documents) == 0 {
		return nil, errors.New("corpus contains no document")
	}

	c := &Corpus{docs: make([][]*Token, len(documents))}
	for d, words := range documents {
		c.docs[d] = make([]*Token, len(words))
		for i, w := range words {
			id := vocab.Id(w)
			if id < 0 {
				return nil, errors.Errorf(
					"document %d position %d: word %q not in vocabulary", d, i, w)
			}
			topic := init(d, i)
			if topic < 0 || topic >= numTopics {
				return nil, errors.Errorf(
					"document %d position %d: initial topic %d out of range [0, %d)",
					d, i, topic, numTopics)
			}
			c.docs[d][i] = &Token{word: w, id: id, doc: d, topic: topic}
		}
		c.numTokens += len(words)
	}
	return c, nil
}

func (c *Corpus) NumDocs() int {
	return len(c.docs)
}

// Len returns the total number of tokens.
func (c *Corpus) Len() int {
	return c.numTokens
}

// Document returns the tokens of document d.  Callers must not modify
// the returned slice.
func (c *Corpus) Document(d int) []*Token {
	return c.docs[d]
}

// ForEach calls f on every token in sweep order.
func (c *Corpus) ForEach(f func(t *Token)) {
	for _, doc := range c.docs {
		for _, t := range doc {
			f(t)
		}
	}
}
