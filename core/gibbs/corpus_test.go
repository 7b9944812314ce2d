package gibbs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCorpus(t *testing.T) {
	docs := CreateTestingDocuments()
	v := NewVocabularyFromDocuments(docs)
	c, e := NewCorpus(docs, v, testingK, RandomTopics(testingK, rand.New(rand.NewSource(1))))
	require.NoError(t, e)

	assert.Equal(t, len(docs), c.NumDocs())
	assert.Equal(t, 8, c.Len())
	for d, words := range docs {
		doc := c.Document(d)
		require.Equal(t, len(words), len(doc))
		for i, tok := range doc {
			assert.Equal(t, words[i], tok.Word())
			assert.Equal(t, v.Id(words[i]), tok.WordId())
			assert.Equal(t, d, tok.Doc())
			assert.True(t, tok.Topic() >= 0 && tok.Topic() < testingK)
		}
	}
}

func TestCorpusForEachOrder(t *testing.T) {
	docs := CreateTestingDocuments()
	c, e := NewCorpus(docs, NewVocabularyFromDocuments(docs), 1, FixedTopic(0))
	require.NoError(t, e)

	var words []string
	c.ForEach(func(tok *Token) { words = append(words, tok.Word()) })
	assert.Equal(t,
		[]string{"apple", "orange", "orange", "apple", "cat", "tiger", "tiger", "cat"},
		words)
}

func TestCorpusInitializerPositions(t *testing.T) {
	docs := [][]string{{"a", "b", "c"}, {"a"}}
	c, e := NewCorpus(docs, NewVocabularyFromDocuments(docs), 3,
		func(doc, pos int) int { return (doc + pos) % 3 })
	require.NoError(t, e)

	assert.Equal(t, 0, c.Document(0)[0].Topic())
	assert.Equal(t, 1, c.Document(0)[1].Topic())
	assert.Equal(t, 2, c.Document(0)[2].Topic())
	assert.Equal(t, 1, c.Document(1)[0].Topic())
}

func TestNewCorpusErrors(t *testing.T) {
	docs := CreateTestingDocuments()
	v := NewVocabularyFromDocuments(docs)

	_, e := NewCorpus(docs, v, 0, FixedTopic(0))
	assert.Error(t, e, "zero topics")

	_, e = NewCorpus(nil, v, testingK, FixedTopic(0))
	assert.Error(t, e, "no documents")

	_, e = NewCorpus([][]string{{"apple", "banana"}}, v, testingK, FixedTopic(0))
	if assert.Error(t, e, "unknown word") {
		assert.Contains(t, e.Error(), "banana")
	}

	_, e = NewCorpus(docs, v, testingK, FixedTopic(testingK))
	assert.Error(t, e, "initial topic out of range")

	_, e = NewCorpus(docs, v, testingK, FixedTopic(-1))
	assert.Error(t, e, "negative initial topic")
}

func TestCorpusEmptyDocument(t *testing.T) {
	docs := [][]string{{"a"}, {}}
	c, e := NewCorpus(docs, NewVocabularyFromDocuments(docs), 2, FixedTopic(1))
	require.NoError(t, e)
	assert.Equal(t, 2, c.NumDocs())
	assert.Equal(t, 1, c.Len())
	assert.Empty(t, c.Document(1))
}
