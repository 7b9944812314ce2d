package gibbs

import (
	"math/rand"
	"strings"
)

const (
	testingV = 4
	testingK = 2

	testingTotalIterations = 110
)

// CreateTestingDocuments returns two fruit documents followed by two
// animal documents.
func CreateTestingDocuments() [][]string {
	return [][]string{
		{"apple", "orange"},
		{"orange", "apple"},
		{"cat", "tiger"},
		{"tiger", "cat"},
	}
}

// CreateTestingVocabulary creates a vocabulary with testingV words:
//
//	id:    0      1      2    3
//	word:  tiger  orange cat  apple
func CreateTestingVocabulary() (*Vocabulary, error) {
	r := strings.NewReader("apple 100\norange	whatever\n\ncat\ntiger")
	v := NewVocabulary()
	e := v.Load(r)
	return v, e
}

// CreateTestingModel creates a model of testingK topics over
// CreateTestingDocuments with random initial topics.
func CreateTestingModel(seed int64) *Model {
	m, e := NewModel(testingK, CreateTestingDocuments(),
		rand.New(rand.NewSource(seed)))
	if e != nil {
		panic("CreateTestingModel failed: " + e.Error())
	}
	return m
}

// CreateFixedTopicModel creates a model in which every token starts
// in topic 0:
//
//	document 0: a a b
//	T = 2, A = 1/2, B = 1
func CreateFixedTopicModel() *Model {
	m, e := NewModelWithInitializer(2, [][]string{{"a", "a", "b"}},
		rand.New(rand.NewSource(1)), FixedTopic(0))
	if e != nil {
		panic("CreateFixedTopicModel failed: " + e.Error())
	}
	return m
}
