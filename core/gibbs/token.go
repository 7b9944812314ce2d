package gibbs

import "fmt"

// Token is one occurrence of a word in a document.  The word and the
// document are fixed when the corpus is built; the topic is changed
// only by Counts.Add during a sweep.
type Token struct {
	word     string
	id       int32 // vocabulary id of word
	doc      int
	topic    int
	detached bool // removed from Counts and waiting for a new topic
}

func (t *Token) Word() string {
	return t.word
}

func (t *Token) WordId() int32 {
	return t.id
}

func (t *Token) Doc() int {
	return t.doc
}

func (t *Token) Topic() int {
	return t.topic
}

func (t *Token) String() string {
	return fmt.Sprintf("<%d '%s'>", t.topic, t.word)
}
