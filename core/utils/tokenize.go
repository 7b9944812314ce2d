package utils

import "regexp"

// Tokenizer turns raw text into documents over a fixed vocabulary.
// Each vocabulary word is matched as a literal, case-insensitive
// substring, so "cat" also counts the "Cat" in "Catalog".
type Tokenizer struct {
	words    []string
	patterns []*regexp.Regexp
}

// NewTokenizer compiles one pattern per word.  Empty words are
// ignored.
func NewTokenizer(vocab []string) *Tokenizer {
	t := &Tokenizer{}
	for _, w := range vocab {
		if len(w) == 0 {
			continue
		}
		t.words = append(t.words, w)
		t.patterns = append(t.patterns, WordPattern(w))
	}
	return t
}

// WordPattern matches word literally, ignoring case.
func WordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(word))
}

// Tokenize returns every vocabulary word repeated as many times as it
// occurs in text.  Output is grouped by word in vocabulary order, not
// in the order the words appear in text.
func (t *Tokenizer) Tokenize(text string) []string {
	doc := make([]string, 0)
	for i, p := range t.patterns {
		for n := len(p.FindAllStringIndex(text, -1)); n > 0; n-- {
			doc = append(doc, t.words[i])
		}
	}
	return doc
}

// Tokenize tokenizes each of texts against vocab.
func Tokenize(texts []string, vocab []string) [][]string {
	t := NewTokenizer(vocab)
	docs := make([][]string, len(texts))
	for i, text := range texts {
		docs[i] = t.Tokenize(text)
	}
	return docs
}
