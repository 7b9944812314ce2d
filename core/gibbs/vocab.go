package gibbs

import (
	"bufio"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"sort"
	"strings"
)

// Vocabulary maintains the bi-directional mapping between words and
// ids.  Ids are in the range of [0, N), where N is the vocabulary
// size.  The mapping is stored as a sorted slice of words and the
// position of a word is its id.  Sorting order is the ascending order
// of FNV-1a hashes, then lexical order; it does not depend on the
// order in which words were seen, so the same set of words always
// gets the same ids.
type Vocabulary struct {
	Tokens []string
	hasher hash.Hash64
	ids    map[string]int
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		Tokens: make([]string, 0),
		hasher: fnv.New64a(),
	}
}

// NewVocabularyFromDocuments builds the vocabulary implied by the
// union of words in documents.
func NewVocabularyFromDocuments(documents [][]string) *Vocabulary {
	v := NewVocabulary()
	seen := make(map[string]bool)
	for _, doc := range documents {
		for _, w := range doc {
			if !seen[w] {
				seen[w] = true
				v.Tokens = append(v.Tokens, w)
			}
		}
	}
	sort.Sort(v)
	v.buildIdMap()
	return v
}

// Load reads one word per line, taking only the first column.
// Duplicated words are kept once.
func (v *Vocabulary) Load(reader io.Reader) error {
	seen := make(map[string]bool, len(v.Tokens))
	for _, w := range v.Tokens {
		seen[w] = true
	}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		fs := strings.Fields(scanner.Text())
		if len(fs) > 0 && !seen[fs[0]] {
			seen[fs[0]] = true
			v.Tokens = append(v.Tokens, fs[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	sort.Sort(v)
	v.buildIdMap()
	return nil
}

func (v *Vocabulary) buildIdMap() {
	v.ids = make(map[string]int, len(v.Tokens))
	for i := range v.Tokens {
		v.ids[v.Tokens[i]] = i
	}
}

func (v *Vocabulary) Len() int {
	return len(v.Tokens)
}

// fingerprint returns the FNV-1a hash of s.
func (v *Vocabulary) fingerprint(s string) uint64 {
	v.hasher.Write([]byte(s))
	sum := v.hasher.Sum64()
	v.hasher.Reset()
	return sum
}

func (v *Vocabulary) Less(i, j int) bool {
	l, r := v.fingerprint(v.Tokens[i]), v.fingerprint(v.Tokens[j])
	if l == r {
		return v.Tokens[i] < v.Tokens[j]
	}
	return l < r
}

func (v *Vocabulary) Swap(i, j int) {
	v.Tokens[i], v.Tokens[j] = v.Tokens[j], v.Tokens[i]
}

func (v *Vocabulary) Token(id int32) string {
	if int(id) < 0 || int(id) >= len(v.Tokens) {
		panic(fmt.Sprintf("id=%d out of range [0, %d)", id, len(v.Tokens)))
	}
	return v.Tokens[id]
}

// Id returns the index of word.  If word is not in the vocabulary, it
// returns a negative value.
func (v *Vocabulary) Id(word string) int32 {
	if v.ids == nil {
		v.buildIdMap()
	}
	if id, ok := v.ids[word]; ok {
		return int32(id)
	}
	return int32(-1)
}
