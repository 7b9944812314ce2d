// Package hist provides count histograms indexed by small
// non-negative integers.  The Gibbs sampler keeps its sufficient
// statistics in them: a bin is a topic for document-topic, word-topic
// and global topic counts, and a word id when ranking the words of a
// topic.
package hist

type Hist interface {
	At(bin int) int64
	Inc(bin, count int)
	Dec(bin, count int)
	Len() int
	Sum() int64

	// ForEach access elements in the histogram one-by-one. For each
	// element <bin, count>, it calls p(bin, count).  If p returns
	// nil, it goes on to rest elements; otherwise, it stops the
	// traversal and returns the error from p.
	ForEach(p func(bin int, count int64) error) error

	Clone() Hist
}
