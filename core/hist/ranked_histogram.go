package hist

import (
	"fmt"
	"sort"
	"strings"
)

// Ranked is a read-only snapshot of a histogram as two parallel
// slices, with Counts in descending order and ties broken by
// ascending bin.  Zero bins are dropped.
type Ranked struct {
	Bins   []int32
	Counts []int64
}

func NewRanked(h Hist) *Ranked {
	r := &Ranked{
		Bins:   make([]int32, 0, h.Len()),
		Counts: make([]int64, 0, h.Len()),
	}
	h.ForEach(func(bin int, count int64) error {
		if count > 0 {
			r.Bins = append(r.Bins, int32(bin))
			r.Counts = append(r.Counts, count)
		}
		return nil
	})
	sort.Sort(r)
	return r
}

func (r *Ranked) Len() int {
	return len(r.Bins)
}

func (r *Ranked) Less(i, j int) bool {
	return r.Counts[i] > r.Counts[j] ||
		(r.Counts[i] == r.Counts[j] && r.Bins[i] < r.Bins[j])
}

func (r *Ranked) Swap(i, j int) {
	r.Bins[i], r.Bins[j] = r.Bins[j], r.Bins[i]
	r.Counts[i], r.Counts[j] = r.Counts[j], r.Counts[i]
}

// Truncate keeps the n largest bins.
func (r *Ranked) Truncate(n int) *Ranked {
	if n >= 0 && n < r.Len() {
		r.Bins = r.Bins[:n]
		r.Counts = r.Counts[:n]
	}
	return r
}

// TruncateMass keeps the shortest prefix whose counts add up to at
// least fraction of total.
func (r *Ranked) TruncateMass(fraction float64, total int64) *Ranked {
	var accum int64
	for i := range r.Counts {
		accum += r.Counts[i]
		if float64(accum) >= float64(total)*fraction {
			return r.Truncate(i + 1)
		}
	}
	return r
}

func (r *Ranked) ForEach(p func(bin int, count int64) error) error {
	for i := range r.Bins {
		if e := p(int(r.Bins[i]), r.Counts[i]); e != nil {
			return e
		}
	}
	return nil
}

// String prints a Ranked variable the same format as a slice.
func (r Ranked) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for i, bin := range r.Bins {
		fmt.Fprintf(&b, "%d:%d ", bin, r.Counts[i])
	}
	b.WriteString("]")
	return b.String()
}
