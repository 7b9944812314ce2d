package hist

import (
	"fmt"
	"math"
)

// Sparse represents a histogram using Go map.  Zero bins are not
// stored.  It collects word counts of a topic before ranking them.
type Sparse map[int32]int64

func NewSparse() Sparse {
	return make(Sparse)
}

func (s Sparse) Clear() {
	for k := range s {
		delete(s, k)
	}
}

func (s Sparse) Add(o Hist) {
	o.ForEach(func(bin int, count int64) error {
		if count > 0 {
			s.Inc(bin, int(count))
		}
		return nil
	})
}

func (s Sparse) Len() int {
	return len(s)
}

func (s Sparse) Sum() int64 {
	var sum int64
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Sparse) At(bin int) int64 {
	return s[int32(bin)]
}

func (s Sparse) Inc(bin, count int) {
	if count <= 0 {
		panic(fmt.Sprintf("Inc(bin=%d, count=%d): count must > 0",
			bin, count))
	}
	if bin < 0 || bin > math.MaxInt32 {
		panic(fmt.Sprintf("bin (%d) out of range", bin))
	}
	b := int32(bin)
	if s[b] > math.MaxInt64-int64(count) {
		panic(fmt.Sprintf("s[%d] = %d overflow", bin, s[b]))
	}
	s[b] += int64(count)
}

func (s Sparse) Dec(bin, count int) {
	if count <= 0 {
		panic(fmt.Sprintf("Dec(bin=%d, count=%d): count must > 0",
			bin, count))
	}
	b := int32(bin)
	if s[b] < int64(count) {
		panic(fmt.Sprintf("s[%d] = %d underflow by %d", bin, s[b], count))
	}
	s[b] -= int64(count)
	if s[b] == 0 {
		delete(s, b)
	}
}

// ForEach visits non-zero bins in map order, which is unspecified.
func (s Sparse) ForEach(p func(bin int, count int64) error) error {
	for b, v := range s {
		if e := p(int(b), v); e != nil {
			return e
		}
	}
	return nil
}

func (s Sparse) Clone() Hist {
	n := NewSparse()
	for k, v := range s {
		n[k] = v
	}
	return n
}
