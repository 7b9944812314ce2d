package hist

import (
	"fmt"
	"math"
)

// Dense is a plain histogram represented by a count array.  Its
// length is fixed at creation, so it represents per-topic counts
// where the number of topics is known.
type Dense []int64

func NewDense(dim int) Dense {
	if dim < 0 {
		panic(fmt.Sprintf("dim (%d) is negative", dim))
	}
	return make(Dense, dim)
}

func (d Dense) At(bin int) int64 {
	return d[bin]
}

func (d Dense) Inc(bin, count int) {
	if count < 0 {
		panic(fmt.Sprintf("count (%d) is negative", count))
	}
	if d[bin] > math.MaxInt64-int64(count) {
		panic(fmt.Sprintf("d[%d] = %d overflow", bin, d[bin]))
	}
	d[bin] += int64(count)
}

// Dec panics if d[bin] would become negative.  Callers rely on this to
// detect bookkeeping bugs instead of silently sampling from corrupted
// counts.
func (d Dense) Dec(bin, count int) {
	if count < 0 {
		panic(fmt.Sprintf("count (%d) is negative", count))
	}
	if d[bin] < int64(count) {
		panic(fmt.Sprintf("d[%d] = %d underflow by %d", bin, d[bin], count))
	}
	d[bin] -= int64(count)
}

func (d Dense) Len() int {
	return len(d)
}

func (d Dense) Sum() int64 {
	var s int64
	for _, v := range d {
		s += v
	}
	return s
}

func (d Dense) ForEach(p func(bin int, count int64) error) error {
	for i, v := range d {
		if e := p(i, v); e != nil {
			return e
		}
	}
	return nil
}

func (d Dense) Clone() Hist {
	n := NewDense(d.Len())
	copy(n, d)
	return n
}
