package hist

import (
	"errors"
	"fmt"
	"testing"
)

func checkHist(h Hist, exp string) error {
	h.Inc(0, 1)
	h.Inc(1, 2)

	l := 0
	if e := h.ForEach(func(bin int, count int64) error {
		if bin+1 != int(count) {
			return errors.New("Wrong content")
		}
		l++
		return nil
	}); e != nil {
		return fmt.Errorf("Unexpected error: %v", e)
	}
	if l != h.Len() {
		return fmt.Errorf("Expecting len=%d, got %d", h.Len(), l)
	}
	if h.Sum() != 3 {
		return fmt.Errorf("Expecting sum=3, got %d", h.Sum())
	}

	if e := h.ForEach(func(bin int, count int64) error {
		return fmt.Errorf("%d %d ", bin, count)
	}); exp != "" && fmt.Sprint(e) != exp {
		return fmt.Errorf("Expecting %s; got: %v", exp, e)
	}

	return nil
}

func TestDenseIsHist(t *testing.T) {
	var d Hist = NewDense(2)
	if e := checkHist(d, "0 1 "); e != nil {
		t.Errorf("%v", e)
	}
}

func TestSparseIsHist(t *testing.T) {
	var s Hist = NewSparse()
	// Map iteration order is unspecified, so the first visited bin is
	// not checked.
	if e := checkHist(s, ""); e != nil {
		t.Errorf("%v", e)
	}
}
