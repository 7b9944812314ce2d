package hist

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDense(t *testing.T) {
	h := NewDense(2)
	h_str := "[0 0]"
	if h_str != fmt.Sprint(h) {
		t.Error("NewDense(2), expected", h_str, "got", h)
	}
}

func TestDenseClone(t *testing.T) {
	s := NewDense(0)
	c := s.Clone()
	if c.Len() != 0 {
		t.Errorf("Expected %v, got %v", s, c)
	}

	s = Dense{2, 0}
	c = s.Clone()
	if !reflect.DeepEqual(s, c) {
		t.Errorf("Expected %v, got %v", s, c)
	}
	c.Inc(1, 1)
	if s[1] != 0 {
		t.Errorf("Clone shares storage with the original: %v", s)
	}
}

func TestDenseIncDec(t *testing.T) {
	d := NewDense(3)
	d.Inc(2, 5)
	d.Dec(2, 2)
	assert.Equal(t, Dense{0, 0, 3}, d)
	assert.EqualValues(t, 3, d.Sum())

	d.Dec(2, 3)
	assert.EqualValues(t, 0, d.At(2))
}

func TestDenseUnderflow(t *testing.T) {
	d := Dense{1, 0}
	assert.Panics(t, func() { d.Dec(1, 1) })
	assert.Panics(t, func() { d.Dec(0, 2) })
	assert.Panics(t, func() { d.Inc(0, -1) })
	assert.Equal(t, Dense{1, 0}, d)
}
