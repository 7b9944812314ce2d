package hist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRanked(t *testing.T) {
	r := NewRanked(Sparse{})
	str := "[ ]"
	if fmt.Sprint(r) != str {
		t.Errorf("Expected %s, got %v", str, r)
	}

	r = NewRanked(Sparse{0: 7, 1: 2, 2: 1, 3: 10})
	str = "[ 3:10 0:7 1:2 2:1 ]"
	if fmt.Sprint(r) != str {
		t.Errorf("Expected %s, got %v", str, r)
	}
}

func TestRankedFromDenseDropsZeros(t *testing.T) {
	r := NewRanked(Dense{0, 3, 3, 0, 1})
	assert.Equal(t, []int32{1, 2, 4}, r.Bins)
	assert.Equal(t, []int64{3, 3, 1}, r.Counts)
}

func TestRankedTruncate(t *testing.T) {
	r := NewRanked(Dense{5, 1, 4}).Truncate(2)
	assert.Equal(t, "[ 0:5 2:4 ]", fmt.Sprint(r))

	r = NewRanked(Dense{5, 1, 4}).Truncate(10)
	assert.Equal(t, 3, r.Len())
}

func TestRankedTruncateMass(t *testing.T) {
	r := NewRanked(Dense{5, 1, 4}).TruncateMass(0.5, 10)
	assert.Equal(t, "[ 0:5 ]", fmt.Sprint(r))

	r = NewRanked(Dense{5, 1, 4}).TruncateMass(0.6, 10)
	assert.Equal(t, "[ 0:5 2:4 ]", fmt.Sprint(r))

	r = NewRanked(Dense{5, 1, 4}).TruncateMass(1.0, 10)
	assert.Equal(t, 3, r.Len())
}
