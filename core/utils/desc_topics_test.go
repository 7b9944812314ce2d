package utils

import (
	"math/rand"
	"testing"

	"github.com/godist/ldagibbs/core/gibbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeTopics(t *testing.T) {
	m, e := gibbs.NewModelWithInitializer(3, gibbs.CreateTestingDocuments(),
		rand.New(rand.NewSource(1)), gibbs.FixedTopic(0))
	require.NoError(t, e)

	descs := DescribeTopics(m, 2)
	require.Len(t, descs, 3)

	assert.Equal(t, 0, descs[0].Id)
	assert.Equal(t, int64(8), descs[0].Nt)
	assert.Equal(t, []TokenDesc{{"tiger", 2}, {"orange", 2}}, descs[0].Tokens)

	// Empty topics are described, not skipped.
	for topic := 1; topic < 3; topic++ {
		assert.Equal(t, topic, descs[topic].Id)
		assert.Equal(t, int64(0), descs[topic].Nt)
		assert.Empty(t, descs[topic].Tokens)
	}

	all := DescribeTopics(m, -1)
	assert.Len(t, all[0].Tokens, 4)
}

func TestDescribeTopicsAfterSweeps(t *testing.T) {
	m := gibbs.CreateTestingModel(9)
	m.Sweep(20)

	var total int64
	for _, d := range DescribeTopics(m, -1) {
		var sum int64
		for _, tok := range d.Tokens {
			sum += tok.Count
		}
		assert.Equal(t, d.Nt, sum)
		total += d.Nt
	}
	assert.Equal(t, int64(m.Corpus().Len()), total)
}
