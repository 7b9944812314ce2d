package utils

import (
	"bytes"
	"math/rand"
	"path"
	"testing"

	"github.com/godist/ldagibbs/core/gibbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestTrajectoryRecord(t *testing.T) {
	m, e := gibbs.NewModelWithInitializer(2, gibbs.CreateTestingDocuments(),
		rand.New(rand.NewSource(1)), gibbs.FixedTopic(1))
	require.NoError(t, e)

	tr := NewTrajectory(m)
	tr.Record(0, m)
	m.Sweep(1)
	tr.Record(1, m)

	var _ plotter.GridXYZ = tr
	c, r := tr.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 8, r)
	assert.Equal(t, 2, tr.Len())

	for row := 0; row < r; row++ {
		assert.Equal(t, 1.0, tr.Z(0, row))
	}
	row := 0
	for d := 0; d < m.NumDocs(); d++ {
		for _, topic := range m.TokenTopics(d) {
			assert.Equal(t, float64(topic), tr.Z(1, row))
			row++
		}
	}

	assert.Equal(t, 1.0, tr.X(1))
	assert.Equal(t, 7.0, tr.Y(7))
	assert.Equal(t, 0.0, tr.Min())
	assert.Equal(t, 1.0, tr.Max())
}

func TestPlotTrajectory(t *testing.T) {
	m := gibbs.CreateTestingModel(1)
	tr := NewTrajectory(m)

	_, e := PlotTrajectory(tr, "empty")
	assert.Error(t, e)

	for pass := 0; pass < 10; pass++ {
		m.Sweep(1)
		tr.Record(pass, m)
	}
	p, e := PlotTrajectory(tr, "trajectory")
	require.NoError(t, e)

	filename := path.Join(t.TempDir(), "trajectory.png")
	assert.NoError(t, p.Save(4*vg.Inch, 4*vg.Inch, filename))
}

func TestWordDist(t *testing.T) {
	xys := WordDist([]int{2, 0, 2, 2})
	assert.Equal(t, plotter.XYs{{X: 0, Y: 0.25}, {X: 2, Y: 0.75}}, xys)
	assert.Empty(t, WordDist(nil))
}

func TestPlotWordDists(t *testing.T) {
	series := map[string][]int{
		"apple": {0, 1, 2, 2},
		"cat":   {2, 2, 2, 1},
	}
	p, e := PlotWordDists("word topic counts", "count", []string{"apple", "cat"}, series)
	require.NoError(t, e)

	wt, e := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
	require.NoError(t, e)
	var buf bytes.Buffer
	_, e = wt.WriteTo(&buf)
	require.NoError(t, e)
	assert.True(t, buf.Len() > 0)

	_, e = PlotWordDists("", "", []string{"tiger"}, series)
	assert.Error(t, e)
}
