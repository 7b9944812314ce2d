package utils

import (
	"sort"

	"github.com/godist/ldagibbs/core/gibbs"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// Trajectory records the topic of every token after each recorded
// pass.  Viewed as a grid, column c is the c-th snapshot and row r
// the r-th token in sweep order, so it can be drawn directly as a
// heat map.
type Trajectory struct {
	numTopics int
	numTokens int
	passes    []int
	snapshots [][]int
}

func NewTrajectory(m *gibbs.Model) *Trajectory {
	return &Trajectory{
		numTopics: m.NumTopics(),
		numTokens: m.Corpus().Len(),
	}
}

// Record appends the current assignment of m, labelled with pass.
func (tr *Trajectory) Record(pass int, m *gibbs.Model) {
	s := make([]int, 0, tr.numTokens)
	m.Corpus().ForEach(func(t *gibbs.Token) {
		s = append(s, t.Topic())
	})
	if len(s) != tr.numTokens {
		panic("Trajectory.Record: model does not match trajectory")
	}
	tr.passes = append(tr.passes, pass)
	tr.snapshots = append(tr.snapshots, s)
}

func (tr *Trajectory) Len() int {
	return len(tr.snapshots)
}

// Dims, Z, X and Y implement plotter.GridXYZ.
func (tr *Trajectory) Dims() (c, r int) {
	return len(tr.snapshots), tr.numTokens
}

func (tr *Trajectory) Z(c, r int) float64 {
	return float64(tr.snapshots[c][r])
}

func (tr *Trajectory) X(c int) float64 {
	return float64(tr.passes[c])
}

func (tr *Trajectory) Y(r int) float64 {
	return float64(r)
}

// Min and Max fix the color range to all topics, so colors do not
// shift when some topic is unused.
func (tr *Trajectory) Min() float64 {
	return 0
}

func (tr *Trajectory) Max() float64 {
	return float64(tr.numTopics - 1)
}

// PlotTrajectory draws tr as a heat map with passes on the X axis
// and tokens on the Y axis.
func PlotTrajectory(tr *Trajectory, title string) (*plot.Plot, error) {
	if tr.Len() == 0 {
		return nil, errors.New("empty trajectory")
	}
	p, e := plot.New()
	if e != nil {
		return nil, errors.Wrap(e, "plot.New failed")
	}
	p.Title.Text = title
	p.X.Label.Text = "Pass"
	p.Y.Label.Text = "Token"

	colors := tr.numTopics
	if colors < 2 {
		colors = 2
	}
	p.Add(plotter.NewHeatMap(tr, palette.Heat(colors, 1)))
	return p, nil
}

// WordDist returns the empirical distribution of samples, with X the
// distinct sample values in ascending order and Y their frequencies.
func WordDist(samples []int) plotter.XYs {
	counts := make(map[int]int)
	for _, s := range samples {
		counts[s]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	xys := make(plotter.XYs, len(keys))
	for i, k := range keys {
		xys[i].X = float64(k)
		xys[i].Y = float64(counts[k]) / float64(len(samples))
	}
	return xys
}

// PlotWordDists draws the WordDist of each series as a line with
// points, labelled by its name.  Series are drawn in the order of
// names.
func PlotWordDists(title, xLabel string, names []string, series map[string][]int) (*plot.Plot, error) {
	p, e := plot.New()
	if e != nil {
		return nil, errors.Wrap(e, "plot.New failed")
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	vs := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		samples, ok := series[name]
		if !ok || len(samples) == 0 {
			return nil, errors.Errorf("no samples of %s", name)
		}
		vs = append(vs, name, WordDist(samples))
	}
	if e := plotutil.AddLinePoints(p, vs...); e != nil {
		return nil, errors.Wrap(e, "plotutil.AddLinePoints failed")
	}
	return p, nil
}
