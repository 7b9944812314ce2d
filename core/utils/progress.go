package utils

import (
	"bytes"
	"encoding/json"
	"expvar"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Iteration records one sampling pass.  Changes is the number of
// tokens that got a new topic.
type Iteration struct {
	StartTime time.Time
	Duration  time.Duration
	Changes   int
	done      bool
}

// Iterations is the training history.  It is appended by the
// training loop and read by HTTP handlers, so access is serialized.
type Iterations struct {
	mu    sync.Mutex
	iters []Iteration
}

func NewIterations() *Iterations {
	return &Iterations{iters: make([]Iteration, 0)}
}

// String implements expvar.Var, which requires JSON.
func (is *Iterations) String() string {
	b, e := json.Marshal(is.Snapshot())
	if e != nil {
		return strconv.Quote(e.Error())
	}
	return string(b)
}

// WriteTo prints one line per iteration.
func (is *Iterations) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for i, iter := range is.Snapshot() {
		fmt.Fprintf(&buf, "%05d: %s\t%s\t%d\n",
			i, iter.StartTime.Format(time.RFC3339), iter.Duration, iter.Changes)
	}
	return buf.WriteTo(w)
}

func (is *Iterations) Start() {
	is.mu.Lock()
	defer is.mu.Unlock()
	is.iters = append(is.iters, Iteration{StartTime: time.Now()})
}

// End completes the iteration most recently started.
func (is *Iterations) End(changes int) Iteration {
	is.mu.Lock()
	defer is.mu.Unlock()
	if len(is.iters) == 0 {
		panic("Iterations.End called before Start")
	}
	i := &is.iters[len(is.iters)-1]
	i.Duration = time.Since(i.StartTime)
	i.Changes = changes
	i.done = true
	return *i
}

func (is *Iterations) Len() int {
	is.mu.Lock()
	defer is.mu.Unlock()
	return len(is.iters)
}

// Snapshot returns a copy of all iterations.
func (is *Iterations) Snapshot() []Iteration {
	is.mu.Lock()
	defer is.mu.Unlock()
	return append([]Iteration(nil), is.iters...)
}

// EnableExpvar publishes is as expvar "Iterations", registers figure
// handlers under /progress/ and serves the default mux on addr in
// the background.  It must be called at most once per process.
func EnableExpvar(addr string, is *Iterations) {
	expvar.Publish("Iterations", is)
	http.Handle("/progress/duration", newDurationFigureHandler(is))
	http.Handle("/progress/changes", newChangesFigureHandler(is))

	go func() {
		if e := http.ListenAndServe(addr, nil); e != nil {
			glog.Fatalf("ListenAndServe on %s failed: %v", addr, e)
		}
	}()
	glog.Infof("Serving progress on %s", addr)
}

func newDurationFigureHandler(is *Iterations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iters := is.Snapshot()
		ps := make(plotter.XYs, 0, len(iters))
		for i, iter := range iters {
			if iter.done { // Skip the pass still running.
				ps = append(ps, plotter.XY{X: float64(i), Y: iter.Duration.Seconds()})
			}
		}
		serveFigure(w, ps, "Pass", "Duration (seconds)")
	}
}

func newChangesFigureHandler(is *Iterations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iters := is.Snapshot()
		ps := make(plotter.XYs, 0, len(iters))
		for i, iter := range iters {
			if iter.done {
				ps = append(ps, plotter.XY{X: float64(i), Y: float64(iter.Changes)})
			}
		}
		serveFigure(w, ps, "Pass", "Reassigned tokens")
	}
}

func serveFigure(w http.ResponseWriter, ps plotter.XYs, xLabel, yLabel string) {
	if len(ps) == 0 {
		http.Error(w, "no pass completed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if e := plotFigure(w, ps, xLabel, yLabel); e != nil {
		http.Error(w, e.Error(), http.StatusInternalServerError)
	}
}

func plotFigure(w io.Writer, ps plotter.XYs, xLabel, yLabel string) error {
	p, e := plot.New()
	if e != nil {
		return errors.Wrap(e, "plot.New failed")
	}

	p.Title.Text = strings.Join(os.Args, " ")
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	p.Add(plotter.NewGrid())
	if e := plotutil.AddLinePoints(p, "", ps); e != nil {
		return errors.Wrap(e, "plotutil.AddLinePoints failed")
	}

	wt, e := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if e != nil {
		return errors.Wrap(e, "cannot create png canvas")
	}
	_, e = wt.WriteTo(w)
	return e
}
