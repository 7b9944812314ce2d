// plot trains an LDA model and draws how it evolves:
//
//	trajectory.png  topic of every token after every -every passes
//	wdist.png       distribution, over passes, of how many occurrences
//	                of each -words word are in topic -topic
//	doclen.png      histogram of document lengths
//
// Usage:
/*
  $GOPATH/bin/plot -logtostderr -corpus=./testdata/corpus -topics=2 \
    -passes=1000 -words=apple,cat -outdir=/tmp
*/
package main

import (
	"flag"
	"math/rand"
	"path"
	"strings"

	"github.com/godist/ldagibbs/core/gibbs"
	"github.com/godist/ldagibbs/core/utils"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type options struct {
	topics int
	passes int
	every  int
	topic  int
	words  []string
	seed   int64
	outdir string
}

func main() {
	flagVocab := flag.String("vocab", "", "Vocabulary file for tokenizing raw text")
	flagCorpus := flag.String("corpus", "", "Corpus file")
	flagTopics := flag.Int("topics", 2, "Number of topics")
	flagPasses := flag.Int("passes", 1000, "Gibbs sampling passes")
	flagEvery := flag.Int("every", 10, "Record the trajectory every so many passes")
	flagTopic := flag.Int("topic", 0, "Topic whose word counts are plotted in wdist.png")
	flagWords := flag.String("words", "", "Comma-separated words for wdist.png; empty means all")
	flagSeed := flag.Int64("seed", 1, "Random seed")
	flagOut := flag.String("outdir", ".", "Output directory")
	flag.Parse()

	var vocab []string
	if len(*flagVocab) > 0 {
		vocab = utils.LoadWordsOrDie(*flagVocab)
	}
	docs := utils.LoadDocumentsOrDie(*flagCorpus, vocab, 0, 0)

	opts := &options{
		topics: *flagTopics,
		passes: *flagPasses,
		every:  *flagEvery,
		topic:  *flagTopic,
		seed:   *flagSeed,
		outdir: *flagOut,
	}
	if len(*flagWords) > 0 {
		opts.words = strings.Split(*flagWords, ",")
	}
	if e := run(docs, opts); e != nil {
		glog.Fatalf("%v", e)
	}
}

func run(docs [][]string, opts *options) error {
	m, e := gibbs.NewModel(opts.topics, docs, rand.New(rand.NewSource(opts.seed)))
	if e != nil {
		return errors.Wrap(e, "cannot create model")
	}
	if opts.topic < 0 || opts.topic >= opts.topics {
		return errors.Errorf("-topic=%d out of range [0, %d)", opts.topic, opts.topics)
	}
	if opts.every < 1 {
		opts.every = 1
	}
	words := opts.words
	if len(words) == 0 {
		words = m.Vocabulary().Tokens
	}
	for _, w := range words {
		if m.Vocabulary().Id(w) < 0 {
			return errors.Errorf("word %q not in corpus", w)
		}
	}

	tr := utils.NewTrajectory(m)
	tr.Record(0, m)
	series := make(map[string][]int, len(words))
	for pass := 1; pass <= opts.passes; pass++ {
		m.Sweep(1)
		if pass%opts.every == 0 {
			tr.Record(pass, m)
		}
		for _, w := range words {
			series[w] = append(series[w], int(m.WordTopicHist(w).At(opts.topic)))
		}
	}
	glog.Infof("Done %d passes.", opts.passes)

	p, e := utils.PlotTrajectory(tr, "Topic trajectory")
	if e != nil {
		return e
	}
	if e := save(p, opts.outdir, "trajectory.png"); e != nil {
		return e
	}

	if opts.passes > 0 {
		p, e = utils.PlotWordDists("Occurrences in topic", "Count", words, series)
		if e != nil {
			return e
		}
		if e := save(p, opts.outdir, "wdist.png"); e != nil {
			return e
		}
	}

	lens := make(plotter.Values, len(docs))
	for i, d := range docs {
		lens[i] = float64(len(d))
	}
	p, e = plotHist(lens, "Documents", "Document length", "# documents")
	if e != nil {
		return e
	}
	return save(p, opts.outdir, "doclen.png")
}

func plotHist(data plotter.Values, title, xLabel, yLabel string) (*plot.Plot, error) {
	p, e := plot.New()
	if e != nil {
		return nil, errors.Wrap(e, "plot.New failed")
	}

	bins := len(data)
	if bins > 50 {
		bins = 50
	}
	h, e := plotter.NewHist(data, bins)
	if e != nil {
		return nil, errors.Wrap(e, "plotter.NewHist failed")
	}
	p.Add(h)

	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p, nil
}

func save(p *plot.Plot, dir, name string) error {
	imageFile := path.Join(dir, name)
	glog.Infof("Plotting to %s ...", imageFile)
	if e := p.Save(9*vg.Inch, 6*vg.Inch, imageFile); e != nil {
		return errors.Wrapf(e, "cannot save image to %s", imageFile)
	}
	return nil
}
