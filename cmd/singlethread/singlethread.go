// singlethread trains an LDA model by collapsed Gibbs sampling and
// prints topic assignments as it goes.
// Usage:
/*
  $GOPATH/bin/singlethread -logtostderr \
    -corpus=./testdata/corpus -topics=2 -passes=100 -show=symbols
*/
// With -vocab, every corpus line is raw text tokenized against the
// vocabulary; otherwise it is a whitespace-separated list of words.
// With -html, it serves a table of the learned topics after training.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/godist/ldagibbs/core/gibbs"
	"github.com/godist/ldagibbs/core/render"
	"github.com/godist/ldagibbs/core/utils"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func main() {
	flagAddr := flag.String("addr", "", "HTTP status page address, e.g. :6060")
	flagVocab := flag.String("vocab", "", "Vocabulary file for tokenizing raw text")
	flagCorpus := flag.String("corpus", "./testdata/corpus", "Corpus file")
	flagMinDocLen := flag.Int("minlen", 0, "Minimum document length")
	flagMaxDocLen := flag.Int("maxlen", 0, "Maximum document length")
	flagTopics := flag.Int("topics", 2, "Number of topics to be learned")
	flagPasses := flag.Int("passes", 100, "Gibbs sampling passes")
	flagSeed := flag.Int64("seed", 0, "Random seed; 0 means the current time")
	flagInitTopic := flag.Int("init_topic", -1,
		"Initial topic of all tokens; negative means uniformly random")
	flagShow := flag.String("show", "symbols", "Print assignments after each pass: symbols, tokens or none")
	flagInPlace := flag.Bool("inplace", false, "Overwrite the printed assignments after each pass")
	flagVerify := flag.Bool("verify", false, "Check count tables after each pass")
	flagTopFraction := flag.Float64("top", 1.0, "Fraction of topic mass printed per topic")
	flagMaxWordsPerTopic := flag.Int("len", 50, "Max # words shown per topic in HTML")
	flagHtml := flag.String("html", "", "Serve the topic table on this address after training")
	flag.Parse()

	var vocab []string
	if len(*flagVocab) > 0 {
		vocab = utils.LoadWordsOrDie(*flagVocab)
	}
	docs := utils.LoadDocumentsOrDie(*flagCorpus, vocab, *flagMinDocLen, *flagMaxDocLen)

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	glog.Infof("Random seed %d", seed)
	m, e := newModel(*flagTopics, docs, rand.New(rand.NewSource(seed)), *flagInitTopic)
	if e != nil {
		glog.Fatalf("Cannot create model: %v", e)
	}

	is := utils.NewIterations()
	if len(*flagAddr) > 0 {
		utils.EnableExpvar(*flagAddr, is)
	}

	show, e := newShowFunc(*flagShow, *flagInPlace)
	if e != nil {
		glog.Fatalf("%v", e)
	}

	sigs := make(chan os.Signal, 1)
	exit := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		for sig := range sigs {
			glog.Infof("Caught signal, will exit after the current pass ...")
			exit <- sig
		}
	}()

	done, e := train(m, *flagPasses, is, show, os.Stdout, *flagVerify, exit)
	if show != nil && *flagInPlace {
		fmt.Fprintln(os.Stdout)
	}
	if e != nil {
		glog.Fatalf("Training stopped after %d passes: %v", done, e)
	}
	glog.Infof("Done %d passes.", done)

	m.PrintTopicsTopNWords(os.Stdout, *flagTopFraction)

	if len(*flagHtml) > 0 {
		descs := utils.DescribeTopics(m, *flagMaxWordsPerTopic)
		http.Handle("/", newTopicsHandler(descs))
		glog.Infof("Listening on %s", *flagHtml)
		if e := http.ListenAndServe(*flagHtml, nil); e != nil {
			glog.Fatalf("ListenAndServe failed: %v", e)
		}
	}
}

func newModel(topics int, docs [][]string, rng *rand.Rand, initTopic int) (*gibbs.Model, error) {
	if initTopic < 0 {
		return gibbs.NewModel(topics, docs, rng)
	}
	return gibbs.NewModelWithInitializer(topics, docs, rng, gibbs.FixedTopic(initTopic))
}

type showFunc func(w io.Writer, m *gibbs.Model) error

func newShowFunc(show string, inPlace bool) (showFunc, error) {
	p := render.NewPrinter(inPlace)
	switch show {
	case "symbols":
		return p.Symbols, nil
	case "tokens":
		return p.Tokens, nil
	case "none", "":
		return nil, nil
	}
	return nil, errors.Errorf("unknown -show=%s", show)
}

// train sweeps m one pass at a time until passes are done or exit
// fires.  It returns the number of completed passes.  A nil show
// prints nothing.
func train(m *gibbs.Model, passes int, is *utils.Iterations, show showFunc,
	out io.Writer, verify bool, exit <-chan os.Signal) (int, error) {

	if show == nil {
		show = func(io.Writer, *gibbs.Model) error { return nil }
	}
	if e := show(out, m); e != nil {
		return 0, e
	}

	for pass := 0; pass < passes; pass++ {
		select {
		case <-exit:
			glog.Infof("Early terminated by signal.")
			return pass, nil
		default:
		}

		is.Start()
		m.Sweep(1)
		i := is.End(m.Changes())
		glog.V(1).Infof("Pass %04d done in %s, %d tokens reassigned",
			pass, i.Duration, i.Changes)

		if verify {
			if e := m.Verify(); e != nil {
				return pass + 1, errors.Wrapf(e, "pass %d", pass)
			}
		}
		if e := show(out, m); e != nil {
			return pass + 1, e
		}
	}
	return passes, nil
}
