package utils

import (
	"bufio"
	"io"
	"os"
	"path"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	cmprs "github.com/wangkuiyi/compress_io"
)

// compression returns the extension that compress_io understands, or
// "" for files to be read as plain text.
func compression(filename string) string {
	switch ext := path.Ext(filename); ext {
	case ".gz", ".bz2":
		return ext
	}
	return ""
}

// scanLines calls f on every line of a plain, gzip or bzip2 file.
func scanLines(filename string, f func(line string)) error {
	in, e := os.Open(filename)
	if e != nil {
		return errors.Wrapf(e, "cannot open %s", filename)
	}
	defer in.Close()

	r := cmprs.NewReader(in, e, compression(filename))
	if r == nil {
		return errors.Errorf("cannot decompress %s", filename)
	}
	defer r.Close()

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for s.Scan() {
		f(s.Text())
	}
	return errors.Wrapf(s.Err(), "reading %s", filename)
}

// LoadWords reads the first column of every non-blank line.  Words
// keep their order in the file; repeated words are kept once.
func LoadWords(filename string) ([]string, error) {
	words := make([]string, 0)
	seen := make(map[string]bool)
	e := scanLines(filename, func(line string) {
		if fs := strings.Fields(line); len(fs) > 0 && !seen[fs[0]] {
			seen[fs[0]] = true
			words = append(words, fs[0])
		}
	})
	if e != nil {
		return nil, e
	}
	return words, nil
}

func LoadWordsOrDie(filename string) []string {
	glog.Infof("Loading vocab %s ... ", filename)
	words, e := LoadWords(filename)
	if e != nil {
		glog.Fatalf("Failed loading vocab: %v", e)
	}
	glog.Infof("Done loading vocab: %d words.", len(words))
	return words
}

// LoadDocuments reads one document per line.  If vocab is empty, a
// document is the whitespace-separated fields of its line; otherwise
// the line is tokenized against vocab by Tokenize.  Documents shorter
// than minLen or longer than maxLen are skipped; a non-positive bound
// is ignored.
func LoadDocuments(filename string, vocab []string, minLen, maxLen int) ([][]string, error) {
	var tok *Tokenizer
	if len(vocab) > 0 {
		tok = NewTokenizer(vocab)
	}

	docs := make([][]string, 0)
	scanned := 0
	e := scanLines(filename, func(line string) {
		scanned++
		var d []string
		if tok != nil {
			d = tok.Tokenize(line)
		} else {
			d = strings.Fields(line)
		}
		if (minLen <= 0 || len(d) >= minLen) && (maxLen <= 0 || len(d) <= maxLen) {
			docs = append(docs, d)
		} else {
			glog.V(1).Infof("Skipped line %d of %s: %d tokens", scanned, filename, len(d))
		}
	})
	if e != nil {
		return nil, e
	}
	if len(docs) == 0 {
		return nil, errors.Errorf("%s contains no valid document out of %d lines",
			filename, scanned)
	}
	glog.Infof("Loaded %s: %d out of %d documents.", filename, len(docs), scanned)
	return docs, nil
}

func LoadDocumentsOrDie(filename string, vocab []string, minLen, maxLen int) [][]string {
	docs, e := LoadDocuments(filename, vocab, minLen, maxLen)
	if e != nil {
		glog.Fatalf("Failed loading corpus: %v", e)
	}
	return docs
}

// WriteFile creates filename, compressed if it ends in .gz, and
// passes the writer to f.
func WriteFile(filename string, f func(w io.Writer) error) error {
	out, e := os.Create(filename)
	if e != nil {
		return errors.Wrapf(e, "cannot create %s", filename)
	}
	defer out.Close()

	w := cmprs.NewWriter(out, e, compression(filename))
	if w == nil {
		return errors.Errorf("cannot compress %s", filename)
	}
	if e := f(w); e != nil {
		w.Close()
		return errors.Wrapf(e, "writing %s", filename)
	}
	if e := w.Close(); e != nil {
		return errors.Wrapf(e, "closing %s", filename)
	}
	return nil
}
