package render

import (
	"bytes"
	"html/template"
	"sort"

	"github.com/godist/ldagibbs/core/utils"
	"github.com/pkg/errors"
)

// Style of a monospace HTML span.  Color and Background are CSS
// colors; empty means inherited.
type Style struct {
	Color      string
	Background string
	Bold       bool
	Underline  bool
}

var spanTemplate = template.Must(template.New("span").Parse(
	`<span style="background: {{.Background}}; color: {{.Color}}; ` +
		`font-weight: {{if .Bold}}bold{{end}}; ` +
		`text-decoration: {{if .Underline}}underline{{end}}; ` +
		`font-family: monospace; font-size: 10pt;">{{.Text}}</span>`))

// StyleHTML returns text, HTML-escaped, in a span of style s.
func StyleHTML(text string, s Style) template.HTML {
	return styleHTML(template.HTML(template.HTMLEscapeString(text)), s)
}

func styleHTML(inner template.HTML, s Style) template.HTML {
	var buf bytes.Buffer
	e := spanTemplate.Execute(&buf, struct {
		Style
		Text template.HTML
	}{s, inner})
	if e != nil {
		panic("executing span template: " + e.Error())
	}
	return template.HTML(buf.String())
}

func highlight(background string) Style {
	return Style{Color: "white", Background: background, Bold: true}
}

// HighlightWord marks every case-insensitive occurrence of word in
// text with bold white on background.  If text is empty, word itself
// is highlighted.
func HighlightWord(word, background, text string) template.HTML {
	if len(text) == 0 {
		text = word
	}
	var buf bytes.Buffer
	last := 0
	for _, m := range utils.WordPattern(word).FindAllStringIndex(text, -1) {
		buf.WriteString(template.HTMLEscapeString(text[last:m[0]]))
		buf.WriteString(string(StyleHTML(text[m[0]:m[1]], highlight(background))))
		last = m[1]
	}
	buf.WriteString(template.HTMLEscapeString(text[last:]))
	return template.HTML(buf.String())
}

type match struct {
	start, end int
	topic      int
}

// ColorizeDocument highlights the vocabulary words in text with the
// color of their topics.  topics must be aligned with the tokens
// utils.Tokenize produces for text and vocab: all occurrences of the
// first vocabulary word in text order, then those of the second, and
// so on.  Topics beyond colors use the last color.  An occurrence that
// overlaps an earlier one is not highlighted but still consumes a
// topic.
func ColorizeDocument(text string, vocab []string, topics []int, colors []string) (template.HTML, error) {
	if len(colors) == 0 {
		return "", errors.New("no colors")
	}

	matches := make([]match, 0, len(topics))
	n := 0
	for _, word := range vocab {
		if len(word) == 0 {
			continue
		}
		for _, m := range utils.WordPattern(word).FindAllStringIndex(text, -1) {
			if n >= len(topics) {
				return "", errors.Errorf("%d topics for more tokens in text", len(topics))
			}
			if topics[n] < 0 {
				return "", errors.Errorf("token %d has negative topic %d", n, topics[n])
			}
			matches = append(matches, match{m[0], m[1], topics[n]})
			n++
		}
	}
	if n != len(topics) {
		return "", errors.Errorf("%d topics for %d tokens in text", len(topics), n)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	var buf bytes.Buffer
	last := 0
	for _, m := range matches {
		if m.start < last {
			continue
		}
		c := colors[len(colors)-1]
		if m.topic < len(colors) {
			c = colors[m.topic]
		}
		buf.WriteString(template.HTMLEscapeString(text[last:m.start]))
		buf.WriteString(string(StyleHTML(text[m.start:m.end], highlight(c))))
		last = m.end
	}
	buf.WriteString(template.HTMLEscapeString(text[last:]))
	return styleHTML(template.HTML(buf.String()), Style{}), nil
}
