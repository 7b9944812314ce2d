// Package render prints topic assignments of a model as colored
// terminal text or as HTML.  It only reads from the model.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"
	"github.com/godist/ldagibbs/core/gibbs"
)

// DefaultSymbol is a bullet.
const DefaultSymbol = "•"

// Palette maps topics to colors.  Topics beyond the palette share its
// last color.
type Palette []*color.Color

func DefaultPalette() Palette {
	return Palette{color.New(color.FgBlue), color.New(color.FgYellow)}
}

// Color returns the color of topic.  An empty palette prints without
// color.
func (p Palette) Color(topic int) *color.Color {
	if len(p) == 0 {
		c := color.New()
		c.DisableColor()
		return c
	}
	if topic >= len(p) {
		topic = len(p) - 1
	}
	if topic < 0 {
		topic = 0
	}
	return p[topic]
}

// Printer writes one line per call.  If InPlace is set, the line ends
// with "\r" so that the next call overwrites it.
type Printer struct {
	Symbol    string
	Palette   Palette
	InPlace   bool
	separator *color.Color
}

func NewPrinter(inPlace bool) *Printer {
	return &Printer{
		Symbol:  DefaultSymbol,
		Palette: DefaultPalette(),
		InPlace: inPlace,
	}
}

func (p *Printer) eol() string {
	if p.InPlace {
		return "\r"
	}
	return "\n"
}

// Symbols prints Symbol once per token, colored by its topic.
// Documents are separated by a red "|".
func (p *Printer) Symbols(w io.Writer, m *gibbs.Model) error {
	if p.separator == nil {
		p.separator = color.New(color.FgRed)
	}
	b := bufio.NewWriter(w)
	for d, topics := range m.AllTokenTopics() {
		if d > 0 {
			b.WriteString(p.separator.Sprint("|"))
		}
		for _, t := range topics {
			b.WriteString(p.Palette.Color(t).Sprint(p.Symbol))
		}
	}
	b.WriteString(p.eol())
	return b.Flush()
}

// Tokens prints every word colored by its topic.  Words are separated
// by a space and documents by " | ".
func (p *Printer) Tokens(w io.Writer, m *gibbs.Model) error {
	b := bufio.NewWriter(w)
	c := m.Corpus()
	for d := 0; d < c.NumDocs(); d++ {
		if d > 0 {
			b.WriteString(" | ")
		}
		for i, t := range c.Document(d) {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(p.Palette.Color(t.Topic()).Sprint(t.Word()))
		}
	}
	b.WriteString(p.eol())
	return b.Flush()
}
