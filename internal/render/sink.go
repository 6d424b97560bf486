// Package render writes game text to the terminal, either verbatim or
// obscured to simulate darkness.
package render

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/nightfall/internal/game/dice"
)

// DefaultLineEnding terminates every line unless configured otherwise.
const DefaultLineEnding = "\n"

// Options configures a Plain sink.
type Options struct {
	// LineEnding terminates Println output. Empty selects DefaultLineEnding.
	LineEnding string
	// WrapWidth word-wraps output at this many columns. Zero disables wrapping.
	WrapWidth int
	// Color enables ANSI styling through Style.
	Color bool
}

// Plain writes text verbatim.
type Plain struct {
	w    io.Writer
	opts Options
	err  error
}

// NewPlain returns a verbatim sink writing to w.
func NewPlain(w io.Writer, opts Options) *Plain {
	if opts.LineEnding == "" {
		opts.LineEnding = DefaultLineEnding
	}
	return &Plain{w: w, opts: opts}
}

// LineEnding returns the configured line terminator.
func (p *Plain) LineEnding() string { return p.opts.LineEnding }

// Print writes text followed by end.
func (p *Plain) Print(text, end string) {
	p.write(p.wrap(text) + end)
}

// Println writes text followed by the configured line ending.
func (p *Plain) Println(text string) {
	p.Print(text, p.opts.LineEnding)
}

// Style colorizes text when color output is enabled.
func (p *Plain) Style(color, text string) string {
	if !p.opts.Color {
		return text
	}
	return Colorize(color, text)
}

// Clear erases the terminal. It does not depend on Color.
func (p *Plain) Clear() {
	p.write(ClearScreen)
}

// Err returns the first write error, if any.
func (p *Plain) Err() error { return p.err }

func (p *Plain) wrap(text string) string {
	if p.opts.WrapWidth <= 0 {
		return text
	}
	return wordwrap.String(text, p.opts.WrapWidth)
}

func (p *Plain) write(s string) {
	if p.err != nil || s == "" {
		return
	}
	if p.opts.LineEnding == "\r\n" {
		// Embedded newlines follow the configured ending too.
		s = strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
	}
	_, p.err = io.WriteString(p.w, s)
}

// Obscured writes text with a chance, inversely proportional to its
// brightness, of replacing each visible character with a filler glyph.
type Obscured struct {
	*Plain
	src        dice.Source
	filler     string
	brightness int
}

// NewObscured returns a darkness sink on top of p. An empty filler selects ".".
func NewObscured(p *Plain, src dice.Source, filler string) *Obscured {
	if filler == "" {
		filler = "."
	}
	return &Obscured{Plain: p, src: src, filler: filler, brightness: 100}
}

// Brightness returns the current brightness in [0, 100].
func (o *Obscured) Brightness() int { return o.brightness }

// SetBrightness clamps b to [0, 100] and stores it.
func (o *Obscured) SetBrightness(b int) {
	o.brightness = max(0, min(b, 100))
}

// Print writes the obscured text followed by end.
func (o *Obscured) Print(text, end string) {
	o.Plain.write(Obscure(o.Plain.wrap(text), o.brightness, o.filler, o.src) + end)
}

// Println writes the obscured text followed by the configured line ending.
func (o *Obscured) Println(text string) {
	o.Print(text, o.Plain.opts.LineEnding)
}

// Obscure replaces each non-space character of text with filler when a
// 1..100 roll is at most 100-brightness. Whitespace and ANSI sequences are
// kept.
//
// Postcondition: brightness >= 100 returns text unchanged; brightness <= 0
// replaces every visible character.
func Obscure(text string, brightness int, filler string, src dice.Source) string {
	threshold := 100 - brightness
	if threshold <= 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if n := escapeLen(text[i:]); n > 0 {
			b.WriteString(text[i : i+n])
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) && src.Intn(100)+1 <= threshold {
			b.WriteString(filler)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}
