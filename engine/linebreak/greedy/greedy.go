package greedy

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// Measurer measures the width of a string.
// *measure.Measurer is the canonical implementation.
type Measurer interface {
	Measure(text string) metrics.Width
}

// Overflow selects how words wider than the line are handled.
type Overflow int

const (
	// OverflowKeep keeps over-long words intact, on a line of their own.
	OverflowKeep Overflow = iota
	// OverflowSplit splits over-long words at grapheme cluster boundaries.
	OverflowSplit
)

func (o Overflow) String() string {
	switch o {
	case OverflowKeep:
		return "keep"
	case OverflowSplit:
		return "split"
	}
	return "<unknown overflow>"
}

// Line is a line of text produced by the line breaker, together with its width.
type Line struct {
	Text  string
	Width metrics.Width
}

// Engine is a first-fit line breaker. It is immutable and may be used by
// concurrent goroutines.
type Engine struct {
	measurer Measurer
	overflow Overflow
	space    metrics.Width // width of the inter-word space
}

// New creates a line breaker measuring text with m.
func New(m Measurer, overflow Overflow) *Engine {
	e := &Engine{
		measurer: m,
		overflow: overflow,
		space:    m.Measure(" "),
	}
	tracer().Debugf("line breaker with overflow mode %s, space width = %d", overflow, e.space)
	return e
}

// Overflow returns the overflow mode of the engine.
func (e *Engine) Overflow() Overflow {
	return e.overflow
}

// SpaceWidth returns the width of a space between two words.
func (e *Engine) SpaceWidth() metrics.Width {
	return e.space
}

// Wrap breaks text into lines no wider than max, with the exception of
// over-long words (see Overflow).
func (e *Engine) Wrap(max metrics.Width, text string) []string {
	lines := e.Lines(max, text)
	if len(lines) == 0 {
		return nil
	}
	result := make([]string, len(lines))
	for i, l := range lines {
		result[i] = l.Text
	}
	return result
}

// Lines is like Wrap, but reports the width of each line.
func (e *Engine) Lines(max metrics.Width, text string) []Line {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}
	if max < 0 {
		max = 0
	}
	var lines []Line
	var cur lineBuffer
	for _, word := range words {
		w := e.measurer.Measure(word)
		if !cur.empty() && cur.width+e.space+w <= max {
			cur.append(word, w, e.space)
			continue
		}
		if !cur.empty() {
			lines = append(lines, cur.line())
			cur.reset()
		}
		// cur is empty and accepts word, regardless of its width
		if w > max && e.overflow == OverflowSplit {
			chunks := e.split(word, max)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			cur.append(last.Text, last.Width, 0)
			continue
		}
		cur.append(word, w, 0)
	}
	if !cur.empty() {
		lines = append(lines, cur.line())
	}
	tracer().Debugf("broke %d words into %d lines of max width %d", len(words), len(lines), max)
	return lines
}

// split cuts an over-long word into chunks no wider than max, at grapheme
// boundaries. Every chunk holds at least one grapheme, even if that is wider
// than max.
func (e *Engine) split(word string, max metrics.Width) []Line {
	seg := graphemeSegmenters.Get().(*segment.Segmenter)
	defer graphemeSegmenters.Put(seg)
	seg.Init(strings.NewReader(word))
	var chunks []Line
	var cur lineBuffer
	for seg.Next() {
		g := seg.Text()
		w := e.measurer.Measure(g)
		if !cur.empty() && cur.width+w > max {
			chunks = append(chunks, cur.line())
			cur.reset()
		}
		cur.append(g, w, -1)
	}
	if !cur.empty() {
		chunks = append(chunks, cur.line())
	}
	if len(chunks) == 0 { // should not happen for non-empty words
		chunks = append(chunks, Line{Text: word, Width: e.measurer.Measure(word)})
	}
	tracer().Debugf("split over-long word into %d chunks", len(chunks))
	return chunks
}

// lineBuffer collects the words of a line.
type lineBuffer struct {
	sb    strings.Builder
	width metrics.Width
}

func (lb *lineBuffer) empty() bool {
	return lb.sb.Len() == 0
}

// append adds a word. A separator width >= 0 inserts a space before the word
// if the line is non-empty; a negative one concatenates without space.
func (lb *lineBuffer) append(word string, w, sep metrics.Width) {
	if !lb.empty() && sep >= 0 {
		lb.sb.WriteByte(' ')
		lb.width += sep
	}
	lb.sb.WriteString(word)
	lb.width += w
}

func (lb *lineBuffer) line() Line {
	return Line{Text: lb.sb.String(), Width: lb.width}
}

func (lb *lineBuffer) reset() {
	lb.sb.Reset()
	lb.width = 0
}

// splitWords returns the runs of non-whitespace characters of text.
// Whitespace is any rune for which unicode.IsSpace holds.
func splitWords(text string) []string {
	seg := wordSegmenters.Get().(*segment.Segmenter)
	defer wordSegmenters.Put(seg)
	seg.Init(strings.NewReader(text))
	var words []string
	for seg.Next() {
		runes := seg.Runes()
		if len(runes) == 0 || unicode.IsSpace(runes[0]) {
			continue // run of whitespace
		}
		words = append(words, string(runes))
	}
	return words
}

// --- Segmenters ------------------------------------------------------------

// Segmenters hold state during iteration and are not safe for concurrent use.
var graphemeSegmenters = sync.Pool{
	New: func() interface{} {
		grapheme.SetupGraphemeClasses()
		onGraphemes := grapheme.NewBreaker(1)
		return segment.NewSegmenter(onGraphemes)
	},
}

// A segmenter without breakers splits at whitespace boundaries.
var wordSegmenters = sync.Pool{
	New: func() interface{} {
		return segment.NewSegmenter()
	},
}
