/*
Package measure computes the width of text set in a font.

A Measurer sums up the advance widths of the characters of a string, in font
design units. No kerning, ligatures or other shaping takes place. Characters
the font has no glyph for contribute a width of 0, so arbitrary input can be
measured without errors; clients needing a strict check use MeasureStrict.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'ttfwrap.wrap'.
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.wrap")
}

// Measurer measures strings with the advance widths of a font face.
// A Measurer holds no mutable state and may be shared between goroutines.
type Measurer struct {
	face metrics.Face
}

// New creates a Measurer for a face.
func New(face metrics.Face) *Measurer {
	return &Measurer{face: face}
}

// Face returns the font face this measurer queries.
func (m *Measurer) Face() metrics.Face {
	return m.face
}

// Advance returns the advance width of r and whether the face has a glyph for it.
func (m *Measurer) Advance(r rune) (sfnt.Units, bool) {
	return m.face.Advance(r)
}

// Measure returns the sum of the advance widths of all characters of text.
// Characters missing from the face count as zero-width.
func (m *Measurer) Measure(text string) metrics.Width {
	var w metrics.Width
	for _, r := range text {
		if a, ok := m.face.Advance(r); ok {
			w += metrics.Width(a)
		}
	}
	return w
}

// MeasureStrict is like Measure, but reports false if any character of text
// is missing from the face. The returned width is only meaningful if ok is true.
func (m *Measurer) MeasureStrict(text string) (w metrics.Width, ok bool) {
	for _, r := range text {
		a, present := m.face.Advance(r)
		if !present {
			tracer().Debugf("font %s has no glyph for %#U", m.face.Name(), r)
			return 0, false
		}
		w += metrics.Width(a)
	}
	return w, true
}
