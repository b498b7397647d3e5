/*
Package metrics provides advance widths of characters for a loaded font.

A Face answers the one question text measuring needs: how far does the pen
advance for a given code-point. Two backends are available:

▪︎ LoadOpenType uses the OpenType parser of this module (package ot).

▪︎ LoadSFNT uses golang.org/x/image/font/sfnt.

Both report advances in font design units. Faces are immutable and may be
shared between goroutines.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ttfwrap/core/font"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'ttfwrap.fonts'
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.fonts")
}

// Width is a cumulative advance width of a string, in font design units.
type Width int64

// Face is a font prepared for advance width queries.
type Face interface {
	// Advance returns the advance width of the glyph for r. If the font has
	// no glyph for r (i.e., r maps to '.notdef'), Advance returns (0, false).
	Advance(r rune) (sfnt.Units, bool)
	UnitsPerEm() sfnt.Units
	Name() string
}

// Loader creates a Face from a loaded font. Errors are reported as
// core.ErrFontLoad errors.
type Loader func(*font.ScalableFont) (Face, error)

// Default is the loader used if clients do not select one.
var Default Loader = LoadOpenType

// faceName returns the name of a face: the font's internal name if present,
// the font's file name otherwise.
func faceName(f *font.ScalableFont, internal string) string {
	if internal != "" {
		return internal
	}
	return f.Fontname
}
