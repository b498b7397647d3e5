/*
Package opentype holds types shared by the OpenType packages of ttfwrap.

Sub-package ot parses the tables of a font file which are needed to measure
text, sub-package otquery answers metric queries against a parsed font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package opentype

import (
	"golang.org/x/image/font/sfnt"
)

// --- Font and glyph metrics ------------------------------------------------

// FontMetricsInfo contains selected metric information for a font.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units // ad-hoc units per em
	Ascent, Descent sfnt.Units // ascender and descender
	MaxAdvance      sfnt.Units // maximum advance width value in 'hmtx' table
	LineGap         sfnt.Units // typographic line gap
}

// LineHeight is the distance between two baselines, in font units.
func (m FontMetricsInfo) LineHeight() sfnt.Units {
	return m.Ascent - m.Descent + m.LineGap
}

// GlyphMetricsInfo contains the horizontal metric information for a glyph.
type GlyphMetricsInfo struct {
	Advance sfnt.Units // advance width
	LSB     sfnt.Units // left side bearing
}
