package otquery

import (
	"github.com/npillmayer/ttfwrap/core/font/opentype"
	"github.com/npillmayer/ttfwrap/core/font/opentype/ot"
	"golang.org/x/image/font/sfnt"
)

// --- Font Information -------------------------------------------------

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(otf *ot.Font) opentype.FontMetricsInfo {
	metrics := opentype.FontMetricsInfo{
		UnitsPerEm: sfnt.Units(otf.Head.UnitsPerEm),
		Ascent:     sfnt.Units(otf.HHea.Ascender),
		Descent:    sfnt.Units(otf.HHea.Descender),
		LineGap:    sfnt.Units(otf.HHea.LineGap),
		MaxAdvance: sfnt.Units(otf.HHea.AdvanceWidthMax),
	}
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		// some fonts only state typographic ascender and descender in OS/2
		if os2 := otf.Table(ot.T("OS/2")); os2 != nil && len(os2.Binary()) >= 72 {
			tracer().Debugf("OS/2")
			b := os2.Binary()
			a := sfnt.Units(i16(b[68:]))
			if a > metrics.Ascent {
				tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
				metrics.Ascent = a
			}
			d := sfnt.Units(i16(b[70:]))
			if d < metrics.Descent {
				tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
				metrics.Descent = d
			}
		}
	}
	return metrics
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a give code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(otf *ot.Font, codepoint rune) ot.GlyphIndex {
	return otf.CMap.GlyphIndexMap.Lookup(codepoint)
}

// GlyphMetrics retrieves horizontal metrics for a given glyph.
// Glyph indices beyond the font's glyph count yield zero metrics.
func GlyphMetrics(otf *ot.Font, gid ot.GlyphIndex) opentype.GlyphMetricsInfo {
	a, lsb := otf.HMtx.HMetrics(gid)
	return opentype.GlyphMetricsInfo{
		Advance: sfnt.Units(a),
		LSB:     sfnt.Units(lsb),
	}
}

// GlyphAdvance returns the advance width of a glyph in font units.
func GlyphAdvance(otf *ot.Font, gid ot.GlyphIndex) sfnt.Units {
	a, _ := otf.HMtx.HMetrics(gid)
	return sfnt.Units(a)
}

// CodePointAdvance returns the advance width for a code-point, together with
// a flag telling if the font contains a glyph for it. Unmapped code-points
// (i.e., code-points mapped to '.notdef') and code-points mapped to glyph
// indices beyond the font's glyph count yield (0, false).
func CodePointAdvance(otf *ot.Font, codepoint rune) (sfnt.Units, bool) {
	gid := GlyphIndex(otf, codepoint)
	if gid == 0 || int(gid) >= otf.HMtx.NumGlyphs {
		return 0, false
	}
	return GlyphAdvance(otf, gid), true
}

// --- Helpers ----------------------------------------------------------

func i16(b []byte) int16 {
	return int16(b[0])<<8 | int16(b[1])<<0
}
