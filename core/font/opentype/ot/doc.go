/*
Package ot provides access to the OpenType font tables needed for measuring text.

Intended audience for this package are text measurers and line breakers, i.e.
clients which need to know how wide a run of characters will be when set with
a given font, without rasterizing any glyphs.

Package `ot` will not interpret every table of a font, but rather expose the
tables it knows about as Go types and keep all others as generic tables. The
tables interpreted are:

▪︎ 'head': units per em, needed to relate design units to a font size

▪︎ 'hhea' and 'maxp': number of horizontal metrics and number of glyphs

▪︎ 'hmtx': advance widths and left side bearings

▪︎ 'cmap': mapping of code-points to glyph indices (formats 4 and 12)

▪︎ 'name': human readable names of the font

Functions for querying glyph metrics are homed in the sister package `otquery`.

# Malformed Fonts

Font files are untrusted input. Every read from a font's binary data is
bounds-checked, and Parse will report inconsistent table data as an error
instead of failing later during glyph lookup. Errors returned from Parse carry
core.ErrFontLoad in their chain.

No font collections nor variable fonts are supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ttfwrap/core"
)

// tracer writes to trace with key 'ttfwrap.fonts'
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.fonts")
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(x string) error {
	return core.Error(core.EFONTLOAD, "OpenType font format: %s", x)
}
