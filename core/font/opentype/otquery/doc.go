/*
Package otquery queries metrics and other information from OpenType fonts.

Package otquery knows about the various tables contained in OpenType fonts and
which ones to address for queries. Its main client is the text measuring
backend of ttfwrap, which needs glyph indices and advance widths for
code-points.

No font collections nor variable fonts are supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttfwrap.fonts'
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.fonts")
}
