/*
Package greedy breaks text into lines, first-fit.

The algorithm is the simplest one possible: words (maximal runs of
non-whitespace) are put on the current line as long as they fit, otherwise a
new line is started. A line always accepts its first word, so words wider
than the line overflow. Optionally, such words may be split at grapheme
boundaries instead.

Whitespace is not preserved: words on a line are separated by a single
space, and leading or trailing whitespace never produces empty lines.

Line breaking is done in a single pass, measuring every word once.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package greedy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttfwrap.wrap'.
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.wrap")
}
