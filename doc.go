/*
Package ttfwrap predicts how text will wrap into lines when set in a given
font at a given width, without rendering anything.

Widths are measured with the real advance widths of a TrueType or OpenType
font file. Clients state the available width in multiples of a reference
character (the digit "0" by default), not in absolute units:

	tw, err := ttfwrap.New("fonts/NotoSans-Regular.ttf")
	if err != nil {
		...
	}
	lines := tw.Wrap(40, "The quick brown fox jumps over the lazy dog")

will break the text into lines no wider than 40 zeros. Line breaking is
greedy and happens at whitespace only; words wider than a line are kept
intact on a line of their own, unless WithOverflow(greedy.OverflowSplit) is
given.

A TextWrapper is immutable after construction and may be shared between
goroutines.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttfwrap

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ttfwrap/core"
)

// tracer traces with key 'ttfwrap.wrap'.
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.wrap")
}

// Errors returned by New and NewFromFont. Use errors.Is to test for them.
var (
	// ErrFontLoad flags a font file which cannot be read or parsed.
	ErrFontLoad = core.ErrFontLoad
	// ErrInvalidConfiguration flags a reference character which is not
	// exactly one grapheme.
	ErrInvalidConfiguration = core.ErrInvalidConfiguration
	// ErrUnsupportedReferenceCharacter flags a reference character the font
	// has no glyph (or no width) for.
	ErrUnsupportedReferenceCharacter = core.ErrUnsupportedReferenceCharacter
)
