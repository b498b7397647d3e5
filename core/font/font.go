/*
Package font is for loading font files.

A ScalableFont holds the raw binary data of a TrueType or OpenType font,
together with the information where it came from. Loading a font reads the
complete file into memory; no file handle is kept open afterwards, and clients
should never re-read a font from its Filepath. Interpreting the binary data is
the job of the metrics backends in package metrics, which parse the font's
tables and answer glyph queries.

Font collections (*.ttc) are not supported.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ttfwrap/core"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer writes to trace with key 'ttfwrap.fonts'
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.fonts")
}

// ScalableFont is the in-memory image of a font file.
// Binary must be treated as read-only once the font has been loaded.
type ScalableFont struct {
	Fontname string // name derived from the file name
	Filepath string // file path, for diagnostics only
	Binary   []byte // raw data
}

// LoadOpenTypeFont reads a font file completely into memory.
// I/O errors are reported as core.ErrFontLoad errors.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		tracer().Errorf("cannot read font file %s: %v", fontfile, err)
		return nil, core.WrapError(err, core.EFONTLOAD, "cannot read font file %s", fontfile)
	}
	if len(bytez) == 0 {
		return nil, core.Error(core.EFONTLOAD, "font file %s is empty", fontfile)
	}
	tracer().Debugf("read %d bytes from font file %s", len(bytez), fontfile)
	f := &ScalableFont{
		Fontname: filepath.Base(fontfile),
		Filepath: fontfile,
		Binary:   bytez,
	}
	return f, nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = &ScalableFont{
			Fontname: "Go Sans",
			Filepath: "internal",
			Binary:   goregular.TTF,
		}
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
var fallbackFont *ScalableFont

// ---------------------------------------------------------------------------

// NormalizeFontname creates a canonical form of a font (file) name, suitable
// for comparing font names: lower case, without file extension, and with
// spaces, underscores and hyphens removed. "Go Mono" and "Go-Mono.ttf" are
// both normalized to "gomono".
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = fontnameSeparators.Replace(fname)
	return strings.ToLower(fname)
}

var fontnameSeparators = strings.NewReplacer(" ", "", "_", "", "-", "")
