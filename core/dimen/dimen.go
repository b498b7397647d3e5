// Package dimen implements typographic dimensions and units, and converts
// font design units to them.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/ttfwrap/core"
	"golang.org/x/image/font/sfnt"
)

// Online dimension conversion for print:
// http://www.unitconversion.org/unit_converter/typography-ex.html

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// FromFontUnits converts a width in font design units to a dimension, for a
// font set at size fontsize. Results too large to represent are capped at
// Infinity.
func FromFontUnits(units int64, unitsPerEm sfnt.Units, fontsize Dimen) Dimen {
	if unitsPerEm <= 0 {
		return Zero
	}
	return capped(math.Round(float64(units) * float64(fontsize) / float64(unitsPerEm)))
}

func capped(d float64) Dimen {
	switch {
	case d >= Infinity:
		return Infinity
	case d <= -Infinity:
		return -Infinity
	}
	return Dimen(d)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)([a-zA-Z]{2})?$`)

var units = map[string]Dimen{
	"":   SP,
	"sp": SP,
	"bp": BP,
	"px": PX,
	"pt": PT,
	"mm": MM,
	"cm": CM,
	"in": IN,
}

// ParseDimen parses an absolute dimension, i.e. a number with an optional
// fraction, followed by a unit (sp, bp, px, pt, mm, cm or in). A number
// without unit denotes scaled points. Fractions of a scaled point are rounded.
//
// Errors are of kind core.EINVALID. Relative units, like percentages, are
// rejected, as are values which do not fit into a Dimen.
func ParseDimen(s string) (Dimen, error) {
	m := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Zero, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	scale, ok := units[strings.ToLower(m[2])]
	if !ok {
		return Zero, core.Error(core.EINVALID, "unknown unit in dimension %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Zero, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	d := math.Round(n * float64(scale))
	if d > Infinity || d < -Infinity {
		return Zero, core.Error(core.EINVALID, "dimension %q out of range", s)
	}
	return Dimen(d), nil
}
