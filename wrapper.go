package ttfwrap

import (
	"fmt"
	"math"

	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/core/font"
	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"github.com/npillmayer/ttfwrap/engine/linebreak/greedy"
	"github.com/npillmayer/ttfwrap/engine/measure"
	"golang.org/x/image/font/sfnt"
)

// TextWrapper wraps text into lines for a font. It holds the parsed font and
// the width of the reference character, both fixed at construction time.
type TextWrapper struct {
	fontPath string
	refChar  string // as given by the client, not normalized
	baseUnit float64
	face     metrics.Face
	engine   *greedy.Engine
}

// New loads the font file at fontPath and calibrates the reference character.
// The file is read once; fontPath is kept for diagnostics only.
//
// Errors are ErrInvalidConfiguration (reference character is not a single
// grapheme), ErrFontLoad and ErrUnsupportedReferenceCharacter.
func New(fontPath string, opts ...Option) (*TextWrapper, error) {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	ref, err := validateReference(conf.refChar)
	if err != nil {
		return nil, err
	}
	f, err := font.LoadOpenTypeFont(fontPath)
	if err != nil {
		return nil, err
	}
	return build(f, ref, conf)
}

// NewFromFont creates a TextWrapper for an already loaded font.
func NewFromFont(f *font.ScalableFont, opts ...Option) (*TextWrapper, error) {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	ref, err := validateReference(conf.refChar)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, core.Error(core.EFONTLOAD, "no font given")
	}
	return build(f, ref, conf)
}

func build(f *font.ScalableFont, ref string, conf config) (*TextWrapper, error) {
	face, err := conf.loader(f)
	if err != nil {
		return nil, err
	}
	m := measure.New(face)
	base, err := calibrate(m, ref)
	if err != nil {
		return nil, err
	}
	tw := &TextWrapper{
		fontPath: f.Filepath,
		refChar:  conf.refChar,
		baseUnit: base,
		face:     face,
		engine:   greedy.New(m, conf.overflow),
	}
	tracer().Infof("%s: font %q, base unit %.0f", tw, face.Name(), base)
	return tw, nil
}

// Wrap breaks text into lines no wider than lineWidth reference characters.
//
// Words are separated by single spaces; no empty lines are produced, so empty
// or all-whitespace text results in no lines. A lineWidth of 0 puts every word
// on a line of its own.
func (tw *TextWrapper) Wrap(lineWidth float64, text string) []string {
	return tw.engine.Wrap(tw.MaxWidth(lineWidth), text)
}

// WrapLines is like Wrap, but reports the width of every line in font units.
func (tw *TextWrapper) WrapLines(lineWidth float64, text string) []greedy.Line {
	return tw.engine.Lines(tw.MaxWidth(lineWidth), text)
}

// MaxWidth converts a line width in reference characters to font units,
// rounding down. Negative widths and NaN yield 0; widths too large to
// represent are capped.
func (tw *TextWrapper) MaxWidth(lineWidth float64) metrics.Width {
	w := math.Floor(lineWidth * tw.baseUnit)
	switch {
	case math.IsNaN(w) || w <= 0:
		return 0
	case w >= math.MaxInt64:
		return math.MaxInt64
	}
	return metrics.Width(w)
}

// BaseUnit is the width of the reference character in font units.
func (tw *TextWrapper) BaseUnit() float64 {
	return tw.baseUnit
}

// FontPath returns the path the font has been loaded from.
func (tw *TextWrapper) FontPath() string {
	return tw.fontPath
}

// ReferenceCharacter returns the reference character as it has been
// configured. It is measured in NFC normalized form.
func (tw *TextWrapper) ReferenceCharacter() string {
	return tw.refChar
}

// UnitsPerEm returns the number of font design units per em of the font.
func (tw *TextWrapper) UnitsPerEm() sfnt.Units {
	return tw.face.UnitsPerEm()
}

// FontName returns the name of the font.
func (tw *TextWrapper) FontName() string {
	return tw.face.Name()
}

func (tw *TextWrapper) String() string {
	return fmt.Sprintf("TextWrapper font_path=%q reference_character=%q", tw.fontPath, tw.refChar)
}
