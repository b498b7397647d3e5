package metrics

import (
	"fmt"
	"sync"

	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/core/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntFace queries glyphs through x/image/font/sfnt. An sfnt.Font is safe for
// concurrent use, but its methods need a scratch buffer per goroutine, which
// we keep in a pool.
type sfntFace struct {
	f    *sfnt.Font
	upem sfnt.Units
	ppem fixed.Int26_6
	name string
	pool sync.Pool
}

// LoadSFNT parses the binary data of f with golang.org/x/image/font/sfnt.
func LoadSFNT(f *font.ScalableFont) (Face, error) {
	if f == nil || len(f.Binary) == 0 {
		return nil, core.Error(core.EFONTLOAD, "no font data")
	}
	sf, err := parseSFNT(f.Binary)
	if err != nil {
		tracer().Errorf("cannot parse font %s: %v", f.Fontname, err)
		return nil, core.WrapError(err, core.EFONTLOAD, "cannot parse font %s", f.Fontname)
	}
	face := &sfntFace{
		f:    sf,
		upem: sfnt.Units(sf.UnitsPerEm()),
	}
	// With ppem equal to units per em, advances come out in font units.
	face.ppem = fixed.I(int(face.upem))
	face.pool.New = func() interface{} { return new(sfnt.Buffer) }
	buf := face.buffer()
	internal, _ := sf.Name(buf, sfnt.NameIDFull)
	face.release(buf)
	face.name = faceName(f, internal)
	tracer().Debugf("loaded sfnt font %q, %d units per em", face.name, face.upem)
	return face, nil
}

// parseSFNT guards against panics in the sfnt parser, which we observed for
// some malformed fonts.
func parseSFNT(data []byte) (sf *sfnt.Font, err error) {
	defer func() {
		if r := recover(); r != nil {
			sf, err = nil, fmt.Errorf("corrupt font data: %v", r)
		}
	}()
	return sfnt.Parse(data)
}

func (face *sfntFace) buffer() *sfnt.Buffer {
	return face.pool.Get().(*sfnt.Buffer)
}

func (face *sfntFace) release(buf *sfnt.Buffer) {
	face.pool.Put(buf)
}

func (face *sfntFace) Advance(r rune) (sfnt.Units, bool) {
	buf := face.buffer()
	defer face.release(buf)
	gid, err := face.f.GlyphIndex(buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	adv, err := face.f.GlyphAdvance(buf, gid, face.ppem, xfont.HintingNone)
	if err != nil {
		tracer().Debugf("no advance for %#U: %v", r, err)
		return 0, false
	}
	return sfnt.Units(adv.Round()), true
}

func (face *sfntFace) UnitsPerEm() sfnt.Units {
	return face.upem
}

func (face *sfntFace) Name() string {
	return face.name
}
