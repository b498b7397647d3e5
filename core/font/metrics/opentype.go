package metrics

import (
	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/core/font"
	"github.com/npillmayer/ttfwrap/core/font/opentype/ot"
	"github.com/npillmayer/ttfwrap/core/font/opentype/otquery"
	"golang.org/x/image/font/sfnt"
)

type otFace struct {
	otf  *ot.Font
	upem sfnt.Units
	name string
}

// LoadOpenType parses the binary data of f with package ot.
func LoadOpenType(f *font.ScalableFont) (Face, error) {
	if f == nil || len(f.Binary) == 0 {
		return nil, core.Error(core.EFONTLOAD, "no font data")
	}
	otf, err := ot.Parse(f.Binary)
	if err != nil {
		tracer().Errorf("cannot parse font %s: %v", f.Fontname, err)
		return nil, core.WrapError(err, core.EFONTLOAD, "cannot parse font %s", f.Fontname)
	}
	face := &otFace{
		otf:  otf,
		upem: otquery.FontMetrics(otf).UnitsPerEm,
		name: faceName(f, otquery.FullName(otf)),
	}
	tracer().Debugf("loaded %s font %q, %d units per em", otquery.FontType(otf), face.name, face.upem)
	return face, nil
}

func (face *otFace) Advance(r rune) (sfnt.Units, bool) {
	return otquery.CodePointAdvance(face.otf, r)
}

func (face *otFace) UnitsPerEm() sfnt.Units {
	return face.upem
}

func (face *otFace) Name() string {
	return face.name
}
