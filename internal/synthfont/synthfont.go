/*
Package synthfont assembles minimal TrueType fonts in memory.

Synthetic fonts contain only the tables needed for measuring text ('cmap',
'head', 'hhea', 'hmtx', 'maxp' and 'name') and no outlines. They are used in
tests which need exact, hand-picked advance widths.

Vertical metrics are written to table 'hhea' (ascender 800, descender -200).
If Spec.TypoAscender or Spec.TypoDescender is set, these values are written
to an 'OS/2' table instead, and the ascender and descender of 'hhea' are 0.

Glyph 0 is '.notdef'; every code-point of Spec.Advances gets its own glyph, in
ascending code-point order. If any code-point lies outside the BMP, the cmap
is written as a format 12 sub-table, otherwise as format 4.
*/
package synthfont

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

// Spec describes a synthetic font.
type Spec struct {
	Name          string          // full font name, written to table 'name'
	UnitsPerEm    uint16          // defaults to 1000
	NotdefAdvance uint16          // advance of glyph 0
	Advances      map[rune]uint16 // code-point → advance width
	TypoAscender  int16           // sTypoAscender of table 'OS/2'
	TypoDescender int16           // sTypoDescender of table 'OS/2'
}

type table struct {
	tag  string
	data []byte
}

// Build returns the binary data of a font as described by spec.
func Build(spec Spec) []byte {
	if spec.UnitsPerEm == 0 {
		spec.UnitsPerEm = 1000
	}
	runes := make([]rune, 0, len(spec.Advances))
	wide := false
	for r := range spec.Advances {
		runes = append(runes, r)
		if r > 0xffff {
			wide = true
		}
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	numGlyphs := len(runes) + 1
	var maxAdvance uint16 = spec.NotdefAdvance
	hmtx := be16(spec.NotdefAdvance, 0)
	for _, r := range runes {
		a := spec.Advances[r]
		if a > maxAdvance {
			maxAdvance = a
		}
		hmtx = append(hmtx, be16(a, 0)...)
	}
	var cmap []byte
	if wide {
		cmap = cmapFormat12(runes)
	} else {
		cmap = cmapFormat4(runes)
	}
	var asc, desc int16 = 800, -200
	var tables []table // sorted by tag
	if spec.TypoAscender != 0 || spec.TypoDescender != 0 {
		asc, desc = 0, 0
		tables = append(tables, table{"OS/2", os2(spec.TypoAscender, spec.TypoDescender)})
	}
	tables = append(tables,
		table{"cmap", cmap},
		table{"head", head(spec.UnitsPerEm)},
		table{"hhea", hhea(asc, desc, maxAdvance, uint16(numGlyphs))},
		table{"hmtx", hmtx},
		table{"maxp", append(be32(0x00005000), be16(uint16(numGlyphs))...)},
		table{"name", name(spec.Name)},
	)
	return assemble(tables)
}

func assemble(tables []table) []byte {
	n := len(tables)
	font := append(be32(0x00010000), be16(uint16(n), 0, 0, 0)...)
	offset := 12 + 16*n
	var body []byte
	for _, t := range tables {
		font = append(font, []byte(t.tag)...)
		font = append(font, be32(0, uint32(offset+len(body)), uint32(len(t.data)))...)
		body = append(body, t.data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}
	return append(font, body...)
}

func head(upem uint16) []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint32(b[12:], 0x5f0f3cf5)
	binary.BigEndian.PutUint16(b[18:], upem)
	return b
}

func hhea(ascender, descender int16, maxAdvance, numberOfHMetrics uint16) []byte {
	b := make([]byte, 36)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], uint16(ascender))
	binary.BigEndian.PutUint16(b[6:], uint16(descender))
	binary.BigEndian.PutUint16(b[10:], maxAdvance)
	binary.BigEndian.PutUint16(b[34:], numberOfHMetrics)
	return b
}

// os2 writes a version 0 'OS/2' table, with only the typographic ascender and
// descender set.
func os2(ascender, descender int16) []byte {
	b := make([]byte, 78)
	binary.BigEndian.PutUint16(b[68:], uint16(ascender))
	binary.BigEndian.PutUint16(b[70:], uint16(descender))
	return b
}

// cmapFormat4 writes one segment per code-point, using idDelta, plus the
// mandatory final segment for 0xFFFF.
func cmapFormat4(runes []rune) []byte {
	segCount := len(runes) + 1
	var ends, starts, deltas, offsets []byte
	for i, r := range runes {
		gid := uint16(i + 1)
		ends = append(ends, be16(uint16(r))...)
		starts = append(starts, be16(uint16(r))...)
		deltas = append(deltas, be16(gid-uint16(r))...)
		offsets = append(offsets, be16(0)...)
	}
	ends = append(ends, be16(0xffff)...)
	starts = append(starts, be16(0xffff)...)
	deltas = append(deltas, be16(1)...)
	offsets = append(offsets, be16(0)...)
	length := 14 + 8*segCount + 2
	sub := be16(4, uint16(length), 0, uint16(2*segCount), 0, 0, 0)
	sub = append(sub, ends...)
	sub = append(sub, be16(0)...) // reserved padding
	sub = append(sub, starts...)
	sub = append(sub, deltas...)
	sub = append(sub, offsets...)
	return append(append(be16(0, 1), append(be16(3, 1), be32(12)...)...), sub...)
}

func cmapFormat12(runes []rune) []byte {
	length := 16 + 12*len(runes)
	sub := append(be16(12, 0), be32(uint32(length), 0, uint32(len(runes)))...)
	for i, r := range runes {
		sub = append(sub, be32(uint32(r), uint32(r), uint32(i+1))...)
	}
	return append(append(be16(0, 1), append(be16(3, 10), be32(12)...)...), sub...)
}

func name(full string) []byte {
	if full == "" {
		full = "Synthetic"
	}
	var str []byte
	for _, u := range utf16.Encode([]rune(full)) {
		str = append(str, be16(u)...)
	}
	b := be16(0, 1, 6+12)
	b = append(b, be16(3, 1, 0x409, 4, uint16(len(str)), 0)...)
	return append(b, str...)
}

func be16(v ...uint16) []byte {
	b := make([]byte, 2*len(v))
	for i, x := range v {
		binary.BigEndian.PutUint16(b[2*i:], x)
	}
	return b
}

func be32(v ...uint32) []byte {
	b := make([]byte, 4*len(v))
	for i, x := range v {
		binary.BigEndian.PutUint32(b[4*i:], x)
	}
	return b
}
