package ot

import (
	"fmt"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Parse parses an OpenType font from a byte slice.
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
//
// Parse never panics on malformed data; errors carry core.ErrFontLoad.
func Parse(font []byte) (otf *Font, err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("corrupt font data: %v", r)
			otf, err = nil, errFontFormat(fmt.Sprintf("corrupt font data: %v", r))
		}
	}()
	src := binarySegm(font)
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	if len(src) < 12 {
		return nil, errFontFormat("font data too short for offset table")
	}
	h := FontHeader{FontType: u32(src), TableCount: u16(src[4:])}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if h.FontType == 0x74746366 { // ttcf
		return nil, errFontFormat("font collections are not supported")
	}
	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf = &Font{Header: &h, tables: make(map[Tag]Table)}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(h.TableCount))
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			return nil, errFontFormat("invalid table offset")
		}
		if uint64(off)+uint64(size) > uint64(len(src)) {
			return nil, errFontFormat(fmt.Sprintf("table %s exceeds font data", tag))
		}
		otf.tables[tag], err = parseTable(tag, src[off:off+size], off, size)
		if err != nil {
			return nil, err
		}
	}
	if err := extractMetricsInfo(otf); err != nil {
		return nil, err
	}
	return otf, nil
}

// According to the OpenType spec, the following tables are
// required for measuring glyphs.
var RequiredTables = []string{
	"cmap", "head", "hhea", "hmtx", "maxp",
}

// Consistency check and shortcuts to essential tables.
func extractMetricsInfo(otf *Font) error {
	for _, tag := range RequiredTables {
		h := otf.tables[T(tag)]
		if h == nil {
			return errFontFormat("missing required table " + tag)
		}
	}
	otf.CMap = otf.tables[T("cmap")].Self().AsCMap()
	otf.Head = otf.tables[T("head")].Self().AsHead()
	otf.HHea = otf.tables[T("hhea")].Self().AsHHea()
	otf.HMtx = otf.tables[T("hmtx")].Self().AsHMtx()
	otf.MaxP = otf.tables[T("maxp")].Self().AsMaxP()
	if n := otf.tables[T("name")]; n != nil {
		otf.Name = n.Self().AsName()
	}
	// The number of horizontal metrics is stated in 'hhea', the number of glyphs
	// in 'maxp'. Table 'hmtx' must hold a long metric record for each of the former,
	// and a left side bearing for each of the remaining glyphs.
	n := otf.HHea.NumberOfHMetrics
	if n == 0 {
		return errFontFormat("hhea declares no horizontal metrics")
	}
	if n > otf.MaxP.NumGlyphs {
		return errFontFormat("hhea declares more horizontal metrics than glyphs")
	}
	if otf.HMtx.data.Size() < 4*n {
		return errFontFormat("size of hmtx table")
	}
	otf.HMtx.NumberOfHMetrics = n
	otf.HMtx.NumGlyphs = otf.MaxP.NumGlyphs
	if lsbs := (otf.HMtx.data.Size() - 4*n) / 2; lsbs < otf.MaxP.NumGlyphs-n {
		tracer().Infof("hmtx has %d left side bearings, expected %d", lsbs, otf.MaxP.NumGlyphs-n)
		// advances are still available for all glyphs, we will read LSB 0 for missing entries
	}
	return nil
}

func parseTable(t Tag, b binarySegm, offset, size uint32) (Table, error) {
	switch t {
	case T("cmap"):
		return parseCMap(t, b, offset, size)
	case T("head"):
		return parseHead(t, b, offset, size)
	case T("hhea"):
		return parseHHea(t, b, offset, size)
	case T("hmtx"):
		return parseHMtx(t, b, offset, size)
	case T("maxp"):
		return parseMaxP(t, b, offset, size)
	case T("name"):
		return parseName(t, b, offset, size)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size), nil
}

// --- Head table ------------------------------------------------------------

func parseHead(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 54 {
		return nil, errFontFormat("size of head table")
	}
	t := &HeadTable{tableBase: makeTableBase(tag, b, offset, size)}
	t.self = t
	t.Flags, _ = b.u16(16)      // flags
	t.UnitsPerEm, _ = b.u16(18) // units per em
	if t.UnitsPerEm == 0 {
		return nil, errFontFormat("head table: units per em is 0")
	}
	return t, nil
}

// --- HHea table ------------------------------------------------------------

func parseHHea(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 36 {
		return nil, errFontFormat("size of hhea table")
	}
	t := &HHeaTable{tableBase: makeTableBase(tag, b, offset, size)}
	t.self = t
	t.Ascender = i16(b[4:])
	t.Descender = i16(b[6:])
	t.LineGap = i16(b[8:])
	t.AdvanceWidthMax = u16(b[10:])
	t.NumberOfHMetrics = int(u16(b[34:]))
	return t, nil
}

// --- HMtx table ------------------------------------------------------------

// The hmtx table cannot be interpreted without information from hhea and maxp,
// which is filled in during the consistency check.
func parseHMtx(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	t := &HMtxTable{tableBase: makeTableBase(tag, b, offset, size)}
	t.self = t
	return t, nil
}

// --- MaxP table ------------------------------------------------------------

func parseMaxP(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 6 {
		return nil, errFontFormat("size of maxp table")
	}
	t := &MaxPTable{tableBase: makeTableBase(tag, b, offset, size)}
	t.self = t
	t.NumGlyphs = int(u16(b[4:]))
	return t, nil
}

// --- CMap table ------------------------------------------------------------

// This table defines mapping of character codes to a default glyph index. Different
// subtables may be defined that each contain mappings for different character encoding
// schemes. The table header indicates the character encodings for which subtables are
// present.
//
// From the OpenType spec: “Apart from a format 14 subtable, all other subtables are exclusive:
// applications should select and use one and ignore the others. […]
// If a font includes Unicode subtables for both 16-bit encoding (typically, format 4)
// and also 32-bit encoding (formats 10 or 12), then the characters supported by the
// subtable for 32-bit encoding should be a superset of the characters supported by
// the subtable for 16-bit encoding, and the 32-bit encoding should be used by
// applications.”
//
// We only support the following plaform/encoding/format combinations:
//
//	0 (Unicode)  0…3  4   Unicode BMP
//	0 (Unicode)  4    12  Unicode full
//	3 (Win)      1    4   Unicode BMP
//	3 (Win)      10   12  Unicode full
func parseCMap(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	n, err := b.u16(2) // number of sub-tables
	if err != nil {
		return nil, errFontFormat("size of cmap table")
	}
	tracer().Debugf("font cmap has %d sub-tables in %d|%d bytes", n, len(b), size)
	t := &CMapTable{tableBase: makeTableBase(tag, b, offset, size)}
	t.self = t
	const headerSize, entrySize = 4, 8
	if size < headerSize+entrySize*uint32(n) {
		return nil, errFontFormat("size of cmap table")
	}
	var enc encodingRecord
	for i := 0; i < int(n); i++ {
		rec, _ := b.view(headerSize+entrySize*i, entrySize)
		pid, psid := u16(rec), u16(rec[2:])
		width := platformEncodingWidth(pid, psid)
		if width <= enc.width {
			continue
		}
		off := u32(rec[4:])
		if uint64(off)+2 > uint64(len(b)) {
			tracer().Infof("cmap sub-table cannot be parsed")
			continue
		}
		format := b.U16(int(off))
		tracer().Debugf("cmap table contains subtable with format %d", format)
		if supportedCmapFormat(format, pid, psid) {
			enc.platformID = pid
			enc.encodingID = psid
			enc.width = width
			enc.format = format
			enc.subtable = b[off:]
		}
	}
	if enc.width == 0 {
		return nil, errFontFormat("no supported cmap format found")
	}
	if t.GlyphIndexMap, err = makeGlyphIndex(enc); err != nil {
		return nil, err
	}
	return t, nil
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	subtable   binarySegm
	format     uint16
	width      int // encoding width in bytes
}
