package ot

/*
We replicate some of the code of the Go core team here, available from
https://github.com/golang/image/tree/master/font/sfnt.
I understand it's legal to do so, as long as the license information stays intact.

   Copyright 2017 The Go Authors. All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

// CMapTable represents an OpenType cmap table, i.e. the table to receive glyphs
// from code-points.
//
// See https://docs.microsoft.com/de-de/typography/opentype/spec/cmap
//
// Consulting the cmap table is a very frequent operation on fonts. We therefore
// construct an internal representation of the lookup table. A cmap table may contain
// more than one lookup table, but we will only instantiate the most appropriate one.
type CMapTable struct {
	tableBase
	GlyphIndexMap CMapGlyphIndex
}

// platformEncodingWidth returns the number of bytes per character assumed by
// the given Platform ID and Platform Specific ID.
//
// Old fonts, from when Unicode meant the Basic Multilingual Plane (BMP),
// assume that 2 bytes per character is sufficient.
//
// Recent fonts naturally support the full range of Unicode code points, which
// can take up to 4 bytes per character. Such fonts might still choose one of
// the legacy encodings if e.g. their repertoire is limited to the BMP, for
// greater compatibility with older software, or because the resultant file
// size can be smaller.
func platformEncodingWidth(pid, psid uint16) int {
	switch pid {
	case 0: // Unicode platform
		switch psid {
		case 0, 1, 2, 3: // Unicode BMP, including deprecated 1.0/1.1/ISO encodings
			return 2
		case 4, 10: // Unicode full  (include 10 from FontForge bug)
			return 4
		}
	case 3: // Windows platform
		switch psid {
		case 1: // Unicode BMP
			return 2
		case 10: // Unicode full
			return 4
		}
	}
	return 0 // width 0 will never get selected
}

// Formats 4 or 12 are appropriate for most fonts, depending on the Unicode character
// repertoire supported. Right now we do not support variable fonts nor fallback fonts.
//
// Note that FontForge may generate a bogus Platform Specific ID (value 10)
// for the Unicode Platform ID (value 0). See
// https://github.com/fontforge/fontforge/issues/2728
func supportedCmapFormat(format, pid, psid uint16) bool {
	tracer().Debugf("checking supported cmap format (%d | %d | %d)", pid, psid, format)
	return (pid == 0 && psid <= 3 && format == 4) ||
		(pid == 0 && (psid == 4 || psid == 10) && format == 12) ||
		(pid == 3 && psid == 1 && format == 4) ||
		(pid == 3 && psid == 10 && format == 12)
}

// Dispatcher to create the correct implementation of a CMapGlyphIndex from a given format.
func makeGlyphIndex(which encodingRecord) (CMapGlyphIndex, error) {
	switch which.format {
	case 4:
		return makeGlyphIndexFormat4(which.subtable)
	case 12:
		return makeGlyphIndexFormat12(which.subtable)
	}
	return nil, errFontFormat("unsupported cmap format")
}

// CMapGlyphIndex represents a CMap table index to receive a glyph index from
// a code-point.
type CMapGlyphIndex interface {
	Lookup(rune) GlyphIndex // central activiy of CMap
}

// Format 4: Segment mapping to delta values
// This is the standard character-to-glyph-index mapping subtable for fonts that support
// only Unicode Basic Multilingual Plane characters (U+0000 to U+FFFF).
type format4GlyphIndex struct {
	entries  []cmapEntry16
	glyphIds binarySegm
}

// Format 4 holds four parallel arrays to describe the segments (one segment for
// each contiguous range of codes).
// see https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values
type cmapEntry16 struct {
	end, start, delta, offset uint16
}

func (f4 format4GlyphIndex) Lookup(r rune) GlyphIndex {
	if r < 0 || r > 0xffff { // format 4 is for BMP code-points only
		return 0 // return index for 'missing character'
	}
	c := uint16(r)
	N := len(f4.entries)
	for i, j := 0, N; i < j; {
		h := i + (j-i)/2 // do a binary search on f4.entries (which may get large)
		entry := &f4.entries[h]
		if c < entry.start {
			j = h
		} else if entry.end < c {
			i = h + 1
		} else if entry.offset == 0 {
			return GlyphIndex(c + entry.delta)
		} else {
			// The OpenType spec describes the calculation to find the link into the glyph ID array
			// as follows:
			// “The character code offset from startCode is added to the idRangeOffset value.
			//  This sum is used as an offset from the current location within idRangeOffset
			//  itself to index out the correct glyphIdArray value.”
			// We already sliced the cmap into sub-segments, so we calculate a clean index
			// into the glyph ID array. First cut off the trailing part of offset which
			// results from skipping over to the start of the glyph ID array.
			deltaToEndOfEntries := (N - h) * 2 // 2 = byte size of offset array entry
			offset := int(entry.offset) - deltaToEndOfEntries
			index := offset/2 + int(c-entry.start)
			glyphInx := f4.glyphIds.U16(index * 2) // 0 in case of indexing error
			if glyphInx > 0 {
				// If the value obtained from the indexing operation is not 0 (which indicates
				// missingGlyph), idDelta[i] is added to it to get the glyph index
				glyphInx += entry.delta
			}
			return GlyphIndex(glyphInx)
		}
	}
	return GlyphIndex(0)
}

// The format's data is divided into three parts, which must occur in the following order:
//
// - A four-word header gives parameters for an optimized search of the segment list;
// - Four parallel arrays describe the segments (one segment for each contiguous range of codes);
// - A variable-length array of glyph IDs (unsigned words).
func makeGlyphIndexFormat4(b binarySegm) (CMapGlyphIndex, error) {
	const headerSize = 14
	if headerSize > b.Size() {
		return nil, errFontFormat("cmap subtable bounds overflow")
	}
	size := int(u16(b[2:]))
	segCount := int(u16(b[6:]))
	if segCount&1 != 0 {
		tracer().Debugf("cmap format 4 segment count is %d", segCount)
		return nil, errFontFormat("cmap table format, illegal segment count")
	}
	segCount /= 2
	eLength := 8*segCount + 2
	if size > b.Size() { // some fonts in the wild state a bogus length
		size = b.Size()
	}
	if headerSize+eLength > size {
		return nil, errFontFormat("cmap internal structure")
	}
	b = b[headerSize:size]
	endCodes := b[:segCount*2]
	next := segCount*2 + 2 // 2 is a padding entry in the cmap table
	startCodes := b[next : next+segCount*2]
	next += segCount * 2
	deltas := b[next : next+segCount*2]
	next += segCount * 2
	offsets := b[next : next+segCount*2]
	next += segCount * 2
	entries := make([]cmapEntry16, segCount)
	for i := range entries {
		entries[i] = cmapEntry16{
			end:    u16(endCodes[i*2:]),
			start:  u16(startCodes[i*2:]),
			delta:  u16(deltas[i*2:]),
			offset: u16(offsets[i*2:]),
		}
	}
	tracer().Debugf("cmap format 4 glyph table starts at offset %d", next)
	return format4GlyphIndex{
		entries:  entries,
		glyphIds: b[next:],
	}, nil
}

type cmapEntry32 struct {
	start, end, delta uint32
}

// Each sequential map group record specifies a character range and the starting glyph ID
// mapped from the first character. Glyph IDs for subsequent characters follow in sequence.
type format12GlyphIndex struct {
	entries []cmapEntry32
}

func (f12 format12GlyphIndex) Lookup(r rune) GlyphIndex {
	if r < 0 {
		return 0
	}
	c := uint32(r)
	for i, j := 0, len(f12.entries); i < j; {
		h := i + (j-i)/2 // do a binary search on f12.entries (which may get large)
		entry := &f12.entries[h]
		if c < entry.start {
			j = h
		} else if entry.end < c {
			i = h + 1
		} else {
			gid := c - entry.start + entry.delta
			if gid > 0xffff {
				return 0
			}
			return GlyphIndex(gid)
		}
	}
	return 0
}

// This is the standard character-to-glyph-index mapping subtable for fonts supporting
// Unicode character repertoires that include supplementary-plane characters (U+10000 to
// U+10FFFF).
//
// Format 12 is similar to format 4 in that it defines segments for sparse representation.
// It differs, however, in that it uses 32-bit character codes, and Glyph ID lookup
// and calculation is a lot simpler.
func makeGlyphIndexFormat12(b binarySegm) (CMapGlyphIndex, error) {
	const headerSize = 16
	if headerSize > b.Size() {
		return nil, errFontFormat("cmap subtable bounds overflow")
	}
	size := uint64(u32(b[4:]))
	grpCount := uint64(u32(b[12:]))
	eLength := 12 * grpCount
	if size > uint64(b.Size()) || eLength+headerSize > size {
		return nil, errFontFormat("cmap internal structure")
	}
	b = b[headerSize:size]
	// SequentialMapGroup Record:
	// Type     Name            Description
	// uint32   startCharCode   First character code in this group
	// uint32   endCharCode     Last character code in this group
	// uint32   startGlyphID    Glyph index corresponding to the starting character code
	entries := make([]cmapEntry32, 0, grpCount)
	for i := 0; i < int(grpCount); i++ {
		g := b[i*12:]
		e := cmapEntry32{
			start: u32(g),
			end:   u32(g[4:]),
			delta: u32(g[8:]),
		}
		if e.end < e.start {
			return nil, errFontFormat("cmap format 12 group order")
		}
		entries = append(entries, e)
	}
	return format12GlyphIndex{
		entries: entries,
	}, nil
}
