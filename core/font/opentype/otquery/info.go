package otquery

import (
	"github.com/npillmayer/ttfwrap/core/font/opentype/ot"
)

// FontType returns the font type, encoded in the font header, as a string.
func FontType(otf *ot.Font) string {
	if otf.Header == nil {
		return "<empty>"
	}
	typ := otf.Header.FontType
	switch typ {
	case 0x4f54544f: // OTTO
		return "OpenType (outlines)"
	case 0x00010000: // TrueType
		return "TrueType"
	case 0x74727565: // true
		return "TrueType (Mac legacy)"
	}
	return "<unknown>"
}

// NameInfo returns a map with selected fields from OpenType table `name`.
// Will include (if available in the font) "family", "subfamily", "full"
// and "version".
func NameInfo(otf *ot.Font) map[string]string {
	names := make(map[string]string)
	if otf.Name == nil {
		tracer().Debugf("no name table found in font")
		return names
	}
	keys := map[string]uint16{
		"family":    ot.NameIDFamily,
		"subfamily": ot.NameIDSubfamily,
		"full":      ot.NameIDFull,
		"version":   ot.NameIDVersion,
	}
	for field, id := range keys {
		if val := otf.Name.Lookup(id); val != "" {
			names[field] = val
		}
	}
	return names
}

// FullName returns the full name of a font. If the font does not state one,
// family and subfamily are combined. Returns "" for fonts without names.
func FullName(otf *ot.Font) string {
	names := NameInfo(otf)
	if full, ok := names["full"]; ok {
		return full
	}
	family, sub := names["family"], names["subfamily"]
	if family != "" && sub != "" {
		return family + " " + sub
	}
	return family
}
