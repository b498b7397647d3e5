package ot

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Name IDs of table 'name', as defined by the OpenType specification.
const (
	NameIDFamily    uint16 = 1
	NameIDSubfamily uint16 = 2
	NameIDFull      uint16 = 4
	NameIDVersion   uint16 = 5
)

// NameTable holds the human readable names of a font.
// Only Unicode-encoded records are interpreted (platform 0, or platform 3
// with encoding 1 or 10), all of them stored as UTF-16BE.
type NameTable struct {
	tableBase
	names map[uint16]string
}

// Lookup returns the name string for a name ID, or "" if the font does not
// contain a Unicode name record for it.
func (t *NameTable) Lookup(id uint16) string {
	if t == nil {
		return ""
	}
	return t.names[id]
}

// Names struct for table 'name':
//
//	uint16  version
//	uint16  count
//	uint16  storageOffset
//	NameRecord[count], 12 bytes each:
//	  platformID, encodingID, languageID, nameID, length, stringOffset
//
// Malformed name records are skipped: the name table is informational only,
// and a broken one should not prevent measuring text.
func parseName(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	t := &NameTable{tableBase: makeTableBase(tag, b, offset, size), names: make(map[uint16]string)}
	t.self = t
	count, err1 := b.u16(2)
	storage, err2 := b.u16(4)
	if err1 != nil || err2 != nil {
		tracer().Infof("name table too short, ignoring it")
		return t, nil
	}
	for i := 0; i < int(count); i++ {
		rec, err := b.view(6+12*i, 12)
		if err != nil {
			tracer().Infof("name table truncated after %d records", i)
			break
		}
		pltf, enc := u16(rec), u16(rec[2:])
		if !(pltf == 0 || (pltf == 3 && (enc == 1 || enc == 10))) {
			continue
		}
		id := u16(rec[6:])
		if _, ok := t.names[id]; ok { // first matching record wins
			continue
		}
		strlen, stroff := int(u16(rec[8:])), int(u16(rec[10:]))
		str, err := b.slice(int(storage)+stroff, int(storage)+stroff+strlen)
		if err != nil {
			continue
		}
		name, err := decodeUtf16(str)
		if err != nil {
			tracer().Debugf("name record %d: %v", id, err)
			continue
		}
		t.names[id] = name
	}
	return t, nil
}

func decodeUtf16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
