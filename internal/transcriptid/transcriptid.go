// Package transcriptid packs transcript, protein, and gene accession
// strings (ENST00000404276.6, NM_001234567.3, ...) into 64-bit
// integers and back.
package transcriptid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/genebe/gbid/internal/bitfield"
)

// ErrInvalidIdentifier is returned for strings with no known accession
// prefix or with non-numeric id/version parts.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Type describes one accession class.
type Type struct {
	Prefix   string
	Padding  int  // zero-pad width for non-RefSeq types
	Computed bool // computationally predicted record (X*/Y* RefSeq)
	RefSeq   bool
}

const unassignedPrefix = "unassigned_transcript_"

// types is matched first-to-last by prefix; the first hit wins. The
// order and positions are a wire-format constant: the packed TYPE field
// is an index into this table.
var types = []Type{
	{"ENST", 11, false, false},
	{"ENSP", 11, false, false},
	{"ENSG", 11, false, false},
	{"NM_", 9, false, true},
	{"NR_", 9, false, true},
	{"NP_", 9, false, true},
	{"XM_", 9, true, true},
	{"XP_", 9, true, true},
	{"YP_", 9, true, true},
	{"XR_", 9, true, true},
	{unassignedPrefix, 0, false, true},
	{"ENSR", 11, false, false},
}

// Types returns the accession type table in declared order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Packed layout on a single 64-bit word.
var (
	fieldVersion = bitfield.Field{Offset: 0, Width: 18}
	fieldNumber  = bitfield.Field{Offset: 18, Width: 37}
	fieldType    = bitfield.Field{Offset: 55, Width: 8}
	fieldOmit    = bitfield.Field{Offset: 63, Width: 1} // reserved
)

// ID is a packed accession. Two accessions are equal iff their IDs are
// equal.
type ID uint64

// Encode packs an accession string.
func Encode(s string) (ID, error) {
	typeIdx := -1
	for i := range types {
		if strings.HasPrefix(s, types[i].Prefix) {
			typeIdx = i
			break
		}
	}
	if typeIdx < 0 {
		return 0, fmt.Errorf("%w: unknown accession prefix in %q", ErrInvalidIdentifier, s)
	}

	rest := s[len(types[typeIdx].Prefix):]
	numStr := rest
	var version uint64
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		numStr = rest[:dot]
		v, err := strconv.ParseUint(rest[dot+1:], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: malformed version in %q", ErrInvalidIdentifier, s)
		}
		version = v
	}
	number, err := strconv.ParseUint(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed numeric id in %q", ErrInvalidIdentifier, s)
	}

	var v uint64
	v = fieldType.Set(v, uint64(typeIdx))
	v = fieldNumber.Set(v, number)
	v = fieldVersion.Set(v, version)
	return ID(v), nil
}

// Identifier is the unpacked form of an ID.
type Identifier struct {
	Type    Type
	Number  uint64
	Version uint64
}

// Decode unpacks an ID. Fails when the TYPE field indexes past the
// type table.
func Decode(id ID) (Identifier, error) {
	ti := fieldType.Get(uint64(id))
	if ti >= uint64(len(types)) {
		return Identifier{}, fmt.Errorf("%w: type index %d out of range", ErrInvalidIdentifier, ti)
	}
	return Identifier{
		Type:    types[ti],
		Number:  fieldNumber.Get(uint64(id)),
		Version: fieldVersion.Get(uint64(id)),
	}, nil
}

// Number returns the numeric id part.
func (id ID) Number() uint64 {
	return fieldNumber.Get(uint64(id))
}

// Version returns the version part, 0 when the accession carried none.
func (id ID) Version() uint64 {
	return fieldVersion.Get(uint64(id))
}

// WithoutVersion clears the version field.
func (id ID) WithoutVersion() ID {
	return ID(fieldVersion.Set(uint64(id), 0))
}

// EqualIgnoreVersion reports whether two IDs name the same record,
// comparing type and numeric id only.
func (id ID) EqualIgnoreVersion(other ID) bool {
	return id.WithoutVersion() == other.WithoutVersion()
}

// String returns the canonical accession, or "" for an ID with an
// invalid type field.
func (id ID) String() string {
	ident, err := Decode(id)
	if err != nil {
		return ""
	}
	return ident.String()
}

// String renders the canonical accession: prefix, zero-padded number,
// and a ".version" suffix when the version is nonzero. RefSeq numbers
// pad to 6 digits below one million and 9 above, except unassigned
// transcripts, which pad not at all.
func (ident Identifier) String() string {
	pad := ident.Type.Padding
	if ident.Type.RefSeq {
		switch {
		case ident.Type.Prefix == unassignedPrefix:
			pad = 0
		case ident.Number >= 1_000_000:
			pad = 9
		default:
			pad = 6
		}
	}

	s := ident.Type.Prefix + fmt.Sprintf("%0*d", pad, ident.Number)
	if ident.Version > 0 {
		s += fmt.Sprintf(".%d", ident.Version)
	}
	return s
}
