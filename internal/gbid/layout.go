// Package gbid packs normalized genomic variants into GBIDs: fixed-layout
// integers carrying a linear genome position plus either the literal
// change (direct path) or a hash of it (change-hash path).
package gbid

import (
	"fmt"
	"math/big"

	"github.com/genebe/gbid/internal/bitfield"
)

// Direct-path capacity. Larger changes fall back to the change-hash
// layout.
const (
	MaxInsLength = 9
	MaxDelLength = 127
)

// Packed layout. The direct and change-hash layouts share the flag and
// position fields and differ below bit 30: either INS_LEN/DEL_LEN/INS
// or the 29-bit change hash. POSITION is 36 bits wide, so the packed
// value does not fit a single 64-bit word; GBID keeps the overflow bits
// (64..67) in Hi.
var (
	fieldIns             = bitfield.Field{Offset: 0, Width: 18}
	fieldChangeHashValue = bitfield.Field{Offset: 0, Width: 29}
	fieldDelLen          = bitfield.Field{Offset: 18, Width: 7}
	fieldInsLen          = bitfield.Field{Offset: 25, Width: 4}
	fieldChangeHash      = bitfield.Field{Offset: 29, Width: 1}
	fieldPosition        = bitfield.Field{Offset: 30, Width: 36}
	fieldNull            = bitfield.Field{Offset: 66, Width: 1} // reserved
	fieldFullHash        = bitfield.Field{Offset: 67, Width: 1} // reserved
)

// GBID is a packed genomic variant identifier. Bits 0..63 live in Lo,
// bits 64..127 in Hi. Comparing GBIDs with == compares the full packed
// value.
type GBID struct {
	Hi uint64
	Lo uint64
}

// IsChangeHash reports whether the GBID uses the hashed fallback layout.
func (g GBID) IsChangeHash() bool {
	return fieldChangeHash.GetWord(bitfield.Word(g)) == 1
}

// IsFullHash reports whether the reserved FULL_HASH flag is set.
func (g GBID) IsFullHash() bool {
	return fieldFullHash.GetWord(bitfield.Word(g)) == 1
}

// Uint64 returns the low word and whether the whole value fits in it.
func (g GBID) Uint64() (uint64, bool) {
	return g.Lo, g.Hi == 0
}

// BigInt returns the packed value as an arbitrary-precision integer.
func (g GBID) BigInt() *big.Int {
	v := new(big.Int).SetUint64(g.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(g.Lo))
}

// String returns the packed value in decimal.
func (g GBID) String() string {
	return g.BigInt().String()
}

// Parse converts a decimal string back into a GBID.
func Parse(s string) (GBID, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return GBID{}, fmt.Errorf("malformed GBID %q", s)
	}
	return GBID{
		Hi: new(big.Int).Rsh(v, 64).Uint64(),
		Lo: v.Uint64(),
	}, nil
}
