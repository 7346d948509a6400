package gbid

import (
	"github.com/genebe/gbid/internal/bitfield"
	"github.com/genebe/gbid/internal/genome"
)

// Variant is the SPDI form recovered from a direct-path GBID.
type Variant struct {
	Chrom     string
	Position  int64 // 0-based anchor
	DelLength int64
	Ins       string
}

// codeBase is the inverse of baseCode.
var codeBase = [4]byte{'A', 'C', 'G', 'T'}

// Decode unpacks a direct-path GBID. Hash-path GBIDs are not
// invertible, and GBIDs whose position falls outside the chromosome
// catalogue (such as packed sentinels) have no canonical form; both
// report ok == false.
func Decode(id GBID) (Variant, bool) {
	w := bitfield.Word(id)
	if fieldFullHash.GetWord(w) == 1 || fieldChangeHash.GetWord(w) == 1 {
		return Variant{}, false
	}

	gp := fieldPosition.GetWord(w)
	if gp >= uint64(genome.TotalLength()) {
		return Variant{}, false
	}
	// Encode stored offset + position0 - 1, so the 1-based position
	// coming back is exactly the original 0-based anchor.
	chrom, anchor, ok := genome.GlobalToChrom(int64(gp))
	if !ok {
		return Variant{}, false
	}

	insLen := int(fieldInsLen.GetWord(w))
	if insLen > MaxInsLength {
		return Variant{}, false
	}
	bases := fieldIns.GetWord(w)
	ins := make([]byte, insLen)
	for i := range ins {
		ins[i] = codeBase[(bases>>(2*uint(i)))&3]
	}

	return Variant{
		Chrom:     chrom,
		Position:  anchor,
		DelLength: int64(fieldDelLen.GetWord(w)),
		Ins:       string(ins),
	}, true
}
