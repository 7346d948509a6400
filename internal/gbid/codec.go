package gbid

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/genebe/gbid/internal/bitfield"
	"github.com/genebe/gbid/internal/genome"
)

// ErrInvalidVariant is returned for variants the codec refuses to pack:
// unsupported chromosomes and insertions with bases outside ACGNT.
var ErrInvalidVariant = errors.New("invalid variant")

// Codec packs variants into GBIDs. It holds only immutable state and is
// safe for concurrent use.
type Codec struct {
	positions *genome.PositionEncoder
	seed      uint32
}

// NewCodec creates a codec with the default hash seed and logging
// disabled.
func NewCodec() *Codec {
	return &Codec{
		positions: genome.NewPositionEncoder(),
		seed:      DefaultSeed,
	}
}

// SetLogger sets the logger used for position diagnostics.
func (c *Codec) SetLogger(l *zap.Logger) {
	c.positions.SetLogger(l)
}

// normalizeChrom strips a leading chr/CHR/Chr prefix and uppercases.
// Other casings of the prefix are left alone, as in every GBID issued
// so far.
func normalizeChrom(chromosome string) string {
	if len(chromosome) >= 3 {
		switch chromosome[:3] {
		case "chr", "CHR", "Chr":
			chromosome = chromosome[3:]
		}
	}
	return strings.ToUpper(chromosome)
}

// baseCode maps an insertion base to its 2-bit code.
var baseCode = [256]byte{'A': 0, 'C': 1, 'G': 2, 'T': 3}

// encodeBases packs insertion bases 2 bits each, base i at bit 2i.
// The caller guarantees len(ins) <= MaxInsLength and bases in ACGT.
func encodeBases(ins string) uint64 {
	var encoded uint64
	for i := 0; i < len(ins); i++ {
		encoded |= uint64(baseCode[ins[i]]) << (2 * uint(i))
	}
	return encoded
}

// EncodeSPDI packs a variant in SPDI form: 0-based anchor position,
// count of deleted reference bases, literal inserted bases.
//
// The change-hash layout is used whenever the insertion is longer than
// MaxInsLength, the deletion longer than MaxDelLength, or the insertion
// contains 'N'; otherwise the change is packed literally.
//
// An unknown chromosome or an insertion with bases outside ACGNT fails
// with ErrInvalidVariant. An out-of-range position does not fail: the
// WrongChrPosition sentinel packs into the POSITION field as-is, so the
// result is deterministic but meaningless. Rejecting it here would
// change the value of GBIDs already in circulation.
func (c *Codec) EncodeSPDI(chromosome string, position int64, delLength int64, ins string) (GBID, error) {
	chrom := normalizeChrom(chromosome)

	// The encoder's own -1 adjustment consumes the 0-based coordinate.
	positionID := c.positions.Encode(chrom, position)
	if positionID == genome.ChrNotSupported {
		return GBID{}, fmt.Errorf("%w: unsupported position %s:%d", ErrInvalidVariant, chromosome, position)
	}

	hasN := false
	for i := 0; i < len(ins); i++ {
		switch ins[i] {
		case 'A', 'C', 'G', 'T':
		case 'N':
			hasN = true
		default:
			return GBID{}, fmt.Errorf("%w: insertion %q has bases outside ACGNT at position %d", ErrInvalidVariant, ins, position)
		}
	}

	if len(ins) > MaxInsLength || delLength > MaxDelLength || hasN {
		w := fieldChangeHash.SetWord(bitfield.Word{}, 1)
		w = fieldPosition.SetWord(w, uint64(positionID))
		w = fieldChangeHashValue.SetWord(w, c.changeHash(delLength, ins))
		return GBID(w), nil
	}

	w := fieldPosition.SetWord(bitfield.Word{}, uint64(positionID))
	w = fieldInsLen.SetWord(w, uint64(len(ins)))
	w = fieldDelLen.SetWord(w, uint64(delLength))
	w = fieldIns.SetWord(w, encodeBases(ins))
	return GBID(w), nil
}

// EncodeVCF packs a classic VCF-style variant: 1-based position with
// literal ref and alt alleles. The shared ref/alt prefix is trimmed
// (advancing the anchor) before delegating to EncodeSPDI.
func (c *Codec) EncodeVCF(chromosome string, position int64, ref, alt string) (GBID, error) {
	position--
	altNorm := strings.ToUpper(alt)

	for len(ref) > 0 && len(altNorm) > 0 && ref[0] == altNorm[0] {
		ref = ref[1:]
		altNorm = altNorm[1:]
		position++
	}

	return c.EncodeSPDI(chromosome, position, int64(len(ref)), altNorm)
}

// EncodeVCFRefLength is EncodeVCF for callers that already know the
// deletion length instead of the ref bases. No prefix trimming happens;
// the length is used as given.
func (c *Codec) EncodeVCFRefLength(chromosome string, position int64, refLength int64, alt string) (GBID, error) {
	return c.EncodeSPDI(chromosome, position-1, refLength, strings.ToUpper(alt))
}

// changeHash hashes "{delLength}:{ins}"; the field width truncates it
// to 29 bits on packing.
func (c *Codec) changeHash(delLength int64, ins string) uint64 {
	return hashLow64([]byte(fmt.Sprintf("%d:%s", delLength, ins)), c.seed)
}

// fullHash packs the hash of the complete variant with the reserved
// FULL_HASH flag set. No public entry point produces this layout; the
// flag bit is kept for compatibility with the wire format.
func (c *Codec) fullHash(chromosome string, position int64, delLength int64, ins string) GBID {
	h := hashLow64([]byte(fmt.Sprintf("%s:%d:%d:%s", chromosome, position, delLength, ins)), c.seed)
	w := bitfield.Word{Lo: h}
	w = fieldFullHash.SetWord(w, 1)
	return GBID(w)
}
