package genome

import "go.uber.org/zap"

// Sentinel values returned by PositionEncoder.Encode. They are reported
// results, not errors: callers decide whether to reject them.
const (
	// ChrNotSupported is returned for a chromosome missing from the
	// catalogue.
	ChrNotSupported int64 = -1
	// WrongChrPosition is returned for a position outside
	// [0, length(chrom)].
	WrongChrPosition int64 = -2
)

// PositionEncoder maps (chromosome, 1-based position) pairs onto the
// linear genome coordinate. It is stateless apart from an optional
// diagnostic logger and safe for concurrent use.
type PositionEncoder struct {
	logger *zap.Logger
}

// NewPositionEncoder creates a position encoder with logging disabled.
func NewPositionEncoder() *PositionEncoder {
	return &PositionEncoder{logger: zap.NewNop()}
}

// SetLogger sets the logger used for out-of-range diagnostics.
func (e *PositionEncoder) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Encode returns offset(chrom) + position - 1, or a sentinel:
// ChrNotSupported for an unknown chromosome, WrongChrPosition when the
// position is negative or beyond the chromosome length. The name is
// matched exactly; no "chr" stripping or case folding happens here.
func (e *PositionEncoder) Encode(chromosome string, position int64) int64 {
	i, ok := chromIndex[chromosome]
	if !ok {
		return ChrNotSupported
	}
	if position > chromosomes[i].Length || position < 0 {
		e.logger.Warn("position outside chromosome range",
			zap.String("chrom", chromosome),
			zap.Int64("pos", position))
		return WrongChrPosition
	}
	return offsets[i] + position - 1
}
