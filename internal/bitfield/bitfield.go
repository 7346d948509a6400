// Package bitfield provides named bit-field layouts over 64-bit and
// two-word 128-bit integers. A layout is a table of Field descriptors;
// get/set helpers replace per-mask shift arithmetic so the same field
// definitions serve both word sizes.
package bitfield

// Field describes a contiguous run of bits: Width bits starting at
// bit Offset (bit 0 is the least significant).
type Field struct {
	Offset uint
	Width  uint
}

// mask returns the field's value mask (unshifted).
func (f Field) mask() uint64 {
	if f.Width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << f.Width) - 1
}

// Get extracts the field from a 64-bit word.
func (f Field) Get(v uint64) uint64 {
	return (v >> f.Offset) & f.mask()
}

// Set writes value into the field of a 64-bit word. The value is
// truncated to the field width.
func (f Field) Set(v, value uint64) uint64 {
	m := f.mask()
	return (v &^ (m << f.Offset)) | ((value & m) << f.Offset)
}

// Word is a 128-bit unsigned integer. Bit i lives in Lo for i < 64 and
// in Hi at position i-64 otherwise.
type Word struct {
	Hi uint64
	Lo uint64
}

// GetWord extracts the field from a 128-bit word. Fields may straddle
// the Lo/Hi boundary but must carry at most 64 bits.
func (f Field) GetWord(w Word) uint64 {
	var v uint64
	switch {
	case f.Offset >= 64:
		v = w.Hi >> (f.Offset - 64)
	case f.Offset == 0:
		v = w.Lo
	default:
		v = (w.Lo >> f.Offset) | (w.Hi << (64 - f.Offset))
	}
	return v & f.mask()
}

// SetWord writes value into the field of a 128-bit word. The value is
// truncated to the field width.
func (f Field) SetWord(w Word, value uint64) Word {
	m := f.mask()
	value &= m
	switch {
	case f.Offset >= 64:
		sh := f.Offset - 64
		w.Hi = (w.Hi &^ (m << sh)) | (value << sh)
	case f.Offset == 0:
		w.Lo = (w.Lo &^ m) | value
	default:
		loMask := m << f.Offset
		hiMask := m >> (64 - f.Offset)
		w.Lo = (w.Lo &^ loMask) | (value << f.Offset)
		w.Hi = (w.Hi &^ hiMask) | (value >> (64 - f.Offset))
	}
	return w
}
