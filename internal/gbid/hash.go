package gbid

import "github.com/spaolacci/murmur3"

// DefaultSeed seeds both lanes of the 128-bit MurmurHash3, matching the
// seed baked into every previously issued GBID.
const DefaultSeed uint32 = 104729

// hashLow64 returns the low 64 bits of the MurmurHash3 x64-128 digest
// of data.
func hashLow64(data []byte, seed uint32) uint64 {
	h := murmur3.New128WithSeed(seed)
	h.Write(data)
	low, _ := h.Sum128()
	return low
}
