package gbid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGBIDStringAndParse(t *testing.T) {
	tests := []struct {
		name string
		id   GBID
		want string
	}{
		{"zero", GBID{}, "0"},
		{"fits in low word", GBID{Lo: 17227519582999023}, "17227519582999023"},
		{"max low word", GBID{Lo: ^uint64(0)}, "18446744073709551615"},
		{"spills into high word", GBID{Hi: 3, Lo: 18446744071595884544}, "73786976292724539392"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.String())

			back, err := Parse(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.id, back)
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "abc", "-1", "12.5", "340282366920938463463374607431768211456"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestUint64(t *testing.T) {
	lo, ok := GBID{Lo: 42}.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), lo)

	_, ok = GBID{Hi: 1, Lo: 42}.Uint64()
	assert.False(t, ok)
}

func TestBigIntMatchesWords(t *testing.T) {
	id := GBID{Hi: 0x8, Lo: 0x123456789ABCDEF0}
	v := id.BigInt()
	assert.Equal(t, 68, v.BitLen())
	assert.Equal(t, "148885721057140203248", v.String())
}
