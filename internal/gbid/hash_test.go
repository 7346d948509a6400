package gbid

import "testing"

func TestHashLow64(t *testing.T) {
	// Reference digests from the MurmurHash3 x64-128 implementation the
	// format was defined against.
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{"empty input", "", 11324130426821486914},
		{"change string", "0:ACACACACAT", 8805780341766427119},
		{"long deletion change", "150:A", 7993792435735081517},
		{"full variant string", "1:100:1:A", 5758549526178028385},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hashLow64([]byte(tt.input), DefaultSeed); got != tt.want {
				t.Errorf("hashLow64(%q, %d) = %d, want %d", tt.input, DefaultSeed, got, tt.want)
			}
		})
	}
}

func TestHashLow64SeedSensitivity(t *testing.T) {
	input := []byte("0:ACACACACAT")
	if hashLow64(input, DefaultSeed) == hashLow64(input, DefaultSeed+1) {
		t.Error("different seeds should produce different digests")
	}
	if hashLow64(input, DefaultSeed) != hashLow64(input, DefaultSeed) {
		t.Error("hash is not deterministic")
	}
}
