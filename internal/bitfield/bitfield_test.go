package bitfield

import "testing"

func TestFieldGetSet(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value uint64
		want  uint64 // stored (possibly truncated) value
	}{
		{"low bits", Field{Offset: 0, Width: 18}, 0x2ABCD, 0x2ABCD},
		{"mid field", Field{Offset: 18, Width: 7}, 127, 127},
		{"truncates to width", Field{Offset: 18, Width: 7}, 128, 0},
		{"single flag", Field{Offset: 29, Width: 1}, 1, 1},
		{"top of word", Field{Offset: 55, Width: 8}, 0xAB, 0xAB},
		{"full width", Field{Offset: 0, Width: 64}, ^uint64(0), ^uint64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.field.Set(0, tt.value)
			if got := tt.field.Get(v); got != tt.want {
				t.Errorf("Get(Set(0, %#x)) = %#x, want %#x", tt.value, got, tt.want)
			}
		})
	}
}

func TestFieldSetPreservesNeighbors(t *testing.T) {
	a := Field{Offset: 0, Width: 18}
	b := Field{Offset: 18, Width: 7}
	c := Field{Offset: 25, Width: 4}

	var v uint64
	v = a.Set(v, 0x3FFFF)
	v = b.Set(v, 0x55)
	v = c.Set(v, 0x9)

	if got := a.Get(v); got != 0x3FFFF {
		t.Errorf("a = %#x, want 0x3ffff", got)
	}
	if got := b.Get(v); got != 0x55 {
		t.Errorf("b = %#x, want 0x55", got)
	}
	if got := c.Get(v); got != 0x9 {
		t.Errorf("c = %#x, want 0x9", got)
	}

	// Overwriting one field leaves the others alone.
	v = b.Set(v, 0)
	if got := a.Get(v); got != 0x3FFFF {
		t.Errorf("after clearing b, a = %#x, want 0x3ffff", got)
	}
	if got := b.Get(v); got != 0 {
		t.Errorf("after clearing b, b = %#x, want 0", got)
	}
}

func TestFieldWordStraddle(t *testing.T) {
	// 36 bits at offset 30 straddles the Lo/Hi boundary.
	f := Field{Offset: 30, Width: 36}

	tests := []struct {
		name   string
		value  uint64
		wantHi uint64
		wantLo uint64
	}{
		{"small value stays in Lo", 1, 0, 1 << 30},
		{"bit 33 reaches Lo bit 63", 1 << 33, 0, 1 << 63},
		{"bit 34 spills into Hi", 1 << 34, 1, 0},
		{"all ones", (1 << 36) - 1, 3, 0xFFFFFFFFC0000000},
		{"truncated to 36 bits", ^uint64(0), 3, 0xFFFFFFFFC0000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.SetWord(Word{}, tt.value)
			if w.Hi != tt.wantHi || w.Lo != tt.wantLo {
				t.Errorf("SetWord = {Hi:%#x Lo:%#x}, want {Hi:%#x Lo:%#x}",
					w.Hi, w.Lo, tt.wantHi, tt.wantLo)
			}
			want := tt.value & ((1 << 36) - 1)
			if got := f.GetWord(w); got != want {
				t.Errorf("GetWord = %#x, want %#x", got, want)
			}
		})
	}
}

func TestFieldWordHighBits(t *testing.T) {
	flag := Field{Offset: 67, Width: 1}

	w := flag.SetWord(Word{}, 1)
	if w.Hi != 1<<3 || w.Lo != 0 {
		t.Errorf("flag at 67 = {Hi:%#x Lo:%#x}, want {Hi:0x8 Lo:0}", w.Hi, w.Lo)
	}
	if got := flag.GetWord(w); got != 1 {
		t.Errorf("GetWord = %d, want 1", got)
	}

	// Clearing the flag restores the zero word without touching Lo.
	w.Lo = 0xDEADBEEF
	w = flag.SetWord(w, 0)
	if w.Hi != 0 || w.Lo != 0xDEADBEEF {
		t.Errorf("cleared flag = {Hi:%#x Lo:%#x}, want {Hi:0 Lo:0xdeadbeef}", w.Hi, w.Lo)
	}
}

func TestFieldWordLowField(t *testing.T) {
	f := Field{Offset: 0, Width: 29}
	w := f.SetWord(Word{Hi: 7, Lo: 0}, ^uint64(0))
	if w.Lo != (1<<29)-1 {
		t.Errorf("Lo = %#x, want %#x", w.Lo, uint64(1<<29)-1)
	}
	if w.Hi != 7 {
		t.Errorf("Hi = %#x, want 7", w.Hi)
	}
	if got := f.GetWord(w); got != (1<<29)-1 {
		t.Errorf("GetWord = %#x", got)
	}
}
