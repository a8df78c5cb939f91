package quantize

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name string
		buf  []byte
		want []Pixel
	}{
		{"empty", nil, []Pixel{}},
		{"short", []byte{1, 2, 3}, []Pixel{}},
		{"one", []byte{1, 2, 3, 4}, []Pixel{{RGB{1, 2, 3}, 0}}},
		{"trailing", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []Pixel{{RGB{1, 2, 3}, 0}, {RGB{5, 6, 7}, 1}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Decode(tc.buf)); diff != "" {
				t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeForcesOpaque(t *testing.T) {
	buf := []byte{10, 20, 30, 0, 40, 50, 60, 128}
	got := Encode(Decode(buf))
	want := []byte{10, 20, 30, 0xff, 40, 50, 60, 0xff}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
}

func TestRGBPacking(t *testing.T) {
	c := FromUint32(0xff123456)
	if c != (RGB{0x12, 0x34, 0x56}) {
		t.Fatalf("FromUint32 = %#v", c)
	}
	if got := c.Uint32(); got != 0x123456 {
		t.Fatalf("Uint32 = %#x", got)
	}
	if got := c.String(); got != "#123456" {
		t.Fatalf("String = %q", got)
	}
	if got := (RGB{0xff, 0xff, 0xff}).Hex(); got != "#ffffff" {
		t.Fatalf("Hex = %q", got)
	}
	if got := (Pixel{c, 7}).String(); got != "#123456@7" {
		t.Fatalf("Pixel.String = %q", got)
	}
}
