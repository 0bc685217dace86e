package core

import "testing"

func TestUtoa(t *testing.T) {
	cases := []struct {
		in   uint32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{4294967295, "4294967295"},
	}
	for _, c := range cases {
		if got := utoa(c.in); got != c.want {
			t.Errorf("utoa(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHex8(t *testing.T) {
	if got := hex8(ResponderAddr); got != "0x1A" {
		t.Errorf("hex8(ResponderAddr) = %q, want %q", got, "0x1A")
	}
	if got := hex8(0); got != "0x00" {
		t.Errorf("hex8(0) = %q, want %q", got, "0x00")
	}
	if got := hex8(0xFF); got != "0xFF" {
		t.Errorf("hex8(0xFF) = %q, want %q", got, "0xFF")
	}
}

func TestFormatBytes(t *testing.T) {
	if got := FormatBytes([]byte{}); got != "[]" {
		t.Errorf("FormatBytes(empty) = %q, want %q", got, "[]")
	}
	got := FormatBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	want := "[1, 2, 3, 4, 5, 6, 7, 8]"
	if got != want {
		t.Errorf("FormatBytes = %q, want %q", got, want)
	}
}
