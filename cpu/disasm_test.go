package cpu

import "testing"

func TestDisassembleFixedForms(t *testing.T) {
	cases := []struct {
		rom  []byte
		addr int
		want string
		len  int
	}{
		{[]byte{0x00}, 0, "NOP", 1},
		{[]byte{0x06, 0x42}, 0, "LD B,0x42", 2},
		{[]byte{0xC3, 0x34, 0x12}, 0, "JP 0x1234", 3},
		{[]byte{0x18, 0xFE}, 0, "JR -2", 2},
		{[]byte{0x28, 0x05}, 0, "JR Z,5", 2},
		{[]byte{0xCB, 0x7C}, 0, "BIT 7,H", 2},
		{[]byte{0xCB, 0x11}, 0, "RL C", 2},
	}
	for _, tc := range cases {
		got, n := Disassemble(tc.rom, tc.addr)
		if got != tc.want || n != tc.len {
			t.Fatalf("Disassemble(%v, %d) = %q,%d want %q,%d", tc.rom, tc.addr, got, n, tc.want, tc.len)
		}
	}
}

func TestDisassembleUnknownOpcodeFallsBackToRawByte(t *testing.T) {
	got, n := Disassemble([]byte{0xD3}, 0)
	if n != 1 {
		t.Fatalf("length = %d, want 1", n)
	}
	if got != "DB 0xD3" {
		t.Fatalf("got %q, want \"DB 0xD3\"", got)
	}
}
