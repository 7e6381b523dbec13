package timer

import (
	"testing"

	"github.com/retrocore/dmgcore/irq"
)

func TestTAC05OverflowReloadsAndRequestsInterrupt(t *testing.T) {
	var lines irq.Lines
	lines.WriteIE(irq.Timer)

	tm := New()
	tm.WriteTAC(0x05) // enable, rate 01 -> watches DIV bit 3
	tm.WriteTIMA(0xFE)
	tm.WriteTMA(0x7A)

	// 2x16 T-cycles = 8 M-cycles.
	for i := 0; i < 8; i++ {
		tm.Tick(&lines)
	}

	if tm.ReadTIMA() != 0x7A {
		t.Fatalf("TIMA = 0x%02X, want TMA (0x7A) reloaded after overflow", tm.ReadTIMA())
	}
	if pending, _ := lines.Pending(); pending&irq.Timer == 0 {
		t.Fatal("TIMER interrupt not requested on TIMA overflow")
	}
}

func TestDisabledTimerNeverIncrementsTIMA(t *testing.T) {
	var lines irq.Lines
	tm := New()
	tm.WriteTAC(0x00) // disabled

	for i := 0; i < 1000; i++ {
		tm.Tick(&lines)
	}

	if tm.ReadTIMA() != 0 {
		t.Fatalf("TIMA = 0x%02X, want 0 while timer disabled", tm.ReadTIMA())
	}
}

func TestWriteDIVResetsFullCounter(t *testing.T) {
	var lines irq.Lines
	tm := New()
	tm.WriteTAC(0x04) // enabled, rate 00 -> bit 9

	for i := 0; i < 300; i++ {
		tm.Tick(&lines)
	}
	before := tm.ReadDIV()
	if before == 0 {
		t.Fatal("DIV never advanced")
	}

	tm.WriteDIV()
	if tm.div != 0 {
		t.Fatalf("internal divider = 0x%04X after DIV write, want 0", tm.div)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	var lines irq.Lines
	tm := New()
	tm.WriteTAC(0x05)
	tm.WriteTMA(0x7A)
	for i := 0; i < 5; i++ {
		tm.Tick(&lines)
	}

	snap := tm.Snapshot()
	want := tm.ReadDIV()

	tm.WriteDIV() // scramble
	tm.WriteTAC(0x00)

	tm.Restore(snap)

	if tm.ReadDIV() != want {
		t.Fatalf("DIV = 0x%02X after restore, want 0x%02X", tm.ReadDIV(), want)
	}
	if tm.ReadTAC() != 0xFD {
		t.Fatalf("TAC = 0x%02X after restore, want 0xFD", tm.ReadTAC())
	}
}

func TestTACReadBackForcesUpperBitsHigh(t *testing.T) {
	tm := New()
	tm.WriteTAC(0x05)
	if tm.ReadTAC() != 0xFD {
		t.Fatalf("TAC read = 0x%02X, want 0xFD (0x05 | 0xF8)", tm.ReadTAC())
	}
}
