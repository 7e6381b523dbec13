package serial

import (
	"testing"

	"github.com/retrocore/dmgcore/irq"
)

func TestWriteSCStartTransferCompletesSynchronously(t *testing.T) {
	var lines irq.Lines
	p := New(&lines)
	p.WriteSB(0x42)

	var got byte
	fired := false
	p.OnByteReady = func(b byte) {
		fired = true
		got = b
	}

	p.WriteSC(0x81)

	if !fired {
		t.Fatal("OnByteReady was not called for the internal-clock start pattern")
	}
	if got != 0x42 {
		t.Fatalf("OnByteReady saw 0x%02X, want 0x42", got)
	}
	if p.ReadSC()&0x80 != 0 {
		t.Fatal("SC start bit still set after transfer completed")
	}
	if lines.ReadIF()&irq.Serial == 0 {
		t.Fatal("SERIAL interrupt not requested on transfer completion")
	}
}

func TestWriteSCWithoutStartBitDoesNothing(t *testing.T) {
	var lines irq.Lines
	p := New(&lines)
	p.OnByteReady = func(byte) { t.Fatal("OnByteReady fired without the start pattern") }

	p.WriteSC(0x01) // clock-select bit only, no start
	if p.ReadSC()&0x01 == 0 {
		t.Fatal("SC clock-select bit lost")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	p := New(nil)
	p.WriteSB(0x3C)
	p.WriteSC(0x01)

	snap := p.Snapshot()
	p.WriteSB(0x00)
	p.Restore(snap)

	if p.ReadSB() != 0x3C {
		t.Fatalf("SB = 0x%02X after restore, want 0x3C", p.ReadSB())
	}
}

func TestReadSCForcesUnusedBitsHigh(t *testing.T) {
	p := New(nil)
	if p.ReadSC()&0x7E != 0x7E {
		t.Fatalf("ReadSC = 0x%02X, want bits 6-1 forced high", p.ReadSC())
	}
}
