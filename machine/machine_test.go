package machine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/retrocore/dmgcore/cpu"
)

func romWithPrefix(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	return rom
}

func TestHostImplementsContextTickAccounting(t *testing.T) {
	h := New(romWithPrefix(0x00, 0x00)) // two NOPs
	before := h.Ticks()

	if err := h.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.Ticks() != before+4 {
		t.Fatalf("Ticks = %d after a NOP, want %d", h.Ticks(), before+4)
	}
}

func TestStepWrapsIllegalOpcodeAsFatalError(t *testing.T) {
	h := New(romWithPrefix(0xD3)) // illegal

	err := h.Step()
	if err == nil {
		t.Fatal("expected a fatal error for an illegal opcode")
	}
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("error %v is not a *FatalError", err)
	}
	if fatal.PC != 0x0100 {
		t.Fatalf("FatalError.PC = 0x%04X, want 0x0100", fatal.PC)
	}
	if fatal.Opcode != 0xD3 {
		t.Fatalf("FatalError.Opcode = 0x%04X, want 0x00D3", fatal.Opcode)
	}
}

func TestRunStopsOnSTOPOpcode(t *testing.T) {
	h := New(romWithPrefix(0x10, 0x00)) // STOP + padding byte

	err := h.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run returned %v, want nil on STOP", err)
	}
	if h.CPU.Mode != cpu.ModeStopped {
		t.Fatalf("Mode = %v, want ModeStopped", h.CPU.Mode)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	h := New(romWithPrefix(0x18, 0xFE)) // JR -2: spins forever
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx, nil)
	if err != context.Canceled {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}

func TestSnapshotRoundTripPreservesRegisters(t *testing.T) {
	h := New(romWithPrefix(0x3E, 0x42, 0x06, 0x07)) // LD A,0x42; LD B,0x07
	if err := h.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if err := h.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	snap := h.TakeSnapshot()

	// scramble live state, then restore.
	h.CPU.A = 0
	h.CPU.B = 0
	h.CPU.PC = 0

	h.RestoreSnapshot(snap)

	if h.CPU.A != 0x42 || h.CPU.B != 0x07 {
		t.Fatalf("A=0x%02X B=0x%02X after restore, want A=0x42 B=0x07", h.CPU.A, h.CPU.B)
	}
	if h.CPU.PC != 0x0104 {
		t.Fatalf("PC = 0x%04X after restore, want 0x0104", h.CPU.PC)
	}
}

func TestWriteSnapshotReadSnapshotRoundTrip(t *testing.T) {
	h := New(romWithPrefix(0x3E, 0x99))
	if err := h.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	want := h.TakeSnapshot()

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, want); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	got, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if got.CPU.A != want.CPU.A || got.CPU.PC != want.CPU.PC || got.Ticks != want.Ticks {
		t.Fatalf("round-tripped snapshot = %+v, want %+v", got.CPU, want.CPU)
	}
}

func TestSetJoypadWritesThroughBus(t *testing.T) {
	h := New(romWithPrefix())
	h.SetJoypad(0x2F)
	if h.Bus.Joypad != 0x2F {
		t.Fatalf("Bus.Joypad = 0x%02X, want 0x2F", h.Bus.Joypad)
	}
}

func TestLDHWritesBGPThroughCPU(t *testing.T) {
	// LD A,0x42; LDH (0x47),A - an LD through the CPU into a PPU register.
	h := New(romWithPrefix(0x3E, 0x42, 0xE0, 0x47))
	for i := 0; i < 2; i++ {
		if err := h.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	v, ok := h.PPU.ReadIO(0xFF47)
	if !ok || v != 0x42 {
		t.Fatalf("BGP = 0x%02X,%v want 0x42,true", v, ok)
	}
}
