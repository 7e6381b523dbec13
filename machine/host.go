// Package machine aggregates the bus, PPU, timer, DMA engine, interrupt
// line and serial port into the single host the interpreter depends on,
// and drives the outer run loop and save-state support. It takes the ROM
// as a byte slice; reading ROM files is left to the caller.
package machine

import (
	"github.com/retrocore/dmgcore/bus"
	"github.com/retrocore/dmgcore/cpu"
	"github.com/retrocore/dmgcore/dma"
	"github.com/retrocore/dmgcore/irq"
	"github.com/retrocore/dmgcore/ppu"
	"github.com/retrocore/dmgcore/serial"
	"github.com/retrocore/dmgcore/timer"
)

// Host owns every emulated component and implements cpu.Context: it is
// the one object the interpreter borrows a capability from during Step.
type Host struct {
	CPU    *cpu.CPU
	Bus    *bus.Bus
	PPU    *ppu.PPU
	Timer  *timer.Timer
	DMA    *dma.Engine
	Lines  *irq.Lines
	Serial *serial.Port

	ticks uint64
}

// New returns a Host with ROM loaded and every device reset to its
// power-on state.
func New(rom []byte) *Host {
	lines := &irq.Lines{}
	p := ppu.New()
	t := timer.New()
	d := &dma.Engine{}
	s := serial.New(lines)
	b := bus.New(rom, p, t, d, lines, s)

	return &Host{
		CPU:    cpu.NewCPU(),
		Bus:    b,
		PPU:    p,
		Timer:  t,
		DMA:    d,
		Lines:  lines,
		Serial: s,
	}
}

// Reset restores the CPU, the PPU registers, the timer, the DMA engine
// and the interrupt lines to their power-on state and zeroes the tick
// count, keeping the currently loaded ROM. WRAM, HRAM, VRAM, OAM, the
// joypad byte and the serial registers keep their contents.
func (h *Host) Reset() {
	h.CPU.Reset()
	h.PPU.Reset()
	*h.Timer = timer.Timer{}
	*h.DMA = dma.Engine{}
	*h.Lines = irq.Lines{}
	h.ticks = 0
}

// tick advances every device by one M-cycle.
func (h *Host) tick() {
	h.ticks += 4
	h.Timer.Tick(h.Lines)
	h.PPU.Tick(h.Lines)
	h.DMA.Tick(h.Bus, h.PPU)
}

// TickCycle implements cpu.Context.
func (h *Host) TickCycle() { h.tick() }

// ReadCycle implements cpu.Context: the bus is read first, then every
// device ticks, so a read observes state as of the start of the cycle
// it consumes.
func (h *Host) ReadCycle(addr uint16) byte {
	v := h.Bus.Read(addr)
	h.tick()
	return v
}

// WriteCycle implements cpu.Context: the write lands before devices
// tick, so an I/O side effect from this exact write (e.g. DMA start)
// takes effect before the cycle it was issued on ends.
func (h *Host) WriteCycle(addr uint16, v byte) {
	h.Bus.Write(addr, v)
	h.tick()
}

// GetInterrupt implements cpu.Context.
func (h *Host) GetInterrupt() (byte, bool) { return h.Lines.Pending() }

// AckInterrupt implements cpu.Context.
func (h *Host) AckInterrupt(flag byte) { h.Lines.Ack(flag) }

// Peek implements cpu.Context: an untimed read for disassembly/debug
// tooling, never called from instruction execution.
func (h *Host) Peek(addr uint16) byte { return h.Bus.Read(addr) }

// Ticks implements cpu.Context.
func (h *Host) Ticks() uint64 { return h.ticks }

// Step executes one CPU step, wrapping any fatal decode error with
// debug context.
func (h *Host) Step() error {
	if err := h.CPU.Step(h); err != nil {
		return &FatalError{Err: err, PC: h.CPU.LastPC, Opcode: h.CPU.LastOpcode, Ticks: h.ticks}
	}
	return nil
}

// SetJoypad writes the raw joypad byte an external input handler has
// computed for the currently selected button/direction bank.
func (h *Host) SetJoypad(v byte) { h.Bus.Joypad = v }
