// Package bus implements the 64 KiB memory-mapped address space: it
// owns ROM, work RAM and high RAM directly, and forwards VRAM/OAM, the
// timer registers, the interrupt registers, serial and DMA to the
// devices that own them.
package bus

import (
	"fmt"
	"io"

	"github.com/retrocore/dmgcore/dma"
	"github.com/retrocore/dmgcore/irq"
	"github.com/retrocore/dmgcore/ppu"
	"github.com/retrocore/dmgcore/serial"
	"github.com/retrocore/dmgcore/timer"
)

const (
	romEnd    = 0x7FFF
	vramStart = 0x8000
	vramEnd   = 0x9FFF
	cartStart = 0xA000
	cartEnd   = 0xBFFF
	wramStart = 0xC000
	wramEnd   = 0xDFFF
	echoStart = 0xE000
	echoEnd   = 0xFDFF
	oamStart  = 0xFE00
	oamEnd    = 0xFE9F
	unusedEnd = 0xFEFF
	hramStart = 0xFF80
	hramEnd   = 0xFFFE
	ieAddr    = 0xFFFF
)

// Bus dispatches reads and writes across the address space. Log
// receives one line the first time each unmapped I/O register address
// is accessed, by a read or a write; later accesses to the same address
// are not logged. A nil Log discards the lines.
type Bus struct {
	ROM  []byte
	WRAM [wramEnd - wramStart + 1]byte
	HRAM [hramEnd - hramStart + 1]byte

	PPU    *ppu.PPU
	Timer  *timer.Timer
	DMA    *dma.Engine
	Lines  *irq.Lines
	Serial *serial.Port

	Joypad byte // raw 0xFF00 register; external input writes here

	Log io.Writer

	warned map[uint16]bool
}

// New returns a Bus wired to the given devices, with rom backing
// 0x0000-0x7FFF and 0xA000-0xBFFF (no-mapper cartridges have no
// separate cartridge RAM chip).
func New(rom []byte, p *ppu.PPU, t *timer.Timer, d *dma.Engine, lines *irq.Lines, s *serial.Port) *Bus {
	return &Bus{
		ROM:    rom,
		PPU:    p,
		Timer:  t,
		DMA:    d,
		Lines:  lines,
		Serial: s,
		Joypad: 0xFF,
		warned: make(map[uint16]bool),
	}
}

func (b *Bus) romByte(addr uint16) byte {
	if int(addr) < len(b.ROM) {
		return b.ROM[addr]
	}
	return 0xFF
}

// Read performs an untimed bus read. Callers that must charge an
// M-cycle do so themselves (see machine.Host, which is the Context the
// interpreter actually calls).
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= romEnd:
		return b.romByte(addr)
	case addr >= vramStart && addr <= vramEnd:
		return b.PPU.VRAMRead(addr)
	case addr >= cartStart && addr <= cartEnd:
		return b.romByte(addr)
	case addr >= wramStart && addr <= wramEnd:
		return b.WRAM[addr-wramStart]
	case addr >= echoStart && addr <= echoEnd:
		return 0
	case addr >= oamStart && addr <= oamEnd:
		if b.DMA.Active() {
			return 0xFF
		}
		return b.PPU.OAMRead(addr)
	case addr >= oamEnd+1 && addr <= unusedEnd:
		return 0
	case addr >= hramStart && addr <= hramEnd:
		return b.HRAM[addr-hramStart]
	case addr == ieAddr:
		return b.Lines.ReadIE()
	default:
		return b.readIO(addr)
	}
}

// Write performs an untimed bus write.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr <= romEnd, addr >= cartStart && addr <= cartEnd:
		// no-mapper cartridge: ROM and cartridge-RAM writes are no-ops.
	case addr >= vramStart && addr <= vramEnd:
		b.PPU.VRAMWrite(addr, v)
	case addr >= wramStart && addr <= wramEnd:
		b.WRAM[addr-wramStart] = v
	case addr >= echoStart && addr <= echoEnd:
		// ignored, per spec.
	case addr >= oamStart && addr <= oamEnd:
		if !b.DMA.Active() {
			b.PPU.OAMWrite(addr, v)
		}
	case addr >= oamEnd+1 && addr <= unusedEnd:
		// ignored.
	case addr >= hramStart && addr <= hramEnd:
		b.HRAM[addr-hramStart] = v
	case addr == ieAddr:
		b.Lines.WriteIE(v)
	default:
		b.writeIO(addr, v)
	}
}

// ReadDMA serves the DMA engine's source reads; it goes through the same
// dispatch as a CPU read (so an echo-region or HRAM source page behaves
// the same as a CPU read would), but ignores the OAM-active lock since
// the engine itself is what holds it.
func (b *Bus) ReadDMA(addr uint16) byte {
	if addr >= oamStart && addr <= oamEnd {
		return b.PPU.OAMRead(addr)
	}
	return b.Read(addr)
}

func (b *Bus) logOnce(addr uint16, format string, args ...interface{}) {
	if b.warned[addr] {
		return
	}
	b.warned[addr] = true
	w := b.Log
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, format, args...)
}
