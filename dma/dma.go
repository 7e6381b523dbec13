// Package dma implements the OAM-DMA engine: a write to 0xFF46 arms a
// 2 M-cycle start delay followed by a 160-byte copy from (page<<8) into
// OAM, one byte per M-cycle, during which the bus locks OAM from the
// CPU's point of view.
package dma

// Source reads one byte of the page being DMA'd from the bus's point of
// view. The engine never touches VRAM/WRAM directly — it reads through
// the same bus the CPU does, so mirrored/echoed regions behave
// identically whether copied by DMA or by a CPU instruction.
type Source interface {
	ReadDMA(addr uint16) byte
}

// Dest receives each copied byte at its OAM index 0..159.
type Dest interface {
	WriteOAMByte(index byte, v byte)
}

const startDelay = 2

// Engine holds DMA's page register, progress counter and start delay.
type Engine struct {
	page    byte
	counter int
	delay   int
	active  bool
}

// Start arms a transfer from page<<8. A write to 0xFF46 always restarts
// the engine, even mid-transfer.
func (e *Engine) Start(page byte) {
	e.page = page
	e.counter = 0
	e.delay = startDelay
	e.active = true
}

// Active reports whether a transfer is in progress (including the start
// delay) — the bus consults this to decide whether CPU OAM access is
// locked.
func (e *Engine) Active() bool { return e.active }

// Tick advances DMA by one M-cycle.
func (e *Engine) Tick(src Source, dst Dest) {
	if !e.active {
		return
	}
	if e.delay > 0 {
		e.delay--
		return
	}
	addr := uint16(e.page)<<8 | uint16(e.counter)
	dst.WriteOAMByte(byte(e.counter), src.ReadDMA(addr))
	e.counter++
	if e.counter >= 160 {
		e.active = false
	}
}
