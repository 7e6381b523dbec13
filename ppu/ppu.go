// Package ppu implements the pixel-processing unit: VRAM and OAM
// storage, the LCD register block, the per-dot scanline state machine,
// the pixel fetcher and FIFO, and the 160x144 ARGB framebuffer they
// drain into.
package ppu

import "github.com/retrocore/dmgcore/irq"

const (
	Width  = 160
	Height = 144

	dotsPerLine  = 456
	oamScanDots  = 80
	linesPerVBlank = 10
	totalLines   = 154
)

// Mode is the value STAT's low two bits report.
type Mode byte

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAMScan
	ModePixelTransfer
)

// LCDC bits.
const (
	lcdcEnable       = 1 << 7
	lcdcWinMapArea   = 1 << 6
	lcdcWinEnable    = 1 << 5
	lcdcTileDataArea = 1 << 4
	lcdcBGMapArea    = 1 << 3
	lcdcObjSize      = 1 << 2
	lcdcObjEnable    = 1 << 1
	lcdcBGEnable     = 1 << 0
)

// STAT bits.
const (
	statLYCSelect   = 1 << 6
	statOAMSelect   = 1 << 5
	statVBlankSelect = 1 << 4
	statHBlankSelect = 1 << 3
	statLYCEqual    = 1 << 2
)

// sprite is a resolved OAM entry, cached for the current scanline.
type sprite struct {
	y, x, tile, attr byte
	oamIndex         int
}

// PPU owns video memory, the LCD registers, the fetch/FIFO pipeline and
// the framebuffer.
type PPU struct {
	vram [0x2000]byte
	oam  [160]byte

	lcdc, stat, scy, scx, ly, lyc byte
	bgp, obp0, obp1, wy, wx       byte

	mode      Mode
	dot       int
	frame     uint64
	winLine   int
	winActive bool

	lineSprites []sprite

	fetcher fetcher
	fifo    pixelFIFO

	framebuffer [Width * Height]uint32
}

// New returns a PPU in its post-boot-ROM power-on state: LCD on,
// default palette, LY 0, mode OAM-scan.
func New() *PPU {
	p := &PPU{}
	p.Reset()
	return p
}

// Reset restores power-on register values.
func (p *PPU) Reset() {
	p.lcdc = 0x91
	p.stat = 0x85
	p.scy, p.scx = 0, 0
	p.ly, p.lyc = 0, 0
	p.bgp, p.obp0, p.obp1 = 0xFC, 0xFF, 0xFF
	p.wy, p.wx = 0, 0
	p.mode = ModeOAMScan
	p.dot = 0
	p.frame = 0
	p.winLine = 0
	p.winActive = false
	p.lineSprites = nil
	p.fifo.reset()
	for i := range p.framebuffer {
		p.framebuffer[i] = DefaultColors[0]
	}
}

// VRAMRead and VRAMWrite serve the bus's 0x8000-0x9FFF window.
func (p *PPU) VRAMRead(addr uint16) byte     { return p.vram[addr&0x1FFF] }
func (p *PPU) VRAMWrite(addr uint16, v byte) { p.vram[addr&0x1FFF] = v }

// OAMRead and OAMWrite serve the bus's 0xFE00-0xFE9F window; the bus is
// responsible for substituting 0xFF / dropping writes while DMA holds
// OAM locked.
func (p *PPU) OAMRead(addr uint16) byte     { return p.oam[addr&0xFF] }
func (p *PPU) OAMWrite(addr uint16, v byte) { p.oam[addr&0xFF] = v }

// WriteOAMByte is the narrower interface the DMA engine copies through,
// addressed 0..159 rather than by bus address.
func (p *PPU) WriteOAMByte(index byte, v byte) { p.oam[index] = v }

// Framebuffer returns the current 160x144 ARGB buffer. The returned
// slice aliases PPU-owned storage; callers that need a stable snapshot
// should copy it.
func (p *PPU) Framebuffer() []uint32 { return p.framebuffer[:] }

// FrameCounter returns the count of VBlank entries since power-on.
func (p *PPU) FrameCounter() uint64 { return p.frame }

// CurrentMode reports the current scanline-FSM mode.
func (p *PPU) CurrentMode() Mode { return p.mode }

// LY returns the current scanline.
func (p *PPU) LY() byte { return p.ly }

func spriteHeight(lcdc byte) int {
	if lcdc&lcdcObjSize != 0 {
		return 16
	}
	return 8
}

// Tick advances the PPU by one M-cycle (four dots) and may raise LCD
// and VBLANK in lines.
func (p *PPU) Tick(lines *irq.Lines) {
	if p.lcdc&lcdcEnable == 0 {
		return
	}
	for i := 0; i < 4; i++ {
		p.tickDot(lines)
	}
}
