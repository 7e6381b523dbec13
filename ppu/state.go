package ppu

// State is the serializable snapshot of PPU-owned memory and
// registers. The pixel fetcher and FIFO are mid-scanline pipeline state
// rather than architectural state; Restore resets them, so a restored
// PPU always resumes at the start of its current dot's tile fetch
// rather than reproducing the exact fetcher sub-state, an accepted
// simplification for save states.
type State struct {
	VRAM [0x2000]byte
	OAM  [160]byte

	LCDC, STAT, SCY, SCX, LY, LYC byte
	BGP, OBP0, OBP1, WY, WX       byte

	Mode    Mode
	Dot     int
	Frame   uint64
	WinLine int
}

func (p *PPU) Snapshot() State {
	return State{
		VRAM: p.vram, OAM: p.oam,
		LCDC: p.lcdc, STAT: p.stat, SCY: p.scy, SCX: p.scx, LY: p.ly, LYC: p.lyc,
		BGP: p.bgp, OBP0: p.obp0, OBP1: p.obp1, WY: p.wy, WX: p.wx,
		Mode: p.mode, Dot: p.dot, Frame: p.frame, WinLine: p.winLine,
	}
}

func (p *PPU) Restore(s State) {
	p.vram, p.oam = s.VRAM, s.OAM
	p.lcdc, p.stat, p.scy, p.scx, p.ly, p.lyc = s.LCDC, s.STAT, s.SCY, s.SCX, s.LY, s.LYC
	p.bgp, p.obp0, p.obp1, p.wy, p.wx = s.BGP, s.OBP0, s.OBP1, s.WY, s.WX
	p.mode, p.dot, p.frame, p.winLine = s.Mode, s.Dot, s.Frame, s.WinLine
	p.fetcher.reset()
	p.fifo.clear()
	p.lineSprites = nil
	p.winActive = false
}
