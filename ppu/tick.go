package ppu

import (
	"sort"

	"github.com/retrocore/dmgcore/irq"
)

func (p *PPU) tickDot(lines *irq.Lines) {
	switch p.mode {
	case ModeOAMScan:
		if p.dot == 0 {
			p.scanSprites()
		}
		p.dot++
		if p.dot >= oamScanDots {
			p.enterPixelTransfer()
		}
	case ModePixelTransfer:
		p.dot++
		p.stepFetcher()
		p.stepDrain(lines)
	case ModeHBlank, ModeVBlank:
		p.dot++
		if p.dot >= dotsPerLine {
			p.endLine(lines)
		}
	}
}

// scanSprites walks OAM and selects up to 10 sprites visible on the
// current scanline, sorted by X ascending (stable, so ties keep OAM
// order).
func (p *PPU) scanSprites() {
	height := spriteHeight(p.lcdc)
	lineY := int(p.ly) + 16

	var found []sprite
	for i := 0; i < 40 && len(found) < 10; i++ {
		base := i * 4
		y := p.oam[base]
		x := p.oam[base+1]
		if x == 0 {
			continue
		}
		top := int(y)
		if lineY < top || lineY >= top+height {
			continue
		}
		found = append(found, sprite{y: y, x: x, tile: p.oam[base+2], attr: p.oam[base+3], oamIndex: i})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].x < found[j].x })
	p.lineSprites = found
}

func (p *PPU) enterPixelTransfer() {
	p.mode = ModePixelTransfer
	p.fetcher.reset()
	p.fifo.clear()
	p.winActive = p.lcdc&lcdcWinEnable != 0 && p.ly >= p.wy
}

func (p *PPU) enterHBlank(lines *irq.Lines) {
	p.mode = ModeHBlank
	if p.stat&statHBlankSelect != 0 {
		lines.Request(irq.LCD)
	}
}

func (p *PPU) endLine(lines *irq.Lines) {
	if p.winActive && p.ly >= p.wy && int(p.ly) < int(p.wy)+144 && p.wx <= 166 {
		p.winLine++
	}

	p.ly++
	wrapped := false
	if int(p.ly) >= totalLines {
		p.ly = 0
		p.winLine = 0
		wrapped = true
	}

	if p.ly == p.lyc && p.stat&statLYCSelect != 0 {
		lines.Request(irq.LCD)
	}

	switch {
	case p.ly == 144:
		p.mode = ModeVBlank
		lines.Request(irq.VBlank)
		p.frame++
		if p.stat&statVBlankSelect != 0 {
			lines.Request(irq.LCD)
		}
	case wrapped || p.ly < 144:
		p.mode = ModeOAMScan
		if p.stat&statOAMSelect != 0 {
			lines.Request(irq.LCD)
		}
	default:
		p.mode = ModeVBlank
	}
	p.dot = 0
}

// advanceHalfDot returns true once every two calls, modeling a fetcher
// state that takes two dots.
func (p *PPU) advanceHalfDot() bool {
	p.fetcher.halfDot = !p.fetcher.halfDot
	return !p.fetcher.halfDot
}

func (p *PPU) stepFetcher() {
	switch p.fetcher.state {
	case fetchTile:
		if p.advanceHalfDot() {
			p.fetchTileID()
			p.fetcher.state = fetchDataLow
		}
	case fetchDataLow:
		if p.advanceHalfDot() {
			p.fetchPlaneByte(0)
			p.fetcher.state = fetchDataHigh
		}
	case fetchDataHigh:
		if p.advanceHalfDot() {
			p.fetchPlaneByte(1)
			p.fetcher.state = fetchIdle
		}
	case fetchIdle:
		if p.advanceHalfDot() {
			p.fetcher.state = fetchPush
		}
	case fetchPush:
		if p.fifo.len() <= 8 {
			p.pushTileRow()
			p.fetcher.fetchX++
			p.fetcher.state = fetchTile
		}
	}
}

func (p *PPU) fetchTileID() {
	useWindow := p.winActive && p.fetcher.fetchX*8 >= int(p.wx)-7
	if useWindow {
		p.fetcher.inWindow = true
	}

	var mapBase uint16
	var row, col int
	if p.fetcher.inWindow {
		mapBase = 0x1800
		if p.lcdc&lcdcWinMapArea != 0 {
			mapBase = 0x1C00
		}
		row = p.winLine / 8
		col = p.fetcher.winCol & 0x1F
		p.fetcher.winCol++
	} else {
		mapBase = 0x1800
		if p.lcdc&lcdcBGMapArea != 0 {
			mapBase = 0x1C00
		}
		row = ((int(p.ly) + int(p.scy)) & 0xFF) / 8
		col = (p.fetcher.fetchX + int(p.scx)/8) & 0x1F
	}
	addr := mapBase + uint16(row*32) + uint16(col)
	p.fetcher.tileID = p.vram[addr&0x1FFF]
}

func (p *PPU) fetchPlaneByte(plane int) {
	var base uint16
	var tileIndex int
	if p.lcdc&lcdcTileDataArea != 0 {
		base = 0x0000
		tileIndex = int(p.fetcher.tileID)
	} else {
		base = 0x1000
		tileIndex = int(int8(p.fetcher.tileID))
	}

	row := (int(p.ly) + int(p.scy)) & 7
	if p.fetcher.inWindow {
		row = p.winLine & 7
	}

	addr := uint16(int(base)+tileIndex*16+row*2) + uint16(plane)
	b := p.vram[addr&0x1FFF]
	if plane == 0 {
		p.fetcher.dataLow = b
	} else {
		p.fetcher.dataHigh = b
	}
}

func (p *PPU) pushTileRow() {
	screenBase := p.fetcher.fetchX*8 - int(p.scx)%8
	bgEnabled := p.lcdc&lcdcBGEnable != 0

	for i := 0; i < 8; i++ {
		bit := uint(7 - i)
		lo := (p.fetcher.dataLow >> bit) & 1
		hi := (p.fetcher.dataHigh >> bit) & 1
		bgIdx := hi<<1 | lo
		if !bgEnabled {
			bgIdx = 0
		}
		color := paletteLookup(p.bgp, bgIdx)

		if p.lcdc&lcdcObjEnable != 0 {
			if sci, attr, ok := p.spritePixelAt(screenBase + i); ok {
				if attr&0x80 == 0 || bgIdx == 0 {
					pal := p.obp0
					if attr&0x10 != 0 {
						pal = p.obp1
					}
					color = paletteLookup(pal, sci)
				}
			}
		}
		p.fifo.push(color)
	}
}

// spritePixelAt returns the opaque sprite pixel at screen column x, if
// any, respecting per-sprite X/Y flip and priority between overlapping
// sprites (lowest X wins, OAM order breaks ties — lineSprites is
// already sorted that way).
func (p *PPU) spritePixelAt(x int) (colorIdx byte, attr byte, ok bool) {
	height := spriteHeight(p.lcdc)
	for _, s := range p.lineSprites {
		left := int(s.x) - 8
		if x < left || x >= left+8 {
			continue
		}
		row := int(p.ly) + 16 - int(s.y)
		if s.attr&0x40 != 0 {
			row = height - 1 - row
		}
		tile := int(s.tile)
		if height == 16 {
			tile &^= 1
			if row >= 8 {
				tile |= 1
				row -= 8
			}
		}
		col := x - left
		if s.attr&0x20 != 0 {
			col = 7 - col
		}
		addr := uint16(tile*16 + row*2)
		lo := p.vram[addr&0x1FFF]
		hi := p.vram[(addr+1)&0x1FFF]
		bit := uint(7 - col)
		idx := ((hi>>bit)&1)<<1 | (lo>>bit)&1
		if idx == 0 {
			continue
		}
		return idx, s.attr, true
	}
	return 0, 0, false
}

func (p *PPU) stepDrain(lines *irq.Lines) {
	if p.fifo.len() <= 8 {
		return
	}
	px := p.fifo.pop()
	scxFine := int(p.scx) % 8
	if p.fetcher.lineX >= scxFine {
		p.framebuffer[p.fetcher.pushedX+int(p.ly)*Width] = px
		p.fetcher.pushedX++
	}
	p.fetcher.lineX++

	if p.fetcher.pushedX >= Width {
		p.enterHBlank(lines)
	}
}
