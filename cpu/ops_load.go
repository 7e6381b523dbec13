// ops_load.go - LD, LD16, PUSH, POP and the SP-relative load/add forms.
// Each handler reads its Mode's comment in opcodes.go for the exact
// fetch/store sequence and reproduces it literally; the sequencing of
// reads, writes and ticks here is part of the instruction's timing, not
// an implementation detail.

package cpu

func (c *CPU) execLD(ctx Context, in Instr) {
	switch in.Mode {
	case ModeR_R:
		c.write8(in.R1, c.read8(in.R2))
	case ModeR_D8:
		c.write8(in.R1, c.fetchImm8(ctx))
	case ModeR_MR:
		addr := c.memAddr(in.R2)
		c.write8(in.R1, ctx.ReadCycle(addr))
	case ModeMR_R:
		addr := c.memAddr(in.R1)
		ctx.WriteCycle(addr, c.read8(in.R2))
	case ModeMR_D8:
		v := c.fetchImm8(ctx)
		ctx.WriteCycle(c.memAddr(in.R1), v)
	case ModeR_HLI:
		hl := c.read16(OprHL)
		c.write8(in.R1, ctx.ReadCycle(hl))
		c.write16(OprHL, hl+1)
	case ModeR_HLD:
		hl := c.read16(OprHL)
		c.write8(in.R1, ctx.ReadCycle(hl))
		c.write16(OprHL, hl-1)
	case ModeHLI_R:
		hl := c.read16(OprHL)
		ctx.WriteCycle(hl, c.read8(in.R2))
		c.write16(OprHL, hl+1)
	case ModeHLD_R:
		hl := c.read16(OprHL)
		ctx.WriteCycle(hl, c.read8(in.R2))
		c.write16(OprHL, hl-1)
	case ModeR_A8:
		a8 := c.fetchImm8(ctx)
		c.write8(in.R1, ctx.ReadCycle(0xFF00|uint16(a8)))
	case ModeA8_R:
		a8 := c.fetchImm8(ctx)
		ctx.WriteCycle(0xFF00|uint16(a8), c.read8(in.R2))
	case ModeR_A16:
		addr := c.fetchImm16(ctx)
		c.write8(in.R1, ctx.ReadCycle(addr))
	case ModeA16_R:
		addr := c.fetchImm16(ctx)
		ctx.WriteCycle(addr, c.read8(in.R2))
	}
}

func (c *CPU) execLD16(ctx Context, in Instr) {
	switch in.Mode {
	case ModeR_D16:
		c.write16(in.R1, c.fetchImm16(ctx))
	case ModeR_R: // LD SP,HL — one internal tick, no memory access
		ctx.TickCycle()
		c.write16(in.R1, c.read16(in.R2))
	case ModeA16_R: // LD (a16),SP
		addr := c.fetchImm16(ctx)
		v := c.read16(in.R2)
		ctx.WriteCycle(addr, byte(v))
		ctx.WriteCycle(addr+1, byte(v>>8))
	}
}

// spOffset computes SP + a signed 8-bit immediate, the shared math
// behind ADD SP,e8 and LD HL,SP+e8, including their half-carry/carry
// definition: both are computed as an 8-bit addition of SP's low byte
// and the immediate, never as a 16-bit add.
func (c *CPU) spOffset(ctx Context) (uint16, bool, bool) {
	e8 := int8(c.fetchImm8(ctx))
	sp := c.SP
	result := uint16(int32(sp) + int32(e8))
	hc := (sp&0x0F)+uint16(byte(e8)&0x0F) > 0x0F
	cy := (sp&0xFF)+uint16(byte(e8)) > 0xFF
	return result, hc, cy
}

func (c *CPU) execADDSP(ctx Context, in Instr) {
	result, hc, cy := c.spOffset(ctx)
	ctx.TickCycle()
	ctx.TickCycle()
	c.SP = result
	c.SetZF(false)
	c.SetNF(false)
	c.SetHF(hc)
	c.SetCF(cy)
}

func (c *CPU) execLDHLSP(ctx Context, in Instr) {
	result, hc, cy := c.spOffset(ctx)
	ctx.TickCycle()
	c.write16(OprHL, result)
	c.SetZF(false)
	c.SetNF(false)
	c.SetHF(hc)
	c.SetCF(cy)
}

func (c *CPU) execPUSH(ctx Context, in Instr) {
	ctx.TickCycle()
	c.push16(ctx, c.read16(in.R1))
}

func (c *CPU) execPOP(ctx Context, in Instr) {
	v := c.pop16(ctx)
	if in.R1 == OprAF {
		v &^= 0x000F
	}
	c.write16(in.R1, v)
}
