// ops_alu.go - the eight accumulator ALU operations (register, (HL) and
// immediate forms all share one flag computation each), 16-bit ADD HL,rr,
// and INC/DEC for both widths.

package cpu

// aluRHS fetches the right-hand operand for an ALU instruction, whatever
// addressing form it decoded to.
func (c *CPU) aluRHS(ctx Context, in Instr) byte {
	switch in.Mode {
	case ModeR_MR:
		return ctx.ReadCycle(c.memAddr(in.R2))
	case ModeR_D8:
		return c.fetchImm8(ctx)
	default: // ModeR_R
		return c.read8(in.R2)
	}
}

func (c *CPU) execADD(ctx Context, in Instr) {
	a, rhs := c.A, c.aluRHS(ctx, in)
	result := uint16(a) + uint16(rhs)
	c.A = byte(result)
	c.SetZF(c.A == 0)
	c.SetNF(false)
	c.SetHF((a&0x0F)+(rhs&0x0F) > 0x0F)
	c.SetCF(result > 0xFF)
}

func (c *CPU) execADC(ctx Context, in Instr) {
	a, rhs := c.A, c.aluRHS(ctx, in)
	carry := uint16(0)
	if c.CF() {
		carry = 1
	}
	result := uint16(a) + uint16(rhs) + carry
	c.A = byte(result)
	c.SetZF(c.A == 0)
	c.SetNF(false)
	c.SetHF((a&0x0F)+(rhs&0x0F)+byte(carry) > 0x0F)
	c.SetCF(result > 0xFF)
}

func (c *CPU) subCommon(a, rhs, carry byte) (result byte, zf, hf, cf bool) {
	full := int(a) - int(rhs) - int(carry)
	result = byte(full)
	zf = result == 0
	hf = int(a&0x0F)-int(rhs&0x0F)-int(carry) < 0
	cf = full < 0
	return
}

func (c *CPU) execSUB(ctx Context, in Instr) {
	a, rhs := c.A, c.aluRHS(ctx, in)
	result, zf, hf, cf := c.subCommon(a, rhs, 0)
	c.A = result
	c.SetZF(zf)
	c.SetNF(true)
	c.SetHF(hf)
	c.SetCF(cf)
}

func (c *CPU) execSBC(ctx Context, in Instr) {
	a, rhs := c.A, c.aluRHS(ctx, in)
	carry := byte(0)
	if c.CF() {
		carry = 1
	}
	result, zf, hf, cf := c.subCommon(a, rhs, carry)
	c.A = result
	c.SetZF(zf)
	c.SetNF(true)
	c.SetHF(hf)
	c.SetCF(cf)
}

func (c *CPU) execCP(ctx Context, in Instr) {
	a, rhs := c.A, c.aluRHS(ctx, in)
	_, zf, hf, cf := c.subCommon(a, rhs, 0)
	c.SetZF(zf)
	c.SetNF(true)
	c.SetHF(hf)
	c.SetCF(cf)
}

func (c *CPU) execAND(ctx Context, in Instr) {
	c.A &= c.aluRHS(ctx, in)
	c.SetZF(c.A == 0)
	c.SetNF(false)
	c.SetHF(true)
	c.SetCF(false)
}

func (c *CPU) execOR(ctx Context, in Instr) {
	c.A |= c.aluRHS(ctx, in)
	c.SetZF(c.A == 0)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(false)
}

func (c *CPU) execXOR(ctx Context, in Instr) {
	c.A ^= c.aluRHS(ctx, in)
	c.SetZF(c.A == 0)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(false)
}

func (c *CPU) execADD16(ctx Context, in Instr) {
	ctx.TickCycle()
	hl, rhs := c.read16(in.R1), c.read16(in.R2)
	result := uint32(hl) + uint32(rhs)
	c.write16(in.R1, uint16(result))
	c.SetNF(false)
	c.SetHF((hl&0x0FFF)+(rhs&0x0FFF) > 0x0FFF)
	c.SetCF(result > 0xFFFF)
}

func (c *CPU) execINC(ctx Context, in Instr) {
	v := c.readIncDecOperand(ctx, in)
	result := v + 1
	c.writeIncDecOperand(ctx, in, result)
	c.SetZF(result == 0)
	c.SetNF(false)
	c.SetHF(v&0x0F == 0x0F)
}

func (c *CPU) execDEC(ctx Context, in Instr) {
	v := c.readIncDecOperand(ctx, in)
	result := v - 1
	c.writeIncDecOperand(ctx, in, result)
	c.SetZF(result == 0)
	c.SetNF(true)
	c.SetHF(v&0x0F == 0x00)
}

func (c *CPU) readIncDecOperand(ctx Context, in Instr) byte {
	if in.Mode == ModeMR {
		return ctx.ReadCycle(c.memAddr(in.R1))
	}
	return c.read8(in.R1)
}

func (c *CPU) writeIncDecOperand(ctx Context, in Instr, v byte) {
	if in.Mode == ModeMR {
		ctx.WriteCycle(c.memAddr(in.R1), v)
		return
	}
	c.write8(in.R1, v)
}

func (c *CPU) execINC16(ctx Context, in Instr) {
	ctx.TickCycle()
	c.write16(in.R1, c.read16(in.R1)+1)
}

func (c *CPU) execDEC16(ctx Context, in Instr) {
	ctx.TickCycle()
	c.write16(in.R1, c.read16(in.R1)-1)
}
