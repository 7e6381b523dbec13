// ops_bit.go - the accumulator rotates (RLCA/RRCA/RLA/RRA), the CB-prefixed
// rotate/shift/swap group, and BIT/RES/SET. The non-CB accumulator
// rotates always clear Z; their CB-prefixed counterparts set Z from the
// result — the one place the two encodings of "the same" operation
// disagree on flags.

package cpu

func (c *CPU) execRLCA(ctx Context, in Instr) {
	v := c.A
	carry := v&0x80 != 0
	c.A = v<<1 | b2u8(carry)
	c.SetZF(false)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(carry)
}

func (c *CPU) execRRCA(ctx Context, in Instr) {
	v := c.A
	carry := v&0x01 != 0
	c.A = v>>1 | (b2u8(carry) << 7)
	c.SetZF(false)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(carry)
}

func (c *CPU) execRLA(ctx Context, in Instr) {
	v := c.A
	oldCarry := b2u8(c.CF())
	carry := v&0x80 != 0
	c.A = v<<1 | oldCarry
	c.SetZF(false)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(carry)
}

func (c *CPU) execRRA(ctx Context, in Instr) {
	v := c.A
	oldCarry := b2u8(c.CF())
	carry := v&0x01 != 0
	c.A = v>>1 | (oldCarry << 7)
	c.SetZF(false)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(carry)
}

func b2u8(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// cbOperand reads the operand a CB-prefixed instruction targets, which
// is either a plain register or (HL).
func (c *CPU) cbOperand(ctx Context, in Instr) byte {
	if in.Mode == ModeMR {
		return ctx.ReadCycle(c.memAddr(in.R1))
	}
	return c.read8(in.R1)
}

func (c *CPU) cbStore(ctx Context, in Instr, v byte) {
	if in.Mode == ModeMR {
		ctx.WriteCycle(c.memAddr(in.R1), v)
		return
	}
	c.write8(in.R1, v)
}

func (c *CPU) setShiftFlags(result byte, carry bool) {
	c.SetZF(result == 0)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(carry)
}

func (c *CPU) execRLC(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	carry := v&0x80 != 0
	result := v<<1 | b2u8(carry)
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execRRC(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	carry := v&0x01 != 0
	result := v>>1 | (b2u8(carry) << 7)
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execRL(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	oldCarry := b2u8(c.CF())
	carry := v&0x80 != 0
	result := v<<1 | oldCarry
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execRR(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	oldCarry := b2u8(c.CF())
	carry := v&0x01 != 0
	result := v>>1 | (oldCarry << 7)
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execSLA(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	carry := v&0x80 != 0
	result := v << 1
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execSRA(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	carry := v&0x01 != 0
	result := v>>1 | (v & 0x80)
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execSRL(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	carry := v&0x01 != 0
	result := v >> 1
	c.cbStore(ctx, in, result)
	c.setShiftFlags(result, carry)
}

func (c *CPU) execSWAP(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	result := v<<4 | v>>4
	c.cbStore(ctx, in, result)
	c.SetZF(result == 0)
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(false)
}

func (c *CPU) execBIT(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	c.SetZF(v&(1<<in.Bit) == 0)
	c.SetNF(false)
	c.SetHF(true)
}

func (c *CPU) execRES(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	c.cbStore(ctx, in, v&^(1<<in.Bit))
}

func (c *CPU) execSET(ctx Context, in Instr) {
	v := c.cbOperand(ctx, in)
	c.cbStore(ctx, in, v|(1<<in.Bit))
}
