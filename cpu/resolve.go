// resolve.go - shared addressing-mode primitives. Every operation
// handler in the ops_*.go files reaches for these instead of hand-rolling
// a fetch or a memory address: the Mode an opcode decoded to is what
// decides how its operands are found, never which opcode it is.

package cpu

// read8 returns the 8-bit value named by op. OprCInd reads the 8-bit C
// register itself (callers that need the port address use memAddr).
func (c *CPU) read8(op Operand) byte {
	if op == OprCInd {
		return c.C
	}
	return c.Read8(op.reg8())
}

// write8 stores v into the 8-bit register named by op.
func (c *CPU) write8(op Operand, v byte) {
	c.Write8(op.reg8(), v)
}

// read16 returns the 16-bit value of the pair named by op.
func (c *CPU) read16(op Operand) uint16 {
	return c.Read16(op.reg16())
}

// write16 stores v into the pair named by op.
func (c *CPU) write16(op Operand, v uint16) {
	c.Write16(op.reg16(), v)
}

// memAddr returns the memory address an indirect operand names: (BC),
// (DE), (HL) read their pair directly; the (C) port form reads C and
// adds the 0xFF00 I/O page base.
func (c *CPU) memAddr(op Operand) uint16 {
	if op == OprCInd {
		return 0xFF00 | uint16(c.C)
	}
	return c.read16(op)
}

// fetchImm8 reads the byte at PC and advances PC.
func (c *CPU) fetchImm8(ctx Context) byte {
	v := ctx.ReadCycle(c.PC)
	c.PC++
	return v
}

// fetchImm16 reads the little-endian word at PC and advances PC by two.
func (c *CPU) fetchImm16(ctx Context) uint16 {
	lo := c.fetchImm8(ctx)
	hi := c.fetchImm8(ctx)
	return uint16(hi)<<8 | uint16(lo)
}

// push16 pushes v onto the stack, high byte first, each byte ticked.
func (c *CPU) push16(ctx Context, v uint16) {
	c.SP--
	ctx.WriteCycle(c.SP, byte(v>>8))
	c.SP--
	ctx.WriteCycle(c.SP, byte(v))
}

// pop16 pops a word off the stack, low byte first.
func (c *CPU) pop16(ctx Context) uint16 {
	lo := ctx.ReadCycle(c.SP)
	c.SP++
	hi := ctx.ReadCycle(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// takeBranch evaluates an instruction's condition field against the
// current flags. CondNone always branches (unconditional JP/JR/CALL/RET).
func (c *CPU) takeBranch(cond Cond) bool {
	switch cond {
	case CondZ:
		return c.ZF()
	case CondNZ:
		return !c.ZF()
	case CondC:
		return c.CF()
	case CondNC:
		return !c.CF()
	default:
		return true
	}
}
