// ops_control.go - control flow (JP/JR/CALL/RET/RETI/RST), IME control
// (DI/EI), and the no-ops (NOP/HALT/STOP). Conditional JP/JR/CALL charge
// one extra internal M-cycle only when the branch is taken; conditional
// RET always charges a condition-test cycle and one more when taken.
// fetchImm8/16 already account for the cycles their reads cost.

package cpu

func (c *CPU) execJP(ctx Context, in Instr) {
	target := c.fetchImm16(ctx)
	if c.takeBranch(in.Cond) {
		ctx.TickCycle()
		c.PC = target
	}
}

func (c *CPU) execJPHL(ctx Context, in Instr) {
	c.PC = c.read16(OprHL)
}

func (c *CPU) execJR(ctx Context, in Instr) {
	offset := int8(c.fetchImm8(ctx))
	if c.takeBranch(in.Cond) {
		ctx.TickCycle()
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

func (c *CPU) execCALL(ctx Context, in Instr) {
	target := c.fetchImm16(ctx)
	if c.takeBranch(in.Cond) {
		ctx.TickCycle()
		c.push16(ctx, c.PC)
		c.PC = target
	}
}

func (c *CPU) execRET(ctx Context, in Instr) {
	if in.Cond != CondNone {
		ctx.TickCycle() // condition-test cycle, conditional form only
	}
	if c.takeBranch(in.Cond) {
		c.PC = c.pop16(ctx)
		ctx.TickCycle() // return-address-apply cycle, charged whenever taken
	}
}

func (c *CPU) execRETI(ctx Context, in Instr) {
	ctx.TickCycle()
	c.PC = c.pop16(ctx)
	c.ime = true
	c.imeScheduled = false
}

func (c *CPU) execRST(ctx Context, in Instr) {
	ctx.TickCycle()
	c.push16(ctx, c.PC)
	c.PC = uint16(in.Bit)
}

func (c *CPU) execDI(ctx Context, in Instr) {
	c.ime = false
	c.imeScheduled = false
}

func (c *CPU) execEI(ctx Context, in Instr) {
	c.imeScheduled = true
}

func (c *CPU) execHALT(ctx Context, in Instr) {
	c.Mode = ModeHalted
}

func (c *CPU) execSTOP(ctx Context, in Instr) {
	// STOP reads and discards the mandatory padding byte that follows it.
	c.fetchImm8(ctx)
	c.Mode = ModeStopped
}
