// ops_misc.go - DAA, CPL, SCF, CCF, NOP. DAA corrects the accumulator
// after a BCD addition or subtraction using the N/H/C flags left by the
// operation that preceded it, not the opcode that preceded it — it has
// no idea what instruction ran before it.

package cpu

func (c *CPU) execNOP(ctx Context, in Instr) {}

func (c *CPU) execDAA(ctx Context, in Instr) {
	a := c.A
	adjust := byte(0)
	carry := c.CF()

	if c.NF() {
		if c.HF() {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if c.HF() || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}

	c.A = a
	c.SetZF(a == 0)
	c.SetHF(false)
	c.SetCF(carry)
}

func (c *CPU) execCPL(ctx Context, in Instr) {
	c.A = ^c.A
	c.SetNF(true)
	c.SetHF(true)
}

func (c *CPU) execSCF(ctx Context, in Instr) {
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(true)
}

func (c *CPU) execCCF(ctx Context, in Instr) {
	c.SetNF(false)
	c.SetHF(false)
	c.SetCF(!c.CF())
}
