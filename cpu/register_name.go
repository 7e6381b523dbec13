package cpu

// RegisterName identifies a register for generic get/set access, used
// only by debug and snapshot tooling — instruction execution always
// goes through the typed Reg8/Reg16 accessors instead.
type RegisterName int

const (
	RegNameA RegisterName = iota
	RegNameF
	RegNameB
	RegNameC
	RegNameD
	RegNameE
	RegNameH
	RegNameL
	RegNameAF
	RegNameBC
	RegNameDE
	RegNameHL
	RegNameSP
	RegNamePC
)

func (n RegisterName) String() string {
	switch n {
	case RegNameA:
		return "A"
	case RegNameF:
		return "F"
	case RegNameB:
		return "B"
	case RegNameC:
		return "C"
	case RegNameD:
		return "D"
	case RegNameE:
		return "E"
	case RegNameH:
		return "H"
	case RegNameL:
		return "L"
	case RegNameAF:
		return "AF"
	case RegNameBC:
		return "BC"
	case RegNameDE:
		return "DE"
	case RegNameHL:
		return "HL"
	case RegNameSP:
		return "SP"
	case RegNamePC:
		return "PC"
	default:
		return "?"
	}
}

// AllRegisterNames lists the 16-bit registers (pairs, SP and PC) in the
// order a register dump displays them; the single 8-bit names are not
// included.
var AllRegisterNames = []RegisterName{
	RegNameAF, RegNameBC, RegNameDE, RegNameHL, RegNameSP, RegNamePC,
}

// GetRegister reads a register generically, widening 8-bit registers
// into the low byte of the result.
func (c *CPU) GetRegister(name RegisterName) uint16 {
	switch name {
	case RegNameA:
		return uint16(c.A)
	case RegNameF:
		return uint16(c.F)
	case RegNameB:
		return uint16(c.B)
	case RegNameC:
		return uint16(c.C)
	case RegNameD:
		return uint16(c.D)
	case RegNameE:
		return uint16(c.E)
	case RegNameH:
		return uint16(c.H)
	case RegNameL:
		return uint16(c.L)
	case RegNameAF:
		return c.Read16(RegAF)
	case RegNameBC:
		return c.Read16(RegBC)
	case RegNameDE:
		return c.Read16(RegDE)
	case RegNameHL:
		return c.Read16(RegHL)
	case RegNameSP:
		return c.SP
	case RegNamePC:
		return c.PC
	default:
		return 0
	}
}

// SetRegister writes a register generically; 8-bit targets take the
// low byte of v.
func (c *CPU) SetRegister(name RegisterName, v uint16) {
	switch name {
	case RegNameA:
		c.A = byte(v)
	case RegNameF:
		c.F = byte(v) & 0xF0
	case RegNameB:
		c.B = byte(v)
	case RegNameC:
		c.C = byte(v)
	case RegNameD:
		c.D = byte(v)
	case RegNameE:
		c.E = byte(v)
	case RegNameH:
		c.H = byte(v)
	case RegNameL:
		c.L = byte(v)
	case RegNameAF:
		c.Write16(RegAF, v)
	case RegNameBC:
		c.Write16(RegBC, v)
	case RegNameDE:
		c.Write16(RegDE, v)
	case RegNameHL:
		c.Write16(RegHL, v)
	case RegNameSP:
		c.SP = v
	case RegNamePC:
		c.PC = v
	}
}
