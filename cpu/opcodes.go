// opcodes.go - instruction descriptor type shared by the unprefixed and
// CB-prefixed decode tables. The descriptor fully determines how the
// addressing-mode resolver fetches data and where it writes the result;
// operation handlers never branch on opcode value directly.

package cpu

// Kind identifies the operation an instruction descriptor dispatches to.
type Kind int

const (
	KindIllegal Kind = iota
	KindNOP
	KindSTOP
	KindHALT
	KindLD
	KindLD16
	KindLDHLSP // LD HL,SP+e8
	KindPUSH
	KindPOP
	KindADD
	KindADD16
	KindADDSP // ADD SP,e8
	KindADC
	KindSUB
	KindSBC
	KindAND
	KindOR
	KindXOR
	KindCP
	KindINC
	KindINC16
	KindDEC
	KindDEC16
	KindRLCA
	KindRRCA
	KindRLA
	KindRRA
	KindJP
	KindJPHL
	KindJR
	KindCALL
	KindRET
	KindRETI
	KindRST
	KindDI
	KindEI
	KindDAA
	KindCPL
	KindSCF
	KindCCF

	// CB-prefixed kinds
	KindRLC
	KindRRC
	KindRL
	KindRR
	KindSLA
	KindSRA
	KindSWAP
	KindSRL
	KindBIT
	KindRES
	KindSET
)

// Mode names the addressing mode: where the instruction's data comes
// from and where its destination is.
type Mode int

const (
	ModeIMP    Mode = iota
	ModeR           // data = read reg1
	ModeR_R         // data = read reg2, dest = reg1
	ModeR_D8        // data = read_cycle(PC); PC++; dest = reg1
	ModeD8          // data = read_cycle(PC); PC++ (no register destination; JR's signed offset)
	ModeR_D16       // data = read16_cycle(PC); PC += 2; dest = reg1 (16-bit)
	ModeD16         // data = read16_cycle(PC); PC += 2 (no destination, e.g. unused but reserved)
	ModeR_MR        // addr = read16(reg2) (C implies 0xFF00+C); data = read_cycle(addr); dest = reg1
	ModeMR_R        // dest_mem = read16(reg1) (C implies 0xFF00+C); data = read8(reg2)
	ModeMR          // dest_mem = read16(reg1); data = read_cycle(dest_mem)
	ModeMR_D8       // data = read_cycle(PC); PC++; dest_mem = read16(reg1)
	ModeR_HLI       // data = read_cycle(HL); HL++
	ModeR_HLD       // data = read_cycle(HL); HL--
	ModeHLI_R       // dest_mem = HL; data = read8(reg2); HL++
	ModeHLD_R       // dest_mem = HL; data = read8(reg2); HL--
	ModeR_A8        // a8 = read_cycle(PC); PC++; data = read_cycle(0xFF00+a8); dest = reg1
	ModeA8_R        // dest_mem = 0xFF00+read_cycle(PC); PC++; data = A
	ModeA16_R       // dest_mem = read16_cycle(PC); PC += 2; data = read(reg2)
	ModeR_A16       // addr = read16_cycle(PC); PC += 2; data = read_cycle(addr); dest = reg1
	ModeHL_SPR      // data = read_cycle(PC); PC++ (signed offset)
	ModeRST         // data = fixed target
)

// Cond gates a branch instruction.
type Cond int

const (
	CondNone Cond = iota
	CondZ
	CondNZ
	CondC
	CondNC
)

// Operand names either an 8-bit register cell, a 16-bit pair, or a
// pseudo-operand (e.g. the (C) indirect port form). The resolver
// interprets an Operand as 8- or 16-bit based on the instruction's Mode.
type Operand int

const (
	OprNone Operand = iota
	OprA
	OprB
	OprC
	OprD
	OprE
	OprH
	OprL
	OprAF
	OprBC
	OprDE
	OprHL
	OprSP
	OprCInd // (C): 8-bit C used as a 0xFF00+C port address
)

// Instr is a decoded instruction descriptor: kind, addressing mode, up to
// two operand roles, an optional branch condition, and — for CB bit ops —
// the literal bit index.
type Instr struct {
	Kind Kind
	Mode Mode
	R1   Operand
	R2   Operand
	Cond Cond
	Bit  byte
}

func (o Operand) reg8() Reg8 {
	switch o {
	case OprA:
		return RegA
	case OprB:
		return RegB
	case OprC, OprCInd:
		return RegC
	case OprD:
		return RegD
	case OprE:
		return RegE
	case OprH:
		return RegH
	case OprL:
		return RegL
	default:
		return RegA
	}
}

func (o Operand) reg16() Reg16 {
	switch o {
	case OprAF:
		return RegAF
	case OprBC:
		return RegBC
	case OprDE:
		return RegDE
	case OprHL:
		return RegHL
	case OprSP:
		return RegSP
	default:
		return RegHL
	}
}

// Length returns the instruction's canonical byte length (opcode
// included), derived purely from addressing mode — used by the
// disassembler and by anything that needs to walk a program byte by byte.
func (in Instr) Length() int {
	switch in.Mode {
	case ModeR_D16, ModeD16, ModeA16_R, ModeR_A16:
		return 3
	case ModeR_D8, ModeD8, ModeMR_D8, ModeR_A8, ModeA8_R, ModeHL_SPR:
		return 2
	default:
		if in.Kind == KindJR {
			return 2
		}
		return 1
	}
}
