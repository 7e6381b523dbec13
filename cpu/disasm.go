// disasm.go - a static disassembler over the same decode tables the
// interpreter uses. It never executes anything: given a byte slice and
// an offset, it renders one instruction as text and reports its length.

package cpu

import "fmt"

func (o Operand) String() string {
	switch o {
	case OprA:
		return "A"
	case OprB:
		return "B"
	case OprC:
		return "C"
	case OprD:
		return "D"
	case OprE:
		return "E"
	case OprH:
		return "H"
	case OprL:
		return "L"
	case OprAF:
		return "AF"
	case OprBC:
		return "BC"
	case OprDE:
		return "DE"
	case OprHL:
		return "HL"
	case OprSP:
		return "SP"
	case OprCInd:
		return "(C)"
	default:
		return ""
	}
}

func (c Cond) String() string {
	switch c {
	case CondZ:
		return "Z"
	case CondNZ:
		return "NZ"
	case CondC:
		return "C"
	case CondNC:
		return "NC"
	default:
		return ""
	}
}

var mnemonics = map[Kind]string{
	KindNOP: "NOP", KindSTOP: "STOP", KindHALT: "HALT",
	KindLD: "LD", KindLD16: "LD", KindLDHLSP: "LD", KindPUSH: "PUSH", KindPOP: "POP",
	KindADD: "ADD", KindADD16: "ADD", KindADDSP: "ADD", KindADC: "ADC",
	KindSUB: "SUB", KindSBC: "SBC", KindAND: "AND", KindOR: "OR", KindXOR: "XOR", KindCP: "CP",
	KindINC: "INC", KindINC16: "INC", KindDEC: "DEC", KindDEC16: "DEC",
	KindRLCA: "RLCA", KindRRCA: "RRCA", KindRLA: "RLA", KindRRA: "RRA",
	KindJP: "JP", KindJPHL: "JP", KindJR: "JR", KindCALL: "CALL",
	KindRET: "RET", KindRETI: "RETI", KindRST: "RST",
	KindDI: "DI", KindEI: "EI", KindDAA: "DAA", KindCPL: "CPL", KindSCF: "SCF", KindCCF: "CCF",
	KindRLC: "RLC", KindRRC: "RRC", KindRL: "RL", KindRR: "RR",
	KindSLA: "SLA", KindSRA: "SRA", KindSWAP: "SWAP", KindSRL: "SRL",
	KindBIT: "BIT", KindRES: "RES", KindSET: "SET",
}

// Disassemble renders the instruction at rom[addr] as text and returns
// its byte length, opcode included (2 for a CB-prefixed instruction; 1
// for an illegal or truncated one) — callers advance addr by the
// returned length.
func Disassemble(rom []byte, addr int) (string, int) {
	if addr < 0 || addr >= len(rom) {
		return "??", 1
	}
	opcode := rom[addr]
	if opcode == 0xCB {
		if addr+1 >= len(rom) {
			return "CB ??", 1
		}
		in := DecodePrefixed(rom[addr+1])
		return formatCB(in), 2
	}

	in, ok := Decode(opcode)
	if !ok {
		return fmt.Sprintf("DB 0x%02X", opcode), 1
	}
	return formatPlain(in, rom, addr), in.Length()
}

func imm8(rom []byte, addr int) byte {
	if addr+1 < len(rom) {
		return rom[addr+1]
	}
	return 0
}

func imm16(rom []byte, addr int) uint16 {
	if addr+2 < len(rom) {
		return uint16(rom[addr+2])<<8 | uint16(rom[addr+1])
	}
	return 0
}

func condPrefix(cond Cond) string {
	if cond == CondNone {
		return ""
	}
	return cond.String() + ","
}

func formatPlain(in Instr, rom []byte, addr int) string {
	name := mnemonics[in.Kind]
	switch in.Mode {
	case ModeIMP:
		if in.Kind == KindJPHL {
			return "JP (HL)"
		}
		if in.Kind == KindRET && in.Cond != CondNone {
			return fmt.Sprintf("%s %s", name, in.Cond)
		}
		return name
	case ModeR:
		return fmt.Sprintf("%s %s", name, in.R1)
	case ModeR_R:
		return fmt.Sprintf("%s %s,%s", name, in.R1, in.R2)
	case ModeR_D8:
		return fmt.Sprintf("%s %s,0x%02X", name, in.R1, imm8(rom, addr))
	case ModeD8:
		if in.Kind == KindJR {
			return fmt.Sprintf("JR %s%d", condPrefix(in.Cond), int8(imm8(rom, addr)))
		}
		return fmt.Sprintf("%s 0x%02X", name, imm8(rom, addr))
	case ModeR_D16:
		return fmt.Sprintf("%s %s,0x%04X", name, in.R1, imm16(rom, addr))
	case ModeR_MR:
		return fmt.Sprintf("%s %s,(%s)", name, in.R1, in.R2)
	case ModeMR_R:
		return fmt.Sprintf("%s (%s),%s", name, in.R1, in.R2)
	case ModeMR:
		return fmt.Sprintf("%s (%s)", name, in.R1)
	case ModeMR_D8:
		return fmt.Sprintf("%s (%s),0x%02X", name, in.R1, imm8(rom, addr))
	case ModeR_HLI:
		return fmt.Sprintf("%s %s,(HL+)", name, in.R1)
	case ModeR_HLD:
		return fmt.Sprintf("%s %s,(HL-)", name, in.R1)
	case ModeHLI_R:
		return fmt.Sprintf("%s (HL+),%s", name, in.R2)
	case ModeHLD_R:
		return fmt.Sprintf("%s (HL-),%s", name, in.R2)
	case ModeR_A8:
		return fmt.Sprintf("%s %s,(0xFF00+0x%02X)", name, in.R1, imm8(rom, addr))
	case ModeA8_R:
		return fmt.Sprintf("%s (0xFF00+0x%02X),%s", name, imm8(rom, addr), in.R2)
	case ModeA16_R:
		return fmt.Sprintf("%s (0x%04X),%s", name, imm16(rom, addr), in.R2)
	case ModeR_A16:
		if in.Kind == KindJP || in.Kind == KindCALL {
			return fmt.Sprintf("%s %s0x%04X", name, condPrefix(in.Cond), imm16(rom, addr))
		}
		return fmt.Sprintf("%s %s,(0x%04X)", name, in.R1, imm16(rom, addr))
	case ModeHL_SPR:
		if in.Kind == KindLDHLSP {
			return fmt.Sprintf("LD HL,SP+%d", int8(imm8(rom, addr)))
		}
		return fmt.Sprintf("ADD SP,%d", int8(imm8(rom, addr)))
	case ModeRST:
		return fmt.Sprintf("RST 0x%02X", in.Bit)
	case ModeD16:
		return fmt.Sprintf("%s 0x%04X", name, imm16(rom, addr))
	default:
		return name
	}
}

func formatCB(in Instr) string {
	name := mnemonics[in.Kind]
	target := in.R1.String()
	if in.Mode == ModeMR {
		target = "(HL)"
	}
	switch in.Kind {
	case KindBIT, KindRES, KindSET:
		return fmt.Sprintf("%s %d,%s", name, in.Bit, target)
	default:
		return fmt.Sprintf("%s %s", name, target)
	}
}
