// decode.go - the canonical DMG opcode map: opcode byte -> Instr
// descriptor. Regular ranges (LD r,r'; ALU A,r; INC/DEC r; RST) are
// generated by loops over the bit fields that encode them, mirroring the
// teacher's table-building style (cpu_z80.go's initBaseOps); irregular
// single opcodes are assigned explicitly.

package cpu

// regOperand maps a 3-bit register-encoding field to its operand, in
// hardware order: B, C, D, E, H, L, (HL), A.
var regOperand = [8]Operand{OprB, OprC, OprD, OprE, OprH, OprL, OprNone, OprA}

// pairOperand16 maps the rp encoding (bits 5-4 of certain opcodes, or
// opcode>>4 within a nibble-aligned row) to a 16-bit pair, in the order
// BC, DE, HL, SP.
var pairOperand16 = [4]Operand{OprBC, OprDE, OprHL, OprSP}

// stackPairOperand16 is the same but with AF in place of SP, used by
// PUSH/POP.
var stackPairOperand16 = [4]Operand{OprBC, OprDE, OprHL, OprAF}

var condByIndex = [4]Cond{CondNZ, CondZ, CondNC, CondC}

var illegalOpcodes = map[byte]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

var unprefixedTable [256]Instr

func init() {
	buildUnprefixedTable()
}

// Decode returns the descriptor for a non-prefixed opcode byte. Callers
// are responsible for special-casing 0xCB before calling Decode: the
// fetch loop never looks 0xCB up in this table.
func Decode(opcode byte) (Instr, bool) {
	if illegalOpcodes[opcode] {
		return Instr{}, false
	}
	return unprefixedTable[opcode], true
}

func buildUnprefixedTable() {
	t := &unprefixedTable

	t[0x00] = Instr{Kind: KindNOP, Mode: ModeIMP}
	t[0x10] = Instr{Kind: KindSTOP, Mode: ModeIMP}
	t[0x76] = Instr{Kind: KindHALT, Mode: ModeIMP}
	t[0xF3] = Instr{Kind: KindDI, Mode: ModeIMP}
	t[0xFB] = Instr{Kind: KindEI, Mode: ModeIMP}
	t[0x27] = Instr{Kind: KindDAA, Mode: ModeIMP}
	t[0x2F] = Instr{Kind: KindCPL, Mode: ModeIMP}
	t[0x37] = Instr{Kind: KindSCF, Mode: ModeIMP}
	t[0x3F] = Instr{Kind: KindCCF, Mode: ModeIMP}
	t[0x07] = Instr{Kind: KindRLCA, Mode: ModeIMP}
	t[0x0F] = Instr{Kind: KindRRCA, Mode: ModeIMP}
	t[0x17] = Instr{Kind: KindRLA, Mode: ModeIMP}
	t[0x1F] = Instr{Kind: KindRRA, Mode: ModeIMP}
	t[0xC9] = Instr{Kind: KindRET, Mode: ModeIMP}
	t[0xD9] = Instr{Kind: KindRETI, Mode: ModeIMP}
	t[0xC3] = Instr{Kind: KindJP, Mode: ModeR_A16}
	t[0xE9] = Instr{Kind: KindJPHL, Mode: ModeIMP}
	t[0xCD] = Instr{Kind: KindCALL, Mode: ModeR_A16}
	t[0x18] = Instr{Kind: KindJR, Mode: ModeD8}
	t[0xE8] = Instr{Kind: KindADDSP, Mode: ModeHL_SPR}
	t[0xF8] = Instr{Kind: KindLDHLSP, Mode: ModeHL_SPR, R1: OprHL}
	t[0xF9] = Instr{Kind: KindLD16, Mode: ModeR_R, R1: OprSP, R2: OprHL}
	t[0x08] = Instr{Kind: KindLD16, Mode: ModeA16_R, R2: OprSP}
	t[0xE0] = Instr{Kind: KindLD, Mode: ModeA8_R, R2: OprA}
	t[0xF0] = Instr{Kind: KindLD, Mode: ModeR_A8, R1: OprA}
	t[0xE2] = Instr{Kind: KindLD, Mode: ModeMR_R, R1: OprCInd, R2: OprA}
	t[0xF2] = Instr{Kind: KindLD, Mode: ModeR_MR, R1: OprA, R2: OprCInd}
	t[0xEA] = Instr{Kind: KindLD, Mode: ModeA16_R, R2: OprA}
	t[0xFA] = Instr{Kind: KindLD, Mode: ModeR_A16, R1: OprA}
	t[0x02] = Instr{Kind: KindLD, Mode: ModeMR_R, R1: OprBC, R2: OprA}
	t[0x12] = Instr{Kind: KindLD, Mode: ModeMR_R, R1: OprDE, R2: OprA}
	t[0x0A] = Instr{Kind: KindLD, Mode: ModeR_MR, R1: OprA, R2: OprBC}
	t[0x1A] = Instr{Kind: KindLD, Mode: ModeR_MR, R1: OprA, R2: OprDE}
	t[0x22] = Instr{Kind: KindLD, Mode: ModeHLI_R, R2: OprA}
	t[0x32] = Instr{Kind: KindLD, Mode: ModeHLD_R, R2: OprA}
	t[0x2A] = Instr{Kind: KindLD, Mode: ModeR_HLI, R1: OprA}
	t[0x3A] = Instr{Kind: KindLD, Mode: ModeR_HLD, R1: OprA}

	// LD rr,d16 / INC rr / DEC rr / ADD HL,rr — 0x01,0x11,0x21,0x31 row.
	for i, pair := range pairOperand16 {
		base := byte(i * 0x10)
		t[base+0x01] = Instr{Kind: KindLD16, Mode: ModeR_D16, R1: pair}
		t[base+0x03] = Instr{Kind: KindINC16, Mode: ModeR, R1: pair}
		t[base+0x0B] = Instr{Kind: KindDEC16, Mode: ModeR, R1: pair}
		t[base+0x09] = Instr{Kind: KindADD16, Mode: ModeR_R, R1: OprHL, R2: pair}
	}

	// PUSH rr / POP rr — 0xC1/0xC5 row, AF in place of SP.
	for i, pair := range stackPairOperand16 {
		base := byte(i * 0x10)
		t[base+0xC1] = Instr{Kind: KindPOP, Mode: ModeR, R1: pair}
		t[base+0xC5] = Instr{Kind: KindPUSH, Mode: ModeR, R1: pair}
	}

	// JP/JR/CALL/RET cc — condition rows follow NZ,Z,NC,C at +0x08 steps.
	for i, cond := range condByIndex {
		base := byte(i * 0x08)
		t[0xC2+base] = Instr{Kind: KindJP, Mode: ModeR_A16, Cond: cond}
		t[0xC4+base] = Instr{Kind: KindCALL, Mode: ModeR_A16, Cond: cond}
		t[0xC0+base] = Instr{Kind: KindRET, Mode: ModeIMP, Cond: cond}
		t[0x20+base] = Instr{Kind: KindJR, Mode: ModeD8, Cond: cond}
	}

	// INC r8 / DEC r8 / LD r,d8 — dest = (opcode>>3)&7, including (HL).
	for dest := byte(0); dest < 8; dest++ {
		op := regOperand[dest]
		incOp, decOp, ldOp := byte(0x04)+dest*8, byte(0x05)+dest*8, byte(0x06)+dest*8
		if dest == 6 {
			t[incOp] = Instr{Kind: KindINC, Mode: ModeMR, R1: OprHL}
			t[decOp] = Instr{Kind: KindDEC, Mode: ModeMR, R1: OprHL}
			t[ldOp] = Instr{Kind: KindLD, Mode: ModeMR_D8, R1: OprHL}
		} else {
			t[incOp] = Instr{Kind: KindINC, Mode: ModeR, R1: op}
			t[decOp] = Instr{Kind: KindDEC, Mode: ModeR, R1: op}
			t[ldOp] = Instr{Kind: KindLD, Mode: ModeR_D8, R1: op}
		}
	}

	// RST vectors: 0xC7,0xCF,...,0xFF -> 0x00,0x08,...,0x38.
	for i := byte(0); i < 8; i++ {
		t[0xC7+i*8] = Instr{Kind: KindRST, Mode: ModeRST, Bit: i * 8}
	}

	// LD r,r' — 0x40-0x7F, excluding 0x76 (HALT).
	for op := 0x40; op <= 0x7F; op++ {
		opcode := byte(op)
		if opcode == 0x76 {
			continue
		}
		dest := (opcode >> 3) & 7
		src := opcode & 7
		switch {
		case dest == 6:
			t[opcode] = Instr{Kind: KindLD, Mode: ModeMR_R, R1: OprHL, R2: regOperand[src]}
		case src == 6:
			t[opcode] = Instr{Kind: KindLD, Mode: ModeR_MR, R1: regOperand[dest], R2: OprHL}
		default:
			t[opcode] = Instr{Kind: KindLD, Mode: ModeR_R, R1: regOperand[dest], R2: regOperand[src]}
		}
	}

	// ALU A,r — 0x80-0xBF, eight groups of eight, src = opcode&7.
	aluKinds := [8]Kind{KindADD, KindADC, KindSUB, KindSBC, KindAND, KindXOR, KindOR, KindCP}
	for group, kind := range aluKinds {
		base := byte(0x80 + group*8)
		for src := byte(0); src < 8; src++ {
			opcode := base + src
			if src == 6 {
				t[opcode] = Instr{Kind: kind, Mode: ModeR_MR, R1: OprA, R2: OprHL}
			} else {
				t[opcode] = Instr{Kind: kind, Mode: ModeR_R, R1: OprA, R2: regOperand[src]}
			}
		}
	}

	// ALU A,d8 — 0xC6,0xCE,...,0xFE.
	aluImmKinds := [8]Kind{KindADD, KindADC, KindSUB, KindSBC, KindAND, KindXOR, KindOR, KindCP}
	for group, kind := range aluImmKinds {
		t[0xC6+byte(group)*8] = Instr{Kind: kind, Mode: ModeR_D8, R1: OprA}
	}
}
