// exec.go - dispatches a decoded instruction to its operation handler.
// This is the only place that switches on Kind; every handler it calls
// resolves its own operands through the shared Mode-driven primitives
// in resolve.go.

package cpu

func (c *CPU) execute(ctx Context, in Instr) {
	switch in.Kind {
	case KindNOP:
		c.execNOP(ctx, in)
	case KindSTOP:
		c.execSTOP(ctx, in)
	case KindHALT:
		c.execHALT(ctx, in)
	case KindLD:
		c.execLD(ctx, in)
	case KindLD16:
		c.execLD16(ctx, in)
	case KindLDHLSP:
		c.execLDHLSP(ctx, in)
	case KindPUSH:
		c.execPUSH(ctx, in)
	case KindPOP:
		c.execPOP(ctx, in)
	case KindADD:
		c.execADD(ctx, in)
	case KindADD16:
		c.execADD16(ctx, in)
	case KindADDSP:
		c.execADDSP(ctx, in)
	case KindADC:
		c.execADC(ctx, in)
	case KindSUB:
		c.execSUB(ctx, in)
	case KindSBC:
		c.execSBC(ctx, in)
	case KindAND:
		c.execAND(ctx, in)
	case KindOR:
		c.execOR(ctx, in)
	case KindXOR:
		c.execXOR(ctx, in)
	case KindCP:
		c.execCP(ctx, in)
	case KindINC:
		c.execINC(ctx, in)
	case KindINC16:
		c.execINC16(ctx, in)
	case KindDEC:
		c.execDEC(ctx, in)
	case KindDEC16:
		c.execDEC16(ctx, in)
	case KindRLCA:
		c.execRLCA(ctx, in)
	case KindRRCA:
		c.execRRCA(ctx, in)
	case KindRLA:
		c.execRLA(ctx, in)
	case KindRRA:
		c.execRRA(ctx, in)
	case KindJP:
		c.execJP(ctx, in)
	case KindJPHL:
		c.execJPHL(ctx, in)
	case KindJR:
		c.execJR(ctx, in)
	case KindCALL:
		c.execCALL(ctx, in)
	case KindRET:
		c.execRET(ctx, in)
	case KindRETI:
		c.execRETI(ctx, in)
	case KindRST:
		c.execRST(ctx, in)
	case KindDI:
		c.execDI(ctx, in)
	case KindEI:
		c.execEI(ctx, in)
	case KindDAA:
		c.execDAA(ctx, in)
	case KindCPL:
		c.execCPL(ctx, in)
	case KindSCF:
		c.execSCF(ctx, in)
	case KindCCF:
		c.execCCF(ctx, in)
	case KindRLC:
		c.execRLC(ctx, in)
	case KindRRC:
		c.execRRC(ctx, in)
	case KindRL:
		c.execRL(ctx, in)
	case KindRR:
		c.execRR(ctx, in)
	case KindSLA:
		c.execSLA(ctx, in)
	case KindSRA:
		c.execSRA(ctx, in)
	case KindSWAP:
		c.execSWAP(ctx, in)
	case KindSRL:
		c.execSRL(ctx, in)
	case KindBIT:
		c.execBIT(ctx, in)
	case KindRES:
		c.execRES(ctx, in)
	case KindSET:
		c.execSET(ctx, in)
	}
}
