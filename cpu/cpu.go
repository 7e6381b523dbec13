// cpu.go - the fetch/decode/execute loop and the interrupt service
// routine. The interpreter never touches memory, VRAM, or I/O registers
// directly: every side effect it causes goes through the Context it is
// given, so it can drive any host that implements the capability
// contract.

package cpu

import "github.com/retrocore/dmgcore/irq"

// Context is the host-context capability the interpreter depends on. It
// has no back-reference to the CPU: the dependency runs one way, from
// interpreter to host, which is what lets cpu be tested against a bare
// fixture instead of a full machine.
type Context interface {
	// TickCycle advances every other component by one M-cycle (4 dots)
	// without producing or consuming a bus value.
	TickCycle()

	// ReadCycle performs a ticked 8-bit bus read: it advances the clock
	// by one M-cycle and returns the byte at addr.
	ReadCycle(addr uint16) byte

	// WriteCycle performs a ticked 8-bit bus write.
	WriteCycle(addr uint16, v byte)

	// GetInterrupt returns IE∧IF, masked to the five live bits, and
	// whether it is nonzero.
	GetInterrupt() (byte, bool)

	// AckInterrupt clears the given one-hot bit in IF.
	AckInterrupt(flag byte)

	// Peek reads a byte without ticking the clock — used by the
	// disassembler and debug tooling, never by instruction execution.
	Peek(addr uint16) byte

	// Ticks returns the running T-cycle count since power-on.
	Ticks() uint64
}

// RunMode is the interpreter's run state.
type RunMode int

const (
	ModeRunning RunMode = iota
	ModeHalted
	ModeStopped
)

// CPU is the LR35902 interpreter: register file, run mode, and the
// interrupt-master-enable latch.
type CPU struct {
	Registers

	Mode RunMode

	ime          bool
	imeScheduled bool

	// LastPC and LastOpcode record the most recently fetched
	// instruction for fatal-error reporting and debug tooling.
	LastPC     uint16
	LastOpcode uint16 // 0xCBxx for prefixed opcodes
}

// NewCPU returns a CPU in its post-boot-ROM power-on state.
func NewCPU() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset restores power-on register values and run state. IME starts
// cleared: the boot ROM never enables interrupts before handing off.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.Mode = ModeRunning
	c.ime = false
	c.imeScheduled = false
}

// IME reports whether the interrupt master enable is set.
func (c *CPU) IME() bool { return c.ime }

// Step executes exactly one instruction (or, in HALT, advances one
// M-cycle; in STOP, does nothing and charges no cycle) and then services
// at most one pending interrupt. It returns
// an error only for an illegal-opcode fault, at which point Mode becomes
// ModeStopped and the host should treat the core as dead.
func (c *CPU) Step(ctx Context) error {
	switch c.Mode {
	case ModeStopped:
		return nil
	case ModeHalted:
		ctx.TickCycle()
		if _, pending := ctx.GetInterrupt(); pending {
			c.Mode = ModeRunning
		}
		c.serviceInterrupts(ctx)
		return nil
	default:
		return c.stepRunning(ctx)
	}
}

func (c *CPU) stepRunning(ctx Context) error {
	pc := c.PC
	c.LastPC = pc
	opcode := ctx.ReadCycle(c.PC)
	c.PC++

	var in Instr
	isEI := false
	if opcode == 0xCB {
		sub := ctx.ReadCycle(c.PC)
		c.PC++
		c.LastOpcode = 0xCB00 | uint16(sub)
		in = DecodePrefixed(sub)
	} else {
		c.LastOpcode = uint16(opcode)
		decoded, ok := Decode(opcode)
		if !ok {
			c.Mode = ModeStopped
			return &DecodeError{PC: pc, Opcode: opcode}
		}
		in = decoded
		isEI = in.Kind == KindEI
	}

	c.execute(ctx, in)

	// EI arms the latch for the instruction that follows it, not for
	// itself: promotion is skipped on the very step that set it.
	if !isEI && c.imeScheduled {
		c.ime = true
		c.imeScheduled = false
	}

	c.serviceInterrupts(ctx)
	return nil
}

// serviceInterrupts runs the interrupt acknowledge sequence for the
// highest-priority pending interrupt, if IME is set and one is pending.
// HALT wake-up happens regardless of IME; service only happens with IME
// set, matching the HALT-with-IME-clear "next instruction runs twice"
// quirk being out of scope (see DESIGN.md).
func (c *CPU) serviceInterrupts(ctx Context) {
	if !c.ime {
		return
	}
	pending, ok := ctx.GetInterrupt()
	if !ok {
		return
	}
	_, mask, vector, ok := irq.Highest(pending)
	if !ok {
		return
	}

	c.ime = false
	ctx.AckInterrupt(mask)

	ctx.TickCycle()
	ctx.TickCycle()
	c.SP--
	ctx.WriteCycle(c.SP, byte(c.PC>>8))
	c.SP--
	ctx.WriteCycle(c.SP, byte(c.PC))
	c.PC = vector
}
