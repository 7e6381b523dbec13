package cpu

// State is the serializable snapshot of a CPU's architectural state,
// used by machine's save/restore support.
type State struct {
	Registers
	Mode         RunMode
	IME          bool
	IMEScheduled bool
}

// Snapshot captures the CPU's current architectural state.
func (c *CPU) Snapshot() State {
	return State{
		Registers:    c.Registers,
		Mode:         c.Mode,
		IME:          c.ime,
		IMEScheduled: c.imeScheduled,
	}
}

// Restore replaces the CPU's architectural state with s.
func (c *CPU) Restore(s State) {
	c.Registers = s.Registers
	c.Mode = s.Mode
	c.ime = s.IME
	c.imeScheduled = s.IMEScheduled
}
