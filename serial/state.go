package serial

// State is the serializable snapshot of the serial port's registers.
type State struct {
	SB, SC byte
}

func (p *Port) Snapshot() State { return State{SB: p.sb, SC: p.sc} }

func (p *Port) Restore(s State) { p.sb, p.sc = s.SB, s.SC }
