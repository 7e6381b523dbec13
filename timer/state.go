package timer

// State is the serializable snapshot of the timer's counters.
type State struct {
	Div             uint16
	TIMA, TMA, TAC  byte
	LastSelectedBit bool
}

func (t *Timer) Snapshot() State {
	return State{Div: t.div, TIMA: t.tima, TMA: t.tma, TAC: t.tac, LastSelectedBit: t.lastSelectedBit}
}

func (t *Timer) Restore(s State) {
	t.div, t.tima, t.tma, t.tac, t.lastSelectedBit = s.Div, s.TIMA, s.TMA, s.TAC, s.LastSelectedBit
}
