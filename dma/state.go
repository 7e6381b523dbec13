package dma

// State is the serializable snapshot of the DMA engine's progress.
type State struct {
	Page    byte
	Counter int
	Delay   int
	Active  bool
}

func (e *Engine) Snapshot() State {
	return State{Page: e.page, Counter: e.counter, Delay: e.delay, Active: e.active}
}

func (e *Engine) Restore(s State) {
	e.page, e.counter, e.delay, e.active = s.Page, s.Counter, s.Delay, s.Active
}
