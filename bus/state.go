package bus

// State is the serializable snapshot of bus-owned RAM. ROM is excluded:
// it is immutable for the cartridge's lifetime and supplied fresh by
// whatever loads the snapshot.
type State struct {
	WRAM   [wramEnd - wramStart + 1]byte
	HRAM   [hramEnd - hramStart + 1]byte
	Joypad byte
}

func (b *Bus) Snapshot() State {
	return State{WRAM: b.WRAM, HRAM: b.HRAM, Joypad: b.Joypad}
}

func (b *Bus) Restore(s State) {
	b.WRAM, b.HRAM, b.Joypad = s.WRAM, s.HRAM, s.Joypad
}
