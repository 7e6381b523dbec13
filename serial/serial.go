// Package serial implements the SB/SC link-cable registers. No actual
// link partner is modeled: a write of 0x81 to SC (the "start transfer,
// internal clock" pattern) is treated as completing immediately, firing
// OnByteReady with the current SB value before SC's start bit clears.
package serial

import "github.com/retrocore/dmgcore/irq"

const scStartTransfer = 0x81

// Port holds SB and SC and notifies OnByteReady when a transfer
// completes.
type Port struct {
	sb byte
	sc byte

	// OnByteReady, if set, is called with the transmitted byte whenever
	// a transfer completes. Typically wired to a terminal or log sink
	// by the host.
	OnByteReady func(byte)

	lines *irq.Lines
}

// New returns a Port that raises SERIAL on lines when a transfer
// completes.
func New(lines *irq.Lines) *Port {
	return &Port{lines: lines}
}

func (p *Port) ReadSB() byte { return p.sb }
func (p *Port) WriteSB(v byte) { p.sb = v }

// ReadSC returns SC with its unused bits forced high, matching the
// hardware's open-bus behavior on DMG (bits 6-1 always read 1).
func (p *Port) ReadSC() byte { return p.sc | 0x7E }

// WriteSC stores SC and, for the internal-clock start pattern, completes
// the transfer synchronously: no cycle-accurate clocking is modeled
// since no second Game Boy is ever attached.
func (p *Port) WriteSC(v byte) {
	p.sc = v & 0x81
	if v&0x81 == scStartTransfer {
		if p.OnByteReady != nil {
			p.OnByteReady(p.sb)
		}
		p.sc &^= 0x80
		if p.lines != nil {
			p.lines.Request(irq.Serial)
		}
	}
}
