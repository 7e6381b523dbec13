package machine

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/retrocore/dmgcore/bus"
	"github.com/retrocore/dmgcore/cpu"
	"github.com/retrocore/dmgcore/dma"
	"github.com/retrocore/dmgcore/irq"
	"github.com/retrocore/dmgcore/ppu"
	"github.com/retrocore/dmgcore/serial"
	"github.com/retrocore/dmgcore/timer"
)

// Snapshot is the complete serializable state of a running machine,
// excluding the loaded ROM image, which the caller is expected to
// already hold and re-supply on restore.
type Snapshot struct {
	CPU    cpu.State
	Bus    bus.State
	PPU    ppu.State
	Timer  timer.State
	DMA    dma.State
	Lines  irq.Lines
	Serial serial.State
	Ticks  uint64
}

// TakeSnapshot captures the host's complete current state.
func (h *Host) TakeSnapshot() Snapshot {
	return Snapshot{
		CPU:    h.CPU.Snapshot(),
		Bus:    h.Bus.Snapshot(),
		PPU:    h.PPU.Snapshot(),
		Timer:  h.Timer.Snapshot(),
		DMA:    h.DMA.Snapshot(),
		Lines:  *h.Lines,
		Serial: h.Serial.Snapshot(),
		Ticks:  h.ticks,
	}
}

// RestoreSnapshot replaces the host's state with s, leaving the loaded
// ROM and device wiring untouched.
func (h *Host) RestoreSnapshot(s Snapshot) {
	h.CPU.Restore(s.CPU)
	h.Bus.Restore(s.Bus)
	h.PPU.Restore(s.PPU)
	h.Timer.Restore(s.Timer)
	h.DMA.Restore(s.DMA)
	*h.Lines = s.Lines
	h.Serial.Restore(s.Serial)
	h.ticks = s.Ticks
}

// WriteSnapshot gob-encodes and gzip-compresses a Snapshot to w.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	gz := gzip.NewWriter(w)
	if err := gob.NewEncoder(gz).Encode(s); err != nil {
		gz.Close()
		return fmt.Errorf("machine: encode snapshot: %w", err)
	}
	return gz.Close()
}

// ReadSnapshot decompresses and gob-decodes a Snapshot previously
// written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("machine: open snapshot: %w", err)
	}
	defer gz.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, gz); err != nil {
		return Snapshot{}, fmt.Errorf("machine: read snapshot: %w", err)
	}

	var s Snapshot
	if err := gob.NewDecoder(&buf).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("machine: decode snapshot: %w", err)
	}
	return s, nil
}
