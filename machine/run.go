package machine

import (
	"context"
	"time"

	"github.com/retrocore/dmgcore/cpu"
)

// frameInterval paces the run loop to the DMG's approximately 59.7 Hz
// refresh; sleeping in 60 Hz steps is close enough that no test ROM
// depends on the difference.
const frameInterval = time.Second / 60

// Run steps the CPU until ctx is canceled, a fatal error occurs, or the
// CPU reaches Stopped. onFrame, if non-nil, is called once per VBlank
// entry with the frame counter and the current framebuffer; the run
// loop only ever sleeps between frames, never between the cycles of one
// instruction, so frame pacing cannot desynchronize mid-instruction
// timing.
func (h *Host) Run(ctx context.Context, onFrame func(frame uint64, fb []uint32)) error {
	lastFrame := h.PPU.FrameCounter()
	lastPace := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := h.Step(); err != nil {
			return err
		}
		if h.CPU.Mode == cpu.ModeStopped {
			return nil
		}

		if cur := h.PPU.FrameCounter(); cur != lastFrame {
			lastFrame = cur
			if onFrame != nil {
				onFrame(cur, h.PPU.Framebuffer())
			}
			if elapsed := time.Since(lastPace); elapsed < frameInterval {
				time.Sleep(frameInterval - elapsed)
			}
			lastPace = time.Now()
		}
	}
}
