package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrocore/dmgcore/machine"
)

func newRunCmd() *cobra.Command {
	var frames int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run a ROM headlessly for a frame budget, or interactively with --interactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("dmgcore: read rom: %w", err)
			}

			host := machine.New(rom)
			host.Serial.OnByteReady = func(b byte) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%c", b)
			}

			if interactive {
				return runREPL(cmd, host)
			}
			return runHeadless(cmd, host, frames)
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 600, "stop after this many VBlank frames (0 = run until fatal)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "drop into a raw-terminal single-step debug REPL")
	return cmd
}

func runHeadless(cmd *cobra.Command, host *machine.Host, frames int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := 0
	err := host.Run(ctx, func(frame uint64, _ []uint32) {
		seen++
		if frames > 0 && seen >= frames {
			cancel()
		}
	})

	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(cmd.OutOrStdout(), "stopped after %d frames, %d ticks\n", seen, host.Ticks())
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "halted after %d frames, %d ticks\n", seen, host.Ticks())
	return nil
}
