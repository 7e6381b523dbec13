package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrocore/dmgcore/machine"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Create or inspect a save state",
	}
	cmd.AddCommand(newSnapshotDumpCmd())
	cmd.AddCommand(newSnapshotInspectCmd())
	return cmd
}

func newSnapshotDumpCmd() *cobra.Command {
	var frames int
	var out string

	cmd := &cobra.Command{
		Use:   "dump <rom>",
		Short: "Run a ROM for a frame budget and write a save state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("dmgcore: read rom: %w", err)
			}

			host := machine.New(rom)
			seen := 0
			for seen < frames {
				before := host.PPU.FrameCounter()
				if err := host.Step(); err != nil {
					return fmt.Errorf("dmgcore: %w", err)
				}
				if host.PPU.FrameCounter() != before {
					seen++
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("dmgcore: create snapshot file: %w", err)
			}
			defer f.Close()

			if err := machine.WriteSnapshot(f, host.TakeSnapshot()); err != nil {
				return fmt.Errorf("dmgcore: write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s after %d frames\n", out, seen)
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 60, "number of VBlank frames to run before snapshotting")
	cmd.Flags().StringVar(&out, "out", "state.dmgsnap", "snapshot output path")
	return cmd
}

func newSnapshotInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print the register file and tick count stored in a save state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("dmgcore: open snapshot: %w", err)
			}
			defer f.Close()

			snap, err := machine.ReadSnapshot(f)
			if err != nil {
				return fmt.Errorf("dmgcore: read snapshot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "PC=%04X SP=%04X A=%02X F=%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X ticks=%d\n",
				snap.CPU.PC, snap.CPU.SP, snap.CPU.A, snap.CPU.F,
				snap.CPU.B, snap.CPU.C, snap.CPU.D, snap.CPU.E, snap.CPU.H, snap.CPU.L,
				snap.Ticks)
			return nil
		},
	}
	return cmd
}
