// Command dmgcore is a headless driver for the DMG core: it loads a ROM
// image, runs it to a frame/fatal limit or interactively, prints static
// disassembly, and writes and inspects save states. ROM loading and rendering
// live here, outside the core library, which stays a pure interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "dmgcore",
		Short: "A cycle-aware DMG emulator core driver",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newDisasmCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dmgcore build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
