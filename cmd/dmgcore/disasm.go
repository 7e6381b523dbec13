package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrocore/dmgcore/cpu"
)

func newDisasmCmd() *cobra.Command {
	var start, count int

	cmd := &cobra.Command{
		Use:   "disasm <rom>",
		Short: "Print a static disassembly listing without executing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("dmgcore: read rom: %w", err)
			}

			addr := start
			printed := 0
			for addr < len(rom) && (count <= 0 || printed < count) {
				text, length := cpu.Disassemble(rom, addr)
				fmt.Fprintf(cmd.OutOrStdout(), "%04X: %s\n", addr, text)
				addr += length
				printed++
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0x0100, "address to begin disassembly at")
	cmd.Flags().IntVar(&count, "count", 64, "number of instructions to print (0 = to end of ROM)")
	return cmd
}
