package main

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retrocore/dmgcore/cpu"
	"github.com/retrocore/dmgcore/machine"
)

// runREPL puts stdin into raw mode and single-steps host on each
// keystroke, printing the register file and current mode after every
// instruction. q quits, r resets, any other key steps once.
func runREPL(cmd *cobra.Command, host *machine.Host) error {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("dmgcore: enable raw terminal: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	fmt.Fprint(out, "dmgcore interactive: space/any key steps, r resets, q quits\r\n")
	printState(out, host)
	out.Flush()

	buf := make([]byte, 1)
	for {
		n, err := syscall.Read(fd, buf)
		if err != nil {
			return fmt.Errorf("dmgcore: read stdin: %w", err)
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case 'q', 0x03: // q or Ctrl-C
			return nil
		case 'r':
			host.Reset()
		default:
			if err := host.Step(); err != nil {
				fmt.Fprintf(out, "\r\nfatal: %v\r\n", err)
				out.Flush()
				return nil
			}
		}
		printState(out, host)
		out.Flush()
	}
}

func printState(out *bufio.Writer, host *machine.Host) {
	c := host.CPU
	fmt.Fprintf(out, "PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IME=%v mode=%d ticks=%d\r\n",
		c.PC, c.SP, c.Read16(cpu.RegAF), c.Read16(cpu.RegBC), c.Read16(cpu.RegDE), c.Read16(cpu.RegHL),
		c.IME(), c.Mode, host.Ticks())

	text, _ := cpu.Disassemble(romWindow(host), 0)
	fmt.Fprintf(out, "  next: %s\r\n", text)
}

// romWindow exposes a bounded read-only view of addressable memory for
// the REPL's disassembly preview, using Peek so it never affects
// cycle-accurate state.
func romWindow(host *machine.Host) []byte {
	const window = 3
	buf := make([]byte, window)
	pc := host.CPU.PC
	for i := 0; i < window; i++ {
		buf[i] = host.Peek(pc + uint16(i))
	}
	return buf
}
