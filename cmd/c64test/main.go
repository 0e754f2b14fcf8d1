// Command c64test runs Klaus Dormann's 6502 test binaries (functional,
// decimal, interrupt) against the CORE's cpu package, plus a generic `run`
// subcommand for driving any flat binary under an instruction-count budget
// (each CPU Step is one instruction, not one bus cycle) and an `asm`
// subcommand for assembling a source fixture with as/assembler before
// running it. It has no debugger UI or save-state format (see spec
// Non-goals) — pass/fail for the Dormann suites is reported by the test
// binaries' own convention of looping in place at a fixed address on success
// or failure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trancee/c64core/as/assembler"
	"github.com/trancee/c64core/cpu"
)

type flatMemory [65536]uint8

func (m *flatMemory) Read(addr uint16) uint8         { return m[addr] }
func (m *flatMemory) Write(addr uint16, value uint8) { m[addr] = value }

const maxCyclesDefault = 100_000_000

func runTest(path string, loadAddr, startPC uint16, successPC uint16, maxCycles int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	mem := &flatMemory{}
	copy(mem[loadAddr:], data)
	mem[0xFFFC] = uint8(startPC & 0xFF)
	mem[0xFFFD] = uint8(startPC >> 8)

	c := cpu.NewCPU(mem)
	c.Reset()

	lastPC := c.PC
	stuck := 0
	for i := 0; i < maxCycles; i++ {
		c.Step()
		if c.PC == lastPC {
			stuck++
			if stuck > 4 {
				break
			}
		} else {
			stuck = 0
		}
		lastPC = c.PC
	}

	if c.PC == successPC {
		fmt.Printf("PASS: %s looped at $%04X\n", path, c.PC)
		return nil
	}
	return fmt.Errorf("FAIL: %s trapped at $%04X (A=$%02X X=$%02X Y=$%02X P=$%02X)",
		path, c.PC, c.A, c.X, c.Y, c.P)
}

func main() {
	var loadAddr, startPC uint16
	var maxCycles int

	root := &cobra.Command{
		Use:   "c64test",
		Short: "Run 6502/6510 CPU conformance suites against the core",
	}
	root.PersistentFlags().IntVar(&maxCycles, "max-cycles", maxCyclesDefault, "instruction budget (CPU steps, not bus cycles) before declaring a hang")

	functional := &cobra.Command{
		Use:   "functional <binary>",
		Short: "Run Klaus Dormann's 6502_functional_test.bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(args[0], 0x0000, 0x0400, 0x3469, maxCycles)
		},
	}

	decimal := &cobra.Command{
		Use:   "decimal <binary>",
		Short: "Run Klaus Dormann's 6502_decimal_test.bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(args[0], 0x0200, 0x0200, 0x024B, maxCycles)
		},
	}

	interrupt := &cobra.Command{
		Use:   "interrupt <binary>",
		Short: "Run Klaus Dormann's 6502_interrupt_test.bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(args[0], 0x0000, 0x0400, 0x06F5, maxCycles)
		},
	}

	run := &cobra.Command{
		Use:   "run <binary>",
		Short: "Load a raw binary and run it under an instruction budget, reporting final CPU state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			mem := &flatMemory{}
			copy(mem[loadAddr:], data)
			mem[0xFFFC] = uint8(startPC & 0xFF)
			mem[0xFFFD] = uint8(startPC >> 8)
			c := cpu.NewCPU(mem)
			c.Reset()
			for i := 0; i < maxCycles && !c.Halted; i++ {
				c.Step()
			}
			fmt.Printf("final: PC=$%04X A=$%02X X=$%02X Y=$%02X SP=$%02X P=$%02X halted=%v\n",
				c.PC, c.A, c.X, c.Y, c.SP, c.P, c.Halted)
			return nil
		},
	}
	run.Flags().Uint16Var(&loadAddr, "load", 0x0800, "address to load the binary at")
	run.Flags().Uint16Var(&startPC, "start", 0x0800, "reset vector / initial PC")

	var asmOut string
	asm := &cobra.Command{
		Use:   "asm <source.asm>",
		Short: "Assemble a 6502 source fixture and immediately run it under an instruction budget",
		Long: "Assembles source with as/assembler rather than poking raw opcode bytes, then loads\n" +
			"the result the same way run does. Meant for hand-written CIA/IRQ fixtures that are\n" +
			"too long to keep readable as a byte slice; pair with --out to keep the binary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			a := assembler.NewAssembler()
			if err := a.Assemble(string(source)); err != nil {
				return fmt.Errorf("assembling %s: %w", args[0], err)
			}
			bin := a.GetOutput()

			if asmOut != "" {
				if err := os.WriteFile(asmOut, bin, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", asmOut, err)
				}
			}

			mem := &flatMemory{}
			copy(mem[loadAddr:], bin)
			mem[0xFFFC] = uint8(startPC & 0xFF)
			mem[0xFFFD] = uint8(startPC >> 8)
			c := cpu.NewCPU(mem)
			c.Reset()
			for i := 0; i < maxCycles && !c.Halted; i++ {
				c.Step()
			}
			fmt.Printf("assembled %d bytes, final: PC=$%04X A=$%02X X=$%02X Y=$%02X SP=$%02X P=$%02X halted=%v\n",
				len(bin), c.PC, c.A, c.X, c.Y, c.SP, c.P, c.Halted)
			return nil
		},
	}
	asm.Flags().Uint16Var(&loadAddr, "load", 0x0800, "address to load the assembled binary at")
	asm.Flags().Uint16Var(&startPC, "start", 0x0800, "reset vector / initial PC")
	asm.Flags().StringVar(&asmOut, "out", "", "optional path to also write the assembled binary to")

	root.AddCommand(functional, decimal, interrupt, run, asm)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
