// Command dis disassembles a flat binary into 6502 assembly text, loading it
// at a given address and walking forward from there.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/trancee/c64core/dis/disassembler"
)

type flatMemory [65536]uint8

func (m *flatMemory) Read(addr uint16) uint8         { return m[addr] }
func (m *flatMemory) Write(addr uint16, value uint8) { m[addr] = value }

func main() {
	inputFile := flag.String("i", "", "Input binary file")
	startAddr := flag.String("a", "", "Start address")
	flag.Parse()

	addrStr := *startAddr
	if strings.HasPrefix(addrStr, "$") {
		addrStr = "0x" + addrStr[1:]
	}
	startAddrInt, err := strconv.ParseUint(addrStr, 0, 16)
	if err != nil {
		fmt.Printf("Error parsing start address: %v\n", err)
		os.Exit(1)
	}

	mem := &flatMemory{}
	length, err := loadBinary(mem, *inputFile, int(startAddrInt))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(disassembler.DisassembleMemory(mem, int(startAddrInt), length))
}

func loadBinary(mem *flatMemory, filename string, startAddr int) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read binary file: %w", err)
	}
	if startAddr+len(data) > len(mem) {
		return 0, fmt.Errorf("binary file too large for available memory")
	}
	for i, b := range data {
		mem[uint16(startAddr)+uint16(i)] = b
	}
	return len(data), nil
}
