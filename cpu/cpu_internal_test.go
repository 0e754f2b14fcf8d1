package cpu

// flatBus is a plain 64K RAM used by the instruction-level tests below; it
// exercises exactly the bus contract cpu.CPU requires (one Read/Write per
// cycle) without any of the PLA banking c64/memory adds on top.
type flatBus [65536]uint8

func (m *flatBus) Read(addr uint16) uint8         { return m[addr] }
func (m *flatBus) Write(addr uint16, value uint8) { m[addr] = value }

// newTestCPU returns a CPU over a fresh flatBus with PC set to 0x0200, the
// address the table-driven tests below load their test programs at.
func newTestCPU() (*CPU, *flatBus) {
	mem := &flatBus{}
	c := NewCPU(mem)
	c.PC = 0x0200
	c.SP = 0xFD
	c.P = FlagUnused
	return c, mem
}
