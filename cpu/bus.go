package cpu

// MemoryBus is the CPU's only view of the outside world. Every Read and
// every Write corresponds to exactly one clock cycle on real hardware, so
// the CPU never tracks cycle counts itself: the bus implementation (the
// PLA-backed memory map) is the thing that ticks CIA/VIC state forward as
// these calls happen.
type MemoryBus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE // shared by IRQ and BRK
)
