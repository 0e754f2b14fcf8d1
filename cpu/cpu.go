// Package cpu implements a cycle-accurate 6510 (6502-compatible) core: the
// full documented instruction set, the stable and unstable illegal opcode
// families, BCD arithmetic, and NMI/IRQ/BRK/RESET interrupt sequencing.
//
// The CPU owns no memory of its own. Every access goes through a MemoryBus,
// and every Read or Write is exactly one clock cycle, so instruction timing
// falls out of how many bus calls an instruction makes rather than a
// separate cycle-count table.
package cpu

// Status flag bits.
const (
	FlagC      uint8 = 0x01 // Carry
	FlagZ      uint8 = 0x02 // Zero
	FlagI      uint8 = 0x04 // Interrupt Disable
	FlagD      uint8 = 0x08 // Decimal Mode
	FlagB      uint8 = 0x10 // Break (only meaningful in the byte pushed to the stack)
	FlagUnused uint8 = 0x20 // always reads as 1
	FlagV      uint8 = 0x40 // Overflow
	FlagN      uint8 = 0x80 // Negative
)

// CPU is a 6510. X.Y.A.SP.P.PC are the classic 6502 registers; the 6510's
// extra integrated I/O port ($00/$01) is not modeled here — it lives in the
// bus/PLA, which is the component that actually interprets those bits for
// bank switching.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16

	Bus MemoryBus

	// Halted is true once a JAM/KIL opcode has executed; only a Reset clears it.
	Halted bool

	// LastUnreachableOpcodePC records the address of an opcode byte the
	// dispatch table had no entry for. All 256 opcodes are covered, so
	// this should never be set outside a corrupted table; execute's
	// default case reports here and keeps running rather than crashing.
	LastUnreachableOpcodePC uint16

	irqLine bool // level-sensitive, sampled at each instruction boundary
	nmiLine bool // edge-sensitive input line
	nmiEdge bool // latched falling-edge pending servicing
}

// NewCPU constructs a CPU wired to bus. Reset must be called before Step to
// load the reset vector; until then PC is zero.
func NewCPU(bus MemoryBus) *CPU {
	return &CPU{
		Bus: bus,
		// SP starts at 0 so that Reset's three decrements land on the
		// documented post-reset value of 0xFD (0x00 wraps to 0xFF, 0xFE, 0xFD).
		SP: 0x00,
		P:  FlagI | FlagUnused,
	}
}

// Reset runs the 6502's power-on/reset bus sequence: two throwaway reads of
// the current PC, three throwaway stack reads (the real chip drives R/W high
// during these even though SP is decremented as if pushing), then the vector
// fetch from $FFFC/$FFFD.
func (c *CPU) Reset() {
	c.Bus.Read(c.PC)
	c.Bus.Read(c.PC)
	c.Bus.Read(0x0100 | uint16(c.SP))
	c.SP--
	c.Bus.Read(0x0100 | uint16(c.SP))
	c.SP--
	c.Bus.Read(0x0100 | uint16(c.SP))
	c.SP--

	c.A, c.X, c.Y = 0, 0, 0
	c.P = FlagI | FlagUnused
	c.Halted = false
	c.irqLine = false
	c.nmiLine = false
	c.nmiEdge = false

	lo := uint16(c.Bus.Read(vectorReset))
	hi := uint16(c.Bus.Read(vectorReset + 1))
	c.PC = hi<<8 | lo
}

// SetIRQ sets the level of the IRQ line. CIA1 and the VIC-II both wire-OR
// onto this line; it is re-sampled at every instruction boundary and masked
// by the I flag.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// SetNMI sets the level of the NMI line (wired from CIA2). NMI is edge
// triggered: only the change from deasserted to asserted (the active-low
// pin's falling edge) latches a pending service.
func (c *CPU) SetNMI(asserted bool) {
	if asserted && !c.nmiLine {
		c.nmiEdge = true
	}
	c.nmiLine = asserted
}

// Step executes exactly one instruction (or, if an interrupt is pending at
// the instruction boundary, services it instead) and drives the bus for
// every cycle that takes.
func (c *CPU) Step() {
	if c.Halted {
		// A JAMmed CPU keeps driving the address bus at the opcode that
		// halted it; nothing else happens until Reset.
		c.Bus.Read(c.PC)
		return
	}

	if c.nmiEdge {
		c.nmiEdge = false
		c.serviceInterrupt(vectorNMI, false)
		return
	}
	if c.irqLine && c.P&FlagI == 0 {
		c.serviceInterrupt(vectorIRQ, false)
		return
	}

	opcode := c.fetch()
	c.execute(opcode)
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() uint8 {
	v := c.Bus.Read(c.PC)
	c.PC++
	return v
}

// serviceInterrupt runs the shared 7-cycle NMI/IRQ/BRK sequence. BRK reads
// and discards the signature byte following the opcode (the source of the
// classic "BRK is a 2-byte instruction" quirk); NMI/IRQ instead re-read the
// current PC without advancing it.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	if brk {
		c.Bus.Read(c.PC)
		c.PC++
	} else {
		c.Bus.Read(c.PC) // fetch of the opcode that would have run
		c.Bus.Read(c.PC) // second dummy read, PC still not advanced
	}

	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC & 0xFF))

	flags := c.P | FlagUnused
	if brk {
		flags |= FlagB
	} else {
		flags &^= FlagB
	}
	c.pushStack(flags)

	c.P |= FlagI

	lo := uint16(c.Bus.Read(vector))
	hi := uint16(c.Bus.Read(vector + 1))
	c.PC = hi<<8 | lo
}

func (c *CPU) pushStack(v uint8) {
	c.Bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pullStack() uint8 {
	c.SP++
	return c.Bus.Read(0x0100 | uint16(c.SP))
}

func (c *CPU) setFlag(flag uint8, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) updateZN(value uint8) {
	c.setFlag(FlagZ, value == 0)
	c.setFlag(FlagN, value&0x80 != 0)
}
