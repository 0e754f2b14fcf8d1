package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetVectorsAndSP(t *testing.T) {
	mem := &flatBus{}
	mem[vectorReset] = 0x00
	mem[vectorReset+1] = 0xF0
	c := NewCPU(mem)
	c.Reset()
	assert.Equal(t, uint16(0xF000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.P&FlagI != 0)
}

func TestBRKPushesPCPlus2AndSetsI(t *testing.T) {
	c, mem := newTestCPU()
	mem[vectorIRQ] = 0x00
	mem[vectorIRQ+1] = 0xF0
	mem[0x0200] = BRK
	mem[0x0201] = 0xFF // signature byte, discarded

	c.Step()

	assert.Equal(t, uint16(0xF000), c.PC)
	assert.True(t, c.P&FlagI != 0)

	pLo := mem[0x0100|uint16(c.SP+1)]
	assert.True(t, pLo&FlagB != 0, "B flag set in byte pushed by BRK")

	pch := mem[0x0100|uint16(c.SP+3)]
	pcl := mem[0x0100|uint16(c.SP+2)]
	assert.Equal(t, uint16(0x0202), uint16(pch)<<8|uint16(pcl))
}

func TestIRQRespectsIFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem[vectorIRQ] = 0x00
	mem[vectorIRQ+1] = 0xF0
	mem[0x0200] = NOP

	c.P |= FlagI
	c.SetIRQ(true)
	c.Step()
	assert.Equal(t, uint16(0x0201), c.PC, "masked IRQ must not divert control flow")

	c.P &^= FlagI
	c.Step() // now serviced instead of fetching the next opcode
	assert.Equal(t, uint16(0xF000), c.PC)
}

func TestNMIIsEdgeTriggered(t *testing.T) {
	c, mem := newTestCPU()
	mem[vectorNMI] = 0x00
	mem[vectorNMI+1] = 0xF0
	mem[0x0200] = NOP
	mem[0x0201] = NOP

	c.SetNMI(true)
	c.Step()
	assert.Equal(t, uint16(0xF000), c.PC, "asserted NMI services on the next instruction boundary")

	// Holding the line high without a new edge must not re-trigger.
	c.PC = 0x0201
	c.Step()
	assert.Equal(t, uint16(0x0202), c.PC)
}

func TestJAMHalts(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = JAM_02
	c.Step()
	assert.True(t, c.Halted)

	pc := c.PC
	c.Step()
	assert.Equal(t, pc, c.PC, "a halted CPU keeps driving the same address")
}
