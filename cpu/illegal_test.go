package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSLOZeroPage(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = SLO_ZP
	mem[0x0201] = 0x10
	mem[0x0010] = 0x81
	c.A = 0x01
	c.Step()
	assert.Equal(t, uint8(0x02), mem[0x0010], "ASL result written back")
	assert.Equal(t, uint8(0x03), c.A, "ORA folds the shifted value into A")
	assert.True(t, c.P&FlagC != 0, "bit 7 of the original value feeds carry")
}

func TestARRBinaryModeDerivesCarryAndOverflowFromBits6And5(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = ARR_IMM
	mem[0x0201] = 0xFF
	c.A = 0x61 // AND leaves 0110 0001; ROR with carry-in 0 -> 0011 0000
	c.Step()
	assert.Equal(t, uint8(0x30), c.A)
	assert.True(t, c.P&FlagV != 0, "bit5 set, bit6 clear: V sets")
	assert.False(t, c.P&FlagC != 0, "bit5 set, bit6 clear: C clears")
}

func TestARRDecimalModeAppliesBCDFixup(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = ARR_IMM
	mem[0x0201] = 0xFF
	c.A = 0x05
	c.P |= FlagD | FlagC
	c.Step()
	assert.Equal(t, uint8(0x88), c.A, "low-nibble BCD fixup applied, high nibble untouched")
	assert.False(t, c.P&FlagC != 0, "high-nibble check does not exceed 5, so carry clears")
	assert.False(t, c.P&FlagV != 0)
	assert.True(t, c.P&FlagN != 0)
}

func TestLAXZeroPage(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = LAX_ZP
	mem[0x0201] = 0x10
	mem[0x0010] = 0x7F
	c.Step()
	assert.Equal(t, uint8(0x7F), c.A)
	assert.Equal(t, uint8(0x7F), c.X, "LAX loads both A and X")
}

func TestSAXZeroPage(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = SAX_ZP
	mem[0x0201] = 0x10
	c.A = 0xF0
	c.X = 0x3C
	c.Step()
	assert.Equal(t, uint8(0x30), mem[0x0010], "SAX stores A AND X without touching flags")
}

func TestANCImmediate(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = ANC_IMM
	mem[0x0201] = 0x80
	c.A = 0xFF
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.P&FlagN != 0)
	assert.True(t, c.P&FlagC != 0, "ANC copies N into C")
}

func TestDCPZeroPage(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = DCP_ZP
	mem[0x0201] = 0x10
	mem[0x0010] = 0x10
	c.A = 0x10
	c.Step()
	assert.Equal(t, uint8(0x0F), mem[0x0010], "DEC happens first")
	assert.True(t, c.P&FlagC != 0, "then CMP against the decremented value")
	assert.True(t, c.P&FlagZ == 0)
}

func TestIllegalNOPConsumesOperand(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = NOP_ZP_04
	mem[0x0201] = 0x55
	mem[0x0202] = LDA_IMM
	mem[0x0203] = 0x01
	c.Step()
	assert.Equal(t, uint16(0x0202), c.PC)
	c.Step()
	assert.Equal(t, uint8(0x01), c.A)
}
