package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadImmediateSetsZN(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = LDA_IMM
	mem[0x0201] = 0x00
	c.Step()
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.P&FlagZ != 0)

	c.PC = 0x0300
	mem[0x0300] = LDX_IMM
	mem[0x0301] = 0x80
	c.Step()
	assert.Equal(t, uint8(0x80), c.X)
	assert.True(t, c.P&FlagN != 0)

	c.PC = 0x0400
	mem[0x0400] = LDY_IMM
	mem[0x0401] = 0x42
	c.Step()
	assert.Equal(t, uint8(0x42), c.Y)
}

func TestStoreZeroPage(t *testing.T) {
	c, mem := newTestCPU()
	c.A, c.X, c.Y = 0x11, 0x22, 0x33

	mem[0x0200] = STA_ZP
	mem[0x0201] = 0x10
	c.Step()
	assert.Equal(t, uint8(0x11), mem[0x0010])

	c.PC = 0x0300
	mem[0x0300] = STX_ZP
	mem[0x0301] = 0x11
	c.Step()
	assert.Equal(t, uint8(0x22), mem[0x0011])

	c.PC = 0x0400
	mem[0x0400] = STY_ZP
	mem[0x0401] = 0x12
	c.Step()
	assert.Equal(t, uint8(0x33), mem[0x0012])
}

func TestTransfers(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x55
	mem[0x0200] = TAX
	c.Step()
	assert.Equal(t, uint8(0x55), c.X)

	c.Y = 0x66
	c.PC = 0x0300
	mem[0x0300] = TYA
	c.Step()
	assert.Equal(t, uint8(0x66), c.A)

	c.X = 0xAA
	c.PC = 0x0400
	mem[0x0400] = TXS
	c.Step()
	assert.Equal(t, uint8(0xAA), c.SP)
}
