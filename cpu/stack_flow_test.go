package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchTaken(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = BEQ
	mem[0x0201] = 0x10 // forward branch
	c.P |= FlagZ
	c.Step()
	assert.Equal(t, uint16(0x0212), c.PC)
}

func TestBranchNotTaken(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = BNE
	mem[0x0201] = 0x10
	c.P |= FlagZ // BNE requires Z clear
	c.Step()
	assert.Equal(t, uint16(0x0202), c.PC)
}

func TestJSRRTS(t *testing.T) {
	c, mem := newTestCPU()
	mem[0x0200] = JSR_ABS
	mem[0x0201] = 0x00
	mem[0x0202] = 0x03 // JSR $0300
	mem[0x0300] = RTS

	c.Step() // JSR
	assert.Equal(t, uint16(0x0300), c.PC)

	c.Step() // RTS
	assert.Equal(t, uint16(0x0203), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
}

func TestPushPull(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x42
	mem[0x0200] = PHA
	mem[0x0201] = LDA_IMM
	mem[0x0202] = 0x00
	mem[0x0203] = PLA

	c.Step() // PHA
	assert.Equal(t, uint8(0xFC), c.SP)

	c.Step() // LDA #$00
	assert.Equal(t, uint8(0), c.A)

	c.Step() // PLA
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint8(0xFD), c.SP)
}
