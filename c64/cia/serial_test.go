package cia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// runTimerAUnderflows ticks a just-started Timer A with latch 1 through n
// underflows: the first takes timerAStartDelay+1 cycles and each later
// reload-from-latch underflow takes 1 cycle.
func runTimerAUnderflows(c *CIA, n int) {
	tickN(c, timerAStartDelay+1)
	for i := 1; i < n; i++ {
		tickN(c, 1)
	}
}

func TestSerialOutputSetsICRSDRAfterEightTimerAUnderflows(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(ICR, ICR_SET|ICR_SDR)
	c.WriteRegister(TA_LO, 0x01)
	c.WriteRegister(TA_HI, 0x00)
	c.WriteRegister(CRA, CRA_START|CRA_SPMODE) // output mode
	c.WriteRegister(SDR, 0xAA)                 // loads the shift register, starts the transfer

	runTimerAUnderflows(c, 7)
	assert.False(t, c.IRQLine(), "only 7 of 8 bits shifted out")

	tickN(c, 1) // timer already running: one more underflow
	assert.True(t, c.IRQLine(), "8th Timer A underflow completes the byte")
	icr := c.ReadRegister(ICR)
	assert.True(t, icr&ICR_SDR != 0)
}

func TestSerialOutputIdleWithoutAWrite(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(ICR, ICR_SET|ICR_SDR)
	c.WriteRegister(TA_LO, 0x01)
	c.WriteRegister(TA_HI, 0x00)
	c.WriteRegister(CRA, CRA_START|CRA_SPMODE)

	runTimerAUnderflows(c, 10)
	assert.False(t, c.IRQLine(), "no byte was ever written to SDR, so nothing is shifting")
}

func TestSerialInputShiftsOnCNTEdges(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(ICR, ICR_SET|ICR_SDR) // CRA_SPMODE clear: input mode

	for i := 0; i < 8; i++ {
		c.SetCNT(false)
		c.Tick()
		c.SetCNT(true) // rising edge
		c.Tick()
	}

	assert.True(t, c.IRQLine(), "8 CNT edges complete an incoming byte")
}
