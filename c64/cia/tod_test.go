package cia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTODTenthsCascadesIntoSeconds(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(TOD_HR, 0x01)
	c.WriteRegister(TOD_MIN, 0x59)
	c.WriteRegister(TOD_SEC, 0x59)
	c.WriteRegister(TOD_10THS, 0x09)

	c.updateTOD()

	assert.Equal(t, uint8(0x02), c.reg.todHr&0x1F)
	assert.Equal(t, uint8(0x00), c.reg.todMin)
	assert.Equal(t, uint8(0x00), c.reg.todSec)
	assert.Equal(t, uint8(0x00), c.reg.todTenths)
}

func TestTODNoonRollsPMBit(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(TOD_HR, 0x11) // 11 AM
	c.WriteRegister(TOD_MIN, 0x59)
	c.WriteRegister(TOD_SEC, 0x59)
	c.WriteRegister(TOD_10THS, 0x09)

	c.updateTOD()

	assert.Equal(t, uint8(0x12), c.reg.todHr&0x1F)
	assert.Equal(t, uint8(0x80), c.reg.todHr&0x80, "rolling past 11 flips AM/PM")
}

func TestTODReadingHoursLatchesSecAndMin(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(TOD_HR, 0x05)
	c.WriteRegister(TOD_MIN, 0x10)
	c.WriteRegister(TOD_SEC, 0x20)

	_ = c.ReadRegister(TOD_HR) // snapshots sec/min/hr

	c.reg.todTenths = 0x09
	c.updateTOD() // wraps tenths and rolls todSec to 0x21 underneath the snapshot

	assert.Equal(t, uint8(0x21), c.reg.todSec, "the live clock did advance")
	assert.Equal(t, uint8(0x20), c.ReadRegister(TOD_SEC), "latched read still returns the pre-roll snapshot")
	assert.Equal(t, uint8(0x10), c.ReadRegister(TOD_MIN))
}

func TestTODReadingTenthsClearsLatch(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(TOD_SEC, 0x30)
	_ = c.ReadRegister(TOD_HR)
	_ = c.ReadRegister(TOD_10THS) // unlatches

	c.reg.todSec = 0x45 // simulate the clock having moved on
	assert.Equal(t, uint8(0x45), c.ReadRegister(TOD_SEC), "unlatched read observes the live clock again")
}

func TestTODAlarmMatchRaisesICRBitWhenMasked(t *testing.T) {
	c := NewCIA(false)
	c.WriteRegister(ICR, ICR_SET|ICR_TOD)
	c.WriteRegister(CRB, CRB_ALARM)
	c.WriteRegister(TOD_HR, 0x01)
	c.WriteRegister(TOD_MIN, 0x00)
	c.WriteRegister(TOD_SEC, 0x00)
	c.WriteRegister(TOD_10THS, 0x01)
	c.WriteRegister(CRB, 0) // back to clock-set mode

	c.WriteRegister(TOD_HR, 0x01)
	c.WriteRegister(TOD_MIN, 0x00)
	c.WriteRegister(TOD_SEC, 0x00)
	c.WriteRegister(TOD_10THS, 0x00)

	c.updateTOD()

	icr := c.ReadRegister(ICR)
	assert.True(t, icr&ICR_TOD != 0)
}

func TestTODFrequencySelectedByCRATODIN(t *testing.T) {
	c := NewCIA(false)
	assert.Equal(t, uint32(20000), c.todPeriod(), "reset leaves TOD at 50 Hz per spec")
	c.WriteRegister(CRA, 0)
	assert.Equal(t, uint32(16667), c.todPeriod())
	c.WriteRegister(CRA, CRA_TODIN)
	assert.Equal(t, uint32(20000), c.todPeriod())
}
