package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	regs [256]uint8
}

func (d *fakeDevice) ReadRegister(offset uint16) uint8  { return d.regs[offset] }
func (d *fakeDevice) WriteRegister(offset uint16, v uint8) { d.regs[offset] = v }

func romOf(size int, fill uint8) []uint8 {
	data := make([]uint8, size)
	for i := range data {
		data[i] = fill
	}
	return data
}

func TestLoadROMValidatesSize(t *testing.T) {
	m := NewManager()
	err := m.LoadROM(make([]uint8, 10), "basic")
	assert.Error(t, err)

	err = m.LoadROM(make([]uint8, 1), "bogus")
	assert.Error(t, err)

	err = m.LoadROM(romOf(8192, 0xAA), "basic")
	assert.NoError(t, err)
}

// TestPLABankingTruthTable exercises every LORAM/HIRAM/CHAREN combination
// that affects the $A000-$BFFF, $D000-$DFFF and $E000-$FFFF windows.
func TestPLABankingTruthTable(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.LoadROM(romOf(8192, 0x01), "basic"))
	assert.NoError(t, m.LoadROM(romOf(8192, 0x02), "kernal"))
	assert.NoError(t, m.LoadROM(romOf(4096, 0x03), "char"))
	m.ram[0xA000] = 0xAA
	m.ram[0xD000] = 0xDD
	m.ram[0xE000] = 0xEE
	// VIC left nil on purpose: rows that route $D000 to I/O instead of RAM or
	// char ROM read back open-bus 0xFF, which is itself the thing under test.

	tests := []struct {
		name                  string
		loram, hiram, charen  bool
		wantBasic, wantKernal uint8
		wantIOWindow          uint8
	}{
		{"all ROM visible (power-on default): I/O shows at $D000", true, true, true, 0x01, 0x02, 0xFF},
		{"LORAM clear hides BASIC, HIRAM alone still maps I/O", false, true, true, 0xAA, 0x02, 0xFF},
		{"both clear: neither ROM window, $D000 reverts to plain RAM", false, false, true, 0xAA, 0xEE, 0xDD},
		{"CHAREN clear with a RAM flag set: char ROM window", true, true, false, 0x01, 0x02, 0x03},
		{"CHAREN clear but no RAM flag set: $D000 is still plain RAM", false, false, false, 0xAA, 0xEE, 0xDD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := uint8(0)
			if tt.loram {
				port |= 0x01
			}
			if tt.hiram {
				port |= 0x02
			}
			if tt.charen {
				port |= 0x04
			}
			m.Write(portAddr, port)

			assert.Equal(t, tt.wantBasic, m.Read(basicROMStart), "basic window")
			assert.Equal(t, tt.wantKernal, m.Read(kernalROMStart), "kernal window")
			assert.Equal(t, tt.wantIOWindow, m.Read(ioPageStart), "io/char window")
		})
	}
}

func TestPortLatchIsStickyAcrossDDRChanges(t *testing.T) {
	m := NewManager()
	m.Write(portAddr, 0x3E) // clear LORAM, keep the rest
	assert.Equal(t, uint8(0x3E), m.Read(portAddr), "readback reflects the last written byte regardless of DDR")

	m.Write(portDDRAddr, 0x00) // all bits now inputs
	assert.Equal(t, uint8(0x3E), m.Read(portAddr), "the latch value is sticky even once bits become inputs")
}

func TestIODeviceMirroring(t *testing.T) {
	m := NewManager()
	m.Write(portAddr, 0x07) // both RAM banking flags and CHAREN set: I/O visible
	vic := &fakeDevice{}
	cia1 := &fakeDevice{}
	m.VIC = vic
	m.CIA1 = cia1

	m.Write(0xD000, 0x11)
	m.Write(0xD000+64, 0x22) // mirrors register 0 again, 64-byte period
	assert.Equal(t, uint8(0x22), vic.regs[0])

	m.Write(0xDC00, 0x33)
	m.Write(0xDC00+16, 0x44) // CIA mirrors every 16 bytes
	assert.Equal(t, uint8(0x44), cia1.regs[0])
}

func TestColorRAMOnlyWiresLowNibble(t *testing.T) {
	m := NewManager()
	m.Write(portAddr, 0x07)
	m.Write(0xD800, 0xAB)
	assert.Equal(t, uint8(0xFB), m.Read(0xD800), "high nibble floats high regardless of what was written, low nibble stored")
}

func TestVICReadSeesCharROMWindowOnlyInBanks0And2(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.LoadROM(romOf(4096, 0x5A), "char"))
	m.ram[0x1000] = 0x99 // same offset within bank 0, if char ROM weren't shadowing it

	assert.Equal(t, uint8(0x5A), m.VICRead(0, 0x1000), "bank 0 shows char ROM in $1000-$1FFF")
	assert.Equal(t, uint8(0x5A), m.VICRead(2, 0x1000), "bank 2 shows char ROM too")

	m.ram[0x4000+0x1000] = 0x77
	assert.Equal(t, uint8(0x77), m.VICRead(1, 0x1000), "bank 1 sees plain RAM, no char ROM shadow")
}

func TestDMAWritesRAMDirectly(t *testing.T) {
	m := NewManager()
	m.DMA(0x0801, []uint8{0x01, 0x02, 0x03})
	assert.Equal(t, uint8(0x01), m.Read(0x0801))
	assert.Equal(t, uint8(0x03), m.Read(0x0803))
}

func TestOnTickFiresOncePerBusAccess(t *testing.T) {
	m := NewManager()
	count := 0
	m.OnTick = func() { count++ }
	m.Read(0x0000)
	m.Write(0x0000, 1)
	assert.Equal(t, 2, count)
}

func TestRawAccessDoesNotTick(t *testing.T) {
	m := NewManager()
	count := 0
	m.OnTick = func() { count++ }
	m.RawRead(0x0000)
	m.RawWrite(0x0000, 1)
	assert.Equal(t, 0, count)
}
