// Package memory implements the C64's PLA-driven memory map: the bank
// switching between RAM, BASIC/KERNAL/Character ROM and the I/O page that
// the 6510's integrated I/O port ($00/$01) controls, plus the address
// decode for the devices mapped into the I/O page (VIC-II, SID, color RAM,
// CIA1, CIA2).
package memory

import (
	"fmt"
	"log/slog"
)

// Address ranges the PLA decodes on.
const (
	basicROMStart  = 0xA000
	basicROMEnd    = 0xBFFF
	ioPageStart    = 0xD000
	ioPageEnd      = 0xDFFF
	kernalROMStart = 0xE000
	kernalROMEnd   = 0xFFFF

	vicStart   = 0xD000
	vicEnd     = 0xD3FF
	sidStart   = 0xD400
	sidEnd     = 0xD7FF
	colorStart = 0xD800
	colorEnd   = 0xDBFF
	cia1Start  = 0xDC00
	cia1End    = 0xDCFF
	cia2Start  = 0xDD00
	cia2End    = 0xDDFF

	portDDRAddr = 0x0000
	portAddr    = 0x0001
)

// MemoryConfig is the decoded state of the three PLA control lines.
type MemoryConfig struct {
	LORAM  bool
	HIRAM  bool
	CHAREN bool
}

// IODevice is satisfied by CIA, VIC and SID: a flat register file addressed
// by an offset within the device's own page, independent of where the PLA
// happens to have mapped that page.
type IODevice interface {
	ReadRegister(offset uint16) uint8
	WriteRegister(offset uint16, value uint8)
}

// Manager is the bus the CPU, and nothing else, talks to. It implements
// cpu.MemoryBus.
type Manager struct {
	ram      [65536]uint8
	basic    [8192]uint8
	kernal   [8192]uint8
	char     [4096]uint8
	colorRAM [1024]uint8 // only the low nibble of each byte is wired up

	portDDR   uint8
	portLatch uint8 // last byte written to $01, regardless of direction — the floating bits are sticky
	config    MemoryConfig

	CIA1, CIA2, VIC, SID IODevice

	// OnTick is invoked once per Read or Write, i.e. once per CPU clock
	// cycle; the system container uses it to advance the CIAs and VIC-II.
	OnTick func()

	// Log receives ROM-load diagnostics; system.New installs a discarding
	// logger by default so this is never nil in practice, but a
	// zero-value Manager (as used directly by package tests) leaves it nil.
	Log *slog.Logger
}

// NewManager returns a Manager with the PLA in its post-reset state (both
// ROMs and I/O visible).
func NewManager() *Manager {
	m := &Manager{
		portDDR:   0x2F,
		portLatch: 0x37,
	}
	m.updateConfig()
	return m
}

// LoadROM loads data into one of the three mask ROMs.
func (m *Manager) LoadROM(data []uint8, romType string) error {
	switch romType {
	case "basic":
		if len(data) != len(m.basic) {
			return fmt.Errorf("BASIC ROM must be %d bytes, got %d", len(m.basic), len(data))
		}
		copy(m.basic[:], data)
	case "kernal":
		if len(data) != len(m.kernal) {
			return fmt.Errorf("KERNAL ROM must be %d bytes, got %d", len(m.kernal), len(data))
		}
		copy(m.kernal[:], data)
	case "char":
		if len(data) != len(m.char) {
			return fmt.Errorf("character ROM must be %d bytes, got %d", len(m.char), len(data))
		}
		copy(m.char[:], data)
	default:
		return fmt.Errorf("unknown ROM type: %q", romType)
	}
	if m.Log != nil {
		m.Log.Info("ROM loaded", "type", romType, "bytes", len(data))
	}
	return nil
}

// Read implements cpu.MemoryBus: a full, ticking, banked read.
func (m *Manager) Read(addr uint16) uint8 {
	if m.OnTick != nil {
		m.OnTick()
	}
	return m.rawRead(addr)
}

// Write implements cpu.MemoryBus: a full, ticking, banked write.
func (m *Manager) Write(addr uint16, value uint8) {
	if m.OnTick != nil {
		m.OnTick()
	}
	m.rawWrite(addr, value)
}

// RawRead performs a banked read without ticking the bus clock — used by
// tools (the disassembler, the monitor, ROM loaders) that need to inspect
// memory without perturbing CIA/VIC timing.
func (m *Manager) RawRead(addr uint16) uint8 { return m.rawRead(addr) }

// RawWrite performs a banked write without ticking the bus clock.
func (m *Manager) RawWrite(addr uint16, value uint8) { m.rawWrite(addr, value) }

func (m *Manager) rawRead(addr uint16) uint8 {
	switch {
	case addr == portDDRAddr:
		return m.portDDR
	case addr == portAddr:
		return m.portLatch

	case addr >= basicROMStart && addr <= basicROMEnd:
		if m.config.LORAM && m.config.HIRAM {
			return m.basic[addr-basicROMStart]
		}
		return m.ram[addr]

	case addr >= ioPageStart && addr <= ioPageEnd:
		anyRAMFlag := m.config.LORAM || m.config.HIRAM
		switch {
		case !anyRAMFlag:
			return m.ram[addr]
		case m.config.CHAREN:
			return m.readIO(addr)
		default:
			return m.char[addr-ioPageStart]
		}

	case addr >= kernalROMStart && addr <= kernalROMEnd:
		if m.config.HIRAM {
			return m.kernal[addr-kernalROMStart]
		}
		return m.ram[addr]

	default:
		return m.ram[addr]
	}
}

func (m *Manager) rawWrite(addr uint16, value uint8) {
	switch {
	case addr == portDDRAddr:
		m.portDDR = value
		m.updateConfig()
	case addr == portAddr:
		m.portLatch = value
		m.updateConfig()

	case addr >= ioPageStart && addr <= ioPageEnd:
		anyRAMFlag := m.config.LORAM || m.config.HIRAM
		if anyRAMFlag && m.config.CHAREN {
			m.writeIO(addr, value)
			return
		}
		// RAM under Character ROM (or under nothing, when both banking
		// flags are clear) is always writable.
		m.ram[addr] = value

	default:
		// RAM under BASIC/KERNAL ROM is always writable too.
		m.ram[addr] = value
	}
}

// readIO dispatches a read within $D000-$DFFF once the PLA has decided I/O
// is visible there.
func (m *Manager) readIO(addr uint16) uint8 {
	switch {
	case addr >= vicStart && addr <= vicEnd:
		return m.deviceRead(m.VIC, addr-vicStart, 64)
	case addr >= sidStart && addr <= sidEnd:
		return m.deviceRead(m.SID, addr-sidStart, 32)
	case addr >= colorStart && addr <= colorEnd:
		return m.colorRAM[addr-colorStart] | 0xF0 // unconnected high nibble floats high
	case addr >= cia1Start && addr <= cia1End:
		return m.deviceRead(m.CIA1, addr-cia1Start, 16)
	case addr >= cia2Start && addr <= cia2End:
		return m.deviceRead(m.CIA2, addr-cia2Start, 16)
	default:
		return 0xFF // $DE00-$DFFF: no device wired in the CORE, open bus
	}
}

func (m *Manager) writeIO(addr uint16, value uint8) {
	switch {
	case addr >= vicStart && addr <= vicEnd:
		m.deviceWrite(m.VIC, addr-vicStart, 64, value)
	case addr >= sidStart && addr <= sidEnd:
		m.deviceWrite(m.SID, addr-sidStart, 32, value)
	case addr >= colorStart && addr <= colorEnd:
		m.colorRAM[addr-colorStart] = value & 0x0F
	case addr >= cia1Start && addr <= cia1End:
		m.deviceWrite(m.CIA1, addr-cia1Start, 16, value)
	case addr >= cia2Start && addr <= cia2End:
		m.deviceWrite(m.CIA2, addr-cia2Start, 16, value)
	default:
		// open bus, write discarded
	}
}

func (m *Manager) deviceRead(dev IODevice, offset uint16, period uint16) uint8 {
	if dev == nil {
		return 0xFF
	}
	return dev.ReadRegister(offset % period)
}

func (m *Manager) deviceWrite(dev IODevice, offset uint16, period uint16, value uint8) {
	if dev == nil {
		return
	}
	dev.WriteRegister(offset%period, value)
}

// VICRead answers the VIC-II's own view of memory through its bank window:
// a flat 14-bit address space built from RAM, with the two special 4K
// windows (per bank) that show Character ROM instead of RAM when the VIC's
// address falls in $1000-$1FFF of the bank. The VIC never sees I/O, BASIC or
// KERNAL ROM — those only exist in the CPU's view of the map.
func (m *Manager) VICRead(bank uint8, vicAddr14 uint16) uint8 {
	base := uint32(bank&0x03) * 0x4000
	addr := base + uint32(vicAddr14&0x3FFF)

	withinBank := vicAddr14 & 0x3FFF
	if withinBank >= 0x1000 && withinBank <= 0x1FFF && (bank == 0 || bank == 2) {
		return m.char[withinBank-0x1000]
	}
	return m.ram[uint16(addr)]
}

// updateConfig re-decodes the LORAM/HIRAM/CHAREN lines from the I/O port.
func (m *Manager) updateConfig() {
	port := m.portLatch
	m.config = MemoryConfig{
		LORAM:  port&0x01 != 0,
		HIRAM:  port&0x02 != 0,
		CHAREN: port&0x04 != 0,
	}
}

// Config reports the PLA's current decode, for diagnostics/tests.
func (m *Manager) Config() MemoryConfig { return m.config }

// DMA copies data directly into RAM (bypassing banking), the way a cartridge
// or a loader reads a PRG into place.
func (m *Manager) DMA(address uint16, data []uint8) {
	for i, v := range data {
		m.ram[address+uint16(i)] = v
	}
}

// DumpMemory returns a banked snapshot of a region of memory, used by
// inspection tools.
func (m *Manager) DumpMemory(start uint16, length uint16) []uint8 {
	dump := make([]uint8, length)
	for i := uint16(0); i < length; i++ {
		dump[i] = m.rawRead(start + i)
	}
	return dump
}
