// Package system wires the CPU, memory map, both CIAs, the VIC-II register
// file and the SID register file into a single C64, and owns the cycle
// clock: every CPU bus access ticks every other component exactly once, so
// the whole machine stays in lockstep with the CPU's own cycle-accurate
// timing. Package vic is relied on for raster/bad-line/IRQ state only, not
// pixel output; package sid for register storage only, not audio synthesis
// — rendering and sound are a front end's job (see cmd/c64run).
package system

import (
	"io"
	"log/slog"

	"github.com/trancee/c64core/c64/cia"
	"github.com/trancee/c64core/c64/memory"
	"github.com/trancee/c64core/c64/sid"
	"github.com/trancee/c64core/c64/vic"
	"github.com/trancee/c64core/cpu"
	"github.com/trancee/c64core/logging"
)

// Clock frequencies, in Hz.
const (
	PALClockHz  = 985248
	NTSCClockHz = 1022727
)

// Region selects PAL or NTSC timing.
type Region int

const (
	PAL Region = iota
	NTSC
)

func (r Region) ClockHz() int {
	if r == NTSC {
		return NTSCClockHz
	}
	return PALClockHz
}

// C64 is the assembled machine: everything the CORE models, nothing it
// doesn't (no display, no audio output, no storage devices).
type C64 struct {
	CPU    *cpu.CPU
	Memory *memory.Manager
	VIC    *vic.VIC
	SID    *sid.SID
	CIA1   *cia.CIA // drives IRQ
	CIA2   *cia.CIA // drives NMI, owns the serial bus and the VIC bank select

	Region Region
	Cycles uint64

	// FrameHook, if set, is called once per completed raster frame (every
	// time the raster counter wraps to 0); a rendering front end uses it to
	// know when to present without the CORE needing to know anything about
	// frame buffers.
	FrameHook func()

	lastRaster uint16

	log *slog.Logger
}

// Option configures a C64 at construction time.
type Option func(*C64)

// WithLogger attaches a logger; the memory manager uses it for ROM-load
// diagnostics, the only records the machine emits (no register or cycle
// tracing). Without one, New installs a silent no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *C64) { c.log = l }
}

// New assembles a machine with a fresh, post-reset memory map. The caller
// must load ROM images with Memory.LoadROM before calling Reset.
func New(region Region, opts ...Option) *C64 {
	mem := memory.NewManager()

	c := &C64{
		Memory: mem,
		VIC:    vic.NewVIC(mem),
		SID:    sid.NewSID(),
		CIA1:   cia.NewCIA(false),
		CIA2:   cia.NewCIA(true),
		Region: region,
		log:    logging.New(io.Discard, false),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.CPU = cpu.NewCPU(mem)
	mem.Log = c.log

	mem.CIA1 = c.CIA1
	mem.CIA2 = c.CIA2
	mem.VIC = c.VIC
	mem.SID = c.SID
	mem.OnTick = c.tick

	c.CIA2.PortAInput = func() uint8 { return 0xFF }
	c.CIA1.PortAInput = func() uint8 { return 0xFF }
	c.CIA1.PortBInput = func() uint8 { return 0xFF }
	c.CIA2.PortBInput = func() uint8 { return 0xFF }

	return c
}

// Reset runs the CPU's power-on/reset sequence and restores both CIAs to
// their documented reset state. Call this once ROMs are loaded and before
// the first Step.
func (c *C64) Reset() {
	c.CIA1.Reset()
	c.CIA2.Reset()
	c.CPU.Reset()
}

// Step executes exactly one CPU instruction (which, via Memory.OnTick,
// drives every other component for exactly as many cycles as the CPU's bus
// accesses take).
func (c *C64) Step() {
	c.CPU.Step()
}

// StepFrame runs instructions until one full raster frame has elapsed.
func (c *C64) StepFrame() {
	startFrame := c.Cycles / uint64(linesPerFrame(c.Region)*cyclesPerLine)
	for c.Cycles/uint64(linesPerFrame(c.Region)*cyclesPerLine) == startFrame {
		c.Step()
	}
}

const cyclesPerLine = 63

func linesPerFrame(r Region) int {
	if r == NTSC {
		return 263
	}
	return 312
}

// tick is Memory's OnTick hook: called once per CPU bus cycle.
func (c *C64) tick() {
	c.Cycles++

	c.CIA1.Tick()
	c.CIA2.Tick()
	c.VIC.Tick()
	c.SID.Tick()

	c.CIA2.SetCNT(c.VIC.BadLine())

	vicPortBits := c.CIA2.PortA() & 0x03
	c.VIC.SetBank(vicPortBits)

	raster := c.VIC.RasterLine()
	if raster < c.lastRaster && c.FrameHook != nil {
		c.FrameHook()
	}
	c.lastRaster = raster

	c.CPU.SetIRQ(c.CIA1.IRQLine() || c.VIC.IRQLine())
	c.CPU.SetNMI(c.CIA2.IRQLine())
}
