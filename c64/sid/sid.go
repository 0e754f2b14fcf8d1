// Package sid models the SID's register file only: the CORE exposes no
// audio synthesis (see spec Non-goals), just the write-only voice/filter
// registers and the two read-only registers ($D41B/$D41C, OSC3/ENV3) that
// code polls to pull pseudo-random values or read back a voice's envelope.
package sid

// Per-voice register layout (registers repeat at +0x07 for voices 2 and 3).
const (
	FreqLo  = 0x00
	FreqHi  = 0x01
	PWLo    = 0x02
	PWHi    = 0x03
	Control = 0x04
	AttackDecay  = 0x05
	SustainRelease = 0x06
)

// Filter and global registers.
const (
	FilterFreqLo = 0x15
	FilterFreqHi = 0x16
	ResFilt      = 0x17
	ModeVol      = 0x18
	PotX         = 0x19
	PotY         = 0x1A
	OSC3         = 0x1B
	ENV3         = 0x1C
)

type voice struct {
	freq     uint16
	pw       uint16
	control  uint8
	attackDecay   uint8
	sustainRelease uint8
}

// SID is the register-file-only stub: every write lands in a plain
// register, and OSC3/ENV3 read back voice 3's free-running oscillator
// accumulator and envelope level. A separate audio front end that wants
// real synthesis drives its own oscillators off these registers; the CORE
// itself never produces a sample.
type SID struct {
	voices [3]voice

	filterFreq    uint16
	resFilt       uint8
	modeVol       uint8

	// osc3/env3 are a free-running counter standing in for the real
	// chip's analog noise waveform and envelope generator output, so
	// that code polling $D41B/$D41C for entropy observes changing values.
	osc3 uint8
	env3 uint8
}

func NewSID() *SID {
	return &SID{}
}

// Tick advances the stand-in OSC3/ENV3 counters by one cycle.
func (s *SID) Tick() {
	s.osc3++
	if s.voices[2].control&0x01 != 0 { // gate bit of voice 3
		s.env3++
	}
}

func (s *SID) WriteRegister(offset uint16, value uint8) {
	reg := uint8(offset)
	if reg <= 0x14 {
		v := reg / 7
		sub := reg % 7
		if v > 2 {
			return
		}
		switch sub {
		case FreqLo:
			s.voices[v].freq = (s.voices[v].freq & 0xFF00) | uint16(value)
		case FreqHi:
			s.voices[v].freq = (s.voices[v].freq & 0x00FF) | (uint16(value) << 8)
		case PWLo:
			s.voices[v].pw = (s.voices[v].pw & 0xFF00) | uint16(value)
		case PWHi:
			s.voices[v].pw = (s.voices[v].pw & 0x00FF) | (uint16(value&0x0F) << 8)
		case Control:
			s.voices[v].control = value
		case AttackDecay:
			s.voices[v].attackDecay = value
		case SustainRelease:
			s.voices[v].sustainRelease = value
		}
		return
	}

	switch reg {
	case FilterFreqLo:
		s.filterFreq = (s.filterFreq & 0x7F8) | uint16(value&0x07)
	case FilterFreqHi:
		s.filterFreq = (s.filterFreq & 0x07) | (uint16(value) << 3)
	case ResFilt:
		s.resFilt = value
	case ModeVol:
		s.modeVol = value
	}
}

func (s *SID) ReadRegister(offset uint16) uint8 {
	switch uint8(offset) {
	case PotX, PotY:
		return 0xFF // no paddles wired in the CORE
	case OSC3:
		return s.osc3
	case ENV3:
		return s.env3
	default:
		return 0xFF // write-only registers read back as open bus
	}
}
