package cpu

// The naming convention uses the instruction name followed by the addressing mode:
//
// IMM: Immediate
// ZP:  Zero Page
// ZPX: Zero Page,X
// ZPY: Zero Page,Y
// ABS: Absolute
// ABX: Absolute,X
// ABY: Absolute,Y
// INX: (Indirect,X)
// INY: (Indirect),Y
// ACC: Accumulator (for shifts)
// IMP: Implied
// IND: Indirect (JMP only)
// REL: Relative (branches)

const (
	// Load/Store Operations
	LDA_IMM = 0xA9
	LDA_ZP  = 0xA5
	LDA_ZPX = 0xB5
	LDA_ABS = 0xAD
	LDA_ABX = 0xBD
	LDA_ABY = 0xB9
	LDA_INX = 0xA1
	LDA_INY = 0xB1

	LDX_IMM = 0xA2
	LDX_ZP  = 0xA6
	LDX_ZPY = 0xB6
	LDX_ABS = 0xAE
	LDX_ABY = 0xBE

	LDY_IMM = 0xA0
	LDY_ZP  = 0xA4
	LDY_ZPX = 0xB4
	LDY_ABS = 0xAC
	LDY_ABX = 0xBC

	STA_ZP  = 0x85
	STA_ZPX = 0x95
	STA_ABS = 0x8D
	STA_ABX = 0x9D
	STA_ABY = 0x99
	STA_INX = 0x81
	STA_INY = 0x91

	STX_ZP  = 0x86
	STX_ZPY = 0x96
	STX_ABS = 0x8E

	STY_ZP  = 0x84
	STY_ZPX = 0x94
	STY_ABS = 0x8C

	// Register Transfers
	TAX = 0xAA
	TAY = 0xA8
	TXA = 0x8A
	TYA = 0x98
	TSX = 0xBA
	TXS = 0x9A

	// Stack Operations
	PHA = 0x48
	PHP = 0x08
	PLA = 0x68
	PLP = 0x28

	// Logical Operations
	AND_IMM = 0x29
	AND_ZP  = 0x25
	AND_ZPX = 0x35
	AND_ABS = 0x2D
	AND_ABX = 0x3D
	AND_ABY = 0x39
	AND_INX = 0x21
	AND_INY = 0x31

	EOR_IMM = 0x49
	EOR_ZP  = 0x45
	EOR_ZPX = 0x55
	EOR_ABS = 0x4D
	EOR_ABX = 0x5D
	EOR_ABY = 0x59
	EOR_INX = 0x41
	EOR_INY = 0x51

	ORA_IMM = 0x09
	ORA_ZP  = 0x05
	ORA_ZPX = 0x15
	ORA_ABS = 0x0D
	ORA_ABX = 0x1D
	ORA_ABY = 0x19
	ORA_INX = 0x01
	ORA_INY = 0x11

	BIT_ZP  = 0x24
	BIT_ABS = 0x2C

	// Arithmetic Operations
	ADC_IMM = 0x69
	ADC_ZP  = 0x65
	ADC_ZPX = 0x75
	ADC_ABS = 0x6D
	ADC_ABX = 0x7D
	ADC_ABY = 0x79
	ADC_INX = 0x61
	ADC_INY = 0x71

	SBC_IMM  = 0xE9
	SBC_IMM2 = 0xEB // illegal duplicate encoding of SBC #imm
	SBC_ZP   = 0xE5
	SBC_ZPX  = 0xF5
	SBC_ABS  = 0xED
	SBC_ABX  = 0xFD
	SBC_ABY  = 0xF9
	SBC_INX  = 0xE1
	SBC_INY  = 0xF1

	CMP_IMM = 0xC9
	CMP_ZP  = 0xC5
	CMP_ZPX = 0xD5
	CMP_ABS = 0xCD
	CMP_ABX = 0xDD
	CMP_ABY = 0xD9
	CMP_INX = 0xC1
	CMP_INY = 0xD1

	CPX_IMM = 0xE0
	CPX_ZP  = 0xE4
	CPX_ABS = 0xEC

	CPY_IMM = 0xC0
	CPY_ZP  = 0xC4
	CPY_ABS = 0xCC

	// Increments & Decrements
	INC_ZP  = 0xE6
	INC_ZPX = 0xF6
	INC_ABS = 0xEE
	INC_ABX = 0xFE

	DEC_ZP  = 0xC6
	DEC_ZPX = 0xD6
	DEC_ABS = 0xCE
	DEC_ABX = 0xDE

	INX = 0xE8
	INY = 0xC8
	DEX = 0xCA
	DEY = 0x88

	// Shifts
	ASL_ACC = 0x0A
	ASL_ZP  = 0x06
	ASL_ZPX = 0x16
	ASL_ABS = 0x0E
	ASL_ABX = 0x1E

	LSR_ACC = 0x4A
	LSR_ZP  = 0x46
	LSR_ZPX = 0x56
	LSR_ABS = 0x4E
	LSR_ABX = 0x5E

	ROL_ACC = 0x2A
	ROL_ZP  = 0x26
	ROL_ZPX = 0x36
	ROL_ABS = 0x2E
	ROL_ABX = 0x3E

	ROR_ACC = 0x6A
	ROR_ZP  = 0x66
	ROR_ZPX = 0x76
	ROR_ABS = 0x6E
	ROR_ABX = 0x7E

	// Jumps & Calls
	JMP_ABS = 0x4C
	JMP_IND = 0x6C
	JSR_ABS = 0x20
	RTS     = 0x60

	// Branches
	BCC = 0x90
	BCS = 0xB0
	BEQ = 0xF0
	BMI = 0x30
	BNE = 0xD0
	BPL = 0x10
	BVC = 0x50
	BVS = 0x70

	// Status Flag Changes
	CLC = 0x18
	CLD = 0xD8
	CLI = 0x58
	CLV = 0xB8
	SEC = 0x38
	SED = 0xF8
	SEI = 0x78

	// System Functions
	BRK = 0x00
	NOP = 0xEA
	RTI = 0x40

	// --- Illegal / undocumented opcodes ---
	// "Stable" combined read-modify-write opcodes.
	SLO_ZP  = 0x07
	SLO_ZPX = 0x17
	SLO_ABS = 0x0F
	SLO_ABX = 0x1F
	SLO_ABY = 0x1B
	SLO_INX = 0x03
	SLO_INY = 0x13

	RLA_ZP  = 0x27
	RLA_ZPX = 0x37
	RLA_ABS = 0x2F
	RLA_ABX = 0x3F
	RLA_ABY = 0x3B
	RLA_INX = 0x23
	RLA_INY = 0x33

	SRE_ZP  = 0x47
	SRE_ZPX = 0x57
	SRE_ABS = 0x4F
	SRE_ABX = 0x5F
	SRE_ABY = 0x5B
	SRE_INX = 0x43
	SRE_INY = 0x53

	RRA_ZP  = 0x67
	RRA_ZPX = 0x77
	RRA_ABS = 0x6F
	RRA_ABX = 0x7F
	RRA_ABY = 0x7B
	RRA_INX = 0x63
	RRA_INY = 0x73

	DCP_ZP  = 0xC7
	DCP_ZPX = 0xD7
	DCP_ABS = 0xCF
	DCP_ABX = 0xDF
	DCP_ABY = 0xDB
	DCP_INX = 0xC3
	DCP_INY = 0xD3

	ISC_ZP  = 0xE7
	ISC_ZPX = 0xF7
	ISC_ABS = 0xEF
	ISC_ABX = 0xFF
	ISC_ABY = 0xFB
	ISC_INX = 0xE3
	ISC_INY = 0xF3

	SAX_ZP  = 0x87
	SAX_ZPY = 0x97
	SAX_ABS = 0x8F
	SAX_INX = 0x83

	LAX_ZP  = 0xA7
	LAX_ZPY = 0xB7
	LAX_ABS = 0xAF
	LAX_ABY = 0xBF
	LAX_INX = 0xA3
	LAX_INY = 0xB3

	ANC_IMM  = 0x0B
	ANC_IMM2 = 0x2B
	ALR_IMM  = 0x4B
	ARR_IMM  = 0x6B
	SBX_IMM  = 0xCB

	// Unstable (magic-constant) family.
	ANE_IMM = 0x8B
	LXA_IMM = 0xAB
	SHA_ABY = 0x9F
	SHA_INY = 0x93
	SHX_ABY = 0x9E
	SHY_ABX = 0x9C
	TAS_ABY = 0x9B
	LAS_ABY = 0xBB

	// JAM/KIL/HLT: lock the CPU until reset.
	JAM_02 = 0x02
	JAM_12 = 0x12
	JAM_22 = 0x22
	JAM_32 = 0x32
	JAM_42 = 0x42
	JAM_52 = 0x52
	JAM_62 = 0x62
	JAM_72 = 0x72
	JAM_92 = 0x92
	JAM_B2 = 0xB2
	JAM_D2 = 0xD2
	JAM_F2 = 0xF2

	// Illegal NOPs of various widths, kept distinct for the disassembler's
	// sake. The one-byte ones take NOP's two cycles; the wider ones read and
	// discard their operand with the bus cycles of their addressing mode.
	NOP_1A = 0x1A
	NOP_3A = 0x3A
	NOP_5A = 0x5A
	NOP_7A = 0x7A
	NOP_DA = 0xDA
	NOP_FA = 0xFA

	NOP_IMM_80 = 0x80
	NOP_IMM_82 = 0x82
	NOP_IMM_89 = 0x89
	NOP_IMM_C2 = 0xC2
	NOP_IMM_E2 = 0xE2

	NOP_ZP_04 = 0x04
	NOP_ZP_44 = 0x44
	NOP_ZP_64 = 0x64

	NOP_ZPX_14 = 0x14
	NOP_ZPX_34 = 0x34
	NOP_ZPX_54 = 0x54
	NOP_ZPX_74 = 0x74
	NOP_ZPX_D4 = 0xD4
	NOP_ZPX_F4 = 0xF4

	NOP_ABS_0C = 0x0C

	NOP_ABX_1C = 0x1C
	NOP_ABX_3C = 0x3C
	NOP_ABX_5C = 0x5C
	NOP_ABX_7C = 0x7C
	NOP_ABX_DC = 0xDC
	NOP_ABX_FC = 0xFC
)
