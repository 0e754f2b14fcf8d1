package disassembler

import "github.com/trancee/c64core/cpu"

// Illegal/undocumented opcodes, registered alongside the documented set so
// that a dump of ROM or test code that happens to hit one of these still
// disassembles to something readable instead of "db".
func init() {
	add := func(op byte, name string, mode AddressingMode, bytes int) {
		instructionSet[op] = Instruction{name, mode, bytes, op}
	}

	add(cpu.SLO_ZP, "SLO", ZeroPage, 2)
	add(cpu.SLO_ZPX, "SLO", ZeroPageX, 2)
	add(cpu.SLO_ABS, "SLO", Absolute, 3)
	add(cpu.SLO_ABX, "SLO", AbsoluteX, 3)
	add(cpu.SLO_ABY, "SLO", AbsoluteY, 3)
	add(cpu.SLO_INX, "SLO", IndirectX, 2)
	add(cpu.SLO_INY, "SLO", IndirectY, 2)

	add(cpu.RLA_ZP, "RLA", ZeroPage, 2)
	add(cpu.RLA_ZPX, "RLA", ZeroPageX, 2)
	add(cpu.RLA_ABS, "RLA", Absolute, 3)
	add(cpu.RLA_ABX, "RLA", AbsoluteX, 3)
	add(cpu.RLA_ABY, "RLA", AbsoluteY, 3)
	add(cpu.RLA_INX, "RLA", IndirectX, 2)
	add(cpu.RLA_INY, "RLA", IndirectY, 2)

	add(cpu.SRE_ZP, "SRE", ZeroPage, 2)
	add(cpu.SRE_ZPX, "SRE", ZeroPageX, 2)
	add(cpu.SRE_ABS, "SRE", Absolute, 3)
	add(cpu.SRE_ABX, "SRE", AbsoluteX, 3)
	add(cpu.SRE_ABY, "SRE", AbsoluteY, 3)
	add(cpu.SRE_INX, "SRE", IndirectX, 2)
	add(cpu.SRE_INY, "SRE", IndirectY, 2)

	add(cpu.RRA_ZP, "RRA", ZeroPage, 2)
	add(cpu.RRA_ZPX, "RRA", ZeroPageX, 2)
	add(cpu.RRA_ABS, "RRA", Absolute, 3)
	add(cpu.RRA_ABX, "RRA", AbsoluteX, 3)
	add(cpu.RRA_ABY, "RRA", AbsoluteY, 3)
	add(cpu.RRA_INX, "RRA", IndirectX, 2)
	add(cpu.RRA_INY, "RRA", IndirectY, 2)

	add(cpu.DCP_ZP, "DCP", ZeroPage, 2)
	add(cpu.DCP_ZPX, "DCP", ZeroPageX, 2)
	add(cpu.DCP_ABS, "DCP", Absolute, 3)
	add(cpu.DCP_ABX, "DCP", AbsoluteX, 3)
	add(cpu.DCP_ABY, "DCP", AbsoluteY, 3)
	add(cpu.DCP_INX, "DCP", IndirectX, 2)
	add(cpu.DCP_INY, "DCP", IndirectY, 2)

	add(cpu.ISC_ZP, "ISC", ZeroPage, 2)
	add(cpu.ISC_ZPX, "ISC", ZeroPageX, 2)
	add(cpu.ISC_ABS, "ISC", Absolute, 3)
	add(cpu.ISC_ABX, "ISC", AbsoluteX, 3)
	add(cpu.ISC_ABY, "ISC", AbsoluteY, 3)
	add(cpu.ISC_INX, "ISC", IndirectX, 2)
	add(cpu.ISC_INY, "ISC", IndirectY, 2)

	add(cpu.SAX_ZP, "SAX", ZeroPage, 2)
	add(cpu.SAX_ZPY, "SAX", ZeroPageY, 2)
	add(cpu.SAX_ABS, "SAX", Absolute, 3)
	add(cpu.SAX_INX, "SAX", IndirectX, 2)

	add(cpu.LAX_ZP, "LAX", ZeroPage, 2)
	add(cpu.LAX_ZPY, "LAX", ZeroPageY, 2)
	add(cpu.LAX_ABS, "LAX", Absolute, 3)
	add(cpu.LAX_ABY, "LAX", AbsoluteY, 3)
	add(cpu.LAX_INX, "LAX", IndirectX, 2)
	add(cpu.LAX_INY, "LAX", IndirectY, 2)

	add(cpu.ANC_IMM, "ANC", Immediate, 2)
	add(cpu.ANC_IMM2, "ANC", Immediate, 2)
	add(cpu.ALR_IMM, "ALR", Immediate, 2)
	add(cpu.ARR_IMM, "ARR", Immediate, 2)
	add(cpu.SBX_IMM, "SBX", Immediate, 2)
	add(cpu.SBC_IMM2, "SBC", Immediate, 2)

	add(cpu.ANE_IMM, "ANE", Immediate, 2)
	add(cpu.LXA_IMM, "LXA", Immediate, 2)
	add(cpu.SHA_ABY, "SHA", AbsoluteY, 3)
	add(cpu.SHA_INY, "SHA", IndirectY, 2)
	add(cpu.SHX_ABY, "SHX", AbsoluteY, 3)
	add(cpu.SHY_ABX, "SHY", AbsoluteX, 3)
	add(cpu.TAS_ABY, "TAS", AbsoluteY, 3)
	add(cpu.LAS_ABY, "LAS", AbsoluteY, 3)

	for _, op := range []byte{
		cpu.JAM_02, cpu.JAM_12, cpu.JAM_22, cpu.JAM_32, cpu.JAM_42, cpu.JAM_52,
		cpu.JAM_62, cpu.JAM_72, cpu.JAM_92, cpu.JAM_B2, cpu.JAM_D2, cpu.JAM_F2,
	} {
		add(op, "JAM", Implicit, 1)
	}

	for _, op := range []byte{cpu.NOP_1A, cpu.NOP_3A, cpu.NOP_5A, cpu.NOP_7A, cpu.NOP_DA, cpu.NOP_FA} {
		add(op, "NOP", Implicit, 1)
	}
	for _, op := range []byte{cpu.NOP_IMM_80, cpu.NOP_IMM_82, cpu.NOP_IMM_89, cpu.NOP_IMM_C2, cpu.NOP_IMM_E2} {
		add(op, "NOP", Immediate, 2)
	}
	for _, op := range []byte{cpu.NOP_ZP_04, cpu.NOP_ZP_44, cpu.NOP_ZP_64} {
		add(op, "NOP", ZeroPage, 2)
	}
	for _, op := range []byte{cpu.NOP_ZPX_14, cpu.NOP_ZPX_34, cpu.NOP_ZPX_54, cpu.NOP_ZPX_74, cpu.NOP_ZPX_D4, cpu.NOP_ZPX_F4} {
		add(op, "NOP", ZeroPageX, 2)
	}
	add(cpu.NOP_ABS_0C, "NOP", Absolute, 3)
	for _, op := range []byte{cpu.NOP_ABX_1C, cpu.NOP_ABX_3C, cpu.NOP_ABX_5C, cpu.NOP_ABX_7C, cpu.NOP_ABX_DC, cpu.NOP_ABX_FC} {
		add(op, "NOP", AbsoluteX, 3)
	}
}
