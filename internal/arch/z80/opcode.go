package z80

// Opcode describes one entry of an opcode table: the operation identity,
// the width of its immediate operand and whether the indexed form consumes
// a signed displacement byte.
type Opcode struct {
	Instruction  *Instruction
	Immediate    int  // immediate operand width in bytes (0, 1 or 2)
	Displacement bool // set for index-register-relative addressing forms
}

// Opcodes is the unprefixed opcode table. Every byte except the four
// reserved prefix bytes selects an operation. The blocks 0x40-0x7F
// (register loads and halt) and 0x80-0xBF (8 bit arithmetic) follow a
// regular layout and are filled in at package initialization.
var Opcodes = [256]Opcode{
	0x00: {Instruction: Nop},
	0x01: {Instruction: Ld, Immediate: 2},
	0x02: {Instruction: Ld},
	0x03: {Instruction: Inc},
	0x04: {Instruction: Inc},
	0x05: {Instruction: Dec},
	0x06: {Instruction: Ld, Immediate: 1},
	0x07: {Instruction: Rlca},
	0x08: {Instruction: Ex},
	0x09: {Instruction: Add},
	0x0A: {Instruction: Ld},
	0x0B: {Instruction: Dec},
	0x0C: {Instruction: Inc},
	0x0D: {Instruction: Dec},
	0x0E: {Instruction: Ld, Immediate: 1},
	0x0F: {Instruction: Rrca},

	0x10: {Instruction: Djnz, Immediate: 1},
	0x11: {Instruction: Ld, Immediate: 2},
	0x12: {Instruction: Ld},
	0x13: {Instruction: Inc},
	0x14: {Instruction: Inc},
	0x15: {Instruction: Dec},
	0x16: {Instruction: Ld, Immediate: 1},
	0x17: {Instruction: Rla},
	0x18: {Instruction: Jr, Immediate: 1},
	0x19: {Instruction: Add},
	0x1A: {Instruction: Ld},
	0x1B: {Instruction: Dec},
	0x1C: {Instruction: Inc},
	0x1D: {Instruction: Dec},
	0x1E: {Instruction: Ld, Immediate: 1},
	0x1F: {Instruction: Rra},

	0x20: {Instruction: Jr, Immediate: 1},
	0x21: {Instruction: Ld, Immediate: 2},
	0x22: {Instruction: Ld, Immediate: 2},
	0x23: {Instruction: Inc},
	0x24: {Instruction: Inc},
	0x25: {Instruction: Dec},
	0x26: {Instruction: Ld, Immediate: 1},
	0x27: {Instruction: Daa},
	0x28: {Instruction: Jr, Immediate: 1},
	0x29: {Instruction: Add},
	0x2A: {Instruction: Ld, Immediate: 2},
	0x2B: {Instruction: Dec},
	0x2C: {Instruction: Inc},
	0x2D: {Instruction: Dec},
	0x2E: {Instruction: Ld, Immediate: 1},
	0x2F: {Instruction: Cpl},

	0x30: {Instruction: Jr, Immediate: 1},
	0x31: {Instruction: Ld, Immediate: 2},
	0x32: {Instruction: Ld, Immediate: 2},
	0x33: {Instruction: Inc},
	0x34: {Instruction: Inc},
	0x35: {Instruction: Dec},
	0x36: {Instruction: Ld, Immediate: 1},
	0x37: {Instruction: Scf},
	0x38: {Instruction: Jr, Immediate: 1},
	0x39: {Instruction: Add},
	0x3A: {Instruction: Ld, Immediate: 2},
	0x3B: {Instruction: Dec},
	0x3C: {Instruction: Inc},
	0x3D: {Instruction: Dec},
	0x3E: {Instruction: Ld, Immediate: 1},
	0x3F: {Instruction: Ccf},

	0xC0: {Instruction: Ret},
	0xC1: {Instruction: Pop},
	0xC2: {Instruction: Jp, Immediate: 2},
	0xC3: {Instruction: Jp, Immediate: 2},
	0xC4: {Instruction: Call, Immediate: 2},
	0xC5: {Instruction: Push},
	0xC6: {Instruction: Add, Immediate: 1},
	0xC7: {Instruction: Rst},
	0xC8: {Instruction: Ret},
	0xC9: {Instruction: Ret},
	0xCA: {Instruction: Jp, Immediate: 2},
	0xCC: {Instruction: Call, Immediate: 2},
	0xCD: {Instruction: Call, Immediate: 2},
	0xCE: {Instruction: Adc, Immediate: 1},
	0xCF: {Instruction: Rst},

	0xD0: {Instruction: Ret},
	0xD1: {Instruction: Pop},
	0xD2: {Instruction: Jp, Immediate: 2},
	0xD3: {Instruction: Out, Immediate: 1},
	0xD4: {Instruction: Call, Immediate: 2},
	0xD5: {Instruction: Push},
	0xD6: {Instruction: Sub, Immediate: 1},
	0xD7: {Instruction: Rst},
	0xD8: {Instruction: Ret},
	0xD9: {Instruction: Exx},
	0xDA: {Instruction: Jp, Immediate: 2},
	0xDB: {Instruction: In, Immediate: 1},
	0xDC: {Instruction: Call, Immediate: 2},
	0xDE: {Instruction: Sbc, Immediate: 1},
	0xDF: {Instruction: Rst},

	0xE0: {Instruction: Ret},
	0xE1: {Instruction: Pop},
	0xE2: {Instruction: Jp, Immediate: 2},
	0xE3: {Instruction: Ex},
	0xE4: {Instruction: Call, Immediate: 2},
	0xE5: {Instruction: Push},
	0xE6: {Instruction: And, Immediate: 1},
	0xE7: {Instruction: Rst},
	0xE8: {Instruction: Ret},
	0xE9: {Instruction: Jp},
	0xEA: {Instruction: Jp, Immediate: 2},
	0xEB: {Instruction: Ex},
	0xEC: {Instruction: Call, Immediate: 2},
	0xEE: {Instruction: Xor, Immediate: 1},
	0xEF: {Instruction: Rst},

	0xF0: {Instruction: Ret},
	0xF1: {Instruction: Pop},
	0xF2: {Instruction: Jp, Immediate: 2},
	0xF3: {Instruction: Di},
	0xF4: {Instruction: Call, Immediate: 2},
	0xF5: {Instruction: Push},
	0xF6: {Instruction: Or, Immediate: 1},
	0xF7: {Instruction: Rst},
	0xF8: {Instruction: Ret},
	0xF9: {Instruction: Ld},
	0xFA: {Instruction: Jp, Immediate: 2},
	0xFB: {Instruction: Ei},
	0xFC: {Instruction: Call, Immediate: 2},
	0xFE: {Instruction: Cp, Immediate: 1},
	0xFF: {Instruction: Rst},
}

// arithmetic operations of the 0x80-0xBF block, in encoding order
var arithmetic = [8]*Instruction{Add, Adc, Sub, Sbc, And, Xor, Or, Cp}

// rotate and shift operations of the bit table, in encoding order
var rotations = [8]*Instruction{Rlc, Rrc, Rl, Rr, Sla, Sra, Sll, Srl}

// CBOpcodes is the opcode table selected by the 0xCB prefix.
// All 256 entries are defined and carry no immediate operand.
var CBOpcodes [256]Opcode

// EDOpcodes is the opcode table selected by the 0xED prefix. The table is
// sparse, bytes without an entry are unknown opcodes in this context.
var EDOpcodes = map[byte]Opcode{
	0x40: {Instruction: In},
	0x41: {Instruction: Out},
	0x42: {Instruction: Sbc},
	0x43: {Instruction: Ld, Immediate: 2},
	0x44: {Instruction: Neg},
	0x45: {Instruction: Retn},
	0x46: {Instruction: Im},
	0x47: {Instruction: Ld},
	0x48: {Instruction: In},
	0x49: {Instruction: Out},
	0x4A: {Instruction: Adc},
	0x4B: {Instruction: Ld, Immediate: 2},
	0x4D: {Instruction: Reti},
	0x4F: {Instruction: Ld},
	0x50: {Instruction: In},
	0x51: {Instruction: Out},
	0x52: {Instruction: Sbc},
	0x53: {Instruction: Ld, Immediate: 2},
	0x56: {Instruction: Im},
	0x57: {Instruction: Ld},
	0x58: {Instruction: In},
	0x59: {Instruction: Out},
	0x5A: {Instruction: Adc},
	0x5B: {Instruction: Ld, Immediate: 2},
	0x5E: {Instruction: Im},
	0x5F: {Instruction: Ld},
	0x60: {Instruction: In},
	0x61: {Instruction: Out},
	0x62: {Instruction: Sbc},
	0x63: {Instruction: Ld, Immediate: 2},
	0x67: {Instruction: Rrd},
	0x68: {Instruction: In},
	0x69: {Instruction: Out},
	0x6A: {Instruction: Adc},
	0x6B: {Instruction: Ld, Immediate: 2},
	0x6F: {Instruction: Rld},
	0x72: {Instruction: Sbc},
	0x73: {Instruction: Ld, Immediate: 2},
	0x78: {Instruction: In},
	0x79: {Instruction: Out},
	0x7A: {Instruction: Adc},
	0x7B: {Instruction: Ld, Immediate: 2},
	0xA0: {Instruction: Ldi},
	0xA1: {Instruction: Cpi},
	0xA2: {Instruction: Ini},
	0xA3: {Instruction: Outi},
	0xA8: {Instruction: Ldd},
	0xA9: {Instruction: Cpd},
	0xAA: {Instruction: Ind},
	0xAB: {Instruction: Outd},
	0xB0: {Instruction: Ldir},
	0xB1: {Instruction: Cpir},
	0xB2: {Instruction: Inir},
	0xB3: {Instruction: Otir},
	0xB8: {Instruction: Lddr},
	0xB9: {Instruction: Cpdr},
	0xBA: {Instruction: Indr},
	0xBB: {Instruction: Otdr},
}

// IndexOpcodes is the opcode table selected by the 0xDD and 0xFD prefixes.
// Both prefixes share one table, the prefix byte selects which index
// register the operation uses. Entries with Displacement set address
// memory relative to the index register and consume one signed byte.
var IndexOpcodes = map[byte]Opcode{
	0x09: {Instruction: Add},
	0x19: {Instruction: Add},
	0x21: {Instruction: Ld, Immediate: 2},
	0x22: {Instruction: Ld, Immediate: 2},
	0x23: {Instruction: Inc},
	0x29: {Instruction: Add},
	0x2A: {Instruction: Ld, Immediate: 2},
	0x2B: {Instruction: Dec},
	0x34: {Instruction: Inc, Displacement: true},
	0x35: {Instruction: Dec, Displacement: true},
	0x36: {Instruction: Ld, Displacement: true, Immediate: 1},
	0x39: {Instruction: Add},
	0x46: {Instruction: Ld, Displacement: true},
	0x4E: {Instruction: Ld, Displacement: true},
	0x56: {Instruction: Ld, Displacement: true},
	0x5E: {Instruction: Ld, Displacement: true},
	0x66: {Instruction: Ld, Displacement: true},
	0x6E: {Instruction: Ld, Displacement: true},
	0x70: {Instruction: Ld, Displacement: true},
	0x71: {Instruction: Ld, Displacement: true},
	0x72: {Instruction: Ld, Displacement: true},
	0x73: {Instruction: Ld, Displacement: true},
	0x74: {Instruction: Ld, Displacement: true},
	0x75: {Instruction: Ld, Displacement: true},
	0x77: {Instruction: Ld, Displacement: true},
	0x7E: {Instruction: Ld, Displacement: true},
	0x86: {Instruction: Add, Displacement: true},
	0x8E: {Instruction: Adc, Displacement: true},
	0x96: {Instruction: Sub, Displacement: true},
	0x9E: {Instruction: Sbc, Displacement: true},
	0xA6: {Instruction: And, Displacement: true},
	0xAE: {Instruction: Xor, Displacement: true},
	0xB6: {Instruction: Or, Displacement: true},
	0xBE: {Instruction: Cp, Displacement: true},
	0xE1: {Instruction: Pop},
	0xE3: {Instruction: Ex},
	0xE5: {Instruction: Push},
	0xE9: {Instruction: Jp},
	0xF9: {Instruction: Ld},
}

// IndexBitOpcodes is the opcode table selected by the 0xDD 0xCB and
// 0xFD 0xCB double prefixes. All 256 entries are defined, address memory
// relative to the index register and carry no immediate operand.
var IndexBitOpcodes [256]Opcode

func init() {
	// register loads, halt and 8 bit arithmetic of the unprefixed table
	for b := 0x40; b < 0x80; b++ {
		Opcodes[b] = Opcode{Instruction: Ld}
	}
	Opcodes[0x76] = Opcode{Instruction: Halt}
	for b := 0x80; b < 0xC0; b++ {
		Opcodes[b] = Opcode{Instruction: arithmetic[(b>>3)&0x07]}
	}

	// the bit tables decompose into quadrants: rotate/shift, bit, res, set
	for b := 0; b < 256; b++ {
		var ins *Instruction
		switch b >> 6 {
		case 0:
			ins = rotations[(b>>3)&0x07]
		case 1:
			ins = Bit
		case 2:
			ins = Res
		default:
			ins = Set
		}
		CBOpcodes[b] = Opcode{Instruction: ins}
		IndexBitOpcodes[b] = Opcode{Instruction: ins, Displacement: true}
	}
}
