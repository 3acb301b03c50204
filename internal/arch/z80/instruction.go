// Package z80 provides decoding of the variable-length opcode stream of a
// Z80-style CPU into typed instruction records.
package z80

// Instruction is the identity of one CPU operation.
type Instruction struct {
	Name string
}

// Unprefixed and shared instructions.
var (
	Adc  = &Instruction{Name: "adc"}
	Add  = &Instruction{Name: "add"}
	And  = &Instruction{Name: "and"}
	Call = &Instruction{Name: "call"}
	Ccf  = &Instruction{Name: "ccf"}
	Cp   = &Instruction{Name: "cp"}
	Cpl  = &Instruction{Name: "cpl"}
	Daa  = &Instruction{Name: "daa"}
	Dec  = &Instruction{Name: "dec"}
	Di   = &Instruction{Name: "di"}
	Djnz = &Instruction{Name: "djnz"}
	Ei   = &Instruction{Name: "ei"}
	Ex   = &Instruction{Name: "ex"}
	Exx  = &Instruction{Name: "exx"}
	Halt = &Instruction{Name: "halt"}
	In   = &Instruction{Name: "in"}
	Inc  = &Instruction{Name: "inc"}
	Jp   = &Instruction{Name: "jp"}
	Jr   = &Instruction{Name: "jr"}
	Ld   = &Instruction{Name: "ld"}
	Nop  = &Instruction{Name: "nop"}
	Or   = &Instruction{Name: "or"}
	Out  = &Instruction{Name: "out"}
	Pop  = &Instruction{Name: "pop"}
	Push = &Instruction{Name: "push"}
	Ret  = &Instruction{Name: "ret"}
	Rla  = &Instruction{Name: "rla"}
	Rlca = &Instruction{Name: "rlca"}
	Rra  = &Instruction{Name: "rra"}
	Rrca = &Instruction{Name: "rrca"}
	Rst  = &Instruction{Name: "rst"}
	Sbc  = &Instruction{Name: "sbc"}
	Scf  = &Instruction{Name: "scf"}
	Sub  = &Instruction{Name: "sub"}
	Xor  = &Instruction{Name: "xor"}
)

// Bit manipulation instructions of the 0xCB table.
var (
	Bit = &Instruction{Name: "bit"}
	Res = &Instruction{Name: "res"}
	Rl  = &Instruction{Name: "rl"}
	Rlc = &Instruction{Name: "rlc"}
	Rr  = &Instruction{Name: "rr"}
	Rrc = &Instruction{Name: "rrc"}
	Set = &Instruction{Name: "set"}
	Sla = &Instruction{Name: "sla"}
	Sll = &Instruction{Name: "sll"}
	Sra = &Instruction{Name: "sra"}
	Srl = &Instruction{Name: "srl"}
)

// Extended instructions of the 0xED table.
var (
	Cpd  = &Instruction{Name: "cpd"}
	Cpdr = &Instruction{Name: "cpdr"}
	Cpi  = &Instruction{Name: "cpi"}
	Cpir = &Instruction{Name: "cpir"}
	Im   = &Instruction{Name: "im"}
	Ind  = &Instruction{Name: "ind"}
	Indr = &Instruction{Name: "indr"}
	Ini  = &Instruction{Name: "ini"}
	Inir = &Instruction{Name: "inir"}
	Ldd  = &Instruction{Name: "ldd"}
	Lddr = &Instruction{Name: "lddr"}
	Ldi  = &Instruction{Name: "ldi"}
	Ldir = &Instruction{Name: "ldir"}
	Neg  = &Instruction{Name: "neg"}
	Otdr = &Instruction{Name: "otdr"}
	Otir = &Instruction{Name: "otir"}
	Outd = &Instruction{Name: "outd"}
	Outi = &Instruction{Name: "outi"}
	Reti = &Instruction{Name: "reti"}
	Retn = &Instruction{Name: "retn"}
	Rld  = &Instruction{Name: "rld"}
	Rrd  = &Instruction{Name: "rrd"}
)
