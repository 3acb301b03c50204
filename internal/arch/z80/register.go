package z80

// Flag is one condition bit of the F register.
type Flag uint8

// Condition bits, stored in the high nibble of F.
const (
	FlagCarry     Flag = 1 << 4
	FlagHalfCarry Flag = 1 << 5
	FlagAddSub    Flag = 1 << 6
	FlagZero      Flag = 1 << 7
)

// Pair is a 16 bit register pair built from two 8 bit halves.
type Pair uint16

// Hi returns the upper 8 bit half of the pair.
func (p Pair) Hi() uint8 {
	return uint8(p >> 8)
}

// Lo returns the lower 8 bit half of the pair.
func (p Pair) Lo() uint8 {
	return uint8(p)
}

// SetHi sets the upper 8 bit half of the pair.
func (p *Pair) SetHi(value uint8) {
	*p = *p&0x00FF | Pair(value)<<8
}

// SetLo sets the lower 8 bit half of the pair.
func (p *Pair) SetLo(value uint8) {
	*p = *p&0xFF00 | Pair(value)
}

// RegisterFile is the bit-packed register storage of the CPU. It holds
// no decision logic, the execution loop owns all state transitions.
type RegisterFile struct {
	AF Pair
	BC Pair
	DE Pair
	HL Pair

	IX uint16
	IY uint16
	SP uint16
	PC uint16
}

// Flag returns whether the condition bit is set in the F register.
func (r *RegisterFile) Flag(flag Flag) bool {
	return r.AF.Lo()&uint8(flag) != 0
}

// SetFlag sets or clears the condition bit in the F register.
func (r *RegisterFile) SetFlag(flag Flag, on bool) {
	f := r.AF.Lo()
	if on {
		f |= uint8(flag)
	} else {
		f &^= uint8(flag)
	}
	r.AF.SetLo(f)
}
