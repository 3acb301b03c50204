package z80

import "fmt"

// Prefix is a reserved opcode byte that selects an alternate opcode table
// for the bytes following it.
type Prefix byte

// Reserved prefix bytes.
const (
	PrefixNone Prefix = 0x00
	PrefixCB   Prefix = 0xCB
	PrefixDD   Prefix = 0xDD
	PrefixED   Prefix = 0xED
	PrefixFD   Prefix = 0xFD
)

// UnknownPrefixError is returned when a byte is not one of the reserved
// prefix bytes.
type UnknownPrefixError struct {
	Byte byte
}

// Error implements the error interface.
func (e UnknownPrefixError) Error() string {
	return fmt.Sprintf("unknown prefix byte 0x%02X", e.Byte)
}

// ParsePrefix converts a byte to its Prefix value.
func ParsePrefix(b byte) (Prefix, error) {
	switch p := Prefix(b); p {
	case PrefixCB, PrefixDD, PrefixED, PrefixFD:
		return p, nil
	default:
		return PrefixNone, UnknownPrefixError{Byte: b}
	}
}

// String implements the fmt.Stringer interface.
func (p Prefix) String() string {
	if p == PrefixNone {
		return "none"
	}
	return fmt.Sprintf("%02x", byte(p))
}

// PrefixContext identifies the opcode table that is active while decoding
// an instruction: no prefix, one of the four single prefixes, or the
// double-prefix form selecting the indexed bit table.
type PrefixContext struct {
	First  Prefix
	Second Prefix // PrefixCB for the double-prefix form, PrefixNone otherwise
}

// String implements the fmt.Stringer interface.
func (c PrefixContext) String() string {
	switch {
	case c.First == PrefixNone:
		return "unprefixed"
	case c.Second == PrefixNone:
		return c.First.String()
	default:
		return fmt.Sprintf("%s %s", c.First, c.Second)
	}
}

// UnknownOpcodeError is returned when a byte has no defined entry in the
// opcode table selected by the active prefix context.
type UnknownOpcodeError struct {
	Opcode  byte
	Context PrefixContext
}

// Error implements the error interface.
func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X in %s context", e.Opcode, e.Context)
}
