package z80

import (
	"github.com/retroenv/gbgodisasm/internal/rom"
)

// MaxInstructionSize is the maximum number of bytes a single instruction
// occupies in the code stream.
const MaxInstructionSize = 4

// Immediate is a fixed-width literal operand embedded in the instruction
// stream, read in little-endian byte order.
type Immediate struct {
	Width int // 0, 1 or 2 bytes
	Value uint16
}

// DecodedInstruction is one fully decoded opcode occurrence. It is
// produced fresh by each Decode call and not retained by the decoder.
type DecodedInstruction struct {
	Instruction *Instruction
	Context     PrefixContext

	HasDisplacement bool
	Displacement    int8

	Immediate Immediate

	// Length is the total number of bytes consumed from the stream,
	// the caller advances its program counter by this amount.
	Length int
}

// decoding advances through ordered stages, each stage consumes input
// bytes and selects the next stage or fails
type stage uint8

const (
	stagePrefix stage = iota
	stageDisplacement
	stageOpcode
	stageImmediate
	stageDone
)

type decoder struct {
	window []byte
	pos    int

	ctx    PrefixContext
	opcode Opcode
	result DecodedInstruction
}

// Decode decodes one instruction from a window of the code stream. The
// window starts at the caller-tracked cursor and does not need to be
// longer than MaxInstructionSize bytes. Decoding never mutates the window
// and fails with a bounds error if the window is shorter than the
// instruction requires. Each call is independent of all previous calls.
func Decode(window []byte) (DecodedInstruction, error) {
	d := &decoder{window: window}

	var err error
	for s := stagePrefix; s != stageDone; {
		switch s {
		case stagePrefix:
			s, err = d.prefixStage()
		case stageDisplacement:
			s, err = d.displacementStage()
		case stageOpcode:
			s, err = d.opcodeStage()
		default:
			s, err = d.immediateStage()
		}
		if err != nil {
			return DecodedInstruction{}, err
		}
	}

	d.result.Context = d.ctx
	d.result.Length = d.pos
	return d.result, nil
}

func (d *decoder) readByte() (byte, error) {
	b, err := (rom.Region{Start: d.pos, End: d.pos + 1}).Byte(d.window)
	if err != nil {
		return 0, err
	}
	d.pos++
	return b, nil
}

// prefixStage inspects the first byte of the window. A reserved prefix
// byte is consumed and selects an alternate opcode table, any other byte
// is left for the opcode stage. The 0xDD and 0xFD prefixes permit a
// second 0xCB prefix which must be detected before falling through to
// the opcode stage.
func (d *decoder) prefixStage() (stage, error) {
	b, err := (rom.Region{Start: d.pos, End: d.pos + 1}).Byte(d.window)
	if err != nil {
		return stageDone, err
	}

	prefix, err := ParsePrefix(b)
	if err != nil {
		// not a prefix, the byte is the unprefixed opcode
		return stageOpcode, nil
	}
	d.pos++
	d.ctx.First = prefix

	if prefix == PrefixDD || prefix == PrefixFD {
		next, err := (rom.Region{Start: d.pos, End: d.pos + 1}).Byte(d.window)
		if err != nil {
			return stageDone, err
		}
		if Prefix(next) == PrefixCB {
			d.pos++
			d.ctx.Second = PrefixCB
			// the double-prefix form stores the displacement before
			// the opcode byte
			return stageDisplacement, nil
		}
	}
	return stageOpcode, nil
}

// displacementStage consumes one signed byte in range [-128, 127].
func (d *decoder) displacementStage() (stage, error) {
	b, err := d.readByte()
	if err != nil {
		return stageDone, err
	}
	d.result.HasDisplacement = true
	d.result.Displacement = int8(b)

	if d.ctx.Second == PrefixCB {
		return stageOpcode, nil
	}
	return stageImmediate, nil
}

// opcodeStage selects the operation identity from the table implied by
// the active prefix context.
func (d *decoder) opcodeStage() (stage, error) {
	b, err := d.readByte()
	if err != nil {
		return stageDone, err
	}

	opcode, ok := lookupOpcode(d.ctx, b)
	if !ok {
		return stageDone, UnknownOpcodeError{Opcode: b, Context: d.ctx}
	}
	d.opcode = opcode
	d.result.Instruction = opcode.Instruction

	if opcode.Displacement && !d.result.HasDisplacement {
		return stageDisplacement, nil
	}
	return stageImmediate, nil
}

// immediateStage consumes the statically known immediate operand width
// of the selected opcode.
func (d *decoder) immediateStage() (stage, error) {
	switch d.opcode.Immediate {
	case 0:
	case 1:
		b, err := d.readByte()
		if err != nil {
			return stageDone, err
		}
		d.result.Immediate = Immediate{Width: 1, Value: uint16(b)}
	default:
		w, err := (rom.Region{Start: d.pos, End: d.pos + 2}).WordLE(d.window)
		if err != nil {
			return stageDone, err
		}
		d.pos += 2
		d.result.Immediate = Immediate{Width: 2, Value: w}
	}
	return stageDone, nil
}

func lookupOpcode(ctx PrefixContext, b byte) (Opcode, bool) {
	switch {
	case ctx.Second == PrefixCB:
		return IndexBitOpcodes[b], true
	case ctx.First == PrefixCB:
		return CBOpcodes[b], true
	case ctx.First == PrefixED:
		opcode, ok := EDOpcodes[b]
		return opcode, ok
	case ctx.First == PrefixDD, ctx.First == PrefixFD:
		opcode, ok := IndexOpcodes[b]
		return opcode, ok
	default:
		opcode := Opcodes[b]
		return opcode, opcode.Instruction != nil
	}
}
