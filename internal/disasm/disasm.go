// Package disasm implements a linear sweep disassembler for Game Boy ROMs.
package disasm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/gbgodisasm/internal/arch/z80"
	"github.com/retroenv/gbgodisasm/internal/options"
	"github.com/retroenv/gbgodisasm/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	data []byte
	pc   int // file offset of the next instruction to decode
}

// New creates a new disassembler for the passed ROM data.
func New(logger *log.Logger, data []byte, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		data:    data,
		pc:      int(options.CodeStart),
	}
}

// Process disassembles the ROM data using a linear sweep and writes the
// generated assembly to the passed writer. Offsets that do not decode to a
// known instruction are emitted as data bytes and the sweep resynchronizes
// at the following byte.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) error {
	writer := bufio.NewWriter(mainWriter)

	for dis.pc < len(dis.data) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		window := dis.instructionWindow()

		ins, err := z80.Decode(window)
		if err != nil {
			if !decodableError(err) {
				return fmt.Errorf("decoding at offset %04x: %w", dis.pc, err)
			}

			dis.logger.Debug("Undecodable offset",
				log.Hex("offset", uint16(dis.pc)),
				log.Uint8("byte", dis.data[dis.pc]))

			if err := dis.writeDataByte(writer); err != nil {
				return err
			}
			dis.pc++
			continue
		}

		if err := dis.writeInstruction(writer, ins, window[:ins.Length]); err != nil {
			return err
		}
		dis.pc += ins.Length
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// instructionWindow returns the byte window for the current offset, capped
// at the end of the ROM data.
func (dis *Disasm) instructionWindow() []byte {
	end := dis.pc + z80.MaxInstructionSize
	if end > len(dis.data) {
		end = len(dis.data)
	}
	return dis.data[dis.pc:end]
}

// decodableError returns whether the sweep can recover from the passed
// decode error by treating the current byte as data.
func decodableError(err error) bool {
	var boundsErr rom.BoundsError
	var opcodeErr z80.UnknownOpcodeError
	var prefixErr z80.UnknownPrefixError
	return errors.As(err, &boundsErr) ||
		errors.As(err, &opcodeErr) ||
		errors.As(err, &prefixErr)
}

func (dis *Disasm) writeDataByte(writer *bufio.Writer) error {
	line := fmt.Sprintf(".byte $%02x", dis.data[dis.pc])
	return dis.writeLine(writer, line, dis.data[dis.pc:dis.pc+1])
}

func (dis *Disasm) writeInstruction(writer *bufio.Writer, ins z80.DecodedInstruction, raw []byte) error {
	line := ins.Instruction.Name
	if ins.HasDisplacement {
		line += fmt.Sprintf(" %+d", ins.Displacement)
	}
	switch ins.Immediate.Width {
	case 1:
		line += fmt.Sprintf(" $%02x", ins.Immediate.Value)
	case 2:
		line += fmt.Sprintf(" $%04x", ins.Immediate.Value)
	}
	return dis.writeLine(writer, line, raw)
}

// writeLine writes one line of output, appending the offset and hex dump
// comments if enabled.
func (dis *Disasm) writeLine(writer *bufio.Writer, line string, raw []byte) error {
	if _, err := fmt.Fprintf(writer, "  %-24s", line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if dis.options.OffsetComments || dis.options.HexComments {
		comment := ";"
		if dis.options.OffsetComments {
			comment += fmt.Sprintf(" $%04x ", dis.pc)
		}
		if dis.options.HexComments {
			comment += " "
			for _, b := range raw {
				comment += fmt.Sprintf(" %02x", b)
			}
		}
		if _, err := writer.WriteString(comment); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if err := writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
