// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/gbgodisasm/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var noHexComments, noOffsets bool
	readOptionFlags(flags, &opts, &noHexComments, &noOffsets)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	disasmOptions := options.NewDisassembler()
	disasmOptions.HexComments = !noHexComments
	disasmOptions.OffsetComments = !noOffsets

	codeStart, err := parseCodeStart(opts.CodeStart)
	if err != nil {
		return opts, disasmOptions, err
	}
	disasmOptions.CodeStart = codeStart

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: gbgodisasm [options] <file to disassemble>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// parseCodeStart parses the code start flag value, accepting an optional
// 0x or $ hex prefix.
func parseCodeStart(value string) (uint16, error) {
	if value == "" {
		return options.DefaultCodeStart, nil
	}

	value = strings.ToLower(value)
	value = strings.TrimPrefix(value, "0x")
	value = strings.TrimPrefix(value, "$")

	start, err := strconv.ParseUint(value, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid code start address '%s': %w", value, err)
	}
	return uint16(start), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program,
	noHexComments, noOffsets *bool) {

	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.gb")
	flags.StringVar(&opts.CodeStart, "start", "", "file offset to start disassembling at (hexadecimal, default 0x150)")
	flags.BoolVar(&opts.NoCheck, "nocheck", false, "do not verify the cartridge header checksum")
	flags.BoolVar(&opts.HeaderOnly, "header", false, "only print the decoded cartridge header and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(noHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(noOffsets, "nooffsets", false, "do not output offsets in comments")
}
