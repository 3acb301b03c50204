// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/gbgodisasm/internal/cartridge"
	"github.com/retroenv/gbgodisasm/internal/disasm"
	"github.com/retroenv/gbgodisasm/internal/loader"
	"github.com/retroenv/gbgodisasm/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {
	image, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	logger.Debug("ROM loaded",
		log.String("file", image.Name),
		log.String("hash", fmt.Sprintf("%016x", image.Hash)))

	header, err := loadHeader(image.Data, opts)
	if err != nil {
		return fmt.Errorf("decoding cartridge header: %w", err)
	}

	printHeader(logger, header)
	if opts.HeaderOnly {
		return nil
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	dis := disasm.New(logger, image.Data, disasmOptions)
	if err := dis.Process(ctx, writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func loadHeader(data []byte, opts options.Program) (*cartridge.Header, error) {
	if opts.NoCheck {
		return cartridge.NewNoCheck(data)
	}
	return cartridge.New(data)
}

func printHeader(logger *log.Logger, header *cartridge.Header) {
	logger.Info("Cartridge",
		log.String("title", header.Title()),
		log.Stringer("rom", header.ROMSize()),
		log.Stringer("ram", header.RAMSize()))

	for _, component := range header.Components() {
		logger.Info("Component", log.Stringer("type", component))
	}

	logger.Debug("Modes",
		log.String("color", fmt.Sprintf("%t", header.IsColorMode())),
		log.String("super", fmt.Sprintf("%t", header.IsSuperMode())))
	logger.Debug("Global checksum",
		log.Hex("value", header.GlobalChecksum()))
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("gbgodisasm",
		log.String("version", buildinfo.Version(version, commit, date)))
}
