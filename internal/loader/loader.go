// Package loader handles ROM image loading operations.
package loader

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// ROM is one loaded ROM image. The data buffer is treated as immutable
// for the remainder of the process.
type ROM struct {
	Name string // base name of the file the image was read from
	Data []byte
	Hash uint64 // content hash, used to identify the image in logs
}

// Load reads a ROM image from a file. Archived images (.zip, .7z, .gz)
// are transparently decompressed, the first file of an archive is used.
func Load(filename string) (*ROM, error) {
	data, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	return &ROM{
		Name: filepath.Base(filename),
		Data: data,
		Hash: xxhash.Sum64(data),
	}, nil
}

func readFile(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		return readZip(file)
	case ".7z":
		return read7z(file)
	case ".gz":
		return readGzip(file)
	default:
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", filename, err)
		}
		return data, nil
	}
}

func readZip(file *os.File) ([]byte, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info: %w", err)
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("opening zip archive: %w", err)
	}
	if len(reader.File) == 0 {
		return nil, fmt.Errorf("zip archive %s contains no files", file.Name())
	}

	entry, err := reader.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("opening archive entry: %w", err)
	}
	defer func() { _ = entry.Close() }()

	data, err := io.ReadAll(entry)
	if err != nil {
		return nil, fmt.Errorf("reading archive entry: %w", err)
	}
	return data, nil
}

func read7z(file *os.File) ([]byte, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info: %w", err)
	}

	reader, err := sevenzip.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("opening 7z archive: %w", err)
	}
	if len(reader.File) == 0 {
		return nil, fmt.Errorf("7z archive %s contains no files", file.Name())
	}

	entry, err := reader.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("opening archive entry: %w", err)
	}
	defer func() { _ = entry.Close() }()

	data, err := io.ReadAll(entry)
	if err != nil {
		return nil, fmt.Errorf("reading archive entry: %w", err)
	}
	return data, nil
}

func readGzip(file *os.File) ([]byte, error) {
	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading gzip stream: %w", err)
	}
	return data, nil
}
