package loader

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	content := []byte{0x01, 0x02, 0x03, 0x04}

	t.Run("load plain file", func(t *testing.T) {
		name := writeTempFile(t, "test.gb", content)

		image, err := Load(name)
		assert.NoError(t, err)
		assert.Equal(t, content, image.Data)
		assert.Equal(t, "test.gb", image.Name)
	})

	t.Run("load zip archive", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "test.zip")
		file, err := os.Create(name)
		assert.NoError(t, err)

		writer := zip.NewWriter(file)
		entry, err := writer.Create("test.gb")
		assert.NoError(t, err)
		_, err = entry.Write(content)
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())
		assert.NoError(t, file.Close())

		image, err := Load(name)
		assert.NoError(t, err)
		assert.Equal(t, content, image.Data)
	})

	t.Run("load gzip file", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "test.gb.gz")
		file, err := os.Create(name)
		assert.NoError(t, err)

		writer := gzip.NewWriter(file)
		_, err = writer.Write(content)
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())
		assert.NoError(t, file.Close())

		image, err := Load(name)
		assert.NoError(t, err)
		assert.Equal(t, content, image.Data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.gb"))
		assert.Error(t, err)
	})
}

func TestLoadHashIdentifiesContent(t *testing.T) {
	first := writeTempFile(t, "a.gb", []byte{0x01, 0x02})
	second := writeTempFile(t, "b.gb", []byte{0x01, 0x02})
	third := writeTempFile(t, "c.gb", []byte{0x01, 0x03})

	a, err := Load(first)
	assert.NoError(t, err)
	b, err := Load(second)
	assert.NoError(t, err)
	c, err := Load(third)
	assert.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.True(t, a.Hash != c.Hash, "different content must hash differently")
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
