package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRead_PlainUTF8(t *testing.T) {
	path := writeFile(t, "in.js", []byte("console.log('héllo')\n"))

	got, err := Read(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "console.log('héllo')\n", got)
}

func TestRead_StripsUTF8BOM(t *testing.T) {
	path := writeFile(t, "bom.js", []byte("\xEF\xBB\xBFreturn 1"))

	got, err := Read(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "return 1", got)
}

func TestRead_DecodesUTF16LE(t *testing.T) {
	// BOM FF FE, then "hi" in UTF-16LE.
	path := writeFile(t, "utf16.js", []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00})

	got, err := Read(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestRead_InvalidUTF8BecomesReplacement(t *testing.T) {
	path := writeFile(t, "bad.js", []byte{'a', 0xFF, 'b'})

	got, err := Read(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", got)
}

func TestRead_NFC(t *testing.T) {
	// "e" followed by U+0301 COMBINING ACUTE ACCENT.
	path := writeFile(t, "nfd.js", []byte("cafe\u0301"))

	raw, err := Read(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "cafe\u0301", raw)

	normalized, err := Read(path, ReadOptions{NFC: true})
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", normalized)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.js"), ReadOptions{})
	require.Error(t, err)
	assert.True(t, IsNotExist(err))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
}

func TestWrite_ReplacesContent(t *testing.T) {
	path := writeFile(t, "out.js", []byte("old content that is longer"))

	require.NoError(t, Write(path, "+[]"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "+[]", string(data))
}

func TestWrite_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.js")

	require.NoError(t, Write(path, "(![]+[])[+[]]"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(![]+[])[+[]]", string(data))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.js")

	err := Write(path, "+[]")
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
