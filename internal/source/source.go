// Package source reads program text and writes encoded output.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IOError reports a failed read or write.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether err is an IOError caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// ReadOptions controls how source text is decoded.
type ReadOptions struct {
	// NFC normalizes the text to Unicode Normalization Form C after decoding.
	NFC bool
}

// Read returns the entire content of path as text.
//
// A leading byte order mark selects UTF-8 or UTF-16 decoding and is removed;
// without one the file is read as UTF-8. Invalid sequences become U+FFFD.
func Read(path string, opts ReadOptions) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	if opts.NFC {
		data = norm.NFC.Bytes(data)
	}
	return string(data), nil
}

// Write replaces the content of path with expr.
//
// The expression is written to a temporary file next to path and renamed
// into place, so path never holds a partial expression.
func Write(path string, expr string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.WriteString(tmp, expr); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Chmod(0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
