// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/magicsq/engine"
)

// ErrWrite wraps every failure to produce a report artifact on disk.
var ErrWrite = errors.New("report: write failed")

// countingWriter counts bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteAtomic streams render into a temp file next to path and renames it
// over path. It returns the number of bytes written.
func WriteAtomic(path string, render func(io.Writer) error) (written int64, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: create directory %s: %w", ErrWrite, dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: create temp file: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	cw := &countingWriter{w: tmp}
	bw := bufio.NewWriter(cw)
	if err = render(bw); err != nil {
		return 0, fmt.Errorf("%w: render %s: %w", ErrWrite, path, err)
	}
	if err = bw.Flush(); err != nil {
		return 0, fmt.Errorf("%w: flush %s: %w", ErrWrite, path, err)
	}
	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync %s: %w", ErrWrite, path, err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: close %s: %w", ErrWrite, path, err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return 0, fmt.Errorf("%w: chmod %s: %w", ErrWrite, path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("%w: rename to %s: %w", ErrWrite, path, err)
	}

	return cw.n, nil
}

// WriteFile renders res as Markdown to path atomically.
func WriteFile(path string, res *engine.Result, opts Options) (int64, error) {
	return WriteAtomic(path, func(w io.Writer) error { return Render(w, res, opts) })
}

// Markdown renders res into memory.
func Markdown(res *engine.Result, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, res, opts); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
