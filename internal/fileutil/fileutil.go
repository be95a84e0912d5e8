package fileutil

import (
	"bufio"
	"io"
	"os"
)

// WithReader opens path for reading and hands the file to fn. The file is
// closed on every return path.
func WithReader(path string, fn func(io.Reader) error) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	return fn(in)
}

// WithWriter creates or truncates path with default permissions (0o644) and
// hands a buffered writer to fn.
func WithWriter(path string, fn func(io.Writer) error) error {
	return WithWriterMode(path, 0o644, fn)
}

// WithWriterMode creates or truncates path with the given mode and hands a
// buffered writer to fn. The buffer is flushed and the file closed before
// returning; the first error from fn, the flush, or the close is returned.
// Data already flushed stays on disk when fn fails.
func WithWriterMode(path string, mode os.FileMode, fn func(io.Writer) error) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if err := fn(buf); err != nil {
		_ = buf.Flush()
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return out.Close()
}
