package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding reports a label that does not name a supported encoding.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding pairs a resolved encoding with its canonical name.
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// Lookup resolves label to an Encoding. An empty label means UTF-8.
func Lookup(label string) (Encoding, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = "utf-8"
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return Encoding{}, fmt.Errorf("%w %q", ErrUnknownEncoding, label)
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = label
	}
	name = strings.ToLower(name)
	if enc == unicode.UTF8 {
		enc = encoding.Nop
	}
	return Encoding{Name: name, enc: enc}, nil
}

// IsUTF8 reports whether the encoding passes bytes through unchanged.
func (e Encoding) IsUTF8() bool {
	return e.enc == nil || e.enc == encoding.Nop
}

// NewReader wraps r so reads yield UTF-8 text.
func (e Encoding) NewReader(r io.Reader) io.Reader {
	if e.IsUTF8() {
		return r
	}
	return e.enc.NewDecoder().Reader(r)
}

// NewWriter wraps w so UTF-8 text written to it is stored in the encoding.
// Runes the encoding cannot represent fail the write. Close flushes pending
// output; it does not close w.
func (e Encoding) NewWriter(w io.Writer) io.WriteCloser {
	if e.IsUTF8() {
		return nopCloser{w}
	}
	return transform.NewWriter(w, e.enc.NewEncoder())
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
