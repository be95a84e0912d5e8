package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultCutoff is the minimum frequency applied when none is configured.
const DefaultCutoff int64 = 10

// Verdict classifies a record after filtering.
type Verdict int

const (
	// VerdictAccepted marks a pure word whose frequency meets the cutoff.
	VerdictAccepted Verdict = iota
	// VerdictBelowCutoff marks a record whose frequency is under the cutoff.
	VerdictBelowCutoff
	// VerdictRejected marks a qualifying record whose word is not pure.
	VerdictRejected
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "accepted"
	case VerdictBelowCutoff:
		return "below_cutoff"
	case VerdictRejected:
		return "rejected"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Summary counts records by verdict for one pass.
type Summary struct {
	Lines       int
	Accepted    int
	BelowCutoff int
	Rejected    int
}

func (s *Summary) add(v Verdict) {
	s.Lines++
	switch v {
	case VerdictAccepted:
		s.Accepted++
	case VerdictBelowCutoff:
		s.BelowCutoff++
	case VerdictRejected:
		s.Rejected++
	}
}

// Filter applies the frequency cutoff and the pure-word test.
type Filter struct {
	Cutoff    int64
	ASCIIOnly bool
}

// Classify returns the verdict for rec and, when accepted, its word. The word
// field is only consulted once the frequency meets the cutoff, so a short line
// below the cutoff is not an error.
func (f Filter) Classify(rec Record) (string, Verdict, error) {
	freq, err := rec.Frequency()
	if err != nil {
		return "", 0, err
	}
	if freq < f.Cutoff {
		return "", VerdictBelowCutoff, nil
	}
	word, err := rec.Word()
	if err != nil {
		return "", 0, err
	}
	if !f.pure(word) {
		return "", VerdictRejected, nil
	}
	return word, VerdictAccepted, nil
}

func (f Filter) pure(word string) bool {
	if f.ASCIIOnly {
		return IsPureWordASCII(word)
	}
	return IsPureWord(word)
}

// Apply reads r line by line and returns the accepted words in input order.
// It stops at the first malformed line or when ctx is cancelled.
func (f Filter) Apply(ctx context.Context, r io.Reader) ([]string, Summary, error) {
	var (
		words   []string
		summary Summary
	)
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, summary, err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, summary, readErr
		}
		if line == "" && readErr != nil {
			break
		}
		if !utf8.ValidString(line) {
			return nil, summary, &LineError{Line: lineNo, Err: ErrInvalidText}
		}

		word, verdict, err := f.Classify(ParseRecord(line, lineNo))
		if err != nil {
			return nil, summary, err
		}
		summary.add(verdict)
		if verdict == VerdictAccepted {
			words = append(words, word)
		}
		if readErr != nil {
			break
		}
	}
	return words, summary, nil
}

// WriteWords writes each word followed by a newline.
func WriteWords(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := io.WriteString(w, word); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
