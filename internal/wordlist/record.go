package wordlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Record is one input line split into tab-separated fields.
type Record struct {
	Line   int
	Fields []string
}

// ParseRecord strips surrounding whitespace from line and splits it on tabs.
// An empty line yields a single empty field.
func ParseRecord(line string, lineNo int) Record {
	return Record{
		Line:   lineNo,
		Fields: strings.Split(trimSpace(line), "\t"),
	}
}

// trimSpace also strips the information separators U+001C..U+001F, which
// unicode.IsSpace leaves alone but wordlist producers treat as blanks.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Word returns the second field.
func (r Record) Word() (string, error) {
	if len(r.Fields) < 2 {
		return "", &LineError{Line: r.Line, Err: fmt.Errorf("%w: got %d field(s)", ErrMissingWord, len(r.Fields))}
	}
	return r.Fields[1], nil
}

// Frequency parses the last field as a base-10 integer. Values beyond the
// int64 range saturate rather than fail, so they still compare correctly
// against any cutoff.
func (r Record) Frequency() (int64, error) {
	field := ""
	if len(r.Fields) > 0 {
		field = r.Fields[len(r.Fields)-1]
	}
	value, err := strconv.ParseInt(trimSpace(field), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, &LineError{Line: r.Line, Err: fmt.Errorf("%w %q", ErrInvalidFrequency, field)}
	}
	return value, nil
}
