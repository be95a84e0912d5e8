package wordlist

import "regexp"

var (
	// impureWordPattern matches a decimal digit or any rune that is not a
	// letter, number, or underscore.
	impureWordPattern = regexp.MustCompile(`[\p{Nd}]|[^\p{L}\p{N}_]`)
	// impureASCIIPattern matches anything outside A-Z, a-z, and underscore.
	impureASCIIPattern = regexp.MustCompile(`[^A-Za-z_]`)
)

// IsPureWord reports whether word contains no decimal digits and no non-word
// runes. Word runes are Unicode letters, numbers, and underscore, so "café"
// and "hello_world" pass while "abc123" and "can't" do not. The empty string
// passes.
func IsPureWord(word string) bool {
	return !impureWordPattern.MatchString(word)
}

// IsPureWordASCII is IsPureWord restricted to ASCII letters and underscore.
func IsPureWordASCII(word string) bool {
	return !impureASCIIPattern.MatchString(word)
}
