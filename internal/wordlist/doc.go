// Package wordlist filters tab-delimited word-frequency lists.
//
// Each input line is stripped, split on tabs, and treated as a record whose
// second field is the word and whose last field is its frequency. A word is
// kept when its frequency meets the cutoff and it is a pure word: letters,
// non-decimal numerics, and underscores only. Survivors are written one per
// line in input order.
//
// Run reads the whole input before opening the output, so a malformed line
// aborts the run without touching the output file. There is no recovery: the
// first error ends the pass.
package wordlist
