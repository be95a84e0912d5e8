// Package textenc resolves named text encodings for wordlist files.
//
// Labels are IANA charset names and aliases ("utf-8", "latin1",
// "iso-8859-1", "windows-1252", "koi8-r", ...). ISO-8859-1 is the real
// Latin-1, with bytes 0x80-0x9F decoding to C1 controls rather than the
// windows-1252 letters. UTF-8 resolves to a pass-through encoding so
// callers see the raw bytes and can reject invalid sequences themselves; every
// other encoding transcodes to and from UTF-8 at the file boundary.
package textenc
