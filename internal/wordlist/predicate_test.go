package wordlist

import "testing"

func TestIsPureWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "cat", want: true},
		{word: "hello_world", want: true},
		{word: "_", want: true},
		{word: "", want: true},
		{word: "café", want: true},
		{word: "Straße", want: true},
		{word: "привет", want: true},
		{word: "x²", want: true},
		{word: "abc123", want: false},
		{word: "dog2", want: false},
		{word: "can't", want: false},
		{word: "well-known", want: false},
		{word: "two words", want: false},
		{word: "e.g", want: false},
		{word: "٣", want: false},
		{word: "cafe\u0301", want: false},
	}
	for _, tt := range tests {
		if got := IsPureWord(tt.word); got != tt.want {
			t.Errorf("IsPureWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsPureWordASCII(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "cat", want: true},
		{word: "Hello_World", want: true},
		{word: "", want: true},
		{word: "café", want: false},
		{word: "x²", want: false},
		{word: "abc123", want: false},
		{word: "can't", want: false},
	}
	for _, tt := range tests {
		if got := IsPureWordASCII(tt.word); got != tt.want {
			t.Errorf("IsPureWordASCII(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
