package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteLines writes each line followed by a newline to path, creating parent
// directories as needed.
func WriteLines(t testing.TB, path string, lines ...string) {
	t.Helper()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	WriteBytes(t, path, []byte(b.String()))
}

// WriteBytes writes data to path verbatim, creating parent directories as needed.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Entry formats a wordlist record as rank, word, a placeholder column, and
// frequency, separated by tabs.
func Entry(rank int, word string, freq int64) string {
	return strings.Join([]string{itoa(int64(rank)), word, "0", itoa(freq)}, "\t")
}

// ReadFile returns the contents of path, failing the test when it cannot be read.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// RequireMissing fails the test when path exists.
func RequireMissing(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected %s to be absent", path)
	} else if !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", path, err)
	}
}
