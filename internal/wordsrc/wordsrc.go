// Package wordsrc reads a dictionary corpus: one upper-case word per line.
package wordsrc

import (
	"bufio"
	"io"
	"strings"
)

// ScanWords reads every line from r and calls fn with the trimmed word. It
// does not validate length or alphabet membership itself; that filtering is
// wordindex.WordIndex.AddWord's job (§4.3), so a corpus containing blank
// lines, stray whitespace, or lower-case words can be fed straight through
// without a separate pre-pass.
func ScanWords(r io.Reader, fn func(word string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err := fn(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}
