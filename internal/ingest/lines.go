package ingest

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lineReader iterates over the significant lines of a text input. Lines are
// NFC-normalized and trimmed, empty lines are skipped. If comments are enabled,
// lines starting with '#' are skipped and trailing comments are cut off.
type lineReader struct {
	scanner  *bufio.Scanner
	comments bool
	lineno   int
	text     string
}

func newLineReader(r io.Reader, comments bool) *lineReader {
	return &lineReader{
		scanner:  bufio.NewScanner(norm.NFC.Reader(r)),
		comments: comments,
	}
}

// Scan advances to the next significant line.
func (lr *lineReader) Scan() bool {
	for lr.scanner.Scan() {
		lr.lineno++
		text := strings.TrimSpace(lr.scanner.Text())
		if lr.comments {
			if strings.HasPrefix(text, "#") {
				continue
			}
			if i := strings.IndexByte(text, '#'); i >= 0 {
				text = strings.TrimSpace(text[:i])
			}
		}
		if text == "" {
			continue
		}
		lr.text = text
		return true
	}
	return false
}

// Text returns the current line without a trailing comment.
func (lr *lineReader) Text() string {
	return lr.text
}

// Line is the 1-based number of the current line in the input.
func (lr *lineReader) Line() int {
	return lr.lineno
}

func (lr *lineReader) Err() error {
	return lr.scanner.Err()
}
