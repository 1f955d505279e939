package ingest

import (
	"strings"
	"testing"
)

func TestLineReader(t *testing.T) {
	input := "# header\n\nS a S b   # trailing\n  # indented comment\n   S  \n"
	lr := newLineReader(strings.NewReader(input), true)
	var texts []string
	var lines []int
	for lr.Scan() {
		texts = append(texts, lr.Text())
		lines = append(lines, lr.Line())
	}
	if err := lr.Err(); err != nil {
		t.Fatal(err)
	}
	if len(texts) != 2 || texts[0] != "S a S b" || texts[1] != "S" {
		t.Errorf("Expected lines [S a S b] and [S], have %q", texts)
	}
	if len(lines) != 2 || lines[0] != 3 || lines[1] != 5 {
		t.Errorf("Expected line numbers 3 and 5, have %v", lines)
	}
}

func TestLineReaderWithoutComments(t *testing.T) {
	lr := newLineReader(strings.NewReader("\n  a#b  \n"), false)
	if !lr.Scan() || lr.Text() != "a#b" || lr.Line() != 2 {
		t.Errorf("Expected line 2 to be read verbatim, have %q at %d", lr.Text(), lr.Line())
	}
	if lr.Scan() {
		t.Errorf("Expected a single line, have %q", lr.Text())
	}
}
