// Package input turns device events into game intents and per-frame input
// snapshots.
package input

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads terminal commands one line at a time.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r, typically os.Stdin
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine reads a line of input. Arrow key escape sequences typed into a
// cooked terminal are replaced by their binding codes.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return replaceArrows(strings.TrimRight(line, "\r\n")), nil
}

// replaceArrows rewrites CSI (ESC [) and SS3 (ESC O) arrow sequences as
// space separated codes. Other escape sequences are dropped.
func replaceArrows(line string) string {
	if !strings.ContainsRune(line, 0x1b) {
		return line
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if line[i] != 0x1b {
			b.WriteByte(line[i])
			continue
		}
		if i+2 >= len(line) || (line[i+1] != '[' && line[i+1] != 'O') {
			continue
		}
		switch line[i+2] {
		case 'A':
			b.WriteString(" arrow_up ")
		case 'B':
			b.WriteString(" arrow_down ")
		case 'C':
			b.WriteString(" arrow_right ")
		case 'D':
			b.WriteString(" arrow_left ")
		}
		i += 2
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
