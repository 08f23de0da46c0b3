package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/netquiz/internal/service"
)

// Keys handled by the terminal itself rather than the quiz.
const (
	keyQuit    = "quit"
	keyRestart = "restart"
)

// decodeKeys splits one raw read into key names. A single read can hold
// several keys when typing fast or pasting. Unknown input is dropped.
func decodeKeys(buf []byte) []string {
	var keys []string
	for len(buf) > 0 {
		key, n := decodeKey(buf)
		buf = buf[n:]
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// decodeKey decodes the first key of buf and returns it with the number of bytes consumed.
// The key is "" for input the quiz does not care about. buf must not be empty.
func decodeKey(buf []byte) (string, int) {
	if buf[0] == 0x1b {
		return decodeEscape(buf)
	}

	switch buf[0] {
	case '\r':
		if len(buf) > 1 && buf[1] == '\n' {
			return service.KeyEnter, 2
		}
		return service.KeyEnter, 1
	case '\n':
		return service.KeyEnter, 1
	case ' ':
		return service.KeySpace, 1
	case 0x03, 0x04: // Ctrl-C, Ctrl-D
		return keyQuit, 1
	case 'q', 'Q':
		return keyQuit, 1
	case 'r', 'R':
		return keyRestart, 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return "", size
	}
	return string(r), size
}

// decodeEscape decodes an escape sequence. ESC [ D and ESC O D (application
// cursor mode) are the left arrow; other sequences are consumed and ignored.
func decodeEscape(buf []byte) (string, int) {
	if len(buf) < 3 {
		return "", len(buf)
	}

	switch buf[1] {
	case 'O':
		if buf[2] == 'D' {
			return service.KeyLeft, 3
		}
		return "", 3
	case '[':
		if buf[2] == 'D' {
			return service.KeyLeft, 3
		}
		// CSI parameters end with a byte in 0x40..0x7e.
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return "", i + 1
			}
		}
		return "", len(buf)
	default:
		return "", 1
	}
}

// decodeLine converts a line of cooked input (non-interactive mode) into a key name.
// An empty line means Enter.
func decodeLine(line string) string {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return service.KeyEnter
	case "<", "prev", "p":
		return service.KeyLeft
	case ">", "next", "n":
		return service.KeyEnter
	case "r", "restart":
		return keyRestart
	case "q", "quit", "exit":
		return keyQuit
	}
	if _, ok := service.AnswerKeyIndex(line); ok {
		return line
	}
	return ""
}
