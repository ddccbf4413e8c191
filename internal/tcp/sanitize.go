package tcp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxEventSize bounds a single console line. Event names are short; anything
// longer is noise.
const MaxEventSize = 256

var (
	ErrEventTooLarge = errors.New("event exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("event contains invalid UTF-8 sequences")
)

// sanitizeEvent trims a console line and strips control characters so that
// echoed events cannot corrupt the terminal. Oversized or malformed lines are
// rejected rather than truncated.
func sanitizeEvent(line string) (string, error) {
	if len(line) > MaxEventSize {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrEventTooLarge, len(line), MaxEventSize)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	line = strings.TrimSpace(line)
	if !strings.ContainsFunc(line, unicode.IsControl) {
		return line, nil
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, line), nil
}
