package redirect

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mode selects how the target file is opened.
type Mode string

const (
	// Write creates the file when absent and truncates it otherwise.
	Write Mode = "w"
	// Append creates the file when absent and keeps existing content.
	Append Mode = "a"
)

var ErrInvalidMode = errors.New("redirect: unrecognized mode")

// ParseMode resolves a mode name. Only "w" and "a" are supported.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Write, Append:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ModeFor maps the boolean selector accepted by Begin.
func ModeFor(appendMode bool) Mode {
	if appendMode {
		return Append
	}
	return Write
}

func (m Mode) flags() int {
	if m == Append {
		return unix.O_WRONLY | unix.O_CREAT | unix.O_APPEND
	}
	return unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC
}
