// Package redirect temporarily reroutes the process stderr stream into
// a file and restores it afterwards.
//
// The stderr slot is process-wide mutable state: every goroutine and
// every write that bypasses the Go runtime observes a redirection at
// once. Calls must be paired, Begin first, and serialized by the
// caller; the package takes no lock of its own.
package redirect

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Token is the preserved copy of the original stderr descriptor,
// returned by Begin and consumed by End. Treat it as opaque: do not
// close, duplicate or write to it between the two calls.
type Token int

// SyscallError reports which of dup, open or dup2 failed and why.
type SyscallError struct {
	Op    string
	Errno unix.Errno
}

func (e *SyscallError) Error() string {
	return fmt.Sprintf("redirect: %s failed: %v (errno=%d)", e.Op, e.Errno, int(e.Errno))
}

func (e *SyscallError) Unwrap() error { return e.Errno }

var (
	active int64
	begins int64
	ends   int64
)

// Begin duplicates the current stderr descriptor, opens filepath with
// the mode selected by appendMode and substitutes it for stderr. The
// returned token reverts the substitution when passed to End.
//
// appendMode=false truncates an existing file, appendMode=true keeps
// its content and writes after it. The file is created 0644 when
// absent. Calling Begin again before End leaks the first target's
// descriptor; the caller owns the pairing.
func Begin(filepath string, appendMode bool) (Token, error) {
	saved, err := dupFd(unix.Stderr)
	if err != nil {
		return -1, &SyscallError{Op: "dup", Errno: errnoOf(err)}
	}
	fd, err := unix.Open(filepath, ModeFor(appendMode).flags(), 0o644)
	if err != nil {
		_ = unix.Close(saved)
		return -1, &SyscallError{Op: "open", Errno: errnoOf(err)}
	}
	if err := dupFdTo(fd, unix.Stderr); err != nil {
		_ = unix.Close(fd)
		_ = unix.Close(saved)
		return -1, &SyscallError{Op: "dup2", Errno: errnoOf(err)}
	}
	// The stderr slot now references the open file through its own
	// descriptor number, so this one is redundant.
	_ = unix.Close(fd)
	atomic.AddInt64(&active, 1)
	atomic.AddInt64(&begins, 1)
	return Token(saved), nil
}

// End substitutes the preserved descriptor back into the stderr slot,
// closes it and returns the stderr descriptor number (2).
//
// The token is not validated: an already-closed token fails with a
// dup2 error, while a live descriptor that never came from Begin is
// substituted as is.
func End(tok Token) (int, error) {
	if err := dupFdTo(int(tok), unix.Stderr); err != nil {
		return -1, &SyscallError{Op: "dup2", Errno: errnoOf(err)}
	}
	_ = unix.Close(int(tok))
	atomic.AddInt64(&active, -1)
	atomic.AddInt64(&ends, 1)
	return unix.Stderr, nil
}

// Stats reports the number of live redirections and the totals of
// completed Begin and End calls since process start.
func Stats() (liveNow, beginTotal, endTotal int64) {
	return atomic.LoadInt64(&active), atomic.LoadInt64(&begins), atomic.LoadInt64(&ends)
}

func errnoOf(err error) unix.Errno {
	if errno, ok := err.(unix.Errno); ok {
		return errno
	}
	return unix.EINVAL
}
