package redirect

import "fmt"

// MustBegin is the host-facing form of Begin: any failure is fatal to
// the calling operation, surfaced as a panic carrying the syscall name
// and the OS error code.
func MustBegin(filepath string, appendMode bool) Token {
	tok, err := Begin(filepath, appendMode)
	if err != nil {
		panic(fmt.Sprintf("begin_redirect_stderr: %v", err))
	}
	return tok
}

// MustEnd is the host-facing form of End. Returns 2 on success.
func MustEnd(tok Token) int {
	res, err := End(tok)
	if err != nil {
		panic(fmt.Sprintf("end_redirect_stderr: %v", err))
	}
	return res
}
