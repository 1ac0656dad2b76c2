//go:build (unix && !arm64) || darwin

package redirect

import "golang.org/x/sys/unix"

func dupFd(oldfd int) (int, error) {
	return unix.Dup(oldfd)
}

// dupFdTo points newfd at the file oldfd references, atomically.
func dupFdTo(oldfd, newfd int) error {
	return unix.Dup2(oldfd, newfd)
}
