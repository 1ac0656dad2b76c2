//go:build unix && arm64 && !darwin

package redirect

import "golang.org/x/sys/unix"

func dupFd(oldfd int) (int, error) {
	return unix.Dup(oldfd)
}

// Dup3 because linux/arm64 does not carry the legacy dup2 syscall.
func dupFdTo(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
