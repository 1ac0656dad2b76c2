//go:build unix && !linux

package fdtab

const fdDir = "/dev/fd"
