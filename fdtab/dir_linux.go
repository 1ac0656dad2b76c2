//go:build linux

package fdtab

const fdDir = "/proc/self/fd"
