//go:build linux

package osver

import (
	"golang.org/x/sys/unix"
)

// Platform returns the kernel name and release, e.g. "Linux 6.1.0-18-amd64".
func Platform() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "Linux"
	}
	return unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
}
