//go:build !darwin && !linux

package osver

import "runtime"

// Platform returns the GOOS name. The version is not known on this platform.
func Platform() string {
	return runtime.GOOS
}
