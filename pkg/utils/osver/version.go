package osver

import "fmt"

// Version represents an OS version with major, minor, and patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the string representation of a Version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
