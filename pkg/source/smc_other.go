//go:build !darwin

package source

import (
	"github.com/pkg/errors"
)

// ErrSMCUnsupported is returned by NewSMC outside macOS.
var ErrSMCUnsupported = errors.New("smc is only available on macOS")

// NewSMC is only available on macOS.
func NewSMC() (Source, error) {
	return nil, ErrSMCUnsupported
}
