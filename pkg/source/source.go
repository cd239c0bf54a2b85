// Package source reads battery status from the host. A Source performs one
// fresh query per Read and keeps no readings between calls.
package source

import (
	"context"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
)

// Names accepted by New.
const (
	NameAuto    = "auto"
	NameBattery = "battery"
	NameSMC     = "smc"
)

// ErrUnknownSource is returned by New for an unsupported source name.
var ErrUnknownSource = errors.New("unknown source")

// Source is a host backend. A returned error means the whole query failed.
// Partial failures are carried in the snapshot's per-field errors.
type Source interface {
	Read(ctx context.Context) (powerinfo.Snapshot, error)
	Name() string
}

// New returns the source for name. "auto" prefers the SMC on macOS and
// falls back to the generic battery source.
func New(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameAuto:
		if runtime.GOOS == "darwin" {
			s, err := NewSMC()
			if err == nil {
				return s, nil
			}
			logrus.WithError(err).Debug("smc source unavailable, falling back to battery source")
		}
		return NewBattery(), nil
	case NameBattery:
		return NewBattery(), nil
	case NameSMC:
		s, err := NewSMC()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Wrapf(ErrUnknownSource, "%q", name)
	}
}
