// Package accessor exposes the battery level, charging flag and battery state
// as the integer encodings used across the C ABI.
//
// Every query reads the host once. Failures never reach the caller: they are
// flattened to -1 for the level and 0 for the charging flag and the state.
package accessor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
)

// Accessor is safe for concurrent use. It keeps no state besides the source.
type Accessor struct {
	src source.Source
}

// New returns an Accessor reading from src.
func New(src source.Source) *Accessor {
	return &Accessor{src: src}
}

// Source returns the underlying source.
func (a *Accessor) Source() source.Source {
	return a.src
}

// Snapshot reads the host once. Query failures and panics inside the source
// are returned as a failed snapshot, never as an error.
func (a *Accessor) Snapshot(ctx context.Context) (snap powerinfo.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("source %s panicked: %v", a.src.Name(), r)
			logrus.WithError(err).Error("battery query panicked")
			snap = powerinfo.Failed(err)
		}
	}()

	snap, err := a.src.Read(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": a.src.Name(),
		}).WithError(err).Debug("battery query failed")
		return powerinfo.Failed(err)
	}

	if snap.LevelErr != nil || snap.StateErr != nil {
		logrus.WithFields(logrus.Fields{
			"source":   a.src.Name(),
			"levelErr": snap.LevelErr,
			"stateErr": snap.StateErr,
		}).Debug("battery query incomplete")
	}

	return snap
}

// GetLevel returns the charge percentage in [0,100], or -1 if unavailable.
func (a *Accessor) GetLevel() int32 {
	return a.Snapshot(context.Background()).EncodeLevel()
}

// IsCharging returns 1 if the battery is charging, 0 otherwise. 0 is also
// returned when the charging status cannot be determined.
func (a *Accessor) IsCharging() int32 {
	return a.Snapshot(context.Background()).EncodeCharging()
}

// GetState returns 0 (unknown), 1 (unplugged), 2 (charging) or 3 (full).
func (a *Accessor) GetState() int32 {
	return a.Snapshot(context.Background()).EncodeState()
}
