//go:build darwin

package source

import (
	"context"

	"github.com/pkg/errors"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/smc"
)

// SMC reads the Apple System Management Controller directly.
type SMC struct {
	conn *smc.AppleSMC
}

var _ Source = &SMC{}

// NewSMC opens the SMC. The connection stays open for the process lifetime.
func NewSMC() (*SMC, error) {
	conn := smc.New()
	if err := conn.Open(); err != nil {
		return nil, errors.Wrap(err, "failed to open smc")
	}
	return &SMC{conn: conn}, nil
}

// NewSMCWithConnection wraps an already opened connection.
func NewSMCWithConnection(conn *smc.AppleSMC) *SMC {
	return &SMC{conn: conn}
}

// Name implements Source.
func (s *SMC) Name() string {
	return NameSMC
}

// Close closes the SMC connection.
func (s *SMC) Close() error {
	return s.conn.Close()
}

// Read implements Source.
func (s *SMC) Read(ctx context.Context) (powerinfo.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return powerinfo.Snapshot{}, err
	}

	if !s.conn.HasBattery() {
		return powerinfo.NoBattery(), nil
	}

	snap := powerinfo.Snapshot{Present: true}

	charge, err := s.conn.GetBatteryCharge()
	if err != nil {
		snap.Level, snap.LevelErr = int(powerinfo.LevelUnavailable), err
	} else {
		snap.Level, snap.LevelErr = powerinfo.ClampLevel(charge)
	}

	snap.State, snap.StateErr = s.readState(snap.Level, snap.LevelErr)

	return snap, nil
}

func (s *SMC) readState(level int, levelErr error) (powerinfo.State, error) {
	pluggedIn, err := s.conn.IsPluggedIn()
	if err != nil {
		return powerinfo.Unknown, errors.Wrap(err, "failed to check if plugged in")
	}
	if !pluggedIn {
		return powerinfo.Unplugged, nil
	}

	if levelErr == nil && level >= 100 {
		return powerinfo.Full, nil
	}

	enabled, err := s.conn.IsChargingEnabled()
	if err != nil {
		return powerinfo.Unknown, errors.Wrap(err, "failed to check charging status")
	}
	if !enabled {
		// Plugged in but held by a charge limit. The battery neither
		// charges nor discharges.
		return powerinfo.Unknown, nil
	}

	return powerinfo.Charging, nil
}
