package source

import (
	"context"

	"github.com/distatus/battery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
)

// Battery reads all batteries through github.com/distatus/battery, which
// covers Linux sysfs, macOS IOKit, Windows and the BSDs.
type Battery struct {
	getAll func() ([]*battery.Battery, error)
}

var _ Source = &Battery{}

// NewBattery returns a Battery source backed by the host.
func NewBattery() *Battery {
	return &Battery{getAll: battery.GetAll}
}

// Name implements Source.
func (b *Battery) Name() string {
	return NameBattery
}

// Read implements Source.
func (b *Battery) Read(ctx context.Context) (powerinfo.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return powerinfo.Snapshot{}, err
	}

	batteries, err := b.getAll()

	found := make([]*battery.Battery, 0, len(batteries))
	for _, bat := range batteries {
		if bat != nil {
			found = append(found, bat)
		}
	}

	if len(found) == 0 {
		if err != nil {
			return powerinfo.Snapshot{}, errors.Wrap(err, "failed to read batteries")
		}
		return powerinfo.NoBattery(), nil
	}

	if err != nil {
		// Some fields of some batteries could not be read. Whatever did not
		// come back is zero and is rejected below.
		logrus.WithError(err).Debug("partial battery read")
	}

	return snapshotFromBatteries(found), nil
}

// snapshotFromBatteries aggregates the level over all batteries. The state
// and detail come from the first one.
func snapshotFromBatteries(batteries []*battery.Battery) powerinfo.Snapshot {
	var totalCapacity, totalCharge float64
	for _, bat := range batteries {
		if bat.Design != 0 {
			totalCapacity += bat.Design
		} else {
			totalCapacity += bat.Full
		}
		totalCharge += bat.Current
	}

	first := batteries[0]
	state := mapState(first.State)

	snap := powerinfo.Snapshot{
		Present: true,
		State:   state,
		Battery: &powerinfo.Battery{
			State:         state,
			Current:       first.Current,
			Full:          first.Full,
			Design:        first.Design,
			ChargeRate:    first.ChargeRate,
			Voltage:       first.Voltage,
			DesignVoltage: first.DesignVoltage,
		},
	}
	if state == powerinfo.Unplugged && first.ChargeRate > 0 {
		snap.Battery.ChargeRate = -first.ChargeRate
	}

	// Prefer the ratio against the last full charge for a single battery,
	// which is what the OS shows to users.
	if len(batteries) == 1 && first.Full > 0 {
		totalCapacity = first.Full
	}
	snap.Level, snap.LevelErr = powerinfo.LevelFromRatio(totalCharge, totalCapacity)

	return snap
}

func mapState(s battery.State) powerinfo.State {
	switch s {
	case battery.Charging:
		return powerinfo.Charging
	case battery.Full:
		return powerinfo.Full
	case battery.Discharging, battery.Empty:
		return powerinfo.Unplugged
	default:
		return powerinfo.Unknown
	}
}
