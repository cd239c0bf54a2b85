//go:build darwin

package smc

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetBatteryCharge returns the battery charge in percent.
func (c *AppleSMC) GetBatteryCharge() (int, error) {
	logrus.Tracef("GetBatteryCharge called")

	v, err := c.Read(BatteryChargeKey)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read battery charge")
	}

	if len(v.Bytes) != 1 {
		return 0, errors.Errorf("incorrect data length %d!=1", len(v.Bytes))
	}

	return int(v.Bytes[0]), nil
}

// HasBattery returns whether the battery charge key exists. Desktop Macs
// do not expose it.
func (c *AppleSMC) HasBattery() bool {
	_, err := c.Read(BatteryChargeKey)
	return err == nil
}
