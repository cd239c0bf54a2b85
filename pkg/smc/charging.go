//go:build darwin

package smc

import "github.com/sirupsen/logrus"

// IsChargingEnabled returns whether charging is enabled. Enabled does not
// mean the battery draws power; the caller must also check the adapter.
func (c *AppleSMC) IsChargingEnabled() (bool, error) {
	logrus.Tracef("IsChargingEnabled called")

	v1, err := c.Read(ChargingKey1)
	if err != nil {
		return false, err
	}
	v2, err := c.Read(ChargingKey2)
	if err != nil {
		return false, err
	}

	ret := len(v1.Bytes) == 1 && v1.Bytes[0] == 0x0 &&
		len(v2.Bytes) == 1 && v2.Bytes[0] == 0x0
	logrus.Tracef("IsChargingEnabled returned %t", ret)

	return ret, nil
}
