//go:build darwin

package smc

// SMC keys for amd64 (Intel 64). Not verified on hardware.
const (
	ACPowerKey       = "AC-W"
	ChargingKey1     = "CH0B"
	ChargingKey2     = "CH0C"
	BatteryChargeKey = "BBIF"
)
