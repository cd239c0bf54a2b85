//go:build darwin

package smc

// SMC keys for arm64 (Apple Silicon)
const (
	ACPowerKey       = "AC-W"
	ChargingKey1     = "CH0B"
	ChargingKey2     = "CH0C"
	BatteryChargeKey = "BUIC"
)
