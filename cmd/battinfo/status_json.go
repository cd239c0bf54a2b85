package main

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
)

type statusJSON struct {
	Present  bool   `json:"present"`
	Level    int32  `json:"level"`
	Charging bool   `json:"charging"`
	State    string `json:"state"`
	// StateCode is the numeric state, 0 = unknown, 1 = unplugged, 2 = charging, 3 = full.
	StateCode int32  `json:"stateCode"`
	Source    string `json:"source"`
	Platform  string `json:"platform,omitempty"`
	// Battery is omitted when no details are available.
	Battery *statusBatteryJSON `json:"battery,omitempty"`
}

type statusBatteryJSON struct {
	FullCapacityWh      float64 `json:"fullCapacityWh"`
	DesignCapacityWh    float64 `json:"designCapacityWh"`
	ChargeRateWatts     float64 `json:"chargeRateWatts"`
	VoltageVolts        float64 `json:"voltageVolts"`
	TimeToFullMinutes   *int    `json:"timeToFullMinutes"`
	TimeRemainingMinute *int    `json:"timeRemainingMinutes"`
}

func printStatusJSON(cmd *cobra.Command, data *statusData) error {
	snap := data.snapshot

	out := statusJSON{
		Present:   snap.Present,
		Level:     snap.Level,
		Charging:  snap.Charging == powerinfo.ChargingTrue,
		State:     powerinfo.State(snap.State).String(),
		StateCode: snap.State,
		Source:    snap.Source,
		Platform:  data.platform,
	}

	if bat := data.batteryInfo; bat != nil {
		b := &statusBatteryJSON{
			FullCapacityWh:   round(bat.Full/1e3, 1),
			DesignCapacityWh: round(bat.Design/1e3, 1),
			ChargeRateWatts:  round(bat.ChargeRate/1e3, 1),
			VoltageVolts:     round(bat.Voltage, 2),
		}
		if m, ok := minutesToFull(bat); ok {
			b.TimeToFullMinutes = &m
		}
		if m, ok := minutesToEmpty(bat); ok {
			b.TimeRemainingMinute = &m
		}
		out.Battery = b
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
