package powerinfo

// State represents the coarse power relationship between the battery and the
// device. The numeric values are part of the C ABI and must not change.
type State int32

const (
	// Unknown indicates the state could not be determined.
	Unknown State = iota
	// Unplugged indicates the device runs on battery.
	Unplugged
	// Charging indicates the battery is actively charging.
	Charging
	// Full indicates the device is plugged in and the battery is full.
	Full
)

// String returns a camelCase name of the state.
func (s State) String() string {
	switch s {
	case Unplugged:
		return "unplugged"
	case Charging:
		return "charging"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= Unknown && s <= Full
}

// Boundary encodings.
const (
	// LevelUnavailable is returned as the level when it cannot be read.
	LevelUnavailable int32 = -1
	// ChargingTrue and ChargingFalse encode the charging flag.
	ChargingTrue  int32 = 1
	ChargingFalse int32 = 0
)

// Battery is a detailed reading of the (first) battery.
// Units:
// - Current, Full, Design: mWh
// - ChargeRate: mW (negative when discharging)
// - Voltage, DesignVoltage: Volts
type Battery struct {
	State         State   `json:"state"`
	Current       float64 `json:"current"`
	Full          float64 `json:"full"`
	Design        float64 `json:"design"`
	ChargeRate    float64 `json:"chargeRate"`
	Voltage       float64 `json:"voltage"`
	DesignVoltage float64 `json:"designVoltage"`
}
