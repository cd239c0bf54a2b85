package powerinfo

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoBattery is carried by a Snapshot when the host has no battery.
	ErrNoBattery = errors.New("no battery present")

	// ErrLevelOutOfRange is carried when the host reports a negative level.
	ErrLevelOutOfRange = errors.New("battery level out of range")
)

// Snapshot is a single host reading. Each field carries either a value or the
// reason it is unavailable, and is flattened to the integer encodings only at
// the boundary.
type Snapshot struct {
	Present bool

	Level    int
	LevelErr error

	State    State
	StateErr error

	// Battery is optional detail, nil when the source does not provide it.
	Battery *Battery
}

// NoBattery returns the snapshot of a host without battery hardware.
func NoBattery() Snapshot {
	return Snapshot{
		Present:  false,
		Level:    int(LevelUnavailable),
		LevelErr: ErrNoBattery,
		State:    Unknown,
		StateErr: ErrNoBattery,
	}
}

// Failed returns the snapshot used when the whole host query failed.
func Failed(err error) Snapshot {
	return Snapshot{
		Level:    int(LevelUnavailable),
		LevelErr: err,
		State:    Unknown,
		StateErr: err,
	}
}

// LevelFromRatio converts current/full into a percentage in [0,100].
// Controllers sometimes report current > full, so the result is clamped.
func LevelFromRatio(current, full float64) (int, error) {
	if full <= 0 {
		return int(LevelUnavailable), errors.Errorf("invalid full capacity %v", full)
	}
	if current < 0 {
		return int(LevelUnavailable), errors.Wrapf(ErrLevelOutOfRange, "current capacity %v", current)
	}

	return ClampLevel(int(current / full * 100))
}

// ClampLevel caps a percentage at 100. Negative values are unavailable.
func ClampLevel(level int) (int, error) {
	if level < 0 {
		return int(LevelUnavailable), errors.Wrapf(ErrLevelOutOfRange, "level %d", level)
	}
	if level > 100 {
		return 100, nil
	}
	return level, nil
}

// EncodeLevel flattens the level to [0,100] or -1.
func (s Snapshot) EncodeLevel() int32 {
	if !s.Present || s.LevelErr != nil {
		return LevelUnavailable
	}
	l, err := ClampLevel(s.Level)
	if err != nil {
		return LevelUnavailable
	}
	return int32(l)
}

// EncodeState flattens the state to its code. Unreadable states are Unknown.
func (s Snapshot) EncodeState() int32 {
	if !s.Present || s.StateErr != nil || !s.State.Valid() {
		return int32(Unknown)
	}
	return int32(s.State)
}

// EncodeCharging returns 1 only when the state is Charging. An unreadable
// state and a full battery both report 0.
func (s Snapshot) EncodeCharging() int32 {
	if s.EncodeState() == int32(Charging) {
		return ChargingTrue
	}
	return ChargingFalse
}
