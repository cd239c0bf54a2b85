package types

import "github.com/charlie0129/battinfo/pkg/powerinfo"

// Snapshot is the flattened reading served by the daemon.
// This struct is shared between the daemon and client packages.
type Snapshot struct {
	Present  bool   `json:"present"`
	Level    int32  `json:"level"`
	Charging int32  `json:"charging"`
	State    int32  `json:"state"`
	Source   string `json:"source"`
}

// NewSnapshot flattens a host reading to its boundary encodings.
func NewSnapshot(snap powerinfo.Snapshot, source string) Snapshot {
	return Snapshot{
		Present:  snap.Present,
		Level:    snap.EncodeLevel(),
		Charging: snap.EncodeCharging(),
		State:    snap.EncodeState(),
		Source:   source,
	}
}
