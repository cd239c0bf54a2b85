package source

import (
	"context"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
)

// NameStatic is the name of the Static source. It cannot be selected by New.
const NameStatic = "static"

// Static returns a fixed reading. It simulates a host in tests and lets
// embedders feed readings obtained elsewhere.
type Static struct {
	Snapshot powerinfo.Snapshot
	Err      error
}

var _ Source = &Static{}

// NewStatic returns a source that always reports snap.
func NewStatic(snap powerinfo.Snapshot) *Static {
	return &Static{Snapshot: snap}
}

// NewFailing returns a source whose query always fails with err.
func NewFailing(err error) *Static {
	return &Static{Err: err}
}

// Name implements Source.
func (s *Static) Name() string {
	return NameStatic
}

// Read implements Source.
func (s *Static) Read(_ context.Context) (powerinfo.Snapshot, error) {
	if s.Err != nil {
		return powerinfo.Snapshot{}, s.Err
	}
	return s.Snapshot, nil
}
