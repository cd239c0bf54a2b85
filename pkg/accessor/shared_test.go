package accessor

import (
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
)

func resetShared(t *testing.T, fn func(string) (source.Source, error)) {
	t.Helper()
	orig := newSource
	newSource = fn
	sharedOnce = sync.Once{}
	shared = nil
	t.Cleanup(func() {
		newSource = orig
		sharedOnce = sync.Once{}
		shared = nil
	})
}

func TestShared(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		open      func(string) (source.Source, error)
		wantName  string
		wantLevel int32
	}{
		{
			name: "defaults to auto",
			open: func(name string) (source.Source, error) {
				if name != source.NameAuto {
					return nil, errors.Errorf("unexpected source %q", name)
				}
				return source.NewStatic(powerinfo.Snapshot{Present: true, Level: 64, State: powerinfo.Unplugged}), nil
			},
			wantName:  source.NameStatic,
			wantLevel: 64,
		},
		{
			name: "honors env",
			env:  source.NameBattery,
			open: func(name string) (source.Source, error) {
				if name != source.NameBattery {
					return nil, errors.Errorf("unexpected source %q", name)
				}
				return source.NewStatic(powerinfo.NoBattery()), nil
			},
			wantName:  source.NameStatic,
			wantLevel: -1,
		},
		{
			name: "open failure reports unavailable",
			env:  "bogus",
			open: func(name string) (source.Source, error) {
				return nil, source.ErrUnknownSource
			},
			wantName:  source.NameStatic,
			wantLevel: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSource, tt.env)
			resetShared(t, tt.open)

			a := Shared()
			if a != Shared() {
				t.Fatal("Shared() returned different accessors")
			}
			if got := a.Source().Name(); got != tt.wantName {
				t.Errorf("Source().Name() = %q, want %q", got, tt.wantName)
			}
			if got := a.GetLevel(); got != tt.wantLevel {
				t.Errorf("GetLevel() = %d, want %d", got, tt.wantLevel)
			}
		})
	}
}
