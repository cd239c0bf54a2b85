package accessor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
)

type panickingSource struct{}

func (panickingSource) Name() string { return "panicking" }
func (panickingSource) Read(context.Context) (powerinfo.Snapshot, error) {
	panic("ioctl exploded")
}

func TestAccessor_SimulatedHosts(t *testing.T) {
	tests := []struct {
		name         string
		src          source.Source
		wantLevel    int32
		wantCharging int32
		wantState    int32
	}{
		{
			name:         "no battery",
			src:          source.NewStatic(powerinfo.NoBattery()),
			wantLevel:    -1,
			wantCharging: 0,
			wantState:    0,
		},
		{
			name: "full and plugged in",
			src: source.NewStatic(powerinfo.Snapshot{
				Present: true, Level: 100, State: powerinfo.Full,
			}),
			wantLevel:    100,
			wantCharging: 0,
			wantState:    3,
		},
		{
			name: "75 percent plugged in charging",
			src: source.NewStatic(powerinfo.Snapshot{
				Present: true, Level: 75, State: powerinfo.Charging,
			}),
			wantLevel:    75,
			wantCharging: 1,
			wantState:    2,
		},
		{
			name: "on battery",
			src: source.NewStatic(powerinfo.Snapshot{
				Present: true, Level: 18, State: powerinfo.Unplugged,
			}),
			wantLevel:    18,
			wantCharging: 0,
			wantState:    1,
		},
		{
			name:         "host query failed",
			src:          source.NewFailing(errors.New("permission denied")),
			wantLevel:    -1,
			wantCharging: 0,
			wantState:    0,
		},
		{
			name:         "source panics",
			src:          panickingSource{},
			wantLevel:    -1,
			wantCharging: 0,
			wantState:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.src)
			if got := a.GetLevel(); got != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", got, tt.wantLevel)
			}
			if got := a.IsCharging(); got != tt.wantCharging {
				t.Errorf("IsCharging() = %v, want %v", got, tt.wantCharging)
			}
			if got := a.GetState(); got != tt.wantState {
				t.Errorf("GetState() = %v, want %v", got, tt.wantState)
			}
		})
	}
}

func TestAccessor_RangesAndIdempotence(t *testing.T) {
	states := []powerinfo.State{
		powerinfo.Unknown, powerinfo.Unplugged, powerinfo.Charging, powerinfo.Full, powerinfo.State(7),
	}
	for level := -5; level <= 105; level++ {
		for _, st := range states {
			a := New(source.NewStatic(powerinfo.Snapshot{Present: true, Level: level, State: st}))

			l, c, s := a.GetLevel(), a.IsCharging(), a.GetState()
			if l != -1 && (l < 0 || l > 100) {
				t.Fatalf("level %d, state %v: GetLevel() = %d out of range", level, st, l)
			}
			if c != 0 && c != 1 {
				t.Fatalf("level %d, state %v: IsCharging() = %d out of range", level, st, c)
			}
			if s < 0 || s > 3 {
				t.Fatalf("level %d, state %v: GetState() = %d out of range", level, st, s)
			}

			if a.GetLevel() != l || a.IsCharging() != c || a.GetState() != s {
				t.Fatalf("level %d, state %v: repeated calls disagree", level, st)
			}
		}
	}
}

func TestAccessor_Concurrent(t *testing.T) {
	a := New(source.NewStatic(powerinfo.Snapshot{Present: true, Level: 75, State: powerinfo.Charging}))

	wg := &sync.WaitGroup{}
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if a.GetLevel() != 75 || a.IsCharging() != 1 || a.GetState() != 2 {
				errs <- "unexpected reading"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
