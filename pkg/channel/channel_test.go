package channel

import (
	"context"
	"testing"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
)

func newTestHandler(snap powerinfo.Snapshot) *Handler {
	acc := accessor.New(source.NewStatic(snap))
	return NewHandler(acc, func() string { return "Linux 6.1.0" })
}

func TestHandler_Handle(t *testing.T) {
	charging := powerinfo.Snapshot{Present: true, Level: 75, State: powerinfo.Charging}

	tests := []struct {
		name      string
		snap      powerinfo.Snapshot
		method    string
		wantValue any
		wantCode  string
		wantNI    bool
	}{
		{
			name:      "platform version",
			snap:      charging,
			method:    MethodGetPlatformVersion,
			wantValue: "Linux 6.1.0",
		},
		{
			name:      "battery level",
			snap:      charging,
			method:    MethodGetBatteryLevel,
			wantValue: int32(75),
		},
		{
			name:     "battery level unavailable",
			snap:     powerinfo.NoBattery(),
			method:   MethodGetBatteryLevel,
			wantCode: CodeUnavailable,
		},
		{
			name:      "is charging",
			snap:      charging,
			method:    MethodIsCharging,
			wantValue: true,
		},
		{
			name:      "full is not charging",
			snap:      powerinfo.Snapshot{Present: true, Level: 100, State: powerinfo.Full},
			method:    MethodIsCharging,
			wantValue: false,
		},
		{
			name:      "battery state",
			snap:      powerinfo.Snapshot{Present: true, Level: 100, State: powerinfo.Full},
			method:    MethodGetBatteryState,
			wantValue: int32(3),
		},
		{
			name:      "battery state without battery",
			snap:      powerinfo.NoBattery(),
			method:    MethodGetBatteryState,
			wantValue: int32(0),
		},
		{
			name:   "unknown method",
			snap:   charging,
			method: "getTemperature",
			wantNI: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestHandler(tt.snap).Handle(context.Background(), Call{Method: tt.method})

			if res.NotImplemented != tt.wantNI {
				t.Fatalf("NotImplemented = %v, want %v", res.NotImplemented, tt.wantNI)
			}
			if tt.wantCode != "" {
				if res.Error == nil || res.Error.Code != tt.wantCode {
					t.Fatalf("Error = %+v, want code %s", res.Error, tt.wantCode)
				}
				return
			}
			if res.Error != nil {
				t.Fatalf("unexpected error %+v", res.Error)
			}
			if res.Value != tt.wantValue {
				t.Errorf("Value = %#v, want %#v", res.Value, tt.wantValue)
			}
		})
	}
}
