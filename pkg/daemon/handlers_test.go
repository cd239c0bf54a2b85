package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/config"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
	"github.com/charlie0129/battinfo/pkg/types"
)

func newTestServer(snap powerinfo.Snapshot) *Server {
	acc := accessor.New(source.NewStatic(snap))
	return NewServer(acc, config.NewFileFromConfig(nil, ""))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestServer_Queries(t *testing.T) {
	charging := powerinfo.Snapshot{Present: true, Level: 75, State: powerinfo.Charging}
	full := powerinfo.Snapshot{Present: true, Level: 100, State: powerinfo.Full}

	tests := []struct {
		name     string
		snap     powerinfo.Snapshot
		path     string
		wantCode int
		wantBody string
	}{
		{name: "level", snap: charging, path: "/level", wantCode: 200, wantBody: "75"},
		{name: "level unavailable", snap: powerinfo.NoBattery(), path: "/level", wantCode: 200, wantBody: "-1"},
		{name: "charging", snap: charging, path: "/charging", wantCode: 200, wantBody: "true"},
		{name: "full is not charging", snap: full, path: "/charging", wantCode: 200, wantBody: "false"},
		{name: "state", snap: full, path: "/state", wantCode: 200, wantBody: "3"},
		{name: "state unknown", snap: powerinfo.NoBattery(), path: "/state", wantCode: 200, wantBody: "0"},
		{name: "no battery info", snap: powerinfo.NoBattery(), path: "/battery-info", wantCode: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestServer(tt.snap), http.MethodGet, tt.path, "")
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && strings.TrimSpace(w.Body.String()) != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
			if w.Header().Get(requestIDHeader) == "" {
				t.Errorf("missing %s header", requestIDHeader)
			}
		})
	}
}

func TestServer_Snapshot(t *testing.T) {
	s := newTestServer(powerinfo.Snapshot{Present: true, Level: 75, State: powerinfo.Charging})
	w := do(t, s, http.MethodGet, "/snapshot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got types.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	want := types.Snapshot{Present: true, Level: 75, Charging: 1, State: 2, Source: source.NameStatic}
	if got != want {
		t.Errorf("snapshot = %+v, want %+v", got, want)
	}
}

func TestServer_BatteryInfo(t *testing.T) {
	s := newTestServer(powerinfo.Snapshot{
		Present: true,
		Level:   50,
		State:   powerinfo.Unplugged,
		Battery: &powerinfo.Battery{State: powerinfo.Unplugged, Current: 20000, Full: 40000, ChargeRate: -7000},
	})
	w := do(t, s, http.MethodGet, "/battery-info", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got powerinfo.Battery
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if got.ChargeRate != -7000 || got.State != powerinfo.Unplugged {
		t.Errorf("battery = %+v", got)
	}
}

func TestServer_Channel(t *testing.T) {
	tests := []struct {
		name      string
		snap      powerinfo.Snapshot
		method    string
		body      string
		wantCode  int
		wantError string
	}{
		{
			name:     "battery level",
			snap:     powerinfo.Snapshot{Present: true, Level: 42, State: powerinfo.Unplugged},
			method:   channel.MethodGetBatteryLevel,
			wantCode: http.StatusOK,
		},
		{
			name:      "battery level unavailable",
			snap:      powerinfo.NoBattery(),
			method:    channel.MethodGetBatteryLevel,
			wantCode:  http.StatusOK,
			wantError: channel.CodeUnavailable,
		},
		{
			name:     "with arguments",
			snap:     powerinfo.NoBattery(),
			method:   channel.MethodGetPlatformVersion,
			body:     `{"verbose": true}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "bad arguments",
			snap:     powerinfo.NoBattery(),
			method:   channel.MethodGetPlatformVersion,
			body:     `[1, 2`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not implemented",
			snap:     powerinfo.NoBattery(),
			method:   "getTemperature",
			wantCode: http.StatusNotImplemented,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestServer(tt.snap), http.MethodPost, "/channel/"+tt.method, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var res channel.Result
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}
			if tt.wantError == "" && res.Error != nil {
				t.Errorf("unexpected error %+v", res.Error)
			}
			if tt.wantError != "" && (res.Error == nil || res.Error.Code != tt.wantError) {
				t.Errorf("error = %+v, want code %s", res.Error, tt.wantError)
			}
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(powerinfo.Snapshot{Present: true, Level: 75, State: powerinfo.Charging})
	w := do(t, s, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"battinfo_battery_present 1",
		"battinfo_battery_level_percent 75",
		"battinfo_battery_charging 1",
		`battinfo_battery_state{state="charging"} 1`,
		`battinfo_battery_state{state="full"} 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	conf := config.NewFileFromConfig(nil, "")
	conf.SetMetrics(false)
	s := NewServer(accessor.New(source.NewStatic(powerinfo.NoBattery())), conf)

	w := do(t, s, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServer_RequestIDPropagates(t *testing.T) {
	s := newTestServer(powerinfo.NoBattery())
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(requestIDHeader, "abc")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "abc" {
		t.Errorf("%s = %q, want abc", requestIDHeader, got)
	}
}
