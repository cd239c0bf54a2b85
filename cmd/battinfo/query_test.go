package main

import (
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/client"
	"github.com/charlie0129/battinfo/pkg/config"
	"github.com/charlie0129/battinfo/pkg/daemon"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
)

// serveDaemon starts a daemon for snap and returns a querier for it.
func serveDaemon(t *testing.T, snap powerinfo.Snapshot) querier {
	t.Helper()

	dir, err := os.MkdirTemp("", "battinfo")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	sock := filepath.Join(dir, "d.sock")

	l, err := net.Listen("unix", sock)
	if err != nil {
		t.Fatal(err)
	}
	s := daemon.NewServer(accessor.New(source.NewStatic(snap)), config.NewFileFromConfig(nil, ""))
	srv := &http.Server{Handler: s.Router()}
	go func() { _ = srv.Serve(l) }()
	t.Cleanup(func() { _ = srv.Close() })

	return &daemonQuerier{c: client.NewClient(sock)}
}

func TestQuerier_Encodings(t *testing.T) {
	snaps := []struct {
		name         string
		snap         powerinfo.Snapshot
		wantLevel    int32
		wantCharging int32
		wantState    int32
	}{
		{name: "no battery", snap: powerinfo.NoBattery(), wantLevel: -1, wantCharging: 0, wantState: 0},
		{
			name:         "charging at 75",
			snap:         powerinfo.Snapshot{Present: true, Level: 75, State: powerinfo.Charging},
			wantLevel:    75,
			wantCharging: 1,
			wantState:    2,
		},
		{
			name:         "full",
			snap:         powerinfo.Snapshot{Present: true, Level: 100, State: powerinfo.Full},
			wantLevel:    100,
			wantCharging: 0,
			wantState:    3,
		},
	}
	for _, tt := range snaps {
		queriers := map[string]querier{
			"direct": newDirectQuerier(accessor.New(source.NewStatic(tt.snap))),
			"daemon": serveDaemon(t, tt.snap),
		}
		for kind, q := range queriers {
			t.Run(tt.name+"/"+kind, func(t *testing.T) {
				checks := []struct {
					what string
					read func(querier) (int32, error)
					want int32
				}{
					{what: "Level", read: querier.Level, want: tt.wantLevel},
					{what: "Charging", read: querier.Charging, want: tt.wantCharging},
					{what: "State", read: querier.State, want: tt.wantState},
				}
				for _, c := range checks {
					got, err := c.read(q)
					if err != nil {
						t.Fatalf("%s() error = %v", c.what, err)
					}
					if got != c.want {
						t.Errorf("%s() = %d, want %d", c.what, got, c.want)
					}
				}
			})
		}
	}
}
