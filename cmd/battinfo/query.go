package main

import (
	"context"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/client"
	"github.com/charlie0129/battinfo/pkg/config"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/source"
	"github.com/charlie0129/battinfo/pkg/types"
	"github.com/charlie0129/battinfo/pkg/utils/osver"
)

// querier is where CLI commands read from: the daemon or the host.
type querier interface {
	Level() (int32, error)
	Charging() (int32, error)
	State() (int32, error)
	Snapshot() (*types.Snapshot, error)
	BatteryInfo() (*powerinfo.Battery, error)
	Call(method string, args map[string]any) (*channel.Result, error)
}

func newQuerier() (querier, error) {
	if !direct {
		return &daemonQuerier{c: client.NewClient(unixSocketPath)}, nil
	}

	conf, err := config.NewFile(configPath)
	if err != nil {
		return nil, err
	}
	src, err := source.New(conf.Source())
	if err != nil {
		return nil, err
	}
	return newDirectQuerier(accessor.New(src)), nil
}

type daemonQuerier struct {
	c *client.Client
}

func (q *daemonQuerier) Level() (int32, error) {
	return q.c.GetLevel()
}

func (q *daemonQuerier) Charging() (int32, error) {
	charging, err := q.c.GetCharging()
	if err != nil {
		return powerinfo.ChargingFalse, err
	}
	if charging {
		return powerinfo.ChargingTrue, nil
	}
	return powerinfo.ChargingFalse, nil
}

func (q *daemonQuerier) State() (int32, error) {
	s, err := q.c.GetState()
	return int32(s), err
}

func (q *daemonQuerier) Snapshot() (*types.Snapshot, error) {
	return q.c.GetSnapshot()
}

func (q *daemonQuerier) BatteryInfo() (*powerinfo.Battery, error) {
	return q.c.GetBatteryInfo()
}

func (q *daemonQuerier) Call(method string, args map[string]any) (*channel.Result, error) {
	return q.c.Call(method, args)
}

type directQuerier struct {
	acc *accessor.Accessor
	ch  *channel.Handler
}

func newDirectQuerier(acc *accessor.Accessor) *directQuerier {
	return &directQuerier{
		acc: acc,
		ch:  channel.NewHandler(acc, osver.Platform),
	}
}

func (q *directQuerier) Level() (int32, error) {
	return q.acc.GetLevel(), nil
}

func (q *directQuerier) Charging() (int32, error) {
	return q.acc.IsCharging(), nil
}

func (q *directQuerier) State() (int32, error) {
	return q.acc.GetState(), nil
}

func (q *directQuerier) Snapshot() (*types.Snapshot, error) {
	snap := types.NewSnapshot(q.acc.Snapshot(context.Background()), q.acc.Source().Name())
	return &snap, nil
}

func (q *directQuerier) BatteryInfo() (*powerinfo.Battery, error) {
	snap := q.acc.Snapshot(context.Background())
	if !snap.Present || snap.Battery == nil {
		if snap.LevelErr != nil {
			return nil, snap.LevelErr
		}
		return nil, powerinfo.ErrNoBattery
	}
	return snap.Battery, nil
}

func (q *directQuerier) Call(method string, args map[string]any) (*channel.Result, error) {
	res := q.ch.Handle(context.Background(), channel.Call{Method: method, Arguments: args})
	return &res, nil
}
