package client

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/config"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/types"
)

func (c *Client) GetLevel() (int32, error) {
	ret, err := c.Get("/level")
	if err != nil {
		return powerinfo.LevelUnavailable, pkgerrors.Wrapf(err, "failed to get battery level")
	}
	return parseInt32Response(ret)
}

func (c *Client) GetCharging() (bool, error) {
	ret, err := c.Get("/charging")
	if err != nil {
		return false, pkgerrors.Wrapf(err, "failed to get charging status")
	}
	return parseBoolResponse(ret)
}

func (c *Client) GetState() (powerinfo.State, error) {
	ret, err := c.Get("/state")
	if err != nil {
		return powerinfo.Unknown, pkgerrors.Wrapf(err, "failed to get battery state")
	}
	s, err := parseInt32Response(ret)
	if err != nil {
		return powerinfo.Unknown, err
	}
	return powerinfo.State(s), nil
}

func (c *Client) GetSnapshot() (*types.Snapshot, error) {
	ret, err := c.Get("/snapshot")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get snapshot")
	}

	var snap types.Snapshot
	if err := json.Unmarshal([]byte(ret), &snap); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal snapshot")
	}
	return &snap, nil
}

func (c *Client) GetBatteryInfo() (*powerinfo.Battery, error) {
	ret, err := c.Get("/battery-info")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get battery info")
	}

	var bat powerinfo.Battery
	if err := json.Unmarshal([]byte(ret), &bat); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery info")
	}

	return &bat, nil
}

// Call invokes a channel method. An unknown method is reported as a
// NotImplemented result, not as an error.
func (c *Client) Call(method string, args map[string]any) (*channel.Result, error) {
	data := ""
	if len(args) > 0 {
		b, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		data = string(b)
	}

	ret, err := c.Post("/channel/"+method, data)
	if err != nil {
		if errors.Is(err, ErrNotImplemented) {
			res := channel.NotImplemented()
			return &res, nil
		}
		return nil, pkgerrors.Wrapf(err, "failed to call %s", method)
	}

	var res channel.Result
	if err := json.Unmarshal([]byte(ret), &res); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal result of %s", method)
	}
	return &res, nil
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

func parseBoolResponse(resp string) (bool, error) {
	switch strings.TrimSpace(resp) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, pkgerrors.Errorf("unexpected response: %s", resp)
	}
}

func parseInt32Response(resp string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(resp), 10, 32)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "unexpected response: %s", resp)
	}
	return int32(v), nil
}
