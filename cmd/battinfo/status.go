package main

import (
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/types"
)

type statusData struct {
	snapshot    *types.Snapshot
	batteryInfo *powerinfo.Battery // nil when unavailable
	platform    string
}

// fetchStatusData gathers all data required for the status command.
func fetchStatusData(q querier) (*statusData, error) {
	snap, err := q.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read battery: %w", err)
	}

	data := &statusData{snapshot: snap}

	if snap.Present {
		bat, err := q.BatteryInfo()
		if err != nil {
			logrus.Debugf("battery details unavailable: %v", err)
		} else {
			data.batteryInfo = bat
		}
	}

	res, err := q.Call(channel.MethodGetPlatformVersion, nil)
	if err == nil && res.Error == nil && !res.NotImplemented {
		data.platform = fmt.Sprint(res.Value)
	}

	return data, nil
}

func NewStatusCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Get the current battery status",
		Long:    `Get battery level, charging status, battery state and battery details.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQuerier()
			if err != nil {
				return err
			}

			data, err := fetchStatusData(q)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printStatusJSON(cmd, data)
			}

			printStatus(cmd, data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print status as JSON")

	return cmd
}

func printStatus(cmd *cobra.Command, data *statusData) {
	snap := data.snapshot

	cmd.Println(bold("Battery status:"))

	if !snap.Present {
		cmd.Println("  No battery found.")
	}

	if snap.Level == powerinfo.LevelUnavailable {
		cmd.Printf("  Level: %s\n", bold("unavailable"))
	} else {
		cmd.Printf("  Level: %s\n", bold("%d%%", snap.Level))
	}
	cmd.Printf("  Charging: %s\n", bool2Text(snap.Charging == powerinfo.ChargingTrue))
	cmd.Printf("  State: %s\n", bold("%s", stateText(powerinfo.State(snap.State))))

	if bat := data.batteryInfo; bat != nil {
		if minutes, ok := minutesToFull(bat); ok {
			cmd.Printf("  Time to full: %s\n", bold("~%d minutes", minutes))
		}
		if minutes, ok := minutesToEmpty(bat); ok {
			cmd.Printf("  Time remaining: %s\n", bold("~%d minutes", minutes))
		}
		cmd.Printf("  Full capacity: %s\n", bold("%.1f Wh", bat.Full/1e3))
		if bat.Design > 0 {
			cmd.Printf("  Design capacity: %s (health %s)\n",
				bold("%.1f Wh", bat.Design/1e3), bold("%d%%", int(math.Round(bat.Full/bat.Design*100))))
		}
		cmd.Printf("  Charge rate: %s\n", rateText(bat.ChargeRate/1e3))
		if bat.Voltage > 0 {
			cmd.Printf("  Voltage: %s\n", bold("%.2f V", bat.Voltage))
		}
	}

	cmd.Println()
	cmd.Println(bold("Host:"))
	if data.platform != "" {
		cmd.Printf("  Platform: %s\n", bold("%s", data.platform))
	}
	cmd.Printf("  Source: %s\n", bold("%s", snap.Source))
}

func stateText(s powerinfo.State) string {
	switch s {
	case powerinfo.Charging:
		return color.GreenString("charging")
	case powerinfo.Unplugged:
		return color.YellowString("unplugged")
	case powerinfo.Full:
		return "full"
	default:
		return "unknown"
	}
}

func rateText(watts float64) string {
	switch {
	case watts > 0:
		return color.New(color.Bold, color.FgGreen).Sprintf("%+.1f W", watts)
	case watts < 0:
		return color.New(color.Bold, color.FgRed).Sprintf("%+.1f W", watts)
	default:
		return bold("%+.1f W", watts)
	}
}

// minutesToFull estimates the charging time from the current charge rate.
func minutesToFull(bat *powerinfo.Battery) (int, bool) {
	if bat.State != powerinfo.Charging || bat.ChargeRate <= 0 || bat.Full <= bat.Current {
		return 0, false
	}
	return int((bat.Full - bat.Current) / bat.ChargeRate * 60), true
}

// minutesToEmpty estimates the remaining runtime from the current discharge rate.
func minutesToEmpty(bat *powerinfo.Battery) (int, bool) {
	if bat.State != powerinfo.Unplugged || bat.ChargeRate >= 0 || bat.Current <= 0 {
		return 0, false
	}
	return int(bat.Current / -bat.ChargeRate * 60), true
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
