package main

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/client"
	"github.com/charlie0129/battinfo/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)

			if direct {
				return
			}
			v, err := client.NewClient(unixSocketPath).GetVersion()
			if err != nil {
				logrus.Debugf("daemon version unavailable: %v", err)
				return
			}
			cmd.Printf("daemon: %s\n", v)
		},
	}
}

// newEncodedCommand prints one boundary encoding of the current reading.
func newEncodedCommand(use, short, long string, read func(querier) (int32, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		GroupID: gBasic,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQuerier()
			if err != nil {
				return err
			}

			v, err := read(q)
			if err != nil {
				return fmt.Errorf("failed to read battery: %w", err)
			}

			cmd.Println(v)
			return nil
		},
	}
}

func NewLevelCommand() *cobra.Command {
	return newEncodedCommand(
		"level",
		"Print battery level",
		`Print battery level.

This is a percentage from 0 to 100, or -1 if the level is unavailable (no battery, permission denied, query failure).`,
		querier.Level,
	)
}

func NewChargingCommand() *cobra.Command {
	return newEncodedCommand(
		"charging",
		"Print whether the battery is charging",
		`Print whether the battery is charging.

Prints 1 if the battery is charging, 0 otherwise. 0 is also printed when the charging status cannot be determined. A full battery is not charging.`,
		querier.Charging,
	)
}

func NewStateCommand() *cobra.Command {
	return newEncodedCommand(
		"state",
		"Print battery state",
		`Print battery state.

0 = unknown, 1 = unplugged, 2 = charging, 3 = full`,
		querier.State,
	)
}

func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Print the configuration of the running daemon",
		GroupID: gAdvanced,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := client.NewClient(unixSocketPath).GetConfig()
			if err != nil {
				return err
			}

			b, err := json.MarshalIndent(conf, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(b))
			return nil
		},
	}
}

func NewPlatformCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "platform",
		Short:   "Print OS name and version",
		GroupID: gAdvanced,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQuerier()
			if err != nil {
				return err
			}

			res, err := q.Call(channel.MethodGetPlatformVersion, nil)
			if err != nil {
				return err
			}

			cmd.Println(res.Value)
			return nil
		},
	}
}

func NewCallCommand() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:     "call [method]",
		Short:   "Invoke a method channel call",
		GroupID: gAdvanced,
		Long: fmt.Sprintf(`Invoke a method channel call and print the result as JSON.

Known methods: %s, %s, %s, %s.`,
			channel.MethodGetPlatformVersion,
			channel.MethodGetBatteryLevel,
			channel.MethodIsCharging,
			channel.MethodGetBatteryState,
		),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var callArgs map[string]any
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &callArgs); err != nil {
					return fmt.Errorf("invalid arguments: %v", err)
				}
			}

			q, err := newQuerier()
			if err != nil {
				return err
			}

			res, err := q.Call(args[0], callArgs)
			if err != nil {
				return err
			}

			if res.NotImplemented {
				logrus.Warnf("method %s is not implemented", args[0])
			}

			b, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "call arguments as a JSON object")

	return cmd
}
