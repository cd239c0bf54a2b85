package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/battinfo/pkg/client"
)

var (
	logLevel       = "info"
	unixSocketPath = "/var/run/battinfo.sock"
	configPath     = "/etc/battinfo.json"
	direct         = false
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: battinfo daemon is not running")
		fmt.Fprintln(os.Stderr, "  - Start it with 'battinfo daemon'")
		fmt.Fprintln(os.Stderr, "  - Or query the battery without the daemon using '--direct'")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or restart the daemon with '--always-allow-non-root-access'")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battinfo",
		Short: "battinfo reports battery level, charging status and battery state",
		Long: `battinfo reports battery level, charging status and battery state.

Readings come from the battinfo daemon, or from the host directly with --direct.
Every command reads the host once; nothing is cached.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path (.json or .toml)")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "battinfo daemon unix socket path")
	globalFlags.BoolVar(&direct, "direct", false, "query the host in this process instead of the daemon")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewLevelCommand(),
		NewChargingCommand(),
		NewStateCommand(),
		NewStatusCommand(),
		NewCallCommand(),
		NewPlatformCommand(),
		NewConfigCommand(),
		NewDaemonCommand(),
		NewInstallCommand(),
		NewUninstallCommand(),
		NewVersionCommand(),
	)

	return cmd
}
