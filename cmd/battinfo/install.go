package main

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battinfo/pkg/config"
	daemonutils "github.com/charlie0129/battinfo/pkg/utils/daemon"
)

var gInstallation = "Installation:"

func init() {
	commandGroups = append(commandGroups, gInstallation)
}

// NewInstallCommand .
func NewInstallCommand() *cobra.Command {
	allowNonRootAccess := false

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install battinfo daemon (system-wide)",
		GroupID: gInstallation,
		Long: `Install battinfo daemon to launchd (macOS) or systemd (Linux).

This makes battinfo daemon run in the background and automatically start on boot. You must run this command as root.

By default, only root user is allowed to access the daemon. Use --allow-non-root-access to let other users query it without sudo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}

			conf.SetAllowNonRootAccess(allowNonRootAccess)
			if allowNonRootAccess {
				logrus.Info("non-root users are allowed to access the battinfo daemon.")
			} else {
				logrus.Info("only root user is allowed to access the battinfo daemon.")
			}

			exePath, err := daemonutils.CurrentExecutable()
			if err != nil {
				return err
			}

			// The service starts the daemon right away, so the config must
			// be on disk first.
			err = conf.Save()
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to save config")
			}

			err = daemonutils.Install(installOptions(exePath, allowNonRootAccess))
			if err != nil {
				if os.Geteuid() != 0 {
					logrus.Errorf("you must run this command as root")
				}
				return fmt.Errorf("failed to install daemon: %w", err)
			}

			logrus.Infof("installation succeeded")

			cmd.Printf("The service (%s) will use the current binary (%s) at startup, so do not move this binary. If it is moved or deleted, run `battinfo install' again.\n", daemonutils.ServicePath(), exePath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&allowNonRootAccess, "allow-non-root-access", false, "Allow non-root users to access battinfo daemon.")

	return cmd
}

// installOptions is the daemon command line the service manager runs.
func installOptions(exePath string, allowNonRootAccess bool) daemonutils.Options {
	return daemonutils.Options{
		Executable:         exePath,
		ConfigPath:         configPath,
		SocketPath:         unixSocketPath,
		AllowNonRootAccess: allowNonRootAccess,
	}
}

// NewUninstallCommand .
func NewUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Uninstall battinfo daemon (system-wide)",
		GroupID: gInstallation,
		Long: `Uninstall battinfo daemon from launchd (macOS) or systemd (Linux).

You must run this command as root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := daemonutils.Uninstall()
			if err != nil {
				if os.Geteuid() != 0 {
					logrus.Errorf("you must run this command as root")
				}
				return fmt.Errorf("failed to uninstall daemon: %w", err)
			}

			cmd.Println("successfully uninstalled")
			cmd.Printf("Your config is kept in %s. Remove it manually for a complete uninstall.\n", configPath)

			return nil
		},
	}
}
