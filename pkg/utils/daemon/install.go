package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnsupported is returned on platforms without a known service manager.
var ErrUnsupported = errors.New("installing the daemon is not supported on this platform")

// Options controls how the daemon is started by the service manager.
type Options struct {
	// Executable is the absolute path of the battinfo binary.
	Executable string
	// ConfigPath and SocketPath are passed to `battinfo daemon`.
	ConfigPath string
	SocketPath string
	// AllowNonRootAccess adds --always-allow-non-root-access.
	AllowNonRootAccess bool
}

// CurrentExecutable resolves the absolute path of the running binary and makes
// sure it is executable by the service manager.
func CurrentExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get the path to the current executable: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return "", fmt.Errorf("failed to get the absolute path to the current executable: %w", err)
	}

	err = os.Chmod(exePath, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to chmod the current executable to 0755: %w", err)
	}

	return exePath, nil
}

// args is the daemon command line in the order the service file lists it.
func (o Options) args() []string {
	a := []string{o.Executable, "daemon"}
	if o.ConfigPath != "" {
		a = append(a, "--config="+o.ConfigPath)
	}
	if o.SocketPath != "" {
		a = append(a, "--daemon-socket="+o.SocketPath)
	}
	if o.AllowNonRootAccess {
		a = append(a, "--always-allow-non-root-access")
	}
	return a
}

// Render returns the service file contents for opts.
func Render(opts Options) (string, error) {
	if servicePath == "" {
		return "", ErrUnsupported
	}
	if opts.Executable == "" {
		return "", errors.New("executable path is empty")
	}
	return render(opts), nil
}

// Install writes the service file and starts the daemon.
func Install(opts Options) error {
	content, err := Render(opts)
	if err != nil {
		return err
	}

	logrus.Infof("current executable path: %s", opts.Executable)
	logrus.Infof("writing service file to %s", servicePath)

	err = os.MkdirAll(filepath.Dir(servicePath), 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(servicePath), err)
	}

	// warn if the file already exists
	_, err = os.Stat(servicePath)
	if err == nil {
		logrus.Warnf("%s already exists, overwriting", servicePath)
	}

	err = os.WriteFile(servicePath, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", servicePath, err)
	}

	// chown root:root (root:wheel on macOS)
	err = os.Chown(servicePath, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to chown %s: %w", servicePath, err)
	}

	logrus.Infof("starting battinfo daemon")

	return start()
}

// Uninstall stops the daemon and removes the service file.
func Uninstall() error {
	logrus.Infof("stopping battinfo daemon")

	if err := stop(); err != nil {
		return fmt.Errorf("failed to stop daemon: %w. Are you root?", err)
	}

	logrus.Infof("removing service file")

	err := os.Remove(servicePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w. Are you root?", servicePath, err)
	}

	return nil
}

// ServicePath is where Install writes the service file.
func ServicePath() string {
	return servicePath
}

func quoteArgs(args []string, quote func(string) string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, quote(a))
	}
	return out
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
