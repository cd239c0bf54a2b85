package daemon

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const unitName = "battinfo.service"

var servicePath = "/etc/systemd/system/" + unitName

func render(opts Options) string {
	args := quoteArgs(opts.args(), func(s string) string {
		if strings.ContainsAny(s, " \t\"'\\") {
			return strconv.Quote(s)
		}
		return s
	})

	return joinLines(
		"[Unit]",
		"Description=battinfo battery status daemon",
		"",
		"[Service]",
		"Type=simple",
		"ExecStart="+strings.Join(args, " "),
		"ExecReload=/bin/kill -HUP $MAINPID",
		"Restart=on-failure",
		"",
		"[Install]",
		"WantedBy=multi-user.target",
	)
}

func systemctl(args ...string) error {
	out, err := exec.Command("systemctl", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s: %w: %s", strings.Join(args, " "), err, out)
	}
	return nil
}

func start() error {
	if err := systemctl("daemon-reload"); err != nil {
		return err
	}
	return systemctl("enable", "--now", unitName)
}

func stop() error {
	if err := systemctl("disable", "--now", unitName); err != nil {
		return err
	}
	return systemctl("daemon-reload")
}
