package daemon

import (
	"fmt"
	"html"
	"os/exec"
	"strings"
)

const label = "cc.chlc.battinfo"

var servicePath = "/Library/LaunchDaemons/" + label + ".plist"

func render(opts Options) string {
	args := quoteArgs(opts.args(), func(s string) string {
		return "\t\t<string>" + html.EscapeString(s) + "</string>"
	})

	return joinLines(
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`,
		`<plist version="1.0">`,
		`<dict>`,
		"\t<key>Label</key>",
		"\t<string>"+label+"</string>",
		"\t<key>ProgramArguments</key>",
		"\t<array>",
		strings.Join(args, "\n"),
		"\t</array>",
		"\t<key>RunAtLoad</key>",
		"\t<true/>",
		"\t<key>KeepAlive</key>",
		"\t<true/>",
		`</dict>`,
		`</plist>`,
	)
}

func start() error {
	out, err := exec.Command("/bin/launchctl", "load", servicePath).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w: %s", servicePath, err, out)
	}
	return nil
}

func stop() error {
	out, err := exec.Command("/bin/launchctl", "unload", servicePath).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to unload %s: %w: %s", servicePath, err, out)
	}
	return nil
}
