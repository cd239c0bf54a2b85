package config

import "github.com/sirupsen/logrus"

type Config interface {
	// Source is the name of the host backend, see source.New.
	Source() string
	AllowNonRootAccess() bool
	// Metrics enables the /metrics endpoint of the daemon.
	Metrics() bool

	SetSource(string)
	SetAllowNonRootAccess(bool)
	SetMetrics(bool)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
