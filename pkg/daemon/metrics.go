package daemon

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
)

const namespace = "battinfo"

// Collector reads the host on every scrape. Nothing is cached between scrapes.
type Collector struct {
	acc *accessor.Accessor

	present  *prometheus.Desc
	level    *prometheus.Desc
	charging *prometheus.Desc
	state    *prometheus.Desc
}

var _ prometheus.Collector = &Collector{}

// NewCollector returns a Collector for acc.
func NewCollector(acc *accessor.Accessor) *Collector {
	return &Collector{
		acc: acc,
		present: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "battery", "present"),
			"Whether a battery was found (1) or not (0).",
			nil, nil,
		),
		level: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "battery", "level_percent"),
			"Battery charge in percent, -1 if unavailable.",
			nil, nil,
		),
		charging: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "battery", "charging"),
			"Whether the battery is charging (1) or not or unknown (0).",
			nil, nil,
		),
		state: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "battery", "state"),
			"Battery state, 1 for the current state and 0 for the others.",
			[]string{"state"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.present
	ch <- c.level
	ch <- c.charging
	ch <- c.state
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.acc.Snapshot(context.Background())

	present := 0.0
	if snap.Present {
		present = 1
	}
	ch <- prometheus.MustNewConstMetric(c.present, prometheus.GaugeValue, present)
	ch <- prometheus.MustNewConstMetric(c.level, prometheus.GaugeValue, float64(snap.EncodeLevel()))
	ch <- prometheus.MustNewConstMetric(c.charging, prometheus.GaugeValue, float64(snap.EncodeCharging()))

	current := powerinfo.State(snap.EncodeState())
	for _, s := range []powerinfo.State{powerinfo.Unknown, powerinfo.Unplugged, powerinfo.Charging, powerinfo.Full} {
		v := 0.0
		if s == current {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(c.state, prometheus.GaugeValue, v, s.String())
	}
}
