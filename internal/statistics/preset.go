package statistics

import (
	"github.com/markusressel/kraken2go/internal/engine"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemPreset = "preset"

// SnapshotSource provides the current preset state of a device
type SnapshotSource interface {
	DeviceId() string
	Snapshot() engine.Snapshot
}

type PresetCollector struct {
	source    SnapshotSource
	committed *prometheus.Desc
	colors    *prometheus.Desc
	dirty     *prometheus.Desc
}

func NewPresetCollector(source SnapshotSource) *PresetCollector {
	return &PresetCollector{
		source: source,
		committed: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPreset, "committed_info"),
			"Committed mode and speed of a channel, always 1",
			[]string{"id", "channel", "mode", "speed"}, nil,
		),
		colors: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPreset, "colors"),
			"Number of committed colors of a channel",
			[]string{"id", "channel"}, nil,
		),
		dirty: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPreset, "dirty"),
			"1 if the live colors of a channel differ from the committed ones",
			[]string{"id", "channel"}, nil,
		),
	}
}

func (collector *PresetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.committed
	ch <- collector.colors
	ch <- collector.dirty
}

// Collect implements required collect function for all prometheus collectors
func (collector *PresetCollector) Collect(ch chan<- prometheus.Metric) {
	id := collector.source.DeviceId()
	snapshot := collector.source.Snapshot()

	dirty := map[string]bool{}
	for _, channel := range snapshot.DirtyChannels {
		dirty[channel.String()] = true
	}

	for channel, p := range snapshot.Committed {
		name := channel.String()
		ch <- prometheus.MustNewConstMetric(collector.committed, prometheus.GaugeValue, 1, id, name, p.Mode, p.Speed)
		ch <- prometheus.MustNewConstMetric(collector.colors, prometheus.GaugeValue, float64(len(p.Colors)), id, name)
		value := 0.0
		if dirty[name] {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(collector.dirty, prometheus.GaugeValue, value, id, name)
	}
}
