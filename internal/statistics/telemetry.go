package statistics

import (
	"github.com/markusressel/kraken2go/internal/device"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemDevice = "device"

// TelemetrySource provides the last known telemetry of a device
type TelemetrySource interface {
	DeviceId() string
	Last() (device.Telemetry, bool)
}

type TelemetryCollector struct {
	sources           []TelemetrySource
	liquidTemperature *prometheus.Desc
	fanRpm            *prometheus.Desc
	pumpRpm           *prometheus.Desc
}

func NewTelemetryCollector(sources ...TelemetrySource) *TelemetryCollector {
	return &TelemetryCollector{
		sources: sources,
		liquidTemperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemDevice, "liquid_temperature"),
			"Liquid temperature in °C, averaged over the telemetry window",
			[]string{"id"}, nil,
		),
		fanRpm: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemDevice, "fan_rpm"),
			"Current fan speed",
			[]string{"id"}, nil,
		),
		pumpRpm: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemDevice, "pump_rpm"),
			"Current pump speed",
			[]string{"id"}, nil,
		),
	}
}

func (collector *TelemetryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.liquidTemperature
	ch <- collector.fanRpm
	ch <- collector.pumpRpm
}

// Collect implements required collect function for all prometheus collectors
func (collector *TelemetryCollector) Collect(ch chan<- prometheus.Metric) {
	for _, source := range collector.sources {
		t, ok := source.Last()
		if !ok {
			continue
		}
		id := source.DeviceId()
		ch <- prometheus.MustNewConstMetric(collector.liquidTemperature, prometheus.GaugeValue, t.LiquidTemperature, id)
		ch <- prometheus.MustNewConstMetric(collector.fanRpm, prometheus.GaugeValue, t.FanRpm, id)
		ch <- prometheus.MustNewConstMetric(collector.pumpRpm, prometheus.GaugeValue, t.PumpRpm, id)
	}
}
