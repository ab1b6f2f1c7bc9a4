package statistics

import (
	"github.com/markusressel/kraken2go/internal/curves"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemCurve = "curve"

type CurveCollector struct {
	curves []*curves.ControlCurve
	duty   *prometheus.Desc
	points *prometheus.Desc
}

func NewCurveCollector(curves ...*curves.ControlCurve) *CurveCollector {
	return &CurveCollector{
		curves: curves,
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemCurve, "duty"),
			"Duty in percent the curve computes for the current liquid temperature",
			[]string{"id"}, nil,
		),
		points: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemCurve, "points"),
			"Number of control points of the curve",
			[]string{"id"}, nil,
		),
	}
}

func (collector *CurveCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.duty
	ch <- collector.points
}

// Collect implements required collect function for all prometheus collectors
func (collector *CurveCollector) Collect(ch chan<- prometheus.Metric) {
	for _, curve := range collector.curves {
		curveId := curve.Id()
		ch <- prometheus.MustNewConstMetric(collector.points, prometheus.GaugeValue, float64(curve.Len()), curveId)
		if marker, ok := curve.Live(); ok {
			ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(marker.Duty), curveId)
		}
	}
}
