package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "fedoraconnector"

// Observer captures telemetry for Fedora requests, renders and imports.
type Observer interface {
	RecordFedoraRequest(duration time.Duration, err error)
	RecordRender(strategy string)
	RecordImport(importer string, err error)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordFedoraRequest(time.Duration, error) {}
func (Nop) RecordRender(string)                      {}
func (Nop) RecordImport(string, error)               {}

// PrometheusObserver exports the application's metrics to Prometheus.
type PrometheusObserver struct {
	requestDuration prometheus.Histogram
	requestErrors   prometheus.Counter
	renders         *prometheus.CounterVec
	imports         *prometheus.CounterVec
}

// NewPrometheusObserver registers the metrics on reg, or on the default registerer if reg is nil.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "fedora_request_duration_seconds",
			Help:      "Latency of requests made to Fedora servers.",
			Buckets:   prometheus.DefBuckets,
		}),
		requestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "fedora_request_errors_total",
			Help:      "Count of failed requests to Fedora servers.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "renders_total",
			Help:      "Datastream renders by display strategy.",
		}, []string{"strategy"}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "imports_total",
			Help:      "Metadata imports by importer and result.",
		}, []string{"importer", "result"}),
	}

	collectors := []prometheus.Collector{o.requestDuration, o.requestErrors, o.renders, o.imports}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return o, nil
}

func (o *PrometheusObserver) RecordFedoraRequest(duration time.Duration, err error) {
	o.requestDuration.Observe(duration.Seconds())
	if err != nil {
		o.requestErrors.Inc()
	}
}

func (o *PrometheusObserver) RecordRender(strategy string) {
	o.renders.WithLabelValues(strategy).Inc()
}

func (o *PrometheusObserver) RecordImport(importer string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	o.imports.WithLabelValues(importer, result).Inc()
}
