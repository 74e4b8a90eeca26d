// Package metrics содержит счетчики Prometheus для операций сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Статусы завершения для экспортных задач
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics содержит коллекторы Prometheus. Все операции потокобезопасны.
type Metrics struct {
	signalsCreated *prometheus.CounterVec
	validations    prometheus.Counter
	routePlans     prometheus.Counter
	hotspotQueries prometheus.Counter
	exportJobs     *prometheus.CounterVec
}

// NewMetrics создает коллекторы. Регистрация выполняется отдельно через Register.
func NewMetrics() *Metrics {
	return &Metrics{
		signalsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "safety_signals_created_total",
				Help: "Total number of safety signals ingested, by severity",
			},
			[]string{"severity"},
		),
		validations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "signal_validations_total",
				Help: "Total number of signal validations recorded",
			},
		),
		routePlans: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "route_plans_total",
				Help: "Total number of route risk profiles computed",
			},
		),
		hotspotQueries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hotspot_queries_total",
				Help: "Total number of hotspot detection queries",
			},
		),
		exportJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "export_jobs_total",
				Help: "Total number of export jobs processed, by status",
			},
			[]string{"status"},
		),
	}
}

// Register регистрирует все коллекторы в реестре
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.signalsCreated,
		m.validations,
		m.routePlans,
		m.hotspotQueries,
		m.exportJobs,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) SignalCreated(severity string) {
	m.signalsCreated.WithLabelValues(severity).Inc()
}

func (m *Metrics) ValidationRecorded() {
	m.validations.Inc()
}

func (m *Metrics) RoutePlanned() {
	m.routePlans.Inc()
}

func (m *Metrics) HotspotQuery() {
	m.hotspotQueries.Inc()
}

func (m *Metrics) ExportJob(status string) {
	m.exportJobs.WithLabelValues(status).Inc()
}
