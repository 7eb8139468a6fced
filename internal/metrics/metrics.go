package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const metricsNamespace = "forcer"

const (
	SubsystemInclusion = "inclusion"
	SubsystemQueue     = "queue"
)

// Config ... Metrics server configuration
type Config struct {
	Host              string
	Port              int
	Enabled           bool
	ReadHeaderTimeout int
}

// Metricer ... Interface for metrics
type Metricer interface {
	RecordInvocation(outcome string)
	RecordStageLatency(stage core.Stage, took time.Duration)
	RecordQueueState(count, readCounter, backlog, forceable uint64)
	RecordSubmission(status core.TxStatus)
	RecordAlertGenerated(class string)
	RecordNodeError(network core.Network)
	Start()
}

// Metrics ... Metrics struct
type Metrics struct {
	Invocations     *prometheus.CounterVec
	StageLatency    *prometheus.HistogramVec
	QueueLength     prometheus.Gauge
	ReadCounter     prometheus.Gauge
	Backlog         prometheus.Gauge
	Forceable       prometheus.Gauge
	Submissions     *prometheus.CounterVec
	AlertsGenerated *prometheus.CounterVec
	NodeErrors      *prometheus.CounterVec

	registry *prometheus.Registry
	server   *http.Server
}

var _ Metricer = (*Metrics)(nil)

// New ... Initializer
func New(ctx context.Context, cfg *Config) (*Metrics, func(), error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	m := &Metrics{
		Invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "invocations_total",
			Help:      "Number of force inclusion invocations by outcome",
			Namespace: metricsNamespace,
			Subsystem: SubsystemInclusion,
		}, []string{"outcome"}),

		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "stage_latency_seconds",
			Help:      "Time spent in each force inclusion stage",
			Namespace: metricsNamespace,
			Subsystem: SubsystemInclusion,
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"stage"}),

		QueueLength: factory.NewGauge(prometheus.GaugeOpts{
			Name:      "length",
			Help:      "Number of messages ever appended to the delayed inbox",
			Namespace: metricsNamespace,
			Subsystem: SubsystemQueue,
		}),

		ReadCounter: factory.NewGauge(prometheus.GaugeOpts{
			Name:      "read_counter",
			Help:      "Number of delayed messages read by the sequencer inbox",
			Namespace: metricsNamespace,
			Subsystem: SubsystemQueue,
		}),

		Backlog: factory.NewGauge(prometheus.GaugeOpts{
			Name:      "backlog",
			Help:      "Number of delayed messages not yet read by the sequencer inbox",
			Namespace: metricsNamespace,
			Subsystem: SubsystemQueue,
		}),

		Forceable: factory.NewGauge(prometheus.GaugeOpts{
			Name:      "forceable",
			Help:      "Number of unread delayed messages past the inclusion threshold",
			Namespace: metricsNamespace,
			Subsystem: SubsystemQueue,
		}),

		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "submissions_total",
			Help:      "Number of force inclusion transactions by final status",
			Namespace: metricsNamespace,
			Subsystem: SubsystemInclusion,
		}, []string{"status"}),

		AlertsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "alerts_generated_total",
			Help:      "Number of alerts generated by error class",
			Namespace: metricsNamespace,
		}, []string{"class"}),

		NodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "node_errors_total",
			Help:      "Number of node errors caught",
			Namespace: metricsNamespace,
		}, []string{"network"}),

		registry: registry,
	}

	m.server = initServer(cfg, registry)

	stop := func() {
		logging.WithContext(ctx).Info("Starting to shutdown metrics server")
		if err := m.server.Shutdown(ctx); err != nil {
			logging.WithContext(ctx).Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}

	return m, stop, nil
}

// Registry ... Returns the registry backing the metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordInvocation ... Counts a force inclusion invocation by outcome
func (m *Metrics) RecordInvocation(outcome string) {
	m.Invocations.WithLabelValues(outcome).Inc()
}

// RecordStageLatency ... Observes how long a pipeline stage took
func (m *Metrics) RecordStageLatency(stage core.Stage, took time.Duration) {
	m.StageLatency.WithLabelValues(stage.String()).Observe(took.Seconds())
}

// RecordQueueState ... Sets the delayed queue gauges
func (m *Metrics) RecordQueueState(count, readCounter, backlog, forceable uint64) {
	m.QueueLength.Set(float64(count))
	m.ReadCounter.Set(float64(readCounter))
	m.Backlog.Set(float64(backlog))
	m.Forceable.Set(float64(forceable))
}

// RecordSubmission ... Counts a force inclusion transaction by status
func (m *Metrics) RecordSubmission(status core.TxStatus) {
	m.Submissions.WithLabelValues(status.String()).Inc()
}

// RecordAlertGenerated ... Counts an alert by error class
func (m *Metrics) RecordAlertGenerated(class string) {
	m.AlertsGenerated.WithLabelValues(class).Inc()
}

// RecordNodeError ... Counts a failed rpc interaction by network
func (m *Metrics) RecordNodeError(network core.Network) {
	m.NodeErrors.WithLabelValues(network.String()).Inc()
}

type noopMetricer struct{}

var NoopMetrics Metricer = new(noopMetricer)

func (n *noopMetricer) RecordInvocation(_ string)                        {}
func (n *noopMetricer) RecordStageLatency(_ core.Stage, _ time.Duration) {}
func (n *noopMetricer) RecordQueueState(_, _, _, _ uint64)               {}
func (n *noopMetricer) RecordSubmission(_ core.TxStatus)                 {}
func (n *noopMetricer) RecordAlertGenerated(_ string)                    {}
func (n *noopMetricer) RecordNodeError(_ core.Network)                   {}
func (n *noopMetricer) Start()                                           {}
