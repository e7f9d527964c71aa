package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "payment_entitlement"

// PrometheusRecorder exports business and HTTP metrics to Prometheus
type PrometheusRecorder struct {
	checkouts       *prometheus.CounterVec
	webhooks        *prometheus.CounterVec
	webhookDuration *prometheus.HistogramVec
	downloads       *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewPrometheusRecorder creates the collectors and registers them with reg
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		checkouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_total",
				Help:      "Checkout attempts by gateway and outcome",
			},
			[]string{"gateway", "outcome"},
		),
		webhooks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhooks_total",
				Help:      "Gateway notifications by gateway and outcome",
			},
			[]string{"gateway", "outcome"},
		),
		webhookDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "webhook_duration_seconds",
				Help:      "Time spent reconciling one notification",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"gateway"},
		),
		downloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "downloads_total",
				Help:      "Update download attempts by outcome",
			},
			[]string{"outcome"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Notification emails by template and outcome",
			},
			[]string{"template", "outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	for _, c := range []prometheus.Collector{
		r.checkouts, r.webhooks, r.webhookDuration, r.downloads, r.notifications, r.httpRequests, r.httpDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) CheckoutCompleted(gateway, outcome string) {
	r.checkouts.WithLabelValues(gateway, outcome).Inc()
}

func (r *PrometheusRecorder) WebhookProcessed(gateway, outcome string, elapsed time.Duration) {
	r.webhooks.WithLabelValues(gateway, outcome).Inc()
	r.webhookDuration.WithLabelValues(gateway).Observe(elapsed.Seconds())
}

func (r *PrometheusRecorder) DownloadAttempted(outcome string) {
	r.downloads.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRecorder) NotificationSent(template, outcome string) {
	r.notifications.WithLabelValues(template, outcome).Inc()
}

// ObserveHTTP records one served request; route is the matched pattern, not the raw path
func (r *PrometheusRecorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
