package core

import "time"

// MetricsRecorder receives business outcome counters from the use cases
type MetricsRecorder interface {
	CheckoutCompleted(gateway, outcome string)
	WebhookProcessed(gateway, outcome string, elapsed time.Duration)
	DownloadAttempted(outcome string)
	NotificationSent(template, outcome string)
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

func (NoopMetrics) CheckoutCompleted(string, string) {}
func (NoopMetrics) WebhookProcessed(string, string, time.Duration) {}
func (NoopMetrics) DownloadAttempted(string) {}
func (NoopMetrics) NotificationSent(string, string) {}
