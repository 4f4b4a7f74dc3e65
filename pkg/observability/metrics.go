package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/Alijeyrad/complaintdesk"

// ComplaintMetrics holds the domain counters exported next to the HTTP ones.
// It reads the global meter provider, so it is a no-op until InitTelemetry runs.
type ComplaintMetrics struct {
	created       metric.Int64Counter
	notifications metric.Int64Counter
}

func NewComplaintMetrics() *ComplaintMetrics {
	meter := otel.Meter(meterName)

	created, _ := meter.Int64Counter(
		"complaints_created_total",
		metric.WithDescription("Complaints persisted"),
		metric.WithUnit("{complaint}"),
	)
	notifications, _ := meter.Int64Counter(
		"complaint_notifications_total",
		metric.WithDescription("Complaint notifications by event and outcome"),
		metric.WithUnit("{notification}"),
	)

	return &ComplaintMetrics{created: created, notifications: notifications}
}

func (m *ComplaintMetrics) ComplaintCreated(ctx context.Context, category string) {
	if m == nil {
		return
	}
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}

// NotificationResult records one dispatch; outcome is "sent" or "failed".
func (m *ComplaintMetrics) NotificationResult(ctx context.Context, event, outcome string) {
	if m == nil {
		return
	}
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", event),
		attribute.String("outcome", outcome),
	))
}
