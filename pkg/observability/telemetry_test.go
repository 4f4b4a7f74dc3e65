package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTelemetry_WithoutExporterEndpoint(t *testing.T) {
	p, err := InitTelemetry(context.Background(), Config{
		ServiceName:    "complaintdesk-test",
		ServiceVersion: "test",
		Environment:    "test",
	})
	require.NoError(t, err)
	require.NotNil(t, p.TracerProvider)
	require.NotNil(t, p.MeterProvider)

	m := NewComplaintMetrics()
	m.ComplaintCreated(context.Background(), "Service")
	m.NotificationResult(context.Background(), "created", "sent")

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestComplaintMetrics_NilSafe(t *testing.T) {
	var m *ComplaintMetrics
	assert.NotPanics(t, func() {
		m.ComplaintCreated(context.Background(), "Product")
		m.NotificationResult(context.Background(), "created", "failed")
	})
}
