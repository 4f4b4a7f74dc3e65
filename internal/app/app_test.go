package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/complaintdesk/config"
	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/internal/service/notification"
	"github.com/Alijeyrad/complaintdesk/pkg/email"
)

func mailer(t *testing.T, enabled bool) *email.Client {
	t.Helper()
	c, err := email.New(email.Config{Enabled: enabled, SMTPHost: "smtp.example.com", AdminTo: []string{"ops@example.com"}})
	require.NoError(t, err)
	return c
}

func TestProvideSink(t *testing.T) {
	cfg := &config.Config{}

	sink, err := ProvideSink(cfg, mailer(t, true), nil)
	require.NoError(t, err)
	assert.IsType(t, &notification.EmailSink{}, sink)

	sink, err = ProvideSink(cfg, mailer(t, false), nil)
	require.NoError(t, err)
	assert.IsType(t, notification.LogSink{}, sink)

	cfg.Notification.Transport = config.TransportLog
	sink, err = ProvideSink(cfg, mailer(t, true), nil)
	require.NoError(t, err)
	assert.IsType(t, notification.LogSink{}, sink)

	cfg.Notification.Transport = config.TransportNats
	_, err = ProvideSink(cfg, mailer(t, true), nil)
	assert.Error(t, err)
}

func TestProvideStore_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverMemory

	assert.IsType(t, &repo.MemoryStore{}, ProvideStore(cfg, nil))
}

func TestNotificationTimeoutAndAppName(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, time.Duration(0), notificationTimeout(cfg))
	assert.Equal(t, "complaintdesk", appName(cfg))

	cfg.Notification.TimeoutSeconds = 5
	cfg.Observability.ServiceName = "desk"
	assert.Equal(t, 5*time.Second, notificationTimeout(cfg))
	assert.Equal(t, "desk", appName(cfg))
}
