package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestReadConfig_DefaultsAndFile(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: memory
email:
  enabled: true
  from: desk@example.com
  admin_to: [ops@example.com]
  smtp:
    host: smtp.example.com
notification:
  transport: email
`)

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StoreDriver())
	assert.Equal(t, TransportEmail, cfg.NotificationTransport())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Notification.TimeoutSeconds)
	assert.Equal(t, "complaints", cfg.Nats.SubjectPrefix)
	assert.Equal(t, []string{"ops@example.com"}, cfg.Email.AdminTo)
}

func TestReadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "database:\n  driver: memory\n")
	t.Setenv("COMPLAINTDESK_SERVER_PORT", "9090")
	t.Setenv("COMPLAINTDESK_NOTIFICATION_TRANSPORT", "log")

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, TransportLog, cfg.NotificationTransport())
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	assert.Error(t, err)

	t.Setenv("COMPLAINTDESK_DATABASE_DRIVER", "memory")
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StoreDriver())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero value", func(*Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mongo" }, "database.driver"},
		{"unknown transport", func(c *Config) { c.Notification.Transport = "sms" }, "notification.transport"},
		{"email without admin", func(c *Config) { c.Email.Enabled = true }, "email.admin_to"},
		{"nats without url", func(c *Config) { c.Notification.Transport = "nats" }, "nats.url"},
		{"nats with url", func(c *Config) {
			c.Notification.Transport = "NATS"
			c.Nats.URL = "nats://localhost:4222"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
