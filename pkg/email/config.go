package email

import (
	"time"

	"github.com/Alijeyrad/complaintdesk/config"
)

// Config is the mailer view of config.EmailConfig.
type Config struct {
	Enabled bool
	From    string
	AdminTo []string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

// DefaultConfig is the base FromCentralConfig overlays onto.
func DefaultConfig() Config {
	return Config{
		SMTPPort:           587,
		SMTPUseTLS:         true,
		SMTPTimeoutSeconds: 30,
	}
}

func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig copies the email section over DefaultConfig. Zero SMTP
// port and timeout keep their defaults; TLS follows the config as given.
func FromCentralConfig(c config.EmailConfig) Config {
	out := DefaultConfig()
	out.Enabled = c.Enabled
	out.From = c.From
	out.AdminTo = append([]string(nil), c.AdminTo...)
	out.SMTPHost = c.SMTP.Host
	out.SMTPUsername = c.SMTP.Username
	out.SMTPPassword = c.SMTP.Password
	out.SMTPUseTLS = c.SMTP.UseTLS
	if c.SMTP.Port > 0 {
		out.SMTPPort = c.SMTP.Port
	}
	if c.SMTP.TimeoutSeconds > 0 {
		out.SMTPTimeoutSeconds = c.SMTP.TimeoutSeconds
	}
	return out
}
