package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/pkg/email"
)

// Mailer is the subset of *email.Client used by EmailSink.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
	AdminRecipients() []string
}

// EmailSink mails the configured admin addresses.
type EmailSink struct {
	mailer  Mailer
	appName string
}

func NewEmailSink(mailer Mailer, appName string) *EmailSink {
	return &EmailSink{mailer: mailer, appName: appName}
}

func (s *EmailSink) Send(ctx context.Context, event Event, c *repo.Complaint) error {
	to := s.mailer.AdminRecipients()
	if len(to) == 0 {
		return ErrNoRecipients
	}

	data := emailData(c, s.appName)
	var msg email.Message
	switch event {
	case EventCreated:
		msg = email.BuildNewComplaintEmail(to, data)
	case EventStatusChanged:
		msg = email.BuildStatusUpdateEmail(to, data)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return s.mailer.Send(ctx, msg)
}

func emailData(c *repo.Complaint, appName string) email.ComplaintEmailData {
	return email.ComplaintEmailData{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      string(c.Category),
		Priority:      string(c.Priority),
		Status:        string(c.Status),
		DateSubmitted: c.DateSubmitted,
		UpdatedAt:     c.UpdatedAt,
		AppName:       appName,
	}
}

// Publisher is the subset of *nats.Conn used by NatsSink.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Envelope is the wire form of an event published to NATS.
type Envelope struct {
	Event      Event          `json:"event"`
	Complaint  repo.Complaint `json:"complaint"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NatsSink publishes events on "<prefix>.<event>" for the worker to deliver.
type NatsSink struct {
	pub    Publisher
	prefix string
}

func NewNatsSink(pub Publisher, prefix string) *NatsSink {
	if prefix == "" {
		prefix = "complaints"
	}
	return &NatsSink{pub: pub, prefix: prefix}
}

func Subject(prefix string, event Event) string {
	return prefix + "." + string(event)
}

func (s *NatsSink) Send(_ context.Context, event Event, c *repo.Complaint) error {
	if !event.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	data, err := json.Marshal(Envelope{Event: event, Complaint: *c, OccurredAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}
	if err := s.pub.Publish(Subject(s.prefix, event), data); err != nil {
		return fmt.Errorf("publish %s event: %w", event, err)
	}
	return nil
}

// DecodeEnvelope parses a message produced by NatsSink.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode event: %w", err)
	}
	if !env.Event.Valid() {
		return Envelope{}, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Event)
	}
	return env, nil
}

// LogSink only records the event. Used when no transport is configured.
type LogSink struct{}

func (LogSink) Send(ctx context.Context, event Event, c *repo.Complaint) error {
	slog.InfoContext(ctx, "complaint event",
		"event", string(event),
		"complaint_id", c.ID,
		"status", string(c.Status),
		"priority", string(c.Priority),
	)
	return nil
}
