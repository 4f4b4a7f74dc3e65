package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/complaintdesk/config"
	"github.com/Alijeyrad/complaintdesk/internal/service/notification"
	"github.com/Alijeyrad/complaintdesk/pkg/email"
	"github.com/Alijeyrad/complaintdesk/pkg/observability"
)

const notifierQueue = "complaintdesk-notifier"

// WorkerModule consumes complaint events from NATS and mails them.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	NC      *nats.Conn
	Mailer  *email.Client
	Metrics *observability.ComplaintMetrics
}

func RegisterWorkers(p WorkerParams) error {
	if p.NC == nil {
		return errors.New("worker needs nats.url to be configured")
	}

	var sink notification.Sink = notification.NewEmailSink(p.Mailer, appName(p.Cfg))
	if !p.Mailer.IsEnabled() {
		slog.Warn("notification_worker: email disabled, events will only be logged")
		sink = notification.LogSink{}
	}
	d := notification.NewDispatcher(sink, notificationTimeout(p.Cfg), p.Metrics)

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startNotificationWorker(p.NC, p.Cfg.Nats.SubjectPrefix, d)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if sub != nil {
				_ = sub.Unsubscribe()
			}
			return d.Drain(ctx)
		},
	})
	return nil
}

func startNotificationWorker(nc *nats.Conn, prefix string, d *notification.Dispatcher) (*nats.Subscription, error) {
	if prefix == "" {
		prefix = "complaints"
	}
	subject := prefix + ".*"

	sub, err := nc.QueueSubscribe(subject, notifierQueue, func(msg *nats.Msg) {
		env, err := notification.DecodeEnvelope(msg.Data)
		if err != nil {
			slog.Warn("notification_worker: dropping message", "subject", msg.Subject, "err", err)
			return
		}
		d.Dispatch(env.Event, &env.Complaint)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe failed", "subject", subject, "err", err)
		return nil, err
	}

	slog.Info("notification_worker: started", "subject", subject, "queue", notifierQueue)
	return sub, nil
}
