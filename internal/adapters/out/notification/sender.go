// Package notification delivers "route updated" messages to drivers. The
// message is wrapped in a DriverNotification event and handed to one of the
// configured transports: the application log, an HTTP push endpoint shaped
// like a Pub/Sub push subscription, or Google Cloud Pub/Sub.
package notification

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/pkg/errors"
)

const (
	ProviderLog    = "log"
	ProviderHTTP   = "http"
	ProviderPubSub = "pubsub"
)

// DriverNotification is the payload published for every route change.
type DriverNotification struct {
	DriverID string    `json:"driverId"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sentAt"`
}

func newDriverNotification(driverID kernel.UUID, message string) DriverNotification {
	return DriverNotification{
		DriverID: driverID.String(),
		Message:  message,
		SentAt:   time.Now().UTC(),
	}
}

// Sender is a ports.NotificationSender that owns transport resources.
type Sender interface {
	NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error
	Close() error
}

type Config struct {
	Provider     string
	HTTPEndpoint string
	ProjectID    string
	TopicID      string
}

// NewSender picks the transport named by cfg.Provider. An empty provider
// falls back to the log sender.
func NewSender(ctx context.Context, cfg Config, logger *slog.Logger) (Sender, error) {
	switch cfg.Provider {
	case "", ProviderLog:
		logger.Info("driver notifications are written to the log")
		return NewLogSender(logger), nil

	case ProviderHTTP:
		if cfg.HTTPEndpoint == "" {
			return nil, errors.New("http endpoint is required for http provider")
		}
		logger.Info("driver notifications are pushed over HTTP", slog.String("endpoint", cfg.HTTPEndpoint))
		return NewHTTPPushSender(cfg.HTTPEndpoint, logger), nil

	case ProviderPubSub:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}
		return NewPubSubSender(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
}

// LogSender records notifications in the application log only.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "notification")}
}

func (s *LogSender) NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error {
	s.logger.InfoContext(ctx, "driver notified",
		slog.String("driver_id", driverID.String()),
		slog.String("message", message),
	)
	return nil
}

func (s *LogSender) Close() error {
	return nil
}
