package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PushMessage mirrors the body Google Pub/Sub posts to push subscribers, so a
// worker written for Pub/Sub push can consume it unchanged.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// HTTPPushSender POSTs notifications to a single endpoint.
type HTTPPushSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPPushSender(endpoint string, logger *slog.Logger) *HTTPPushSender {
	return &HTTPPushSender{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With("component", "notification"),
	}
}

func (s *HTTPPushSender) NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error {
	data, err := json.Marshal(newDriverNotification(driverID, message))
	if err != nil {
		return errors.WithStack(err)
	}

	var push PushMessage
	push.Subscription = "projects/local/subscriptions/driver-notifications"
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = map[string]string{"driver_id": driverID.String()}
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	s.logger.DebugContext(ctx, "driver notification pushed",
		slog.String("driver_id", driverID.String()),
		slog.String("message_id", push.Message.MessageID),
	)
	return nil
}

func (s *HTTPPushSender) Close() error {
	return nil
}
