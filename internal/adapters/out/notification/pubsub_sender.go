package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// PubSubSender publishes notifications to a Google Cloud Pub/Sub topic.
type PubSubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewPubSubSender connects to Pub/Sub and checks that the topic exists.
func NewPubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*PubSubSender, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("driver notifications are published to Pub/Sub",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &PubSubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger.With("component", "notification"),
	}, nil
}

// NotifyDriver blocks until the server acknowledges the message.
func (s *PubSubSender) NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error {
	data, err := json.Marshal(newDriverNotification(driverID, message))
	if err != nil {
		return errors.WithStack(err)
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"driver_id": driverID.String()},
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	s.logger.DebugContext(ctx, "driver notification published",
		slog.String("driver_id", driverID.String()),
		slog.String("server_id", serverID),
	)
	return nil
}

func (s *PubSubSender) Close() error {
	if s.publisher != nil {
		s.publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}
	return nil
}
