package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// NotificationSender delivers a short message to a driver's device.
// Callers treat delivery as best effort.
type NotificationSender interface {
	NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error
}
