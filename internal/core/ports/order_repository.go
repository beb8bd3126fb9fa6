package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository gives read access to customer orders. Orders are owned by
// another subsystem; dispatch never changes them.
type OrderRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
