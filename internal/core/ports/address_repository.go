package ports

import (
	"context"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
)

// AddressRepository stores customer addresses referenced by tasks and orders.
type AddressRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// Update is used to write back coordinates found by geocoding.
	Update(ctx context.Context, a *address.Address) error
}
