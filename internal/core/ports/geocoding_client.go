package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// GeocodingClient resolves free-form address text to coordinates.
type GeocodingClient interface {
	// Resolve returns nil with a nil error when the provider has no match.
	// Transport and provider failures are reported as ExternalUnavailable errors.
	Resolve(ctx context.Context, address string) (*kernel.GeoPoint, error)
}
