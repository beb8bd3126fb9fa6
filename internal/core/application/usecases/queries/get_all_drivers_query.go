package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery lists every driver with their shift state and last known position.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is the driver read model. Location is nil when
// the driver never reported a position.
type GetAllDriversQueryResponse struct {
	ID          kernel.UUID
	Name        string
	IsAvailable bool
	Location    *kernel.GeoPoint
}

// GetAllDriversQueryHandler reads drivers with a direct SQL query.
//
// Example:
//
//	handler := NewGetAllDriversQueryHandler(db)
//	drivers, err := handler.Handle(ctx, NewGetAllDriversQuery())
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle returns drivers sorted by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			is_available,
			latitude,
			longitude
		FROM drivers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d GetAllDriversQueryResponse
		var lat, lon sql.NullFloat64
		var id uuid.UUID

		if err = rows.Scan(&id, &d.Name, &d.IsAvailable, &lat, &lon); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		d.ID = driverID

		location, locErr := kernel.NewGeoPointFromOptional(nullFloat(lat), nullFloat(lon))
		if locErr != nil {
			return nil, locErr
		}
		d.Location = location

		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
