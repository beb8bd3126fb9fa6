package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetPendingTasksQueryIsNotConstructed = errors.New(
	"GetPendingTasksQuery must be created via NewGetPendingTasksQuery constructor",
)

// GetPendingTasksQuery lists tasks nobody has started yet, across all drivers.
type GetPendingTasksQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingTasksQuery() GetPendingTasksQuery {
	return GetPendingTasksQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTasksQueryIsNotConstructed)
}

// PendingTask is the dispatcher board read model.
type PendingTask struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Kind           task.Kind
	ScheduledDate  kernel.Date
	Window         kernel.TimeWindow
	Street         string
	HasCoordinates bool
	DriverID       *kernel.UUID
	Sequence       *int
}

// GetPendingTasksQueryHandler reads pending tasks with a direct SQL query,
// ordered by date, then route position, then creation time.
type GetPendingTasksQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingTasksQueryHandler(db *gorm.DB) GetPendingTasksQueryHandler {
	return GetPendingTasksQueryHandler{db: db}
}

func (h GetPendingTasksQueryHandler) Handle(ctx context.Context, query GetPendingTasksQuery) ([]PendingTask, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]PendingTask, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			kind,
			scheduled_date,
			available_from,
			available_to,
			street,
			latitude IS NOT NULL AND longitude IS NOT NULL,
			driver_id,
			sequence_order
		FROM tasks
		WHERE status = ?
		ORDER BY scheduled_date, sequence_order NULLS LAST, created_at, id
	`, task.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pt             PendingTask
			id, orderID    uuid.UUID
			driverID       uuid.NullUUID
			kind           string
			date           time.Time
			fromMin, toMin sql.NullInt32
			sequence       sql.NullInt32
		)

		if err = rows.Scan(&id, &orderID, &kind, &date, &fromMin, &toMin,
			&pt.Street, &pt.HasCoordinates, &driverID, &sequence); err != nil {
			return nil, err
		}

		if pt.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if pt.OrderID, err = kernel.UUIDFromGoogle(orderID); err != nil {
			return nil, err
		}
		if pt.Kind, err = task.ParseKind(kind); err != nil {
			return nil, err
		}
		pt.ScheduledDate = kernel.DateOf(date)
		if pt.Window, err = windowFromMinutes(fromMin, toMin); err != nil {
			return nil, err
		}
		if driverID.Valid {
			d, idErr := kernel.UUIDFromGoogle(driverID.UUID)
			if idErr != nil {
				return nil, idErr
			}
			pt.DriverID = &d
		}
		if sequence.Valid {
			n := int(sequence.Int32)
			pt.Sequence = &n
		}

		tasks = append(tasks, pt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func windowFromMinutes(from, to sql.NullInt32) (kernel.TimeWindow, error) {
	var bounds [2]*kernel.TimeOfDay
	for i, v := range []sql.NullInt32{from, to} {
		if !v.Valid {
			continue
		}
		t, err := kernel.TimeOfDayFromMinutes(int(v.Int32))
		if err != nil {
			return kernel.TimeWindow{}, err
		}
		bounds[i] = &t
	}
	return kernel.NewTimeWindow(bounds[0], bounds[1])
}
