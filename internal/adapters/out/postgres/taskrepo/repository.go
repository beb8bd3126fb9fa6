package taskrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Add saves a new task to the database.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every column of the task, so cleared fields such as the
// sequence number or driver are stored as NULL.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TaskDTO{}).Where("id = ?", dto.ID).Select("*").Omit("created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a task with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released immediately.
func (r *GormTaskRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormTaskRepository) get(db *gorm.DB, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTaskRepository) ListByDriverAndDate(
	ctx context.Context,
	driverID kernel.UUID,
	date kernel.Date,
) ([]*task.Task, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.find(r.db.WithContext(ctx).
		Where("driver_id = ? AND scheduled_date = ?", driverID.Bytes(), date.Time()).
		Order("created_at, id"))
}

func (r *GormTaskRepository) ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*task.Task, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.find(r.db.WithContext(ctx).
		Where("driver_id = ?", driverID.Bytes()).
		Order("scheduled_date, sequence_order NULLS LAST, created_at, id"))
}

func (r *GormTaskRepository) ListPending(ctx context.Context) ([]*task.Task, error) {
	return r.find(r.db.WithContext(ctx).
		Where("status = ?", task.StatusPending.String()).
		Order("scheduled_date, created_at, id"))
}

func (r *GormTaskRepository) ListUnassigned(ctx context.Context, date kernel.Date) ([]*task.Task, error) {
	return r.find(r.db.WithContext(ctx).
		Where("status = ? AND driver_id IS NULL AND scheduled_date = ?", task.StatusPending.String(), date.Time()).
		Order("created_at, id"))
}

// ListMissingCoordinates returns the oldest non-terminal tasks with no
// coordinates first.
func (r *GormTaskRepository) ListMissingCoordinates(ctx context.Context, limit int) ([]*task.Task, error) {
	if limit <= 0 {
		return []*task.Task{}, nil
	}

	return r.find(r.db.WithContext(ctx).
		Where("(latitude IS NULL OR longitude IS NULL) AND status IN ?",
			[]string{task.StatusPending.String(), task.StatusInProgress.String()}).
		Order("created_at, id").
		Limit(limit))
}

func (r *GormTaskRepository) find(query *gorm.DB) ([]*task.Task, error) {
	var dtos []TaskDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
