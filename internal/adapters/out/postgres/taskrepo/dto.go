// Package taskrepo persists the task aggregate. Scheduled dates are stored as
// SQL dates, availability windows as minutes after midnight and photo paths as
// a text array.
package taskrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TaskDTO is the row layout of the tasks table.
type TaskDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Kind          string         `gorm:"type:varchar(16);not null"`
	Status        string         `gorm:"type:varchar(16);not null;index"`
	ScheduledDate time.Time      `gorm:"type:date;not null;index:idx_tasks_driver_date,priority:2"`
	AvailableFrom *int           `gorm:"type:int"`
	AvailableTo   *int           `gorm:"type:int"`
	Street        string         `gorm:"type:text;not null"`
	Latitude      *float64       `gorm:"type:double precision"`
	Longitude     *float64       `gorm:"type:double precision"`
	AddressID     *uuid.UUID     `gorm:"type:uuid"`
	DriverID      *uuid.UUID     `gorm:"type:uuid;index:idx_tasks_driver_date,priority:1"`
	SequenceOrder *int           `gorm:"type:int"`
	ContactName   string         `gorm:"type:varchar(255)"`
	ContactPhone  string         `gorm:"type:varchar(64)"`
	ArrivalTime   *time.Time     `gorm:"type:timestamptz"`
	CompletedAt   *time.Time     `gorm:"type:timestamptz"`
	CancelledAt   *time.Time     `gorm:"type:timestamptz"`
	SignaturePath string         `gorm:"type:text"`
	PhotoPaths    pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time      `gorm:"type:timestamptz;not null"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(t *task.Task) TaskDTO {
	dto := TaskDTO{
		ID:            t.ID().Bytes(),
		OrderID:       t.OrderID().Bytes(),
		Kind:          t.Kind().String(),
		Status:        t.Status().String(),
		ScheduledDate: t.ScheduledDate().Time(),
		Street:        t.Address().Street(),
		AddressID:     googleID(t.AddressID()),
		DriverID:      googleID(t.DriverID()),
		SequenceOrder: t.Sequence(),
		ContactName:   t.Contact().Name,
		ContactPhone:  t.Contact().Phone,
		ArrivalTime:   t.ArrivalTime(),
		CompletedAt:   t.CompletedAt(),
		CancelledAt:   t.CancelledAt(),
		SignaturePath: t.SignaturePath(),
		PhotoPaths:    pq.StringArray(t.PhotoPaths()),
		CreatedAt:     t.CreatedAt(),
	}

	if from := t.Window().From(); from != nil {
		m := from.Minutes()
		dto.AvailableFrom = &m
	}
	if to := t.Window().To(); to != nil {
		m := to.Minutes()
		dto.AvailableTo = &m
	}
	if p := t.Location(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		dto.Latitude, dto.Longitude = &lat, &lon
	}

	return dto
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	kind, err := task.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := task.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	from, err := optionalTimeOfDay(dto.AvailableFrom)
	if err != nil {
		return nil, err
	}
	to, err := optionalTimeOfDay(dto.AvailableTo)
	if err != nil {
		return nil, err
	}
	window, err := kernel.NewTimeWindow(from, to)
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPointFromOptional(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(dto.Street, point)
	if err != nil {
		return nil, err
	}

	addressID, err := domainID(dto.AddressID)
	if err != nil {
		return nil, err
	}
	driverID, err := domainID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(task.Snapshot{
		ID:            id,
		OrderID:       orderID,
		Kind:          kind,
		Status:        status,
		ScheduledDate: kernel.DateOf(dto.ScheduledDate),
		Window:        window,
		Address:       address,
		AddressID:     addressID,
		DriverID:      driverID,
		Sequence:      dto.SequenceOrder,
		Contact:       task.Contact{Name: dto.ContactName, Phone: dto.ContactPhone},
		ArrivalTime:   dto.ArrivalTime,
		CompletedAt:   dto.CompletedAt,
		CancelledAt:   dto.CancelledAt,
		SignaturePath: dto.SignaturePath,
		PhotoPaths:    []string(dto.PhotoPaths),
		CreatedAt:     dto.CreatedAt,
	})
}

func optionalTimeOfDay(minutes *int) (*kernel.TimeOfDay, error) {
	if minutes == nil {
		return nil, nil
	}
	t, err := kernel.TimeOfDayFromMinutes(*minutes)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func googleID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
