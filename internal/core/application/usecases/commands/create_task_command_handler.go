package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"
)

// CreateTaskCommandHandler resolves the task address and contact from the
// order when they are not given, then stores a new pending task.
type CreateTaskCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateTaskCommandHandler(uowFactory UoWFactory) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{uowFactory: uowFactory}
}

func (h CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	input := cmd.Address()
	addressID := input.AddressID
	if addressID == nil && input.Street == "" {
		addressID = o.AddressID()
	}

	var location kernel.Address
	switch {
	case addressID != nil:
		stored, getErr := uow.AddressRepository().Get(ctx, *addressID)
		if getErr != nil {
			return getErr
		}
		location = stored.Location()
	case input.Street != "":
		location, err = kernel.NewAddress(input.Street, input.Point)
		if err != nil {
			return err
		}
	default:
		return errs.NewValueIsRequiredError("address")
	}

	contact := cmd.Contact()
	if contact.Name == "" {
		contact.Name = o.CustomerName()
	}
	if contact.Phone == "" {
		contact.Phone = o.CustomerPhone()
	}

	t, err := task.NewTask(
		cmd.TaskID(),
		cmd.OrderID(),
		cmd.Kind(),
		cmd.Date(),
		cmd.Window(),
		location,
		addressID,
		contact,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
