package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand changes a driver's shift state and/or reported position.
// Nil fields are left as they are.
type UpdateDriverCommand struct {
	driverID    kernel.UUID
	isAvailable *bool
	location    *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(driverID kernel.UUID, isAvailable *bool, location *kernel.GeoPoint) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}
	if isAvailable == nil && location == nil {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("isAvailable or location")
	}

	cmd := UpdateDriverCommand{driverID: driverID, guard: guard.NewConstructorGuard()}
	if isAvailable != nil {
		v := *isAvailable
		cmd.isAvailable = &v
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return UpdateDriverCommand{}, err
		}
		l := *location
		cmd.location = &l
	}
	return cmd, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle takes the driver's row lock so that a shift change cannot interleave
// with an assignment to the same driver.
func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if cmd.isAvailable != nil {
		d.SetAvailability(*cmd.isAvailable)
	}
	if cmd.location != nil {
		if err = d.MoveTo(*cmd.location); err != nil {
			return err
		}
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
