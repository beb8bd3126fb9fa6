package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand puts a task on a chosen driver's route.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(taskID, driverID)
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Printf("%s now has %d stops\n", result.DriverName, result.RouteSize)
type AssignDriverCommand struct {
	taskID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(taskID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(taskID.Validate(), driverID.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		taskID:   taskID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// AssignmentResult describes the route a task landed on.
type AssignmentResult struct {
	TaskID     kernel.UUID
	DriverID   kernel.UUID
	DriverName string
	RouteSize  int
}
