package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAutoAssignTaskCommandIsNotConstructed = errors.New(
	"AutoAssignTaskCommand must be created via NewAutoAssignTaskCommand constructor",
)

// AutoAssignTaskCommand hands an urgent task to the best scoring driver.
type AutoAssignTaskCommand struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAutoAssignTaskCommand(taskID kernel.UUID) (AutoAssignTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return AutoAssignTaskCommand{}, err
	}

	return AutoAssignTaskCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AutoAssignTaskCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignTaskCommandIsNotConstructed)
}

func (c AutoAssignTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}
