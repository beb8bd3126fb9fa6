package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/guard"
)

var ErrChangeTaskStatusCommandIsNotConstructed = errors.New(
	"ChangeTaskStatusCommand must be created via NewChangeTaskStatusCommand constructor",
)

// ChangeTaskStatusCommand drives a task through its lifecycle. The target
// status selects the transition: IN_PROGRESS starts, COMPLETED completes and
// CANCELLED cancels the task.
type ChangeTaskStatusCommand struct {
	taskID kernel.UUID
	target task.Status

	guard guard.ConstructorGuard
}

func NewChangeTaskStatusCommand(taskID kernel.UUID, target task.Status) (ChangeTaskStatusCommand, error) {
	if err := errors.Join(taskID.Validate(), target.Validate()); err != nil {
		return ChangeTaskStatusCommand{}, err
	}

	return ChangeTaskStatusCommand{
		taskID: taskID,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func NewStartTaskCommand(taskID kernel.UUID) (ChangeTaskStatusCommand, error) {
	return NewChangeTaskStatusCommand(taskID, task.StatusInProgress)
}

func NewCompleteTaskCommand(taskID kernel.UUID) (ChangeTaskStatusCommand, error) {
	return NewChangeTaskStatusCommand(taskID, task.StatusCompleted)
}

func NewCancelTaskCommand(taskID kernel.UUID) (ChangeTaskStatusCommand, error) {
	return NewChangeTaskStatusCommand(taskID, task.StatusCancelled)
}

func (c ChangeTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTaskStatusCommandIsNotConstructed)
}

func (c ChangeTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c ChangeTaskStatusCommand) Target() task.Status {
	return c.target
}
