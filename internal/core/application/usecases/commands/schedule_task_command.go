package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrScheduleTaskCommandIsNotConstructed = errors.New(
	"ScheduleTaskCommand must be created via NewScheduleTaskCommand constructor",
)

// ScheduleTaskCommand moves a task to another date and time window.
type ScheduleTaskCommand struct {
	taskID kernel.UUID
	date   kernel.Date
	window kernel.TimeWindow

	guard guard.ConstructorGuard
}

func NewScheduleTaskCommand(taskID kernel.UUID, date kernel.Date, window kernel.TimeWindow) (ScheduleTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), validateDate(date)); err != nil {
		return ScheduleTaskCommand{}, err
	}

	return ScheduleTaskCommand{
		taskID: taskID,
		date:   date,
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ScheduleTaskCommand) Validate() error {
	return c.guard.Validate(ErrScheduleTaskCommandIsNotConstructed)
}

func (c ScheduleTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c ScheduleTaskCommand) Date() kernel.Date {
	return c.date
}

func (c ScheduleTaskCommand) Window() kernel.TimeWindow {
	return c.window
}
