package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/guard"
)

var ErrGetTaskQueryIsNotConstructed = errors.New(
	"GetTaskQuery must be created via NewGetTaskQuery constructor",
)

type GetTaskQuery struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTaskQuery(taskID kernel.UUID) (GetTaskQuery, error) {
	if err := taskID.Validate(); err != nil {
		return GetTaskQuery{}, err
	}
	return GetTaskQuery{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskQueryIsNotConstructed)
}

func (q GetTaskQuery) TaskID() kernel.UUID {
	return q.taskID
}

type GetTaskQueryHandler struct {
	tasks TaskReader
}

func NewGetTaskQueryHandler(tasks TaskReader) GetTaskQueryHandler {
	return GetTaskQueryHandler{tasks: tasks}
}

func (h GetTaskQueryHandler) Handle(ctx context.Context, q GetTaskQuery) (*task.Task, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.tasks.Get(ctx, q.TaskID())
}
