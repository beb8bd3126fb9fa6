package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

// CaptureTaskDataHandler records proof-of-service data on a task. None of
// these operations depend on the task status or touch its route.
type CaptureTaskDataHandler struct {
	uowFactory TaskUoWFactory
}

func NewCaptureTaskDataHandler(uowFactory TaskUoWFactory) CaptureTaskDataHandler {
	return CaptureTaskDataHandler{uowFactory: uowFactory}
}

func (h CaptureTaskDataHandler) RecordSignature(ctx context.Context, cmd RecordSignatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutate(ctx, cmd.TaskID(), func(t *task.Task) error {
		return t.RecordSignature(cmd.Path())
	})
}

// AddPhotos returns how many of the given paths were attached.
func (h CaptureTaskDataHandler) AddPhotos(ctx context.Context, cmd AddTaskPhotosCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var added int
	err := h.mutate(ctx, cmd.TaskID(), func(t *task.Task) error {
		added = t.AddPhotos(cmd.Paths())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func (h CaptureTaskDataHandler) RemovePhoto(ctx context.Context, cmd RemoveTaskPhotoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutate(ctx, cmd.TaskID(), func(t *task.Task) error {
		return t.RemovePhoto(cmd.Path())
	})
}

func (h CaptureTaskDataHandler) mutate(ctx context.Context, taskID kernel.UUID, apply func(*task.Task) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	t, err := taskRepo.GetForUpdate(ctx, taskID)
	if err != nil {
		return err
	}

	if err = apply(t); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
