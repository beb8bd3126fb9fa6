package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrRecordSignatureCommandIsNotConstructed = errors.New(
		"RecordSignatureCommand must be created via NewRecordSignatureCommand constructor",
	)
	ErrAddTaskPhotosCommandIsNotConstructed = errors.New(
		"AddTaskPhotosCommand must be created via NewAddTaskPhotosCommand constructor",
	)
	ErrRemoveTaskPhotoCommandIsNotConstructed = errors.New(
		"RemoveTaskPhotoCommand must be created via NewRemoveTaskPhotoCommand constructor",
	)
)

// RecordSignatureCommand stores the customer's signature for a task.
type RecordSignatureCommand struct {
	taskID kernel.UUID
	path   string

	guard guard.ConstructorGuard
}

func NewRecordSignatureCommand(taskID kernel.UUID, path string) (RecordSignatureCommand, error) {
	path = strings.TrimSpace(path)
	if err := taskID.Validate(); err != nil {
		return RecordSignatureCommand{}, err
	}
	if path == "" {
		return RecordSignatureCommand{}, errs.NewValueIsRequiredError("signature path")
	}

	return RecordSignatureCommand{taskID: taskID, path: path, guard: guard.NewConstructorGuard()}, nil
}

func (c RecordSignatureCommand) Validate() error {
	return c.guard.Validate(ErrRecordSignatureCommandIsNotConstructed)
}

func (c RecordSignatureCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c RecordSignatureCommand) Path() string {
	return c.path
}

// AddTaskPhotosCommand attaches one or more photos to a task. Blank and
// already attached paths are skipped.
type AddTaskPhotosCommand struct {
	taskID kernel.UUID
	paths  []string

	guard guard.ConstructorGuard
}

func NewAddTaskPhotosCommand(taskID kernel.UUID, paths ...string) (AddTaskPhotosCommand, error) {
	if err := taskID.Validate(); err != nil {
		return AddTaskPhotosCommand{}, err
	}
	if len(paths) == 0 {
		return AddTaskPhotosCommand{}, errs.NewValueIsRequiredError("photo paths")
	}

	owned := make([]string, len(paths))
	copy(owned, paths)

	return AddTaskPhotosCommand{taskID: taskID, paths: owned, guard: guard.NewConstructorGuard()}, nil
}

func (c AddTaskPhotosCommand) Validate() error {
	return c.guard.Validate(ErrAddTaskPhotosCommandIsNotConstructed)
}

func (c AddTaskPhotosCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c AddTaskPhotosCommand) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// RemoveTaskPhotoCommand detaches a photo from a task.
type RemoveTaskPhotoCommand struct {
	taskID kernel.UUID
	path   string

	guard guard.ConstructorGuard
}

func NewRemoveTaskPhotoCommand(taskID kernel.UUID, path string) (RemoveTaskPhotoCommand, error) {
	path = strings.TrimSpace(path)
	if err := taskID.Validate(); err != nil {
		return RemoveTaskPhotoCommand{}, err
	}
	if path == "" {
		return RemoveTaskPhotoCommand{}, errs.NewValueIsRequiredError("photo path")
	}

	return RemoveTaskPhotoCommand{taskID: taskID, path: path, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveTaskPhotoCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTaskPhotoCommandIsNotConstructed)
}

func (c RemoveTaskPhotoCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c RemoveTaskPhotoCommand) Path() string {
	return c.path
}
