package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureTaskDataHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("signature_on_completed_task", func(t *testing.T) {
		f := newFixture(t)
		tk := f.task(t, taskSpec{status: task.StatusCompleted})
		handler := commands.NewCaptureTaskDataHandler(taskUoWFactory{f.store})

		cmd, err := commands.NewRecordSignatureCommand(tk.ID(), "signatures/a.png")
		require.NoError(t, err)
		require.NoError(t, handler.RecordSignature(ctx, cmd))

		assert.Equal(t, "signatures/a.png", f.store.Task(tk.ID()).SignaturePath())
	})

	t.Run("add_photos_skips_blank_and_duplicates", func(t *testing.T) {
		f := newFixture(t)
		tk := f.task(t, taskSpec{})
		handler := commands.NewCaptureTaskDataHandler(taskUoWFactory{f.store})

		cmd, err := commands.NewAddTaskPhotosCommand(tk.ID(), "p/1.jpg", " ", "p/2.jpg", "p/1.jpg")
		require.NoError(t, err)
		added, err := handler.AddPhotos(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 2, added)

		again, _ := commands.NewAddTaskPhotosCommand(tk.ID(), "p/2.jpg", "p/3.jpg")
		added, err = handler.AddPhotos(ctx, again)
		require.NoError(t, err)
		assert.Equal(t, 1, added)

		assert.Equal(t, []string{"p/1.jpg", "p/2.jpg", "p/3.jpg"}, f.store.Task(tk.ID()).PhotoPaths())
	})

	t.Run("remove_photo", func(t *testing.T) {
		f := newFixture(t)
		tk := f.task(t, taskSpec{})
		handler := commands.NewCaptureTaskDataHandler(taskUoWFactory{f.store})
		add, _ := commands.NewAddTaskPhotosCommand(tk.ID(), "p/1.jpg", "p/2.jpg")
		_, err := handler.AddPhotos(ctx, add)
		require.NoError(t, err)

		remove, err := commands.NewRemoveTaskPhotoCommand(tk.ID(), "p/1.jpg")
		require.NoError(t, err)
		require.NoError(t, handler.RemovePhoto(ctx, remove))
		assert.Equal(t, []string{"p/2.jpg"}, f.store.Task(tk.ID()).PhotoPaths())

		err = handler.RemovePhoto(ctx, remove)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown_task", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCaptureTaskDataHandler(taskUoWFactory{f.store})

		cmd, _ := commands.NewRecordSignatureCommand(kernel.NewUUID(), "s.png")
		err := handler.RecordSignature(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewCaptureCommands_RequirePaths(t *testing.T) {
	_, err := commands.NewRecordSignatureCommand(kernel.NewUUID(), "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAddTaskPhotosCommand(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRemoveTaskPhotoCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
