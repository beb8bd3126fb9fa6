package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"
	"logistics/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeTaskCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.DiscardHandler)

	t.Run("match_updates_task_address_and_route", func(t *testing.T) {
		f := newFixture(t)
		d := f.driver(t, "Karim", nil)

		street, err := kernel.NewAddress("3 Rue du Lac", nil)
		require.NoError(t, err)
		stored, err := address.NewAddress(kernel.NewUUID(), street)
		require.NoError(t, err)
		f.store.SeedAddress(stored)

		addressID := stored.ID()
		tk, err := task.NewTask(kernel.NewUUID(), f.order.ID(), task.KindPickup, day, kernel.OpenTimeWindow(),
			street, &addressID, task.Contact{}, day.Time())
		require.NoError(t, err)
		require.NoError(t, tk.AssignDriver(d.ID()))
		f.store.SeedTask(tk)

		geocoder := testutil.NewStubGeocoder()
		geocoder.Set("3 Rue du Lac", 36.83, 10.23)
		handler := commands.NewGeocodeTaskCommandHandler(f.uows(), geocoder, f.resequencer, f.notifier, logger)

		cmd, err := commands.NewGeocodeTaskCommand(tk.ID())
		require.NoError(t, err)
		p, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.InDelta(t, 36.83, p.Lat(), 1e-9)

		updated := f.store.Task(tk.ID())
		require.True(t, updated.HasCoordinates())
		assert.InDelta(t, 10.23, updated.Location().Lon(), 1e-9)
		assert.Equal(t, intPtr(1), updated.Sequence())
		assert.True(t, f.store.Address(addressID).Location().HasCoordinates())
		assert.Equal(t, []string{"3 Rue du Lac"}, geocoder.Calls)
	})

	t.Run("miss_leaves_task_unchanged", func(t *testing.T) {
		f := newFixture(t)
		tk := f.task(t, taskSpec{})
		handler := commands.NewGeocodeTaskCommandHandler(f.uows(), testutil.NewStubGeocoder(), f.resequencer, f.notifier, logger)

		cmd, _ := commands.NewGeocodeTaskCommand(tk.ID())
		p, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Nil(t, p)
		assert.False(t, f.store.Task(tk.ID()).HasCoordinates())
		assert.Equal(t, 0, f.store.Commits)
	})

	t.Run("provider_failure", func(t *testing.T) {
		f := newFixture(t)
		tk := f.task(t, taskSpec{})
		geocoder := testutil.NewStubGeocoder()
		geocoder.Err = errs.NewExternalUnavailableError("geocoding", errors.New("timeout"))
		handler := commands.NewGeocodeTaskCommandHandler(f.uows(), geocoder, f.resequencer, f.notifier, logger)

		cmd, _ := commands.NewGeocodeTaskCommand(tk.ID())
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrExternalUnavailable)
		assert.False(t, f.store.Task(tk.ID()).HasCoordinates())
	})

	t.Run("already_geocoded_keeps_coordinates", func(t *testing.T) {
		f := newFixture(t)
		lat, lon := at(1.0, 1.0)
		tk := f.task(t, taskSpec{lat: lat, lon: lon})

		geocoder := testutil.NewStubGeocoder()
		geocoder.Set(tk.Address().Street(), 50, 50)
		handler := commands.NewGeocodeTaskCommandHandler(f.uows(), geocoder, f.resequencer, f.notifier, logger)

		cmd, _ := commands.NewGeocodeTaskCommand(tk.ID())
		p, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.InDelta(t, 1.0, p.Lat(), 1e-9)
		assert.Empty(t, geocoder.Calls)
		assert.InDelta(t, 1.0, f.store.Task(tk.ID()).Location().Lat(), 1e-9)
		assert.Equal(t, 0, f.store.Commits)
	})

	t.Run("unknown_task", func(t *testing.T) {
		f := newFixture(t)
		geocoder := testutil.NewStubGeocoder()
		handler := commands.NewGeocodeTaskCommandHandler(f.uows(), geocoder, f.resequencer, f.notifier, logger)

		cmd, _ := commands.NewGeocodeTaskCommand(kernel.NewUUID())
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, geocoder.Calls)
	})
}
