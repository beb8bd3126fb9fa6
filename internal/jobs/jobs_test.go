package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"
	"logistics/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = kernel.NewDate(2024, time.May, 1)

type uowFactory struct{ store *testutil.Store }

func (f uowFactory) Create() commands.UoW { return f.store.NewUnitOfWork() }

type failingLister struct{}

func (failingLister) ListMissingCoordinates(context.Context, int) ([]*task.Task, error) {
	return nil, assert.AnError
}

func seedTask(t *testing.T, store *testutil.Store, street string, point *kernel.GeoPoint) *task.Task {
	t.Helper()
	addr, err := kernel.NewAddress(street, point)
	require.NoError(t, err)
	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), task.KindPickup, day,
		kernel.OpenTimeWindow(), addr, nil, task.Contact{}, time.Now())
	require.NoError(t, err)
	store.SeedTask(tk)
	return tk
}

func geoPoint(t *testing.T, lat, lon float64) *kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return &p
}

func logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestGeocodeRetryJob_RunOnce(t *testing.T) {
	store := testutil.NewStore()
	geocoder := testutil.NewStubGeocoder()
	geocoder.Set("5 Rue de Rome", 36.8, 10.17)

	resolvable := seedTask(t, store, "5 Rue de Rome", nil)
	unknown := seedTask(t, store, "Nowhere", nil)
	seedTask(t, store, "Already placed", geoPoint(t, 36.7, 10.1))

	resequencer := commands.NewRouteResequencer(services.NewRouteOptimizer(services.DefaultGracePeriod))
	notifier := commands.NewRouteNotifier(testutil.NewRecordingNotifier(), logger())
	handler := commands.NewGeocodeTaskCommandHandler(uowFactory{store}, geocoder, resequencer, notifier, logger())

	job := jobs.NewGeocodeRetryJob(store.TaskRepository(), handler, "", 50, logger())

	geocoded, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, geocoded)
	assert.True(t, store.Task(resolvable.ID()).HasCoordinates())
	assert.False(t, store.Task(unknown.ID()).HasCoordinates())
}

func TestGeocodeRetryJob_ContinuesAfterProviderFailure(t *testing.T) {
	store := testutil.NewStore()
	geocoder := testutil.NewStubGeocoder()
	geocoder.Err = assert.AnError

	seedTask(t, store, "5 Rue de Rome", nil)
	seedTask(t, store, "6 Rue de Rome", nil)

	resequencer := commands.NewRouteResequencer(services.NewRouteOptimizer(services.DefaultGracePeriod))
	notifier := commands.NewRouteNotifier(testutil.NewRecordingNotifier(), logger())
	handler := commands.NewGeocodeTaskCommandHandler(uowFactory{store}, geocoder, resequencer, notifier, logger())

	job := jobs.NewGeocodeRetryJob(store.TaskRepository(), handler, "", 50, logger())

	geocoded, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, geocoded)
	assert.Len(t, geocoder.Calls, 2)
}

func TestGeocodeRetryJob_ListingFailure(t *testing.T) {
	job := jobs.NewGeocodeRetryJob(failingLister{}, commands.GeocodeTaskCommandHandler{}, "", 50, logger())

	_, err := job.RunOnce(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestAutoDispatchJob_RunOnce(t *testing.T) {
	store := testutil.NewStore()
	d, err := driver.NewDriver(kernel.NewUUID(), "Sami", geoPoint(t, 36.8, 10.18))
	require.NoError(t, err)
	store.SeedDriver(d)

	first := seedTask(t, store, "First", geoPoint(t, 36.81, 10.18))
	second := seedTask(t, store, "Second", geoPoint(t, 36.82, 10.18))
	ungeocoded := seedTask(t, store, "Unknown", nil)

	resequencer := commands.NewRouteResequencer(services.NewRouteOptimizer(services.DefaultGracePeriod))
	notifier := commands.NewRouteNotifier(testutil.NewRecordingNotifier(), logger())
	scorer := services.NewDriverScorer(services.BestScoring(2, 10, 10))
	handler := commands.NewAutoAssignTaskCommandHandler(uowFactory{store}, scorer, resequencer, notifier)

	job := jobs.NewAutoDispatchJob(store.TaskRepository(), handler, "", time.UTC, logger())

	assigned, err := job.RunOnce(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, 2, assigned)
	for _, id := range []kernel.UUID{first.ID(), second.ID()} {
		stored := store.Task(id)
		require.NotNil(t, stored.DriverID())
		assert.True(t, stored.DriverID().IsEqual(d.ID()))
		assert.NotNil(t, stored.Sequence())
	}
	assert.Nil(t, store.Task(ungeocoded.ID()).DriverID())
}

func TestAutoDispatchJob_NoDriversIsNotFatal(t *testing.T) {
	store := testutil.NewStore()
	seedTask(t, store, "First", geoPoint(t, 36.81, 10.18))

	resequencer := commands.NewRouteResequencer(services.NewRouteOptimizer(services.DefaultGracePeriod))
	notifier := commands.NewRouteNotifier(testutil.NewRecordingNotifier(), logger())
	scorer := services.NewDriverScorer(services.BestScoring(2, 10, 10))
	handler := commands.NewAutoAssignTaskCommandHandler(uowFactory{store}, scorer, resequencer, notifier)

	job := jobs.NewAutoDispatchJob(store.TaskRepository(), handler, "", time.UTC, logger())

	assigned, err := job.RunOnce(context.Background(), day)

	require.NoError(t, err)
	assert.Zero(t, assigned)
}

func TestJobManager_StartAndStop(t *testing.T) {
	store := testutil.NewStore()
	job := jobs.NewGeocodeRetryJob(store.TaskRepository(), commands.GeocodeTaskCommandHandler{}, "", 10, logger())
	manager := jobs.NewJobManager(job, nil)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	store := testutil.NewStore()
	job := jobs.NewAutoDispatchJob(store.TaskRepository(), commands.AutoAssignTaskCommandHandler{}, "not a cron", time.UTC, logger())
	manager := jobs.NewJobManager(nil, job)

	assert.Error(t, manager.StartAll())
}
