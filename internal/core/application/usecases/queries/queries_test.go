package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = kernel.NewDate(2024, time.May, 1)

type seed struct {
	store   *testutil.Store
	orderID kernel.UUID
}

func newSeed() *seed {
	return &seed{store: testutil.NewStore(), orderID: kernel.NewUUID()}
}

func (s *seed) driver(t *testing.T, name string, lat, lon *float64) *driver.Driver {
	t.Helper()
	loc, err := kernel.NewGeoPointFromOptional(lat, lon)
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), name, loc)
	require.NoError(t, err)
	s.store.SeedDriver(d)
	return d
}

func (s *seed) task(t *testing.T, d *driver.Driver, date kernel.Date, seq int, lat, lon *float64, status task.Status) *task.Task {
	t.Helper()
	loc, err := kernel.NewGeoPointFromOptional(lat, lon)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("stop", loc)
	require.NoError(t, err)

	snap := task.Snapshot{
		ID:            kernel.NewUUID(),
		OrderID:       s.orderID,
		Kind:          task.KindPickup,
		Status:        status,
		ScheduledDate: date,
		Window:        kernel.OpenTimeWindow(),
		Address:       addr,
		CreatedAt:     time.Now(),
	}
	if d != nil {
		id := d.ID()
		snap.DriverID = &id
	}
	if seq > 0 {
		snap.Sequence = &seq
	}
	tk, err := task.RestoreTask(snap)
	require.NoError(t, err)
	s.store.SeedTask(tk)
	return tk
}

func f64(v float64) *float64 {
	return &v
}

func ids(tasks []*task.Task) []kernel.UUID {
	out := make([]kernel.UUID, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.ID()
	}
	return out
}

func newRouteHandler(s *seed) queries.RouteQueryHandler {
	return queries.NewRouteQueryHandler(
		s.store.TaskRepository(),
		s.store.DriverRepository(),
		services.NewRouteOptimizer(services.DefaultGracePeriod),
		services.NewRouteMetricsCalculator(services.DefaultAverageSpeedKmh, services.DefaultDwellTime),
	)
}

func TestRouteQueryHandler_CurrentRouteAndMetrics(t *testing.T) {
	ctx := t.Context()
	s := newSeed()
	d := s.driver(t, "Karim", nil)
	b := s.task(t, d, day, 2, f64(0), f64(1), task.StatusPending)
	a := s.task(t, d, day, 1, f64(0), f64(0), task.StatusPending)
	s.task(t, d, day, 0, f64(0), f64(5), task.StatusCancelled)
	s.task(t, d, day.AddDays(1), 1, f64(0), f64(5), task.StatusPending)

	q, err := queries.NewDriverRouteQuery(d.ID(), day)
	require.NoError(t, err)

	route, err := newRouteHandler(s).CurrentRoute(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{a.ID(), b.ID()}, ids(route.Stops))

	metrics, err := newRouteHandler(s).Metrics(ctx, q)
	require.NoError(t, err)
	dist := kernel.DistanceKm(0, 0, 0, 1)
	assert.Equal(t, 2, metrics.TaskCount)
	assert.InDelta(t, dist, metrics.TotalDistanceKm, 1e-9)
	assert.InDelta(t, dist/30*60+30, metrics.EstimatedDurationMinutes, 1e-9)
	assert.Equal(t, d.ID(), metrics.DriverID)
}

func TestRouteQueryHandler_PreviewDoesNotPersist(t *testing.T) {
	ctx := t.Context()
	s := newSeed()
	d := s.driver(t, "Karim", nil)
	far := s.task(t, d, day, 2, f64(0), f64(0.001), task.StatusPending)
	near := s.task(t, d, day, 1, f64(0), f64(2), task.StatusPending)
	missing := s.task(t, d, day, 3, nil, nil, task.StatusPending)

	q, _ := queries.NewDriverRouteQuery(d.ID(), day)
	preview, err := newRouteHandler(s).Preview(ctx, q)

	require.NoError(t, err)
	assert.Len(t, preview.Stops, 2)
	assert.Equal(t, []kernel.UUID{missing.ID()}, ids(preview.Unrouted))
	assert.Equal(t, 2, *s.store.Task(far.ID()).Sequence())
	assert.Equal(t, 1, *s.store.Task(near.ID()).Sequence())
	assert.Equal(t, 0, s.store.Commits)
}

func TestRouteQueryHandler_UnknownDriver(t *testing.T) {
	s := newSeed()
	q, _ := queries.NewDriverRouteQuery(kernel.NewUUID(), day)

	_, err := newRouteHandler(s).CurrentRoute(t.Context(), q)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetDriverTasksQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newSeed()
	d := s.driver(t, "Karim", nil)
	other := s.driver(t, "Other", nil)
	tomorrow := s.task(t, d, day.AddDays(1), 1, nil, nil, task.StatusPending)
	second := s.task(t, d, day, 2, nil, nil, task.StatusPending)
	first := s.task(t, d, day, 1, nil, nil, task.StatusCompleted)
	s.task(t, other, day, 1, nil, nil, task.StatusPending)

	handler := queries.NewGetDriverTasksQueryHandler(s.store.TaskRepository(), s.store.DriverRepository())

	all, err := queries.NewGetDriverTasksQuery(d.ID(), nil)
	require.NoError(t, err)
	got, err := handler.Handle(ctx, all)
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{first.ID(), second.ID(), tomorrow.ID()}, ids(got))

	date := day
	today, err := queries.NewGetDriverTasksQuery(d.ID(), &date)
	require.NoError(t, err)
	got, err = handler.Handle(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, ids(got))
}

func TestFindDriverQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newSeed()
	busy := s.driver(t, "Busy", f64(36.80), f64(10.18))
	idle := s.driver(t, "Idle", f64(36.82), f64(10.18))
	for range 3 {
		s.task(t, busy, day, 0, f64(36.80), f64(10.18), task.StatusPending)
	}
	target := s.task(t, nil, day, 0, f64(36.80), f64(10.18), task.StatusPending)

	handler := queries.NewFindDriverQueryHandler(
		s.store.TaskRepository(),
		s.store.DriverRepository(),
		services.NewDriverScorer(services.NearestScoring(10)),
		services.NewDriverScorer(services.BestScoring(2, 10, 10)),
	)

	nearest, _ := queries.NewFindDriverQuery(target.ID(), queries.ScoringNearest)
	score, err := handler.Handle(ctx, nearest)
	require.NoError(t, err)
	assert.Equal(t, busy.ID(), score.Driver.ID())

	best, _ := queries.NewFindDriverQuery(target.ID(), queries.ScoringBest)
	score, err = handler.Handle(ctx, best)
	require.NoError(t, err)
	assert.Equal(t, idle.ID(), score.Driver.ID())
	assert.Nil(t, s.store.Task(target.ID()).DriverID())
}

func TestWeighingQueryHandler(t *testing.T) {
	ctx := t.Context()
	s := newSeed()
	tk := s.task(t, nil, day, 0, nil, nil, task.StatusPending)
	weighed, _ := article.RestoreArticle(kernel.NewUUID(), s.orderID, "Shirt", f64(0.3))
	pending, _ := article.NewArticle(kernel.NewUUID(), s.orderID, "Duvet")
	foreign, _ := article.NewArticle(kernel.NewUUID(), kernel.NewUUID(), "Other")
	s.store.SeedArticle(weighed)
	s.store.SeedArticle(pending)
	s.store.SeedArticle(foreign)

	handler := queries.NewWeighingQueryHandler(s.store.TaskRepository(), s.store.ArticleRepository())
	q, err := queries.NewTaskArticlesQuery(tk.ID())
	require.NoError(t, err)

	toWeigh, err := handler.ArticlesToWeigh(ctx, q)
	require.NoError(t, err)
	require.Len(t, toWeigh, 1)
	assert.Equal(t, pending.ID(), toWeigh[0].ID())

	status, err := handler.Verify(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, queries.WeighingStatus{Total: 2, Unweighed: 1, AllWeighed: false}, status)
}

func TestEstimateTravelTimeQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newSeed()
	located := s.task(t, nil, day, 0, f64(0), f64(0), task.StatusPending)
	unlocated := s.task(t, nil, day, 0, nil, nil, task.StatusPending)
	handler := queries.NewEstimateTravelTimeQueryHandler(s.store.TaskRepository(),
		services.NewRouteMetricsCalculator(services.DefaultAverageSpeedKmh, services.DefaultDwellTime))
	from, _ := kernel.NewGeoPoint(0, 0.1)

	q, err := queries.NewEstimateTravelTimeQuery(located.ID(), from)
	require.NoError(t, err)
	estimate, err := handler.Handle(ctx, q)
	require.NoError(t, err)
	assert.InDelta(t, kernel.DistanceKm(0, 0.1, 0, 0), estimate.DistanceKm, 1e-9)
	assert.Equal(t, 23, estimate.Minutes)

	q, _ = queries.NewEstimateTravelTimeQuery(unlocated.ID(), from)
	_, err = handler.Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
}
