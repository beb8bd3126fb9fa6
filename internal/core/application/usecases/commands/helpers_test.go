package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/testutil"

	"github.com/stretchr/testify/require"
)

var day = kernel.NewDate(2024, time.May, 1)

type uowFactory struct{ store *testutil.Store }

func (f uowFactory) Create() commands.UoW { return f.store.NewUnitOfWork() }

type taskUoWFactory struct{ store *testutil.Store }

func (f taskUoWFactory) Create() commands.TaskUoW { return f.store.NewUnitOfWork() }

type driverUoWFactory struct{ store *testutil.Store }

func (f driverUoWFactory) Create() commands.DriverUoW { return f.store.NewUnitOfWork() }

type articleUoWFactory struct{ store *testutil.Store }

func (f articleUoWFactory) Create() commands.ArticleUoW { return f.store.NewUnitOfWork() }

type fixture struct {
	store       *testutil.Store
	sent        *testutil.RecordingNotifier
	resequencer commands.RouteResequencer
	notifier    commands.RouteNotifier
	order       *order.Order
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testutil.NewStore()
	sent := testutil.NewRecordingNotifier()

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", "Amira", "+21620000000", nil)
	require.NoError(t, err)
	store.SeedOrder(o)

	return &fixture{
		store:       store,
		sent:        sent,
		resequencer: commands.NewRouteResequencer(services.NewRouteOptimizer(services.DefaultGracePeriod)),
		notifier:    commands.NewRouteNotifier(sent, slog.New(slog.DiscardHandler)),
		order:       o,
	}
}

func (f *fixture) uows() commands.UoWFactory {
	return uowFactory{f.store}
}

func (f *fixture) driver(t *testing.T, name string, location *kernel.GeoPoint) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name, location)
	require.NoError(t, err)
	f.store.SeedDriver(d)
	return d
}

type taskSpec struct {
	kind     task.Kind
	date     kernel.Date
	lat, lon *float64
	from, to string
	driver   *driver.Driver
	seq      int
	status   task.Status
}

func (f *fixture) task(t *testing.T, ts taskSpec) *task.Task {
	t.Helper()

	point, err := kernel.NewGeoPointFromOptional(ts.lat, ts.lon)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Rue "+kernel.NewUUID().String()[:8], point)
	require.NoError(t, err)

	var from, to *kernel.TimeOfDay
	if ts.from != "" {
		v, parseErr := kernel.ParseTimeOfDay(ts.from)
		require.NoError(t, parseErr)
		from = &v
	}
	if ts.to != "" {
		v, parseErr := kernel.ParseTimeOfDay(ts.to)
		require.NoError(t, parseErr)
		to = &v
	}
	window, err := kernel.NewTimeWindow(from, to)
	require.NoError(t, err)

	kind := ts.kind
	if kind == task.KindUnknown {
		kind = task.KindPickup
	}
	date := ts.date
	if date.IsZero() {
		date = day
	}
	status := ts.status
	if status == task.StatusUnknown {
		status = task.StatusPending
	}

	snapshot := task.Snapshot{
		ID:            kernel.NewUUID(),
		OrderID:       f.order.ID(),
		Kind:          kind,
		Status:        status,
		ScheduledDate: date,
		Window:        window,
		Address:       addr,
		CreatedAt:     time.Now(),
	}
	if ts.driver != nil {
		id := ts.driver.ID()
		snapshot.DriverID = &id
	}
	if ts.seq > 0 {
		seq := ts.seq
		snapshot.Sequence = &seq
	}

	tk, err := task.RestoreTask(snapshot)
	require.NoError(t, err)
	f.store.SeedTask(tk)
	return tk
}

func at(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func point(t *testing.T, lat, lon float64) *kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return &p
}

func sequenceOf(t *testing.T, store *testutil.Store, id kernel.UUID) *int {
	t.Helper()
	tk := store.Task(id)
	require.NotNil(t, tk)
	return tk.Sequence()
}

func intPtr(n int) *int {
	return &n
}
