package postgres_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work, and the
// dispatch commands on top of it, against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory
}

type commandUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f commandUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

type taskUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f taskUoWFactory) Create() commands.TaskUoW {
	return f.factory.Create()
}

var day = kernel.NewDate(2024, time.May, 1)

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.TaskRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.AddressRepository())
	suite.NotNil(uow1.ArticleRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	d := suite.createDriver("Karim")
	t := suite.createTask()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, d))
	suite.Require().NoError(t.AssignDriver(d.ID()))
	suite.Require().NoError(uow.TaskRepository().Add(ctx, t))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	stored, err := fresh.TaskRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(d.ID(), *stored.DriverID())
	_, err = fresh.DriverRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	d := suite.createDriver("Karim")
	t := suite.createTask()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, d))
	suite.Require().NoError(uow.TaskRepository().Add(ctx, t))

	_, err := uow.TaskRepository().Get(ctx, t.ID())
	suite.Require().NoError(err, "Task should be visible inside its own transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.TaskRepository().Get(ctx, t.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.DriverRepository().Get(ctx, d.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	d := suite.createDriver("Karim")
	suite.Require().NoError(uow.DriverRepository().Add(ctx, d))

	_, err := suite.factory.Create().DriverRepository().Get(ctx, d.ID())
	suite.Require().NoError(err, "Writes outside a transaction are applied immediately")
}

// Two assignments racing for the same driver must both land in the route with
// distinct sequence numbers.
func (suite *UnitOfWorkIntegrationTestSuite) TestAssignDriver_ConcurrentAssignmentsToSameDriver() {
	ctx := context.Background()
	seed := suite.factory.Create()

	d := suite.createDriver("Karim")
	suite.Require().NoError(seed.DriverRepository().Add(ctx, d))

	const n = 4
	tasks := make([]*task.Task, 0, n)
	for range n {
		t := suite.createTask()
		suite.Require().NoError(seed.TaskRepository().Add(ctx, t))
		tasks = append(tasks, t)
	}

	handler := commands.NewAssignDriverCommandHandler(
		commandUoWFactory{factory: suite.factory},
		commands.NewRouteResequencer(services.NewRouteOptimizer(30*time.Minute)),
		commands.NewRouteNotifier(nil, slog.New(slog.DiscardHandler)),
	)

	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for _, t := range tasks {
		wg.Add(1)
		go func(taskID kernel.UUID) {
			defer wg.Done()
			cmd, err := commands.NewAssignDriverCommand(taskID, d.ID())
			if err != nil {
				errCh <- err
				return
			}
			_, err = handler.Handle(ctx, cmd)
			errCh <- err
		}(t.ID())
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	route, err := suite.factory.Create().TaskRepository().ListByDriverAndDate(ctx, d.ID(), day)
	suite.Require().NoError(err)
	suite.Require().Len(route, n)

	seen := make(map[int]bool, n)
	for _, t := range route {
		suite.Require().NotNil(t.Sequence())
		seen[*t.Sequence()] = true
	}
	for i := 1; i <= n; i++ {
		suite.True(seen[i], "sequence %d missing", i)
	}
}

// A second GetForUpdate on the same task waits for the first transaction and
// then sees its write, so neither writer works from a stale copy.
func (suite *UnitOfWorkIntegrationTestSuite) TestTaskRepository_GetForUpdateSerializesWriters() {
	ctx := context.Background()
	seed := suite.factory.Create()

	d := suite.createDriver("Karim")
	suite.Require().NoError(seed.DriverRepository().Add(ctx, d))
	t := suite.createTask()
	suite.Require().NoError(seed.TaskRepository().Add(ctx, t))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	defer func() { _ = first.Rollback(ctx) }()

	held, err := first.TaskRepository().GetForUpdate(ctx, t.ID())
	suite.Require().NoError(err)

	type result struct {
		task *task.Task
		err  error
	}
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	defer func() { _ = second.Rollback(ctx) }()

	loaded := make(chan result, 1)
	go func() {
		got, getErr := second.TaskRepository().GetForUpdate(ctx, t.ID())
		loaded <- result{got, getErr}
	}()

	select {
	case <-loaded:
		suite.FailNow("second lock acquired while the first transaction holds the row")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(held.AssignDriver(d.ID()))
	suite.Require().NoError(held.SetSequence(1))
	suite.Require().NoError(first.TaskRepository().Update(ctx, held))
	suite.Require().NoError(first.Commit(ctx))

	var r result
	select {
	case r = <-loaded:
	case <-time.After(10 * time.Second):
		suite.FailNow("second lock never acquired")
	}
	suite.Require().NoError(r.err)
	suite.Require().True(r.task.IsAssignedTo(d.ID()))

	suite.Require().NoError(r.task.AddPhoto("photo/1.jpg"))
	suite.Require().NoError(second.TaskRepository().Update(ctx, r.task))
	suite.Require().NoError(second.Commit(ctx))

	stored, err := suite.factory.Create().TaskRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsAssignedTo(d.ID()))
	suite.Equal(intPtr(1), stored.Sequence())
	suite.Equal([]string{"photo/1.jpg"}, stored.PhotoPaths())
}

// Reassigning a task while photos are captured on it and on the stop that gets
// renumbered, and that stop is started, must keep the new driver, every photo
// and a dense sequence on both routes.
func (suite *UnitOfWorkIntegrationTestSuite) TestTaskWriters_ConcurrentWithReassignment() {
	ctx := context.Background()
	seed := suite.factory.Create()

	from := suite.createDriver("From")
	to := suite.createDriver("To")
	suite.Require().NoError(seed.DriverRepository().Add(ctx, from))
	suite.Require().NoError(seed.DriverRepository().Add(ctx, to))

	moved := suite.createTask()
	stays := suite.createTask()
	for i, t := range []*task.Task{moved, stays} {
		suite.Require().NoError(t.AssignDriver(from.ID()))
		suite.Require().NoError(t.SetSequence(i + 1))
		suite.Require().NoError(seed.TaskRepository().Add(ctx, t))
	}

	uows := commandUoWFactory{factory: suite.factory}
	resequencer := commands.NewRouteResequencer(services.NewRouteOptimizer(30 * time.Minute))
	notifier := commands.NewRouteNotifier(nil, slog.New(slog.DiscardHandler))
	assign := commands.NewAssignDriverCommandHandler(uows, resequencer, notifier)
	capture := commands.NewCaptureTaskDataHandler(taskUoWFactory{factory: suite.factory})
	status := commands.NewChangeTaskStatusCommandHandler(uows, resequencer, notifier)

	assignCmd, err := commands.NewAssignDriverCommand(moved.ID(), to.ID())
	suite.Require().NoError(err)
	photoCmd, err := commands.NewAddTaskPhotosCommand(moved.ID(), "photo/1.jpg")
	suite.Require().NoError(err)
	siblingPhotoCmd, err := commands.NewAddTaskPhotosCommand(stays.ID(), "photo/2.jpg")
	suite.Require().NoError(err)
	startCmd, err := commands.NewStartTaskCommand(stays.ID())
	suite.Require().NoError(err)

	runs := []func() error{
		func() error { _, err := assign.Handle(ctx, assignCmd); return err },
		func() error { _, err := capture.AddPhotos(ctx, photoCmd); return err },
		func() error { _, err := capture.AddPhotos(ctx, siblingPhotoCmd); return err },
		func() error { return status.Handle(ctx, startCmd) },
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(runs))
	for _, run := range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- run()
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	repo := suite.factory.Create().TaskRepository()
	gotMoved, err := repo.Get(ctx, moved.ID())
	suite.Require().NoError(err)
	suite.True(gotMoved.IsAssignedTo(to.ID()))
	suite.Equal(intPtr(1), gotMoved.Sequence())
	suite.Equal([]string{"photo/1.jpg"}, gotMoved.PhotoPaths())

	gotStays, err := repo.Get(ctx, stays.ID())
	suite.Require().NoError(err)
	suite.True(gotStays.IsAssignedTo(from.ID()))
	suite.Equal(intPtr(1), gotStays.Sequence())
	suite.Equal(task.StatusInProgress, gotStays.Status())
	suite.Equal([]string{"photo/2.jpg"}, gotStays.PhotoPaths())
}

func (suite *UnitOfWorkIntegrationTestSuite) createDriver(name string) *driver.Driver {
	location, err := kernel.NewGeoPoint(36.80, 10.18)
	suite.Require().NoError(err)
	d, err := driver.NewDriver(kernel.NewUUID(), name, &location)
	suite.Require().NoError(err)
	return d
}

var offset float64

func (suite *UnitOfWorkIntegrationTestSuite) createTask() *task.Task {
	offset += 0.01
	point, err := kernel.NewGeoPoint(36.80+offset, 10.18)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("Rue de Rome", &point)
	suite.Require().NoError(err)

	t, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), task.KindDelivery, day, kernel.OpenTimeWindow(),
		address, nil, task.Contact{}, time.Now().UTC())
	suite.Require().NoError(err)
	return t
}

func intPtr(n int) *int {
	return &n
}

var _ ports.UnitOfWorkFactory = (*postgres_adapter.GormUnitOfWorkFactory)(nil)

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
