package testutil

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// tables is one consistent version of the in-memory data.
type tables struct {
	tasks     map[kernel.UUID]*task.Task
	drivers   map[kernel.UUID]*driver.Driver
	orders    map[kernel.UUID]*order.Order
	addresses map[kernel.UUID]*address.Address
	articles  map[kernel.UUID]*article.Article
}

func newTables() *tables {
	return &tables{
		tasks:     make(map[kernel.UUID]*task.Task),
		drivers:   make(map[kernel.UUID]*driver.Driver),
		orders:    make(map[kernel.UUID]*order.Order),
		addresses: make(map[kernel.UUID]*address.Address),
		articles:  make(map[kernel.UUID]*article.Article),
	}
}

func (t *tables) clone() *tables {
	return &tables{
		tasks:     maps.Clone(t.tasks),
		drivers:   maps.Clone(t.drivers),
		orders:    maps.Clone(t.orders),
		addresses: maps.Clone(t.addresses),
		articles:  maps.Clone(t.articles),
	}
}

// Store is an in-memory implementation of every persistence port. Stored
// aggregates are private copies: reads return clones and writes store clones.
//
// A UnitOfWork works on a snapshot taken at Begin and publishes it on
// Commit. Outside a transaction repositories read and write the store directly.
type Store struct {
	mu   sync.Mutex
	data *tables

	// Commits counts successful transaction commits.
	Commits int

	taskLocks []kernel.UUID
}

func NewStore() *Store {
	return &Store{data: newTables()}
}

// NewUnitOfWork satisfies every UoW interface of the command layer.
func (s *Store) NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{store: s}
}

func (s *Store) SeedTask(t *task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.tasks[t.ID()] = t.Clone()
}

func (s *Store) SeedDriver(d *driver.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.drivers[d.ID()] = d.Clone()
}

func (s *Store) SeedOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.orders[o.ID()] = o
}

func (s *Store) SeedAddress(a *address.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.addresses[a.ID()] = cloneAddress(a)
}

func (s *Store) SeedArticle(a *article.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.articles[a.ID()] = cloneArticle(a)
}

// Task returns a copy of the committed task, or nil.
func (s *Store) Task(id kernel.UUID) *task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.data.tasks[id]; ok {
		return t.Clone()
	}
	return nil
}

func (s *Store) Driver(id kernel.UUID) *driver.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.data.drivers[id]; ok {
		return d.Clone()
	}
	return nil
}

func (s *Store) Address(id kernel.UUID) *address.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.data.addresses[id]; ok {
		return cloneAddress(a)
	}
	return nil
}

func (s *Store) Article(id kernel.UUID) *article.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.data.articles[id]; ok {
		return cloneArticle(a)
	}
	return nil
}

// TaskLocks lists the task ids loaded through GetForUpdate, in call order.
func (s *Store) TaskLocks() []kernel.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]kernel.UUID(nil), s.taskLocks...)
}

func (s *Store) recordTaskLock(id kernel.UUID) {
	s.mu.Lock()
	s.taskLocks = append(s.taskLocks, id)
	s.mu.Unlock()
}

// Tasks returns copies of every committed task.
func (s *Store) Tasks() []*task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*task.Task, 0, len(s.data.tasks))
	for _, t := range s.data.tasks {
		out = append(out, t.Clone())
	}
	sortTasks(out)
	return out
}

// Repositories bound to committed state, for query handlers.
func (s *Store) TaskRepository() ports.TaskRepository       { return taskRepo{s.direct()} }
func (s *Store) DriverRepository() ports.DriverRepository   { return driverRepo{s.direct()} }
func (s *Store) OrderRepository() ports.OrderRepository     { return orderRepo{s.direct()} }
func (s *Store) AddressRepository() ports.AddressRepository { return addressRepo{s.direct()} }
func (s *Store) ArticleRepository() ports.ArticleRepository { return articleRepo{s.direct()} }

func (s *Store) direct() access {
	return access{mu: &s.mu, data: func() *tables { return s.data }, store: s}
}

// UnitOfWork is the transactional view of a Store.
type UnitOfWork struct {
	store *Store
	tx    *tables
	txMu  sync.Mutex
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.tx != nil {
		return nil
	}
	u.store.mu.Lock()
	u.tx = u.store.data.clone()
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	u.store.mu.Lock()
	u.store.data = u.tx
	u.store.Commits++
	u.store.mu.Unlock()
	u.tx = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	u.tx = nil
	return nil
}

func (u *UnitOfWork) access() access {
	if u.tx == nil {
		return u.store.direct()
	}
	tx := u.tx
	return access{mu: &u.txMu, data: func() *tables { return tx }, store: u.store}
}

func (u *UnitOfWork) TaskRepository() ports.TaskRepository       { return taskRepo{u.access()} }
func (u *UnitOfWork) DriverRepository() ports.DriverRepository   { return driverRepo{u.access()} }
func (u *UnitOfWork) OrderRepository() ports.OrderRepository     { return orderRepo{u.access()} }
func (u *UnitOfWork) AddressRepository() ports.AddressRepository { return addressRepo{u.access()} }
func (u *UnitOfWork) ArticleRepository() ports.ArticleRepository { return articleRepo{u.access()} }

type access struct {
	mu    *sync.Mutex
	data  func() *tables
	store *Store
}

func (a access) with(fn func(*tables) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.data())
}

type taskRepo struct{ access }

func (r taskRepo) Add(_ context.Context, t *task.Task) error {
	return r.with(func(d *tables) error {
		if _, ok := d.tasks[t.ID()]; ok {
			return errs.NewInvalidOperationError("add task", "duplicate id "+t.ID().String())
		}
		d.tasks[t.ID()] = t.Clone()
		return nil
	})
}

func (r taskRepo) Update(_ context.Context, t *task.Task) error {
	return r.with(func(d *tables) error {
		if _, ok := d.tasks[t.ID()]; !ok {
			return errs.NewObjectNotFoundError("task", t.ID())
		}
		d.tasks[t.ID()] = t.Clone()
		return nil
	})
}

func (r taskRepo) Get(_ context.Context, id kernel.UUID) (*task.Task, error) {
	var out *task.Task
	err := r.with(func(d *tables) error {
		t, ok := d.tasks[id]
		if !ok {
			return errs.NewObjectNotFoundError("task", id)
		}
		out = t.Clone()
		return nil
	})
	return out, err
}

// GetForUpdate records the lock so tests can assert which rows a handler
// meant to hold; snapshots already isolate the data.
func (r taskRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	r.store.recordTaskLock(id)
	return r.Get(ctx, id)
}

func (r taskRepo) filter(keep func(*task.Task) bool) []*task.Task {
	out := make([]*task.Task, 0)
	_ = r.with(func(d *tables) error {
		for _, t := range d.tasks {
			if keep(t) {
				out = append(out, t.Clone())
			}
		}
		return nil
	})
	sortTasks(out)
	return out
}

func (r taskRepo) ListByDriverAndDate(_ context.Context, driverID kernel.UUID, date kernel.Date) ([]*task.Task, error) {
	return r.filter(func(t *task.Task) bool {
		return t.IsAssignedTo(driverID) && t.ScheduledDate().Equal(date)
	}), nil
}

func (r taskRepo) ListByDriver(_ context.Context, driverID kernel.UUID) ([]*task.Task, error) {
	return r.filter(func(t *task.Task) bool { return t.IsAssignedTo(driverID) }), nil
}

func (r taskRepo) ListPending(_ context.Context) ([]*task.Task, error) {
	return r.filter(func(t *task.Task) bool { return t.Status() == task.StatusPending }), nil
}

func (r taskRepo) ListUnassigned(_ context.Context, date kernel.Date) ([]*task.Task, error) {
	return r.filter(func(t *task.Task) bool {
		return t.Status() == task.StatusPending && t.DriverID() == nil && t.ScheduledDate().Equal(date)
	}), nil
}

func (r taskRepo) ListMissingCoordinates(_ context.Context, limit int) ([]*task.Task, error) {
	out := r.filter(func(t *task.Task) bool {
		return !t.Status().IsTerminal() && !t.HasCoordinates()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// sortTasks orders by date, creation time, then id, like the SQL repositories.
func sortTasks(tasks []*task.Task) {
	slices.SortFunc(tasks, func(a, b *task.Task) int {
		if c := cmp.Compare(a.ScheduledDate().String(), b.ScheduledDate().String()); c != 0 {
			return c
		}
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
}

type driverRepo struct{ access }

func (r driverRepo) Add(_ context.Context, dr *driver.Driver) error {
	return r.with(func(d *tables) error {
		if _, ok := d.drivers[dr.ID()]; ok {
			return errs.NewInvalidOperationError("add driver", "duplicate id "+dr.ID().String())
		}
		d.drivers[dr.ID()] = dr.Clone()
		return nil
	})
}

func (r driverRepo) Update(_ context.Context, dr *driver.Driver) error {
	return r.with(func(d *tables) error {
		if _, ok := d.drivers[dr.ID()]; !ok {
			return errs.NewObjectNotFoundError("driver", dr.ID())
		}
		d.drivers[dr.ID()] = dr.Clone()
		return nil
	})
}

func (r driverRepo) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	var out *driver.Driver
	err := r.with(func(d *tables) error {
		dr, ok := d.drivers[id]
		if !ok {
			return errs.NewObjectNotFoundError("driver", id)
		}
		out = dr.Clone()
		return nil
	})
	return out, err
}

// GetForUpdate has nothing to lock in memory; transactions are isolated by snapshot.
func (r driverRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.Get(ctx, id)
}

func (r driverRepo) GetAllAvailable(_ context.Context) ([]*driver.Driver, error) {
	out := make([]*driver.Driver, 0)
	_ = r.with(func(d *tables) error {
		for _, dr := range d.drivers {
			if dr.IsAvailable() {
				out = append(out, dr.Clone())
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *driver.Driver) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

type orderRepo struct{ access }

func (r orderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	var out *order.Order
	err := r.with(func(d *tables) error {
		o, ok := d.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		out = o
		return nil
	})
	return out, err
}

type addressRepo struct{ access }

func (r addressRepo) Get(_ context.Context, id kernel.UUID) (*address.Address, error) {
	var out *address.Address
	err := r.with(func(d *tables) error {
		a, ok := d.addresses[id]
		if !ok {
			return errs.NewObjectNotFoundError("address", id)
		}
		out = cloneAddress(a)
		return nil
	})
	return out, err
}

func (r addressRepo) Update(_ context.Context, a *address.Address) error {
	return r.with(func(d *tables) error {
		if _, ok := d.addresses[a.ID()]; !ok {
			return errs.NewObjectNotFoundError("address", a.ID())
		}
		d.addresses[a.ID()] = cloneAddress(a)
		return nil
	})
}

type articleRepo struct{ access }

func (r articleRepo) Get(_ context.Context, id kernel.UUID) (*article.Article, error) {
	var out *article.Article
	err := r.with(func(d *tables) error {
		a, ok := d.articles[id]
		if !ok {
			return errs.NewObjectNotFoundError("article", id)
		}
		out = cloneArticle(a)
		return nil
	})
	return out, err
}

func (r articleRepo) ListByOrder(_ context.Context, orderID kernel.UUID) ([]*article.Article, error) {
	out := make([]*article.Article, 0)
	_ = r.with(func(d *tables) error {
		for _, a := range d.articles {
			if a.OrderID().IsEqual(orderID) {
				out = append(out, cloneArticle(a))
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *article.Article) int {
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func (r articleRepo) Update(_ context.Context, a *article.Article) error {
	return r.with(func(d *tables) error {
		if _, ok := d.articles[a.ID()]; !ok {
			return errs.NewObjectNotFoundError("article", a.ID())
		}
		d.articles[a.ID()] = cloneArticle(a)
		return nil
	})
}

func cloneAddress(a *address.Address) *address.Address {
	c, _ := address.NewAddress(a.ID(), a.Location())
	return c
}

func cloneArticle(a *article.Article) *article.Article {
	c, _ := article.RestoreArticle(a.ID(), a.OrderID(), a.Name(), a.ActualWeight())
	return c
}
