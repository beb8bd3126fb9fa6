package task

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task was not created through NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")
)

// Contact is the person to meet at the stop.
type Contact struct {
	Name  string
	Phone string
}

// Task is a single pickup or delivery stop on a given day. It is the aggregate root
// of the dispatch domain.
//
// Task follows these invariants:
//   - status only changes through Start, Complete and Cancel
//   - a terminal task cannot be assigned or rescheduled
//   - a sequence number is either absent or >= 1
//   - photo paths are owned by the task and never shared with callers
type Task struct {
	id            kernel.UUID
	orderID       kernel.UUID
	kind          Kind
	status        Status
	scheduledDate kernel.Date
	window        kernel.TimeWindow
	address       kernel.Address
	addressID     *kernel.UUID
	driverID      *kernel.UUID
	sequence      *int
	contact       Contact
	arrivalTime   *time.Time
	completedAt   *time.Time
	cancelledAt   *time.Time
	signaturePath string
	photoPaths    []string
	createdAt     time.Time

	isConstructed bool
}

// NewTask creates a pending, unassigned task for an order.
//
// Example:
//
//	window, _ := kernel.NewTimeWindow(&nine, &eleven)
//	address, _ := kernel.NewAddress("12 Rue de Marseille", nil)
//	t, err := task.NewTask(kernel.NewUUID(), orderID, task.KindPickup, date, window, address, nil,
//	    task.Contact{Name: "Amira", Phone: "+21620000000"}, time.Now())
func NewTask(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	scheduledDate kernel.Date,
	window kernel.TimeWindow,
	address kernel.Address,
	addressID *kernel.UUID,
	contact Contact,
	createdAt time.Time,
) (*Task, error) {
	t := &Task{
		status:        StatusPending,
		window:        window,
		address:       address,
		contact:       contact,
		createdAt:     createdAt,
		photoPaths:    []string{},
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setKind(kind),
		t.setScheduledDate(scheduledDate),
		t.setAddressID(addressID),
		t.setAddress(address),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Snapshot carries the full persisted state of a task.
type Snapshot struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Kind          Kind
	Status        Status
	ScheduledDate kernel.Date
	Window        kernel.TimeWindow
	Address       kernel.Address
	AddressID     *kernel.UUID
	DriverID      *kernel.UUID
	Sequence      *int
	Contact       Contact
	ArrivalTime   *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	SignaturePath string
	PhotoPaths    []string
	CreatedAt     time.Time
}

// RestoreTask rebuilds a task from storage. Field values are validated but no
// lifecycle rule is applied.
func RestoreTask(s Snapshot) (*Task, error) {
	t, err := NewTask(s.ID, s.OrderID, s.Kind, s.ScheduledDate, s.Window, s.Address, s.AddressID, s.Contact, s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	t.status = s.Status

	if s.DriverID != nil {
		if err = s.DriverID.Validate(); err != nil {
			return nil, err
		}
		t.driverID = copyUUID(s.DriverID)
	}
	if s.Sequence != nil {
		if err = t.SetSequence(*s.Sequence); err != nil {
			return nil, err
		}
	}

	t.arrivalTime = copyTime(s.ArrivalTime)
	t.completedAt = copyTime(s.CompletedAt)
	t.cancelledAt = copyTime(s.CancelledAt)
	t.signaturePath = s.SignaturePath
	t.photoPaths = slices.Clone(s.PhotoPaths)
	if t.photoPaths == nil {
		t.photoPaths = []string{}
	}

	return t, nil
}

func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID {
	return t.id
}

func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

func (t *Task) Kind() Kind {
	return t.kind
}

func (t *Task) Status() Status {
	return t.status
}

func (t *Task) ScheduledDate() kernel.Date {
	return t.scheduledDate
}

func (t *Task) Window() kernel.TimeWindow {
	return t.window
}

func (t *Task) Address() kernel.Address {
	return t.address
}

// Location returns the stop coordinates or nil when the address is not geocoded.
func (t *Task) Location() *kernel.GeoPoint {
	return t.address.Point()
}

func (t *Task) HasCoordinates() bool {
	return t.address.HasCoordinates()
}

func (t *Task) AddressID() *kernel.UUID {
	return copyUUID(t.addressID)
}

// DriverID returns the assigned driver or nil.
func (t *Task) DriverID() *kernel.UUID {
	return copyUUID(t.driverID)
}

// IsAssignedTo reports whether driverID is the task's current driver.
func (t *Task) IsAssignedTo(driverID kernel.UUID) bool {
	return t.driverID != nil && t.driverID.IsEqual(driverID)
}

// Sequence returns the 1-based position in the driver's route or nil.
func (t *Task) Sequence() *int {
	if t.sequence == nil {
		return nil
	}
	n := *t.sequence
	return &n
}

func (t *Task) Contact() Contact {
	return t.contact
}

func (t *Task) ArrivalTime() *time.Time {
	return copyTime(t.arrivalTime)
}

func (t *Task) CompletedAt() *time.Time {
	return copyTime(t.completedAt)
}

func (t *Task) CancelledAt() *time.Time {
	return copyTime(t.cancelledAt)
}

func (t *Task) SignaturePath() string {
	return t.signaturePath
}

// PhotoPaths returns a copy of the photo list.
func (t *Task) PhotoPaths() []string {
	return slices.Clone(t.photoPaths)
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// AssignDriver sets the responsible driver. Reassignment is allowed until the task is terminal.
func (t *Task) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return errs.NewInvalidOperationError("assign", fmt.Sprintf("task is %s", t.status))
	}

	t.driverID = &driverID
	return nil
}

// Schedule moves the task to another day and window.
func (t *Task) Schedule(date kernel.Date, window kernel.TimeWindow) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidOperationError("schedule", fmt.Sprintf("task is %s", t.status))
	}
	if err := t.setScheduledDate(date); err != nil {
		return err
	}

	t.window = window
	return nil
}

// SetSequence records the task's position in its driver's route.
func (t *Task) SetSequence(n int) error {
	if n < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is not greater than 0", n))
	}
	t.sequence = &n
	return nil
}

func (t *Task) ClearSequence() {
	t.sequence = nil
}

// Geocode attaches coordinates to the task address.
func (t *Task) Geocode(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	t.address = t.address.WithPoint(point)
	return nil
}

// Start records the driver's arrival.
func (t *Task) Start(now time.Time) error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.arrivalTime = &now
	return nil
}

func (t *Task) Complete(now time.Time) error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.completedAt = &now
	return nil
}

func (t *Task) Cancel(now time.Time) error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.cancelledAt = &now
	return nil
}

// TransitionTo applies the guarded transition leading to target.
func (t *Task) TransitionTo(target Status, now time.Time) error {
	switch target {
	case StatusInProgress:
		return t.Start(now)
	case StatusCompleted:
		return t.Complete(now)
	case StatusCancelled:
		return t.Cancel(now)
	case StatusPending, StatusUnknown:
	}
	return errs.NewInvalidOperationError("update status", fmt.Sprintf("cannot move a task to %s", target))
}

// RecordSignature stores the path of the customer's signature image.
func (t *Task) RecordSignature(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errs.NewValueIsRequiredError("signature path")
	}
	t.signaturePath = path
	return nil
}

// AddPhoto appends a photo path. Duplicates are rejected.
func (t *Task) AddPhoto(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errs.NewValueIsRequiredError("photo path")
	}
	if slices.Contains(t.photoPaths, path) {
		return errs.NewInvalidOperationError("add photo", fmt.Sprintf("photo %s already attached", path))
	}
	t.photoPaths = append(t.photoPaths, path)
	return nil
}

// AddPhotos appends every valid path, skipping blanks and duplicates, and returns how many were added.
func (t *Task) AddPhotos(paths []string) int {
	added := 0
	for _, p := range paths {
		if err := t.AddPhoto(p); err == nil {
			added++
		}
	}
	return added
}

// RemovePhoto detaches a photo path.
func (t *Task) RemovePhoto(path string) error {
	i := slices.Index(t.photoPaths, strings.TrimSpace(path))
	if i < 0 {
		return errs.NewObjectNotFoundError("photo", path)
	}
	t.photoPaths = slices.Delete(t.photoPaths, i, i+1)
	return nil
}

// Clone returns a deep copy sharing no mutable state with t.
func (t *Task) Clone() *Task {
	c := *t
	c.addressID = copyUUID(t.addressID)
	c.driverID = copyUUID(t.driverID)
	c.sequence = t.Sequence()
	c.arrivalTime = copyTime(t.arrivalTime)
	c.completedAt = copyTime(t.completedAt)
	c.cancelledAt = copyTime(t.cancelledAt)
	c.photoPaths = slices.Clone(t.photoPaths)
	return &c
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	t.orderID = id
	return nil
}

func (t *Task) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	t.kind = kind
	return nil
}

func (t *Task) setScheduledDate(date kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}
	t.scheduledDate = date
	return nil
}

func (t *Task) setAddressID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	t.addressID = copyUUID(id)
	return nil
}

func (t *Task) setAddress(address kernel.Address) error {
	if address.Street() == "" {
		return errs.NewValueIsRequiredError("address")
	}
	t.address = address
	return nil
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
