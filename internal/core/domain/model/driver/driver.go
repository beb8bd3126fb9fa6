package driver

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// Driver is a field agent who performs pickups and deliveries.
//
// A driver's daily workload is not stored on the driver: it is derived from the
// tasks assigned to it for a date.
type Driver struct {
	// id is the unique identifier of the driver
	id kernel.UUID

	// name is shown to dispatchers and returned by auto-assignment
	name string

	// isAvailable is false while the driver is off shift; unavailable drivers never receive tasks
	isAvailable bool

	// currentLocation is the last reported position (nil if unknown)
	currentLocation *kernel.GeoPoint

	isConstructed bool
}

// NewDriver creates an available driver.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Karim", nil)
//	if err != nil {
//	    return err
//	}
func NewDriver(id kernel.UUID, name string, location *kernel.GeoPoint) (*Driver, error) {
	d := &Driver{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from storage.
func RestoreDriver(id kernel.UUID, name string, isAvailable bool, location *kernel.GeoPoint) (*Driver, error) {
	d, err := NewDriver(id, name, location)
	if err != nil {
		return nil, err
	}
	d.isAvailable = isAvailable
	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// CurrentLocation returns the last known position or nil.
func (d *Driver) CurrentLocation() *kernel.GeoPoint {
	if d.currentLocation == nil {
		return nil
	}
	p := *d.currentLocation
	return &p
}

// SetAvailability puts the driver on or off shift.
func (d *Driver) SetAvailability(available bool) {
	d.isAvailable = available
}

// MoveTo records a new reported position.
func (d *Driver) MoveTo(location kernel.GeoPoint) error {
	return d.setLocation(&location)
}

// EnsureCanTakeTasks fails with an invalid-operation error when the driver is off shift.
func (d *Driver) EnsureCanTakeTasks() error {
	if !d.isAvailable {
		return errs.NewInvalidOperationError("assign", "driver "+d.id.String()+" is not available")
	}
	return nil
}

// Clone returns an independent copy.
func (d *Driver) Clone() *Driver {
	c := *d
	c.currentLocation = d.CurrentLocation()
	return &c
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		d.currentLocation = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	p := *location
	d.currentLocation = &p
	return nil
}
