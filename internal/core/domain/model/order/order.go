package order

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the customer order a logistics task serves. Orders are owned by the
// ordering subsystem; the logistics service only reads them to fill in contact
// details and the default address of new tasks.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// reference is the human-readable order number printed on tickets
	reference string

	// customerName and customerPhone default the task contact
	customerName  string
	customerPhone string

	// addressID is the customer's default address (nil if none on file)
	addressID *kernel.UUID

	isConstructed bool
}

// NewOrder creates an Order with validation.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - reference: order number (required)
//   - customerName, customerPhone: contact defaults for tasks
//   - addressID: optional default address
func NewOrder(
	id kernel.UUID,
	reference string,
	customerName string,
	customerPhone string,
	addressID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		customerName:  strings.TrimSpace(customerName),
		customerPhone: strings.TrimSpace(customerPhone),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Reference() string {
	return o.reference
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// AddressID returns the customer's default address or nil.
func (o *Order) AddressID() *kernel.UUID {
	if o.addressID == nil {
		return nil
	}
	id := *o.addressID
	return &id
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setAddressID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c := *id
	o.addressID = &c
	return nil
}
