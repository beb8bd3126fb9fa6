package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// TaskAddressInput describes where a new task takes place. When AddressID is
// set the stored address is used; otherwise Street (and optional coordinates)
// build an ad hoc address; when both are empty the order's default address applies.
type TaskAddressInput struct {
	AddressID *kernel.UUID
	Street    string
	Point     *kernel.GeoPoint
}

// CreateTaskCommand registers a pickup or delivery stop for an order.
//
// Example:
//
//	cmd, err := NewCreateTaskCommand(orderID, task.KindPickup, date, window,
//	    TaskAddressInput{Street: "12 Rue de Marseille"}, task.Contact{})
//	err = handler.Handle(ctx, cmd)
//	fmt.Println(cmd.TaskID())
type CreateTaskCommand struct {
	taskID  kernel.UUID
	orderID kernel.UUID
	kind    task.Kind
	date    kernel.Date
	window  kernel.TimeWindow
	address TaskAddressInput
	contact task.Contact

	guard guard.ConstructorGuard
}

func NewCreateTaskCommand(
	orderID kernel.UUID,
	kind task.Kind,
	date kernel.Date,
	window kernel.TimeWindow,
	address TaskAddressInput,
	contact task.Contact,
) (CreateTaskCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		kind.Validate(),
		validateDate(date),
	); err != nil {
		return CreateTaskCommand{}, err
	}
	if address.AddressID != nil {
		if err := address.AddressID.Validate(); err != nil {
			return CreateTaskCommand{}, err
		}
	}
	address.Street = strings.TrimSpace(address.Street)

	return CreateTaskCommand{
		taskID:  kernel.NewUUID(),
		orderID: orderID,
		kind:    kind,
		date:    date,
		window:  window,
		address: address,
		contact: task.Contact{Name: strings.TrimSpace(contact.Name), Phone: strings.TrimSpace(contact.Phone)},
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// TaskID is the identifier the task will be stored under.
func (c CreateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c CreateTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateTaskCommand) Kind() task.Kind {
	return c.kind
}

func (c CreateTaskCommand) Date() kernel.Date {
	return c.date
}

func (c CreateTaskCommand) Window() kernel.TimeWindow {
	return c.window
}

func (c CreateTaskCommand) Address() TaskAddressInput {
	return c.address
}

func (c CreateTaskCommand) Contact() task.Contact {
	return c.contact
}
