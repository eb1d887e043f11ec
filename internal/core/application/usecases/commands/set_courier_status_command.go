package commands

import (
	"errors"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrSetCourierStatusCommandIsNotConstructed = errors.New(
	"SetCourierStatusCommand must be created via NewSetCourierStatusCommand constructor",
)

// SetCourierStatusCommand represents a request to activate or deactivate a
// courier. Only active couriers enter the assignment pool.
type SetCourierStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    courier.Status

	guard guard.ConstructorGuard
}

// NewSetCourierStatusCommand creates a command to change a courier's status.
func NewSetCourierStatusCommand(courierID kernel.UUID, status courier.Status) (SetCourierStatusCommand, error) {
	command := SetCourierStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setStatus(status),
	); err != nil {
		return SetCourierStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierStatusCommandIsNotConstructed)
}

// CourierID returns the courier's identifier.
func (c SetCourierStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Status returns the requested status.
func (c SetCourierStatusCommand) Status() courier.Status {
	return c.status
}

func (c *SetCourierStatusCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *SetCourierStatusCommand) setStatus(status courier.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
