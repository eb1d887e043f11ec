package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var (
	ErrUpdateSessionStatusCommandIsNotConstructed = errors.New(
		"UpdateSessionStatusCommand must be created via NewUpdateSessionStatusCommand constructor",
	)

	// ErrStatusNotSettable rejects statuses owned by other flows:
	// out_for_delivery is set by session assignment, delivered by delivery
	// completion.
	ErrStatusNotSettable = errors.New("status cannot be set directly")
)

// UpdateSessionStatusCommand represents a canteen's request to move a whole
// checkout session through the kitchen workflow (placed, cooking, ready) or
// to hand a pickup session over (picked).
type UpdateSessionStatusCommand struct { //nolint:recvcheck //using for validation
	canteenID kernel.UUID
	sessionTs int64
	status    order.Status

	guard guard.ConstructorGuard
}

// NewUpdateSessionStatusCommand creates a command to update a session's status.
// Only kitchen-side statuses are accepted.
func NewUpdateSessionStatusCommand(canteenID kernel.UUID, sessionTs int64, status order.Status) (UpdateSessionStatusCommand, error) {
	command := UpdateSessionStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCanteenID(canteenID),
		command.setSessionTs(sessionTs),
		command.setStatus(status),
	); err != nil {
		return UpdateSessionStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSessionStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSessionStatusCommandIsNotConstructed)
}

// CanteenID returns the owning canteen's identifier.
func (c UpdateSessionStatusCommand) CanteenID() kernel.UUID {
	return c.canteenID
}

// SessionTs returns the checkout session key.
func (c UpdateSessionStatusCommand) SessionTs() int64 {
	return c.sessionTs
}

// Status returns the requested target status.
func (c UpdateSessionStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateSessionStatusCommand) setCanteenID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.canteenID = id
	return nil
}

func (c *UpdateSessionStatusCommand) setSessionTs(sessionTs int64) error {
	if sessionTs <= 0 {
		return ErrSessionTsIsInvalid
	}

	c.sessionTs = sessionTs
	return nil
}

func (c *UpdateSessionStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	switch status {
	case order.Placed, order.Cooking, order.Ready, order.Picked:
		c.status = status
		return nil
	default:
		return ErrStatusNotSettable
	}
}
