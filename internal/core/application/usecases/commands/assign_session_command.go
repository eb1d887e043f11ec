package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrAssignSessionCommandIsNotConstructed = errors.New(
		"AssignSessionCommand must be created via NewAssignSessionCommand constructor",
	)
	ErrSessionTsIsInvalid = errors.New("sessionTs must be greater than 0")
)

// AssignSessionCommand represents a request to assign one courier to all
// ready delivery orders of a checkout session. The canteen identity scopes
// the session: the caller must already be authorized for that canteen.
//
// Example:
//
//	cmd, err := NewAssignSessionCommand(canteenID, sessionTs)
//	if err != nil {
//	    return fmt.Errorf("invalid session reference: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type AssignSessionCommand struct { //nolint:recvcheck //using for validation
	canteenID kernel.UUID
	sessionTs int64

	guard guard.ConstructorGuard
}

// NewAssignSessionCommand creates a command to assign a courier to a session.
// Validates that the canteen id is constructed and the session key is positive.
func NewAssignSessionCommand(canteenID kernel.UUID, sessionTs int64) (AssignSessionCommand, error) {
	command := AssignSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCanteenID(canteenID),
		command.setSessionTs(sessionTs),
	); err != nil {
		return AssignSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSessionCommand) Validate() error {
	return c.guard.Validate(ErrAssignSessionCommandIsNotConstructed)
}

// CanteenID returns the owning canteen's identifier.
func (c AssignSessionCommand) CanteenID() kernel.UUID {
	return c.canteenID
}

// SessionTs returns the checkout session key.
func (c AssignSessionCommand) SessionTs() int64 {
	return c.sessionTs
}

func (c *AssignSessionCommand) setCanteenID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.canteenID = id
	return nil
}

func (c *AssignSessionCommand) setSessionTs(sessionTs int64) error {
	if sessionTs <= 0 {
		return ErrSessionTsIsInvalid
	}

	c.sessionTs = sessionTs
	return nil
}
