package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrPromotePendingOrdersCommandIsNotConstructed = errors.New(
	"PromotePendingOrdersCommand must be created via NewPromotePendingOrdersCommand constructor",
)

// PromotePendingOrdersCommand represents a request to advance every pending
// order whose checkout window has expired into placed status. Carries no
// parameters; the cutoff is the handling time.
type PromotePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPromotePendingOrdersCommand creates a command to promote expired
// pending orders.
func NewPromotePendingOrdersCommand() PromotePendingOrdersCommand {
	return PromotePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PromotePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPromotePendingOrdersCommandIsNotConstructed)
}
