package commands

import (
	"errors"

	"freightmarket/internal/pkg/guard"
)

var ErrExpireQuotationsCommandIsNotConstructed = errors.New(
	"ExpireQuotationsCommand must be created via NewExpireQuotationsCommand constructor",
)

// ExpireQuotationsCommand triggers expiration of every submitted quotation
// whose validity date has passed. A parameterless batch command, run
// periodically by the expiration job.
type ExpireQuotationsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireQuotationsCommand creates a command to expire stale quotations.
func NewExpireQuotationsCommand() ExpireQuotationsCommand {
	return ExpireQuotationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireQuotationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotationsCommandIsNotConstructed)
}
