package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrProcessOrdersCommandIsNotConstructed = errors.New(
		"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
	)
	ErrOwnerIDIsInvalid = errors.New("owner id must be greater than 0")
)

// ProcessOrdersCommand requests batch processing of one owner's orders through
// the type-dispatch engine.
//
// Example:
//
//	cmd, err := NewProcessOrdersCommand(ownerID)
//	if err != nil {
//	    return err
//	}
//
//	ok, err := handler.Handle(ctx, cmd)
type ProcessOrdersCommand struct { //nolint:recvcheck //using for validation
	ownerID int64

	guard guard.ConstructorGuard
}

// NewProcessOrdersCommand creates a command to process the given owner's
// orders. The owner id must be positive.
func NewProcessOrdersCommand(ownerID int64) (ProcessOrdersCommand, error) {
	cmd := ProcessOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOwnerID(ownerID); err != nil {
		return ProcessOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}

// OwnerID returns the id of the owner whose orders are processed.
func (c ProcessOrdersCommand) OwnerID() int64 {
	return c.ownerID
}

func (c *ProcessOrdersCommand) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return ErrOwnerIDIsInvalid
	}

	c.ownerID = ownerID
	return nil
}
