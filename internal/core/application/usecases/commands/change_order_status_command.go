package commands

import (
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an operator's request to move an order
// to a new status. The transition itself is validated by the order aggregate.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	humanID order.HumanID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move the order identified
// by its human-readable number to the target status.
func NewChangeOrderStatusCommand(humanID order.HumanID, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHumanID(humanID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// HumanID returns the human-readable identifier of the order.
func (c ChangeOrderStatusCommand) HumanID() order.HumanID {
	return c.humanID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setHumanID(humanID order.HumanID) error {
	if err := humanID.Validate(); err != nil {
		return err
	}

	c.humanID = humanID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
