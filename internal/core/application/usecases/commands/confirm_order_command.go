package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the owner's request to confirm a freshly
// placed order, moving it from New to Pending.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	humanID order.HumanID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the order identified by
// its human-readable number on behalf of the acting user.
func NewConfirmOrderCommand(humanID order.HumanID, actorID kernel.UUID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHumanID(humanID),
		cmd.setActorID(actorID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// HumanID returns the human-readable identifier of the order to confirm.
func (c ConfirmOrderCommand) HumanID() order.HumanID {
	return c.humanID
}

// ActorID returns the identifier of the user confirming the order.
func (c ConfirmOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ConfirmOrderCommand) setHumanID(humanID order.HumanID) error {
	if err := humanID.Validate(); err != nil {
		return err
	}

	c.humanID = humanID
	return nil
}

func (c *ConfirmOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
