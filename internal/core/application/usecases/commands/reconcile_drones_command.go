package commands

import (
	"errors"

	"meddrone/internal/pkg/guard"
)

var ErrReconcileDronesCommandIsNotConstructed = errors.New(
	"ReconcileDronesCommand must be created via NewReconcileDronesCommand constructor",
)

// ReconcileDronesCommand triggers a sweep over the fleet to release
// drones stuck in delivering status with no active delivery to show
// for it. Such strays appear when a process dies between the delivery
// write and the drone write, or after manual data surgery.
type ReconcileDronesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileDronesCommand creates a parameterless command that
// initiates the reconciliation sweep.
func NewReconcileDronesCommand() ReconcileDronesCommand {
	return ReconcileDronesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileDronesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDronesCommandIsNotConstructed)
}
