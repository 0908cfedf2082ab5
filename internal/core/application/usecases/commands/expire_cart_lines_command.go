package commands

import (
	"errors"
	"time"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrExpireCartLinesCommandIsNotConstructed = errors.New(
	"ExpireCartLinesCommand must be created via NewExpireCartLinesCommand constructor",
)

// ExpireCartLinesCommand removes cart lines added before a cutoff. It is
// issued by the scheduler, not by a principal.
type ExpireCartLinesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewExpireCartLinesCommand(cutoff time.Time) (ExpireCartLinesCommand, error) {
	if cutoff.IsZero() {
		return ExpireCartLinesCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	return ExpireCartLinesCommand{cutoff: cutoff.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireCartLinesCommand) Validate() error {
	return c.guard.Validate(ErrExpireCartLinesCommandIsNotConstructed)
}

func (c ExpireCartLinesCommand) Cutoff() time.Time {
	return c.cutoff
}
