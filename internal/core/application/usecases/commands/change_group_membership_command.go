package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrChangeGroupMembershipCommandIsNotConstructed = errors.New(
	"ChangeGroupMembershipCommand must be created via NewChangeGroupMembershipCommand constructor",
)

// ChangeGroupMembershipCommand adds a user to, or removes a user from, one of
// the staff groups.
type ChangeGroupMembershipCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	group     string
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeGroupMembershipCommand rejects groups other than the staff groups
// with errs.ObjectNotFoundError.
func NewChangeGroupMembershipCommand(
	principal identity.Principal,
	group string,
	userID kernel.UUID,
) (ChangeGroupMembershipCommand, error) {
	if err := principal.Validate(); err != nil {
		return ChangeGroupMembershipCommand{}, err
	}
	if !identity.IsKnownGroup(group) {
		return ChangeGroupMembershipCommand{}, errs.NewObjectNotFoundError("group", group)
	}
	if err := userID.Validate(); err != nil {
		return ChangeGroupMembershipCommand{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	return ChangeGroupMembershipCommand{
		principal: principal,
		group:     group,
		userID:    userID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeGroupMembershipCommand) Validate() error {
	return c.guard.Validate(ErrChangeGroupMembershipCommandIsNotConstructed)
}

func (c ChangeGroupMembershipCommand) Principal() identity.Principal { return c.principal }
func (c ChangeGroupMembershipCommand) Group() string { return c.group }
func (c ChangeGroupMembershipCommand) UserID() kernel.UUID { return c.userID }
