package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// UserDirectory is the lookup of users and their group membership.
// Users are provisioned by the upstream identity provider; Add exists for
// seeding and tests.
type UserDirectory interface {
	// Get returns the user with its groups, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	Add(ctx context.Context, user *identity.User) error

	// AddToGroup makes the user a member of group. Adding an existing
	// member is a no-op. Unknown users or groups yield errs.ObjectNotFoundError.
	AddToGroup(ctx context.Context, userID kernel.UUID, group string) error

	// RemoveFromGroup drops the membership. Unknown users or groups yield
	// errs.ObjectNotFoundError.
	RemoveFromGroup(ctx context.Context, userID kernel.UUID, group string) error
}
