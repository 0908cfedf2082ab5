package identity

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.Join(
	errs.ErrUnauthenticated,
	errors.New("Principal must be created via NewPrincipal constructor"),
)

// Principal is the authenticated actor of a request. Its role is resolved once,
// when the principal is built, and then passed explicitly to every gate.
type Principal struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   Role
	guard  guard.ConstructorGuard
}

// NewPrincipal resolves the role of u.
func NewPrincipal(u *User) (Principal, error) {
	if err := u.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{
		userID: u.ID(),
		role:   ResolveRole(u),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate fails with an error matching errs.ErrUnauthenticated for the zero value.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) UserID() kernel.UUID { return p.userID }
func (p Principal) Role() Role { return p.role }

// Owns reports whether the principal is the owner identified by owner.
func (p Principal) Owns(owner kernel.UUID) bool {
	return p.userID.IsEqual(owner)
}
