package queries

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetPrincipalQueryIsNotConstructed = errors.New(
	"GetPrincipalQuery must be created via NewGetPrincipalQuery constructor",
)

// GetPrincipalQuery resolves the authenticated user id handed over by the
// identity provider into a Principal with its role.
type GetPrincipalQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPrincipalQuery(userID kernel.UUID) (GetPrincipalQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetPrincipalQuery{}, errors.Join(errs.ErrUnauthenticated, err)
	}
	return GetPrincipalQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPrincipalQuery) Validate() error {
	return q.guard.Validate(ErrGetPrincipalQueryIsNotConstructed)
}

type userRow struct {
	Username    string
	IsSuperuser bool
}

type GetPrincipalQueryHandler struct {
	db *gorm.DB
}

func NewGetPrincipalQueryHandler(db *gorm.DB) GetPrincipalQueryHandler {
	return GetPrincipalQueryHandler{db: db}
}

// Handle fails with errs.ErrUnauthenticated for unknown users.
func (h GetPrincipalQueryHandler) Handle(ctx context.Context, query GetPrincipalQuery) (identity.Principal, error) {
	if err := query.Validate(); err != nil {
		return identity.Principal{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.userID.Bytes()

	var rows []userRow
	if err := db.Raw("SELECT username, is_superuser FROM users WHERE id = ?", id).Scan(&rows).Error; err != nil {
		return identity.Principal{}, err
	}
	if len(rows) == 0 {
		return identity.Principal{}, errs.ErrUnauthenticated
	}

	var groups []string
	if err := db.Raw(
		"SELECT group_name FROM user_groups WHERE user_id = ? ORDER BY group_name", id,
	).Scan(&groups).Error; err != nil {
		return identity.Principal{}, err
	}

	u, err := identity.RestoreUser(query.userID, rows[0].Username, rows[0].IsSuperuser, groups)
	if err != nil {
		return identity.Principal{}, err
	}

	return identity.NewPrincipal(u)
}
