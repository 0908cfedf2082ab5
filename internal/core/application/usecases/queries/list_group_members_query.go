package queries

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListGroupMembersQueryIsNotConstructed = errors.New(
	"ListGroupMembersQuery must be created via NewListGroupMembersQuery constructor",
)

// ListGroupMembersQuery lists the members of a staff group.
type ListGroupMembersQuery struct {
	principal identity.Principal
	group     string

	guard guard.ConstructorGuard
}

func NewListGroupMembersQuery(principal identity.Principal, group string) (ListGroupMembersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListGroupMembersQuery{}, err
	}
	if !identity.IsKnownGroup(group) {
		return ListGroupMembersQuery{}, errs.NewObjectNotFoundError("group", group)
	}
	return ListGroupMembersQuery{principal: principal, group: group, guard: guard.NewConstructorGuard()}, nil
}

func (q ListGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrListGroupMembersQueryIsNotConstructed)
}

func (q ListGroupMembersQuery) Group() string {
	return q.group
}

type ListGroupMembersQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewListGroupMembersQueryHandler(db *gorm.DB, gate *services.AccessGate) ListGroupMembersQueryHandler {
	return ListGroupMembersQueryHandler{db: db, gate: gate}
}

// Handle returns the members ordered by username.
func (h ListGroupMembersQueryHandler) Handle(ctx context.Context, query ListGroupMembersQuery) ([]MemberView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.Authorize(query.principal, services.ManageGroups); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username
		FROM users u
		JOIN user_groups g ON g.user_id = u.id
		WHERE g.group_name = ?
		ORDER BY u.username, u.id
	`, query.group).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]MemberView, 0)
	for rows.Next() {
		var m MemberView
		var id uuid.UUID
		if err = rows.Scan(&id, &m.Username); err != nil {
			return nil, err
		}
		if m.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
