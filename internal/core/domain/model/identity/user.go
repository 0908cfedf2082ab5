package identity

import (
	"errors"
	"slices"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a user-directory entry.
type User struct {
	id        kernel.UUID
	username  string
	superuser bool
	groups    []string

	isConstructed bool
}

// NewUser creates a user without group membership.
func NewUser(id kernel.UUID, username string, superuser bool) (*User, error) {
	return RestoreUser(id, username, superuser, nil)
}

// RestoreUser rebuilds a user with its stored group memberships.
func RestoreUser(id kernel.UUID, username string, superuser bool, groups []string) (*User, error) {
	u := &User{superuser: superuser, isConstructed: true}
	if err := errors.Join(u.setID(id), u.setUsername(username)); err != nil {
		return nil, err
	}
	for _, g := range groups {
		u.JoinGroup(g)
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) IsSuperuser() bool { return u.superuser }
func (u *User) Groups() []string { return slices.Clone(u.groups) }
func (u *User) InGroup(name string) bool {
	return slices.Contains(u.groups, name)
}

// JoinGroup adds the user to name. Joining twice is a no-op.
func (u *User) JoinGroup(name string) {
	if name == "" || u.InGroup(name) {
		return
	}
	u.groups = append(u.groups, name)
	slices.Sort(u.groups)
}

// LeaveGroup removes the user from name. Leaving a group the user is not in is a no-op.
func (u *User) LeaveGroup(name string) {
	u.groups = slices.DeleteFunc(u.groups, func(g string) bool { return g == name })
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}
