package services

import (
	"slices"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// Action is an operation guarded by the AccessGate.
type Action int

const (
	ReadMenu Action = iota + 1
	WriteMenu
	DeleteMenu
	UseCart
	ReadOrders
	PlaceOrder
	UpdateOrder
	DeleteOrder
	ManageGroups
)

func (a Action) String() string {
	switch a {
	case ReadMenu:
		return "menu/read"
	case WriteMenu:
		return "menu/write"
	case DeleteMenu:
		return "menu/delete"
	case UseCart:
		return "cart/use"
	case ReadOrders:
		return "order/read"
	case PlaceOrder:
		return "order/place"
	case UpdateOrder:
		return "order/update"
	case DeleteOrder:
		return "order/delete"
	case ManageGroups:
		return "groups/manage"
	}
	return "unknown"
}

// Scope is the set of records a granted action applies to.
type Scope int

const (
	// ScopeOwn covers records owned by the principal.
	ScopeOwn Scope = iota + 1
	// ScopeCrewAssigned covers orders assigned to any delivery crew member.
	ScopeCrewAssigned
	// ScopeAll covers every record.
	ScopeAll
)

// Order fields a request may touch.
const (
	FieldID           = "id"
	FieldUser         = "user"
	FieldDeliveryCrew = "delivery_crew"
	FieldStatus       = "status"
	FieldTotal        = "total"
	FieldDate         = "date"
)

// Permission is a granted action. Fields lists the mutable fields for update
// actions; AnyField lifts the field restriction entirely.
type Permission struct {
	Action   Action
	Scope    Scope
	Fields   []string
	AnyField bool
}

// AllowsField reports whether field may be modified under p.
func (p Permission) AllowsField(field string) bool {
	return p.AnyField || slices.Contains(p.Fields, field)
}

type permissionTable map[identity.Role]map[Action]Permission

func grant(action Action, scope Scope, fields ...string) Permission {
	return Permission{Action: action, Scope: scope, Fields: fields}
}

func grantAll(action Action) Permission {
	return Permission{Action: action, Scope: ScopeAll, AnyField: true}
}

func defaultPermissions() permissionTable {
	table := permissionTable{
		identity.Customer: {
			ReadMenu:    grant(ReadMenu, ScopeAll),
			UseCart:     grant(UseCart, ScopeOwn),
			ReadOrders:  grant(ReadOrders, ScopeOwn),
			PlaceOrder:  grant(PlaceOrder, ScopeOwn),
			UpdateOrder: grant(UpdateOrder, ScopeOwn, FieldStatus),
		},
		identity.Manager: {
			ReadMenu:     grant(ReadMenu, ScopeAll),
			WriteMenu:    grant(WriteMenu, ScopeAll),
			ReadOrders:   grant(ReadOrders, ScopeAll),
			UpdateOrder:  grant(UpdateOrder, ScopeAll, FieldStatus, FieldDeliveryCrew),
			DeleteOrder:  grant(DeleteOrder, ScopeAll),
			ManageGroups: grant(ManageGroups, ScopeAll),
		},
		identity.DeliveryCrew: {
			ReadMenu:    grant(ReadMenu, ScopeAll),
			ReadOrders:  grant(ReadOrders, ScopeCrewAssigned),
			UpdateOrder: grant(UpdateOrder, ScopeCrewAssigned, FieldStatus),
		},
		identity.SuperUser: {},
	}
	// Superuser short-circuits every check. Its cart is still its own.
	for _, a := range []Action{ReadMenu, WriteMenu, DeleteMenu, ReadOrders, PlaceOrder, UpdateOrder, DeleteOrder, ManageGroups} {
		table[identity.SuperUser][a] = grantAll(a)
	}
	table[identity.SuperUser][UseCart] = Permission{Action: UseCart, Scope: ScopeOwn, AnyField: true}
	return table
}

// AccessGate decides whether a principal may perform an action, on which
// records, and with which fields. Roles missing from the table, including
// identity.Unrecognized, are denied everything.
type AccessGate struct {
	permissions permissionTable
}

func NewAccessGate() *AccessGate {
	return &AccessGate{permissions: defaultPermissions()}
}

// Authorize checks action for p and returns the granted Permission.
//
// fieldsTouched are the request fields an update carries. They are checked in
// sorted order and the first one outside the permitted set is reported in
// the Forbidden error; nothing should be applied in that case.
func (g *AccessGate) Authorize(p identity.Principal, action Action, fieldsTouched ...string) (Permission, error) {
	if err := p.Validate(); err != nil {
		return Permission{}, err
	}

	perm, ok := g.permissions[p.Role()][action]
	if !ok {
		return Permission{}, errs.NewForbiddenError(action.String())
	}

	fields := slices.Clone(fieldsTouched)
	slices.Sort(fields)
	for _, f := range fields {
		if !perm.AllowsField(f) {
			return Permission{}, errs.NewForbiddenFieldError(action.String(), f)
		}
	}
	return perm, nil
}

// AuthorizeOrder checks that o lies inside the scope granted by perm.
// assigneeInCrew tells whether the order's current delivery crew is a
// member of the Delivery crew group; only ScopeCrewAssigned looks at it.
func (g *AccessGate) AuthorizeOrder(p identity.Principal, perm Permission, o *order.Order, assigneeInCrew bool) error {
	if err := o.Validate(); err != nil {
		return err
	}

	var visible bool
	switch perm.Scope {
	case ScopeAll:
		visible = true
	case ScopeOwn:
		visible = p.Owns(o.Owner())
	case ScopeCrewAssigned:
		visible = o.DeliveryCrew() != nil && assigneeInCrew
	}
	if !visible {
		return errs.NewForbiddenResourceError(perm.Action.String(), "order "+o.ID().String())
	}
	return nil
}
