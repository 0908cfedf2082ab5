package identity

// Group names recognised by the role resolver.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

// KnownGroups lists the groups whose membership can be managed.
func KnownGroups() []string {
	return []string{GroupManager, GroupDeliveryCrew}
}

// IsKnownGroup reports whether name is a recognised group.
func IsKnownGroup(name string) bool {
	return name == GroupManager || name == GroupDeliveryCrew
}

// Role is the access level of a principal.
type Role int

const (
	// Unrecognized is assigned to users whose groups match no rule.
	// The zero value is Unrecognized so an uninitialised Role denies everything.
	Unrecognized Role = iota
	Customer
	Manager
	DeliveryCrew
	SuperUser
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "Customer"
	case Manager:
		return "Manager"
	case DeliveryCrew:
		return "DeliveryCrew"
	case SuperUser:
		return "SuperUser"
	case Unrecognized:
		return "Unrecognized"
	}
	return "Unrecognized"
}

// ResolveRole derives the role of u from its superuser flag and groups.
func ResolveRole(u *User) Role {
	if u == nil {
		return Unrecognized
	}
	switch {
	case u.IsSuperuser():
		return SuperUser
	case u.InGroup(GroupManager):
		return Manager
	case u.InGroup(GroupDeliveryCrew):
		return DeliveryCrew
	case len(u.Groups()) == 0:
		return Customer
	default:
		return Unrecognized
	}
}
