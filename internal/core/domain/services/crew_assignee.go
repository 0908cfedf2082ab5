package services

import (
	"fmt"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
)

// CrewAssigneeValidator checks that a user may be set as an order's delivery crew.
type CrewAssigneeValidator struct{}

func NewCrewAssigneeValidator() CrewAssigneeValidator {
	return CrewAssigneeValidator{}
}

// Validate accepts a nil assignee (unassign). Otherwise the user must be a
// member of the Delivery crew group at the time of the call.
func (CrewAssigneeValidator) Validate(assignee *identity.User) error {
	if assignee == nil {
		return nil
	}
	if err := assignee.Validate(); err != nil {
		return err
	}
	if !assignee.InGroup(identity.GroupDeliveryCrew) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery_crew",
			fmt.Errorf("user %s is not a member of %q", assignee.ID(), identity.GroupDeliveryCrew),
		)
	}
	return nil
}
