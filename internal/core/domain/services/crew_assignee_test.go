package services_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCrewAssigneeValidator_Validate(t *testing.T) {
	v := services.NewCrewAssigneeValidator()

	assert.NoError(t, v.Validate(nil))
	assert.NoError(t, v.Validate(newUser(t, false, identity.GroupDeliveryCrew)))

	err := v.Validate(newUser(t, false, identity.GroupManager))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = v.Validate(newUser(t, true))
	assert.True(t, errs.IsValidation(err))
}
