package customerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_KindHelpers_ShouldSeeThroughWrapping(t *testing.T) {
	err := errors.Wrap(NewValidation("amount", "must be positive"), "insert expense")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "insert expense: amount: must be positive", err.Error())
}

func Test_NotFound_ShouldFormatEntityAndID(t *testing.T) {
	err := NewNotFound("user", int64(42))

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "user 42 not found", err.Error())
}

func Test_Authorization_ShouldBeDetected(t *testing.T) {
	var err error = &AuthorizationError{UserID: 1, ExpenseID: 7}

	assert.True(t, IsAuthorization(errors.Wrap(err, "delete expense")))
	assert.False(t, IsInvalidPeriod(err))
}

func Test_InvalidPeriod_ShouldQuotePeriod(t *testing.T) {
	err := &InvalidPeriodError{Period: "yearly"}

	assert.True(t, IsInvalidPeriod(err))
	assert.Equal(t, `period "yearly" is not supported`, err.Error())
}
