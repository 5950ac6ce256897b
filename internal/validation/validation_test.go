package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	FullName        string `form:"full_name" validate:"required,min=3"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6,max=255"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func TestValidatePassesOnValidInput(t *testing.T) {
	v := New()

	err := v.Validate(registrationForm{
		FullName:        "Jane Doe",
		Email:           "jane.doe@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
}

func TestValidateReportsFormFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(registrationForm{
		FullName:        "J",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Equal(t, "full_name must be at least 3 characters long", fieldErrs.For("full_name"))
	require.Equal(t, "email must be a valid email address", fieldErrs.For("email"))
	require.Equal(t, "password must be at least 6 characters long", fieldErrs.For("password"))
	require.Equal(t, "passwords don't match", fieldErrs.For("confirm_password"))
}

func TestValidateRequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(registrationForm{})
	require.Error(t, err)

	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Equal(t, "full_name is required", fieldErrs.For("full_name"))
	require.Equal(t, "email is required", fieldErrs.For("email"))
	require.Empty(t, fieldErrs.For("unknown_field"))
}

func TestAsFieldErrorsRejectsOtherErrors(t *testing.T) {
	_, ok := AsFieldErrors(errOther{})
	require.False(t, ok)
}

type errOther struct{}

func (errOther) Error() string { return "other" }
