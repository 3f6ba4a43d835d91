package validation_test

import (
	"testing"

	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() domain.FormData {
	return domain.FormData{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		PhoneNumber:     "+491701234567",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
}

func TestValidator_ValidForm(t *testing.T) {
	v := validation.New()
	assert.Nil(t, v.First(validForm()))
	assert.Empty(t, v.All(validForm()))
	assert.NoError(t, v.Validate(validForm()))
}

func TestValidator_FirstFailureInFieldOrder(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		mutate   func(f *domain.FormData)
		errorKey string
		message  string
	}{
		{"first name too short", func(f *domain.FormData) { f.FirstName = "A" }, domain.FirstNameError, ""},
		{"first name with digit", func(f *domain.FormData) { f.FirstName = "Ad4" }, domain.FirstNameError, ""},
		{"last name too short", func(f *domain.FormData) { f.LastName = "L" }, domain.LastNameError, ""},
		{"last name with digit", func(f *domain.FormData) { f.LastName = "Love1ace" }, domain.LastNameError, ""},
		{"email without tld", func(f *domain.FormData) { f.Email = "ada@example" }, domain.EmailError, ""},
		{"email without at", func(f *domain.FormData) { f.Email = "ada.example.com" }, domain.EmailError, ""},
		{"phone without plus", func(f *domain.FormData) { f.PhoneNumber = "491701234567" }, domain.PhoneNumberError, ""},
		{"phone too short", func(f *domain.FormData) { f.PhoneNumber = "+49171234" }, domain.PhoneNumberError, ""},
		{"password without upper", func(f *domain.FormData) { f.Password = "secret123"; f.ConfirmPassword = "secret123" }, domain.PasswordError, ""},
		{"password too short", func(f *domain.FormData) { f.Password = "Sec1"; f.ConfirmPassword = "Sec1" }, domain.PasswordError, ""},
		{"weak confirmation", func(f *domain.FormData) { f.ConfirmPassword = "secret" }, domain.PasswordError, ""},
		{"mismatch", func(f *domain.FormData) { f.ConfirmPassword = "Secret1234" }, domain.PasswordError, validation.PasswordMismatchMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			fe := v.First(form)
			require.NotNil(t, fe)
			assert.Equal(t, tt.errorKey, fe.ErrorKey)
			assert.NotEmpty(t, fe.Message)
			if tt.message != "" {
				assert.Equal(t, tt.message, fe.Message)
			}
		})
	}
}

func TestValidator_AllReportsEveryField(t *testing.T) {
	v := validation.New()

	errs := v.All(domain.FormData{})
	require.Len(t, errs, 6)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, domain.FormFields, fields)

	first := v.First(domain.FormData{})
	require.NotNil(t, first)
	assert.Equal(t, domain.FieldFirstName, first.Field)
}

func TestRules(t *testing.T) {
	assert.True(t, validation.IsPersonName("Jo"))
	assert.True(t, validation.IsPersonName("Zoë"))
	assert.False(t, validation.IsPersonName("J"))
	assert.False(t, validation.IsPersonName("R2D2"))

	assert.True(t, validation.IsPhoneNumber("+4417012345"))
	assert.True(t, validation.IsPhoneNumber("+491701234567"))
	assert.False(t, validation.IsPhoneNumber("+4917012345678"))
	assert.False(t, validation.IsPhoneNumber("+49 170 1234567"))

	assert.True(t, validation.IsStrongPassword("Abcdefg1"))
	assert.False(t, validation.IsStrongPassword("ABCDEFG1"))
	assert.False(t, validation.IsStrongPassword("Abcdefgh"))
}
