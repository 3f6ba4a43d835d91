// Package validation holds the registration form rules. Rules are expressed as
// go-playground/validator tags on domain.FormData and evaluated in field order.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/signup/internal/domain"
)

// Custom validation tags.
const (
	TagPersonName     = "personname"
	TagEmailShape     = "emailshape"
	TagPhone          = "phone"
	TagStrongPassword = "strongpassword"
)

const (
	minNameLength     = 2
	minPasswordLength = 8
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// + country code (2) + area code (1-2) + subscriber number (7-8)
	phonePattern = regexp.MustCompile(`^\+\d{2}\d{1,2}\d{7,8}$`)
)

// PasswordMismatchMessage is reported when the confirmation differs from the password.
const PasswordMismatchMessage = "The passwords don't match"

var messages = map[string]map[string]string{
	domain.FieldFirstName: {
		TagPersonName: "First name must be at least 2 characters long and cannot contain numbers",
	},
	domain.FieldLastName: {
		TagPersonName: "Last name must be at least 2 characters long and cannot contain numbers",
	},
	domain.FieldEmail: {
		TagEmailShape: "Please enter a valid email address",
	},
	domain.FieldPhoneNumber: {
		TagPhone: "Phone number must be + country code, area code and number, e.g. +491701234567",
	},
	domain.FieldPassword: {
		TagStrongPassword: "Password must be at least 8 characters long and contain a lowercase letter, an uppercase letter and a number",
	},
	domain.FieldConfirmPassword: {
		TagStrongPassword: "Password confirmation must be at least 8 characters long and contain a lowercase letter, an uppercase letter and a number",
		"eqfield":         PasswordMismatchMessage,
	},
}

// FieldError describes one failed rule.
type FieldError struct {
	Field    string `json:"field"`
	ErrorKey string `json:"errorKey"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validator evaluates registration forms.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the registration rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on empty tags, which cannot happen here.
	_ = v.RegisterValidation(TagPersonName, func(fl validator.FieldLevel) bool {
		return IsPersonName(fl.Field().String())
	})
	_ = v.RegisterValidation(TagEmailShape, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return IsPhoneNumber(fl.Field().String())
	})
	_ = v.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate runs the struct rules on i. It satisfies echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// First returns the first failing rule in field order, or nil when the form is valid.
func (v *Validator) First(form domain.FormData) *FieldError {
	all := v.All(form)
	if len(all) == 0 {
		return nil
	}
	return &all[0]
}

// All returns every failing rule in field order.
func (v *Validator) All(form domain.FormData) []FieldError {
	err := v.Validate(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "unknown", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:    fe.Field(),
			ErrorKey: domain.ErrorKeyFor(fe.Field()),
			Rule:     fe.Tag(),
			Message:  messageFor(fe.Field(), fe.Tag()),
		})
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return "Invalid value for " + field
}

// IsPersonName reports whether s has at least two characters and no digits.
func IsPersonName(s string) bool {
	return utf8.RuneCountInString(s) >= minNameLength && !strings.ContainsAny(s, "0123456789")
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhoneNumber reports whether s is an international number like +491701234567.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// IsStrongPassword reports whether s has at least eight characters including a
// lowercase letter, an uppercase letter and a digit.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}
