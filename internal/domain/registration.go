package domain

import (
	"context"
	"encoding/json"
	"strings"
)

// Field names accepted by the registration form. They double as the JSON keys
// sent to the registration API.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhoneNumber     = "phoneNumber"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FormFields lists the form fields in validation order.
var FormFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldPassword,
	FieldConfirmPassword,
}

// FormData holds the user-entered registration fields for one submission.
// Field order matters: validation walks the struct top to bottom.
type FormData struct {
	FirstName       string `json:"firstName" form:"firstName" validate:"personname"`
	LastName        string `json:"lastName" form:"lastName" validate:"personname"`
	Email           string `json:"email" form:"email" validate:"emailshape"`
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber" validate:"phone"`
	Password        string `json:"password" form:"password" validate:"strongpassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"strongpassword,eqfield=Password"`
}

// Set writes value into the field called name.
func (f *FormData) Set(name, value string) error {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhoneNumber:
		f.PhoneNumber = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Get returns the value of the field called name.
func (f FormData) Get(name string) (string, bool) {
	switch name {
	case FieldFirstName:
		return f.FirstName, true
	case FieldLastName:
		return f.LastName, true
	case FieldEmail:
		return f.Email, true
	case FieldPhoneNumber:
		return f.PhoneNumber, true
	case FieldPassword:
		return f.Password, true
	case FieldConfirmPassword:
		return f.ConfirmPassword, true
	}
	return "", false
}

// Error keys of an ErrorState.
const (
	FirstNameError   = "firstNameError"
	LastNameError    = "lastNameError"
	EmailError       = "emailError"
	PhoneNumberError = "phoneNumberError"
	PasswordError    = "passwordError"
)

// ErrorKeyFor maps a form field to the ErrorState entry that reports it.
// Both password fields report under PasswordError.
func ErrorKeyFor(field string) string {
	switch field {
	case FieldFirstName:
		return FirstNameError
	case FieldLastName:
		return LastNameError
	case FieldEmail:
		return EmailError
	case FieldPhoneNumber:
		return PhoneNumberError
	case FieldPassword, FieldConfirmPassword:
		return PasswordError
	}
	return ""
}

// ErrorState maps each error key to a message. An empty message means no error.
type ErrorState map[string]string

// NewErrorState returns an ErrorState with every key present and clear.
func NewErrorState() ErrorState {
	return ErrorState{
		FirstNameError:   "",
		LastNameError:    "",
		EmailError:       "",
		PhoneNumberError: "",
		PasswordError:    "",
	}
}

// Has reports whether key carries an error message.
func (s ErrorState) Has(key string) bool {
	return s[key] != ""
}

// Any reports whether any key carries an error message.
func (s ErrorState) Any() bool {
	for _, msg := range s {
		if msg != "" {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share storage with s.
func (s ErrorState) Clone() ErrorState {
	out := make(ErrorState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ToastType distinguishes the look of a toast.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

// Toast is a transient notification. Dismiss is called when the user closes it
// and may be nil.
type Toast struct {
	Type    ToastType
	Message string
	Dismiss func()
}

// RegisterResponse is the body returned by the registration API.
type RegisterResponse struct {
	Errors []json.RawMessage `json:"errors"`
}

// OK reports whether the API accepted the registration.
func (r *RegisterResponse) OK() bool {
	return r != nil && len(r.Errors) == 0
}

// Messages flattens the errors array into readable strings. Items may be plain
// strings or objects carrying "msg" or "message".
func (r *RegisterResponse) Messages() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Errors))
	for _, raw := range r.Errors {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil {
			switch {
			case obj.Msg != "":
				out = append(out, obj.Msg)
				continue
			case obj.Message != "":
				out = append(out, obj.Message)
				continue
			}
		}
		out = append(out, strings.TrimSpace(string(raw)))
	}
	return out
}

// Registrar submits a registration to the remote API.
type Registrar interface {
	Register(ctx context.Context, form FormData) (*RegisterResponse, error)
}
