package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nfrund/signup/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// formFlags binds one flag per form field plus --file.
type formFlags struct {
	file   string
	values map[string]*string
}

var flagNames = map[string]string{
	domain.FieldFirstName:       "first-name",
	domain.FieldLastName:        "last-name",
	domain.FieldEmail:           "email",
	domain.FieldPhoneNumber:     "phone",
	domain.FieldPassword:        "password",
	domain.FieldConfirmPassword: "confirm-password",
}

func addFormFlags(cmd *cobra.Command) *formFlags {
	f := &formFlags{values: make(map[string]*string, len(domain.FormFields))}
	cmd.Flags().StringVar(&f.file, "file", "", "JSON file with the form fields (firstName, lastName, ...)")
	for _, field := range domain.FormFields {
		f.values[field] = cmd.Flags().String(flagNames[field], "", "value for "+field)
	}
	return f
}

// load reads --file first, then applies every flag that was set on top of it.
// apply is called once per field, in form order.
func (f *formFlags) load(cmd *cobra.Command, apply func(name, value string) error) error {
	var base domain.FormData
	if f.file != "" {
		raw, err := afero.ReadFile(appFs, f.file)
		if err != nil {
			return fmt.Errorf("failed to read form file: %w", err)
		}
		if err := json.Unmarshal(raw, &base); err != nil {
			return fmt.Errorf("failed to parse form file %s: %w", f.file, err)
		}
	}

	for _, field := range domain.FormFields {
		value, _ := base.Get(field)
		if cmd.Flags().Changed(flagNames[field]) {
			value = *f.values[field]
		}
		if err := apply(field, value); err != nil {
			return err
		}
	}
	return nil
}
