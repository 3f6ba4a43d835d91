package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/validation"
	"github.com/spf13/cobra"
)

var errInvalidForm = errors.New("form is invalid")

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check form values against the registration rules",
		Long: `Validate checks every field locally and reports all failures.
The registration API is not contacted.

Examples:
  signup-cli validate --first-name Ada --last-name Lovelace --email ada@example.com \
    --phone +491701234567 --password Secret123 --confirm-password Secret123
  signup-cli validate --file form.json`,
		Args: cobra.NoArgs,
	}
	flags := addFormFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var form domain.FormData
		if err := flags.load(cmd, form.Set); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		errs := validation.New().All(form)
		if len(errs) == 0 {
			fmt.Fprintln(out, "✅ Form is valid")
			return nil
		}
		for _, fe := range errs {
			fmt.Fprintf(out, "❌ %s: %s\n", fe.Field, fe.Message)
		}
		return errInvalidForm
	}
	return cmd
}
