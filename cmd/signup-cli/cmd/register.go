package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nfrund/signup/internal/apiclient"
	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/registration"
	"github.com/nfrund/signup/internal/validation"
	"github.com/spf13/cobra"
)

type registerOptions struct {
	apiURL        string
	timeout       time.Duration
	validateFirst bool
	delay         time.Duration
	noWait        bool
}

func newRegisterCmd() *cobra.Command {
	opts := &registerOptions{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Submit a registration to the registration API",
		Long: `Register sends the form to PUT /api/users/register, then validates it the
same way the web form does and reports the first invalid field.

Examples:
  signup-cli register --api-url http://localhost:3000 --file form.json
  signup-cli register --validate-first --first-name Ada --last-name Lovelace ...`,
		Args: cobra.NoArgs,
	}
	flags := addFormFlags(cmd)
	cmd.Flags().StringVar(&opts.apiURL, "api-url", os.Getenv("REGISTER_API_URL"), "base URL of the registration API")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "API request timeout")
	cmd.Flags().BoolVar(&opts.validateFirst, "validate-first", false, "validate before contacting the API")
	cmd.Flags().DurationVar(&opts.delay, "redirect-delay", registration.DefaultRedirectDelay, "delay before navigating to the login view")
	cmd.Flags().BoolVar(&opts.noWait, "no-wait", false, "do not wait for the navigation after success")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if opts.apiURL == "" {
			return fmt.Errorf("--api-url or REGISTER_API_URL is required")
		}
		return runRegister(cmd, flags, opts, apiclient.New(opts.apiURL, opts.timeout))
	}
	return cmd
}

func runRegister(cmd *cobra.Command, flags *formFlags, opts *registerOptions, registrar domain.Registrar) error {
	out := cmd.OutOrStdout()
	navigated := make(chan string, 1)

	ctrl := registration.NewController(
		registrar,
		registration.NotifierFunc(func(t domain.Toast) { printToast(out, t) }),
		registration.TimerNavigator{Go: func(path string) { navigated <- path }},
		validation.New(),
		registration.Options{RedirectDelay: opts.delay, ValidateFirst: opts.validateFirst},
	)
	defer ctrl.Unmount()

	if err := flags.load(cmd, ctrl.OnFieldChange); err != nil {
		return err
	}

	res, err := ctrl.OnSubmit(cmd.Context())
	if err != nil {
		return err
	}

	if res.Invalid != nil {
		fmt.Fprintf(out, "❌ %s: %s\n", res.Invalid.ErrorKey, res.Invalid.Message)
	}
	if res.Accepted && !opts.noWait {
		fmt.Fprintf(out, "Redirecting in %s...\n", opts.delay)
		fmt.Fprintf(out, "→ %s\n", <-navigated)
	}
	if res.Invalid != nil {
		return errInvalidForm
	}
	if !res.Accepted {
		return domain.ErrRegistrationFailed
	}
	return nil
}

func printToast(w io.Writer, t domain.Toast) {
	icon := "✅"
	if t.Type == domain.ToastError {
		icon = "❌"
	}
	fmt.Fprintf(w, "%s %s\n", icon, t.Message)
}
