// Package registration owns the registration form workflow: form state, submission
// to the registration API, field validation and the follow-up toast and navigation.
package registration

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/validation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults used when Options leaves a value empty.
const (
	DefaultLoginPath     = "/login"
	DefaultRedirectDelay = 2000 * time.Millisecond
)

// Messages shown in toasts.
const (
	SuccessMessage       = "Registration successful!"
	NetworkErrorMessage  = "We could not reach the registration service. Please try again."
	RejectedErrorMessage = "Registration failed."
)

// Notifier shows transient notifications.
type Notifier interface {
	Notify(toast domain.Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(toast domain.Toast)

// Notify calls f(toast).
func (f NotifierFunc) Notify(toast domain.Toast) { f(toast) }

// Navigator moves the user to another view after a delay. The returned cancel
// function stops a navigation that has not happened yet.
type Navigator interface {
	Navigate(path string, after time.Duration) (cancel func())
}

// Options tunes a Controller.
type Options struct {
	LoginPath     string
	RedirectDelay time.Duration
	// ValidateFirst validates before calling the API and skips the call for
	// invalid forms. When false the form is sent first and validated afterwards.
	ValidateFirst bool
}

// Result describes one OnSubmit call.
type Result struct {
	// Submitted is true when the form was sent to the API.
	Submitted bool
	// Accepted is true when the API answered with no errors.
	Accepted bool
	Response *domain.RegisterResponse
	// SubmitErr holds the transport or status error of the API call.
	SubmitErr error
	// Invalid is the first failing field rule, if any.
	Invalid *validation.FieldError
	Errors  domain.ErrorState
}

// Controller is the state holder behind one mounted registration form.
type Controller struct {
	registrar domain.Registrar
	notifier  Notifier
	navigator Navigator
	validator *validation.Validator
	opts      Options
	logger    *slog.Logger

	mu         sync.Mutex
	form       domain.FormData
	errs       domain.ErrorState
	toast      *domain.Toast
	submitting bool
	cancelNav  func()
}

// NewController mounts a new form with empty state.
func NewController(registrar domain.Registrar, notifier Notifier, navigator Navigator, v *validation.Validator, opts Options) *Controller {
	if opts.LoginPath == "" {
		opts.LoginPath = DefaultLoginPath
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = DefaultRedirectDelay
	}
	if v == nil {
		v = validation.New()
	}
	return &Controller{
		registrar: registrar,
		notifier:  notifier,
		navigator: navigator,
		validator: v,
		opts:      opts,
		logger:    slog.Default(),
		errs:      domain.NewErrorState(),
	}
}

// WithLogger replaces the logger used for submission events.
func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	c.logger = logger
	return c
}

// OnFieldChange writes value into the named field. It never validates.
func (c *Controller) OnFieldChange(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Set(name, value)
}

// Form returns a copy of the current form data.
func (c *Controller) Form() domain.FormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Errors returns a copy of the current error state.
func (c *Controller) Errors() domain.ErrorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs.Clone()
}

// Toast returns the toast currently shown, or nil once it has been dismissed.
func (c *Controller) Toast() *domain.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.toast == nil {
		return nil
	}
	t := *c.toast
	return &t
}

// OnSubmit sends the form and validates it. Only the first failing field is
// reported. The returned error is non-nil only when another submission is
// still running; API failures are reported through Result.SubmitErr.
func (c *Controller) OnSubmit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Result{}, domain.ErrSubmissionInFlight
	}
	c.submitting = true
	form := c.form
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	var res Result
	if c.opts.ValidateFirst {
		if res.Invalid = c.validate(form); res.Invalid != nil {
			res.Errors = c.Errors()
			return res, nil
		}
		c.submit(ctx, form, &res)
		res.Errors = c.Errors()
		return res, nil
	}

	c.submit(ctx, form, &res)
	res.Invalid = c.validate(form)
	res.Errors = c.Errors()
	return res, nil
}

// Unmount cancels a pending navigation. The controller must not be used afterwards.
func (c *Controller) Unmount() {
	c.mu.Lock()
	cancel := c.cancelNav
	c.cancelNav = nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Controller) submit(ctx context.Context, form domain.FormData, res *Result) {
	res.Submitted = true
	resp, err := c.registrar.Register(ctx, form)
	res.Response = resp

	switch {
	case err != nil:
		res.SubmitErr = err
		c.logger.Warn("Registration request failed", "email", form.Email, "error", err)
		c.show(domain.ToastError, NetworkErrorMessage)
	case resp.OK():
		res.Accepted = true
		c.logger.Info("Registration accepted", "email", form.Email)
		c.show(domain.ToastSuccess, successMessage(form.FirstName))
		if c.navigator == nil {
			return
		}
		cancel := c.navigator.Navigate(c.opts.LoginPath, c.opts.RedirectDelay)
		c.mu.Lock()
		if c.cancelNav != nil {
			c.cancelNav()
		}
		c.cancelNav = cancel
		c.mu.Unlock()
	default:
		msgs := resp.Messages()
		c.logger.Info("Registration rejected", "email", form.Email, "errors", msgs)
		msg := RejectedErrorMessage
		if len(msgs) > 0 {
			msg = strings.Join(msgs, " ")
		}
		c.show(domain.ToastError, msg)
	}
}

// validate clears the error state and records the first failing rule.
func (c *Controller) validate(form domain.FormData) *validation.FieldError {
	fe := c.validator.First(form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = domain.NewErrorState()
	if fe != nil {
		c.errs[fe.ErrorKey] = fe.Message
	}
	return fe
}

func (c *Controller) show(kind domain.ToastType, message string) {
	toast := domain.Toast{Type: kind, Message: message}
	toast.Dismiss = c.dismissToast

	c.mu.Lock()
	c.toast = &toast
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.Notify(toast)
	}
}

func (c *Controller) dismissToast() {
	c.mu.Lock()
	c.toast = nil
	c.mu.Unlock()
}

func successMessage(firstName string) string {
	name := strings.TrimSpace(firstName)
	if name == "" {
		return SuccessMessage
	}
	return SuccessMessage + " Welcome, " + cases.Title(language.Und).String(name) + "."
}
