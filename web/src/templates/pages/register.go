package pages

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/view/dto/auth"
	"github.com/nfrund/signup/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// RegisterFormID is the element swapped by htmx on submit.
const RegisterFormID = "register-form"

type fieldSpec struct {
	name         string
	label        string
	inputType    string
	autocomplete string
	placeholder  string
}

var registerFields = []fieldSpec{
	{domain.FieldFirstName, "First name", "text", "given-name", ""},
	{domain.FieldLastName, "Last name", "text", "family-name", ""},
	{domain.FieldEmail, "Email", "email", "email", "you@example.com"},
	{domain.FieldPhoneNumber, "Phone number", "tel", "tel", "+491701234567"},
	{domain.FieldPassword, "Password", "password", "new-password", ""},
	{domain.FieldConfirmPassword, "Confirm password", "password", "new-password", ""},
}

// Register is the content of the registration page.
func Register(data auth.RegisterData) cmp.Node {
	return g.Div(
		g.Class("max-w-lg mx-auto bg-white shadow-2xl rounded-xl p-10"),
		g.H1(g.Class("text-3xl font-extrabold text-indigo-700 mb-6"), cmp.Text("Create your account")),
		RegisterForm(data),
		g.P(
			g.Class("mt-6 text-sm text-gray-600"),
			cmp.Text("Already have an account? "),
			g.A(g.Href("/login"), g.Class("text-indigo-600"), cmp.Text("Log in")),
		),
	)
}

// RegisterForm renders the form with inline errors. It is also the htmx swap target.
func RegisterForm(data auth.RegisterData) cmp.Node {
	errs := data.Errors
	if errs == nil {
		errs = domain.NewErrorState()
	}
	return g.Form(
		g.ID(RegisterFormID),
		g.Method("post"),
		g.Action("/register"),
		hx.Post("/register"),
		hx.Target("#"+RegisterFormID),
		hx.Swap("outerHTML"),
		g.Class("space-y-4"),
		cmp.Map(registerFields, func(f fieldSpec) cmp.Node {
			return field(f, data.Form, errs)
		}),
		g.Button(
			g.Type("submit"),
			g.Class("w-full bg-indigo-600 text-white font-bold py-2 rounded"),
			cmp.Text("Register"),
		),
	)
}

// RegisterResult is the htmx response to a submit: the re-rendered form, the
// toasts swapped out of band and, after success, the delayed navigation.
func RegisterResult(data auth.RegisterData) cmp.Node {
	return cmp.Group{
		RegisterForm(data),
		g.Div(
			g.ID(partials.ToastRegionID),
			hx.SwapOOB("true"),
			g.Class("fixed top-4 right-4 w-96 z-50"),
			cmp.Map(data.Toasts, partials.Toast),
		),
		cmp.If(data.RedirectTo != "", DelayedNavigation(data.RedirectTo, data.RedirectAfter)),
	}
}

// DelayedNavigation loads path into the body once delay has passed.
func DelayedNavigation(path string, delay time.Duration) cmp.Node {
	return g.Div(
		g.ID("redirect"),
		hx.Get(path),
		hx.Trigger(fmt.Sprintf("load delay:%dms", delay.Milliseconds())),
		hx.Target("body"),
		hx.Swap("innerHTML"),
		hx.PushURL("true"),
	)
}

// RefreshMeta is the non-htmx equivalent of DelayedNavigation.
func RefreshMeta(path string, delay time.Duration) cmp.Node {
	seconds := strconv.FormatFloat(delay.Seconds(), 'f', -1, 64)
	return g.Meta(cmp.Attr("http-equiv", "refresh"), g.Content(seconds+";url="+path))
}

func field(f fieldSpec, form domain.FormData, errs domain.ErrorState) cmp.Node {
	value, _ := form.Get(f.name)
	if f.inputType == "password" {
		value = ""
	}
	// Both password inputs share passwordError; show it once under the confirmation.
	errKey := domain.ErrorKeyFor(f.name)
	showErr := errs.Has(errKey) && f.name != domain.FieldPassword

	return g.Div(
		g.Label(g.For(f.name), g.Class("block text-sm font-medium text-gray-700"), cmp.Text(f.label)),
		g.Input(
			g.ID(f.name),
			g.Name(f.name),
			g.Type(f.inputType),
			g.Value(value),
			g.AutoComplete(f.autocomplete),
			cmp.If(f.placeholder != "", g.Placeholder(f.placeholder)),
			cmp.If(errs.Has(errKey), g.Aria("invalid", "true")),
			g.Class("mt-1 block w-full border rounded p-2"),
		),
		cmp.If(showErr, g.P(g.Class("field-error"), cmp.Attr("data-error", errKey), cmp.Text(errs[errKey]))),
	)
}
