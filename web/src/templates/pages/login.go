package pages

import (
	"github.com/nfrund/signup/internal/view/dto/auth"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Login is the landing view after registration. Signing in itself belongs to the
// account service, so the page only confirms where to go next.
func Login(data auth.LoginData) cmp.Node {
	return g.Div(
		g.Class("max-w-lg mx-auto bg-white shadow-2xl rounded-xl p-10"),
		g.H1(g.Class("text-3xl font-extrabold text-indigo-700 mb-6"), cmp.Text("Log in")),
		g.P(
			g.Class("text-gray-700"),
			cmp.Text("Your account is ready. Sign in with "),
			cmp.If(data.Email != "", g.Strong(cmp.Text(data.Email))),
			cmp.If(data.Email == "", cmp.Text("your email address")),
			cmp.Text(" and the password you chose."),
		),
		g.P(
			g.Class("mt-6 text-sm text-gray-600"),
			cmp.Text("New here? "),
			g.A(g.Href("/register"), g.Class("text-indigo-600"), cmp.Text("Create an account")),
		),
	)
}
