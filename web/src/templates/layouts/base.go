package layouts

import (
	"github.com/nfrund/signup/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the full HTML document. Extra head nodes (like a
// refresh meta tag) are appended to <head>.
func Base(title string, flashes partials.FlashData, content cmp.Node, head ...cmp.Node) cmp.Node {
	return cmp.Group{
		g.Doctype(
			g.HTML(
				g.Lang("en"),
				g.Head(
					g.Meta(g.Charset("utf-8")),
					g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
					g.TitleEl(cmp.Text(CalculateTitle(title))),
					g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
					g.Script(g.Src(htmxSrc), g.Defer()),
					cmp.Group(head),
				),
				g.Body(
					g.Class("bg-gray-100 min-h-screen"),
					Body(flashes, content),
				),
			),
		),
	}
}

// Body is the inner part of <body>. HTMX navigations swap it in place.
func Body(flashes partials.FlashData, content cmp.Node) cmp.Node {
	return cmp.Group{
		partials.Toasts(flashes.Toasts()),
		g.Main(
			g.ID("content"),
			g.Class("container mx-auto p-8"),
			content,
		),
	}
}
