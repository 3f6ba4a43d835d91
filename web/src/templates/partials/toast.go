package partials

import (
	"github.com/nfrund/signup/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// FlashData carries session flash messages into a page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// Toasts converts flash messages into toasts.
func (f FlashData) Toasts() []domain.Toast {
	out := make([]domain.Toast, 0, len(f.Success)+len(f.Error))
	for _, msg := range f.Success {
		out = append(out, domain.Toast{Type: domain.ToastSuccess, Message: msg})
	}
	for _, msg := range f.Error {
		out = append(out, domain.Toast{Type: domain.ToastError, Message: msg})
	}
	return out
}

// ToastRegionID is the element that holds toasts on every page.
const ToastRegionID = "toasts"

// Toast renders a dismissible notification. Closing it removes the element.
func Toast(t domain.Toast) cmp.Node {
	style := "bg-green-100 border-green-500 text-green-800"
	if t.Type == domain.ToastError {
		style = "bg-red-100 border-red-500 text-red-800"
	}
	return g.Div(
		g.Class("toast toast-"+string(t.Type)+" flex items-start justify-between border-l-4 p-4 mb-2 rounded shadow "+style),
		g.Role("alert"),
		cmp.Attr("data-toast-type", string(t.Type)),
		g.Span(cmp.Text(t.Message)),
		g.Button(
			g.Type("button"),
			g.Class("ml-4 font-bold"),
			g.Aria("label", "Dismiss"),
			cmp.Attr("onclick", "this.closest('[role=alert]').remove()"),
			cmp.Text("×"),
		),
	)
}

// Toasts renders the toast region.
func Toasts(toasts []domain.Toast) cmp.Node {
	return g.Div(
		g.ID(ToastRegionID),
		g.Class("fixed top-4 right-4 w-96 z-50"),
		cmp.Map(toasts, Toast),
	)
}
