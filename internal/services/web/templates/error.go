package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.title.not_found")
	}
	return T(loc, "error.title.server")
}

// ErrorState renders the error body for a 404 or 5xx response.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		body := "error.body.server"
		if statusCode == http.StatusNotFound {
			body = "error.body.not_found"
		}
		h.raw(`<section class="error-state"><h1>`)
		h.text(ErrorPageTitle(statusCode, loc))
		h.raw(`</h1><p>`)
		h.text(T(loc, body))
		h.raw(`</p><a href="/">`)
		h.text(T(loc, "error.home"))
		h.raw("</a></section>")
	})
}
