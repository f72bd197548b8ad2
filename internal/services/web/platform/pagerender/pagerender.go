// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/crypto-seal/internal/services/web/platform/i18n"
	"github.com/louisbranch/crypto-seal/internal/services/web/templates"
	"golang.org/x/text/message"
)

// Page describes a module response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	// Loc and Lang are resolved from the request when Loc is nil.
	Loc  *message.Printer
	Lang string
}

// WritePage writes page as an HTMX fragment or inside the document shell.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}

	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		return fragment.Render(ctx, w)
	}
	shell := templates.PageShell{
		Title:     page.Title,
		Lang:      lang,
		Languages: languageLinks(r, loc, lang),
	}
	return templates.Layout(shell, loc).Render(templ.WithChildren(ctx, fragment), w)
}

// WriteFragment writes component without the document shell.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil || component == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return component.Render(httpx.RequestContext(r), w)
}

func languageLinks(r *http.Request, loc *message.Printer, lang string) []templates.LanguageLink {
	path, query := "/", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	options := webi18n.LanguageOptions(loc, lang, path, query)
	links := make([]templates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, templates.LanguageLink{Label: option.Label, URL: option.URL, Active: option.Active})
	}
	return links
}
