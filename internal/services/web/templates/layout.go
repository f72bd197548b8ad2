package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/crypto-seal/internal/platform/branding"
)

const (
	// RepositoryURL is the project page linked from the header.
	RepositoryURL = branding.ContributeURL
	// AuthorURL is the author profile linked from the footer.
	AuthorURL    = "https://github.com/saitddundar"
	authorHandle = "@saitddundar"
	htmxSrc      = "https://unpkg.com/htmx.org@2.0.4"
)

// LanguageLink is one entry of the header language switcher.
type LanguageLink struct {
	Label  string
	URL    string
	Active bool
}

// PageShell carries what the document shell needs around page content.
type PageShell struct {
	Title     string
	Lang      string
	Languages []LanguageLink
}

// Layout renders the full document with children inside <main>.
func Layout(shell PageShell, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := shell.Lang
		if lang == "" {
			lang = "en-US"
		}
		title := shell.Title
		if title == "" {
			title = T(loc, "title.home")
		}
		h.raw("<!doctype html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title><meta")
		h.attr("name", "description")
		h.attr("content", T(loc, "meta.description"))
		h.raw(`><link rel="stylesheet" href="/static/app.css">`)
		h.raw("<script")
		h.attr("src", htmxSrc)
		h.raw(` defer></script><script src="/static/sealbar.js" defer></script></head>`)
		h.raw(`<body><div class="shell">`)
		h.render(ctx, Header(shell.Languages, loc))
		h.raw(`<main id="main">`)
		h.children(ctx)
		h.raw("</main>")
		h.render(ctx, Footer(loc))
		h.raw("</div></body></html>")
	})
}

// Header renders the brand, contribute link, and language switcher.
func Header(languages []LanguageLink, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<header class="site-header"><a class="brand" href="/">`)
		h.text(branding.AppName)
		h.raw(`</a><nav class="site-nav">`)
		if len(languages) > 0 {
			h.raw(`<ul class="languages"`)
			h.attr("aria-label", T(loc, "header.language"))
			h.raw(">")
			for _, option := range languages {
				h.raw("<li><a")
				h.href("href", option.URL)
				if option.Active {
					h.raw(` class="active" aria-current="true"`)
				}
				h.raw(">")
				h.text(option.Label)
				h.raw("</a></li>")
			}
			h.raw("</ul>")
		}
		h.raw(`<a class="contribute"`)
		h.href("href", RepositoryURL)
		h.raw(` target="_blank" rel="noopener noreferrer">`)
		h.text(T(loc, "header.contribute"))
		h.raw("</a></nav></header>")
	})
}

// Footer renders the author credit.
func Footer(loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<footer class="site-footer">`)
		h.text(T(loc, "footer.made_by"))
		h.raw(" <a")
		h.href("href", AuthorURL)
		h.raw(` target="_blank" rel="noopener noreferrer">`)
		h.text(authorHandle)
		h.raw("</a></footer>")
	})
}

// MainContent renders children alone, as sent to HTMX requests.
func MainContent() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.children(ctx)
	})
}
