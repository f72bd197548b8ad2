package templates

import (
	"context"

	"github.com/a-h/templ"
)

// RecordsID is the recent-seals panel element.
const RecordsID = "records"

// RecordsView is the recent-seals panel state.
type RecordsView struct {
	Route       string
	Count       int
	Records     []RecordView
	Stale       bool
	Unavailable bool
}

// Records renders the recent-seals panel. It reloads itself when a seal
// succeeds anywhere on the page.
func Records(view RecordsView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<section")
		h.attr("id", RecordsID)
		h.attr("class", "records")
		if view.Route != "" {
			h.attr("hx-get", view.Route)
			h.attr("hx-trigger", SealedEvent+" from:body")
			h.attr("hx-swap", "outerHTML")
		}
		h.raw("><h2>")
		h.text(T(loc, "records.heading"))
		h.raw("</h2>")
		if view.Unavailable {
			h.raw(`<p class="unavailable">`)
			h.text(T(loc, "records.unavailable"))
			h.raw("</p></section>")
			return
		}
		h.raw(`<p class="count">`)
		h.text(T(loc, "records.count", view.Count))
		h.raw("</p>")
		if view.Stale {
			h.raw(`<p class="stale">`)
			h.text(T(loc, "records.stale"))
			h.raw("</p>")
		}
		if len(view.Records) == 0 {
			h.raw(`<p class="empty">`)
			h.text(T(loc, "records.empty"))
			h.raw("</p></section>")
			return
		}
		h.raw("<ol>")
		for _, record := range view.Records {
			h.raw("<li><code")
			h.attr("class", "hash")
			h.attr("title", record.ID)
			h.raw(">")
			h.text(record.Hash)
			h.raw("</code>")
			if record.SealedAt != "" {
				h.raw(" <time")
				h.attr("datetime", record.SealedAt)
				h.raw(">")
				h.text(record.SealedAt)
				h.raw("</time>")
			}
			h.raw("</li>")
		}
		h.raw("</ol></section>")
	})
}
