package templates

import (
	"context"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/crypto-seal/internal/sealapi"
)

const (
	// SealBarID is the element swapped by every widget response.
	SealBarID = "seal-bar"
	// SealBarInputID keeps the focused input stable across swaps.
	SealBarInputID  = "seal-bar-input"
	sealBarStatusID = "seal-bar-status"
	// SealedEvent is triggered on the body after a successful seal.
	SealedEvent = "sealed"
)

// SealBarRoutes are the endpoints the widget posts to.
type SealBarRoutes struct {
	Fragment string
	Tab      string
	Input    string
	Submit   string
	Copy     string
}

// RecordView is a sealed record formatted for display.
type RecordView struct {
	ID       string
	Hash     string
	Text     string
	SealedAt string
}

// NewRecordView formats record for display. RFC 3339 timestamps are
// normalized to UTC; anything else is shown as the backend sent it.
func NewRecordView(record sealapi.SealRecord) RecordView {
	sealedAt := record.Timestamp
	if ts, ok := record.SealedAt(); ok {
		sealedAt = ts.UTC().Format(time.RFC3339)
	}
	return RecordView{ID: record.ID, Hash: record.Hash, Text: record.Text, SealedAt: sealedAt}
}

// SealBarView is the widget state formatted for display.
type SealBarView struct {
	Routes    SealBarRoutes
	Tab       string
	Input     string
	Loading   bool
	Frozen    bool
	CanSubmit bool
	Error     string
	Copied    bool
	QRURL     string
	Record    *RecordView
}

var sealBarTabs = []struct {
	value string
	label string
}{
	{value: "seal", label: "sealbar.tab.seal"},
	{value: "resolve", label: "sealbar.tab.resolve"},
}

// SealBar renders the seal/resolve widget fragment.
func SealBar(view SealBarView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<div")
		h.attr("id", SealBarID)
		h.attr("class", "seal-bar")
		h.attr("data-tab", view.Tab)
		if view.Copied {
			// Drop the confirmation once it has been shown.
			h.attr("hx-get", view.Routes.Fragment)
			h.attr("hx-trigger", "load delay:2s")
			h.attr("hx-swap", "outerHTML")
		}
		h.raw(">")
		writeSealBarTabs(h, view, loc)
		writeSealBarForm(h, view, loc)
		if view.Frozen {
			writeSealBarResult(h, view, loc)
		}
		h.raw("</div>")
	})
}

func writeSealBarTabs(h *htmlWriter, view SealBarView, loc Localizer) {
	h.raw(`<form class="tabs" role="tablist" method="post"`)
	h.attr("action", view.Routes.Tab)
	h.attr("hx-post", view.Routes.Tab)
	h.attr("hx-target", "#"+SealBarID)
	h.attr("hx-swap", "outerHTML")
	h.raw(">")
	for _, tab := range sealBarTabs {
		active := tab.value == view.Tab
		h.raw(`<button type="submit" name="tab" role="tab"`)
		h.attr("value", tab.value)
		if active {
			h.raw(` class="tab active" aria-selected="true"`)
		} else {
			h.raw(` class="tab" aria-selected="false"`)
		}
		h.raw(">")
		h.text(T(loc, tab.label))
		h.raw("</button>")
	}
	h.raw("</form>")
}

// sealBarDisabledElt lists the form controls HTMX disables while a submit is
// in flight.
const sealBarDisabledElt = "find input[name=input], find button[type=submit]"

func writeSealBarForm(h *htmlWriter, view SealBarView, loc Localizer) {
	h.raw(`<form class="seal-form" method="post"`)
	h.attr("action", view.Routes.Submit)
	h.attr("hx-post", view.Routes.Submit)
	h.attr("hx-target", "#"+SealBarID)
	h.attr("hx-swap", "outerHTML")
	h.attr("hx-disabled-elt", sealBarDisabledElt)
	h.raw(`><input type="text" name="input" autocomplete="off" spellcheck="false"`)
	h.attr("id", SealBarInputID)
	h.attr("value", view.Input)
	h.attr("placeholder", T(loc, "sealbar.placeholder."+view.Tab))
	locked := view.Frozen || view.Loading
	h.flag("readonly", locked)
	h.flag("disabled", view.Loading)
	if !locked {
		h.attr("hx-post", view.Routes.Input)
		h.attr("hx-trigger", "input changed delay:250ms")
		h.attr("hx-target", "#"+sealBarStatusID)
		h.attr("hx-select", "#"+sealBarStatusID)
		h.attr("hx-swap", "outerHTML")
	}
	h.raw("><div")
	h.attr("id", sealBarStatusID)
	h.raw(` class="status"><button type="submit" class="submit"`)
	h.flag("disabled", !view.CanSubmit)
	h.raw(">")
	if view.Loading {
		h.text(T(loc, "sealbar.loading"))
	} else {
		h.text(T(loc, "sealbar.submit"))
	}
	h.raw("</button>")
	if view.Error != "" {
		h.raw(`<p class="error" role="alert">`)
		h.text(view.Error)
		h.raw("</p>")
	}
	h.raw("</div></form>")
}

func writeSealBarResult(h *htmlWriter, view SealBarView, loc Localizer) {
	h.raw(`<div class="result">`)
	h.raw(`<form class="clear" method="post"`)
	h.attr("action", view.Routes.Input)
	h.attr("hx-post", view.Routes.Input)
	h.attr("hx-target", "#"+SealBarID)
	h.attr("hx-swap", "outerHTML")
	h.raw(`><input type="hidden" name="input" value=""><button type="submit">`)
	h.text(T(loc, "sealbar.clear"))
	h.raw("</button></form>")

	if view.Tab == "seal" {
		h.raw(`<button type="button" class="copy" hx-trigger="copied" hx-swap="outerHTML"`)
		h.attr("data-copy", view.Input)
		h.attr("hx-post", view.Routes.Copy)
		h.attr("hx-target", "#"+SealBarID)
		h.raw(">")
		if view.Copied {
			h.text(T(loc, "sealbar.copied"))
		} else {
			h.text(T(loc, "sealbar.copy"))
		}
		h.raw("</button>")
		if view.QRURL != "" {
			h.raw(`<img class="qr" width="128" height="128"`)
			h.attr("src", view.QRURL)
			h.attr("alt", T(loc, "sealbar.qr.alt"))
			h.raw(">")
		}
	}
	if view.Record != nil {
		h.raw(`<dl class="record"><dt>`)
		h.text(T(loc, "sealbar.record.id"))
		h.raw("</dt><dd>")
		h.text(view.Record.ID)
		h.raw("</dd><dt>")
		h.text(T(loc, "sealbar.record.hash"))
		h.raw("</dt><dd><code>")
		h.text(view.Record.Hash)
		h.raw("</code></dd>")
		if view.Record.SealedAt != "" {
			h.raw("<dt>")
			h.text(T(loc, "sealbar.record.sealed_at"))
			h.raw("</dt><dd><time")
			h.attr("datetime", view.Record.SealedAt)
			h.raw(">")
			h.text(view.Record.SealedAt)
			h.raw("</time></dd>")
		}
		h.raw("</dl>")
	}
	h.raw("</div>")
}
