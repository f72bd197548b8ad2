package sealbar

import (
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	apperrors "github.com/louisbranch/crypto-seal/internal/services/web/platform/errors"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/crypto-seal/internal/services/web/platform/i18n"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/weberror"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	widget "github.com/louisbranch/crypto-seal/internal/services/web/sealbar"
	"github.com/louisbranch/crypto-seal/internal/services/web/templates"
	"github.com/skip2/go-qrcode"
)

const (
	submitRoute = "sealbar.submit"
	maxQRHash   = 128
	qrSize      = 256
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleFragment(w http.ResponseWriter, r *http.Request) {
	wdg := AcquireWidget(w, r, h.deps)
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Fragment: templates.SealBar(View(wdg.Snapshot(), loc, h.deps.Clock()), loc),
		Loc:      loc,
		Lang:     lang,
	})
	if err != nil {
		log.Printf("render seal bar: %v", err)
	}
}

func (h handlers) handleTab(w http.ResponseWriter, r *http.Request) {
	tab, ok := widget.ParseTab(r.FormValue("tab"))
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "unknown tab"))
		return
	}
	wdg := AcquireWidget(w, r, h.deps)
	wdg.SwitchTab(tab)
	h.respond(w, r, wdg)
}

func (h handlers) handleInput(w http.ResponseWriter, r *http.Request) {
	wdg := AcquireWidget(w, r, h.deps)
	wdg.Edit(r.FormValue("input"))
	h.respond(w, r, wdg)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	wdg := AcquireWidget(w, r, h.deps)
	if err := r.ParseForm(); err == nil {
		if _, ok := r.PostForm["input"]; ok {
			wdg.Edit(r.PostForm.Get("input"))
		}
	}
	if wdg.CanSubmit() && !h.deps.RateLimit.Check(w, r, submitRoute) {
		wdg.Refuse(widget.Notice{Key: widget.ErrKeyRateLimited})
		h.respond(w, r, wdg)
		return
	}

	outcome, issued := wdg.Submit(r.Context(), h.deps.Gateway)
	if issued && outcome.Err != nil {
		log.Printf("seal bar %s failed: %v", outcome.Tab, outcome.Err)
	}
	if outcome.Sealed() {
		if err := h.deps.Recent.Invalidate(r.Context()); err != nil {
			log.Printf("seal bar: %v", err)
		}
		httpx.TriggerEvent(w, templates.SealedEvent)
	}
	h.respond(w, r, wdg)
}

func (h handlers) handleCopy(w http.ResponseWriter, r *http.Request) {
	wdg := AcquireWidget(w, r, h.deps)
	wdg.MarkCopied(h.deps.Clock())
	h.respond(w, r, wdg)
}

func (h handlers) handleQR(w http.ResponseWriter, r *http.Request) {
	hash := strings.TrimSpace(r.URL.Query().Get("hash"))
	if !validQRHash(hash) {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "hash must be hex"))
		return
	}
	png, err := qrcode.Encode(hash, qrcode.Medium, qrSize)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// respond answers HTMX with the refreshed fragment and plain forms with a
// redirect back to the page.
func (h handlers) respond(w http.ResponseWriter, r *http.Request, wdg *widget.Widget) {
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	view := View(wdg.Snapshot(), loc, h.deps.Clock())
	if err := pagerender.WriteFragment(w, r, http.StatusOK, templates.SealBar(view, loc)); err != nil {
		log.Printf("render seal bar: %v", err)
	}
}

func validQRHash(hash string) bool {
	if hash == "" || len(hash) > maxQRHash {
		return false
	}
	for _, c := range hash {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
