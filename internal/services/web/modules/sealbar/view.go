package sealbar

import (
	"net/http"
	"time"

	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	widget "github.com/louisbranch/crypto-seal/internal/services/web/sealbar"
	"github.com/louisbranch/crypto-seal/internal/services/web/templates"
)

// Routes returns the endpoints the widget markup posts to.
func Routes() templates.SealBarRoutes {
	return templates.SealBarRoutes{
		Fragment: routepath.SealBar,
		Tab:      routepath.SealBarTab,
		Input:    routepath.SealBarInput,
		Submit:   routepath.SealBarSubmit,
		Copy:     routepath.SealBarCopy,
	}
}

// AcquireWidget returns the caller's widget, starting a session when the
// request has none or its session expired.
func AcquireWidget(w http.ResponseWriter, r *http.Request, deps module.Dependencies) *widget.Widget {
	if deps.Widgets == nil {
		return widget.NewWidget()
	}
	current, _ := sessioncookie.Read(r)
	id, wdg := deps.Widgets.Acquire(current)
	if id != current {
		sessioncookie.Write(w, r, id, deps.SchemePolicy)
	}
	return wdg
}

// View formats widget state for display at now.
func View(state widget.State, loc templates.Localizer, now time.Time) templates.SealBarView {
	view := templates.SealBarView{
		Routes:    Routes(),
		Tab:       string(state.Tab),
		Input:     state.Input,
		Loading:   state.Loading,
		Frozen:    state.Frozen,
		CanSubmit: state.CanSubmit(),
		Copied:    state.Copied(now),
	}
	if !state.Error.IsZero() {
		view.Error = state.Error.Text
		if view.Error == "" {
			view.Error = templates.T(loc, state.Error.Key)
		}
	}
	if state.Frozen && state.Tab == widget.TabSeal && validQRHash(state.Result) {
		view.QRURL = routepath.SealBarQRFor(state.Result)
	}
	if state.Record != nil {
		record := templates.NewRecordView(*state.Record)
		view.Record = &record
	}
	return view
}
