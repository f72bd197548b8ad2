// Package records serves the recent-seals panel.
package records

import (
	"context"
	"log"
	"net/http"

	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	webi18n "github.com/louisbranch/crypto-seal/internal/services/web/platform/i18n"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	"github.com/louisbranch/crypto-seal/internal/services/web/templates"
)

// Module provides the recent-seals panel route.
type Module struct{}

// New returns a records module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "records" }

// Mount wires the panel handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Records+"{$}", func(w http.ResponseWriter, r *http.Request) {
		loc, lang := webi18n.ResolveLocalizer(w, r)
		err := pagerender.WritePage(w, r, pagerender.Page{
			Fragment: templates.Records(View(r.Context(), deps), loc),
			Loc:      loc,
			Lang:     lang,
		})
		if err != nil {
			log.Printf("render records: %v", err)
		}
	})
	return module.Mount{Prefix: routepath.Records, Handler: mux}, nil
}

// View loads the panel state. Backend failures without a cached list render
// as unavailable rather than failing the page.
func View(ctx context.Context, deps module.Dependencies) templates.RecordsView {
	view := templates.RecordsView{Route: routepath.Records}
	snapshot, err := deps.Recent.Recent(ctx, deps.Limit())
	if err != nil {
		log.Printf("records: %v", err)
		view.Unavailable = true
		return view
	}
	view.Count = snapshot.Count
	view.Stale = snapshot.Stale
	view.Records = make([]templates.RecordView, 0, len(snapshot.Records))
	for _, record := range snapshot.Records {
		view.Records = append(view.Records, templates.NewRecordView(record))
	}
	return view
}
