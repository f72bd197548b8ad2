// Package home serves the landing page.
package home

import (
	"log"
	"net/http"

	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	"github.com/louisbranch/crypto-seal/internal/services/web/modules/records"
	"github.com/louisbranch/crypto-seal/internal/services/web/modules/sealbar"
	webi18n "github.com/louisbranch/crypto-seal/internal/services/web/platform/i18n"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/weberror"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	"github.com/louisbranch/crypto-seal/internal/services/web/templates"
	"github.com/louisbranch/crypto-seal/internal/services/web/typewriter"
)

// Module provides the landing page and the 404 fallback.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the landing page handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		handleHome(w, r, deps)
	})
	mux.Handle(routepath.Root, weberror.NotFound())
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func handleHome(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	wdg := sealbar.AcquireWidget(w, r, deps)
	loc, lang := webi18n.ResolveLocalizer(w, r)
	view := templates.HomeView{
		Hero:    heroView(loc),
		SealBar: sealbar.View(wdg.Snapshot(), loc, deps.Clock()),
		Records: records.View(r.Context(), deps),
	}
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:    templates.T(loc, "title.home"),
		Fragment: templates.Home(view, loc),
		Loc:      loc,
		Lang:     lang,
	})
	if err != nil {
		log.Printf("render home: %v", err)
	}
}

func heroView(loc templates.Localizer) templates.HeroView {
	words := make([]string, 0, len(templates.HeroWordKeys))
	for _, key := range templates.HeroWordKeys {
		words = append(words, templates.T(loc, key))
	}
	plan, err := typewriter.Script(typewriter.Plan(words, typewriter.DefaultSpeed, typewriter.DefaultDelayBetweenWords))
	if err != nil {
		log.Printf("typewriter plan: %v", err)
		plan = ""
	}
	return templates.HeroView{Words: words, Plan: plan}
}
