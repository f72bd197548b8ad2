package templates

import (
	"context"

	"github.com/a-h/templ"
)

// HomeView is the landing page content.
type HomeView struct {
	Hero    HeroView
	SealBar SealBarView
	Records RecordsView
}

// Home renders the landing page content.
func Home(view HomeView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.render(ctx, Hero(view.Hero, loc))
		h.raw(`<section class="workspace">`)
		h.render(ctx, SealBar(view.SealBar, loc))
		h.render(ctx, Records(view.Records, loc))
		h.raw("</section>")
	})
}
