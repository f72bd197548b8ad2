package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

// HeroWordKeys are the slogan words in display order.
var HeroWordKeys = []string{"hero.word.simple", "hero.word.secure", "hero.word.fast"}

// HeroView is the landing slogan. Plan is the typewriter frame JSON played by
// the page script, which moves the cursor into the word slot each frame
// names. Without a plan the words render in full and no cursor is shown.
type HeroView struct {
	Words []string
	Plan  string
}

// Hero renders the slogan and product description.
func Hero(view HeroView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="hero"><h1 class="slogan"`)
		if view.Plan != "" {
			h.attr("data-typewriter", view.Plan)
		}
		h.raw(">")
		for i, word := range view.Words {
			h.raw(`<span class="word"`)
			h.attr("data-word-index", strconv.Itoa(i))
			h.raw(">")
			h.text(word)
			h.raw("</span>")
			if i < len(view.Words)-1 {
				h.raw(" ")
			}
		}
		if view.Plan != "" {
			h.raw(`<span class="cursor" aria-hidden="true"></span>`)
		}
		h.raw(`</h1><p class="description">`)
		h.text(T(loc, "hero.description"))
		h.raw("</p></section>")
	})
}
