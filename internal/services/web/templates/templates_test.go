package templates

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/crypto-seal/internal/sealapi"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "github.com/louisbranch/crypto-seal/internal/services/web/platform/i18n"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	}
}

func byTagClass(tag string, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		return class == "" || strings.Contains(" "+attr(n, "class")+" ", " "+class+" ")
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func english() Localizer {
	return message.NewPrinter(language.AmericanEnglish)
}

func routes() SealBarRoutes {
	return SealBarRoutes{
		Fragment: "/seal-bar/",
		Tab:      "/seal-bar/tab",
		Input:    "/seal-bar/input",
		Submit:   "/seal-bar/submit",
		Copy:     "/seal-bar/copy",
	}
}

func TestLayoutRendersShellAroundChildren(t *testing.T) {
	t.Parallel()

	child := templ.Raw(`<p id="child">hello</p>`)
	shell := PageShell{Lang: "tr-TR", Languages: []LanguageLink{
		{Label: "English", URL: "/?lang=en-US"},
		{Label: "Türkçe", URL: "/?lang=tr-TR", Active: true},
	}}
	out := render(t, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(shell, english()).Render(templ.WithChildren(ctx, child), w)
	}))
	doc := parse(t, out)

	htmlNode := find(doc, byTagClass("html", ""))
	if got := attr(htmlNode, "lang"); got != "tr-TR" {
		t.Fatalf("lang = %q", got)
	}
	main := find(doc, byID("main"))
	if main == nil || find(main, byID("child")) == nil {
		t.Fatalf("children not inside main: %s", out)
	}
	if title := find(doc, byTagClass("title", "")); textOf(title) != "Crypto Seal" {
		t.Fatalf("title = %q", textOf(title))
	}
	contribute := find(doc, byTagClass("a", "contribute"))
	if contribute == nil {
		t.Fatal("missing contribute link")
	}
	if attr(contribute, "href") != RepositoryURL || attr(contribute, "target") != "_blank" {
		t.Fatalf("contribute link attrs = %v", contribute.Attr)
	}
	if !strings.Contains(attr(contribute, "rel"), "noopener") {
		t.Fatalf("rel = %q", attr(contribute, "rel"))
	}
	active := find(doc, byTagClass("a", "active"))
	if active == nil || attr(active, "href") != "/?lang=tr-TR" {
		t.Fatalf("active language link missing: %s", out)
	}
	footer := find(doc, byTagClass("footer", "site-footer"))
	if footer == nil || !strings.Contains(textOf(footer), "made by") || !strings.Contains(textOf(footer), "@saitddundar") {
		t.Fatalf("footer = %q", textOf(footer))
	}
}

func TestHeroEscapesPlanAndKeepsWords(t *testing.T) {
	t.Parallel()

	plan := `[{"delay":0,"words":["<S"],"cursor":0}]`
	doc := parse(t, render(t, Hero(HeroView{Words: []string{"Simple.", "Secure.", "Fast."}, Plan: plan}, english())))

	slogan := find(doc, byTagClass("h1", "slogan"))
	if slogan == nil {
		t.Fatal("missing slogan")
	}
	if got := attr(slogan, "data-typewriter"); got != plan {
		t.Fatalf("data-typewriter = %q", got)
	}
	if got := strings.TrimSpace(textOf(slogan)); got != "Simple. Secure. Fast." {
		t.Fatalf("slogan text = %q", got)
	}
	if find(doc, byTagClass("p", "description")) == nil {
		t.Fatal("missing description")
	}
}

func TestHeroCursorOnlyWithPlan(t *testing.T) {
	t.Parallel()

	words := []string{"Simple.", "Secure.", "Fast."}
	still := parse(t, render(t, Hero(HeroView{Words: words}, english())))
	if find(still, byTagClass("span", "cursor")) != nil {
		t.Fatal("hero without a plan should not render a cursor")
	}

	animated := parse(t, render(t, Hero(HeroView{Words: words, Plan: `[{"delay":0,"words":["","",""],"cursor":0}]`}, english())))
	if find(animated, byTagClass("span", "cursor")) == nil {
		t.Fatal("hero with a plan should render a cursor")
	}
}

func TestSealBarIdleSealTab(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, SealBar(SealBarView{Routes: routes(), Tab: "seal"}, english())))

	input := find(doc, byID(SealBarInputID))
	if input == nil {
		t.Fatal("missing input")
	}
	if hasAttr(input, "readonly") {
		t.Fatal("idle input should be editable")
	}
	if got := attr(input, "placeholder"); got != "Enter text to seal..." {
		t.Fatalf("placeholder = %q", got)
	}
	if got := attr(input, "hx-post"); got != "/seal-bar/input" {
		t.Fatalf("input hx-post = %q", got)
	}
	submit := find(doc, byTagClass("button", "submit"))
	if !hasAttr(submit, "disabled") {
		t.Fatal("submit should be disabled for empty input")
	}
	activeTab := find(doc, byTagClass("button", "active"))
	if attr(activeTab, "value") != "seal" {
		t.Fatalf("active tab = %q", attr(activeTab, "value"))
	}
	if find(doc, byTagClass("div", "result")) != nil {
		t.Fatal("idle widget should not show a result")
	}
}

func TestSealBarLocksInputWhileLoading(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, SealBar(SealBarView{
		Routes:  routes(),
		Tab:     "seal",
		Input:   "hello",
		Loading: true,
	}, english())))

	input := find(doc, byID(SealBarInputID))
	if !hasAttr(input, "disabled") || !hasAttr(input, "readonly") {
		t.Fatal("input should be disabled and readonly while loading")
	}
	if hasAttr(input, "hx-post") {
		t.Fatal("loading input should not post edits")
	}
	form := find(doc, byTagClass("form", "seal-form"))
	if got := attr(form, "hx-disabled-elt"); got != "find input[name=input], find button[type=submit]" {
		t.Fatalf("hx-disabled-elt = %q", got)
	}
}

func TestSealBarShowsErrorVerbatim(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, SealBar(SealBarView{
		Routes:    routes(),
		Tab:       "resolve",
		Input:     "abc",
		CanSubmit: true,
		Error:     "No record <found>",
	}, english())))

	errNode := find(doc, byTagClass("p", "error"))
	if errNode == nil || textOf(errNode) != "No record <found>" {
		t.Fatalf("error node = %v", errNode)
	}
	if hasAttr(find(doc, byTagClass("button", "submit")), "disabled") {
		t.Fatal("submit should be enabled")
	}
	if got := attr(find(doc, byID(SealBarInputID)), "placeholder"); got != "Enter hash to resolve..." {
		t.Fatalf("placeholder = %q", got)
	}
}

func TestSealBarFrozenSealResult(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, SealBar(SealBarView{
		Routes: routes(),
		Tab:    "seal",
		Input:  "deadbeef",
		Frozen: true,
		QRURL:  "/seal-bar/qr.png?hash=deadbeef",
	}, english())))

	input := find(doc, byID(SealBarInputID))
	if !hasAttr(input, "readonly") || attr(input, "value") != "deadbeef" {
		t.Fatalf("frozen input attrs = %v", input.Attr)
	}
	if hasAttr(input, "hx-post") {
		t.Fatal("frozen input should not sync edits")
	}
	copyButton := find(doc, byTagClass("button", "copy"))
	if copyButton == nil || attr(copyButton, "data-copy") != "deadbeef" || attr(copyButton, "hx-trigger") != "copied" {
		t.Fatalf("copy button = %v", copyButton)
	}
	img := find(doc, byTagClass("img", "qr"))
	if img == nil || attr(img, "src") != "/seal-bar/qr.png?hash=deadbeef" {
		t.Fatalf("qr img = %v", img)
	}
	clear := find(doc, byTagClass("form", "clear"))
	if clear == nil || attr(clear, "hx-post") != "/seal-bar/input" {
		t.Fatalf("clear form = %v", clear)
	}
	root := find(doc, byID(SealBarID))
	if hasAttr(root, "hx-trigger") {
		t.Fatal("root should not poll without copy feedback")
	}
}

func TestSealBarCopiedFeedbackSchedulesRefresh(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, SealBar(SealBarView{
		Routes: routes(),
		Tab:    "seal",
		Input:  "deadbeef",
		Frozen: true,
		Copied: true,
	}, english())))

	root := find(doc, byID(SealBarID))
	if attr(root, "hx-get") != "/seal-bar/" || attr(root, "hx-trigger") != "load delay:2s" {
		t.Fatalf("root attrs = %v", root.Attr)
	}
	if got := textOf(find(doc, byTagClass("button", "copy"))); got != "Copied!" {
		t.Fatalf("copy label = %q", got)
	}
}

func TestSealBarResolvedRecord(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, SealBar(SealBarView{
		Routes: routes(),
		Tab:    "resolve",
		Input:  "hello",
		Frozen: true,
		Record: &RecordView{ID: "rec-1", Hash: "abc", Text: "hello", SealedAt: "2026-01-02T03:04:05Z"},
	}, english())))

	record := find(doc, byTagClass("dl", "record"))
	if record == nil {
		t.Fatal("missing record details")
	}
	for _, want := range []string{"rec-1", "abc", "2026-01-02T03:04:05Z"} {
		if !strings.Contains(textOf(record), want) {
			t.Fatalf("record missing %q: %q", want, textOf(record))
		}
	}
	if find(doc, byTagClass("button", "copy")) != nil {
		t.Fatal("resolve result should not offer hash copy")
	}
}

func TestRecordsPanelStates(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, Records(RecordsView{
		Route:   "/records/",
		Count:   2,
		Records: []RecordView{{ID: "a", Hash: "h1", SealedAt: "t1"}, {ID: "b", Hash: "h2"}},
		Stale:   true,
	}, english())))
	panel := find(doc, byID(RecordsID))
	if attr(panel, "hx-trigger") != "sealed from:body" {
		t.Fatalf("panel trigger = %q", attr(panel, "hx-trigger"))
	}
	if got := textOf(find(doc, byTagClass("p", "count"))); got != "2 sealed" {
		t.Fatalf("count = %q", got)
	}
	if find(doc, byTagClass("p", "stale")) == nil {
		t.Fatal("missing stale notice")
	}
	if items := textOf(find(doc, byTagClass("ol", ""))); !strings.Contains(items, "h1") || !strings.Contains(items, "h2") {
		t.Fatalf("items = %q", items)
	}

	empty := parse(t, render(t, Records(RecordsView{}, english())))
	if find(empty, byTagClass("p", "empty")) == nil {
		t.Fatal("missing empty notice")
	}
	down := parse(t, render(t, Records(RecordsView{Unavailable: true}, english())))
	if find(down, byTagClass("p", "unavailable")) == nil || find(down, byTagClass("p", "count")) != nil {
		t.Fatal("unavailable panel should only show the notice")
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	notFound := textOf(parse(t, render(t, ErrorState(http.StatusNotFound, english()))))
	if !strings.Contains(notFound, "Page not found") {
		t.Fatalf("404 body = %q", notFound)
	}
	server := textOf(parse(t, render(t, ErrorState(http.StatusBadGateway, english()))))
	if !strings.Contains(server, "Something went wrong") {
		t.Fatalf("5xx body = %q", server)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "records.heading"); got != "records.heading" {
		t.Fatalf("T() = %q", got)
	}
	if got := T(nil, "%d sealed", 3); got != "3 sealed" {
		t.Fatalf("T() = %q", got)
	}
}

func TestNewRecordViewNormalizesTimestamp(t *testing.T) {
	t.Parallel()

	view := NewRecordView(sealapi.SealRecord{ID: "r", Hash: "h", Timestamp: "2026-01-02T06:04:05+03:00"})
	if view.SealedAt != "2026-01-02T03:04:05Z" {
		t.Fatalf("SealedAt = %q", view.SealedAt)
	}
	raw := NewRecordView(sealapi.SealRecord{Timestamp: "yesterday"})
	if raw.SealedAt != "yesterday" {
		t.Fatalf("SealedAt = %q", raw.SealedAt)
	}
}
