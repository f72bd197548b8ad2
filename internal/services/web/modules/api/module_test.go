package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
	"github.com/louisbranch/crypto-seal/internal/sealapi/sealmock"
	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/crypto-seal/internal/services/web/recent"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	websqlite "github.com/louisbranch/crypto-seal/internal/services/web/storage/sqlite"
)

func mountAPI(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.API {
		t.Fatalf("Prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func call(t *testing.T, h http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, body = %q", err, rr.Body.String())
	}
	return out
}

func TestModuleIDReturnsAPI(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "api" {
		t.Fatalf("ID() = %q, want %q", got, "api")
	}
}

func TestSealResolveVerifyList(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{Gateway: sealmock.New()})

	rr := call(t, h, http.MethodPost, routepath.APISeal, `{"text":"hello"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("seal status = %d body = %q", rr.Code, rr.Body.String())
	}
	sealed := decodeBody[sealapi.SealResponse](t, rr)
	if sealed.Hash != sealmock.HashText("hello") {
		t.Fatalf("hash = %q", sealed.Hash)
	}

	rr = call(t, h, http.MethodPost, routepath.APIResolve, `{"hash":"`+sealed.Hash+`"}`)
	resolved := decodeBody[sealapi.ResolveResponse](t, rr)
	if rr.Code != http.StatusOK || !resolved.Found || resolved.Record == nil || resolved.Record.Text != "hello" {
		t.Fatalf("resolve status = %d body = %+v", rr.Code, resolved)
	}

	rr = call(t, h, http.MethodGet, routepath.APIResolveHash(sealed.Hash), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("resolve by path status = %d", rr.Code)
	}

	rr = call(t, h, http.MethodPost, routepath.APIVerify, `{"text":"hello"}`)
	if verified := decodeBody[sealapi.VerifyResponse](t, rr); rr.Code != http.StatusOK || !verified.Valid {
		t.Fatalf("verify status = %d body = %+v", rr.Code, verified)
	}

	rr = call(t, h, http.MethodGet, routepath.APIList, "")
	if list := decodeBody[sealapi.ListResponse](t, rr); rr.Code != http.StatusOK || list.Count != 1 {
		t.Fatalf("list status = %d body = %+v", rr.Code, list)
	}
}

func TestLookupMissesAnswer404WithBody(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{Gateway: sealmock.New()})
	rr := call(t, h, http.MethodPost, routepath.APIResolve, `{"hash":"abc"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if resp := decodeBody[sealapi.ResolveResponse](t, rr); resp.Found || resp.Message != sealmock.MsgNotFound {
		t.Fatalf("body = %+v", resp)
	}

	rr = call(t, h, http.MethodPost, routepath.APIVerify, `{"text":"never"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("verify status = %d, want 404", rr.Code)
	}
}

func TestRejectsBlankInput(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{Gateway: sealmock.New()})
	tests := []struct {
		path string
		body string
	}{
		{path: routepath.APISeal, body: `{"text":"   "}`},
		{path: routepath.APIVerify, body: `{}`},
		{path: routepath.APIResolve, body: `{"hash":""}`},
		{path: routepath.APISeal, body: `not json`},
	}
	for _, tc := range tests {
		rr := call(t, h, http.MethodPost, tc.path, tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s %s status = %d, want 400", tc.path, tc.body, rr.Code)
		}
		if resp := decodeBody[ErrorResponse](t, rr); resp.Error == "" {
			t.Fatalf("%s missing error message", tc.path)
		}
	}
}

func TestGatewayFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{})
	rr := call(t, h, http.MethodPost, routepath.APISeal, `{"text":"hello"}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rr); resp.Error != "connection error" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestRateLimited(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{
		Gateway: sealmock.New(),
		RateLimit: &ratelimit.Policy{
			Limiter: ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{}),
			Limit:   1,
			Window:  time.Minute,
		},
	})
	if rr := call(t, h, http.MethodGet, routepath.APIList, ""); rr.Code != http.StatusOK {
		t.Fatalf("first status = %d", rr.Code)
	}
	rr := call(t, h, http.MethodGet, routepath.APIList, "")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rr.Code)
	}
}

type countingLister struct {
	calls int
}

func (l *countingLister) List(context.Context) (sealapi.ListResponse, error) {
	l.calls++
	return sealapi.ListResponse{}, nil
}

func TestSealInvalidatesRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache, err := websqlite.Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })

	lister := &countingLister{}
	svc := recent.New(lister, recent.WithCache(cache))
	for i := 0; i < 2; i++ {
		if _, err := svc.Recent(ctx, 5); err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
	}
	if lister.calls != 1 {
		t.Fatalf("List calls = %d, want 1", lister.calls)
	}

	h := mountAPI(t, module.Dependencies{Gateway: sealmock.New(), Recent: svc})
	if rr := call(t, h, http.MethodPost, routepath.APISeal, `{"text":"x"}`); rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if _, err := svc.Recent(ctx, 5); err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if lister.calls != 2 {
		t.Fatalf("List calls after seal = %d, want 2", lister.calls)
	}
}

func TestDocsServed(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{})
	rr := call(t, h, http.MethodGet, routepath.APIDocs+"doc.json", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"/resolve/{hash}"`) {
		t.Fatalf("doc missing resolve path: %q", rr.Body.String())
	}
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, module.Dependencies{})
	rr := call(t, h, http.MethodGet, "/api/unknown", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content-type = %q", got)
	}
}
