package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/crypto-seal/internal/services/web/platform/requestmeta"
)

func TestReadTrimsAndRejectsBlank(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("Read() ok without cookie")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: " sess-1 "})
	got, ok := Read(req)
	if !ok || got != "sess-1" {
		t.Fatalf("Read() = %q, %v", got, ok)
	}

	blank := httptest.NewRequest(http.MethodGet, "/", nil)
	blank.AddCookie(&http.Cookie{Name: Name, Value: "  "})
	if _, ok := Read(blank); ok {
		t.Fatal("Read() ok for blank cookie")
	}
	if _, ok := Read(nil); ok {
		t.Fatal("Read(nil) ok")
	}
}

func TestWriteSetsSecureFromPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	rr := httptest.NewRecorder()
	Write(rr, req, "sess-1", requestmeta.SchemePolicy{})
	cookie := rr.Result().Cookies()[0]
	if cookie.Name != Name || cookie.Value != "sess-1" || !cookie.HttpOnly || cookie.Secure {
		t.Fatalf("cookie = %+v", cookie)
	}

	rr = httptest.NewRecorder()
	Write(rr, req, "sess-1", requestmeta.SchemePolicy{TrustForwardedProto: true})
	if cookie := rr.Result().Cookies()[0]; !cookie.Secure {
		t.Fatalf("cookie = %+v, want secure", cookie)
	}
}
