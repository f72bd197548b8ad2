package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/health" {
		t.Fatalf("Health = %q", Health)
	}
	if SealBar != "/seal-bar/" {
		t.Fatalf("SealBar = %q", SealBar)
	}
	if Records != "/records/" {
		t.Fatalf("Records = %q", Records)
	}
	if APIDocs != "/api/docs/" {
		t.Fatalf("APIDocs = %q", APIDocs)
	}
}

func TestRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := APIResolveHash("abc"); got != "/api/resolve/abc" {
		t.Fatalf("APIResolveHash() = %q", got)
	}
	if got := SealBarQRFor("abc"); got != "/seal-bar/qr.png?hash=abc" {
		t.Fatalf("SealBarQRFor() = %q", got)
	}
}
