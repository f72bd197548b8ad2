// Package requestmeta resolves request scheme and origin facts.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only read when TrustForwardedProto is set, which should
// happen only behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Origin is a normalized scheme/host/port triple.
type Origin struct {
	Scheme string
	Host   string
	Port   string
}

// String renders the origin as scheme://host[:port], omitting default ports.
func (o Origin) String() string {
	if o.Host == "" {
		return ""
	}
	host := o.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if o.Port != "" && o.Port != defaultPort(o.Scheme) {
		host += ":" + o.Port
	}
	return o.Scheme + "://" + host
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme returns "http" or "https" for the request.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// RequestOrigin returns the origin the request was addressed to.
func RequestOrigin(r *http.Request, policy SchemePolicy) Origin {
	if r == nil {
		return Origin{}
	}
	scheme := Scheme(r, policy)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return Origin{Scheme: scheme, Host: host, Port: port}
}

// HasSameOriginProof reports whether Origin, or failing that Referer, names
// the same origin the request was sent to.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	want := RequestOrigin(r, policy)
	if want.Host == "" {
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return matchesOrigin(origin, want)
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return matchesOrigin(referer, want)
	}
	return false
}

func matchesOrigin(raw string, want Origin) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	got := Origin{
		Scheme: strings.ToLower(strings.TrimSpace(parsed.Scheme)),
		Host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		Port:   strings.TrimSpace(parsed.Port()),
	}
	if got.Scheme == "" || got.Host == "" {
		return false
	}
	if want.Scheme != "" && got.Scheme != want.Scheme {
		return false
	}
	if got.Host != want.Host {
		return false
	}
	if got.Port == "" {
		got.Port = defaultPort(got.Scheme)
	}
	return got.Port != "" && got.Port == want.Port
}

func defaultPort(scheme string) string {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
