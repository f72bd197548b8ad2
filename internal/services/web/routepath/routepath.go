// Package routepath holds the browser-facing route constants.
package routepath

const (
	Root   = "/"
	Health = "/health"
	Static = "/static/"

	SealBar       = "/seal-bar/"
	SealBarTab    = "/seal-bar/tab"
	SealBarInput  = "/seal-bar/input"
	SealBarSubmit = "/seal-bar/submit"
	SealBarCopy   = "/seal-bar/copy"
	SealBarQR     = "/seal-bar/qr.png"

	Records = "/records/"

	API         = "/api/"
	APISeal     = "/api/seal"
	APIVerify   = "/api/verify"
	APIResolve  = "/api/resolve"
	APIList     = "/api/list"
	APIDocs     = "/api/docs/"
	apiResolveP = "/api/resolve/"
)

// APIResolveHash returns the GET resolve route for hash.
func APIResolveHash(hash string) string {
	return apiResolveP + hash
}

// SealBarQRFor returns the QR image route for hash.
func SealBarQRFor(hash string) string {
	return SealBarQR + "?hash=" + hash
}
