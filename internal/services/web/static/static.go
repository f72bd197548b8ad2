// Package static embeds the browser assets.
package static

import "embed"

// FS exposes the web static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
