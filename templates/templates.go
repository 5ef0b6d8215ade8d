// Package templates embeds the server-rendered pages for both variants
// so the binary and the handler tests need no working-directory setup.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
