// Package web embeds the HTML page templates so the binary is self-contained
// and the templates in use always match the running code.
package web

import "embed"

// Templates holds all page templates embedded at compile time.
// Parse it with template.ParseFS(web.Templates, "templates/*.html").
//
//go:embed templates/*.html
var Templates embed.FS
