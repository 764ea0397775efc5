// Package web provides embedded static assets (CSS, JS, placeholder
// images) for the public site and the admin interface. In development,
// templates load framework assets from CDN; in production, the compiled
// and vendored files are embedded here and served at /static/.
package web

import (
	"embed"
	"io/fs"
)

// StaticFS embeds the web/static/ directory tree. In Docker builds, this
// includes the compiled TailwindCSS and vendored HTMX files. In local
// development it may only contain the input.css source file.
//
//go:embed all:static
var StaticFS embed.FS

// Static returns the static asset tree rooted at static/, ready to be
// served by http.FileServer.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		// The directory is embedded at compile time; this cannot fail
		// at runtime unless the embed directive changes.
		panic(err)
	}
	return sub
}
