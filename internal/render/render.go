// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. Admin pages support full-page and HTMX partial
// rendering, detected via the HX-Request header. Public pages render into
// a buffer so handlers can store the result in the page cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"afterglow/internal/brand"
	"afterglow/internal/consent"
	"afterglow/internal/markdown"
	"afterglow/internal/middleware"
	"afterglow/internal/models"
	"afterglow/internal/policy"
	"afterglow/internal/session"
)

//go:embed templates/public/*.html templates/admin/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav section (e.g., "dashboard", "previews")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Consent   consent.State  // Resolved visitor consent (public pages)
	SiteName  string         // Display name from settings
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	admin   map[string]*template.Template
	public  map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its base layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS,
// HTMX); when false, they reference local static files.
func New(devMode bool) (*Renderer, error) {
	rn := &Renderer{
		admin:  make(map[string]*template.Template),
		public: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// markdown renders admin-authored Markdown (terms, privacy) to HTML.
			"markdown": func(source string) template.HTML {
				out, err := markdown.ToHTML(source)
				if err != nil {
					return ""
				}
				return template.HTML(out)
			},
			// dockStyle derives the translucent pill colors for a brand.
			"dockStyle": brand.DockStyle,
			// shouldBlur reports whether a preview renders blurred for the
			// visitor's consent state.
			"shouldBlur": func(p *models.Preview, state consent.State) bool {
				return policy.ShouldBlur(p.IsSensitive, state)
			},
			// granted reports whether the visitor has confirmed their age.
			"granted": func(state consent.State) bool {
				return state == consent.Granted
			},
			// duration formats seconds as "m:ss" for preview badges.
			"duration": func(seconds int) string {
				if seconds < 0 {
					seconds = 0
				}
				return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
			},
		},
	}

	if err := rn.parseSet("admin", rn.admin); err != nil {
		return nil, err
	}
	if err := rn.parseSet("public", rn.public); err != nil {
		return nil, err
	}
	return rn, nil
}

// parseSet parses every page template in templates/<dir> paired with that
// directory's base layout.
func (rn *Renderer) parseSet(dir string, dst map[string]*template.Template) error {
	entries, err := templateFS.ReadDir("templates/" + dir)
	if err != nil {
		return fmt.Errorf("read embedded templates %s: %w", dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error

		if dir == "admin" && standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templateFS, "templates/"+dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templateFS, "templates/"+dir+"/base.html", "templates/"+dir+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s/%s: %w", dir, name, parseErr)
		}

		dst[tmplName] = tmpl
	}
	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout.
	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Public renders a public page into a byte slice so the caller can both
// write it to the response and store it in the page cache.
func (rn *Renderer) Public(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.public[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, "base.html", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
