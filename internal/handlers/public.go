// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"afterglow/internal/cache"
	"afterglow/internal/consent"
	"afterglow/internal/links"
	"afterglow/internal/middleware"
	"afterglow/internal/models"
	"afterglow/internal/policy"
	"afterglow/internal/render"
	"afterglow/internal/store"
)

// homePreviewLimit caps how many previews the homepage shows before
// pointing at the full /previews page.
const homePreviewLimit = 6

// Public groups handlers for the visitor-facing site. Every page is
// rendered for the visitor's resolved consent state and cached in Valkey
// under a consent-keyed entry, so the blurred and unblurred variants of
// the same path never collide.
type Public struct {
	renderer  *render.Renderer
	previews  *store.PreviewStore
	linkStore *store.SocialLinkStore
	gallery   *store.GalleryStore
	settings  *store.SiteSettingStore
	pageCache *cache.PageCache
	siteName  string
	exitURL   string
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, previews *store.PreviewStore, linkStore *store.SocialLinkStore, gallery *store.GalleryStore, settings *store.SiteSettingStore, pageCache *cache.PageCache, siteName, exitURL string) *Public {
	return &Public{
		renderer:  renderer,
		previews:  previews,
		linkStore: linkStore,
		gallery:   gallery,
		settings:  settings,
		pageCache: pageCache,
		siteName:  siteName,
		exitURL:   exitURL,
	}
}

// PreviewView is a preview prepared for rendering: the visibility policy
// is applied once here so templates stay free of consent logic.
type PreviewView struct {
	Title     string
	PosterURL string
	VideoURL  string
	Duration  int
	Tags      []string
	Blur      bool
	Hover     bool
}

// FAQEntry is one question on the homepage FAQ section. Answer holds
// Markdown source; the template renders it.
type FAQEntry struct {
	Question string
	Answer   string
}

// homeFAQ is the built-in FAQ shown when the faq_md setting is empty.
var homeFAQ = []FAQEntry{
	{Question: "Is the content exclusive?", Answer: "Yes. Everything linked here is produced for the paid platforms and not reposted anywhere else."},
	{Question: "How often is new content posted?", Answer: "New drops land several times a week. Subscribers see them first."},
	{Question: "Can I request custom content?", Answer: "Custom requests are open to subscribers through the platform's direct messages."},
}

// faqFromMarkdown parses the admin-authored FAQ document: each "## "
// heading opens a question, and everything until the next heading is its
// answer. A document with no headings yields no entries, which keeps the
// built-in FAQ in place.
func faqFromMarkdown(src string) []FAQEntry {
	var entries []FAQEntry
	var question string
	var body []string

	flush := func() {
		if question != "" {
			entries = append(entries, FAQEntry{
				Question: question,
				Answer:   strings.TrimSpace(strings.Join(body, "\n")),
			})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(src, "\n") {
		if rest, ok := strings.CutPrefix(line, "## "); ok {
			flush()
			question = strings.TrimSpace(rest)
			continue
		}
		body = append(body, line)
	}
	flush()
	return entries
}

// Home renders the landing page: hero, ribbon, social grid, a slice of
// previews, gallery photos, and the FAQ.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	state := middleware.ConsentState(r.Context())
	if p.serveCached(w, r, "/", state) {
		return
	}

	settings := p.loadSettings()
	records := p.loadLinks()

	previews, err := p.previews.List()
	if err != nil {
		slog.Error("list previews failed", "error", err)
		previews = fallbackPreviews()
	}
	if len(previews) == 0 {
		previews = fallbackPreviews()
	}
	if len(previews) > homePreviewLimit {
		previews = previews[:homePreviewLimit]
	}

	photos := p.loadHomePhotos()

	hero := links.ResolveHero(records, settings)
	if label := settings.Get(models.SettingHeroCTALabel, ""); label != "" && hero != nil {
		hero.Label = label
		hero.ShortLabel = label
	}

	faq := homeFAQ
	if src := settings.Get(models.SettingFAQMarkdown, ""); src != "" {
		if parsed := faqFromMarkdown(src); len(parsed) > 0 {
			faq = parsed
		}
	}

	data := &render.PageData{
		Title:    settings.Get(models.SettingHeroTitle, p.siteName),
		Consent:  state,
		SiteName: p.siteName,
		Data: map[string]any{
			"ReturnPath":        r.URL.Path,
			"ExitURL":           settings.Get(models.SettingExitURL, p.exitURL),
			"ContactEmail":      settings.Get(models.SettingContactEmail, ""),
			"Ribbon":            links.Resolve(records, links.Ribbon),
			"Dock":              links.Resolve(records, links.Dock),
			"Grid":              links.Resolve(records, links.HomeGrid),
			"Hero":              hero,
			"HeroTitle":         settings.Get(models.SettingHeroTitle, p.siteName),
			"HeroSubtitle":      settings.Get(models.SettingHeroSubtitle, ""),
			"HeroBadge":         settings.Get(models.SettingHeroBadge, ""),
			"HeroBackgroundURL": settings.Get(models.SettingHeroBackgroundURL, ""),
			"Previews":          p.previewViews(previews, state),
			"Photos":            photos,
			"FAQ":               faq,
		},
	}

	p.render(w, r, "home", "/", state, data)
}

// Previews renders the full preview listing page.
func (p *Public) Previews(w http.ResponseWriter, r *http.Request) {
	state := middleware.ConsentState(r.Context())
	if p.serveCached(w, r, "/previews", state) {
		return
	}

	settings := p.loadSettings()
	records := p.loadLinks()

	previews, err := p.previews.List()
	if err != nil {
		slog.Error("list previews failed", "error", err)
		previews = fallbackPreviews()
	}
	if len(previews) == 0 {
		previews = fallbackPreviews()
	}

	data := &render.PageData{
		Title:    "Previews",
		Consent:  state,
		SiteName: p.siteName,
		Data: map[string]any{
			"ReturnPath":   r.URL.Path,
			"ExitURL":      settings.Get(models.SettingExitURL, p.exitURL),
			"ContactEmail": settings.Get(models.SettingContactEmail, ""),
			"Ribbon":       links.Resolve(records, links.Ribbon),
			"Dock":         links.Resolve(records, links.Dock),
			"Previews":     p.previewViews(previews, state),
		},
	}

	p.render(w, r, "previews", "/previews", state, data)
}

// Terms renders the terms-of-service page from the Markdown setting.
func (p *Public) Terms(w http.ResponseWriter, r *http.Request) {
	p.legalPage(w, r, "/terms", "Terms of Service", models.SettingTermsMarkdown)
}

// Privacy renders the privacy-policy page from the Markdown setting.
func (p *Public) Privacy(w http.ResponseWriter, r *http.Request) {
	p.legalPage(w, r, "/privacy", "Privacy Policy", models.SettingPrivacyMarkdown)
}

func (p *Public) legalPage(w http.ResponseWriter, r *http.Request, path, title, settingKey string) {
	state := middleware.ConsentState(r.Context())
	if p.serveCached(w, r, path, state) {
		return
	}

	settings := p.loadSettings()
	records := p.loadLinks()

	data := &render.PageData{
		Title:    title,
		Consent:  state,
		SiteName: p.siteName,
		Data: map[string]any{
			"ReturnPath":   path,
			"ExitURL":      settings.Get(models.SettingExitURL, p.exitURL),
			"ContactEmail": settings.Get(models.SettingContactEmail, ""),
			"Ribbon":       links.Resolve(records, links.Ribbon),
			"Dock":         links.Resolve(records, links.Dock),
			"Body":         settings.Get(settingKey, ""),
		},
	}

	p.render(w, r, "legal", path, state, data)
}

// NotFound renders the 404 page. Never cached.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	state := middleware.ConsentState(r.Context())
	settings := p.loadSettings()
	records := p.loadLinks()

	data := &render.PageData{
		Title:    "Not Found",
		Consent:  state,
		SiteName: p.siteName,
		Data: map[string]any{
			"ReturnPath":   "/",
			"ExitURL":      settings.Get(models.SettingExitURL, p.exitURL),
			"ContactEmail": settings.Get(models.SettingContactEmail, ""),
			"Ribbon":       links.Resolve(records, links.Ribbon),
			"Dock":         links.Resolve(records, links.Dock),
		},
	}

	html, err := p.renderer.Public("notfound", data)
	if err != nil {
		slog.Error("render notfound failed", "error", err)
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(html)
}

// serveCached writes the cached page for (path, state) if one exists.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, path string, state consent.State) bool {
	if p.pageCache == nil {
		return false
	}
	cached, ok := p.pageCache.Get(r.Context(), cache.PageKey(path, state))
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(cached)
	return true
}

// render executes a public template, stores the result in the page cache,
// and writes it to the response.
func (p *Public) render(w http.ResponseWriter, r *http.Request, name, path string, state consent.State, data *render.PageData) {
	html, err := p.renderer.Public(name, data)
	if err != nil {
		slog.Error("render page failed", "error", err, "page", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(r.Context(), cache.PageKey(path, state), html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// previewViews applies the visibility policy to each preview.
func (p *Public) previewViews(previews []models.Preview, state consent.State) []PreviewView {
	views := make([]PreviewView, 0, len(previews))
	for i := range previews {
		pv := &previews[i]
		blur := policy.ShouldBlur(pv.IsSensitive, state)
		views = append(views, PreviewView{
			Title:     pv.Title,
			PosterURL: pv.Poster(),
			VideoURL:  deref(pv.VideoURL),
			Duration:  pv.DisplayDuration(),
			Tags:      pv.DisplayTags(),
			Blur:      blur,
			Hover:     pv.VideoURL != nil && policy.AllowHoverPreview(pv.IsSensitive, state),
		})
	}
	return views
}

// loadSettings fetches all site settings, falling back to an empty map so
// every page still renders when the settings table is unreachable.
func (p *Public) loadSettings() models.SiteSettings {
	settings, err := p.settings.All()
	if err != nil {
		slog.Error("load settings failed", "error", err)
		return models.SiteSettings{}
	}
	return settings
}

// loadLinks fetches the social link records. On error the resolver's
// built-in defaults take over downstream.
func (p *Public) loadLinks() []models.SocialLink {
	records, err := p.linkStore.List()
	if err != nil {
		slog.Error("list social links failed", "error", err)
		return nil
	}
	return records
}

// loadHomePhotos returns gallery photos flagged for the homepage.
func (p *Public) loadHomePhotos() []models.GalleryImage {
	photos, err := p.gallery.List()
	if err != nil {
		slog.Error("list gallery failed", "error", err)
		return fallbackPhotos()
	}
	var out []models.GalleryImage
	for _, g := range photos {
		if g.OnHome() {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return fallbackPhotos()
	}
	return out
}

// deref safely dereferences an optional string.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
