// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Afterglow site.
// Handlers are grouped by concern (public, consent, auth, admin) and
// receive their dependencies through the handler struct.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"afterglow/internal/cache"
	"afterglow/internal/models"
	"afterglow/internal/render"
	"afterglow/internal/session"
	"afterglow/internal/storage"
	"afterglow/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	previews      *store.PreviewStore
	linkStore     *store.SocialLinkStore
	gallery       *store.GalleryStore
	settings      *store.SiteSettingStore
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, previews *store.PreviewStore, linkStore *store.SocialLinkStore, gallery *store.GalleryStore, settings *store.SiteSettingStore, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		previews:      previews,
		linkStore:     linkStore,
		gallery:       gallery,
		settings:      settings,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// Dashboard renders the admin dashboard page with content counts.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	previewCount, _ := a.previews.Count()
	linkCount, _ := a.linkStore.Count()
	photoCount, _ := a.gallery.Count()

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"PreviewCount": previewCount,
			"LinkCount":    linkCount,
			"PhotoCount":   photoCount,
		},
	})
}

// SettingsPage renders the site settings form.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.All()
	if err != nil {
		slog.Error("load settings failed", "error", err)
		settings = models.SiteSettings{}
	}

	linkRecords, err := a.linkStore.List()
	if err != nil {
		slog.Error("list social links failed", "error", err)
	}

	a.renderer.Page(w, r, "settings", &render.PageData{
		Title:   "Settings",
		Section: "settings",
		Data: map[string]any{
			"Settings": settings,
			"Links":    linkRecords,
		},
	})
}

// settingsFormKeys are the setting keys the settings form may write.
var settingsFormKeys = []string{
	models.SettingHeroTitle,
	models.SettingHeroSubtitle,
	models.SettingHeroBadge,
	models.SettingHeroCTALabel,
	models.SettingHeroBackgroundURL,
	models.SettingHeroPrimaryLink,
	models.SettingContactEmail,
	models.SettingExitURL,
	models.SettingTermsMarkdown,
	models.SettingPrivacyMarkdown,
	models.SettingFAQMarkdown,
}

// SettingsSave persists the settings form and purges the page cache so
// the public site picks up the change immediately.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	values := make(map[string]string, len(settingsFormKeys))
	for _, key := range settingsFormKeys {
		values[key] = r.FormValue(key)
	}

	if errMsg := validateSettings(values); errMsg != "" {
		a.renderer.Page(w, r, "settings", &render.PageData{
			Title:   "Settings",
			Section: "settings",
			Data: map[string]any{
				"Settings": models.SiteSettings(values),
				"Error":    errMsg,
			},
		})
		return
	}

	if err := a.settings.SetMany(values); err != nil {
		slog.Error("save settings failed", "error", err)
		a.renderer.Page(w, r, "settings", &render.PageData{
			Title:   "Settings",
			Section: "settings",
			Data: map[string]any{
				"Settings": models.SiteSettings(values),
				"Error":    "Failed to save settings.",
			},
		})
		return
	}

	a.purgePages(r.Context())
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// purgePages clears the consent-keyed page cache after an admin write.
func (a *Admin) purgePages(ctx context.Context) {
	if a.pageCache != nil {
		a.pageCache.Purge(ctx)
	}
}
