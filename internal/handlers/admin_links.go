// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"afterglow/internal/links"
	"afterglow/internal/models"
	"afterglow/internal/render"
)

// LinksList renders the social link management page.
func (a *Admin) LinksList(w http.ResponseWriter, r *http.Request) {
	items, err := a.linkStore.List()
	if err != nil {
		slog.Error("list social links failed", "error", err)
	}

	a.renderer.Page(w, r, "links_list", &render.PageData{
		Title:   "Social Links",
		Section: "links",
		Data:    map[string]any{"Items": items},
	})
}

// LinkNew renders the new link form.
func (a *Admin) LinkNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "link_form", &render.PageData{
		Title:   "New Link",
		Section: "links",
		Data:    map[string]any{"IsNew": true},
	})
}

// LinkCreate handles the new link form submission. The hero and navbar
// invariants are enforced here, before the row is written: a second hero
// link or a fourth navbar link is rejected with a form error, never
// silently truncated at render time.
func (a *Admin) LinkCreate(w http.ResponseWriter, r *http.Request) {
	l, errMsg := linkFromForm(r, &models.SocialLink{})
	if errMsg == "" {
		errMsg = a.checkLinkInvariants(l)
	}
	if errMsg != "" {
		a.renderer.Page(w, r, "link_form", &render.PageData{
			Title:   "New Link",
			Section: "links",
			Data:    map[string]any{"IsNew": true, "Item": l, "Error": errMsg},
		})
		return
	}

	if _, err := a.linkStore.Create(l); err != nil {
		slog.Error("create social link failed", "error", err)
		a.renderer.Page(w, r, "link_form", &render.PageData{
			Title:   "New Link",
			Section: "links",
			Data:    map[string]any{"IsNew": true, "Item": l, "Error": "Failed to create link."},
		})
		return
	}

	a.purgePages(r.Context())
	http.Redirect(w, r, "/admin/links", http.StatusSeeOther)
}

// LinkEdit renders the edit form for a link.
func (a *Admin) LinkEdit(w http.ResponseWriter, r *http.Request) {
	item, ok := a.findLink(w, r)
	if !ok {
		return
	}

	a.renderer.Page(w, r, "link_form", &render.PageData{
		Title:   "Edit Link",
		Section: "links",
		Data:    map[string]any{"IsNew": false, "Item": item},
	})
}

// LinkUpdate handles the edit form submission for a link.
func (a *Admin) LinkUpdate(w http.ResponseWriter, r *http.Request) {
	item, ok := a.findLink(w, r)
	if !ok {
		return
	}

	updated, errMsg := linkFromForm(r, item)
	if errMsg == "" {
		errMsg = a.checkLinkInvariants(updated)
	}
	if errMsg != "" {
		a.renderer.Page(w, r, "link_form", &render.PageData{
			Title:   "Edit Link",
			Section: "links",
			Data:    map[string]any{"IsNew": false, "Item": item, "Error": errMsg},
		})
		return
	}

	if err := a.linkStore.Update(updated); err != nil {
		slog.Error("update social link failed", "error", err)
		a.renderer.Page(w, r, "link_form", &render.PageData{
			Title:   "Edit Link",
			Section: "links",
			Data:    map[string]any{"IsNew": false, "Item": item, "Error": "Failed to update link."},
		})
		return
	}

	a.purgePages(r.Context())
	http.Redirect(w, r, "/admin/links", http.StatusSeeOther)
}

// LinkDelete removes a social link.
func (a *Admin) LinkDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := a.linkStore.Delete(id); err != nil {
		slog.Error("delete social link failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.purgePages(r.Context())
	w.WriteHeader(http.StatusOK)
}

// checkLinkInvariants maps resolver validation errors to form messages.
func (a *Admin) checkLinkInvariants(candidate *models.SocialLink) string {
	existing, err := a.linkStore.List()
	if err != nil {
		slog.Error("list social links failed", "error", err)
		return "Failed to validate link."
	}

	switch err := links.Validate(existing, candidate); {
	case errors.Is(err, links.ErrHeroTaken):
		return "Another link is already the hero call-to-action. Unset it first."
	case errors.Is(err, links.ErrNavbarFull):
		return "The navbar already has three links. Remove one first."
	case err != nil:
		return "Link does not pass validation."
	}
	return ""
}

// findLink resolves the {id} URL parameter to a social link row.
func (a *Admin) findLink(w http.ResponseWriter, r *http.Request) (*models.SocialLink, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return nil, false
	}

	item, err := a.linkStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return nil, false
	}
	return item, true
}

// linkFromForm applies form values onto a social link record.
func linkFromForm(r *http.Request, l *models.SocialLink) (*models.SocialLink, string) {
	name := r.FormValue("name")
	rawURL := r.FormValue("url")

	if errMsg := validateLink(name, rawURL); errMsg != "" {
		return nil, errMsg
	}

	l.Name = strings.TrimSpace(name)
	l.URL = strings.TrimSpace(rawURL)
	l.Description = strings.TrimSpace(r.FormValue("description"))
	l.PlatformKey = strings.TrimSpace(r.FormValue("platform_key"))
	l.CTALabel = strings.TrimSpace(r.FormValue("cta_label"))
	l.DisplayOrder, _ = strconv.Atoi(r.FormValue("display_order"))

	// Unchecked checkboxes post nothing; both flags are explicit here
	// because the form always renders them.
	navbar := r.FormValue("show_on_navbar") == "true"
	home := r.FormValue("show_on_home") == "true"
	l.ShowOnNavbar = &navbar
	l.ShowOnHome = &home
	l.ShowOnHero = r.FormValue("show_on_hero") == "true"
	l.IsPrivate = r.FormValue("is_private") == "true"

	return l, ""
}
