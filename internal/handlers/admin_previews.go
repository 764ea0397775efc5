// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"afterglow/internal/models"
	"afterglow/internal/render"
)

// PreviewsList renders the preview management page.
func (a *Admin) PreviewsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.previews.List()
	if err != nil {
		slog.Error("list previews failed", "error", err)
	}

	a.renderer.Page(w, r, "previews_list", &render.PageData{
		Title:   "Previews",
		Section: "previews",
		Data:    map[string]any{"Items": items},
	})
}

// PreviewNew renders the new preview form.
func (a *Admin) PreviewNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "preview_form", &render.PageData{
		Title:   "New Preview",
		Section: "previews",
		Data:    map[string]any{"IsNew": true},
	})
}

// PreviewCreate handles the new preview form submission.
func (a *Admin) PreviewCreate(w http.ResponseWriter, r *http.Request) {
	p, errMsg := previewFromForm(r, &models.Preview{})
	if errMsg != "" {
		a.renderer.Page(w, r, "preview_form", &render.PageData{
			Title:   "New Preview",
			Section: "previews",
			Data:    map[string]any{"IsNew": true, "Error": errMsg},
		})
		return
	}

	created, err := a.previews.Create(p)
	if err != nil {
		slog.Error("create preview failed", "error", err)
		a.renderer.Page(w, r, "preview_form", &render.PageData{
			Title:   "New Preview",
			Section: "previews",
			Data:    map[string]any{"IsNew": true, "Error": "Failed to create preview."},
		})
		return
	}

	a.purgePages(r.Context())
	http.Redirect(w, r, "/admin/previews/"+created.ID.String(), http.StatusSeeOther)
}

// PreviewEdit renders the edit form for a preview.
func (a *Admin) PreviewEdit(w http.ResponseWriter, r *http.Request) {
	item, ok := a.findPreview(w, r)
	if !ok {
		return
	}

	a.renderer.Page(w, r, "preview_form", &render.PageData{
		Title:   "Edit Preview",
		Section: "previews",
		Data: map[string]any{
			"IsNew":     false,
			"Item":      item,
			"TagsValue": strings.Join(item.Tags, ", "),
			"PosterURL": deref(item.PosterURL),
			"VideoURL":  deref(item.VideoURL),
		},
	})
}

// PreviewUpdate handles the edit form submission for a preview.
func (a *Admin) PreviewUpdate(w http.ResponseWriter, r *http.Request) {
	item, ok := a.findPreview(w, r)
	if !ok {
		return
	}

	updated, errMsg := previewFromForm(r, item)
	if errMsg != "" {
		a.renderer.Page(w, r, "preview_form", &render.PageData{
			Title:   "Edit Preview",
			Section: "previews",
			Data: map[string]any{
				"IsNew":     false,
				"Item":      item,
				"TagsValue": strings.Join(item.Tags, ", "),
				"Error":     errMsg,
			},
		})
		return
	}

	if err := a.previews.Update(updated); err != nil {
		slog.Error("update preview failed", "error", err)
		a.renderer.Page(w, r, "preview_form", &render.PageData{
			Title:   "Edit Preview",
			Section: "previews",
			Data: map[string]any{
				"IsNew":     false,
				"Item":      item,
				"TagsValue": strings.Join(item.Tags, ", "),
				"Error":     "Failed to update preview.",
			},
		})
		return
	}

	a.purgePages(r.Context())
	http.Redirect(w, r, "/admin/previews/"+item.ID.String(), http.StatusSeeOther)
}

// PreviewDelete removes a preview and its uploaded media.
func (a *Admin) PreviewDelete(w http.ResponseWriter, r *http.Request) {
	item, ok := a.findPreview(w, r)
	if !ok {
		return
	}

	if err := a.previews.Delete(item.ID); err != nil {
		slog.Error("delete preview failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Best-effort S3 cleanup; external URLs are left alone.
	if a.storageClient != nil {
		ctx := r.Context()
		if item.PosterURL != nil {
			if key, ok := a.storageClient.ExtractKey(*item.PosterURL); ok {
				if err := a.storageClient.Delete(ctx, key); err != nil {
					slog.Warn("s3 poster delete failed", "error", err, "key", key)
				}
			}
		}
		if item.VideoURL != nil {
			if key, ok := a.storageClient.ExtractKey(*item.VideoURL); ok {
				if err := a.storageClient.Delete(ctx, key); err != nil {
					slog.Warn("s3 video delete failed", "error", err, "key", key)
				}
			}
		}
	}

	a.purgePages(r.Context())

	// Empty body for HTMX swap (removes the table row).
	w.WriteHeader(http.StatusOK)
}

// findPreview resolves the {id} URL parameter to a preview row, writing
// the error response itself when the row is missing.
func (a *Admin) findPreview(w http.ResponseWriter, r *http.Request) (*models.Preview, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return nil, false
	}

	item, err := a.previews.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return nil, false
	}
	return item, true
}

// previewFromForm applies form values onto a preview record. Returns a
// validation error message when the input is rejected.
func previewFromForm(r *http.Request, p *models.Preview) (*models.Preview, string) {
	title := r.FormValue("title")
	tagsValue := r.FormValue("tags")

	duration, _ := strconv.Atoi(r.FormValue("duration"))
	if errMsg := validatePreview(title, tagsValue, duration); errMsg != "" {
		return nil, errMsg
	}

	p.Title = strings.TrimSpace(title)
	p.Duration = duration
	p.DisplayOrder, _ = strconv.Atoi(r.FormValue("display_order"))

	var tags []string
	for _, t := range strings.Split(tagsValue, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	p.Tags = tags

	sensitive := r.FormValue("is_sensitive") == "true"
	p.IsSensitive = &sensitive

	return p, ""
}
