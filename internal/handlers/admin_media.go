// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"afterglow/internal/models"
	"afterglow/internal/render"
	"afterglow/internal/slug"
)

const (
	// maxUploadSize is the maximum allowed file upload size (50 MB).
	maxUploadSize = 50 << 20

	// posterMaxWidth is the width posters are downscaled to.
	posterMaxWidth = 1080

	// posterQuality is the JPEG quality for processed posters.
	posterQuality = 82

	// maxImagePixels caps the number of pixels to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxImagePixels = 100_000_000
)

// allowedImageTypes defines image MIME types accepted for posters and
// gallery photos.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// allowedVideoTypes defines video MIME types accepted for teaser clips.
var allowedVideoTypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
}

// PreviewPosterUpload handles a poster image upload for one preview. The
// image is downscaled, re-encoded as JPEG, and stored under the preview's
// key prefix. The previous poster object is removed.
func (a *Admin) PreviewPosterUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		http.Error(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	item, ok := a.findPreview(w, r)
	if !ok {
		return
	}

	fileBytes, contentType, ok := a.readUpload(w, r, allowedImageTypes)
	if !ok {
		return
	}

	processed, err := processPoster(bytes.NewReader(fileBytes))
	if err != nil {
		slog.Warn("poster processing failed, storing original", "error", err, "preview", item.ID)
		processed = fileBytes
	} else {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("previews/%s/%s-poster-%s%s",
		item.ID, slug.Generate(item.Title), uuid.New().String()[:8], extensionFromType(contentType))

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, key, contentType, bytes.NewReader(processed), int64(len(processed))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		http.Error(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	a.replaceMediaURL(ctx, item.PosterURL)

	url := a.storageClient.FileURL(key)
	if err := a.previews.SetPosterURL(item.ID, url); err != nil {
		slog.Error("save poster url failed", "error", err, "preview", item.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.purgePages(ctx)
	http.Redirect(w, r, "/admin/previews/"+item.ID.String(), http.StatusSeeOther)
}

// PreviewVideoUpload handles a teaser video upload for one preview.
// Videos are stored as-is; transcoding happens before upload.
func (a *Admin) PreviewVideoUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		http.Error(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	item, ok := a.findPreview(w, r)
	if !ok {
		return
	}

	fileBytes, contentType, ok := a.readUpload(w, r, allowedVideoTypes)
	if !ok {
		return
	}

	key := fmt.Sprintf("previews/%s/%s-teaser-%s%s",
		item.ID, slug.Generate(item.Title), uuid.New().String()[:8], extensionFromType(contentType))

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		http.Error(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	a.replaceMediaURL(ctx, item.VideoURL)

	url := a.storageClient.FileURL(key)
	if err := a.previews.SetVideoURL(item.ID, url); err != nil {
		slog.Error("save video url failed", "error", err, "preview", item.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.purgePages(ctx)
	http.Redirect(w, r, "/admin/previews/"+item.ID.String(), http.StatusSeeOther)
}

// GalleryList renders the gallery management page.
func (a *Admin) GalleryList(w http.ResponseWriter, r *http.Request) {
	items, err := a.gallery.List()
	if err != nil {
		slog.Error("list gallery failed", "error", err)
	}

	a.renderer.Page(w, r, "gallery", &render.PageData{
		Title:   "Gallery",
		Section: "gallery",
		Data: map[string]any{
			"Items":     items,
			"NoStorage": a.storageClient == nil,
		},
	})
}

// GalleryUpload handles a gallery photo upload.
func (a *Admin) GalleryUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		http.Error(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	fileBytes, contentType, ok := a.readUpload(w, r, allowedImageTypes)
	if !ok {
		return
	}

	processed, err := processPoster(bytes.NewReader(fileBytes))
	if err != nil {
		slog.Warn("photo processing failed, storing original", "error", err)
		processed = fileBytes
	} else {
		contentType = "image/jpeg"
	}

	id := uuid.New()
	key := fmt.Sprintf("gallery/%s%s", id, extensionFromType(contentType))

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, key, contentType, bytes.NewReader(processed), int64(len(processed))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		http.Error(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	count, _ := a.gallery.Count()
	if _, err := a.gallery.Create(&models.GalleryImage{
		URL:          a.storageClient.FileURL(key),
		AltText:      strings.TrimSpace(r.FormValue("alt_text")),
		DisplayOrder: count,
	}); err != nil {
		slog.Error("gallery db insert failed", "error", err, "key", key)
		http.Error(w, "Failed to save photo.", http.StatusInternalServerError)
		return
	}

	a.purgePages(ctx)
	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}

// GalleryDelete removes a gallery photo from both S3 and the database.
func (a *Admin) GalleryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	item, err := a.gallery.FindByID(id)
	if err != nil {
		slog.Error("gallery lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if err := a.gallery.Delete(id); err != nil {
		slog.Error("gallery db delete failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.replaceMediaURL(r.Context(), &item.URL)
	a.purgePages(r.Context())

	// Empty body for HTMX swap (removes the photo card).
	w.WriteHeader(http.StatusOK)
}

// readUpload parses the multipart form, sniffs the content type, and
// returns the file bytes. Writes the error response itself on rejection.
func (a *Admin) readUpload(w http.ResponseWriter, r *http.Request, allowed map[string]bool) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided.", http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		http.Error(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return nil, "", false
	}

	contentType, err := sniffContentType(file)
	if err != nil {
		http.Error(w, "Failed to read file.", http.StatusInternalServerError)
		return nil, "", false
	}

	if !allowed[contentType] {
		http.Error(w, fmt.Sprintf("File type %q is not allowed.", contentType), http.StatusBadRequest)
		return nil, "", false
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file.", http.StatusInternalServerError)
		return nil, "", false
	}
	return fileBytes, contentType, true
}

// sniffContentType detects the MIME type from the first 512 bytes and
// seeks the file back to the start.
func sniffContentType(file multipart.File) (string, error) {
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(sniffBuf[:n]), nil
}

// replaceMediaURL deletes the S3 object behind an old media URL, if the
// URL belongs to this bucket. Best-effort: failures are logged only.
// External URLs (partner CDNs, legacy hosting) are left alone.
func (a *Admin) replaceMediaURL(ctx context.Context, oldURL *string) {
	if a.storageClient == nil || oldURL == nil || *oldURL == "" {
		return
	}
	key, ok := a.storageClient.ExtractKey(*oldURL)
	if !ok {
		return
	}
	if err := a.storageClient.Delete(ctx, key); err != nil {
		slog.Warn("s3 stale media delete failed", "error", err, "key", key)
	}
}

// processPoster downscales an image to posterMaxWidth and re-encodes it
// as JPEG. Returns the original error if the image cannot be decoded.
func processPoster(src io.ReadSeeker) ([]byte, error) {
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Check for image bombs.
	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > posterMaxWidth {
		ratio := float64(posterMaxWidth) / float64(width)
		height = int(float64(height) * ratio)
		width = posterMaxWidth

		// Resize using CatmullRom (high quality).
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: posterQuality}); err != nil {
		return nil, fmt.Errorf("encode poster: %w", err)
	}
	return buf.Bytes(), nil
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	default:
		return ""
	}
}

// GallerySetOrder updates a photo's display order from an HTMX inline edit.
func (a *Admin) GallerySetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	item, err := a.gallery.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	item.DisplayOrder, _ = strconv.Atoi(r.FormValue("display_order"))
	if err := a.gallery.Update(item); err != nil {
		slog.Error("gallery update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.purgePages(r.Context())
	w.WriteHeader(http.StatusOK)
}
