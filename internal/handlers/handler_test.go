// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"afterglow/internal/cache"
	"afterglow/internal/consent"
	"afterglow/internal/database"
	"afterglow/internal/middleware"
	"afterglow/internal/render"
	"afterglow/internal/session"
	"afterglow/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "afterglow")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "afterglow")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session and cache keys.
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Renderer  *render.Renderer
	Sessions  *session.Store
	Previews  *store.PreviewStore
	Links     *store.SocialLinkStore
	Gallery   *store.GalleryStore
	Settings  *store.SiteSettingStore
	UserStore *store.UserStore
	PageCache *cache.PageCache
	Admin     *Admin
	Auth      *Auth
	Public    *Public
	Consent   *Consent
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	previews := store.NewPreviewStore(db)
	linkStore := store.NewSocialLinkStore(db)
	gallery := store.NewGalleryStore(db)
	settings := store.NewSiteSettingStore(db)
	userStore := store.NewUserStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	admin := NewAdmin(renderer, sessions, previews, linkStore, gallery, settings, nil, pageCache)
	auth := NewAuth(renderer, sessions, userStore)
	public := NewPublic(renderer, previews, linkStore, gallery, settings, pageCache, "Afterglow", "https://google.com")

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Renderer:  renderer,
		Sessions:  sessions,
		Previews:  previews,
		Links:     linkStore,
		Gallery:   gallery,
		Settings:  settings,
		UserStore: userStore,
		PageCache: pageCache,
		Admin:     admin,
		Auth:      auth,
		Public:    public,
		Consent:   NewConsent(),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email string) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
	}
}

// withConsent attaches a resolved consent store to the request, simulating
// the LoadConsent middleware for a visitor in the given state.
func withConsent(r *http.Request, state consent.State) *http.Request {
	store := consent.NewStore(discardPersistence{granted: state == consent.Granted})
	store.Resolve()
	ctx := context.WithValue(r.Context(), middleware.ConsentKey, store)
	return r.WithContext(ctx)
}

// discardPersistence is an in-memory consent persistence for tests.
type discardPersistence struct{ granted bool }

func (d discardPersistence) Load() (string, bool) {
	if d.granted {
		return consent.GrantedMarker, true
	}
	return "", false
}
func (d discardPersistence) Save(string) error { return nil }
func (d discardPersistence) Clear() error      { return nil }

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanPreviews removes test previews by title.
func cleanPreviews(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM previews WHERE title = $1", title)
	}
}

// cleanLinks removes test social links by name.
func cleanLinks(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, n := range names {
		db.Exec("DELETE FROM social_links WHERE name = $1", n)
	}
}
