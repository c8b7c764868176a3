package sitenav_test

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-sitenav"
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/navigation"
	"github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pkg/testsupport"
)

func newBunDB(t *testing.T) *bun.DB {
	t.Helper()
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)
	registerNavigationModels(t, bunDB)
	return bunDB
}

func registerNavigationModels(t *testing.T, db *bun.DB) {
	t.Helper()
	ctx := context.Background()
	models := []any{
		(*domains.Category)(nil),
		(*domains.Domain)(nil),
		(*pages.Page)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table %T: %v", model, err)
		}
	}
}

func TestEngine_SQLiteNavigationRoundTrip(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t)

	cfg := sitenav.DefaultConfig()
	cfg.Storage.Driver = sitenav.StorageDriverSQLite

	engine, err := sitenav.New(cfg, sitenav.WithDB(bunDB))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	webdev, err := engine.Domains().Create(ctx, domains.CreateDomainRequest{
		Slug:           "webdev",
		Name:           "Web Development",
		AddressingMode: "multi-root",
		Published:      true,
	})
	if err != nil {
		t.Fatalf("create domain: %v", err)
	}

	withCode, err := engine.Pages().Create(ctx, pages.CreatePageRequest{
		DomainID:    webdev.ID,
		Slug:        "with-code",
		Title:       "With Code",
		ContentType: string(pages.ContentNarrative),
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	if _, err := engine.Pages().Create(ctx, pages.CreatePageRequest{
		DomainID:    webdev.ID,
		ParentID:    &withCode.ID,
		Slug:        "youtube-channel",
		Title:       "YouTube Channels",
		ContentType: string(pages.ContentNarrative),
	}); err != nil {
		t.Fatalf("create child: %v", err)
	}

	// Scoped slug uniqueness holds through the database-backed repository.
	_, err = engine.Pages().Create(ctx, pages.CreatePageRequest{
		DomainID:    webdev.ID,
		Slug:        "with-code",
		Title:       "Duplicate",
		ContentType: string(pages.ContentNarrative),
	})
	if !errors.Is(err, pages.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}

	resolved, err := engine.Navigation().Resolve(ctx, navigation.ResolveRequest{
		Path: "/domain/webdev/with-code/youtube-channel",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.URL != "/domain/webdev/with-code/youtube-channel" {
		t.Fatalf("url = %q", resolved.URL)
	}
	if len(resolved.Breadcrumbs) != 4 {
		t.Fatalf("trail length = %d", len(resolved.Breadcrumbs))
	}

	// A second engine over the same handle reads what the first wrote.
	reopened, err := sitenav.New(cfg, sitenav.WithDB(bunDB))
	if err != nil {
		t.Fatalf("reopen engine: %v", err)
	}
	again, err := reopened.Navigation().Resolve(ctx, navigation.ResolveRequest{
		Path: "/domain/webdev/with-code",
	})
	if err != nil {
		t.Fatalf("resolve after reopen: %v", err)
	}
	if again.Node == nil || again.Node.Page.ID != withCode.ID {
		t.Fatal("persisted page not found after reopen")
	}
}

func TestEngine_SQLiteSingleRootMaterialization(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t)

	cfg := sitenav.DefaultConfig()
	cfg.Storage.Driver = sitenav.StorageDriverSQLite

	engine, err := sitenav.New(cfg, sitenav.WithDB(bunDB))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.Domains().Create(ctx, domains.CreateDomainRequest{
		Slug:           "gdesign",
		Name:           "Graphic Design",
		AddressingMode: "single-root",
		Published:      true,
	}); err != nil {
		t.Fatalf("create domain: %v", err)
	}

	resolved, err := engine.Navigation().Resolve(ctx, navigation.ResolveRequest{
		Path: "/domain/gdesign",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Node == nil || !resolved.Node.IsSyntheticRoot() {
		t.Fatal("single-root domain must resolve to its materialized root")
	}
}
