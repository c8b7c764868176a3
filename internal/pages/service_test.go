package pages_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/identity"
	"github.com/goliatone/go-sitenav/internal/pages"
)

type fixture struct {
	domains *domains.MemoryDomainRepository
	pages   *pages.MemoryPageRepository
	service pages.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	domainRepo := domains.NewMemoryDomainRepository()
	pageRepo := pages.NewMemoryPageRepository()
	svc := pages.NewService(pageRepo, domainRepo,
		pages.WithClock(func() time.Time {
			return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		}),
	)
	return &fixture{domains: domainRepo, pages: pageRepo, service: svc}
}

func (f *fixture) addDomain(t *testing.T, slug string, mode domains.AddressingMode) *domains.Domain {
	t.Helper()
	record, err := f.domains.Create(context.Background(), &domains.Domain{
		ID:             identity.DomainUUID(slug),
		Slug:           slug,
		Name:           slug,
		AddressingMode: mode,
		Published:      true,
		CreatedBy:      uuid.New(),
		UpdatedBy:      uuid.New(),
	})
	if err != nil {
		t.Fatalf("seed domain: %v", err)
	}
	return record
}

func (f *fixture) createPage(t *testing.T, req pages.CreatePageRequest) *pages.Page {
	t.Helper()
	if req.ContentType == "" {
		req.ContentType = string(pages.ContentNarrative)
	}
	created, err := f.service.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	return created
}

func TestCreateMultiRootKeepsNilParent(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	created := f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		Slug:     "with-code",
		Title:    "With Code",
	})
	if created.ParentID != nil {
		t.Fatalf("multi-root top-level page must keep nil parent, got %v", created.ParentID)
	}
}

func TestCreateSingleRootMaterializesSyntheticRoot(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "gdesign", domains.AddressingSingleRoot)

	created := f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		Slug:     "youtube-channel",
		Title:    "YouTube Channel",
	})
	if created.ParentID == nil {
		t.Fatal("single-root page must be attached to the synthetic root")
	}

	root, err := f.service.Get(context.Background(), *created.ParentID)
	if err != nil {
		t.Fatalf("load root: %v", err)
	}
	if !root.IsSyntheticRoot() {
		t.Fatalf("parent is not the synthetic root: slug=%q", root.Slug)
	}
	if root.ID != identity.RootPageUUID(domain.ID) {
		t.Fatal("synthetic root must use the deterministic id")
	}

	// A second create reuses the same root.
	second := f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		Slug:     "client-management",
		Title:    "Client Management",
	})
	if *second.ParentID != *created.ParentID {
		t.Fatal("root materialization must be idempotent")
	}
}

func TestCreateRejectsReservedSlug(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "gdesign", domains.AddressingSingleRoot)

	_, err := f.service.Create(context.Background(), pages.CreatePageRequest{
		DomainID:    domain.ID,
		Slug:        pages.SyntheticRootSlug,
		Title:       "Sneaky",
		ContentType: string(pages.ContentNarrative),
	})
	if !errors.Is(err, pages.ErrSlugReserved) {
		t.Fatalf("expected ErrSlugReserved, got %v", err)
	}
}

func TestCreateRejectsCrossDomainParent(t *testing.T) {
	f := newFixture(t)
	webdev := f.addDomain(t, "webdev", domains.AddressingMultiRoot)
	gdesign := f.addDomain(t, "gdesign", domains.AddressingMultiRoot)

	foreign := f.createPage(t, pages.CreatePageRequest{
		DomainID: gdesign.ID,
		Slug:     "landing",
		Title:    "Landing",
	})

	_, err := f.service.Create(context.Background(), pages.CreatePageRequest{
		DomainID:    webdev.ID,
		ParentID:    &foreign.ID,
		Slug:        "child",
		Title:       "Child",
		ContentType: string(pages.ContentNarrative),
	})
	if !errors.Is(err, pages.ErrParentInvalid) {
		t.Fatalf("expected ErrParentInvalid, got %v", err)
	}
}

func TestCreateRejectsNonexistentParent(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	bogus := uuid.New()
	_, err := f.service.Create(context.Background(), pages.CreatePageRequest{
		DomainID:    domain.ID,
		ParentID:    &bogus,
		Slug:        "child",
		Title:       "Child",
		ContentType: string(pages.ContentNarrative),
	})
	if !errors.Is(err, pages.ErrParentInvalid) {
		t.Fatalf("expected ErrParentInvalid, got %v", err)
	}
}

func TestCreateScopedSlugConflict(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	withCode := f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		Slug:     "with-code",
		Title:    "With Code",
	})
	noCode := f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		Slug:     "no-code",
		Title:    "No Code",
	})

	f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		ParentID: &withCode.ID,
		Slug:     "youtube-channel",
		Title:    "YouTube Channel",
	})

	// Same slug under a different parent is allowed.
	f.createPage(t, pages.CreatePageRequest{
		DomainID: domain.ID,
		ParentID: &noCode.ID,
		Slug:     "youtube-channel",
		Title:    "YouTube Channel",
	})

	// Same slug under the same parent is not.
	_, err := f.service.Create(context.Background(), pages.CreatePageRequest{
		DomainID:    domain.ID,
		ParentID:    &withCode.ID,
		Slug:        "youtube-channel",
		Title:       "Duplicate",
		ContentType: string(pages.ContentNarrative),
	})
	if !errors.Is(err, pages.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestMoveRejectsCycle(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	parent := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "parent", Title: "Parent"})
	child := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, ParentID: &parent.ID, Slug: "child", Title: "Child"})
	grandchild := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, ParentID: &child.ID, Slug: "grandchild", Title: "Grandchild"})

	_, err := f.service.Move(context.Background(), pages.MovePageRequest{
		PageID:      parent.ID,
		NewParentID: &grandchild.ID,
	})
	if !errors.Is(err, pages.ErrParentCycle) {
		t.Fatalf("expected ErrParentCycle, got %v", err)
	}

	_, err = f.service.Move(context.Background(), pages.MovePageRequest{
		PageID:      parent.ID,
		NewParentID: &parent.ID,
	})
	if !errors.Is(err, pages.ErrParentCycle) {
		t.Fatalf("expected ErrParentCycle for self-parent, got %v", err)
	}
}

func TestMoveReattachesSubtree(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	a := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "a", Title: "A"})
	b := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "b", Title: "B"})
	child := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, ParentID: &a.ID, Slug: "child", Title: "Child"})

	moved, err := f.service.Move(context.Background(), pages.MovePageRequest{
		PageID:      child.ID,
		NewParentID: &b.ID,
	})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.ParentID == nil || *moved.ParentID != b.ID {
		t.Fatal("child must now hang off b")
	}
}

func TestDeleteRefusesChildrenWithoutCascade(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	parent := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "parent", Title: "Parent"})
	child := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, ParentID: &parent.ID, Slug: "child", Title: "Child"})

	err := f.service.Delete(context.Background(), pages.DeletePageRequest{PageID: parent.ID})
	if !errors.Is(err, pages.ErrPageHasChildren) {
		t.Fatalf("expected ErrPageHasChildren, got %v", err)
	}

	if err := f.service.Delete(context.Background(), pages.DeletePageRequest{PageID: parent.ID, Cascade: true}); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	if _, err := f.service.Get(context.Background(), child.ID); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("expected child gone, got %v", err)
	}
}

func TestSyntheticRootIsImmutable(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "gdesign", domains.AddressingSingleRoot)

	created := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "youtube-channel", Title: "YouTube Channel"})
	rootID := *created.ParentID

	title := "Renamed"
	if _, err := f.service.Update(context.Background(), pages.UpdatePageRequest{PageID: rootID, Title: &title}); !errors.Is(err, pages.ErrRootImmutable) {
		t.Fatalf("expected ErrRootImmutable on update, got %v", err)
	}
	if err := f.service.Delete(context.Background(), pages.DeletePageRequest{PageID: rootID, Cascade: true}); !errors.Is(err, pages.ErrRootImmutable) {
		t.Fatalf("expected ErrRootImmutable on delete, got %v", err)
	}
	if _, err := f.service.Move(context.Background(), pages.MovePageRequest{PageID: rootID, NewParentID: &created.ID}); !errors.Is(err, pages.ErrRootImmutable) {
		t.Fatalf("expected ErrRootImmutable on move, got %v", err)
	}
}

func TestReplaceSectionsRejectsNonChildReference(t *testing.T) {
	f := newFixture(t)
	domain := f.addDomain(t, "webdev", domains.AddressingMultiRoot)

	parent := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "parent", Title: "Parent"})
	child := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, ParentID: &parent.ID, Slug: "child", Title: "Child"})
	stranger := f.createPage(t, pages.CreatePageRequest{DomainID: domain.ID, Slug: "stranger", Title: "Stranger"})

	_, err := f.service.ReplaceSections(context.Background(), pages.ReplaceSectionsRequest{
		PageID: parent.ID,
		Sections: []pages.SectionConfig{{
			Title:   "Tools",
			Column:  2,
			Order:   1,
			PageIDs: []uuid.UUID{child.ID, stranger.ID},
		}},
	})
	if !errors.Is(err, pages.ErrSectionPageNotChild) {
		t.Fatalf("expected ErrSectionPageNotChild, got %v", err)
	}

	updated, err := f.service.ReplaceSections(context.Background(), pages.ReplaceSectionsRequest{
		PageID: parent.ID,
		Sections: []pages.SectionConfig{{
			Title:   "Tools",
			Column:  2,
			Order:   1,
			PageIDs: []uuid.UUID{child.ID},
		}},
	})
	if err != nil {
		t.Fatalf("replace sections: %v", err)
	}
	if len(updated.Sections) != 1 || updated.Sections[0].Title != "Tools" {
		t.Fatalf("sections not persisted: %+v", updated.Sections)
	}
}
