package domainscmd_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	domainscmd "github.com/goliatone/go-sitenav/internal/commands/domains"
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/identity"
	"github.com/goliatone/go-sitenav/internal/pages"
)

func newDomainService(t *testing.T) (domains.Service, *pages.MemoryPageRepository) {
	t.Helper()
	domainRepo := domains.NewMemoryDomainRepository()
	categoryRepo := domains.NewMemoryCategoryRepository()
	pageRepo := pages.NewMemoryPageRepository()

	pageService := pages.NewService(pageRepo, domainRepo)
	svc := domains.NewService(domainRepo, categoryRepo,
		domains.WithRootMaterializer(pageService),
		domains.WithPageCounter(pageRepo),
	)
	return svc, pageRepo
}

func TestCreateDomainHandlerExecutes(t *testing.T) {
	svc, pageRepo := newDomainService(t)
	handler := domainscmd.NewCreateDomainHandler(svc, nil)

	err := handler.Execute(context.Background(), domainscmd.CreateDomainCommand{
		Slug:           "gdesign",
		Name:           "Graphic Design",
		AddressingMode: "single-root",
		Published:      true,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Slug != "gdesign" {
		t.Fatalf("domain not created: %v", listed)
	}
	if _, err := pageRepo.GetByID(context.Background(), identity.RootPageUUID(listed[0].ID)); err != nil {
		t.Fatalf("single-root create must materialize the synthetic root: %v", err)
	}
}

func TestCreateDomainHandlerValidates(t *testing.T) {
	svc, _ := newDomainService(t)
	handler := domainscmd.NewCreateDomainHandler(svc, nil)

	err := handler.Execute(context.Background(), domainscmd.CreateDomainCommand{
		Name: "Graphic Design",
	})
	if err == nil {
		t.Fatal("expected validation failure for missing slug and mode")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestSetAddressingModeHandlerExecutes(t *testing.T) {
	svc, pageRepo := newDomainService(t)

	created, err := svc.Create(context.Background(), domains.CreateDomainRequest{
		Slug:           "webdev",
		Name:           "Web Development",
		AddressingMode: "multi-root",
		Published:      true,
	})
	if err != nil {
		t.Fatalf("seed domain: %v", err)
	}

	handler := domainscmd.NewSetAddressingModeHandler(svc, nil)
	if err := handler.Execute(context.Background(), domainscmd.SetAddressingModeCommand{
		DomainID:       created.ID,
		AddressingMode: "single-root",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if _, err := pageRepo.GetByID(context.Background(), identity.RootPageUUID(created.ID)); err != nil {
		t.Fatalf("mode switch must materialize the synthetic root: %v", err)
	}
}

func TestSetAddressingModeHandlerWrapsDomainErrors(t *testing.T) {
	svc, _ := newDomainService(t)
	handler := domainscmd.NewSetAddressingModeHandler(svc, nil)

	err := handler.Execute(context.Background(), domainscmd.SetAddressingModeCommand{
		DomainID:       uuid.New(),
		AddressingMode: "single-root",
	})
	if err == nil {
		t.Fatal("expected failure for unknown domain")
	}
	if !errors.Is(err, domains.ErrDomainNotFound) {
		t.Fatalf("wrapped error must preserve the sentinel, got %v", err)
	}
}
