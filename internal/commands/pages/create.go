package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/commands"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const createPageMessageType = "sitenav.pages.create"

// CreatePageCommand requests creation of a page. A nil ParentID defers
// parent assignment to the owning domain's addressing mode.
type CreatePageCommand struct {
	DomainID        uuid.UUID            `json:"domain_id"`
	ParentID        *uuid.UUID           `json:"parent_id,omitempty"`
	Slug            string               `json:"slug"`
	Title           string               `json:"title"`
	ContentType     string               `json:"content_type"`
	Order           int                  `json:"order"`
	TargetCountries []string             `json:"target_countries,omitempty"`
	Sections        []pages.SectionConfig `json:"sections,omitempty"`
	CreatedBy       uuid.UUID            `json:"created_by"`
}

// Type implements command.Message.
func (CreatePageCommand) Type() string { return createPageMessageType }

// Validate ensures the command captures the required fields before reaching handlers.
func (m CreatePageCommand) Validate() error {
	errs := validation.Errors{}
	if m.DomainID == uuid.Nil {
		errs["domain_id"] = validation.NewError("sitenav.pages.create.domain_id_required", "domain_id is required")
	}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("sitenav.pages.create.slug_required", "slug is required")
	}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("sitenav.pages.create.title_required", "title is required")
	}
	if m.ParentID != nil && *m.ParentID == uuid.Nil {
		errs["parent_id"] = validation.NewError("sitenav.pages.create.parent_id_invalid", "parent_id must be a valid identifier when provided")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreatePageHandler creates pages via the page service using the shared
// command handler foundation.
type CreatePageHandler struct {
	inner *commands.Handler[CreatePageCommand]
}

// NewCreatePageHandler constructs a handler wired to the provided page service.
func NewCreatePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreatePageCommand]) *CreatePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CreatePageCommand) error {
		_, err := service.Create(ctx, pages.CreatePageRequest{
			DomainID:        msg.DomainID,
			ParentID:        msg.ParentID,
			Slug:            msg.Slug,
			Title:           msg.Title,
			ContentType:     msg.ContentType,
			Order:           msg.Order,
			TargetCountries: msg.TargetCountries,
			Sections:        msg.Sections,
			CreatedBy:       msg.CreatedBy,
			UpdatedBy:       msg.CreatedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreatePageCommand]{
		commands.WithLogger[CreatePageCommand](baseLogger),
		commands.WithOperation[CreatePageCommand]("pages.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreatePageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreatePageCommand].Execute.
func (h *CreatePageHandler) Execute(ctx context.Context, msg CreatePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
