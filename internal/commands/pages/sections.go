package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/commands"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const replaceSectionsMessageType = "sitenav.pages.replace_sections"

// ReplaceSectionsCommand swaps a page's section layout configuration.
type ReplaceSectionsCommand struct {
	PageID    uuid.UUID             `json:"page_id"`
	Sections  []pages.SectionConfig `json:"sections"`
	UpdatedBy uuid.UUID             `json:"updated_by"`
}

// Type implements command.Message.
func (ReplaceSectionsCommand) Type() string { return replaceSectionsMessageType }

// Validate ensures the command captures the required identifiers before
// reaching handlers. Per-section field validation happens in the service so
// the rules live next to the model.
func (m ReplaceSectionsCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("sitenav.pages.replace_sections.page_id_required", "page_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReplaceSectionsHandler replaces section layouts via the page service.
type ReplaceSectionsHandler struct {
	inner *commands.Handler[ReplaceSectionsCommand]
}

// NewReplaceSectionsHandler constructs a handler wired to the provided page service.
func NewReplaceSectionsHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReplaceSectionsCommand]) *ReplaceSectionsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ReplaceSectionsCommand) error {
		_, err := service.ReplaceSections(ctx, pages.ReplaceSectionsRequest{
			PageID:    msg.PageID,
			Sections:  msg.Sections,
			UpdatedBy: msg.UpdatedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[ReplaceSectionsCommand]{
		commands.WithLogger[ReplaceSectionsCommand](baseLogger),
		commands.WithOperation[ReplaceSectionsCommand]("pages.replace_sections"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReplaceSectionsHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ReplaceSectionsCommand].Execute.
func (h *ReplaceSectionsHandler) Execute(ctx context.Context, msg ReplaceSectionsCommand) error {
	return h.inner.Execute(ctx, msg)
}
