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

const movePageMessageType = "sitenav.pages.move"

// MovePageCommand reattaches a page under a new parent. A nil NewParentID
// re-runs parent resolution against the domain's addressing mode.
type MovePageCommand struct {
	PageID      uuid.UUID  `json:"page_id"`
	NewParentID *uuid.UUID `json:"new_parent_id,omitempty"`
	ActorID     uuid.UUID  `json:"actor_id"`
}

// Type implements command.Message.
func (MovePageCommand) Type() string { return movePageMessageType }

// Validate ensures the command captures the required identifiers before reaching handlers.
func (m MovePageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("sitenav.pages.move.page_id_required", "page_id is required")
	}
	if m.NewParentID != nil && *m.NewParentID == uuid.Nil {
		errs["new_parent_id"] = validation.NewError("sitenav.pages.move.new_parent_id_invalid", "new_parent_id must be a valid identifier when provided")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MovePageHandler moves pages via the page service.
type MovePageHandler struct {
	inner *commands.Handler[MovePageCommand]
}

// NewMovePageHandler constructs a handler wired to the provided page service.
func NewMovePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[MovePageCommand]) *MovePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg MovePageCommand) error {
		_, err := service.Move(ctx, pages.MovePageRequest{
			PageID:      msg.PageID,
			NewParentID: msg.NewParentID,
			ActorID:     msg.ActorID,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[MovePageCommand]{
		commands.WithLogger[MovePageCommand](baseLogger),
		commands.WithOperation[MovePageCommand]("pages.move"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &MovePageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[MovePageCommand].Execute.
func (h *MovePageHandler) Execute(ctx context.Context, msg MovePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
