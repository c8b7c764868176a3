package domainscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/commands"
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const createDomainMessageType = "sitenav.domains.create"

// CreateDomainCommand registers a new content domain. Single-root domains
// get their synthetic root page materialized as part of the create.
type CreateDomainCommand struct {
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	AddressingMode  string     `json:"addressing_mode"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	OrderInCategory int        `json:"order_in_category"`
	Published       bool       `json:"published"`
	TargetCountries []string   `json:"target_countries,omitempty"`
	CreatedBy       uuid.UUID  `json:"created_by"`
}

// Type implements command.Message.
func (CreateDomainCommand) Type() string { return createDomainMessageType }

// Validate ensures the command captures the required fields before reaching handlers.
func (m CreateDomainCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("sitenav.domains.create.slug_required", "slug is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = validation.NewError("sitenav.domains.create.name_required", "name is required")
	}
	if strings.TrimSpace(m.AddressingMode) == "" {
		errs["addressing_mode"] = validation.NewError("sitenav.domains.create.addressing_mode_required", "addressing_mode is required")
	}
	if m.CategoryID != nil && *m.CategoryID == uuid.Nil {
		errs["category_id"] = validation.NewError("sitenav.domains.create.category_id_invalid", "category_id must be a valid identifier when provided")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateDomainHandler creates domains via the domain service.
type CreateDomainHandler struct {
	inner *commands.Handler[CreateDomainCommand]
}

// NewCreateDomainHandler constructs a handler wired to the provided domain service.
func NewCreateDomainHandler(service domains.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateDomainCommand]) *CreateDomainHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CreateDomainCommand) error {
		_, err := service.Create(ctx, domains.CreateDomainRequest{
			Slug:            msg.Slug,
			Name:            msg.Name,
			AddressingMode:  msg.AddressingMode,
			CategoryID:      msg.CategoryID,
			OrderInCategory: msg.OrderInCategory,
			Published:       msg.Published,
			TargetCountries: msg.TargetCountries,
			CreatedBy:       msg.CreatedBy,
			UpdatedBy:       msg.CreatedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateDomainCommand]{
		commands.WithLogger[CreateDomainCommand](baseLogger),
		commands.WithOperation[CreateDomainCommand]("domains.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateDomainHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateDomainCommand].Execute.
func (h *CreateDomainHandler) Execute(ctx context.Context, msg CreateDomainCommand) error {
	return h.inner.Execute(ctx, msg)
}
