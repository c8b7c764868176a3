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

const setAddressingModeMessageType = "sitenav.domains.set_addressing_mode"

// SetAddressingModeCommand switches a domain between single-root and
// multi-root addressing. Switching to single-root materializes the synthetic
// root; existing top-level pages keep their current parents.
type SetAddressingModeCommand struct {
	DomainID       uuid.UUID `json:"domain_id"`
	AddressingMode string    `json:"addressing_mode"`
	ActorID        uuid.UUID `json:"actor_id"`
}

// Type implements command.Message.
func (SetAddressingModeCommand) Type() string { return setAddressingModeMessageType }

// Validate ensures the command captures the required fields before reaching handlers.
func (m SetAddressingModeCommand) Validate() error {
	errs := validation.Errors{}
	if m.DomainID == uuid.Nil {
		errs["domain_id"] = validation.NewError("sitenav.domains.set_addressing_mode.domain_id_required", "domain_id is required")
	}
	if strings.TrimSpace(m.AddressingMode) == "" {
		errs["addressing_mode"] = validation.NewError("sitenav.domains.set_addressing_mode.addressing_mode_required", "addressing_mode is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetAddressingModeHandler updates a domain's addressing mode via the domain service.
type SetAddressingModeHandler struct {
	inner *commands.Handler[SetAddressingModeCommand]
}

// NewSetAddressingModeHandler constructs a handler wired to the provided domain service.
func NewSetAddressingModeHandler(service domains.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SetAddressingModeCommand]) *SetAddressingModeHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SetAddressingModeCommand) error {
		mode := msg.AddressingMode
		_, err := service.Update(ctx, domains.UpdateDomainRequest{
			ID:             msg.DomainID,
			AddressingMode: &mode,
			UpdatedBy:      msg.ActorID,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SetAddressingModeCommand]{
		commands.WithLogger[SetAddressingModeCommand](baseLogger),
		commands.WithOperation[SetAddressingModeCommand]("domains.set_addressing_mode"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SetAddressingModeHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SetAddressingModeCommand].Execute.
func (h *SetAddressingModeHandler) Execute(ctx context.Context, msg SetAddressingModeCommand) error {
	return h.inner.Execute(ctx, msg)
}
