package domains

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitenav/internal/countries"
)

// AddressingMode controls how a domain parents its top-level pages.
type AddressingMode string

const (
	// AddressingSingleRoot forces every top-level page under one hidden
	// synthetic root page.
	AddressingSingleRoot AddressingMode = "single-root"
	// AddressingMultiRoot lets pages attach directly to the domain.
	AddressingMultiRoot AddressingMode = "multi-root"
)

// ParseAddressingMode validates and canonicalizes a raw mode value.
func ParseAddressingMode(value string) (AddressingMode, error) {
	switch AddressingMode(strings.ToLower(strings.TrimSpace(value))) {
	case AddressingSingleRoot:
		return AddressingSingleRoot, nil
	case AddressingMultiRoot:
		return AddressingMultiRoot, nil
	default:
		return "", ErrAddressingModeInvalid
	}
}

// Domain is a top-level content area with its own slug namespace.
type Domain struct {
	bun.BaseModel `bun:"table:domains,alias:d"`

	ID              uuid.UUID             `bun:",pk,type:uuid" json:"id"`
	CategoryID      *uuid.UUID            `bun:"category_id,type:uuid" json:"category_id,omitempty"`
	Slug            string                `bun:"slug,notnull,unique" json:"slug"`
	Name            string                `bun:"name,notnull" json:"name"`
	AddressingMode  AddressingMode        `bun:"addressing_mode,notnull" json:"addressing_mode"`
	OrderInCategory int                   `bun:"order_in_category,notnull,default:0" json:"order_in_category"`
	Published       bool                  `bun:"published,notnull,default:false" json:"published"`
	TargetCountries countries.TargetList  `bun:"target_countries,type:jsonb" json:"target_countries,omitempty"`
	CreatedBy       uuid.UUID             `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy       uuid.UUID             `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	CreatedAt       time.Time             `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time             `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Targets satisfies countries.Targeted.
func (d *Domain) Targets() countries.TargetList {
	return d.TargetCountries
}

// Category groups domains for top-level navigation ordering only; it takes no
// part in hierarchy resolution.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	Name      string    `bun:"name,notnull" json:"name"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
