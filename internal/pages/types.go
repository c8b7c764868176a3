package pages

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// Service describes page management capabilities. Parent resolution per the
// owning domain's addressing mode happens inside Create and Move; callers
// never compute effective parents themselves.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID, slug string) (*Page, error)
	ListByDomain(ctx context.Context, domainID uuid.UUID) ([]*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	Move(ctx context.Context, req MovePageRequest) (*Page, error)
	Delete(ctx context.Context, req DeletePageRequest) error
	ReplaceSections(ctx context.Context, req ReplaceSectionsRequest) (*Page, error)

	// EnsureSyntheticRoot lazily materializes the hidden root page for a
	// single-root domain. Idempotent; safe under concurrent create calls.
	EnsureSyntheticRoot(ctx context.Context, domain *domains.Domain) (uuid.UUID, error)
}

// CreatePageRequest captures the payload required to create a page.
type CreatePageRequest struct {
	DomainID        uuid.UUID
	ParentID        *uuid.UUID
	Slug            string
	Title           string
	ContentType     string
	Order           int
	TargetCountries []string
	Sections        []SectionConfig
	CreatedBy       uuid.UUID
	UpdatedBy       uuid.UUID
}

// UpdatePageRequest captures the mutable metadata for an existing page. The
// slug is immutable; renaming would silently rewrite every descendant URL.
type UpdatePageRequest struct {
	PageID          uuid.UUID
	Title           *string
	ContentType     *string
	Order           *int
	TargetCountries []string
	UpdatedBy       uuid.UUID
}

// MovePageRequest reattaches a page under a new parent.
type MovePageRequest struct {
	PageID      uuid.UUID
	NewParentID *uuid.UUID
	ActorID     uuid.UUID
}

// DeletePageRequest captures the information required to delete a page.
type DeletePageRequest struct {
	PageID    uuid.UUID
	Cascade   bool
	DeletedBy uuid.UUID
}

// ReplaceSectionsRequest swaps a page's section layout configuration.
type ReplaceSectionsRequest struct {
	PageID    uuid.UUID
	Sections  []SectionConfig
	UpdatedBy uuid.UUID
}

// PageRepository abstracts page persistence. GetBySlugInScope looks a slug up
// inside one (domain, parent) scope; there is deliberately no global slug
// lookup since slugs are only unique per parent.
type PageRepository interface {
	Create(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlugInScope(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID, slug string) (*Page, error)
	ListByDomain(ctx context.Context, domainID uuid.UUID) ([]*Page, error)
	ListChildren(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID) ([]*Page, error)
	Update(ctx context.Context, record *Page) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// EnsureRoot inserts the synthetic root unless a root with the reserved
	// slug already exists for the domain, using a transaction-scoped
	// existence check so concurrent creates cannot produce duplicate roots.
	EnsureRoot(ctx context.Context, record *Page) (*Page, error)

	CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error)
	DeleteByDomain(ctx context.Context, domainID uuid.UUID) error
}

// ServiceOption configures page service behaviour.
type ServiceOption func(*service)

// WithClock overrides the internal time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the record ID generator.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.newID = generator
		}
	}
}

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
