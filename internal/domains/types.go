package domains

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/countries"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// Service describes domain management capabilities.
type Service interface {
	Create(ctx context.Context, req CreateDomainRequest) (*Domain, error)
	Get(ctx context.Context, id uuid.UUID) (*Domain, error)
	GetBySlug(ctx context.Context, slug string) (*Domain, error)
	List(ctx context.Context) ([]*Domain, error)
	ListVisible(ctx context.Context, viewer countries.Code) ([]*Domain, error)
	Update(ctx context.Context, req UpdateDomainRequest) (*Domain, error)
	Delete(ctx context.Context, req DeleteDomainRequest) error

	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

// CreateDomainRequest captures the payload required to register a domain.
type CreateDomainRequest struct {
	Slug            string
	Name            string
	AddressingMode  string
	CategoryID      *uuid.UUID
	OrderInCategory int
	Published       bool
	TargetCountries []string
	CreatedBy       uuid.UUID
	UpdatedBy       uuid.UUID
}

// UpdateDomainRequest captures the mutable fields for an existing domain.
// Nil pointers leave the current value unchanged.
type UpdateDomainRequest struct {
	ID              uuid.UUID
	Name            *string
	AddressingMode  *string
	CategoryID      *uuid.UUID
	OrderInCategory *int
	Published       *bool
	TargetCountries []string
	UpdatedBy       uuid.UUID
}

// DeleteDomainRequest captures the information required to delete a domain.
// Cascade removes the domain's pages first; without it deletion is refused
// while pages remain.
type DeleteDomainRequest struct {
	ID        uuid.UUID
	Cascade   bool
	DeletedBy uuid.UUID
}

// CreateCategoryRequest registers a navigation grouping for domains.
type CreateCategoryRequest struct {
	Slug      string
	Name      string
	SortOrder int
}

var (
	ErrSlugRequired          = errors.New("domains: slug is required")
	ErrSlugInvalid           = errors.New("domains: slug contains invalid characters")
	ErrSlugExists            = errors.New("domains: slug already exists")
	ErrNameRequired          = errors.New("domains: name is required")
	ErrDomainNotFound        = errors.New("domains: domain not found")
	ErrAddressingModeInvalid = errors.New("domains: addressing mode is invalid")
	ErrCategoryNotFound      = errors.New("domains: category not found")
	ErrDomainHasPages        = errors.New("domains: domain still has pages; enable cascade to delete")
	ErrRootMaterializer      = errors.New("domains: root materializer is not configured")
)

// DomainNotFoundError carries the lookup key for missing domain reads.
type DomainNotFoundError struct {
	Key string
}

func (e *DomainNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return ErrDomainNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDomainNotFound.Error(), e.Key)
}

func (e *DomainNotFoundError) Unwrap() error {
	return ErrDomainNotFound
}

// CategoryNotFoundError carries the lookup key for missing category reads.
type CategoryNotFoundError struct {
	Key string
}

func (e *CategoryNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return ErrCategoryNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCategoryNotFound.Error(), e.Key)
}

func (e *CategoryNotFoundError) Unwrap() error {
	return ErrCategoryNotFound
}

// DomainRepository abstracts domain persistence.
type DomainRepository interface {
	Create(ctx context.Context, record *Domain) (*Domain, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Domain, error)
	GetBySlug(ctx context.Context, slug string) (*Domain, error)
	List(ctx context.Context) ([]*Domain, error)
	Update(ctx context.Context, record *Domain) (*Domain, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository abstracts category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, record *Category) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

// RootMaterializer creates (idempotently) the synthetic root page for a
// single-root domain. Implemented by the page service; injected here to keep
// the dependency one-directional.
type RootMaterializer interface {
	EnsureSyntheticRoot(ctx context.Context, domain *Domain) (uuid.UUID, error)
}

// PageCounter reports how many pages a domain still owns, used by delete guard rails.
type PageCounter interface {
	CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error)
	DeleteByDomain(ctx context.Context, domainID uuid.UUID) error
}

// ServiceOption configures domain service behaviour.
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

// WithRootMaterializer wires the collaborator that creates synthetic root pages.
func WithRootMaterializer(materializer RootMaterializer) ServiceOption {
	return func(s *service) {
		if materializer != nil {
			s.roots = materializer
		}
	}
}

// WithPageCounter wires the collaborator used by deletion guard rails.
func WithPageCounter(counter PageCounter) ServiceOption {
	return func(s *service) {
		if counter != nil {
			s.pages = counter
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
