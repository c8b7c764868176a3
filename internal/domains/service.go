package domains

import (
	"context"
	"errors"
	"strings"
	"time"

	goslug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/countries"
	"github.com/goliatone/go-sitenav/internal/identity"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

type service struct {
	repo       DomainRepository
	categories CategoryRepository
	roots      RootMaterializer
	pages      PageCounter
	now        func() time.Time
	newID      func() uuid.UUID
	logger     interfaces.Logger
}

// NewService constructs a domain service instance.
func NewService(repo DomainRepository, categories CategoryRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:       repo,
		categories: categories,
		now:        time.Now,
		newID:      uuid.New,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new domain. Single-root domains get their synthetic root
// page materialized as part of the same call; the root carries a deterministic
// ID so a partial retry converges on the same row.
func (s *service) Create(ctx context.Context, req CreateDomainRequest) (*Domain, error) {
	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	mode, err := ParseAddressingMode(req.AddressingMode)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySlug(ctx, normalized); err == nil {
		return nil, ErrSlugExists
	} else if !errors.Is(err, ErrDomainNotFound) {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	targets := countries.NormalizeTargets(req.TargetCountries)
	if err := targets.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Domain{
		ID:              s.newID(),
		CategoryID:      req.CategoryID,
		Slug:            normalized,
		Name:            strings.TrimSpace(req.Name),
		AddressingMode:  mode,
		OrderInCategory: req.OrderInCategory,
		Published:       req.Published,
		TargetCountries: targets,
		CreatedBy:       req.CreatedBy,
		UpdatedBy:       req.UpdatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if mode == AddressingSingleRoot {
		if s.roots == nil {
			return nil, ErrRootMaterializer
		}
		if _, err := s.roots.EnsureSyntheticRoot(ctx, created); err != nil {
			// Roll the domain back so a failed root create does not leave a
			// single-root domain without its root.
			if delErr := s.repo.Delete(ctx, created.ID); delErr != nil {
				s.logger.Error("domain rollback failed after root create error",
					"domain_id", created.ID.String(), "error", delErr)
			}
			return nil, err
		}
	}

	s.logger.Info("domain created", "domain_id", created.ID.String(), "slug", created.Slug, "mode", string(created.AddressingMode))
	return created, nil
}

// Get retrieves a domain by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Domain, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a domain by its slug.
func (s *service) GetBySlug(ctx context.Context, slug string) (*Domain, error) {
	normalized, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, normalized)
}

// List returns every domain sorted for navigation: category order first, then
// order within category, then slug.
func (s *service) List(ctx context.Context) ([]*Domain, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.sortForNavigation(ctx, records)
	return records, nil
}

// ListVisible returns the domains a viewer country may see. Filtering happens
// here, before any caller hands domains to tree building.
func (s *service) ListVisible(ctx context.Context, viewer countries.Code) ([]*Domain, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return countries.Filter(records, viewer), nil
}

// Update mutates domain metadata. Switching a domain from multi-root to
// single-root materializes the synthetic root on demand; existing top-level
// pages are left in place as additional roots rather than silently reparented,
// since reparenting would rewrite their URLs.
func (s *service) Update(ctx context.Context, req UpdateDomainRequest) (*Domain, error) {
	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	materializeRoot := false
	if req.AddressingMode != nil {
		mode, err := ParseAddressingMode(*req.AddressingMode)
		if err != nil {
			return nil, err
		}
		if mode == AddressingSingleRoot && record.AddressingMode != AddressingSingleRoot {
			materializeRoot = true
		}
		record.AddressingMode = mode
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		record.Name = strings.TrimSpace(*req.Name)
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		record.CategoryID = req.CategoryID
	}
	if req.OrderInCategory != nil {
		record.OrderInCategory = *req.OrderInCategory
	}
	if req.Published != nil {
		record.Published = *req.Published
	}
	if req.TargetCountries != nil {
		targets := countries.NormalizeTargets(req.TargetCountries)
		if err := targets.Validate(); err != nil {
			return nil, err
		}
		record.TargetCountries = targets
	}

	record.UpdatedBy = req.UpdatedBy
	record.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	if materializeRoot {
		if s.roots == nil {
			return nil, ErrRootMaterializer
		}
		if _, err := s.roots.EnsureSyntheticRoot(ctx, updated); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// Delete removes a domain after enforcing page guard rails.
func (s *service) Delete(ctx context.Context, req DeleteDomainRequest) error {
	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if s.pages != nil {
		count, err := s.pages.CountByDomain(ctx, record.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			if !req.Cascade {
				return ErrDomainHasPages
			}
			if err := s.pages.DeleteByDomain(ctx, record.ID); err != nil {
				return err
			}
		}
	}

	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.logger.Info("domain deleted", "domain_id", record.ID.String(), "slug", record.Slug)
	return nil
}

// CreateCategory registers a navigation grouping. IDs derive from the slug so
// repeated seed runs are idempotent.
func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	now := s.now()
	record := &Category{
		ID:        identity.CategoryUUID(normalized),
		Slug:      normalized,
		Name:      strings.TrimSpace(req.Name),
		SortOrder: req.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.categories.Create(ctx, record)
}

// ListCategories returns categories sorted by their navigation order.
func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	records, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	sortCategories(records)
	return records, nil
}

func (s *service) sortForNavigation(ctx context.Context, records []*Domain) {
	categoryOrder := map[uuid.UUID]int{}
	if s.categories != nil {
		if cats, err := s.categories.List(ctx); err == nil {
			sortCategories(cats)
			for idx, cat := range cats {
				categoryOrder[cat.ID] = idx
			}
		}
	}
	sortDomains(records, categoryOrder)
}

func normalizeSlug(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrSlugRequired
	}
	normalized, err := goslug.Normalize(trimmed)
	if err != nil || !goslug.IsValid(normalized) {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}
