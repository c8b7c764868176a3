package pages

import (
	"context"
	"errors"
	"strings"
	"time"

	goslug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitenav/internal/countries"
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/identity"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

type service struct {
	repo    PageRepository
	domains domains.DomainRepository
	now     func() time.Time
	newID   func() uuid.UUID
	logger  interfaces.Logger
}

// NewService constructs a page service instance.
func NewService(repo PageRepository, domainRepo domains.DomainRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:    repo,
		domains: domainRepo,
		now:     time.Now,
		newID:   uuid.New,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new page, resolving its effective parent from the
// domain's addressing mode before checking slug uniqueness in the resolved
// (domain, parent) scope.
func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	if req.DomainID == uuid.Nil {
		return nil, ErrDomainRequired
	}
	domain, err := s.domains.GetByID(ctx, req.DomainID)
	if err != nil {
		return nil, err
	}

	slugValue, err := normalizePageSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	contentType, err := ParseContentType(req.ContentType)
	if err != nil {
		return nil, err
	}

	targets := countries.NormalizeTargets(req.TargetCountries)
	if err := targets.Validate(); err != nil {
		return nil, err
	}
	for _, section := range req.Sections {
		if err := section.Validate(); err != nil {
			return nil, err
		}
	}

	parentID, err := s.resolveParent(ctx, domain, req.ParentID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSlugAvailable(ctx, domain.ID, parentID, slugValue, uuid.Nil); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Page{
		ID:              s.newID(),
		DomainID:        domain.ID,
		ParentID:        parentID,
		Slug:            slugValue,
		Title:           strings.TrimSpace(req.Title),
		ContentType:     contentType,
		SortOrder:       req.Order,
		TargetCountries: targets,
		Sections:        cloneSections(req.Sections),
		CreatedBy:       req.CreatedBy,
		UpdatedBy:       req.UpdatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page created", "page_id", created.ID.String(), "domain_id", domain.ID.String(), "slug", created.Slug)
	return created, nil
}

// Get retrieves a page by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a page by slug inside one (domain, parent) scope. A nil
// parent addresses the top level.
func (s *service) GetBySlug(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID, slug string) (*Page, error) {
	return s.repo.GetBySlugInScope(ctx, domainID, parentID, slug)
}

// ListByDomain returns every page of a domain, synthetic root included.
// Callers feeding the hierarchy builder must country-filter the result first.
func (s *service) ListByDomain(ctx context.Context, domainID uuid.UUID) ([]*Page, error) {
	return s.repo.ListByDomain(ctx, domainID)
}

// Update mutates page metadata. Structural fields (slug, parent) are handled
// by Move; the synthetic root accepts no metadata edits.
func (s *service) Update(ctx context.Context, req UpdatePageRequest) (*Page, error) {
	record, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}
	if record.IsSyntheticRoot() {
		return nil, ErrRootImmutable
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		record.Title = strings.TrimSpace(*req.Title)
	}
	if req.ContentType != nil {
		contentType, err := ParseContentType(*req.ContentType)
		if err != nil {
			return nil, err
		}
		record.ContentType = contentType
	}
	if req.Order != nil {
		record.SortOrder = *req.Order
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
	return s.repo.Update(ctx, record)
}

// Move reattaches a page under a new effective parent, re-running parent
// resolution and the scoped slug check, and rejecting ancestry cycles.
func (s *service) Move(ctx context.Context, req MovePageRequest) (*Page, error) {
	record, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}
	if record.IsSyntheticRoot() {
		return nil, ErrRootImmutable
	}
	domain, err := s.domains.GetByID(ctx, record.DomainID)
	if err != nil {
		return nil, err
	}

	parentID, err := s.resolveParent(ctx, domain, req.NewParentID)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		if *parentID == record.ID {
			return nil, ErrParentCycle
		}
		if err := s.ensureNoCycle(ctx, record.ID, *parentID); err != nil {
			return nil, err
		}
	}

	if err := s.checkSlugAvailable(ctx, record.DomainID, parentID, record.Slug, record.ID); err != nil {
		return nil, err
	}

	record.ParentID = parentID
	record.UpdatedBy = req.ActorID
	record.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page moved", "page_id", updated.ID.String(), "parent_id", parentKey(updated.ParentID))
	return updated, nil
}

// Delete removes a page, cascading depth-first over descendants when
// requested and refusing otherwise.
func (s *service) Delete(ctx context.Context, req DeletePageRequest) error {
	record, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return err
	}
	if record.IsSyntheticRoot() {
		return ErrRootImmutable
	}
	return s.deleteRecursive(ctx, record, req.Cascade)
}

func (s *service) deleteRecursive(ctx context.Context, record *Page, cascade bool) error {
	children, err := s.repo.ListChildren(ctx, record.DomainID, &record.ID)
	if err != nil {
		return err
	}
	if len(children) > 0 && !cascade {
		return ErrPageHasChildren
	}
	for _, child := range children {
		if err := s.deleteRecursive(ctx, child, cascade); err != nil {
			if errors.Is(err, ErrPageNotFound) {
				continue
			}
			return err
		}
	}
	return s.repo.Delete(ctx, record.ID)
}

// ReplaceSections swaps a page's section layout. Every referenced page must
// be one of the page's direct structural children; cross-branch references
// are rejected.
func (s *service) ReplaceSections(ctx context.Context, req ReplaceSectionsRequest) (*Page, error) {
	record, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	children, err := s.repo.ListChildren(ctx, record.DomainID, &record.ID)
	if err != nil {
		return nil, err
	}
	childSet := make(map[uuid.UUID]struct{}, len(children))
	for _, child := range children {
		childSet[child.ID] = struct{}{}
	}

	for _, section := range req.Sections {
		if err := section.Validate(); err != nil {
			return nil, err
		}
		for _, id := range section.PageIDs {
			if _, ok := childSet[id]; !ok {
				return nil, ErrSectionPageNotChild
			}
		}
	}

	record.Sections = cloneSections(req.Sections)
	record.UpdatedBy = req.UpdatedBy
	record.UpdatedAt = s.now()
	return s.repo.Update(ctx, record)
}

// EnsureSyntheticRoot materializes the hidden root page for a single-root
// domain. The root ID is derived deterministically from the domain ID, so
// concurrent callers converge on the same row; the repository performs the
// existence check and insert inside one transaction boundary.
func (s *service) EnsureSyntheticRoot(ctx context.Context, domain *domains.Domain) (uuid.UUID, error) {
	now := s.now()
	root := &Page{
		ID:          identity.RootPageUUID(domain.ID),
		DomainID:    domain.ID,
		Slug:        SyntheticRootSlug,
		Title:       domain.Name,
		ContentType: ContentSubcategoryList,
		CreatedBy:   domain.CreatedBy,
		UpdatedBy:   domain.UpdatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.EnsureRoot(ctx, root)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// resolveParent maps a requested parent to the effective stored parent.
//
// Multi-root domains pass the request through (nil means top level).
// Single-root domains substitute the synthetic root for nil; explicit parents
// are honored in both modes so pages can nest below non-root parents.
func (s *service) resolveParent(ctx context.Context, domain *domains.Domain, requested *uuid.UUID) (*uuid.UUID, error) {
	if requested == nil {
		if domain.AddressingMode == domains.AddressingSingleRoot {
			rootID, err := s.EnsureSyntheticRoot(ctx, domain)
			if err != nil {
				return nil, err
			}
			return &rootID, nil
		}
		return nil, nil
	}

	parent, err := s.repo.GetByID(ctx, *requested)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return nil, &ParentInvalidError{DomainID: domain.ID, ParentID: *requested, Reason: "parent does not exist"}
		}
		return nil, err
	}
	if parent.DomainID != domain.ID {
		return nil, &ParentInvalidError{DomainID: domain.ID, ParentID: *requested, Reason: "parent belongs to a different domain"}
	}
	id := parent.ID
	return &id, nil
}

// ensureNoCycle walks the candidate parent's ancestry; finding the moved page
// there means the move would orphan a subtree into a loop.
func (s *service) ensureNoCycle(ctx context.Context, pageID uuid.UUID, parentID uuid.UUID) error {
	seen := map[uuid.UUID]struct{}{pageID: {}}
	current := parentID
	for {
		if _, revisit := seen[current]; revisit {
			return ErrParentCycle
		}
		seen[current] = struct{}{}

		node, err := s.repo.GetByID(ctx, current)
		if err != nil {
			// A dangling ancestor terminates the chain; the builder treats
			// such orphans as roots, so no cycle is possible through them.
			if errors.Is(err, ErrPageNotFound) {
				return nil
			}
			return err
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

func (s *service) checkSlugAvailable(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID, slugValue string, selfID uuid.UUID) error {
	existing, err := s.repo.GetBySlugInScope(ctx, domainID, parentID, slugValue)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return &SlugConflictError{DomainID: domainID, ParentID: parentID, Slug: slugValue}
}

func normalizePageSlug(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrSlugRequired
	}
	if trimmed == SyntheticRootSlug {
		return "", ErrSlugReserved
	}
	normalized, err := goslug.Normalize(trimmed)
	if err != nil || !goslug.IsValid(normalized) {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

func cloneSections(src []SectionConfig) []SectionConfig {
	if len(src) == 0 {
		return nil
	}
	out := make([]SectionConfig, len(src))
	for i, section := range src {
		copied := section
		if len(section.PageIDs) > 0 {
			copied.PageIDs = make([]uuid.UUID, len(section.PageIDs))
			copy(copied.PageIDs, section.PageIDs)
		}
		out[i] = copied
	}
	return out
}

func parentKey(id *uuid.UUID) string {
	if id == nil {
		return "root"
	}
	return id.String()
}
