package pages

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryPageRepository is an in-memory page store for scaffolding/tests.
type MemoryPageRepository struct {
	mu         sync.RWMutex
	pages      map[uuid.UUID]*Page
	scopeIndex map[string]uuid.UUID
}

// NewMemoryPageRepository constructs the repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages:      make(map[uuid.UUID]*Page),
		scopeIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied page.
func (m *MemoryPageRepository) Create(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := scopeKey(record.DomainID, record.ParentID, record.Slug)
	if _, exists := m.scopeIndex[key]; exists {
		return nil, &SlugConflictError{DomainID: record.DomainID, ParentID: record.ParentID, Slug: record.Slug}
	}
	copied := clonePage(record)
	m.pages[copied.ID] = copied
	m.scopeIndex[key] = copied.ID
	return clonePage(copied), nil
}

// GetByID retrieves a page by identifier.
func (m *MemoryPageRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.pages[id]
	if !ok {
		return nil, &PageNotFoundError{Key: id.String()}
	}
	return clonePage(record), nil
}

// GetBySlugInScope retrieves a page by slug within one (domain, parent) scope.
func (m *MemoryPageRepository) GetBySlugInScope(_ context.Context, domainID uuid.UUID, parentID *uuid.UUID, slug string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.scopeIndex[scopeKey(domainID, parentID, slug)]
	if !ok {
		return nil, &PageNotFoundError{Key: slug}
	}
	return clonePage(m.pages[id]), nil
}

// ListByDomain returns every page belonging to the domain.
func (m *MemoryPageRepository) ListByDomain(_ context.Context, domainID uuid.UUID) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0)
	for _, record := range m.pages {
		if record.DomainID == domainID {
			out = append(out, clonePage(record))
		}
	}
	return out, nil
}

// ListChildren returns the direct children of a parent (nil = top level).
func (m *MemoryPageRepository) ListChildren(_ context.Context, domainID uuid.UUID, parentID *uuid.UUID) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0)
	for _, record := range m.pages {
		if record.DomainID != domainID {
			continue
		}
		if sameParent(record.ParentID, parentID) {
			out = append(out, clonePage(record))
		}
	}
	return out, nil
}

// Update persists changes for a page, reindexing its slug scope.
func (m *MemoryPageRepository) Update(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.pages[record.ID]
	if !ok {
		return nil, &PageNotFoundError{Key: record.ID.String()}
	}
	newKey := scopeKey(record.DomainID, record.ParentID, record.Slug)
	if owner, exists := m.scopeIndex[newKey]; exists && owner != record.ID {
		return nil, &SlugConflictError{DomainID: record.DomainID, ParentID: record.ParentID, Slug: record.Slug}
	}
	delete(m.scopeIndex, scopeKey(current.DomainID, current.ParentID, current.Slug))
	updated := clonePage(record)
	updated.CreatedAt = current.CreatedAt
	updated.CreatedBy = current.CreatedBy
	m.pages[record.ID] = updated
	m.scopeIndex[newKey] = record.ID
	return clonePage(updated), nil
}

// Delete removes the page.
func (m *MemoryPageRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.pages[id]
	if !ok {
		return &PageNotFoundError{Key: id.String()}
	}
	delete(m.pages, id)
	delete(m.scopeIndex, scopeKey(record.DomainID, record.ParentID, record.Slug))
	return nil
}

// EnsureRoot inserts the synthetic root unless one already exists for the
// domain. The whole check-then-insert runs under the store mutex.
func (m *MemoryPageRepository) EnsureRoot(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := scopeKey(record.DomainID, nil, SyntheticRootSlug)
	if id, exists := m.scopeIndex[key]; exists {
		return clonePage(m.pages[id]), nil
	}
	copied := clonePage(record)
	m.pages[copied.ID] = copied
	m.scopeIndex[key] = copied.ID
	return clonePage(copied), nil
}

// CountByDomain reports how many pages the domain owns.
func (m *MemoryPageRepository) CountByDomain(_ context.Context, domainID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, record := range m.pages {
		if record.DomainID == domainID {
			count++
		}
	}
	return count, nil
}

// DeleteByDomain removes every page belonging to the domain.
func (m *MemoryPageRepository) DeleteByDomain(_ context.Context, domainID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, record := range m.pages {
		if record.DomainID != domainID {
			continue
		}
		delete(m.pages, id)
		delete(m.scopeIndex, scopeKey(record.DomainID, record.ParentID, record.Slug))
	}
	return nil
}

func scopeKey(domainID uuid.UUID, parentID *uuid.UUID, slug string) string {
	parent := "root"
	if parentID != nil {
		parent = parentID.String()
	}
	return domainID.String() + "|" + parent + "|" + slug
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func clonePage(src *Page) *Page {
	if src == nil {
		return nil
	}
	copied := *src
	copied.TargetCountries = src.TargetCountries.Clone()
	copied.Sections = cloneSections(src.Sections)
	if src.ParentID != nil {
		id := *src.ParentID
		copied.ParentID = &id
	}
	return &copied
}
