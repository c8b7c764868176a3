package domains

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryDomainRepository is an in-memory domain store for scaffolding/tests.
type MemoryDomainRepository struct {
	mu        sync.RWMutex
	domains   map[uuid.UUID]*Domain
	slugIndex map[string]uuid.UUID
}

// NewMemoryDomainRepository constructs the repository.
func NewMemoryDomainRepository() *MemoryDomainRepository {
	return &MemoryDomainRepository{
		domains:   make(map[uuid.UUID]*Domain),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied domain.
func (m *MemoryDomainRepository) Create(_ context.Context, record *Domain) (*Domain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.slugIndex[record.Slug]; exists {
		return nil, ErrSlugExists
	}
	copied := cloneDomain(record)
	m.domains[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneDomain(copied), nil
}

// GetByID retrieves a domain by identifier.
func (m *MemoryDomainRepository) GetByID(_ context.Context, id uuid.UUID) (*Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.domains[id]
	if !ok {
		return nil, &DomainNotFoundError{Key: id.String()}
	}
	return cloneDomain(record), nil
}

// GetBySlug retrieves a domain by slug.
func (m *MemoryDomainRepository) GetBySlug(_ context.Context, slug string) (*Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.slugIndex[strings.TrimSpace(slug)]
	if !ok {
		return nil, &DomainNotFoundError{Key: slug}
	}
	return cloneDomain(m.domains[id]), nil
}

// List returns every domain.
func (m *MemoryDomainRepository) List(_ context.Context) ([]*Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Domain, 0, len(m.domains))
	for _, record := range m.domains {
		out = append(out, cloneDomain(record))
	}
	return out, nil
}

// Update persists metadata changes for a domain. The slug is immutable.
func (m *MemoryDomainRepository) Update(_ context.Context, record *Domain) (*Domain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.domains[record.ID]
	if !ok {
		return nil, &DomainNotFoundError{Key: record.ID.String()}
	}
	updated := cloneDomain(record)
	updated.Slug = current.Slug
	updated.CreatedAt = current.CreatedAt
	updated.CreatedBy = current.CreatedBy
	m.domains[record.ID] = updated
	return cloneDomain(updated), nil
}

// Delete removes the domain.
func (m *MemoryDomainRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.domains[id]
	if !ok {
		return &DomainNotFoundError{Key: id.String()}
	}
	delete(m.domains, id)
	delete(m.slugIndex, record.Slug)
	return nil
}

// MemoryCategoryRepository is an in-memory category store for scaffolding/tests.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*Category
}

// NewMemoryCategoryRepository constructs the repository.
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{categories: make(map[uuid.UUID]*Category)}
}

// Create inserts or replaces the supplied category (deterministic IDs make
// repeated seeding idempotent).
func (m *MemoryCategoryRepository) Create(_ context.Context, record *Category) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := cloneCategory(record)
	m.categories[copied.ID] = copied
	return cloneCategory(copied), nil
}

// GetByID retrieves a category by identifier.
func (m *MemoryCategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.categories[id]
	if !ok {
		return nil, &CategoryNotFoundError{Key: id.String()}
	}
	return cloneCategory(record), nil
}

// List returns every category.
func (m *MemoryCategoryRepository) List(_ context.Context) ([]*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Category, 0, len(m.categories))
	for _, record := range m.categories {
		out = append(out, cloneCategory(record))
	}
	return out, nil
}

func cloneDomain(src *Domain) *Domain {
	if src == nil {
		return nil
	}
	copied := *src
	copied.TargetCountries = src.TargetCountries.Clone()
	if src.CategoryID != nil {
		id := *src.CategoryID
		copied.CategoryID = &id
	}
	return &copied
}

func cloneCategory(src *Category) *Category {
	if src == nil {
		return nil
	}
	copied := *src
	return &copied
}
