package domains

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunDomainRepository persists domains and categories with bun.
type BunDomainRepository struct {
	db         *bun.DB
	repo       repository.Repository[*Domain]
	categories repository.Repository[*Category]
}

// NewBunDomainRepository constructs a DomainRepository backed by bun.
func NewBunDomainRepository(db *bun.DB) *BunDomainRepository {
	return NewBunDomainRepositoryWithCache(db, nil, nil)
}

// NewBunDomainRepositoryWithCache constructs a DomainRepository backed by bun with optional caching.
func NewBunDomainRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunDomainRepository {
	return &BunDomainRepository{
		db:         db,
		repo:       wrapWithCache(NewDomainRepository(db), cacheService, keySerializer),
		categories: wrapWithCache(NewCategoryRepository(db), cacheService, keySerializer),
	}
}

func (r *BunDomainRepository) Create(ctx context.Context, record *Domain) (*Domain, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("domain repository error: %w", err)
	}
	return created, nil
}

func (r *BunDomainRepository) GetByID(ctx context.Context, id uuid.UUID) (*Domain, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapDomainError(err, id.String())
	}
	return record, nil
}

func (r *BunDomainRepository) GetBySlug(ctx context.Context, slug string) (*Domain, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapDomainError(err, slug)
	}
	return record, nil
}

func (r *BunDomainRepository) List(ctx context.Context) ([]*Domain, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("domain repository error: %w", err)
	}
	return records, nil
}

func (r *BunDomainRepository) Update(ctx context.Context, record *Domain) (*Domain, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"category_id",
			"name",
			"addressing_mode",
			"order_in_category",
			"published",
			"target_countries",
			"updated_by",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapDomainError(err, record.ID.String())
	}
	return updated, nil
}

func (r *BunDomainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*Domain)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	return nil
}

// Categories exposes the category half of the store.
func (r *BunDomainRepository) Categories() CategoryRepository {
	return &bunCategoryRepository{repo: r.categories}
}

type bunCategoryRepository struct {
	repo repository.Repository[*Category]
}

func (r *bunCategoryRepository) Create(ctx context.Context, record *Category) (*Category, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("category repository error: %w", err)
	}
	return created, nil
}

func (r *bunCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &CategoryNotFoundError{Key: id.String()}
		}
		return nil, fmt.Errorf("category repository error: %w", err)
	}
	return record, nil
}

func (r *bunCategoryRepository) List(ctx context.Context) ([]*Category, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("category repository error: %w", err)
	}
	return records, nil
}

func mapDomainError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &DomainNotFoundError{Key: key}
	}
	return fmt.Errorf("domain repository error: %w", err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
