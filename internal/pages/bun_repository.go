package pages

import (
	"context"
	"database/sql"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunPageRepository persists pages with bun.
type BunPageRepository struct {
	db   *bun.DB
	repo repository.Repository[*Page]
}

// NewBunPageRepository constructs a PageRepository backed by bun.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return NewBunPageRepositoryWithCache(db, nil, nil)
}

// NewBunPageRepositoryWithCache constructs a PageRepository backed by bun with optional caching.
func NewBunPageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunPageRepository {
	base := NewPageModelRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunPageRepository{db: db, repo: base}
}

func (r *BunPageRepository) Create(ctx context.Context, record *Page) (*Page, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	return created, nil
}

func (r *BunPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*Page, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapPageError(err, id.String())
	}
	return record, nil
}

func (r *BunPageRepository) GetBySlugInScope(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID, slug string) (*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.domain_id = ?", domainID).
				Where("?TableAlias.slug = ?", slug)
			if parentID == nil {
				return q.Where("?TableAlias.parent_id IS NULL")
			}
			return q.Where("?TableAlias.parent_id = ?", *parentID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	if len(records) == 0 {
		return nil, &PageNotFoundError{Key: fmt.Sprintf("%s:%s", domainID, slug)}
	}
	return records[0], nil
}

func (r *BunPageRepository) ListByDomain(ctx context.Context, domainID uuid.UUID) ([]*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.domain_id = ?", domainID).
				OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	return records, nil
}

func (r *BunPageRepository) ListChildren(ctx context.Context, domainID uuid.UUID, parentID *uuid.UUID) ([]*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.domain_id = ?", domainID)
			if parentID == nil {
				q = q.Where("?TableAlias.parent_id IS NULL")
			} else {
				q = q.Where("?TableAlias.parent_id = ?", *parentID)
			}
			return q.OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	return records, nil
}

func (r *BunPageRepository) Update(ctx context.Context, record *Page) (*Page, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"parent_id",
			"title",
			"content_type",
			"sort_order",
			"target_countries",
			"sections",
			"updated_by",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapPageError(err, record.ID.String())
	}
	return updated, nil
}

func (r *BunPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*Page)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// EnsureRoot runs the existence check and insert inside one transaction so
// concurrent callers converge on a single synthetic root per domain.
func (r *BunPageRepository) EnsureRoot(ctx context.Context, record *Page) (*Page, error) {
	var root *Page
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		existing := &Page{}
		err := tx.NewSelect().
			Model(existing).
			Where("?TableAlias.domain_id = ?", record.DomainID).
			Where("?TableAlias.parent_id IS NULL").
			Where("?TableAlias.slug = ?", SyntheticRootSlug).
			Limit(1).
			Scan(ctx)
		if err == nil {
			root = existing
			return nil
		}
		if err != sql.ErrNoRows {
			return err
		}
		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return err
		}
		root = record
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ensure root page: %w", err)
	}
	return root, nil
}

func (r *BunPageRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*Page)(nil)).
		Where("?TableAlias.domain_id = ?", domainID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return count, nil
}

func (r *BunPageRepository) DeleteByDomain(ctx context.Context, domainID uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*Page)(nil)).
		Where("?TableAlias.domain_id = ?", domainID).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete domain pages: %w", err)
	}
	return nil
}

func mapPageError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &PageNotFoundError{Key: key}
	}
	return fmt.Errorf("page repository error: %w", err)
}
