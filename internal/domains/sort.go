package domains

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

func sortCategories(records []*Category) {
	slices.SortStableFunc(records, func(a, b *Category) int {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder - b.SortOrder
		}
		return strings.Compare(a.Slug, b.Slug)
	})
}

func sortDomains(records []*Domain, categoryOrder map[uuid.UUID]int) {
	rank := func(d *Domain) int {
		if d.CategoryID == nil {
			// Uncategorized domains sort after every category.
			return int(^uint(0) >> 1)
		}
		if idx, ok := categoryOrder[*d.CategoryID]; ok {
			return idx
		}
		return int(^uint(0)>>1) - 1
	}
	slices.SortStableFunc(records, func(a, b *Domain) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		if a.OrderInCategory != b.OrderInCategory {
			return a.OrderInCategory - b.OrderInCategory
		}
		return strings.Compare(a.Slug, b.Slug)
	})
}
